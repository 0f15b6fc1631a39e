package productrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"geoshop/internal/adapters/out/postgres/productrepo"
	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/pricing"
	"geoshop/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*product.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalog) Children(ctx context.Context, groupID kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, groupID)
	if p := args.Get(0); p != nil {
		return p.([]*product.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func newProduct(t *testing.T) *product.Product {
	t.Helper()
	pr, err := pricing.NewPricing(kernel.NewUUID(), "free", "FREE", "CHF", pricing.Amounts{})
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), "Orthophoto", pr, product.Attributes{})
	require.NoError(t, err)
	return p
}

func TestCachedCatalog_Get(t *testing.T) {
	ctx := t.Context()

	t.Run("should hit the store once", func(t *testing.T) {
		p := newProduct(t)
		next := new(MockCatalog)
		next.On("Get", ctx, p.ID()).Return(p, nil).Once()

		catalog := productrepo.NewCachedCatalog(next, 10, time.Minute)
		for range 3 {
			got, err := catalog.Get(ctx, p.ID())
			require.NoError(t, err)
			assert.Same(t, p, got)
		}
		next.AssertExpectations(t)
	})

	t.Run("should not cache errors", func(t *testing.T) {
		id := kernel.NewUUID()
		next := new(MockCatalog)
		next.On("Get", ctx, id).Return(nil, errors.New("connection refused")).Twice()

		catalog := productrepo.NewCachedCatalog(next, 10, time.Minute)
		_, err := catalog.Get(ctx, id)
		require.Error(t, err)
		_, err = catalog.Get(ctx, id)
		require.Error(t, err)
		next.AssertExpectations(t)
	})

	t.Run("should reload after invalidate", func(t *testing.T) {
		p := newProduct(t)
		next := new(MockCatalog)
		next.On("Get", ctx, p.ID()).Return(p, nil).Twice()

		catalog := productrepo.NewCachedCatalog(next, 10, time.Minute)
		_, err := catalog.Get(ctx, p.ID())
		require.NoError(t, err)
		catalog.Invalidate()
		_, err = catalog.Get(ctx, p.ID())
		require.NoError(t, err)
		next.AssertExpectations(t)
	})
}

func TestCachedCatalog_Children(t *testing.T) {
	ctx := t.Context()
	groupID := kernel.NewUUID()
	children := []*product.Product{newProduct(t), newProduct(t)}

	next := new(MockCatalog)
	next.On("Children", ctx, groupID).Return(children, nil).Once()

	catalog := productrepo.NewCachedCatalog(next, 10, time.Minute)
	for range 2 {
		got, err := catalog.Children(ctx, groupID)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	}
	next.AssertExpectations(t)
}
