package services_test

import (
	"context"
	"log/slog"
	"testing"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/pricing"
	"geoshop/internal/core/domain/model/product"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockGeometryProvider struct{ mock.Mock }

func (m *MockGeometryProvider) Area(ctx context.Context, g kernel.Geometry) (float64, error) {
	args := m.Called(ctx, g)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockGeometryProvider) Intersects(ctx context.Context, a, b kernel.Geometry) (bool, error) {
	args := m.Called(ctx, a, b)
	return args.Bool(0), args.Error(1)
}

func (m *MockGeometryProvider) Intersection(ctx context.Context, a, b kernel.Geometry) (kernel.Geometry, bool, error) {
	args := m.Called(ctx, a, b)
	return args.Get(0).(kernel.Geometry), args.Bool(1), args.Error(2)
}

func (m *MockGeometryProvider) Within(ctx context.Context, g, polygon kernel.Geometry) (bool, error) {
	args := m.Called(ctx, g, polygon)
	return args.Bool(0), args.Error(1)
}

func (m *MockGeometryProvider) CountWithin(ctx context.Context, geoms []kernel.Geometry, polygon kernel.Geometry) (int, error) {
	args := m.Called(ctx, geoms, polygon)
	return args.Int(0), args.Error(1)
}

type MockLayerReader struct{ mock.Mock }

func (m *MockLayerReader) FindIntersecting(
	ctx context.Context,
	pricingID kernel.UUID,
	polygon kernel.Geometry,
) ([]*pricing.Geometry, error) {
	args := m.Called(ctx, pricingID, polygon)
	geoms, _ := args.Get(0).([]*pricing.Geometry)
	return geoms, args.Error(1)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *MockCatalog) Children(ctx context.Context, groupID kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, groupID)
	children, _ := args.Get(0).([]*product.Product)
	return children, args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func squareAt(t *testing.T, x, y, size float64) kernel.Geometry {
	t.Helper()
	g, err := kernel.NewPolygon(orb.Polygon{{
		{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}, {x, y},
	}}, kernel.DefaultSRID)
	require.NoError(t, err)
	return g
}

func chf(t *testing.T, amount string) *kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(amount, "CHF")
	require.NoError(t, err)
	return &m
}

func newPricing(t *testing.T, code string, amounts pricing.Amounts) *pricing.Pricing {
	t.Helper()
	p, err := pricing.RestorePricing(kernel.NewUUID(), code+" pricing", code, "CHF", amounts)
	require.NoError(t, err)
	return p
}

func publishedProduct(t *testing.T, label string, pr *pricing.Pricing, attrs product.Attributes) *product.Product {
	t.Helper()
	if attrs.Formats == nil {
		f, err := product.NewFormat(kernel.NewUUID(), "GeoPackage", false)
		require.NoError(t, err)
		attrs.Formats = []product.Format{f}
	}
	p, err := product.NewProduct(kernel.NewUUID(), label, pr, attrs)
	require.NoError(t, err)
	require.NoError(t, p.Publish(false))
	return p
}
