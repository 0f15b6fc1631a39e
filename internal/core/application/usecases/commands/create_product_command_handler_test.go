package commands_test

import (
	"testing"

	"geoshop/internal/core/application/usecases/commands"
	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/pricing"
	"geoshop/internal/core/domain/model/product"
	"geoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateProductCommand_RejectsDeprecatedStatus(t *testing.T) {
	_, err := commands.NewCreateProductCommand(kernel.NewUUID(), "Cadastre", kernel.NewUUID(), product.Deprecated, product.Attributes{})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateProductCommandHandler_Handle_PublishesInGroup(t *testing.T) {
	ctx := t.Context()
	pr, err := pricing.NewPricing(kernel.NewUUID(), "Free", "FREE", "CHF", pricing.Amounts{})
	require.NoError(t, err)
	group := newProduct(t, nil, false)
	groupID := group.ID()
	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), "Cadastre NE", pr.ID(), product.PublishedOnlyInGroup,
		product.Attributes{GroupID: &groupID})
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	pricingRepo := new(MockPricingRepository)
	uow := new(MockUoW)
	factory := new(MockCatalogUoWFactory)
	invalidator := new(MockInvalidator)

	var stored *product.Product
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		uow.On("PricingRepository").Return(pricingRepo).Once(),
		pricingRepo.On("Get", ctx, pr.ID()).Return(pr, nil).Once(),
		productRepo.On("Get", ctx, groupID).Return(group, nil).Once(),
		productRepo.On("Add", ctx, mock.AnythingOfType("*product.Product")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*product.Product) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		invalidator.On("Invalidate").Return().Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateProductCommandHandler(factory, invalidator)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.NotNil(t, stored)
	assert.Equal(t, product.PublishedOnlyInGroup, stored.Status())
	productRepo.AssertExpectations(t)
	pricingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	invalidator.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_UnknownPricing(t *testing.T) {
	ctx := t.Context()
	pricingID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), "Cadastre", pricingID, product.Draft, product.Attributes{})
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	pricingRepo := new(MockPricingRepository)
	uow := new(MockUoW)
	factory := new(MockCatalogUoWFactory)
	invalidator := new(MockInvalidator)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		uow.On("PricingRepository").Return(pricingRepo).Once(),
		pricingRepo.On("Get", ctx, pricingID).Return(nil, errs.NewObjectNotFoundError("pricing", pricingID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateProductCommandHandler(factory, invalidator)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	productRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	invalidator.AssertNotCalled(t, "Invalidate")
}
