package commands_test

import (
	"testing"

	"geoshop/internal/core/application/usecases/commands"
	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/pricing"
	"geoshop/internal/core/domain/model/product"
	"geoshop/internal/core/domain/services"
	"geoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddOrderItemCommandHandler_Handle_AddsAndReprices(t *testing.T) {
	ctx := t.Context()
	client := newClient(t, false)
	o := newDraft(t, client.ID())
	prod := newProduct(t, nil, false)
	format, _ := prod.FirstFormat()
	formatID := format.ID()
	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderItemCommand(o.ID(), itemID, prod.ID(), &formatID)
	require.NoError(t, err)

	catalog := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	identityRepo := new(MockIdentityRepository)
	uow := new(MockUoW)
	factory := new(MockOrderingUoWFactory)
	pricer := new(MockRepricer)

	mock.InOrder(
		catalog.On("Get", ctx, prod.ID()).Return(prod, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("IdentityRepository").Return(identityRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		identityRepo.On("Get", ctx, client.ID()).Return(client, nil).Once(),
		pricer.On("Reprice", ctx, o, services.Subscription{}).Return(nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAddOrderItemCommandHandler(factory, catalog, pricer, new(MockDispatcher))
	require.NoError(t, handler.Handle(ctx, cmd))

	item, ok := o.Item(itemID)
	require.True(t, ok)
	assert.True(t, item.FormatID().IsEqual(formatID))
	catalog.AssertExpectations(t)
	pricer.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddOrderItemCommandHandler_Handle_ProductNotOrderable(t *testing.T) {
	ctx := t.Context()
	pr, err := pricing.NewPricing(kernel.NewUUID(), "Free", "FREE", "CHF", pricing.Amounts{})
	require.NoError(t, err)
	draft, err := product.NewProduct(kernel.NewUUID(), "Unpublished", pr, product.Attributes{})
	require.NoError(t, err)
	cmd, err := commands.NewAddOrderItemCommand(kernel.NewUUID(), kernel.NewUUID(), draft.ID(), nil)
	require.NoError(t, err)

	catalog := new(MockProductRepository)
	catalog.On("Get", ctx, draft.ID()).Return(draft, nil).Once()
	factory := new(MockOrderingUoWFactory)

	handler := commands.NewAddOrderItemCommandHandler(factory, catalog, new(MockRepricer), new(MockDispatcher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrProductIsNotOrderable)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestAddOrderItemCommandHandler_Handle_FormatNotOffered(t *testing.T) {
	ctx := t.Context()
	prod := newProduct(t, nil, false)
	otherFormat := kernel.NewUUID()
	cmd, err := commands.NewAddOrderItemCommand(kernel.NewUUID(), kernel.NewUUID(), prod.ID(), &otherFormat)
	require.NoError(t, err)

	catalog := new(MockProductRepository)
	catalog.On("Get", ctx, prod.ID()).Return(prod, nil).Once()
	factory := new(MockOrderingUoWFactory)

	handler := commands.NewAddOrderItemCommandHandler(factory, catalog, new(MockRepricer), new(MockDispatcher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrFormatIsNotOffered)
	factory.AssertNotCalled(t, "Create")
}

func TestAddOrderItemCommandHandler_Handle_ConcurrentWriteWins(t *testing.T) {
	ctx := t.Context()
	client := newClient(t, false)
	o := newDraft(t, client.ID())
	prod := newProduct(t, nil, false)
	cmd, err := commands.NewAddOrderItemCommand(o.ID(), kernel.NewUUID(), prod.ID(), nil)
	require.NoError(t, err)

	catalog := new(MockProductRepository)
	orderRepo := new(MockOrderRepository)
	identityRepo := new(MockIdentityRepository)
	uow := new(MockUoW)
	factory := new(MockOrderingUoWFactory)
	pricer := new(MockRepricer)
	dispatcher := new(MockDispatcher)

	mock.InOrder(
		catalog.On("Get", ctx, prod.ID()).Return(prod, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("IdentityRepository").Return(identityRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		identityRepo.On("Get", ctx, client.ID()).Return(client, nil).Once(),
		pricer.On("Reprice", ctx, o, services.Subscription{}).Return(nil).Once(),
		orderRepo.On("Update", ctx, o).Return(errs.NewVersionIsInvalidErrorWithCause("order")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAddOrderItemCommandHandler(factory, catalog, pricer, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	orderRepo.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything)
	pricer.AssertExpectations(t)
}
