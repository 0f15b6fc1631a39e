package commands_test

import (
	"testing"

	"geoshop/internal/core/application/usecases/commands"
	"geoshop/internal/core/domain/model/order"
	"geoshop/internal/core/domain/services"
	"geoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderCommandHandler_Handle_TitleOnlyDoesNotReprice(t *testing.T) {
	ctx := t.Context()
	o := newDraft(t, newClient(t, false).ID())
	title := "Cadastre Boudry"
	cmd, err := commands.NewUpdateOrderCommand(o.ID(), commands.OrderChanges{Title: &title})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	identityRepo := new(MockIdentityRepository)
	uow := new(MockUoW)
	factory := new(MockOrderingUoWFactory)
	pricer := new(MockRepricer)
	dispatcher := new(MockDispatcher)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("IdentityRepository").Return(identityRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateOrderCommandHandler(factory, pricer, dispatcher)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, title, o.Title())
	pricer.AssertNotCalled(t, "Reprice", mock.Anything, mock.Anything, mock.Anything)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_GeometryReprices(t *testing.T) {
	ctx := t.Context()
	client := newClient(t, true)
	o := newDraft(t, client.ID())
	item := addItem(t, o, newProduct(t, nil, false))
	geom := square(t, 300)
	cmd, err := commands.NewUpdateOrderCommand(o.ID(), commands.OrderChanges{Geom: &geom})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	identityRepo := new(MockIdentityRepository)
	uow := new(MockUoW)
	factory := new(MockOrderingUoWFactory)
	pricer := new(MockRepricer)
	dispatcher := new(MockDispatcher)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("IdentityRepository").Return(identityRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		identityRepo.On("Get", ctx, client.ID()).Return(client, nil).Once(),
		pricer.On("Reprice", ctx, o, services.Subscription{Client: true}).
			Run(func(args mock.Arguments) {
				require.NoError(t, args.Get(1).(*order.Order).RecordPricingUndefined(item.ID(), "BY_VOLUME"))
			}).
			Return(nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		dispatcher.On("Dispatch", mock.MatchedBy(func(events []order.Event) bool {
			return len(events) == 1 && events[0].Kind == order.PricingUndefined
		})).Return().Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateOrderCommandHandler(factory, pricer, dispatcher)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, geom.WKT(), o.Geom().WKT())
	pricer.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderCommandHandler_Handle_NotDraft(t *testing.T) {
	ctx := t.Context()
	o, _ := readyOrder(t, newProduct(t, nil, false))
	title := "late change"
	cmd, err := commands.NewUpdateOrderCommand(o.ID(), commands.OrderChanges{Title: &title})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	identityRepo := new(MockIdentityRepository)
	uow := new(MockUoW)
	factory := new(MockOrderingUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("IdentityRepository").Return(identityRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateOrderCommandHandler(factory, new(MockRepricer), new(MockDispatcher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
