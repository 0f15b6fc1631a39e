package commands_test

import (
	"errors"
	"testing"
	"time"

	"geoshop/internal/core/application/usecases/commands"
	"geoshop/internal/core/domain/model/order"
	"geoshop/internal/core/domain/services"
	"geoshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmOrderCommandHandler_Handle_PublishesQuoteRequests(t *testing.T) {
	ctx := t.Context()
	client := newClient(t, false)
	o := newDraft(t, client.ID())
	addItem(t, o, newProduct(t, nil, false))
	cmd, err := commands.NewConfirmOrderCommand(o.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	identityRepo := new(MockIdentityRepository)
	uow := new(MockUoW)
	factory := new(MockOrderingUoWFactory)
	confirmer := new(MockConfirmer)
	dispatcher := new(MockDispatcher)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("IdentityRepository").Return(identityRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		identityRepo.On("Get", ctx, client.ID()).Return(client, nil).Once(),
		confirmer.On("Confirm", ctx, o, services.Subscription{}, mock.AnythingOfType("time.Time")).
			Run(func(args mock.Arguments) {
				require.NoError(t, args.Get(1).(*order.Order).Confirm(args.Get(3).(time.Time), vat, nil))
			}).
			Return(nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		dispatcher.On("Dispatch", mock.MatchedBy(func(events []order.Event) bool {
			return len(events) == 1 && events[0].Kind == order.QuoteRequested && events[0].OrderID.IsEqual(o.ID())
		})).Return().Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewConfirmOrderCommandHandler(factory, confirmer, dispatcher)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.Pending, o.Status())
	assert.Empty(t, o.PullEvents())
	dispatcher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_CommitErrorPublishesNothing(t *testing.T) {
	ctx := t.Context()
	client := newClient(t, false)
	o := newDraft(t, client.ID())
	addItem(t, o, newProduct(t, nil, false))
	cmd, err := commands.NewConfirmOrderCommand(o.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	identityRepo := new(MockIdentityRepository)
	uow := new(MockUoW)
	factory := new(MockOrderingUoWFactory)
	confirmer := new(MockConfirmer)
	dispatcher := new(MockDispatcher)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("IdentityRepository").Return(identityRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		identityRepo.On("Get", ctx, client.ID()).Return(client, nil).Once(),
		confirmer.On("Confirm", ctx, o, services.Subscription{}, mock.AnythingOfType("time.Time")).
			Run(func(args mock.Arguments) {
				require.NoError(t, args.Get(1).(*order.Order).Confirm(args.Get(3).(time.Time), vat, nil))
			}).
			Return(nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errs.NewVersionIsInvalidErrorWithCause("order")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewConfirmOrderCommandHandler(factory, confirmer, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything)
	uow.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_ConfirmerError(t *testing.T) {
	ctx := t.Context()
	client := newClient(t, false)
	o := newDraft(t, client.ID())
	cmd, err := commands.NewConfirmOrderCommand(o.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	identityRepo := new(MockIdentityRepository)
	uow := new(MockUoW)
	factory := new(MockOrderingUoWFactory)
	confirmer := new(MockConfirmer)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("IdentityRepository").Return(identityRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		identityRepo.On("Get", ctx, client.ID()).Return(client, nil).Once(),
		confirmer.On("Confirm", ctx, o, services.Subscription{}, mock.AnythingOfType("time.Time")).
			Return(errs.NewValueIsRequiredError("items")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewConfirmOrderCommandHandler(factory, confirmer, new(MockDispatcher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_ConcurrentWriteWins(t *testing.T) {
	ctx := t.Context()
	client := newClient(t, false)
	o := newDraft(t, client.ID())
	addItem(t, o, newProduct(t, nil, false))
	cmd, err := commands.NewConfirmOrderCommand(o.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	identityRepo := new(MockIdentityRepository)
	uow := new(MockUoW)
	factory := new(MockOrderingUoWFactory)
	confirmer := new(MockConfirmer)
	dispatcher := new(MockDispatcher)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("IdentityRepository").Return(identityRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		identityRepo.On("Get", ctx, client.ID()).Return(client, nil).Once(),
		confirmer.On("Confirm", ctx, o, services.Subscription{}, mock.AnythingOfType("time.Time")).
			Return(nil).Once(),
		orderRepo.On("Update", ctx, o).Return(errs.NewVersionIsInvalidError("order",
			errors.New("order was modified concurrently, expected version 1"))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewConfirmOrderCommandHandler(factory, confirmer, dispatcher)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	orderRepo.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything)
	uow.AssertExpectations(t)
}
