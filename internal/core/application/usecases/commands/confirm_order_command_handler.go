package commands

import (
	"context"
	"time"
)

// ConfirmOrderCommandHandler confirms an order. Of two concurrent
// confirmations only one passes the version check, the other fails with
// errs.ErrVersionIsInvalid.
//
// Example:
//
//	handler := NewConfirmOrderCommandHandler(uowFactory, confirmer, dispatcher)
//	cmd, _ := NewConfirmOrderCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("No such order")
//	case errors.Is(err, errs.ErrValueIsInvalid):
//	    log.Printf("Order cannot be confirmed: %v", err)
//	case err != nil:
//	    log.Printf("Confirmation failed: %v", err)
//	}
type ConfirmOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	confirmer  OrderConfirmer
	dispatcher EventDispatcher
}

func NewConfirmOrderCommandHandler(
	uowFactory OrderingUoWFactory,
	confirmer OrderConfirmer,
	dispatcher EventDispatcher,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
		confirmer:  confirmer,
		dispatcher: dispatcher,
	}
}

// Handle runs the confirmation and dispatches the quote and validation
// requests it raised once the new status is committed.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	identityRepo := uow.IdentityRepository()

	// No row lock: pricing talks to the geometry provider on another
	// connection. A concurrent write fails the version check in Update.
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	sub, err := subscriptionOf(ctx, identityRepo, o)
	if err != nil {
		return err
	}

	if err = h.confirmer.Confirm(ctx, o, sub, time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publish(h.dispatcher, o)
	return nil
}
