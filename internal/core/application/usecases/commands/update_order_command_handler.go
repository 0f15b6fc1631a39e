package commands

import (
	"context"
)

// UpdateOrderCommandHandler edits a Draft. Changes to the geometry, the
// order type or the invoice contact reprice the items.
type UpdateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	pricer     ItemRepricer
	dispatcher EventDispatcher
}

func NewUpdateOrderCommandHandler(
	uowFactory OrderingUoWFactory,
	pricer ItemRepricer,
	dispatcher EventDispatcher,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
		dispatcher: dispatcher,
	}
}

func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	if contactID := cmd.Changes().InvoiceContactID; contactID != nil {
		if _, err = identityRepo.Get(ctx, *contactID); err != nil {
			return err
		}
	}

	if err = cmd.apply(o); err != nil {
		return err
	}

	if cmd.Changes().affectsPrice() {
		sub, subErr := subscriptionOf(ctx, identityRepo, o)
		if subErr != nil {
			return subErr
		}
		if err = h.pricer.Reprice(ctx, o, sub); err != nil {
			return err
		}
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
