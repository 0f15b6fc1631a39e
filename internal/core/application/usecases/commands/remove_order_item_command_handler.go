package commands

import (
	"context"
)

// RemoveOrderItemCommandHandler drops a line from a Draft. Remaining prices
// are still valid, only the totals are recomputed.
type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	pricer     ItemRepricer
}

func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory, pricer ItemRepricer) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
	}
}

func (h RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) error {
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

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.RemoveItem(cmd.ItemID()); err != nil {
		return err
	}
	o.RecalculatePrice(h.pricer.VATRate())

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
