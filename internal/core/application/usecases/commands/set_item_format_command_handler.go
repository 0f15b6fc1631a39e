package commands

import (
	"context"

	"geoshop/internal/core/domain/model/order"
	"geoshop/internal/core/ports"
	"geoshop/internal/pkg/errs"
)

// SetItemFormatCommandHandler picks the data format of a Draft line among
// the formats its product offers.
type SetItemFormatCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ProductCatalog
}

func NewSetItemFormatCommandHandler(uowFactory OrderUoWFactory, catalog ports.ProductCatalog) SetItemFormatCommandHandler {
	return SetItemFormatCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

func (h SetItemFormatCommandHandler) Handle(ctx context.Context, cmd SetItemFormatCommand) error {
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

	item, ok := o.Item(cmd.ItemID())
	if !ok {
		return errs.NewObjectNotFoundErrorWithCause("item", cmd.ItemID().String(), order.ErrItemNotFound)
	}

	prod, err := h.catalog.Get(ctx, item.ProductID())
	if err != nil {
		return err
	}
	formatID := cmd.FormatID()
	if err = checkFormat(prod, &formatID); err != nil {
		return err
	}

	if err = o.SetItemFormat(item.ID(), formatID); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
