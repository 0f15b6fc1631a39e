package commands

import (
	"context"
	"errors"
	"fmt"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/order"
	"geoshop/internal/core/domain/model/product"
	"geoshop/internal/core/ports"
	"geoshop/internal/pkg/errs"
)

var (
	ErrProductIsNotOrderable = errors.New("product is not orderable")
	ErrFormatIsNotOffered    = errors.New("format is not offered by the product")
)

// AddOrderItemCommandHandler adds a line and reprices the Draft, so the
// client sees the price of what is in the basket.
type AddOrderItemCommandHandler struct {
	uowFactory OrderingUoWFactory
	catalog    ports.ProductCatalog
	pricer     ItemRepricer
	dispatcher EventDispatcher
}

func NewAddOrderItemCommandHandler(
	uowFactory OrderingUoWFactory,
	catalog ports.ProductCatalog,
	pricer ItemRepricer,
	dispatcher EventDispatcher,
) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		pricer:     pricer,
		dispatcher: dispatcher,
	}
}

func (h AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	prod, err := h.catalog.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if err = checkFormat(prod, cmd.FormatID()); err != nil {
		return err
	}
	if !prod.IsOrderable() {
		return errs.NewValueIsInvalidErrorWithCause(
			"product",
			fmt.Errorf("%w: %s is %s", ErrProductIsNotOrderable, prod.Label(), prod.Status()),
		)
	}

	item, err := order.NewItem(cmd.ItemID(), prod.ID(), cmd.FormatID(), prod.RequiresValidation())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = o.AddItem(item); err != nil {
		return err
	}

	sub, err := subscriptionOf(ctx, identityRepo, o)
	if err != nil {
		return err
	}
	if err = h.pricer.Reprice(ctx, o, sub); err != nil {
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

// checkFormat accepts a nil format; it is chosen later.
func checkFormat(prod *product.Product, formatID *kernel.UUID) error {
	if formatID == nil || prod.HasFormat(*formatID) {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"format",
		fmt.Errorf("%w: %s does not offer %s", ErrFormatIsNotOffered, prod.Label(), formatID),
	)
}
