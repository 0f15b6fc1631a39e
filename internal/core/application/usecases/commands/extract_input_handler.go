package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/order"
	"geoshop/internal/core/ports"
	"geoshop/internal/pkg/errs"
)

var ErrItemIsNotProvided = errors.New("item is not delivered by this provider")

// extractInput loads the order under its row lock, checks that the item
// belongs to the provider and applies the provider's answer.
type extractInput struct {
	uowFactory OrderUoWFactory
	catalog    ports.ProductCatalog
	dispatcher EventDispatcher
}

func (h extractInput) handle(
	ctx context.Context,
	providerID, orderID, itemID kernel.UUID,
	apply func(o *order.Order, now time.Time) error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, orderID)
	if err != nil {
		return err
	}

	item, ok := o.Item(itemID)
	if !ok {
		return errs.NewObjectNotFoundErrorWithCause("item", itemID.String(), order.ErrItemNotFound)
	}
	prod, err := h.catalog.Get(ctx, item.ProductID())
	if err != nil {
		return err
	}
	if !providedBy(prod, providerID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"provider",
			fmt.Errorf("%w: item %s of order %s", ErrItemIsNotProvided, itemID, orderID),
		)
	}

	if err = apply(o, time.Now().UTC()); err != nil {
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

// UploadExtractResultCommandHandler marks the item delivered. The last
// delivery of an order moves it to Processed and tells the client.
type UploadExtractResultCommandHandler struct {
	extractInput
}

func NewUploadExtractResultCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.ProductCatalog,
	dispatcher EventDispatcher,
) UploadExtractResultCommandHandler {
	return UploadExtractResultCommandHandler{
		extractInput{uowFactory: uowFactory, catalog: catalog, dispatcher: dispatcher},
	}
}

func (h UploadExtractResultCommandHandler) Handle(ctx context.Context, cmd UploadExtractResultCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.handle(ctx, cmd.ProviderID(), cmd.OrderID(), cmd.ItemID(), func(o *order.Order, now time.Time) error {
		return o.DeliverItem(cmd.ItemID(), now)
	})
}

// RejectExtractItemCommandHandler marks the item rejected by its provider.
type RejectExtractItemCommandHandler struct {
	extractInput
}

func NewRejectExtractItemCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.ProductCatalog,
	dispatcher EventDispatcher,
) RejectExtractItemCommandHandler {
	return RejectExtractItemCommandHandler{
		extractInput{uowFactory: uowFactory, catalog: catalog, dispatcher: dispatcher},
	}
}

func (h RejectExtractItemCommandHandler) Handle(ctx context.Context, cmd RejectExtractItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.handle(ctx, cmd.ProviderID(), cmd.OrderID(), cmd.ItemID(), func(o *order.Order, now time.Time) error {
		return o.RejectItem(cmd.ItemID(), now)
	})
}
