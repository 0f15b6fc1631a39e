package commands

import (
	"context"

	"geoshop/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Orders are priced in the shop currency.
type CreateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	currency   string
}

func NewCreateOrderCommandHandler(uowFactory OrderingUoWFactory, currency string) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		currency:   currency,
	}
}

// Handle creates the Draft after checking that the client is known.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	if _, err := uow.IdentityRepository().Get(ctx, cmd.ClientID()); err != nil {
		return err
	}

	created, err := order.NewOrder(cmd.OrderID(), cmd.Title(), cmd.Geom(), cmd.ClientID(), cmd.OrderType(), h.currency)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
