package commands

import (
	"context"

	"geoshop/internal/core/domain/model/pricing"
)

type CreatePricingCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreatePricingCommandHandler(uowFactory CatalogUoWFactory) CreatePricingCommandHandler {
	return CreatePricingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores a new pricing. Products pick it up when they are created,
// so the catalog cache does not need to be dropped.
func (h CreatePricingCommandHandler) Handle(ctx context.Context, cmd CreatePricingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	created, err := pricing.NewPricing(cmd.PricingID(), cmd.Name(), cmd.Code(), cmd.Currency(), cmd.Amounts())
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

	if err = uow.PricingRepository().Add(ctx, created); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
