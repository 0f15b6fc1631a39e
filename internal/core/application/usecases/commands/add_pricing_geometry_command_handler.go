package commands

import (
	"context"
	"fmt"

	"geoshop/internal/core/domain/model/pricing"
	"geoshop/internal/pkg/errs"
)

type AddPricingGeometryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewAddPricingGeometryCommandHandler(uowFactory CatalogUoWFactory) AddPricingGeometryCommandHandler {
	return AddPricingGeometryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks that the pricing exists and that a zone's unit price is in
// the pricing's currency before storing the feature.
func (h AddPricingGeometryCommandHandler) Handle(ctx context.Context, cmd AddPricingGeometryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	feature, err := pricing.NewGeometry(cmd.GeometryID(), cmd.Name(), cmd.Geom(), cmd.PricingID(), cmd.UnitPrice())
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

	if pricingID := cmd.PricingID(); pricingID != nil {
		owner, getErr := uow.PricingRepository().Get(ctx, *pricingID)
		if getErr != nil {
			return getErr
		}
		if price := cmd.UnitPrice(); price != nil && price.Currency() != owner.Currency() {
			return errs.NewValueIsInvalidErrorWithCause(
				"unit_price",
				fmt.Errorf("pricing %s is in %s, got %s", owner.ID(), owner.Currency(), price.Currency()),
			)
		}
	}

	if err = uow.PricingGeometryRepository().Add(ctx, feature); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
