package commands

import (
	"context"

	"geoshop/internal/core/domain/model/product"
)

type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	catalog    CatalogInvalidator
}

func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory, catalog CatalogInvalidator) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle stores the product with its formats. The group, if any, must
// already exist. Cached catalog reads are dropped once committed since the
// group's children changed.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
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

	productRepo := uow.ProductRepository()

	pr, err := uow.PricingRepository().Get(ctx, cmd.PricingID())
	if err != nil {
		return err
	}

	if groupID := cmd.Attributes().GroupID; groupID != nil {
		if _, err = productRepo.Get(ctx, *groupID); err != nil {
			return err
		}
	}

	created, err := product.NewProduct(cmd.ProductID(), cmd.Label(), pr, cmd.Attributes())
	if err != nil {
		return err
	}
	if cmd.Status() != product.Draft {
		if err = created.Publish(cmd.Status() == product.PublishedOnlyInGroup); err != nil {
			return err
		}
	}

	if err = productRepo.Add(ctx, created); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.catalog.Invalidate()
	return nil
}
