package ports

import (
	"context"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/product"
)

// ProductCatalog is the read side of the product store used while pricing
// and confirming orders. Implementations may cache.
type ProductCatalog interface {
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Children returns the direct members of a group product.
	Children(ctx context.Context, groupID kernel.UUID) ([]*product.Product, error)
}

// ProductRepository persists products together with their formats. The
// product's Pricing must already exist.
type ProductRepository interface {
	ProductCatalog

	Add(ctx context.Context, aggregate *product.Product) error
}
