package ports

import (
	"context"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/pricing"
)

type PricingRepository interface {
	Add(ctx context.Context, aggregate *pricing.Pricing) error
	Get(ctx context.Context, id kernel.UUID) (*pricing.Pricing, error)
}

// PricingLayerReader gives the pricing engine access to the geometries of a
// pricing layer.
type PricingLayerReader interface {
	// FindIntersecting returns the geometries of pricingID that touch the
	// polygon. It is a prefilter: callers still run exact predicates.
	FindIntersecting(ctx context.Context, pricingID kernel.UUID, polygon kernel.Geometry) ([]*pricing.Geometry, error)
}

type PricingGeometryRepository interface {
	PricingLayerReader

	Add(ctx context.Context, geometry *pricing.Geometry) error
}
