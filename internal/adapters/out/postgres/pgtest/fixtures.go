package pgtest

import (
	"context"

	"geoshop/internal/adapters/out/postgres/pricingrepo"
	"geoshop/internal/adapters/out/postgres/productrepo"
	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/pricing"
	"geoshop/internal/core/domain/model/product"

	"github.com/paulmach/orb"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// Square is an LV95 square polygon with its lower left corner at (x, y).
func Square(x, y, size float64) kernel.Geometry {
	g, err := kernel.NewPolygon(orb.Polygon{{
		{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}, {x, y},
	}}, kernel.DefaultSRID)
	if err != nil {
		panic(err)
	}
	return g
}

// SeedProduct stores a published product priced with a 100 CHF SINGLE
// pricing and offering one GeoPackage format.
func SeedProduct(ctx context.Context, db *gorm.DB, label string, providerID *kernel.UUID) (*product.Product, error) {
	unit, err := kernel.NewMoneyFromString("100.00", "CHF")
	if err != nil {
		return nil, err
	}
	pr, err := pricing.NewPricing(kernel.NewUUID(), label+" pricing", "SINGLE", "CHF", pricing.Amounts{UnitPrice: &unit})
	if err != nil {
		return nil, err
	}
	if err = pricingrepo.NewGormPricingRepository(db, noopTracker{}).Add(ctx, pr); err != nil {
		return nil, err
	}

	format, err := product.NewFormat(kernel.NewUUID(), "GeoPackage", false)
	if err != nil {
		return nil, err
	}
	p, err := product.RestoreProduct(kernel.NewUUID(), label, product.Published, pr, product.Attributes{
		ProviderID: providerID,
		Formats:    []product.Format{format},
	})
	if err != nil {
		return nil, err
	}
	if err = productrepo.NewGormProductRepository(db, noopTracker{}).Add(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
