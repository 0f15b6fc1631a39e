package pricing

import (
	"errors"
	"fmt"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/errs"
	"geoshop/internal/pkg/guard"
)

var ErrGeometryIsNotConstructed = errors.New("pricing Geometry must be created via NewGeometry constructor")

// Geometry is a named feature of a pricing layer: either a priced zone
// (FROM_PRICING_LAYER, with its own unit price per hectare) or a counted
// point (BY_NUMBER_OBJECTS). Points may be unlinked and shared; the owning
// pricing filters them at query time.
//
// Geometric validity is deliberately not enforced here.
type Geometry struct {
	id        kernel.UUID
	name      string
	geom      kernel.Geometry
	pricingID *kernel.UUID
	unitPrice *kernel.Money
	guard     guard.ConstructorGuard
}

func NewGeometry(
	id kernel.UUID,
	name string,
	geom kernel.Geometry,
	pricingID *kernel.UUID,
	unitPrice *kernel.Money,
) (*Geometry, error) {
	g := &Geometry{
		id:        id,
		name:      name,
		geom:      geom,
		pricingID: pricingID,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}

	var errList []error
	errList = append(errList, id.Validate(), geom.Validate())
	if pricingID != nil {
		errList = append(errList, pricingID.Validate())
	}
	if unitPrice != nil {
		errList = append(errList, unitPrice.Validate())
		if geom.Validate() == nil && !geom.IsPolygonal() {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"unit_price",
				fmt.Errorf("only zones carry a unit price, got %s", geom.Orb().GeoJSONType()),
			))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return g, nil
}

func (g *Geometry) Validate() error {
	if g == nil {
		return ErrGeometryIsNotConstructed
	}
	return g.guard.Validate(ErrGeometryIsNotConstructed)
}

func (g *Geometry) ID() kernel.UUID {
	return g.id
}

func (g *Geometry) Name() string {
	return g.name
}

func (g *Geometry) Geom() kernel.Geometry {
	return g.geom
}

// PricingID is nil for features of the shared point pool.
func (g *Geometry) PricingID() *kernel.UUID {
	return g.pricingID
}

// UnitPrice is the per-hectare price of a zone, nil for points.
func (g *Geometry) UnitPrice() *kernel.Money {
	return g.unitPrice
}
