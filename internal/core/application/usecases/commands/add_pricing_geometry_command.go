package commands

import (
	"errors"
	"strings"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/guard"
)

var ErrAddPricingGeometryCommandIsNotConstructed = errors.New(
	"AddPricingGeometryCommand must be created via NewAddPricingGeometryCommand constructor",
)

// AddPricingGeometryCommand adds a feature to a pricing layer: a zone with
// a unit price, or a countable point. A nil pricing id makes the feature
// shared by all object-count pricings.
type AddPricingGeometryCommand struct { //nolint:recvcheck //using for validation
	geometryID kernel.UUID
	name       string
	geom       kernel.Geometry
	pricingID  *kernel.UUID
	unitPrice  *kernel.Money

	guard guard.ConstructorGuard
}

func NewAddPricingGeometryCommand(
	geometryID kernel.UUID,
	name string,
	geom kernel.Geometry,
	pricingID *kernel.UUID,
	unitPrice *kernel.Money,
) (AddPricingGeometryCommand, error) {
	var errList []error
	errList = append(errList, geometryID.Validate(), geom.Validate())
	if pricingID != nil {
		errList = append(errList, pricingID.Validate())
	}
	if unitPrice != nil {
		errList = append(errList, unitPrice.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return AddPricingGeometryCommand{}, err
	}

	return AddPricingGeometryCommand{
		geometryID: geometryID,
		name:       strings.TrimSpace(name),
		geom:       geom,
		pricingID:  pricingID,
		unitPrice:  unitPrice,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AddPricingGeometryCommand) Validate() error {
	return c.guard.Validate(ErrAddPricingGeometryCommandIsNotConstructed)
}

func (c AddPricingGeometryCommand) GeometryID() kernel.UUID {
	return c.geometryID
}

func (c AddPricingGeometryCommand) Name() string {
	return c.name
}

func (c AddPricingGeometryCommand) Geom() kernel.Geometry {
	return c.geom
}

func (c AddPricingGeometryCommand) PricingID() *kernel.UUID {
	return c.pricingID
}

func (c AddPricingGeometryCommand) UnitPrice() *kernel.Money {
	return c.unitPrice
}
