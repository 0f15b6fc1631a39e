// Package pricingrepo persists pricing rules and the geometries of pricing
// layers.
package pricingrepo

import (
	"geoshop/internal/adapters/out/postgres/columns"
	"geoshop/internal/adapters/out/postgres/postgis"
	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingDTO is the row of the pricings table. Products preload it.
type PricingDTO struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Name        string              `gorm:"size:255;not null"`
	PricingType string              `gorm:"size:30;not null"`
	Currency    string              `gorm:"type:char(3)"`
	BaseFee     decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	MinPrice    decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	MaxPrice    decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	UnitPrice   decimal.NullDecimal `gorm:"type:numeric(14,2)"`
}

func (PricingDTO) TableName() string {
	return "pricings"
}

// GeometryDTO is the row of the pricing_geometries table.
type GeometryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"size:255"`
	Geom      postgis.Geometry
	PricingID *uuid.UUID          `gorm:"type:uuid;index"`
	UnitPrice decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	// Currency comes from the owning pricing; shared points have none.
	Currency *string `gorm:"->;-:migration"`
}

func (GeometryDTO) TableName() string {
	return "pricing_geometries"
}

func FromDomain(p *pricing.Pricing) PricingDTO {
	return PricingDTO{
		ID:          p.ID().Bytes(),
		Name:        p.Name(),
		PricingType: p.Code(),
		Currency:    p.Currency(),
		BaseFee:     columns.Amount(p.BaseFee()),
		MinPrice:    columns.Amount(p.MinPrice()),
		MaxPrice:    columns.Amount(p.MaxPrice()),
		UnitPrice:   columns.Amount(p.UnitPrice()),
	}
}

// ToDomain rebuilds a pricing without re-running the creation checks, so
// rows with an unknown type still load.
func ToDomain(dto PricingDTO) (*pricing.Pricing, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var amounts pricing.Amounts
	for _, field := range []struct {
		target **kernel.Money
		value  decimal.NullDecimal
	}{
		{&amounts.BaseFee, dto.BaseFee},
		{&amounts.MinPrice, dto.MinPrice},
		{&amounts.MaxPrice, dto.MaxPrice},
		{&amounts.UnitPrice, dto.UnitPrice},
	} {
		m, moneyErr := columns.Money(field.value, dto.Currency)
		if moneyErr != nil {
			return nil, moneyErr
		}
		*field.target = m
	}

	return pricing.RestorePricing(id, dto.Name, dto.PricingType, dto.Currency, amounts)
}

func geometryFromDomain(g *pricing.Geometry) GeometryDTO {
	return GeometryDTO{
		ID:        g.ID().Bytes(),
		Name:      g.Name(),
		Geom:      postgis.FromKernel(g.Geom()),
		PricingID: kernel.BytesPtr(g.PricingID()),
		UnitPrice: columns.Amount(g.UnitPrice()),
	}
}

func geometryToDomain(dto GeometryDTO) (*pricing.Geometry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	pricingID, err := kernel.UUIDFromPtr(dto.PricingID)
	if err != nil {
		return nil, err
	}
	geom, err := dto.Geom.ToKernel()
	if err != nil {
		return nil, err
	}

	var unitPrice *kernel.Money
	if dto.UnitPrice.Valid && dto.Currency != nil {
		unitPrice, err = columns.Money(dto.UnitPrice, *dto.Currency)
		if err != nil {
			return nil, err
		}
	}

	return pricing.NewGeometry(id, dto.Name, geom, pricingID, unitPrice)
}
