// Package productrepo persists products with their formats and metadata
// contacts, and offers a cached read-only catalog for pricing.
package productrepo

import (
	"geoshop/internal/adapters/out/postgres/postgis"
	"geoshop/internal/adapters/out/postgres/pricingrepo"
	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO is the row of the products table. Metadata is flattened into
// nullable columns; a product without metadata has them all NULL.
type ProductDTO struct {
	ID                    uuid.UUID              `gorm:"type:uuid;primaryKey"`
	Label                 string                 `gorm:"size:250;not null"`
	Status                int                    `gorm:"not null"`
	PricingID             uuid.UUID              `gorm:"type:uuid;not null"`
	Pricing               pricingrepo.PricingDTO `gorm:"foreignKey:PricingID"`
	GroupID               *uuid.UUID             `gorm:"type:uuid;index"`
	FreeWhenSubscribed    bool
	Geom                  postgis.Geometry
	ProviderID            *uuid.UUID         `gorm:"type:uuid;index"`
	MetadataIDName        *string            `gorm:"size:50"`
	MetadataName          *string            `gorm:"size:255"`
	MetadataAccessibility *string            `gorm:"size:30"`
	Formats               []ProductFormatDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Contacts              []ContactDTO       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// DataFormatDTO is shared between products.
type DataFormatDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"size:100;not null"`
	IsManual bool
}

func (DataFormatDTO) TableName() string {
	return "data_formats"
}

type ProductFormatDTO struct {
	ProductID uuid.UUID     `gorm:"type:uuid;primaryKey"`
	FormatID  uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Position  int           `gorm:"not null"`
	Format    DataFormatDTO `gorm:"foreignKey:FormatID"`
}

func (ProductFormatDTO) TableName() string {
	return "product_formats"
}

type ContactDTO struct {
	ProductID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	IdentityID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email       string    `gorm:"size:254"`
	IsValidator bool
	Priority    int
}

func (ContactDTO) TableName() string {
	return "metadata_contacts"
}

func fromDomain(p *product.Product) ProductDTO {
	dto := ProductDTO{
		ID:                 p.ID().Bytes(),
		Label:              p.Label(),
		Status:             int(p.Status()),
		PricingID:          p.Pricing().ID().Bytes(),
		GroupID:            kernel.BytesPtr(p.GroupID()),
		FreeWhenSubscribed: p.FreeWhenSubscribed(),
		Geom:               postgis.FromKernelPtr(p.Geom()),
		ProviderID:         kernel.BytesPtr(p.ProviderID()),
	}

	for position, f := range p.Formats() {
		dto.Formats = append(dto.Formats, ProductFormatDTO{
			ProductID: dto.ID,
			FormatID:  f.ID().Bytes(),
			Position:  position,
			Format: DataFormatDTO{
				ID:       f.ID().Bytes(),
				Name:     f.Name(),
				IsManual: f.IsManual(),
			},
		})
	}

	if md := p.Metadata(); md != nil {
		idName, name, accessibility := md.IDName(), md.Name(), md.Accessibility().String()
		dto.MetadataIDName = &idName
		dto.MetadataName = &name
		dto.MetadataAccessibility = &accessibility
		for _, c := range md.Contacts() {
			dto.Contacts = append(dto.Contacts, ContactDTO{
				ProductID:   dto.ID,
				IdentityID:  c.IdentityID.Bytes(),
				Email:       c.Email,
				IsValidator: c.IsValidator,
				Priority:    c.Priority,
			})
		}
	}

	return dto
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	pr, err := pricingrepo.ToDomain(dto.Pricing)
	if err != nil {
		return nil, err
	}
	groupID, err := kernel.UUIDFromPtr(dto.GroupID)
	if err != nil {
		return nil, err
	}
	providerID, err := kernel.UUIDFromPtr(dto.ProviderID)
	if err != nil {
		return nil, err
	}
	geom, err := dto.Geom.ToKernelPtr()
	if err != nil {
		return nil, err
	}

	formats := make([]product.Format, 0, len(dto.Formats))
	for _, pf := range dto.Formats {
		formatID, idErr := kernel.UUIDFromBytes(pf.Format.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		f, fErr := product.NewFormat(formatID, pf.Format.Name, pf.Format.IsManual)
		if fErr != nil {
			return nil, fErr
		}
		formats = append(formats, f)
	}

	metadata, err := metadataToDomain(dto)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Label, product.Status(dto.Status), pr, product.Attributes{
		GroupID:            groupID,
		FreeWhenSubscribed: dto.FreeWhenSubscribed,
		Geom:               geom,
		ProviderID:         providerID,
		Formats:            formats,
		Metadata:           metadata,
	})
}

func metadataToDomain(dto ProductDTO) (*product.Metadata, error) {
	if dto.MetadataIDName == nil {
		return nil, nil
	}

	contacts := make([]product.Contact, 0, len(dto.Contacts))
	for _, c := range dto.Contacts {
		identityID, err := kernel.UUIDFromBytes(c.IdentityID[:])
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, product.Contact{
			IdentityID:  identityID,
			Email:       c.Email,
			IsValidator: c.IsValidator,
			Priority:    c.Priority,
		})
	}

	var name, accessibility string
	if dto.MetadataName != nil {
		name = *dto.MetadataName
	}
	if dto.MetadataAccessibility != nil {
		accessibility = *dto.MetadataAccessibility
	}
	return product.NewMetadata(*dto.MetadataIDName, name, product.ParseAccessibility(accessibility), contacts)
}
