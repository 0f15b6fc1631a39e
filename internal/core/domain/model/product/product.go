package product

import (
	"errors"
	"fmt"
	"strings"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/pricing"
	"geoshop/internal/pkg/errs"
	"geoshop/internal/pkg/guard"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// Attributes are the optional parts of a product.
type Attributes struct {
	// GroupID is the parent group. Grouping is one level deep.
	GroupID            *kernel.UUID
	FreeWhenSubscribed bool
	// Geom restricts where the product exists; it drives group expansion.
	Geom       *kernel.Geometry
	ProviderID *kernel.UUID
	Formats    []Format
	Metadata   *Metadata
}

// Product is a sellable dataset. Its Pricing is shared with other products
// and read-only from here.
type Product struct {
	id      kernel.UUID
	label   string
	status  Status
	pricing *pricing.Pricing
	attrs   Attributes
	guard   guard.ConstructorGuard
}

// NewProduct creates a product in DRAFT status.
func NewProduct(id kernel.UUID, label string, p *pricing.Pricing, attrs Attributes) (*Product, error) {
	return RestoreProduct(id, label, Draft, p, attrs)
}

func RestoreProduct(id kernel.UUID, label string, status Status, p *pricing.Pricing, attrs Attributes) (*Product, error) {
	product := &Product{
		label:  strings.TrimSpace(label),
		status: status,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setLabel(),
		status.Validate(),
		product.setPricing(p),
		product.setAttributes(attrs),
	); err != nil {
		return nil, err
	}

	return product, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Label() string {
	return p.label
}

func (p *Product) Status() Status {
	return p.status
}

func (p *Product) Pricing() *pricing.Pricing {
	return p.pricing
}

func (p *Product) GroupID() *kernel.UUID {
	return p.attrs.GroupID
}

func (p *Product) FreeWhenSubscribed() bool {
	return p.attrs.FreeWhenSubscribed
}

func (p *Product) Geom() *kernel.Geometry {
	return p.attrs.Geom
}

func (p *Product) ProviderID() *kernel.UUID {
	return p.attrs.ProviderID
}

func (p *Product) Metadata() *Metadata {
	return p.attrs.Metadata
}

// Formats is the projection of formats registered for the product.
func (p *Product) Formats() []Format {
	return append([]Format(nil), p.attrs.Formats...)
}

// HasFormat reports whether formatID is one of the product's formats.
func (p *Product) HasFormat(formatID kernel.UUID) bool {
	_, ok := p.Format(formatID)
	return ok
}

func (p *Product) Format(formatID kernel.UUID) (Format, bool) {
	for _, f := range p.attrs.Formats {
		if f.ID().IsEqual(formatID) {
			return f, true
		}
	}
	return Format{}, false
}

// FirstFormat is the fallback used when a group child doesn't offer the
// format chosen on the group item.
func (p *Product) FirstFormat() (Format, bool) {
	if len(p.attrs.Formats) == 0 {
		return Format{}, false
	}
	return p.attrs.Formats[0], true
}

// IsOrderable is true only for PUBLISHED products. PUBLISHED_ONLY_IN_GROUP
// ones enter an order through group expansion.
func (p *Product) IsOrderable() bool {
	return p.status == Published
}

// IsExpandable tells whether the product takes part in its group, both when
// the group is priced and when it is expanded at confirmation.
func (p *Product) IsExpandable() bool {
	return p.status == Published || p.status == PublishedOnlyInGroup
}

// RequiresValidation reports whether the metadata asks for approval.
func (p *Product) RequiresValidation() bool {
	return p.attrs.Metadata != nil && p.attrs.Metadata.Accessibility() == ApprovalNeeded
}

// Publish moves a product to PUBLISHED, or PUBLISHED_ONLY_IN_GROUP when
// onlyInGroup is set. A group-only product needs a parent group.
func (p *Product) Publish(onlyInGroup bool) error {
	if p.status == Deprecated {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to publish", p.status),
		)
	}
	if onlyInGroup {
		if p.attrs.GroupID == nil {
			return errs.NewValueIsRequiredErrorWithCause("group", errors.New("a group-only product needs a group"))
		}
		p.status = PublishedOnlyInGroup
		return nil
	}
	p.status = Published
	return nil
}

func (p *Product) Deprecate() {
	p.status = Deprecated
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setLabel() error {
	if p.label == "" {
		return errs.NewValueIsRequiredError("label")
	}
	return nil
}

func (p *Product) setPricing(pr *pricing.Pricing) error {
	if err := pr.Validate(); err != nil {
		return err
	}
	p.pricing = pr
	return nil
}

func (p *Product) setAttributes(attrs Attributes) error {
	if attrs.GroupID != nil {
		if err := attrs.GroupID.Validate(); err != nil {
			return err
		}
		if p.id.IsEqual(*attrs.GroupID) {
			return errs.NewValueIsInvalidErrorWithCause("group", errors.New("a product cannot be its own group"))
		}
	}
	if attrs.Geom != nil {
		if err := attrs.Geom.Validate(); err != nil {
			return err
		}
		if !attrs.Geom.IsPolygonal() {
			return errs.NewValueIsInvalidErrorWithCause("geom", errors.New("product geometry must be polygonal"))
		}
	}
	if p.status == PublishedOnlyInGroup && attrs.GroupID == nil {
		return errs.NewValueIsRequiredErrorWithCause("group", errors.New("a group-only product needs a group"))
	}
	p.attrs = attrs
	p.attrs.Formats = append([]Format(nil), attrs.Formats...)
	return nil
}
