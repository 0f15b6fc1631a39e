package pricing

import (
	"errors"
	"fmt"
	"strings"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/errs"
	"geoshop/internal/pkg/guard"
)

var ErrPricingIsNotConstructed = errors.New("Pricing must be created via NewPricing or RestorePricing constructor")

// Amounts groups the optional monetary parameters of a Pricing.
type Amounts struct {
	BaseFee   *kernel.Money
	MinPrice  *kernel.Money
	MaxPrice  *kernel.Money
	UnitPrice *kernel.Money
}

// Pricing is a reusable rule shared by many products. It is read-only to the
// pricing engine and never references an order.
type Pricing struct {
	id       kernel.UUID
	name     string
	code     string
	kind     Type
	currency string
	amounts  Amounts
	guard    guard.ConstructorGuard
}

// NewPricing creates a rule from an operator request. Recognised types that
// multiply a unit price must be given one.
func NewPricing(id kernel.UUID, name, code, currency string, amounts Amounts) (*Pricing, error) {
	p, err := RestorePricing(id, name, code, currency, amounts)
	if err != nil {
		return nil, err
	}
	if p.kind.RequiresUnitPrice() && amounts.UnitPrice == nil {
		return nil, errs.NewValueIsRequiredErrorWithCause(
			"unit_price",
			fmt.Errorf("%s pricing needs a unit price", p.kind),
		)
	}
	return p, nil
}

// RestorePricing rebuilds a persisted rule. Unknown codes and missing unit
// prices are accepted here; the engine degrades them to a manual quote.
func RestorePricing(id kernel.UUID, name, code, currency string, amounts Amounts) (*Pricing, error) {
	p := &Pricing{
		name:  strings.TrimSpace(name),
		code:  strings.TrimSpace(code),
		guard: guard.NewConstructorGuard(),
	}
	p.kind = ParseType(p.code)

	if err := errors.Join(
		p.setID(id),
		p.setCode(),
		p.setCurrency(currency),
		p.setAmounts(amounts),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Pricing) Validate() error {
	if p == nil {
		return ErrPricingIsNotConstructed
	}
	return p.guard.Validate(ErrPricingIsNotConstructed)
}

func (p *Pricing) ID() kernel.UUID {
	return p.id
}

func (p *Pricing) Name() string {
	return p.name
}

func (p *Pricing) Type() Type {
	return p.kind
}

// Code is the raw type code, preserved for unrecognised types.
func (p *Pricing) Code() string {
	return p.code
}

func (p *Pricing) Currency() string {
	return p.currency
}

func (p *Pricing) BaseFee() *kernel.Money {
	return p.amounts.BaseFee
}

func (p *Pricing) MinPrice() *kernel.Money {
	return p.amounts.MinPrice
}

func (p *Pricing) MaxPrice() *kernel.Money {
	return p.amounts.MaxPrice
}

func (p *Pricing) UnitPrice() *kernel.Money {
	return p.amounts.UnitPrice
}

// BaseFeeOrZero returns the base fee, treating an unset one as zero.
func (p *Pricing) BaseFeeOrZero() kernel.Money {
	if p.amounts.BaseFee != nil {
		return *p.amounts.BaseFee
	}
	zero, _ := kernel.ZeroMoney(p.currency)
	return zero
}

// Rule returns the strategy variant for this pricing.
func (p *Pricing) Rule() Rule {
	unit := p.amounts.UnitPrice
	switch p.kind {
	case Free:
		return FreeRule{}
	case Single:
		if unit == nil {
			return IncompleteRule{Type: p.kind, Missing: "unit_price"}
		}
		return SingleRule{UnitPrice: *unit}
	case ByNumberObjects:
		if unit == nil {
			return IncompleteRule{Type: p.kind, Missing: "unit_price"}
		}
		return ByNumberObjectsRule{UnitPrice: *unit}
	case ByArea:
		if unit == nil {
			return IncompleteRule{Type: p.kind, Missing: "unit_price"}
		}
		return ByAreaRule{UnitPrice: *unit}
	case FromPricingLayer:
		return FromPricingLayerRule{}
	case FromChildrenOfGroup:
		return FromChildrenOfGroupRule{}
	case Manual:
		return ManualRule{}
	case Unrecognized:
		return UnknownRule{Code: p.code}
	}
	return UnknownRule{Code: p.code}
}

func (p *Pricing) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pricing) setCode() error {
	if p.code == "" {
		return errs.NewValueIsRequiredError("pricing_type")
	}
	return nil
}

func (p *Pricing) setCurrency(currency string) error {
	zero, err := kernel.ZeroMoney(currency)
	if err != nil {
		return err
	}
	p.currency = zero.Currency()
	return nil
}

func (p *Pricing) setAmounts(a Amounts) error {
	for name, m := range map[string]*kernel.Money{
		"base_fee":   a.BaseFee,
		"min_price":  a.MinPrice,
		"max_price":  a.MaxPrice,
		"unit_price": a.UnitPrice,
	} {
		if m == nil {
			continue
		}
		if err := m.Validate(); err != nil {
			return err
		}
		if p.currency != "" && m.Currency() != p.currency {
			return errs.NewValueIsInvalidErrorWithCause(
				name,
				fmt.Errorf("%s is not in %s", m, p.currency),
			)
		}
	}

	if a.MinPrice != nil && a.MaxPrice != nil {
		if cmp, err := a.MinPrice.Compare(*a.MaxPrice); err == nil && cmp > 0 {
			return errs.NewValueIsOutOfRangeError("min_price", a.MinPrice.String(), "0", a.MaxPrice.String())
		}
	}

	p.amounts = a
	return nil
}
