package pricing

import "geoshop/internal/core/domain/model/kernel"

// Rule is the sealed set of pricing strategies. Only this package can add
// variants, so a type switch over them is exhaustive.
type Rule interface {
	isRule()
}

type FreeRule struct{}

type SingleRule struct {
	UnitPrice kernel.Money
}

// ByNumberObjectsRule counts the layer points strictly within the query polygon.
type ByNumberObjectsRule struct {
	UnitPrice kernel.Money
}

// ByAreaRule prices per hectare of the query polygon.
type ByAreaRule struct {
	UnitPrice kernel.Money
}

// FromPricingLayerRule sums per-zone hectare prices over intersecting zones.
type FromPricingLayerRule struct{}

// FromChildrenOfGroupRule sums the direct children of a group product.
type FromChildrenOfGroupRule struct{}

type ManualRule struct{}

// IncompleteRule is a recognised type missing a value it needs, typically
// the unit price.
type IncompleteRule struct {
	Type    Type
	Missing string
}

// UnknownRule keeps the raw code of an unrecognised type.
type UnknownRule struct {
	Code string
}

func (FreeRule) isRule()                {}
func (SingleRule) isRule()              {}
func (ByNumberObjectsRule) isRule()     {}
func (ByAreaRule) isRule()              {}
func (FromPricingLayerRule) isRule()    {}
func (FromChildrenOfGroupRule) isRule() {}
func (ManualRule) isRule()              {}
func (IncompleteRule) isRule()          {}
func (UnknownRule) isRule()             {}
