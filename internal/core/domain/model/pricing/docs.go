// Package pricing models the operator-maintained pricing rules of the catalog.
//
// A Pricing carries a Type and optional base fee, min, max and unit price.
// Rule turns it into one variant of a closed set (FreeRule, SingleRule, ...)
// that the pricing engine dispatches on with an exhaustive type switch.
// Codes that this build does not know survive as UnknownRule, so new types
// can be added administratively before the code catches up.
//
// Geometry is a priced zone or a counted point of a pricing layer.
package pricing
