// Package kernel holds the shared value objects of the ordering domain:
// UUID identifiers, Money amounts (shopspring/decimal with an ISO currency)
// and Geometry (paulmach/orb geometries tagged with their SRID).
//
// All of them are immutable and must be created through their constructors;
// a zero value fails Validate.
package kernel
