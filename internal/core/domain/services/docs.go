// Package services holds the domain services that span aggregates: the
// pricing engine, the item pricer applying order-type rules on top of it and
// the confirmer that expands product groups before an order is confirmed.
package services
