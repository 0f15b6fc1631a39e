// Package product holds the catalog: products, their formats, metadata and
// publication status.
//
// A product may belong to one group product. When an order containing a
// group is confirmed, the group line is replaced by the children whose
// geometry intersects the order.
package product
