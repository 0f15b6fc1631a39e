// Package order holds the Order aggregate and its items.
//
// An order starts as a Draft the client can edit freely. Confirmation fixes
// the item list and moves the order to Ready when every price is known, or
// to Pending while operators prepare a quote. From Ready onwards the
// extraction providers act on individual items and the order status is
// derived from them until the order is Processed, downloaded and finally
// Archived.
//
// Transitions that require somebody to act (quote requests, validation
// requests, download links) are recorded as Events and drained with
// PullEvents once the change has been persisted.
package order
