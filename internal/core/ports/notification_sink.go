package ports

import (
	"context"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/order"
)

// Notification is a resolved order event: the recipient address is known.
type Notification struct {
	Kind    order.EventKind
	Role    order.RecipientRole
	To      string
	OrderID kernel.UUID
	ItemID  *kernel.UUID
	Token   *kernel.UUID
	Detail  string
}

// NotificationSink delivers notifications. Rendering and transport are the
// sink's business.
type NotificationSink interface {
	Notify(ctx context.Context, n Notification) error
}
