package ports

import (
	"context"
	"time"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Items are stored with their order and loaded with it.
type OrderRepository interface {
	// Add persists a new order with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order if its stored version still matches
	// aggregate.Version() and bumps the version. A lost race returns an
	// error wrapping errs.ErrVersionIsInvalid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	// Only meaningful inside UnitOfWork.Begin/Commit.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByItemToken finds the order owning the item a validation token was
	// issued for. The row is locked like GetForUpdate.
	GetByItemToken(ctx context.Context, token kernel.UUID) (*order.Order, error)

	// GetLastDraft returns the most recently created Draft of a client.
	GetLastDraft(ctx context.Context, clientID kernel.UUID) (*order.Order, error)

	// GetAllAwaitingExtraction returns orders in an extraction status that
	// have Pending items whose product is delivered by providerID.
	GetAllAwaitingExtraction(ctx context.Context, providerID kernel.UUID) ([]*order.Order, error)

	// GetAllProcessedBefore returns Processed orders whose processing date is
	// older than before.
	GetAllProcessedBefore(ctx context.Context, before time.Time) ([]*order.Order, error)
}
