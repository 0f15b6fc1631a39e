// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"time"

	"geoshop/internal/core/domain/model/order"
	"geoshop/internal/core/domain/services"
	"geoshop/internal/core/ports"

	"github.com/shopspring/decimal"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	PricingRepoFactory interface {
		PricingRepository() ports.PricingRepository
	}

	PricingGeometryRepoFactory interface {
		PricingGeometryRepository() ports.PricingGeometryRepository
	}

	IdentityRepoFactory interface {
		IdentityRepository() ports.IdentityRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderingUoW is used by commands that price or confirm an order and
	// therefore need the subscription state of its parties.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   identityRepo := uow.IdentityRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderingUoW interface {
		TxManager
		OrderRepoFactory
		IdentityRepoFactory
	}

	OrderingUoWFactory interface {
		Create() OrderingUoW
	}

	// CatalogUoW covers pricings, pricing layers and products.
	CatalogUoW interface {
		TxManager
		ProductRepoFactory
		PricingRepoFactory
		PricingGeometryRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	IdentityUoW interface {
		TxManager
		IdentityRepoFactory
	}

	IdentityUoWFactory interface {
		Create() IdentityUoW
	}
)

// Domain services and outbound collaborators used by the handlers.
type (
	// ItemRepricer prices the items of a Draft order.
	ItemRepricer interface {
		Reprice(ctx context.Context, o *order.Order, sub services.Subscription) error
		VATRate() decimal.Decimal
	}

	OrderConfirmer interface {
		Confirm(ctx context.Context, o *order.Order, sub services.Subscription, now time.Time) error
	}

	// EventDispatcher hands events over for delivery. It must not block.
	EventDispatcher interface {
		Dispatch(events ...order.Event)
	}

	// CatalogInvalidator drops cached catalog entries after a catalog write.
	CatalogInvalidator interface {
		Invalidate()
	}
)
