package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Client code must
// explicitly manage the transaction lifecycle; repositories obtained after
// Begin run inside the transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback returns error if no transaction is active.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	ProductRepository() ProductRepository
	PricingRepository() PricingRepository
	PricingGeometryRepository() PricingGeometryRepository
	IdentityRepository() IdentityRepository
}
