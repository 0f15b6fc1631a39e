package ports

import (
	"context"

	"geoshop/internal/core/domain/model/identity"
	"geoshop/internal/core/domain/model/kernel"
)

type IdentityRepository interface {
	Add(ctx context.Context, aggregate *identity.Identity) error
	Get(ctx context.Context, id kernel.UUID) (*identity.Identity, error)
}
