package commands

import (
	"errors"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/guard"
)

var ErrFetchExtractionCommandIsNotConstructed = errors.New(
	"FetchExtractionCommand must be created via NewFetchExtractionCommand constructor",
)

// FetchExtractionCommand is a provider's poll for work. Items handed out
// are marked as being extracted.
type FetchExtractionCommand struct { //nolint:recvcheck //using for validation
	providerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewFetchExtractionCommand(providerID kernel.UUID) (FetchExtractionCommand, error) {
	if err := providerID.Validate(); err != nil {
		return FetchExtractionCommand{}, err
	}

	return FetchExtractionCommand{
		providerID: providerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c FetchExtractionCommand) Validate() error {
	return c.guard.Validate(ErrFetchExtractionCommandIsNotConstructed)
}

func (c FetchExtractionCommand) ProviderID() kernel.UUID {
	return c.providerID
}
