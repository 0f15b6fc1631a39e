package commands

import (
	"errors"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/guard"
)

var ErrUploadExtractResultCommandIsNotConstructed = errors.New(
	"UploadExtractResultCommand must be created via NewUploadExtractResultCommand constructor",
)

// UploadExtractResultCommand reports that a provider delivered an item.
// The file itself is stored by the caller.
type UploadExtractResultCommand struct { //nolint:recvcheck //using for validation
	providerID kernel.UUID
	orderID    kernel.UUID
	itemID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewUploadExtractResultCommand(providerID, orderID, itemID kernel.UUID) (UploadExtractResultCommand, error) {
	if err := errors.Join(providerID.Validate(), orderID.Validate(), itemID.Validate()); err != nil {
		return UploadExtractResultCommand{}, err
	}

	return UploadExtractResultCommand{
		providerID: providerID,
		orderID:    orderID,
		itemID:     itemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UploadExtractResultCommand) Validate() error {
	return c.guard.Validate(ErrUploadExtractResultCommandIsNotConstructed)
}

func (c UploadExtractResultCommand) ProviderID() kernel.UUID {
	return c.providerID
}

func (c UploadExtractResultCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UploadExtractResultCommand) ItemID() kernel.UUID {
	return c.itemID
}
