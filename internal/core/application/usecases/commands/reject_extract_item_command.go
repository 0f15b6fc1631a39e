package commands

import (
	"errors"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/guard"
)

var ErrRejectExtractItemCommandIsNotConstructed = errors.New(
	"RejectExtractItemCommand must be created via NewRejectExtractItemCommand constructor",
)

// RejectExtractItemCommand reports that a provider cannot deliver an item.
type RejectExtractItemCommand struct { //nolint:recvcheck //using for validation
	providerID kernel.UUID
	orderID    kernel.UUID
	itemID     kernel.UUID

	guard guard.ConstructorGuard
}

func NewRejectExtractItemCommand(providerID, orderID, itemID kernel.UUID) (RejectExtractItemCommand, error) {
	if err := errors.Join(providerID.Validate(), orderID.Validate(), itemID.Validate()); err != nil {
		return RejectExtractItemCommand{}, err
	}

	return RejectExtractItemCommand{
		providerID: providerID,
		orderID:    orderID,
		itemID:     itemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RejectExtractItemCommand) Validate() error {
	return c.guard.Validate(ErrRejectExtractItemCommandIsNotConstructed)
}

func (c RejectExtractItemCommand) ProviderID() kernel.UUID {
	return c.providerID
}

func (c RejectExtractItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RejectExtractItemCommand) ItemID() kernel.UUID {
	return c.itemID
}
