package commands

import (
	"errors"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/guard"
)

var ErrSetItemFormatCommandIsNotConstructed = errors.New(
	"SetItemFormatCommand must be created via NewSetItemFormatCommand constructor",
)

type SetItemFormatCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	itemID   kernel.UUID
	formatID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSetItemFormatCommand(orderID, itemID, formatID kernel.UUID) (SetItemFormatCommand, error) {
	if err := errors.Join(orderID.Validate(), itemID.Validate(), formatID.Validate()); err != nil {
		return SetItemFormatCommand{}, err
	}

	return SetItemFormatCommand{
		orderID:  orderID,
		itemID:   itemID,
		formatID: formatID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SetItemFormatCommand) Validate() error {
	return c.guard.Validate(ErrSetItemFormatCommandIsNotConstructed)
}

func (c SetItemFormatCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SetItemFormatCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c SetItemFormatCommand) FormatID() kernel.UUID {
	return c.formatID
}
