package commands

import (
	"errors"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand adds a product to a Draft, optionally with a format.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	itemID    kernel.UUID
	productID kernel.UUID
	formatID  *kernel.UUID

	guard guard.ConstructorGuard
}

func NewAddOrderItemCommand(orderID, itemID, productID kernel.UUID, formatID *kernel.UUID) (AddOrderItemCommand, error) {
	errList := []error{orderID.Validate(), itemID.Validate(), productID.Validate()}
	if formatID != nil {
		errList = append(errList, formatID.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return AddOrderItemCommand{}, err
	}

	return AddOrderItemCommand{
		orderID:   orderID,
		itemID:    itemID,
		productID: productID,
		formatID:  formatID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c AddOrderItemCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c AddOrderItemCommand) FormatID() *kernel.UUID {
	return c.formatID
}
