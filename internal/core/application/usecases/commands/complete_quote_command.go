package commands

import (
	"errors"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/guard"
)

var ErrCompleteQuoteCommandIsNotConstructed = errors.New(
	"CompleteQuoteCommand must be created via NewCompleteQuoteCommand constructor",
)

// CompleteQuoteCommand tells the client that every line of a Pending order
// has a price.
type CompleteQuoteCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteQuoteCommand(orderID kernel.UUID) (CompleteQuoteCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteQuoteCommand{}, err
	}

	return CompleteQuoteCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteQuoteCommand) Validate() error {
	return c.guard.Validate(ErrCompleteQuoteCommandIsNotConstructed)
}

func (c CompleteQuoteCommand) OrderID() kernel.UUID {
	return c.orderID
}
