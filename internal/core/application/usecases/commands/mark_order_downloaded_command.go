package commands

import (
	"errors"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/guard"
)

var ErrMarkOrderDownloadedCommandIsNotConstructed = errors.New(
	"MarkOrderDownloadedCommand must be created via NewMarkOrderDownloadedCommand constructor",
)

type MarkOrderDownloadedCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkOrderDownloadedCommand(orderID kernel.UUID) (MarkOrderDownloadedCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkOrderDownloadedCommand{}, err
	}

	return MarkOrderDownloadedCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c MarkOrderDownloadedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderDownloadedCommandIsNotConstructed)
}

func (c MarkOrderDownloadedCommand) OrderID() kernel.UUID {
	return c.orderID
}
