package commands

import (
	"errors"
	"time"

	"geoshop/internal/pkg/errs"
	"geoshop/internal/pkg/guard"
)

var ErrArchiveProcessedOrdersCommandIsNotConstructed = errors.New(
	"ArchiveProcessedOrdersCommand must be created via NewArchiveProcessedOrdersCommand constructor",
)

// ArchiveProcessedOrdersCommand retires Processed orders whose processing
// date is older than a cutoff.
//
// Example:
//
//	cmd, _ := NewArchiveProcessedOrdersCommand(time.Now().Add(-30 * 24 * time.Hour))
//	archived, err := handler.Handle(ctx, cmd)
type ArchiveProcessedOrdersCommand struct { //nolint:recvcheck //using for validation
	before time.Time

	guard guard.ConstructorGuard
}

func NewArchiveProcessedOrdersCommand(before time.Time) (ArchiveProcessedOrdersCommand, error) {
	if before.IsZero() {
		return ArchiveProcessedOrdersCommand{}, errs.NewValueIsRequiredError("before")
	}

	return ArchiveProcessedOrdersCommand{
		before: before,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ArchiveProcessedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrArchiveProcessedOrdersCommandIsNotConstructed)
}

func (c ArchiveProcessedOrdersCommand) Before() time.Time {
	return c.before
}
