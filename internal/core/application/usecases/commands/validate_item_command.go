package commands

import (
	"errors"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/guard"
)

var ErrValidateItemCommandIsNotConstructed = errors.New(
	"ValidateItemCommand must be created via NewValidateItemCommand constructor",
)

// ValidateItemCommand is a validator's answer, keyed by the token sent to them.
type ValidateItemCommand struct { //nolint:recvcheck //using for validation
	token   kernel.UUID
	approve bool

	guard guard.ConstructorGuard
}

func NewValidateItemCommand(token kernel.UUID, approve bool) (ValidateItemCommand, error) {
	if err := token.Validate(); err != nil {
		return ValidateItemCommand{}, err
	}

	return ValidateItemCommand{
		token:   token,
		approve: approve,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ValidateItemCommand) Validate() error {
	return c.guard.Validate(ErrValidateItemCommandIsNotConstructed)
}

func (c ValidateItemCommand) Token() kernel.UUID {
	return c.token
}

func (c ValidateItemCommand) Approve() bool {
	return c.approve
}
