package commands

import (
	"errors"
	"strings"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/errs"
	"geoshop/internal/pkg/guard"
)

var ErrCreateIdentityCommandIsNotConstructed = errors.New(
	"CreateIdentityCommand must be created via NewCreateIdentityCommand constructor",
)

// CreateIdentityCommand registers a client, an invoice contact or a
// metadata contact.
type CreateIdentityCommand struct { //nolint:recvcheck //using for validation
	identityID  kernel.UUID
	email       string
	name        string
	companyName string
	subscribed  bool

	guard guard.ConstructorGuard
}

func NewCreateIdentityCommand(
	identityID kernel.UUID,
	email, name, companyName string,
	subscribed bool,
) (CreateIdentityCommand, error) {
	cmd := CreateIdentityCommand{
		name:        strings.TrimSpace(name),
		companyName: strings.TrimSpace(companyName),
		subscribed:  subscribed,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		identityID.Validate(),
		cmd.setEmail(email),
	); err != nil {
		return CreateIdentityCommand{}, err
	}
	cmd.identityID = identityID

	return cmd, nil
}

func (c CreateIdentityCommand) Validate() error {
	return c.guard.Validate(ErrCreateIdentityCommandIsNotConstructed)
}

func (c CreateIdentityCommand) IdentityID() kernel.UUID {
	return c.identityID
}

func (c CreateIdentityCommand) Email() string {
	return c.email
}

func (c CreateIdentityCommand) Name() string {
	return c.name
}

func (c CreateIdentityCommand) CompanyName() string {
	return c.companyName
}

func (c CreateIdentityCommand) Subscribed() bool {
	return c.subscribed
}

func (c *CreateIdentityCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}
