// Package identity models the people the ordering domain deals with:
// clients, invoice contacts, metadata contacts and data providers.
package identity

import (
	"errors"
	"net/mail"
	"strings"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/errs"
	"geoshop/internal/pkg/guard"
)

var ErrIdentityIsNotConstructed = errors.New("Identity must be created via NewIdentity constructor")

// Identity is a person or organisation. Subscribed marks holders of a
// permanent subscription, which makes some products free.
type Identity struct {
	id          kernel.UUID
	email       string
	name        string
	companyName string
	subscribed  bool
	guard       guard.ConstructorGuard
}

func NewIdentity(id kernel.UUID, email, name, companyName string, subscribed bool) (*Identity, error) {
	i := &Identity{
		name:        strings.TrimSpace(name),
		companyName: strings.TrimSpace(companyName),
		subscribed:  subscribed,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(i.setID(id), i.setEmail(email)); err != nil {
		return nil, err
	}

	return i, nil
}

func (i *Identity) Validate() error {
	if i == nil {
		return ErrIdentityIsNotConstructed
	}
	return i.guard.Validate(ErrIdentityIsNotConstructed)
}

func (i *Identity) ID() kernel.UUID {
	return i.id
}

func (i *Identity) Email() string {
	return i.email
}

func (i *Identity) Name() string {
	return i.name
}

func (i *Identity) CompanyName() string {
	return i.companyName
}

func (i *Identity) IsSubscribed() bool {
	return i.subscribed
}

// SetSubscribed is used by admins when a subscription starts or ends.
func (i *Identity) SetSubscribed(subscribed bool) {
	i.subscribed = subscribed
}

func (i *Identity) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Identity) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	i.email = addr.Address
	return nil
}
