package commands

import (
	"context"

	"geoshop/internal/core/domain/model/identity"
)

type CreateIdentityCommandHandler struct {
	uowFactory IdentityUoWFactory
}

func NewCreateIdentityCommandHandler(uowFactory IdentityUoWFactory) CreateIdentityCommandHandler {
	return CreateIdentityCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateIdentityCommandHandler) Handle(ctx context.Context, cmd CreateIdentityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	created, err := identity.NewIdentity(cmd.IdentityID(), cmd.Email(), cmd.Name(), cmd.CompanyName(), cmd.Subscribed())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.IdentityRepository().Add(ctx, created); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
