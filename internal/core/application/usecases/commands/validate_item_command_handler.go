package commands

import (
	"context"
	"time"
)

type ValidateItemCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher EventDispatcher
}

func NewValidateItemCommandHandler(uowFactory OrderUoWFactory, dispatcher EventDispatcher) ValidateItemCommandHandler {
	return ValidateItemCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle approves or refuses the item holding the token. A refusal can
// finish the order, which then notifies the client.
func (h ValidateItemCommandHandler) Handle(ctx context.Context, cmd ValidateItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetByItemToken(ctx, cmd.Token())
	if err != nil {
		return err
	}

	if cmd.Approve() {
		err = o.ApproveValidation(cmd.Token())
	} else {
		err = o.RefuseValidation(cmd.Token(), time.Now().UTC())
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publish(h.dispatcher, o)
	return nil
}
