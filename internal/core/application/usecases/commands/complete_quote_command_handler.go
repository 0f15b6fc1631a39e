package commands

import (
	"context"
	"errors"
	"fmt"

	"geoshop/internal/pkg/errs"
)

var ErrQuoteIsIncomplete = errors.New("some items have no price yet")

type CompleteQuoteCommandHandler struct {
	uowFactory OrderUoWFactory
	pricer     ItemRepricer
	dispatcher EventDispatcher
}

func NewCompleteQuoteCommandHandler(
	uowFactory OrderUoWFactory,
	pricer ItemRepricer,
	dispatcher EventDispatcher,
) CompleteQuoteCommandHandler {
	return CompleteQuoteCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
		dispatcher: dispatcher,
	}
}

// Handle moves the order to QuoteDone. An incomplete quote is reported as
// an invalid value wrapping ErrQuoteIsIncomplete and nothing is written.
func (h CompleteQuoteCommandHandler) Handle(ctx context.Context, cmd CompleteQuoteCommand) error {
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

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	done, err := o.QuoteDone(h.pricer.VATRate())
	if err != nil {
		return err
	}
	if !done {
		return errs.NewValueIsInvalidErrorWithCause(
			"quote",
			fmt.Errorf("order %s: %w", o.ID(), ErrQuoteIsIncomplete),
		)
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
