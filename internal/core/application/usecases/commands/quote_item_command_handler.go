package commands

import (
	"context"
)

type QuoteItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewQuoteItemCommandHandler(uowFactory OrderUoWFactory) QuoteItemCommandHandler {
	return QuoteItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the quote. The order stays Pending until CompleteQuote.
func (h QuoteItemCommandHandler) Handle(ctx context.Context, cmd QuoteItemCommand) error {
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

	if err = o.SetItemQuote(cmd.ItemID(), cmd.Price(), cmd.BaseFee()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
