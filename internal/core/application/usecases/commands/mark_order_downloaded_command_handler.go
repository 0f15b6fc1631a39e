package commands

import (
	"context"
	"time"
)

type MarkOrderDownloadedCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewMarkOrderDownloadedCommandHandler(uowFactory OrderUoWFactory) MarkOrderDownloadedCommandHandler {
	return MarkOrderDownloadedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stamps the download dates of the order and its delivered items.
func (h MarkOrderDownloadedCommandHandler) Handle(ctx context.Context, cmd MarkOrderDownloadedCommand) error {
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

	if err = o.MarkDownloaded(time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
