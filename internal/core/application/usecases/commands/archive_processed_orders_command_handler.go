package commands

import (
	"context"
)

type ArchiveProcessedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewArchiveProcessedOrdersCommandHandler(uowFactory OrderUoWFactory) ArchiveProcessedOrdersCommandHandler {
	return ArchiveProcessedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle archives every matching order in one transaction and returns how
// many were archived.
func (h ArchiveProcessedOrdersCommandHandler) Handle(ctx context.Context, cmd ArchiveProcessedOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	orders, err := orderRepo.GetAllProcessedBefore(ctx, cmd.Before())
	if err != nil {
		return 0, err
	}

	for _, o := range orders {
		if err = o.Archive(); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(orders), nil
}
