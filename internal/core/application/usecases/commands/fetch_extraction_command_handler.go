package commands

import (
	"context"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/order"
	"geoshop/internal/core/domain/model/product"
	"geoshop/internal/core/ports"
)

// ExtractItem is one line handed to a provider.
type ExtractItem struct {
	OrderID      kernel.UUID
	ItemID       kernel.UUID
	ClientID     kernel.UUID
	ProductID    kernel.UUID
	ProductLabel string
	FormatID     *kernel.UUID
	FormatName   string
	// IsManual tells the provider the format is produced by hand.
	IsManual bool
	Geom     kernel.Geometry
}

type FetchExtractionCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.ProductCatalog
}

func NewFetchExtractionCommandHandler(uowFactory OrderUoWFactory, catalog ports.ProductCatalog) FetchExtractionCommandHandler {
	return FetchExtractionCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle hands out every Pending item of the provider's products. Each
// order is reloaded under its row lock so an item is handed out once even
// when providers poll concurrently.
func (h FetchExtractionCommandHandler) Handle(ctx context.Context, cmd FetchExtractionCommand) ([]ExtractItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	candidates, err := orderRepo.GetAllAwaitingExtraction(ctx, cmd.ProviderID())
	if err != nil {
		return nil, err
	}

	extracted := make([]ExtractItem, 0)
	for _, candidate := range candidates {
		o, getErr := orderRepo.GetForUpdate(ctx, candidate.ID())
		if getErr != nil {
			return nil, getErr
		}

		items, pickErr := h.pick(ctx, o, cmd.ProviderID())
		if pickErr != nil {
			return nil, pickErr
		}
		if len(items) == 0 {
			continue
		}

		ids := make([]kernel.UUID, 0, len(items))
		for _, item := range items {
			ids = append(ids, item.ItemID)
		}
		if err = o.StartExtraction(ids); err != nil {
			return nil, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
		extracted = append(extracted, items...)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return extracted, nil
}

func (h FetchExtractionCommandHandler) pick(ctx context.Context, o *order.Order, providerID kernel.UUID) ([]ExtractItem, error) {
	if o.Status().ValidateExtractInput() != nil {
		return nil, nil
	}

	var items []ExtractItem
	for _, item := range o.Items() {
		if item.Status() != order.ItemPending {
			continue
		}
		prod, err := h.catalog.Get(ctx, item.ProductID())
		if err != nil {
			return nil, err
		}
		if !providedBy(prod, providerID) {
			continue
		}

		extractItem := ExtractItem{
			OrderID:      o.ID(),
			ItemID:       item.ID(),
			ClientID:     o.ClientID(),
			ProductID:    prod.ID(),
			ProductLabel: prod.Label(),
			FormatID:     item.FormatID(),
			Geom:         o.Geom(),
		}
		if formatID := item.FormatID(); formatID != nil {
			if format, ok := prod.Format(*formatID); ok {
				extractItem.FormatName = format.Name()
				extractItem.IsManual = format.IsManual()
			}
		}
		items = append(items, extractItem)
	}
	return items, nil
}

func providedBy(prod *product.Product, providerID kernel.UUID) bool {
	p := prod.ProviderID()
	return p != nil && p.IsEqual(providerID)
}
