package services

import (
	"context"
	"log/slog"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/order"
	"geoshop/internal/core/domain/model/pricing"
	"geoshop/internal/core/domain/model/product"
	"geoshop/internal/core/ports"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Policy is the commercial configuration applied on top of pricings.
type Policy struct {
	VATRate decimal.Decimal
	// SubscriberType is the order type whose items are free for
	// subscribers when the product says so.
	SubscriberType order.Type
	// FreeTypes are order types that never pay (public institutions).
	FreeTypes []order.Type
	// Workers bounds concurrent evaluations in Reprice.
	Workers int
}

// Subscription carries the subscription state of the parties of an order.
type Subscription struct {
	Client         bool
	InvoiceContact bool
}

func (s Subscription) Any() bool {
	return s.Client || s.InvoiceContact
}

// ManualPrice is an externally supplied price for MANUAL pricings.
type ManualPrice struct {
	Price   kernel.Money
	BaseFee kernel.Money
}

type PricingInput struct {
	Product      *product.Product
	Polygon      kernel.Geometry
	OrderType    order.Type
	Subscription Subscription
	Manual       *ManualPrice
}

// ItemPriceOutcome is what should be stored on the item. Priced=false
// leaves the item with a pending price.
type ItemPriceOutcome struct {
	Price   kernel.Money
	BaseFee kernel.Money
	Priced  bool
	Reason  Reason
	Detail  string
}

// ItemPricer applies the order-type rules and delegates the rest to the
// pricing engine.
type ItemPricer struct {
	engine  *PricingEngine
	catalog ports.ProductCatalog
	policy  Policy
	logger  *slog.Logger
}

func NewItemPricer(engine *PricingEngine, catalog ports.ProductCatalog, policy Policy, logger *slog.Logger) *ItemPricer {
	if policy.Workers <= 0 {
		policy.Workers = 1
	}
	return &ItemPricer{
		engine:  engine,
		catalog: catalog,
		policy:  policy,
		logger:  logger.With("component", "ItemPricer"),
	}
}

func (p *ItemPricer) VATRate() decimal.Decimal {
	return p.policy.VATRate
}

// Price picks the first rule that applies:
//  1. on subscriber orders, free_when_subscribed products are free if the
//     client or the invoice contact is subscribed, pending otherwise
//  2. free order types pay nothing
//  3. automatic pricings go through the engine
//  4. MANUAL pricings take the supplied price, if any
func (p *ItemPricer) Price(ctx context.Context, in PricingInput) ItemPriceOutcome {
	currency := in.Product.Pricing().Currency()

	if in.OrderType.IsEqual(p.policy.SubscriberType) && in.Product.FreeWhenSubscribed() {
		if in.Subscription.Any() {
			return p.free(currency)
		}
		return ItemPriceOutcome{Reason: ReasonManual}
	}

	for _, t := range p.policy.FreeTypes {
		if in.OrderType.IsEqual(t) {
			return p.free(currency)
		}
	}

	if in.Product.Pricing().Type() != pricing.Manual {
		res := p.engine.Evaluate(ctx, in.Product, in.Polygon)
		return ItemPriceOutcome{
			Price:   res.Price,
			BaseFee: res.BaseFee,
			Priced:  res.Defined,
			Reason:  res.Reason,
			Detail:  res.Detail,
		}
	}

	if in.Manual != nil {
		return ItemPriceOutcome{
			Price:   in.Manual.Price,
			BaseFee: in.Manual.BaseFee,
			Priced:  true,
			Reason:  ReasonCalculated,
		}
	}
	return ItemPriceOutcome{Reason: ReasonManual}
}

// Apply stores an outcome on the order item.
func (p *ItemPricer) Apply(o *order.Order, itemID kernel.UUID, outcome ItemPriceOutcome) error {
	if !outcome.Priced {
		if err := o.ResetItemPrice(itemID); err != nil {
			return err
		}
		if outcome.Reason == ReasonUnknownType {
			return o.RecordPricingUndefined(itemID, outcome.Detail)
		}
		return nil
	}
	return o.SetItemCalculatedPrice(itemID, outcome.Price, outcome.BaseFee)
}

// Reprice evaluates every item of a Draft order concurrently, stores the
// results and recalculates the totals. Imported prices are kept.
func (p *ItemPricer) Reprice(ctx context.Context, o *order.Order, sub Subscription) error {
	if err := o.Status().ValidateEditable(); err != nil {
		return err
	}

	items := o.Items()
	outcomes := make([]*ItemPriceOutcome, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.policy.Workers)
	for idx, item := range items {
		if item.PriceStatus() == order.PriceImported {
			continue
		}
		g.Go(func() error {
			prod, err := p.catalog.Get(gctx, item.ProductID())
			if err != nil {
				return err
			}
			outcome := p.Price(gctx, PricingInput{
				Product:      prod,
				Polygon:      o.Geom(),
				OrderType:    o.OrderType(),
				Subscription: sub,
			})
			outcomes[idx] = &outcome
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for idx, outcome := range outcomes {
		if outcome == nil {
			continue
		}
		if err := p.Apply(o, items[idx].ID(), *outcome); err != nil {
			return err
		}
		if !outcome.Priced {
			p.logger.Info("item left for manual quote",
				"order_id", o.ID().String(),
				"item_id", items[idx].ID().String(),
				"reason", outcome.Reason.String(),
			)
		}
	}

	o.RecalculatePrice(p.policy.VATRate)
	return nil
}

func (p *ItemPricer) free(currency string) ItemPriceOutcome {
	zero, _ := kernel.ZeroMoney(currency)
	return ItemPriceOutcome{Price: zero, BaseFee: zero, Priced: true, Reason: ReasonCalculated}
}
