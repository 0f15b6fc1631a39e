package services

import (
	"context"
	"log/slog"
	"time"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/order"
	"geoshop/internal/core/domain/model/product"
	"geoshop/internal/core/ports"
)

// OrderConfirmer runs the client confirmation of an order.
type OrderConfirmer struct {
	pricer  *ItemPricer
	engine  *PricingEngine
	catalog ports.ProductCatalog
	logger  *slog.Logger
}

func NewOrderConfirmer(
	pricer *ItemPricer,
	engine *PricingEngine,
	catalog ports.ProductCatalog,
	logger *slog.Logger,
) *OrderConfirmer {
	return &OrderConfirmer{
		pricer:  pricer,
		engine:  engine,
		catalog: catalog,
		logger:  logger.With("component", "OrderConfirmer"),
	}
}

// Confirm confirms a Draft or QuoteDone order.
//
// A Draft first has its group items replaced by the children that intersect
// the order geometry, then is repriced. Items whose product needs approval
// are sent to the product's validator.
func (c *OrderConfirmer) Confirm(ctx context.Context, o *order.Order, sub Subscription, now time.Time) error {
	if err := o.ValidateConfirmable(); err != nil {
		return err
	}

	if o.Status() == order.QuoteDone {
		return o.Confirm(now, c.pricer.VATRate(), nil)
	}

	if err := c.expandGroups(ctx, o); err != nil {
		return err
	}
	if err := o.ValidateConfirmable(); err != nil {
		return err
	}
	if err := c.pricer.Reprice(ctx, o, sub); err != nil {
		return err
	}

	validators, err := c.validators(ctx, o)
	if err != nil {
		return err
	}

	return o.Confirm(now, c.pricer.VATRate(), validators)
}

func (c *OrderConfirmer) expandGroups(ctx context.Context, o *order.Order) error {
	for _, item := range o.Items() {
		children, err := c.catalog.Children(ctx, item.ProductID())
		if err != nil {
			return err
		}
		if len(children) == 0 {
			continue
		}

		replacements := make([]*order.Item, 0, len(children))
		for _, child := range children {
			if !child.IsExpandable() {
				continue
			}
			hit, err := c.engine.IntersectsOrder(ctx, child, o.Geom())
			if err != nil {
				return err
			}
			if !hit {
				continue
			}

			formatID, ok := inheritFormat(item, child)
			if !ok {
				c.logger.Warn("group child has no format, skipped",
					"order_id", o.ID().String(),
					"product_id", child.ID().String(),
				)
				continue
			}

			childItem, err := order.NewItem(kernel.NewUUID(), child.ID(), &formatID, child.RequiresValidation())
			if err != nil {
				return err
			}
			replacements = append(replacements, childItem)
		}

		if err := o.ReplaceGroupItem(item.ID(), replacements); err != nil {
			return err
		}
		c.logger.Info("product group expanded",
			"order_id", o.ID().String(),
			"group_id", item.ProductID().String(),
			"children", len(replacements),
		)
	}
	return nil
}

// inheritFormat keeps the group item's format when the child offers it and
// falls back to the child's first format.
func inheritFormat(groupItem *order.Item, child *product.Product) (kernel.UUID, bool) {
	if f := groupItem.FormatID(); f != nil && child.HasFormat(*f) {
		return *f, true
	}
	first, ok := child.FirstFormat()
	if !ok {
		return kernel.UUID{}, false
	}
	return first.ID(), true
}

func (c *OrderConfirmer) validators(ctx context.Context, o *order.Order) (map[kernel.UUID]order.Recipient, error) {
	validators := make(map[kernel.UUID]order.Recipient)
	for _, item := range o.Items() {
		if item.Status() != order.ItemValidationPending {
			continue
		}
		prod, err := c.catalog.Get(ctx, item.ProductID())
		if err != nil {
			return nil, err
		}

		var recipient order.Recipient
		if md := prod.Metadata(); md != nil {
			if contact, ok := md.Validator(); ok {
				id := contact.IdentityID
				recipient = order.Recipient{IdentityID: &id, Email: contact.Email}
			}
		}
		if recipient.IdentityID == nil {
			c.logger.Warn("no validator contact, operators will be asked",
				"order_id", o.ID().String(),
				"product_id", prod.ID().String(),
			)
		}
		validators[item.ID()] = recipient
	}
	return validators, nil
}
