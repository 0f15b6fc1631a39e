package order

import (
	"errors"
	"fmt"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Totals are the monetary aggregates of an order. An order either has all of
// them or none.
type Totals struct {
	ProcessingFee   kernel.Money
	TotalWithoutVAT kernel.Money
	PartVAT         kernel.Money
	TotalWithVAT    kernel.Money
}

// Totals returns the aggregates if the last recalculation succeeded.
func (o *Order) Totals() (Totals, bool) {
	if o.totals == nil {
		return Totals{}, false
	}
	return *o.totals, true
}

// AllPriced reports whether every billable item has a readable price.
func (o *Order) AllPriced() bool {
	for _, item := range o.billableItems() {
		if !item.IsPriced() {
			return false
		}
	}
	return true
}

// RecalculatePrice recomputes the totals from the item prices.
//
// The processing fee is the highest base fee among the items, not their sum.
// If any item is still unpriced the totals are cleared and false is returned.
// Calling it twice without changes yields the same totals.
func (o *Order) RecalculatePrice(vatRate decimal.Decimal) bool {
	o.totals = nil

	items := o.billableItems()
	if len(items) == 0 || vatRate.IsNegative() {
		return false
	}

	fee, err := kernel.ZeroMoney(o.currency)
	if err != nil {
		return false
	}
	sum := fee

	for _, item := range items {
		price, ok := item.Price()
		if !ok {
			return false
		}
		baseFee, _ := item.BaseFee()

		if sum, err = sum.Add(price); err != nil {
			return false
		}
		cmp, err := baseFee.Compare(fee)
		if err != nil {
			return false
		}
		if cmp > 0 {
			fee = baseFee
		}
	}

	withoutVAT, err := sum.Add(fee)
	if err != nil {
		return false
	}
	withoutVAT = withoutVAT.Round()
	partVAT := withoutVAT.Mul(vatRate).Round()
	withVAT, err := withoutVAT.Add(partVAT)
	if err != nil {
		return false
	}

	o.totals = &Totals{
		ProcessingFee:   fee.Round(),
		TotalWithoutVAT: withoutVAT,
		PartVAT:         partVAT,
		TotalWithVAT:    withVAT,
	}
	return true
}

// SetItemCalculatedPrice stores a price produced by the pricing engine.
func (o *Order) SetItemCalculatedPrice(itemID kernel.UUID, price, baseFee kernel.Money) error {
	if err := o.status.ValidateEditable(); err != nil {
		return err
	}
	return o.setItemPrice(itemID, PriceCalculated, price, baseFee)
}

// ResetItemPrice puts an item back to an unknown price.
func (o *Order) ResetItemPrice(itemID kernel.UUID) error {
	if err := o.status.ValidateEditable(); err != nil {
		return err
	}
	item, err := o.mustItem(itemID)
	if err != nil {
		return err
	}
	item.resetPrice()
	o.totals = nil
	return nil
}

// SetItemQuote records an operator's manual quote for a pending order.
func (o *Order) SetItemQuote(itemID kernel.UUID, price, baseFee kernel.Money) error {
	if err := o.status.ValidateQuote(); err != nil {
		return err
	}
	return o.setItemPrice(itemID, PriceCalculated, price, baseFee)
}

// ImportItemPrice stores a price coming from an external source.
func (o *Order) ImportItemPrice(itemID kernel.UUID, price, baseFee kernel.Money) error {
	if o.status != Draft && o.status != Pending {
		return invalidTransition(o.status, "import a price")
	}
	return o.setItemPrice(itemID, PriceImported, price, baseFee)
}

// RecordPricingUndefined tells operators that an item's pricing could not be
// interpreted.
func (o *Order) RecordPricingUndefined(itemID kernel.UUID, detail string) error {
	if _, err := o.mustItem(itemID); err != nil {
		return err
	}
	id := itemID
	o.record(Event{
		Kind:      PricingUndefined,
		ItemID:    &id,
		Recipient: Recipient{Role: Operators},
		Detail:    detail,
	})
	return nil
}

func (o *Order) setItemPrice(itemID kernel.UUID, status PriceStatus, price, baseFee kernel.Money) error {
	item, err := o.mustItem(itemID)
	if err != nil {
		return err
	}
	if err := errors.Join(price.Validate(), baseFee.Validate()); err != nil {
		return err
	}
	if price.Currency() != o.currency {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%w: order is in %s, price is %s", kernel.ErrCurrencyMismatch, o.currency, price),
		)
	}
	if err := item.setPrice(status, price, baseFee); err != nil {
		return err
	}
	o.totals = nil
	return nil
}

func (o *Order) billableItems() []*Item {
	items := make([]*Item, 0, len(o.items))
	for _, item := range o.items {
		if item.status != ItemRejected {
			items = append(items, item)
		}
	}
	return items
}
