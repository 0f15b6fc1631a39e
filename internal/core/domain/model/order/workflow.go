package order

import (
	"errors"
	"fmt"
	"time"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrOrderHasNoItems = errors.New("order has no items")

// ValidateConfirmable checks the preconditions of a client confirmation.
func (o *Order) ValidateConfirmable() error {
	if o.status != Draft && o.status != QuoteDone {
		return invalidTransition(o.status, "confirm")
	}
	if len(o.items) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("items", ErrOrderHasNoItems)
	}
	for _, item := range o.items {
		if item.formatID == nil {
			return errs.NewValueIsRequiredErrorWithCause(
				"data_format",
				fmt.Errorf("item %s has no data format", item.id),
			)
		}
	}
	return nil
}

// ReplaceGroupItem swaps a product group line for the lines of its children.
func (o *Order) ReplaceGroupItem(groupItemID kernel.UUID, children []*Item) error {
	if err := o.status.ValidateEditable(); err != nil {
		return err
	}
	if _, err := o.mustItem(groupItemID); err != nil {
		return err
	}
	for _, child := range children {
		if err := child.Validate(); err != nil {
			return err
		}
	}
	if err := o.removeItem(groupItemID); err != nil {
		return err
	}
	for _, child := range children {
		if _, exists := o.Item(child.id); exists {
			return errs.NewValueIsInvalidErrorWithCause("item", fmt.Errorf("item %s is already in the order", child.id))
		}
		o.items = append(o.items, child)
	}
	return nil
}

// Confirm commits the client's request.
//
// From Draft every unpriced item raises a quote request for the operators
// and every item listed in validators is parked until its validator
// answers. The order becomes Ready when all prices are known, Pending
// otherwise. From QuoteDone the order becomes Ready.
func (o *Order) Confirm(now time.Time, vatRate decimal.Decimal, validators map[kernel.UUID]Recipient) error {
	if err := o.ValidateConfirmable(); err != nil {
		return err
	}

	allPriced := o.RecalculatePrice(vatRate)
	next, err := o.status.Confirm(allPriced)
	if err != nil {
		return err
	}

	if o.status == Draft {
		for _, item := range o.items {
			if !item.IsPriced() {
				o.askPrice(item)
			}
		}
		for _, item := range o.items {
			recipient, ok := validators[item.id]
			if !ok {
				continue
			}
			if err := o.askValidation(item, recipient); err != nil {
				return err
			}
		}
	}

	o.status = next
	if next == Ready {
		o.dateOrdered = &now
		guid := kernel.NewUUID()
		o.downloadGUID = &guid
	}
	return nil
}

// QuoteDone closes the operators' quote. It returns false and keeps the
// order Pending while some item is still unpriced.
func (o *Order) QuoteDone(vatRate decimal.Decimal) (bool, error) {
	if err := o.status.ValidateQuote(); err != nil {
		return false, err
	}
	if !o.RecalculatePrice(vatRate) {
		return false, nil
	}
	next, err := o.status.QuoteDone()
	if err != nil {
		return false, err
	}
	o.status = next
	o.record(Event{Kind: QuoteCompleted, Recipient: o.clientRecipient()})
	return true, nil
}

// StartExtraction marks the given items as picked up by a provider.
func (o *Order) StartExtraction(itemIDs []kernel.UUID) error {
	if err := o.status.ValidateExtractInput(); err != nil {
		return err
	}
	items := make([]*Item, 0, len(itemIDs))
	for _, id := range itemIDs {
		item, err := o.mustItem(id)
		if err != nil {
			return err
		}
		if item.status != ItemPending {
			return invalidItemTransition(item.status, "start extraction")
		}
		items = append(items, item)
	}
	for _, item := range items {
		if err := item.transition(ItemStatus.StartExtract); err != nil {
			return err
		}
	}
	next, err := o.status.StartExtract()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// DeliverItem records an uploaded extraction result.
func (o *Order) DeliverItem(itemID kernel.UUID, now time.Time) error {
	return o.extractInput(itemID, now, ItemStatus.Deliver)
}

// RejectItem records an extraction refusal.
func (o *Order) RejectItem(itemID kernel.UUID, now time.Time) error {
	return o.extractInput(itemID, now, ItemStatus.Reject)
}

// NextStatusOnExtractInput derives the order status from its items after
// an extraction actor changed one of them.
//
//	outstanding  processed  result
//	yes          yes        PartiallyDelivered
//	yes          no         Ready
//	no           yes        Processed
//	no           no         Rejected
func (o *Order) NextStatusOnExtractInput(now time.Time) error {
	if err := o.status.ValidateExtractInput(); err != nil {
		return err
	}

	var outstanding, processed bool
	for _, item := range o.items {
		switch {
		case item.status.IsOutstanding():
			outstanding = true
		case item.status == ItemProcessed:
			processed = true
		}
	}

	switch {
	case outstanding && processed:
		o.status = PartiallyDelivered
	case outstanding:
		o.status = Ready
	case processed:
		o.status = Processed
		o.dateProcessed = &now
		o.record(Event{Kind: DownloadReady, Recipient: o.clientRecipient()})
	default:
		next, err := o.status.Reject()
		if err != nil {
			return err
		}
		o.status = next
	}
	return nil
}

// ItemByToken finds the item a validation token was issued for.
func (o *Order) ItemByToken(token kernel.UUID) (*Item, bool) {
	for _, item := range o.items {
		if item.token != nil && item.token.IsEqual(token) {
			return item, true
		}
	}
	return nil, false
}

// ApproveValidation releases an item for extraction.
func (o *Order) ApproveValidation(token kernel.UUID) error {
	item, err := o.validationItem(token)
	if err != nil {
		return err
	}
	return item.transition(ItemStatus.Approve)
}

// RefuseValidation rejects an item on its validator's request. An order that
// is already in extraction re-derives its status; otherwise it is rejected
// once nothing is left to deliver.
func (o *Order) RefuseValidation(token kernel.UUID, now time.Time) error {
	item, err := o.validationItem(token)
	if err != nil {
		return err
	}
	if item.status != ItemValidationPending {
		return invalidItemTransition(item.status, "refuse validation")
	}
	if err := item.transition(ItemStatus.Reject); err != nil {
		return err
	}

	if o.status.ValidateExtractInput() == nil {
		return o.NextStatusOnExtractInput(now)
	}
	for _, other := range o.items {
		if other.status != ItemRejected {
			return nil
		}
	}
	next, err := o.status.Reject()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// MarkDownloaded stamps the download dates of the order and its delivered items.
func (o *Order) MarkDownloaded(now time.Time) error {
	if err := o.status.ValidateDownload(); err != nil {
		return err
	}
	o.dateDownloaded = &now
	for _, item := range o.items {
		if item.status == ItemProcessed {
			at := now
			item.lastDownload = &at
		}
	}
	return nil
}

// Archive retires a processed order and its delivered items.
func (o *Order) Archive() error {
	next, err := o.status.Archive()
	if err != nil {
		return err
	}
	for _, item := range o.items {
		if item.status == ItemProcessed {
			if err := item.transition(ItemStatus.Archive); err != nil {
				return err
			}
		}
	}
	o.status = next
	return nil
}

func (o *Order) extractInput(itemID kernel.UUID, now time.Time, next func(ItemStatus) (ItemStatus, error)) error {
	if err := o.status.ValidateExtractInput(); err != nil {
		return err
	}
	item, err := o.mustItem(itemID)
	if err != nil {
		return err
	}
	if err := item.transition(next); err != nil {
		return err
	}
	return o.NextStatusOnExtractInput(now)
}

func (o *Order) validationItem(token kernel.UUID) (*Item, error) {
	if o.status == Draft || o.status.IsTerminal() {
		return nil, invalidTransition(o.status, "validate")
	}
	item, ok := o.ItemByToken(token)
	if !ok {
		return nil, errs.NewObjectNotFoundErrorWithCause("token", token.String(), ErrTokenNotFound)
	}
	return item, nil
}

func (o *Order) askPrice(item *Item) {
	id := item.id
	o.record(Event{Kind: QuoteRequested, ItemID: &id, Recipient: Recipient{Role: Operators}})
}

func (o *Order) askValidation(item *Item, recipient Recipient) error {
	token, err := item.askValidation()
	if err != nil {
		return err
	}
	id := item.id
	recipient.Role = Validator
	o.record(Event{Kind: ValidationRequested, ItemID: &id, Recipient: recipient, Token: &token})
	return nil
}
