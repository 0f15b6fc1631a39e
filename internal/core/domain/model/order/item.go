package order

import (
	"errors"
	"fmt"
	"time"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/errs"
	"geoshop/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item is one product line of an order. It is owned by its Order and is only
// mutated through it.
//
// price and baseFee are meaningful only when priceStatus is not PricePending;
// Price and BaseFee enforce that by returning ok=false.
type Item struct {
	id           kernel.UUID
	productID    kernel.UUID
	formatID     *kernel.UUID
	priceStatus  PriceStatus
	price        kernel.Money
	baseFee      kernel.Money
	status       ItemStatus
	token        *kernel.UUID
	lastDownload *time.Time
	guard        guard.ConstructorGuard
}

// NewItem creates an unpriced line. Products whose metadata requires approval
// start in ItemValidationPending.
func NewItem(id, productID kernel.UUID, formatID *kernel.UUID, requiresValidation bool) (*Item, error) {
	status := ItemPending
	if requiresValidation {
		status = ItemValidationPending
	}

	item := &Item{
		id:          id,
		productID:   productID,
		formatID:    formatID,
		priceStatus: PricePending,
		status:      status,
		guard:       guard.NewConstructorGuard(),
	}

	if err := item.validateIDs(); err != nil {
		return nil, err
	}

	return item, nil
}

// ItemState is the persisted form of an Item.
type ItemState struct {
	ID           kernel.UUID
	ProductID    kernel.UUID
	FormatID     *kernel.UUID
	PriceStatus  PriceStatus
	Price        *kernel.Money
	BaseFee      *kernel.Money
	Status       ItemStatus
	Token        *kernel.UUID
	LastDownload *time.Time
}

// RestoreItem rebuilds a persisted line. A priced item must come with
// both amounts.
func RestoreItem(state ItemState) (*Item, error) {
	item := &Item{
		id:           state.ID,
		productID:    state.ProductID,
		formatID:     state.FormatID,
		priceStatus:  state.PriceStatus,
		status:       state.Status,
		token:        state.Token,
		lastDownload: state.LastDownload,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.validateIDs(),
		state.PriceStatus.Validate(),
		state.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if state.PriceStatus != PricePending {
		if state.Price == nil || state.BaseFee == nil {
			return nil, errs.NewValueIsRequiredErrorWithCause(
				"price",
				fmt.Errorf("%s item has no price", state.PriceStatus),
			)
		}
		item.price = *state.Price
		item.baseFee = *state.BaseFee
	}

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

func (i *Item) FormatID() *kernel.UUID {
	return i.formatID
}

func (i *Item) PriceStatus() PriceStatus {
	return i.priceStatus
}

func (i *Item) Status() ItemStatus {
	return i.status
}

// Token is the validator token, nil until validation was asked.
func (i *Item) Token() *kernel.UUID {
	return i.token
}

func (i *Item) LastDownload() *time.Time {
	return i.lastDownload
}

// Price returns the item price unless it is still pending.
func (i *Item) Price() (kernel.Money, bool) {
	if i.priceStatus == PricePending {
		return kernel.Money{}, false
	}
	return i.price, true
}

// BaseFee returns the item base fee unless the price is still pending.
func (i *Item) BaseFee() (kernel.Money, bool) {
	if i.priceStatus == PricePending {
		return kernel.Money{}, false
	}
	return i.baseFee, true
}

func (i *Item) IsPriced() bool {
	return i.priceStatus != PricePending
}

func (i *Item) setPrice(status PriceStatus, price, baseFee kernel.Money) error {
	if err := errors.Join(price.Validate(), baseFee.Validate()); err != nil {
		return err
	}
	if price.Currency() != baseFee.Currency() {
		return fmt.Errorf("%w: price %s, base fee %s", kernel.ErrCurrencyMismatch, price, baseFee)
	}
	i.priceStatus = status
	i.price = price.Round()
	i.baseFee = baseFee.Round()
	return nil
}

func (i *Item) resetPrice() {
	i.priceStatus = PricePending
	i.price = kernel.Money{}
	i.baseFee = kernel.Money{}
}

func (i *Item) setFormat(formatID kernel.UUID) error {
	if err := formatID.Validate(); err != nil {
		return err
	}
	i.formatID = &formatID
	return nil
}

// askValidation issues a fresh token and parks the item until a validator answers.
func (i *Item) askValidation() (kernel.UUID, error) {
	if i.status != ItemPending && i.status != ItemValidationPending {
		return kernel.UUID{}, invalidItemTransition(i.status, "ask validation")
	}
	token := kernel.NewUUID()
	i.token = &token
	i.status = ItemValidationPending
	return token, nil
}

func (i *Item) transition(next func(ItemStatus) (ItemStatus, error)) error {
	s, err := next(i.status)
	if err != nil {
		return err
	}
	i.status = s
	return nil
}

func (i *Item) validateIDs() error {
	var errList []error
	errList = append(errList, i.id.Validate(), i.productID.Validate())
	if i.formatID != nil {
		errList = append(errList, i.formatID.Validate())
	}
	return errors.Join(errList...)
}
