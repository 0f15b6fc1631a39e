package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/errs"
	"geoshop/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built by
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	ErrItemNotFound          = errors.New("item not found")
	ErrTokenNotFound         = errors.New("validation token not found")
)

// Type is the kind of customer request (private, communal, subscriber, ...).
// The free and subscriber types are configuration, not constants.
type Type struct {
	name string
}

func NewType(name string) (Type, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Type{}, errs.NewValueIsRequiredError("order_type")
	}
	return Type{name: name}, nil
}

func (t Type) Name() string {
	return t.name
}

func (t Type) IsEqual(other Type) bool {
	return strings.EqualFold(t.name, other.name)
}

// Order is the aggregate root of a customer request for data products over
// one polygon. It owns its items, their prices and statuses, and records
// the notifications its transitions require as events.
//
// Invariants:
//   - the geometry is a single polygon
//   - monetary totals are either all known or all unknown
//   - only Draft orders can be edited
//   - item statuses change only through Order methods
type Order struct {
	id               kernel.UUID
	version          int
	title            string
	description      string
	invoiceReference string
	geom             kernel.Geometry
	clientID         kernel.UUID
	invoiceContactID *kernel.UUID
	orderType        Type
	currency         string
	totals           *Totals
	status           Status
	items            []*Item
	dateOrdered      *time.Time
	dateProcessed    *time.Time
	dateDownloaded   *time.Time
	downloadGUID     *kernel.UUID
	events           []Event
	guard            guard.ConstructorGuard
}

// NewOrder creates a Draft order with no items.
func NewOrder(
	id kernel.UUID,
	title string,
	geom kernel.Geometry,
	clientID kernel.UUID,
	orderType Type,
	currency string,
) (*Order, error) {
	o := &Order{
		status: Draft,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setTitle(title),
		o.setGeometry(geom),
		o.setClient(clientID),
		o.setOrderType(orderType),
		o.setCurrency(currency),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// State is the persisted form of an Order.
type State struct {
	ID               kernel.UUID
	Version          int
	Title            string
	Description      string
	InvoiceReference string
	Geom             kernel.Geometry
	ClientID         kernel.UUID
	InvoiceContactID *kernel.UUID
	OrderType        Type
	Currency         string
	Totals           *Totals
	Status           Status
	Items            []*Item
	DateOrdered      *time.Time
	DateProcessed    *time.Time
	DateDownloaded   *time.Time
	DownloadGUID     *kernel.UUID
}

// RestoreOrder rebuilds an order loaded from storage.
func RestoreOrder(state State) (*Order, error) {
	o := &Order{
		version:          state.Version,
		description:      state.Description,
		invoiceReference: state.InvoiceReference,
		invoiceContactID: state.InvoiceContactID,
		totals:           state.Totals,
		status:           state.Status,
		dateOrdered:      state.DateOrdered,
		dateProcessed:    state.DateProcessed,
		dateDownloaded:   state.DateDownloaded,
		downloadGUID:     state.DownloadGUID,
		guard:            guard.NewConstructorGuard(),
	}

	errList := []error{
		o.setID(state.ID),
		o.setTitle(state.Title),
		o.setGeometry(state.Geom),
		o.setClient(state.ClientID),
		o.setOrderType(state.OrderType),
		o.setCurrency(state.Currency),
		state.Status.Validate(),
	}
	for _, item := range state.Items {
		errList = append(errList, item.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	o.items = append([]*Item(nil), state.Items...)
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Version is the optimistic concurrency token of the stored row.
func (o *Order) Version() int {
	return o.version
}

// SetVersion is called by repositories after a successful write.
func (o *Order) SetVersion(version int) {
	o.version = version
}

func (o *Order) Title() string {
	return o.title
}

func (o *Order) Description() string {
	return o.description
}

func (o *Order) InvoiceReference() string {
	return o.invoiceReference
}

func (o *Order) Geom() kernel.Geometry {
	return o.geom
}

func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

func (o *Order) InvoiceContactID() *kernel.UUID {
	return o.invoiceContactID
}

func (o *Order) OrderType() Type {
	return o.orderType
}

func (o *Order) Currency() string {
	return o.currency
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) DateOrdered() *time.Time {
	return o.dateOrdered
}

func (o *Order) DateProcessed() *time.Time {
	return o.dateProcessed
}

func (o *Order) DateDownloaded() *time.Time {
	return o.dateDownloaded
}

func (o *Order) DownloadGUID() *kernel.UUID {
	return o.downloadGUID
}

// Items returns a copy of the item list; the items themselves are shared.
func (o *Order) Items() []*Item {
	return append([]*Item(nil), o.items...)
}

func (o *Order) Item(itemID kernel.UUID) (*Item, bool) {
	for _, item := range o.items {
		if item.id.IsEqual(itemID) {
			return item, true
		}
	}
	return nil, false
}

func (o *Order) SetTitle(title string) error {
	if err := o.status.ValidateEditable(); err != nil {
		return err
	}
	return o.setTitle(title)
}

func (o *Order) SetDescription(description string) error {
	if err := o.status.ValidateEditable(); err != nil {
		return err
	}
	o.description = strings.TrimSpace(description)
	return nil
}

func (o *Order) SetInvoiceReference(reference string) error {
	if err := o.status.ValidateEditable(); err != nil {
		return err
	}
	o.invoiceReference = strings.TrimSpace(reference)
	return nil
}

// SetGeometry replaces the polygon. Item prices become stale and must be
// recomputed by the caller.
func (o *Order) SetGeometry(geom kernel.Geometry) error {
	if err := o.status.ValidateEditable(); err != nil {
		return err
	}
	return o.setGeometry(geom)
}

// SetOrderType changes the request kind; like SetGeometry it invalidates prices.
func (o *Order) SetOrderType(orderType Type) error {
	if err := o.status.ValidateEditable(); err != nil {
		return err
	}
	return o.setOrderType(orderType)
}

// SetInvoiceContact sets or clears (nil) the invoice contact.
func (o *Order) SetInvoiceContact(contactID *kernel.UUID) error {
	if err := o.status.ValidateEditable(); err != nil {
		return err
	}
	if contactID != nil {
		if err := contactID.Validate(); err != nil {
			return err
		}
	}
	o.invoiceContactID = contactID
	return nil
}

// AddItem appends a line. Totals are cleared until the next recalculation.
func (o *Order) AddItem(item *Item) error {
	if err := o.status.ValidateEditable(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if _, exists := o.Item(item.id); exists {
		return errs.NewValueIsInvalidErrorWithCause("item", fmt.Errorf("item %s is already in the order", item.id))
	}
	o.items = append(o.items, item)
	o.totals = nil
	return nil
}

// RemoveItem deletes a line from a Draft order.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if err := o.status.ValidateEditable(); err != nil {
		return err
	}
	return o.removeItem(itemID)
}

// SetItemFormat chooses the data format of a line. The caller checks that
// the product offers it.
func (o *Order) SetItemFormat(itemID, formatID kernel.UUID) error {
	if err := o.status.ValidateEditable(); err != nil {
		return err
	}
	item, err := o.mustItem(itemID)
	if err != nil {
		return err
	}
	return item.setFormat(formatID)
}

// PullEvents returns and clears the recorded events.
func (o *Order) PullEvents() []Event {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) record(e Event) {
	e.OrderID = o.id
	o.events = append(o.events, e)
}

func (o *Order) clientRecipient() Recipient {
	id := o.clientID
	return Recipient{Role: Client, IdentityID: &id}
}

func (o *Order) mustItem(itemID kernel.UUID) (*Item, error) {
	item, ok := o.Item(itemID)
	if !ok {
		return nil, errs.NewObjectNotFoundErrorWithCause("item", itemID.String(), ErrItemNotFound)
	}
	return item, nil
}

func (o *Order) removeItem(itemID kernel.UUID) error {
	for idx, item := range o.items {
		if item.id.IsEqual(itemID) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			o.totals = nil
			return nil
		}
	}
	return errs.NewObjectNotFoundErrorWithCause("item", itemID.String(), ErrItemNotFound)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	o.title = title
	return nil
}

func (o *Order) setGeometry(geom kernel.Geometry) error {
	if err := geom.Validate(); err != nil {
		return err
	}
	if !geom.IsPolygon() {
		return errs.NewValueIsInvalidErrorWithCause("geom", errors.New("order geometry must be a single polygon"))
	}
	o.geom = geom
	o.totals = nil
	return nil
}

func (o *Order) setClient(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setOrderType(orderType Type) error {
	if orderType.name == "" {
		return errs.NewValueIsRequiredError("order_type")
	}
	o.orderType = orderType
	o.totals = nil
	return nil
}

func (o *Order) setCurrency(currency string) error {
	zero, err := kernel.ZeroMoney(currency)
	if err != nil {
		return err
	}
	o.currency = zero.Currency()
	return nil
}
