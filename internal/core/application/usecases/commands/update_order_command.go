package commands

import (
	"errors"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/order"
	"geoshop/internal/pkg/errs"
	"geoshop/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// OrderChanges lists the fields to change on a Draft. Nil fields are left
// as they are.
type OrderChanges struct {
	Title            *string
	Description      *string
	InvoiceReference *string
	Geom             *kernel.Geometry
	OrderType        *string
	InvoiceContactID *kernel.UUID
}

// affectsPrice reports whether the changes can change item prices.
func (c OrderChanges) affectsPrice() bool {
	return c.Geom != nil || c.OrderType != nil || c.InvoiceContactID != nil
}

type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	changes   OrderChanges
	orderType *order.Type

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(orderID kernel.UUID, changes OrderChanges) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		changes: changes,
		guard:   guard.NewConstructorGuard(),
	}

	errList := []error{orderID.Validate()}
	if changes.Geom != nil {
		errList = append(errList, changes.Geom.Validate())
	}
	if changes.InvoiceContactID != nil {
		errList = append(errList, changes.InvoiceContactID.Validate())
	}
	if changes.OrderType != nil {
		t, err := order.NewType(*changes.OrderType)
		errList = append(errList, err)
		cmd.orderType = &t
	}
	if changes == (OrderChanges{}) {
		errList = append(errList, errs.NewValueIsRequiredError("changes"))
	}
	if err := errors.Join(errList...); err != nil {
		return UpdateOrderCommand{}, err
	}

	cmd.orderID = orderID
	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderCommand) Changes() OrderChanges {
	return c.changes
}

// apply writes the changes on o. It fails as a whole on a non-Draft order.
func (c UpdateOrderCommand) apply(o *order.Order) error {
	var errList []error
	if c.changes.Title != nil {
		errList = append(errList, o.SetTitle(*c.changes.Title))
	}
	if c.changes.Description != nil {
		errList = append(errList, o.SetDescription(*c.changes.Description))
	}
	if c.changes.InvoiceReference != nil {
		errList = append(errList, o.SetInvoiceReference(*c.changes.InvoiceReference))
	}
	if c.changes.Geom != nil {
		errList = append(errList, o.SetGeometry(*c.changes.Geom))
	}
	if c.orderType != nil {
		errList = append(errList, o.SetOrderType(*c.orderType))
	}
	if c.changes.InvoiceContactID != nil {
		errList = append(errList, o.SetInvoiceContact(c.changes.InvoiceContactID))
	}
	return errors.Join(errList...)
}
