package commands

import (
	"errors"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/order"
	"geoshop/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand opens a Draft order for a client over a polygon.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, clientID, "Cadastre Neuchâtel", polygon, "private")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, "CHF")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	clientID  kernel.UUID
	title     string
	geom      kernel.Geometry
	orderType order.Type

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates identifiers, the geometry and the order
// type name. Title rules are the order's own.
func NewCreateOrderCommand(
	orderID, clientID kernel.UUID,
	title string,
	geom kernel.Geometry,
	orderType string,
) (CreateOrderCommand, error) {
	t, typeErr := order.NewType(orderType)
	if err := errors.Join(
		orderID.Validate(),
		clientID.Validate(),
		geom.Validate(),
		typeErr,
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID:   orderID,
		clientID:  clientID,
		title:     title,
		geom:      geom,
		orderType: t,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c CreateOrderCommand) Title() string {
	return c.title
}

func (c CreateOrderCommand) Geom() kernel.Geometry {
	return c.geom
}

func (c CreateOrderCommand) OrderType() order.Type {
	return c.orderType
}
