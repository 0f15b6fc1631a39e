package commands

import (
	"errors"
	"fmt"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/errs"
	"geoshop/internal/pkg/guard"
)

var ErrQuoteItemCommandIsNotConstructed = errors.New(
	"QuoteItemCommand must be created via NewQuoteItemCommand constructor",
)

// QuoteItemCommand carries an operator's price for one line of a Pending order.
type QuoteItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	price   kernel.Money
	baseFee kernel.Money

	guard guard.ConstructorGuard
}

func NewQuoteItemCommand(orderID, itemID kernel.UUID, price, baseFee kernel.Money) (QuoteItemCommand, error) {
	errList := []error{orderID.Validate(), itemID.Validate(), price.Validate(), baseFee.Validate()}
	if price.Validate() == nil && baseFee.Validate() == nil && price.Currency() != baseFee.Currency() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"base_fee",
			fmt.Errorf("price is in %s, base fee in %s", price.Currency(), baseFee.Currency()),
		))
	}
	if err := errors.Join(errList...); err != nil {
		return QuoteItemCommand{}, err
	}

	return QuoteItemCommand{
		orderID: orderID,
		itemID:  itemID,
		price:   price,
		baseFee: baseFee,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c QuoteItemCommand) Validate() error {
	return c.guard.Validate(ErrQuoteItemCommandIsNotConstructed)
}

func (c QuoteItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c QuoteItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c QuoteItemCommand) Price() kernel.Money {
	return c.price
}

func (c QuoteItemCommand) BaseFee() kernel.Money {
	return c.baseFee
}
