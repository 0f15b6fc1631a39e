package commands

import (
	"errors"
	"strings"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/pricing"
	"geoshop/internal/pkg/errs"
	"geoshop/internal/pkg/guard"
)

var ErrCreatePricingCommandIsNotConstructed = errors.New(
	"CreatePricingCommand must be created via NewCreatePricingCommand constructor",
)

// CreatePricingCommand registers a pricing rule. The code is one of the
// pricing type codes (FREE, SINGLE, BY_NUMBER_OBJECTS, BY_AREA,
// FROM_PRICING_LAYER, FROM_CHILDREN_OF_GROUP, MANUAL).
type CreatePricingCommand struct { //nolint:recvcheck //using for validation
	pricingID kernel.UUID
	name      string
	code      string
	currency  string
	amounts   pricing.Amounts

	guard guard.ConstructorGuard
}

func NewCreatePricingCommand(
	pricingID kernel.UUID,
	name, code, currency string,
	amounts pricing.Amounts,
) (CreatePricingCommand, error) {
	cmd := CreatePricingCommand{
		name:     strings.TrimSpace(name),
		code:     strings.TrimSpace(code),
		currency: strings.TrimSpace(currency),
		amounts:  amounts,
		guard:    guard.NewConstructorGuard(),
	}

	var errList []error
	errList = append(errList, pricingID.Validate())
	if cmd.name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if cmd.code == "" {
		errList = append(errList, errs.NewValueIsRequiredError("code"))
	}
	if err := errors.Join(errList...); err != nil {
		return CreatePricingCommand{}, err
	}
	cmd.pricingID = pricingID

	return cmd, nil
}

func (c CreatePricingCommand) Validate() error {
	return c.guard.Validate(ErrCreatePricingCommandIsNotConstructed)
}

func (c CreatePricingCommand) PricingID() kernel.UUID {
	return c.pricingID
}

func (c CreatePricingCommand) Name() string {
	return c.name
}

func (c CreatePricingCommand) Code() string {
	return c.code
}

func (c CreatePricingCommand) Currency() string {
	return c.currency
}

func (c CreatePricingCommand) Amounts() pricing.Amounts {
	return c.amounts
}
