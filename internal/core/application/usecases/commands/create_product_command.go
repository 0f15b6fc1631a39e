package commands

import (
	"errors"
	"fmt"
	"strings"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/product"
	"geoshop/internal/pkg/errs"
	"geoshop/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand registers a product bound to an existing pricing.
// Status may be DRAFT, PUBLISHED or PUBLISHED_ONLY_IN_GROUP.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	label     string
	pricingID kernel.UUID
	status    product.Status
	attrs     product.Attributes

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(
	productID kernel.UUID,
	label string,
	pricingID kernel.UUID,
	status product.Status,
	attrs product.Attributes,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		label: strings.TrimSpace(label),
		attrs: attrs,
		guard: guard.NewConstructorGuard(),
	}

	var errList []error
	errList = append(errList, productID.Validate(), pricingID.Validate())
	if cmd.label == "" {
		errList = append(errList, errs.NewValueIsRequiredError("label"))
	}
	switch status {
	case product.Draft, product.Published, product.PublishedOnlyInGroup:
	default:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to create a product", status),
		))
	}
	if err := errors.Join(errList...); err != nil {
		return CreateProductCommand{}, err
	}

	cmd.productID = productID
	cmd.pricingID = pricingID
	cmd.status = status
	return cmd, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c CreateProductCommand) Label() string {
	return c.label
}

func (c CreateProductCommand) PricingID() kernel.UUID {
	return c.pricingID
}

func (c CreateProductCommand) Status() product.Status {
	return c.status
}

func (c CreateProductCommand) Attributes() product.Attributes {
	return c.attrs
}
