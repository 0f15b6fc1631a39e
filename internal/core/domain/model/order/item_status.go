package order

import (
	"fmt"

	"geoshop/internal/pkg/errs"
)

// ItemStatus is the fulfilment state of a single order line.
//
//	ValidationPending ──approve──> Pending ──pickup──> InExtract ──upload──> Processed ──> Archived
//	        │                         │                   │                   │
//	        └─────────────────────────┴───────reject──────┴───────────────────┴──> Rejected
type ItemStatus int

const (
	ItemUnknown ItemStatus = iota
	ItemValidationPending
	ItemPending
	ItemInExtract
	ItemProcessed
	ItemArchived
	ItemRejected
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemUnknown:           "UNKNOWN",
		ItemValidationPending: "VALIDATION_PENDING",
		ItemPending:           "PENDING",
		ItemInExtract:         "IN_EXTRACT",
		ItemProcessed:         "PROCESSED",
		ItemArchived:          "ARCHIVED",
		ItemRejected:          "REJECTED",
	}
}

func (s ItemStatus) Validate() error {
	if s <= ItemUnknown || s > ItemRejected {
		return errs.NewValueIsInvalidErrorWithCause("item status is invalid", fmt.Errorf("%d is not a valid item status", s))
	}
	return nil
}

func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func ParseItemStatus(str string) (ItemStatus, error) {
	for s, v := range getItemStatusStrings() {
		if v == str && s != ItemUnknown {
			return s, nil
		}
	}
	return ItemUnknown, errs.NewValueIsInvalidErrorWithCause(
		"item status is invalid",
		fmt.Errorf("%q is not a valid item status", str),
	)
}

// IsOutstanding reports items that may still be delivered.
func (s ItemStatus) IsOutstanding() bool {
	return s == ItemValidationPending || s == ItemPending || s == ItemInExtract
}

func (s ItemStatus) Approve() (ItemStatus, error) {
	if s != ItemValidationPending {
		return ItemUnknown, invalidItemTransition(s, "approve")
	}
	return ItemPending, nil
}

func (s ItemStatus) StartExtract() (ItemStatus, error) {
	if s != ItemPending {
		return ItemUnknown, invalidItemTransition(s, "start extraction")
	}
	return ItemInExtract, nil
}

func (s ItemStatus) Deliver() (ItemStatus, error) {
	if s != ItemInExtract {
		return ItemUnknown, invalidItemTransition(s, "deliver")
	}
	return ItemProcessed, nil
}

// Reject is allowed from any state except the terminal ones.
func (s ItemStatus) Reject() (ItemStatus, error) {
	if s == ItemArchived || s == ItemRejected || s.Validate() != nil {
		return ItemUnknown, invalidItemTransition(s, "reject")
	}
	return ItemRejected, nil
}

func (s ItemStatus) Archive() (ItemStatus, error) {
	if s != ItemProcessed {
		return ItemUnknown, invalidItemTransition(s, "archive")
	}
	return ItemArchived, nil
}

func invalidItemTransition(s ItemStatus, action string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"item status is invalid",
		fmt.Errorf("%s is not a valid item status to %s", s, action),
	)
}

// PriceStatus tells whether an item's price may be read.
type PriceStatus int

const (
	PriceUnknown PriceStatus = iota
	// PricePending means no reliable price exists yet.
	PricePending
	PriceCalculated
	// PriceImported prices come from outside the engine.
	PriceImported
)

func (s PriceStatus) String() string {
	switch s {
	case PricePending:
		return "PENDING"
	case PriceCalculated:
		return "CALCULATED"
	case PriceImported:
		return "IMPORTED"
	default:
		return "UNKNOWN"
	}
}

func (s PriceStatus) Validate() error {
	if s < PricePending || s > PriceImported {
		return errs.NewValueIsInvalidErrorWithCause("price status is invalid", fmt.Errorf("%d is not a valid price status", s))
	}
	return nil
}
