package order

import (
	"fmt"

	"geoshop/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Draft ──confirm──┬──> Ready ──extract──> InExtract / PartiallyDelivered ──> Processed ──> Archived
//	                 │      ▲                          │
//	                 │      └──confirm── QuoteDone     └──> Rejected
//	                 └──> Pending ──quote done──┘
//
// Draft is the only editable state. Archived and Rejected are terminal.
type Status int

const (
	// Unknown (0) catches uninitialised values.
	Unknown Status = iota
	Draft
	Pending
	QuoteDone
	Ready
	InExtract
	PartiallyDelivered
	Processed
	Archived
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "UNKNOWN",
		Draft:              "DRAFT",
		Pending:            "PENDING",
		QuoteDone:          "QUOTE_DONE",
		Ready:              "READY",
		InExtract:          "IN_EXTRACT",
		PartiallyDelivered: "PARTIALLY_DELIVERED",
		Processed:          "PROCESSED",
		Archived:           "ARCHIVED",
		Rejected:           "REJECTED",
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ParseStatus is the inverse of String.
func ParseStatus(str string) (Status, error) {
	for s, v := range getStatusStrings() {
		if v == str && s != Unknown {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", str))
}

// IsTerminal reports Archived and Rejected.
func (s Status) IsTerminal() bool {
	return s == Archived || s == Rejected
}

// ValidateEditable fails for every status but Draft.
func (s Status) ValidateEditable() error {
	if s != Draft {
		return invalidTransition(s, "edit")
	}
	return nil
}

// Confirm returns the status after a client confirmation.
//
// From Draft the result depends on whether every item is priced. From
// QuoteDone the quote has been accepted, so allPriced must hold.
func (s Status) Confirm(allPriced bool) (Status, error) {
	switch s {
	case Draft:
		if allPriced {
			return Ready, nil
		}
		return Pending, nil
	case QuoteDone:
		if !allPriced {
			return Unknown, errs.NewValueIsInvalidErrorWithCause(
				"status is invalid",
				fmt.Errorf("%s cannot be confirmed while items are unpriced", s),
			)
		}
		return Ready, nil
	default:
		return Unknown, invalidTransition(s, "confirm")
	}
}

// ValidateQuote allows operator quoting only while a quote is in motion.
func (s Status) ValidateQuote() error {
	if s != Pending {
		return invalidTransition(s, "quote")
	}
	return nil
}

// QuoteDone transitions Pending to QuoteDone.
func (s Status) QuoteDone() (Status, error) {
	if err := s.ValidateQuote(); err != nil {
		return Unknown, err
	}
	return QuoteDone, nil
}

// ValidateExtractInput accepts the statuses extraction actors may act on.
func (s Status) ValidateExtractInput() error {
	if s != Ready && s != InExtract && s != PartiallyDelivered {
		return invalidTransition(s, "receive extraction input")
	}
	return nil
}

// StartExtract is applied when a provider picks items up. Every extraction
// status ends up InExtract.
func (s Status) StartExtract() (Status, error) {
	if err := s.ValidateExtractInput(); err != nil {
		return Unknown, err
	}
	return InExtract, nil
}

// Archive moves Processed to Archived.
func (s Status) Archive() (Status, error) {
	if s != Processed {
		return Unknown, invalidTransition(s, "archive")
	}
	return Archived, nil
}

// ValidateDownload accepts orders with at least part of the data delivered.
func (s Status) ValidateDownload() error {
	if s != Processed && s != PartiallyDelivered {
		return invalidTransition(s, "download")
	}
	return nil
}

// Reject is used when every item of a not yet extracted order was refused.
func (s Status) Reject() (Status, error) {
	if s == Draft || s.IsTerminal() {
		return Unknown, invalidTransition(s, "reject")
	}
	return Rejected, nil
}

func invalidTransition(s Status, action string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s, action),
	)
}
