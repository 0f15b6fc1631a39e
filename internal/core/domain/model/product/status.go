package product

import (
	"fmt"

	"geoshop/internal/pkg/errs"
)

// Status is the publication state of a product.
type Status int

const (
	Unknown Status = iota
	Draft
	Published
	// PublishedOnlyInGroup products are reachable only through the
	// expansion of their group.
	PublishedOnlyInGroup
	Deprecated
)

func getStatusCodes() map[Status]string {
	return map[Status]string{
		Draft:                "DRAFT",
		Published:            "PUBLISHED",
		PublishedOnlyInGroup: "PUBLISHED_ONLY_IN_GROUP",
		Deprecated:           "DEPRECATED",
	}
}

// ParseStatus maps a persisted code to a Status.
func ParseStatus(code string) (Status, error) {
	for s, c := range getStatusCodes() {
		if c == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a product status", code))
}

func (s Status) Validate() error {
	if _, ok := getStatusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if c, ok := getStatusCodes()[s]; ok {
		return c
	}
	return "UNKNOWN"
}
