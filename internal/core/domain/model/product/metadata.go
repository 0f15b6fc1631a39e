package product

import (
	"sort"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/errs"
)

// Accessibility tells whether ordering the data needs a validator's approval.
type Accessibility int

const (
	Public Accessibility = iota
	ApprovalNeeded
)

func (a Accessibility) String() string {
	if a == ApprovalNeeded {
		return "APPROVAL_NEEDED"
	}
	return "PUBLIC"
}

// ParseAccessibility treats anything other than APPROVAL_NEEDED as public.
func ParseAccessibility(code string) Accessibility {
	if code == "APPROVAL_NEEDED" {
		return ApprovalNeeded
	}
	return Public
}

// Contact is a person attached to a metadata record. A lower Priority number
// means a higher priority: 1 is the first person to ask, larger values come
// later.
type Contact struct {
	IdentityID  kernel.UUID
	Email       string
	IsValidator bool
	Priority    int
}

// Metadata describes a dataset and who answers for it.
type Metadata struct {
	idName        string
	name          string
	accessibility Accessibility
	contacts      []Contact
}

func NewMetadata(idName, name string, accessibility Accessibility, contacts []Contact) (*Metadata, error) {
	if idName == "" {
		return nil, errs.NewValueIsRequiredError("metadata id_name")
	}
	for _, c := range contacts {
		if err := c.IdentityID.Validate(); err != nil {
			return nil, err
		}
	}
	sorted := append([]Contact(nil), contacts...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Priority < sorted[j].Priority })

	return &Metadata{idName: idName, name: name, accessibility: accessibility, contacts: sorted}, nil
}

func (m *Metadata) IDName() string {
	return m.idName
}

func (m *Metadata) Name() string {
	return m.name
}

func (m *Metadata) Accessibility() Accessibility {
	return m.accessibility
}

// Contacts are ordered by ascending Priority number, highest priority first.
func (m *Metadata) Contacts() []Contact {
	return append([]Contact(nil), m.contacts...)
}

// Validator picks the flagged validator with the lowest Priority number, or the
// contact with the lowest number at all when none is flagged.
func (m *Metadata) Validator() (Contact, bool) {
	for _, c := range m.contacts {
		if c.IsValidator {
			return c, true
		}
	}
	if len(m.contacts) > 0 {
		return m.contacts[0], true
	}
	return Contact{}, false
}
