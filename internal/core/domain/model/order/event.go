package order

import "geoshop/internal/core/domain/model/kernel"

// EventKind is a "please act" request raised by a transition.
type EventKind int

const (
	QuoteRequested EventKind = iota + 1
	ValidationRequested
	QuoteCompleted
	DownloadReady
	PricingUndefined
)

func (k EventKind) String() string {
	switch k {
	case QuoteRequested:
		return "quote_requested"
	case ValidationRequested:
		return "validation_requested"
	case QuoteCompleted:
		return "quote_done"
	case DownloadReady:
		return "download_ready"
	case PricingUndefined:
		return "pricing_undefined"
	default:
		return "unknown"
	}
}

// RecipientRole tells the dispatcher how to resolve an address.
type RecipientRole int

const (
	Operators RecipientRole = iota + 1
	Client
	Validator
)

func (r RecipientRole) String() string {
	switch r {
	case Operators:
		return "operators"
	case Client:
		return "client"
	case Validator:
		return "validator"
	default:
		return "unknown"
	}
}

// Recipient of an event. Operators have no identity; clients and
// validators do, and validators also come with the address to use.
type Recipient struct {
	Role       RecipientRole
	IdentityID *kernel.UUID
	Email      string
}

// Event is recorded on the order by transitions and drained with PullEvents
// once the transition has been persisted.
type Event struct {
	Kind      EventKind
	OrderID   kernel.UUID
	ItemID    *kernel.UUID
	Recipient Recipient
	// Token is set on validation requests; the link sent to the validator is keyed by it.
	Token  *kernel.UUID
	Detail string
}
