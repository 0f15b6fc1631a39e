package queries

import (
	"errors"
	"time"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/order"
	"geoshop/internal/pkg/guard"
)

var ErrGetExtractItemsQueryIsNotConstructed = errors.New(
	"GetExtractItemsQuery must be created via NewGetExtractItemsQuery constructor",
)

// GetExtractItemsQuery lists the items of a provider's products in the given
// item statuses. With no status it lists what is in extraction.
type GetExtractItemsQuery struct { //nolint:recvcheck //using for validation
	providerID kernel.UUID
	statuses   []order.ItemStatus

	guard guard.ConstructorGuard
}

func NewGetExtractItemsQuery(providerID kernel.UUID, statuses ...order.ItemStatus) (GetExtractItemsQuery, error) {
	errList := []error{providerID.Validate()}
	for _, s := range statuses {
		errList = append(errList, s.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return GetExtractItemsQuery{}, err
	}

	if len(statuses) == 0 {
		statuses = []order.ItemStatus{order.ItemInExtract}
	}
	return GetExtractItemsQuery{
		providerID: providerID,
		statuses:   append([]order.ItemStatus(nil), statuses...),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetExtractItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetExtractItemsQueryIsNotConstructed)
}

func (q GetExtractItemsQuery) ProviderID() kernel.UUID {
	return q.providerID
}

func (q GetExtractItemsQuery) Statuses() []order.ItemStatus {
	return append([]order.ItemStatus(nil), q.statuses...)
}

// ExtractItemView is one line of a provider's work list.
type ExtractItemView struct {
	OrderID      kernel.UUID
	OrderTitle   string
	ClientID     kernel.UUID
	DateOrdered  *time.Time
	ItemID       kernel.UUID
	ProductID    kernel.UUID
	ProductLabel string
	FormatName   string
	IsManual     bool
	Status       string
}
