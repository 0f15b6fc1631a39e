package queries

import (
	"errors"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/guard"
)

var ErrGetLastDraftQueryIsNotConstructed = errors.New(
	"GetLastDraftQuery must be created via NewGetLastDraftQuery constructor",
)

// GetLastDraftQuery finds the basket a client was filling last.
type GetLastDraftQuery struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetLastDraftQuery(clientID kernel.UUID) (GetLastDraftQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetLastDraftQuery{}, err
	}
	return GetLastDraftQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetLastDraftQuery) Validate() error {
	return q.guard.Validate(ErrGetLastDraftQueryIsNotConstructed)
}

func (q GetLastDraftQuery) ClientID() kernel.UUID {
	return q.clientID
}
