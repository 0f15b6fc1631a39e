package queries

import (
	"context"
	"database/sql"
	"errors"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/order"
	"geoshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetLastDraftQueryHandler struct {
	db *gorm.DB
}

func NewGetLastDraftQueryHandler(db *gorm.DB) GetLastDraftQueryHandler {
	return GetLastDraftQueryHandler{db: db}
}

// Handle returns the newest Draft of the client, or errs.ErrObjectNotFound
// when the client has none.
func (h GetLastDraftQueryHandler) Handle(ctx context.Context, query GetLastDraftQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	var id uuid.UUID
	err := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM orders
		WHERE client_id = ? AND status = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, query.ClientID().Bytes(), int(order.Draft)).Row().Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderView{}, errs.NewObjectNotFoundError("draft order", query.ClientID().String())
		}
		return OrderView{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderView{}, err
	}
	return loadOrderView(ctx, h.db, orderID)
}
