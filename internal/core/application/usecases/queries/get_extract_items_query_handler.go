package queries

import (
	"context"
	"database/sql"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GetExtractItemsQueryHandler struct {
	db *gorm.DB
}

func NewGetExtractItemsQueryHandler(db *gorm.DB) GetExtractItemsQueryHandler {
	return GetExtractItemsQueryHandler{db: db}
}

// Handle lists the items, oldest confirmation first.
func (h GetExtractItemsQueryHandler) Handle(ctx context.Context, query GetExtractItemsQuery) ([]ExtractItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]int64, 0, len(query.Statuses()))
	for _, s := range query.Statuses() {
		statuses = append(statuses, int64(s))
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.title,
			o.client_id,
			o.date_ordered,
			i.id,
			i.product_id,
			p.label,
			COALESCE(f.name, ''),
			COALESCE(f.is_manual, false),
			i.status
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		JOIN products p ON p.id = i.product_id
		LEFT JOIN data_formats f ON f.id = i.format_id
		WHERE p.provider_id = ? AND i.status = ANY(?)
		ORDER BY o.date_ordered, o.id, i.position
	`, query.ProviderID().Bytes(), pq.Array(statuses)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ExtractItemView, 0)
	for rows.Next() {
		var (
			item              ExtractItemView
			orderID, clientID uuid.UUID
			itemID, productID uuid.UUID
			dateOrdered       sql.NullTime
			status            int
		)
		if err = rows.Scan(
			&orderID,
			&item.OrderTitle,
			&clientID,
			&dateOrdered,
			&itemID,
			&productID,
			&item.ProductLabel,
			&item.FormatName,
			&item.IsManual,
			&status,
		); err != nil {
			return nil, err
		}

		ids := []struct {
			dst *kernel.UUID
			src uuid.UUID
		}{
			{&item.OrderID, orderID},
			{&item.ClientID, clientID},
			{&item.ItemID, itemID},
			{&item.ProductID, productID},
		}
		for _, id := range ids {
			if *id.dst, err = kernel.UUIDFromBytes(id.src[:]); err != nil {
				return nil, err
			}
		}
		item.DateOrdered = nullTime(dateOrdered)
		item.Status = order.ItemStatus(status).String()
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
