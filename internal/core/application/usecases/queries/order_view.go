package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/order"
	"geoshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const orderViewSQL = `
	SELECT
		id,
		client_id,
		invoice_contact_id,
		title,
		description,
		invoice_reference,
		order_type,
		status,
		ST_AsGeoJSON(geom),
		ST_SRID(geom),
		currency,
		processing_fee,
		total_without_vat,
		part_vat,
		total_with_vat,
		date_ordered,
		date_processed,
		date_downloaded
	FROM orders
	WHERE id = ?
`

const orderItemsViewSQL = `
	SELECT
		i.id,
		i.product_id,
		p.label,
		i.format_id,
		f.name,
		i.price_status,
		i.price,
		i.base_fee,
		i.status,
		i.last_download
	FROM order_items i
	JOIN products p ON p.id = i.product_id
	LEFT JOIN data_formats f ON f.id = i.format_id
	WHERE i.order_id = ?
	ORDER BY i.position
`

// loadOrderView reads the order row and its items with two raw queries.
func loadOrderView(ctx context.Context, db *gorm.DB, orderID kernel.UUID) (OrderView, error) {
	var (
		view         OrderView
		id, clientID uuid.UUID
		contactID    uuid.NullUUID
		status       int
		geoJSON      string
		fee, without decimal.NullDecimal
		vat, with    decimal.NullDecimal
		ordered      sql.NullTime
		processed    sql.NullTime
		downloaded   sql.NullTime
	)

	err := db.WithContext(ctx).Raw(orderViewSQL, orderID.Bytes()).Row().Scan(
		&id,
		&clientID,
		&contactID,
		&view.Title,
		&view.Description,
		&view.InvoiceReference,
		&view.OrderType,
		&status,
		&geoJSON,
		&view.SRID,
		&view.Currency,
		&fee,
		&without,
		&vat,
		&with,
		&ordered,
		&processed,
		&downloaded,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderView{}, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return OrderView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, err
	}
	if view.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return OrderView{}, err
	}
	if view.InvoiceContactID, err = nullUUID(contactID); err != nil {
		return OrderView{}, err
	}
	geom, err := geojson.UnmarshalGeometry([]byte(geoJSON))
	if err != nil {
		return OrderView{}, err
	}
	view.Geom = geom.Geometry()
	view.Status = order.Status(status).String()
	view.ProcessingFee = nullAmount(fee)
	view.TotalWithoutVAT = nullAmount(without)
	view.PartVAT = nullAmount(vat)
	view.TotalWithVAT = nullAmount(with)
	view.DateOrdered = nullTime(ordered)
	view.DateProcessed = nullTime(processed)
	view.DateDownloaded = nullTime(downloaded)

	if view.Items, err = loadOrderItemViews(ctx, db, orderID); err != nil {
		return OrderView{}, err
	}
	return view, nil
}

func loadOrderItemViews(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]OrderItemView, error) {
	rows, err := db.WithContext(ctx).Raw(orderItemsViewSQL, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemView, 0)
	for rows.Next() {
		var (
			item                OrderItemView
			id, productID       uuid.UUID
			formatID            uuid.NullUUID
			formatName          sql.NullString
			priceStatus, status int
			price, baseFee      decimal.NullDecimal
			lastDownload        sql.NullTime
		)
		if err = rows.Scan(
			&id,
			&productID,
			&item.ProductLabel,
			&formatID,
			&formatName,
			&priceStatus,
			&price,
			&baseFee,
			&status,
			&lastDownload,
		); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if item.FormatID, err = nullUUID(formatID); err != nil {
			return nil, err
		}
		item.FormatName = formatName.String
		item.PriceStatus = order.PriceStatus(priceStatus).String()
		if order.PriceStatus(priceStatus) != order.PricePending {
			item.Price = nullAmount(price)
			item.BaseFee = nullAmount(baseFee)
		}
		item.Status = order.ItemStatus(status).String()
		item.LastDownload = nullTime(lastDownload)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func nullUUID(v uuid.NullUUID) (*kernel.UUID, error) {
	if !v.Valid {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes(v.UUID[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func nullAmount(v decimal.NullDecimal) *decimal.Decimal {
	if !v.Valid {
		return nil
	}
	return &v.Decimal
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
