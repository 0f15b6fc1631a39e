// Package orderrepo persists order aggregates. An order is stored in the
// orders table and its items in order_items; both are written and loaded
// together.
package orderrepo

import (
	"time"

	"geoshop/internal/adapters/out/postgres/columns"
	"geoshop/internal/adapters/out/postgres/postgis"
	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Version          int        `gorm:"not null"`
	Title            string     `gorm:"size:255;not null"`
	Description      string     `gorm:"not null"`
	InvoiceReference string     `gorm:"size:255;not null"`
	Geom             postgis.Geometry
	ClientID         uuid.UUID           `gorm:"type:uuid;index"`
	InvoiceContactID *uuid.UUID          `gorm:"type:uuid"`
	OrderType        string              `gorm:"size:30"`
	Currency         string              `gorm:"type:char(3)"`
	ProcessingFee    decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	TotalWithoutVAT  decimal.NullDecimal `gorm:"column:total_without_vat;type:numeric(14,2)"`
	PartVAT          decimal.NullDecimal `gorm:"column:part_vat;type:numeric(14,2)"`
	TotalWithVAT     decimal.NullDecimal `gorm:"column:total_with_vat;type:numeric(14,2)"`
	Status           int
	DateOrdered      *time.Time
	DateProcessed    *time.Time
	DateDownloaded   *time.Time
	DownloadGUID     *uuid.UUID `gorm:"column:download_guid;type:uuid"`
	CreatedAt        time.Time  `gorm:"autoCreateTime"`
	Items            []ItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is the row of the order_items table. Position keeps the order of
// the lines as the client added them.
type ItemDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID  `gorm:"type:uuid;index"`
	Position     int        `gorm:"not null"`
	ProductID    uuid.UUID  `gorm:"type:uuid"`
	FormatID     *uuid.UUID `gorm:"type:uuid"`
	PriceStatus  int
	Price        decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	BaseFee      decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	Status       int
	Token        *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	LastDownload *time.Time
}

func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:               o.ID().Bytes(),
		Version:          o.Version(),
		Title:            o.Title(),
		Description:      o.Description(),
		InvoiceReference: o.InvoiceReference(),
		Geom:             postgis.FromKernel(o.Geom()),
		ClientID:         o.ClientID().Bytes(),
		InvoiceContactID: kernel.BytesPtr(o.InvoiceContactID()),
		OrderType:        o.OrderType().Name(),
		Currency:         o.Currency(),
		Status:           int(o.Status()),
		DateOrdered:      o.DateOrdered(),
		DateProcessed:    o.DateProcessed(),
		DateDownloaded:   o.DateDownloaded(),
		DownloadGUID:     kernel.BytesPtr(o.DownloadGUID()),
	}

	if totals, ok := o.Totals(); ok {
		dto.ProcessingFee = columns.AmountOf(totals.ProcessingFee)
		dto.TotalWithoutVAT = columns.AmountOf(totals.TotalWithoutVAT)
		dto.PartVAT = columns.AmountOf(totals.PartVAT)
		dto.TotalWithVAT = columns.AmountOf(totals.TotalWithVAT)
	}

	for position, item := range o.Items() {
		dto.Items = append(dto.Items, itemFromDomain(dto.ID, position, item))
	}

	return dto
}

func itemFromDomain(orderID uuid.UUID, position int, item *order.Item) ItemDTO {
	dto := ItemDTO{
		ID:           item.ID().Bytes(),
		OrderID:      orderID,
		Position:     position,
		ProductID:    item.ProductID().Bytes(),
		FormatID:     kernel.BytesPtr(item.FormatID()),
		PriceStatus:  int(item.PriceStatus()),
		Status:       int(item.Status()),
		Token:        kernel.BytesPtr(item.Token()),
		LastDownload: item.LastDownload(),
	}
	if price, ok := item.Price(); ok {
		dto.Price = columns.AmountOf(price)
	}
	if fee, ok := item.BaseFee(); ok {
		dto.BaseFee = columns.AmountOf(fee)
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	invoiceContactID, err := kernel.UUIDFromPtr(dto.InvoiceContactID)
	if err != nil {
		return nil, err
	}
	downloadGUID, err := kernel.UUIDFromPtr(dto.DownloadGUID)
	if err != nil {
		return nil, err
	}
	geom, err := dto.Geom.ToKernel()
	if err != nil {
		return nil, err
	}
	orderType, err := order.NewType(dto.OrderType)
	if err != nil {
		return nil, err
	}
	totals, err := totalsToDomain(dto)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO, dto.Currency)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.State{
		ID:               id,
		Version:          dto.Version,
		Title:            dto.Title,
		Description:      dto.Description,
		InvoiceReference: dto.InvoiceReference,
		Geom:             geom,
		ClientID:         clientID,
		InvoiceContactID: invoiceContactID,
		OrderType:        orderType,
		Currency:         dto.Currency,
		Totals:           totals,
		Status:           order.Status(dto.Status),
		Items:            items,
		DateOrdered:      dto.DateOrdered,
		DateProcessed:    dto.DateProcessed,
		DateDownloaded:   dto.DateDownloaded,
		DownloadGUID:     downloadGUID,
	})
}

func totalsToDomain(dto OrderDTO) (*order.Totals, error) {
	amounts := []decimal.NullDecimal{dto.ProcessingFee, dto.TotalWithoutVAT, dto.PartVAT, dto.TotalWithVAT}
	moneys := make([]kernel.Money, 0, len(amounts))
	for _, amount := range amounts {
		m, err := columns.Money(amount, dto.Currency)
		if err != nil {
			return nil, err
		}
		if m == nil {
			// Totals are all or nothing.
			return nil, nil
		}
		moneys = append(moneys, *m)
	}
	return &order.Totals{
		ProcessingFee:   moneys[0],
		TotalWithoutVAT: moneys[1],
		PartVAT:         moneys[2],
		TotalWithVAT:    moneys[3],
	}, nil
}

func itemToDomain(dto ItemDTO, currency string) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	formatID, err := kernel.UUIDFromPtr(dto.FormatID)
	if err != nil {
		return nil, err
	}
	token, err := kernel.UUIDFromPtr(dto.Token)
	if err != nil {
		return nil, err
	}
	price, err := columns.Money(dto.Price, currency)
	if err != nil {
		return nil, err
	}
	baseFee, err := columns.Money(dto.BaseFee, currency)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(order.ItemState{
		ID:           id,
		ProductID:    productID,
		FormatID:     formatID,
		PriceStatus:  order.PriceStatus(dto.PriceStatus),
		Price:        price,
		BaseFee:      baseFee,
		Status:       order.ItemStatus(dto.Status),
		Token:        token,
		LastDownload: dto.LastDownload,
	})
}
