package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// Amounts travel as decimal strings so no float ever touches a price.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type CreateIdentityRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Name        string `json:"name"`
	CompanyName string `json:"company_name"`
	Subscribed  bool   `json:"subscribed"`
}

type CreatePricingRequest struct {
	Name      string  `json:"name" validate:"required"`
	Code      string  `json:"code" validate:"required,oneof=FREE SINGLE BY_NUMBER_OBJECTS BY_AREA FROM_PRICING_LAYER FROM_CHILDREN_OF_GROUP MANUAL"`
	Currency  string  `json:"currency" validate:"required,len=3"`
	BaseFee   *string `json:"base_fee,omitempty" validate:"omitempty,numeric"`
	MinPrice  *string `json:"min_price,omitempty" validate:"omitempty,numeric"`
	MaxPrice  *string `json:"max_price,omitempty" validate:"omitempty,numeric"`
	UnitPrice *string `json:"unit_price,omitempty" validate:"omitempty,numeric"`
}

type AddPricingGeometryRequest struct {
	Name      string            `json:"name"`
	Geometry  *geojson.Geometry `json:"geometry" validate:"required"`
	PricingID *uuid.UUID        `json:"pricing_id,omitempty"`
	UnitPrice *string           `json:"unit_price,omitempty" validate:"omitempty,numeric"`
	Currency  string            `json:"currency,omitempty" validate:"omitempty,len=3"`
}

type FormatRequest struct {
	Name     string `json:"name" validate:"required"`
	IsManual bool   `json:"is_manual"`
}

type ContactRequest struct {
	IdentityID  uuid.UUID `json:"identity_id" validate:"required"`
	Email       string    `json:"email" validate:"omitempty,email"`
	IsValidator bool      `json:"is_validator"`
	Priority    int       `json:"priority" validate:"gte=0"`
}

type MetadataRequest struct {
	IDName        string           `json:"id_name" validate:"required"`
	Name          string           `json:"name"`
	Accessibility string           `json:"accessibility" validate:"omitempty,oneof=PUBLIC APPROVAL_NEEDED"`
	Contacts      []ContactRequest `json:"contacts" validate:"dive"`
}

type CreateProductRequest struct {
	Label              string            `json:"label" validate:"required"`
	PricingID          uuid.UUID         `json:"pricing_id" validate:"required"`
	Status             string            `json:"status" validate:"required,oneof=DRAFT PUBLISHED PUBLISHED_ONLY_IN_GROUP"`
	GroupID            *uuid.UUID        `json:"group_id,omitempty"`
	FreeWhenSubscribed bool              `json:"free_when_subscribed"`
	Geometry           *geojson.Geometry `json:"geometry,omitempty"`
	ProviderID         *uuid.UUID        `json:"provider_id,omitempty"`
	Formats            []FormatRequest   `json:"formats" validate:"dive"`
	Metadata           *MetadataRequest  `json:"metadata,omitempty"`
}

type CreateOrderRequest struct {
	ClientID  uuid.UUID         `json:"client_id" validate:"required"`
	Title     string            `json:"title" validate:"required"`
	Geometry  *geojson.Geometry `json:"geometry" validate:"required"`
	OrderType string            `json:"order_type" validate:"required"`
}

// UpdateOrderRequest leaves absent fields untouched.
type UpdateOrderRequest struct {
	Title            *string           `json:"title,omitempty"`
	Description      *string           `json:"description,omitempty"`
	InvoiceReference *string           `json:"invoice_reference,omitempty"`
	Geometry         *geojson.Geometry `json:"geometry,omitempty"`
	OrderType        *string           `json:"order_type,omitempty"`
	InvoiceContactID *uuid.UUID        `json:"invoice_contact_id,omitempty"`
}

type AddOrderItemRequest struct {
	ProductID uuid.UUID  `json:"product_id" validate:"required"`
	FormatID  *uuid.UUID `json:"format_id,omitempty"`
}

type SetItemFormatRequest struct {
	FormatID uuid.UUID `json:"format_id" validate:"required"`
}

type QuoteItemRequest struct {
	Price    string  `json:"price" validate:"required,numeric"`
	BaseFee  *string `json:"base_fee,omitempty" validate:"omitempty,numeric"`
	Currency string  `json:"currency" validate:"required,len=3"`
}

type OrderItemResponse struct {
	ID           uuid.UUID  `json:"id"`
	ProductID    uuid.UUID  `json:"product_id"`
	ProductLabel string     `json:"product_label"`
	FormatID     *uuid.UUID `json:"format_id,omitempty"`
	FormatName   string     `json:"format_name,omitempty"`
	PriceStatus  string     `json:"price_status"`
	Price        *string    `json:"price,omitempty"`
	BaseFee      *string    `json:"base_fee,omitempty"`
	Status       string     `json:"status"`
	LastDownload *time.Time `json:"last_download,omitempty"`
}

type OrderResponse struct {
	ID               uuid.UUID           `json:"id"`
	ClientID         uuid.UUID           `json:"client_id"`
	InvoiceContactID *uuid.UUID          `json:"invoice_contact_id,omitempty"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	InvoiceReference string              `json:"invoice_reference"`
	OrderType        string              `json:"order_type"`
	Status           string              `json:"status"`
	Geometry         *geojson.Geometry   `json:"geometry"`
	SRID             int                 `json:"srid"`
	Currency         string              `json:"currency"`
	ProcessingFee    *string             `json:"processing_fee,omitempty"`
	TotalWithoutVAT  *string             `json:"total_without_vat,omitempty"`
	PartVAT          *string             `json:"part_vat,omitempty"`
	TotalWithVAT     *string             `json:"total_with_vat,omitempty"`
	DateOrdered      *time.Time          `json:"date_ordered,omitempty"`
	DateProcessed    *time.Time          `json:"date_processed,omitempty"`
	DateDownloaded   *time.Time          `json:"date_downloaded,omitempty"`
	Items            []OrderItemResponse `json:"items"`
}

// ExtractJobResponse is one item handed to a provider by FetchExtraction.
type ExtractJobResponse struct {
	OrderID      uuid.UUID         `json:"order_id"`
	ItemID       uuid.UUID         `json:"item_id"`
	ClientID     uuid.UUID         `json:"client_id"`
	ProductID    uuid.UUID         `json:"product_id"`
	ProductLabel string            `json:"product_label"`
	FormatID     *uuid.UUID        `json:"format_id,omitempty"`
	FormatName   string            `json:"format_name,omitempty"`
	IsManual     bool              `json:"is_manual"`
	Geometry     *geojson.Geometry `json:"geometry"`
}

type ExtractItemResponse struct {
	OrderID      uuid.UUID  `json:"order_id"`
	OrderTitle   string     `json:"order_title"`
	ClientID     uuid.UUID  `json:"client_id"`
	DateOrdered  *time.Time `json:"date_ordered,omitempty"`
	ItemID       uuid.UUID  `json:"item_id"`
	ProductID    uuid.UUID  `json:"product_id"`
	ProductLabel string     `json:"product_label"`
	FormatName   string     `json:"format_name,omitempty"`
	IsManual     bool       `json:"is_manual"`
	Status       string     `json:"status"`
}
