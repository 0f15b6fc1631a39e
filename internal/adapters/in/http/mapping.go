package http

import (
	"geoshop/internal/core/application/usecases/commands"
	"geoshop/internal/core/application/usecases/queries"
	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/product"
	"geoshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"github.com/shopspring/decimal"
)

func (s *Server) geometry(g *geojson.Geometry) (kernel.Geometry, error) {
	if g == nil {
		return kernel.Geometry{}, errs.NewValueIsRequiredError("geometry")
	}
	return kernel.NewGeometry(g.Geometry(), s.srid)
}

func moneyOf(amount *string, currency string) (*kernel.Money, error) {
	if amount == nil {
		return nil, nil
	}
	m, err := kernel.NewMoneyFromString(*amount, currency)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func orderItemIDs(orderID, itemID uuid.UUID) (kernel.UUID, kernel.UUID, error) {
	oid, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	iid, err := kernel.UUIDFromBytes(itemID[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return oid, iid, nil
}

func (s *Server) productAttributes(req CreateProductRequest) (product.Attributes, error) {
	var (
		attrs = product.Attributes{FreeWhenSubscribed: req.FreeWhenSubscribed}
		err   error
	)

	if attrs.GroupID, err = kernel.UUIDFromPtr(req.GroupID); err != nil {
		return product.Attributes{}, err
	}
	if attrs.ProviderID, err = kernel.UUIDFromPtr(req.ProviderID); err != nil {
		return product.Attributes{}, err
	}
	if req.Geometry != nil {
		geom, geomErr := s.geometry(req.Geometry)
		if geomErr != nil {
			return product.Attributes{}, geomErr
		}
		attrs.Geom = &geom
	}

	for _, f := range req.Formats {
		format, formatErr := product.NewFormat(kernel.NewUUID(), f.Name, f.IsManual)
		if formatErr != nil {
			return product.Attributes{}, formatErr
		}
		attrs.Formats = append(attrs.Formats, format)
	}

	if req.Metadata != nil {
		if attrs.Metadata, err = metadataOf(*req.Metadata); err != nil {
			return product.Attributes{}, err
		}
	}
	return attrs, nil
}

func metadataOf(req MetadataRequest) (*product.Metadata, error) {
	contacts := make([]product.Contact, 0, len(req.Contacts))
	for _, c := range req.Contacts {
		identityID, err := kernel.UUIDFromBytes(c.IdentityID[:])
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, product.Contact{
			IdentityID:  identityID,
			Email:       c.Email,
			IsValidator: c.IsValidator,
			Priority:    c.Priority,
		})
	}
	return product.NewMetadata(req.IDName, req.Name, product.ParseAccessibility(req.Accessibility), contacts)
}

func (s *Server) orderChanges(req UpdateOrderRequest) (commands.OrderChanges, error) {
	changes := commands.OrderChanges{
		Title:            req.Title,
		Description:      req.Description,
		InvoiceReference: req.InvoiceReference,
		OrderType:        req.OrderType,
	}

	if req.Geometry != nil {
		geom, err := s.geometry(req.Geometry)
		if err != nil {
			return commands.OrderChanges{}, err
		}
		changes.Geom = &geom
	}

	contactID, err := kernel.UUIDFromPtr(req.InvoiceContactID)
	if err != nil {
		return commands.OrderChanges{}, err
	}
	changes.InvoiceContactID = contactID

	return changes, nil
}

func orderResponse(v queries.OrderView) OrderResponse {
	resp := OrderResponse{
		ID:               v.ID.Bytes(),
		ClientID:         v.ClientID.Bytes(),
		InvoiceContactID: kernel.BytesPtr(v.InvoiceContactID),
		Title:            v.Title,
		Description:      v.Description,
		InvoiceReference: v.InvoiceReference,
		OrderType:        v.OrderType,
		Status:           v.Status,
		SRID:             v.SRID,
		Currency:         v.Currency,
		ProcessingFee:    amountString(v.ProcessingFee),
		TotalWithoutVAT:  amountString(v.TotalWithoutVAT),
		PartVAT:          amountString(v.PartVAT),
		TotalWithVAT:     amountString(v.TotalWithVAT),
		DateOrdered:      v.DateOrdered,
		DateProcessed:    v.DateProcessed,
		DateDownloaded:   v.DateDownloaded,
		Items:            make([]OrderItemResponse, len(v.Items)),
	}
	if v.Geom != nil {
		resp.Geometry = geojson.NewGeometry(v.Geom)
	}

	for i, item := range v.Items {
		resp.Items[i] = OrderItemResponse{
			ID:           item.ID.Bytes(),
			ProductID:    item.ProductID.Bytes(),
			ProductLabel: item.ProductLabel,
			FormatID:     kernel.BytesPtr(item.FormatID),
			FormatName:   item.FormatName,
			PriceStatus:  item.PriceStatus,
			Price:        amountString(item.Price),
			BaseFee:      amountString(item.BaseFee),
			Status:       item.Status,
			LastDownload: item.LastDownload,
		}
	}
	return resp
}

func extractJobResponse(item commands.ExtractItem) ExtractJobResponse {
	return ExtractJobResponse{
		OrderID:      item.OrderID.Bytes(),
		ItemID:       item.ItemID.Bytes(),
		ClientID:     item.ClientID.Bytes(),
		ProductID:    item.ProductID.Bytes(),
		ProductLabel: item.ProductLabel,
		FormatID:     kernel.BytesPtr(item.FormatID),
		FormatName:   item.FormatName,
		IsManual:     item.IsManual,
		Geometry:     geojson.NewGeometry(item.Geom.Orb()),
	}
}

func extractItemResponse(v queries.ExtractItemView) ExtractItemResponse {
	return ExtractItemResponse{
		OrderID:      v.OrderID.Bytes(),
		OrderTitle:   v.OrderTitle,
		ClientID:     v.ClientID.Bytes(),
		DateOrdered:  v.DateOrdered,
		ItemID:       v.ItemID.Bytes(),
		ProductID:    v.ProductID.Bytes(),
		ProductLabel: v.ProductLabel,
		FormatName:   v.FormatName,
		IsManual:     v.IsManual,
		Status:       v.Status,
	}
}

func amountString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(kernel.MoneyScale)
	return &s
}
