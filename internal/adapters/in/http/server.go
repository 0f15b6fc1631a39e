package http

import (
	"context"
	"log/slog"
	"net/http"

	"geoshop/internal/core/application/usecases/commands"
	"geoshop/internal/core/application/usecases/queries"
	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/order"
	"geoshop/internal/core/domain/model/pricing"
	"geoshop/internal/core/domain/model/product"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CommandHandler is implemented by every command handler that returns no data.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler is implemented by query handlers and commands that return data.
type ResultHandler[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// Handlers groups the use cases the server exposes.
type Handlers struct {
	CreateIdentity      CommandHandler[commands.CreateIdentityCommand]
	CreatePricing       CommandHandler[commands.CreatePricingCommand]
	AddPricingGeometry  CommandHandler[commands.AddPricingGeometryCommand]
	CreateProduct       CommandHandler[commands.CreateProductCommand]
	CreateOrder         CommandHandler[commands.CreateOrderCommand]
	UpdateOrder         CommandHandler[commands.UpdateOrderCommand]
	AddOrderItem        CommandHandler[commands.AddOrderItemCommand]
	RemoveOrderItem     CommandHandler[commands.RemoveOrderItemCommand]
	SetItemFormat       CommandHandler[commands.SetItemFormatCommand]
	ConfirmOrder        CommandHandler[commands.ConfirmOrderCommand]
	QuoteItem           CommandHandler[commands.QuoteItemCommand]
	CompleteQuote       CommandHandler[commands.CompleteQuoteCommand]
	ValidateItem        CommandHandler[commands.ValidateItemCommand]
	UploadExtractResult CommandHandler[commands.UploadExtractResultCommand]
	RejectExtractItem   CommandHandler[commands.RejectExtractItemCommand]
	MarkOrderDownloaded CommandHandler[commands.MarkOrderDownloadedCommand]
	FetchExtraction     ResultHandler[commands.FetchExtractionCommand, []commands.ExtractItem]

	GetOrder        ResultHandler[queries.GetOrderQuery, queries.OrderView]
	GetLastDraft    ResultHandler[queries.GetLastDraftQuery, queries.OrderView]
	GetExtractItems ResultHandler[queries.GetExtractItemsQuery, []queries.ExtractItemView]
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h        Handlers
	srid     int
	validate *validator.Validate
	logger   *slog.Logger
}

var _ ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server. srid is the reference system of
// every geometry the clients send.
func NewServer(handlers Handlers, srid int, logger *slog.Logger) *Server {
	return &Server{
		h:        handlers,
		srid:     srid,
		validate: validator.New(),
		logger:   logger.With("component", "HTTPServer"),
	}
}

// CreateIdentity handles POST /api/v1/identities.
func (s *Server) CreateIdentity(ctx echo.Context) error {
	var req CreateIdentityRequest
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateIdentityCommand(id, req.Email, req.Name, req.CompanyName, req.Subscribed)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.CreateIdentity.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id.Bytes()})
}

// CreatePricing handles POST /api/v1/pricings.
func (s *Server) CreatePricing(ctx echo.Context) error {
	var req CreatePricingRequest
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	amounts, err := pricingAmounts(req)
	if err != nil {
		return s.fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreatePricingCommand(id, req.Name, req.Code, req.Currency, amounts)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.CreatePricing.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id.Bytes()})
}

// AddPricingGeometry handles POST /api/v1/pricing-geometries.
func (s *Server) AddPricingGeometry(ctx echo.Context) error {
	var req AddPricingGeometryRequest
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	geom, err := s.geometry(req.Geometry)
	if err != nil {
		return s.fail(ctx, err)
	}
	pricingID, err := kernel.UUIDFromPtr(req.PricingID)
	if err != nil {
		return s.fail(ctx, err)
	}
	unitPrice, err := moneyOf(req.UnitPrice, req.Currency)
	if err != nil {
		return s.fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewAddPricingGeometryCommand(id, req.Name, geom, pricingID, unitPrice)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.AddPricingGeometry.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id.Bytes()})
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req CreateProductRequest
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	pricingID, err := kernel.UUIDFromBytes(req.PricingID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	status, err := product.ParseStatus(req.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	attrs, err := s.productAttributes(req)
	if err != nil {
		return s.fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(id, req.Label, pricingID, status, attrs)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id.Bytes()})
}

// CreateOrder handles POST /api/v1/orders - opens a Draft order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	clientID, err := kernel.UUIDFromBytes(req.ClientID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	geom, err := s.geometry(req.Geometry)
	if err != nil {
		return s.fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, clientID, req.Title, geom, req.OrderType)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id.Bytes()})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(view))
}

// UpdateOrder handles PATCH /api/v1/orders/{orderId}.
func (s *Server) UpdateOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	var req UpdateOrderRequest
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	changes, err := s.orderChanges(req)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(id, changes)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetLastDraft handles GET /api/v1/clients/{clientId}/last-draft.
func (s *Server) GetLastDraft(ctx echo.Context, clientID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(clientID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetLastDraftQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.h.GetLastDraft.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse(view))
}

// AddOrderItem handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AddOrderItem(ctx echo.Context, orderID openapi_types.UUID) error {
	var req AddOrderItemRequest
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	productID, err := kernel.UUIDFromBytes(req.ProductID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	formatID, err := kernel.UUIDFromPtr(req.FormatID)
	if err != nil {
		return s.fail(ctx, err)
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderItemCommand(id, itemID, productID, formatID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.AddOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: itemID.Bytes()})
}

// RemoveOrderItem handles DELETE /api/v1/orders/{orderId}/items/{itemId}.
func (s *Server) RemoveOrderItem(ctx echo.Context, orderID, itemID openapi_types.UUID) error {
	oid, iid, err := orderItemIDs(orderID, itemID)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRemoveOrderItemCommand(oid, iid)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.RemoveOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetItemFormat handles PUT /api/v1/orders/{orderId}/items/{itemId}/format.
func (s *Server) SetItemFormat(ctx echo.Context, orderID, itemID openapi_types.UUID) error {
	var req SetItemFormatRequest
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	oid, iid, err := orderItemIDs(orderID, itemID)
	if err != nil {
		return s.fail(ctx, err)
	}
	formatID, err := kernel.UUIDFromBytes(req.FormatID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewSetItemFormatCommand(oid, iid, formatID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.SetItemFormat.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// QuoteItem handles PUT /api/v1/orders/{orderId}/items/{itemId}/quote -
// an operator prices an item by hand.
func (s *Server) QuoteItem(ctx echo.Context, orderID, itemID openapi_types.UUID) error {
	var req QuoteItemRequest
	if err := s.bind(ctx, &req); err != nil {
		return err
	}

	oid, iid, err := orderItemIDs(orderID, itemID)
	if err != nil {
		return s.fail(ctx, err)
	}
	price, err := kernel.NewMoneyFromString(req.Price, req.Currency)
	if err != nil {
		return s.fail(ctx, err)
	}
	baseFee, err := kernel.ZeroMoney(req.Currency)
	if err != nil {
		return s.fail(ctx, err)
	}
	if req.BaseFee != nil {
		if baseFee, err = kernel.NewMoneyFromString(*req.BaseFee, req.Currency); err != nil {
			return s.fail(ctx, err)
		}
	}

	cmd, err := commands.NewQuoteItemCommand(oid, iid, price, baseFee)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.QuoteItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewConfirmOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.ConfirmOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteQuote handles POST /api/v1/orders/{orderId}/quote/complete.
func (s *Server) CompleteQuote(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewCompleteQuoteCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.CompleteQuote.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderDownloaded handles POST /api/v1/orders/{orderId}/downloaded.
func (s *Server) MarkOrderDownloaded(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewMarkOrderDownloadedCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.MarkOrderDownloaded.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveValidation handles POST /api/v1/validations/{token}/approve.
func (s *Server) ApproveValidation(ctx echo.Context, token openapi_types.UUID) error {
	return s.validateItem(ctx, token, true)
}

// RefuseValidation handles POST /api/v1/validations/{token}/refuse.
func (s *Server) RefuseValidation(ctx echo.Context, token openapi_types.UUID) error {
	return s.validateItem(ctx, token, false)
}

func (s *Server) validateItem(ctx echo.Context, token openapi_types.UUID, approve bool) error {
	t, err := kernel.UUIDFromBytes(token[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewValidateItemCommand(t, approve)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.ValidateItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FetchExtraction handles POST /api/v1/providers/{providerId}/extract/fetch.
// The returned items move to IN_EXTRACT.
func (s *Server) FetchExtraction(ctx echo.Context, providerID openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(providerID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewFetchExtractionCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	items, err := s.h.FetchExtraction.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]ExtractJobResponse, len(items))
	for i, item := range items {
		response[i] = extractJobResponse(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetExtractItems handles GET /api/v1/providers/{providerId}/extract/items.
func (s *Server) GetExtractItems(ctx echo.Context, providerID openapi_types.UUID, params GetExtractItemsParams) error {
	id, err := kernel.UUIDFromBytes(providerID[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	var statuses []order.ItemStatus
	if params.Status != nil {
		for _, code := range *params.Status {
			st, parseErr := order.ParseItemStatus(code)
			if parseErr != nil {
				return httpError(http.StatusBadRequest, parseErr.Error())
			}
			statuses = append(statuses, st)
		}
	}

	query, err := queries.NewGetExtractItemsQuery(id, statuses...)
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.h.GetExtractItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]ExtractItemResponse, len(views))
	for i, v := range views {
		response[i] = extractItemResponse(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// UploadExtractResult handles
// PUT /api/v1/providers/{providerId}/extract/orders/{orderId}/items/{itemId}/result.
func (s *Server) UploadExtractResult(ctx echo.Context, providerID, orderID, itemID openapi_types.UUID) error {
	pid, err := kernel.UUIDFromBytes(providerID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	oid, iid, err := orderItemIDs(orderID, itemID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUploadExtractResultCommand(pid, oid, iid)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.UploadExtractResult.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectExtractItem handles
// POST /api/v1/providers/{providerId}/extract/orders/{orderId}/items/{itemId}/reject.
func (s *Server) RejectExtractItem(ctx echo.Context, providerID, orderID, itemID openapi_types.UUID) error {
	pid, err := kernel.UUIDFromBytes(providerID[:])
	if err != nil {
		return s.fail(ctx, err)
	}
	oid, iid, err := orderItemIDs(orderID, itemID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRejectExtractItemCommand(pid, oid, iid)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.RejectExtractItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func pricingAmounts(req CreatePricingRequest) (pricing.Amounts, error) {
	var (
		amounts pricing.Amounts
		err     error
	)
	if amounts.BaseFee, err = moneyOf(req.BaseFee, req.Currency); err != nil {
		return pricing.Amounts{}, err
	}
	if amounts.MinPrice, err = moneyOf(req.MinPrice, req.Currency); err != nil {
		return pricing.Amounts{}, err
	}
	if amounts.MaxPrice, err = moneyOf(req.MaxPrice, req.Currency); err != nil {
		return pricing.Amounts{}, err
	}
	if amounts.UnitPrice, err = moneyOf(req.UnitPrice, req.Currency); err != nil {
		return pricing.Amounts{}, err
	}
	return amounts, nil
}
