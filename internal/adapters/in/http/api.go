package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists every operation of the ordering API.
type ServerInterface interface {
	// (POST /identities)
	CreateIdentity(ctx echo.Context) error
	// (POST /pricings)
	CreatePricing(ctx echo.Context) error
	// (POST /pricing-geometries)
	AddPricingGeometry(ctx echo.Context) error
	// (POST /products)
	CreateProduct(ctx echo.Context) error
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderID openapi_types.UUID) error
	// (PATCH /orders/{orderId})
	UpdateOrder(ctx echo.Context, orderID openapi_types.UUID) error
	// (GET /clients/{clientId}/last-draft)
	GetLastDraft(ctx echo.Context, clientID openapi_types.UUID) error
	// (POST /orders/{orderId}/items)
	AddOrderItem(ctx echo.Context, orderID openapi_types.UUID) error
	// (DELETE /orders/{orderId}/items/{itemId})
	RemoveOrderItem(ctx echo.Context, orderID, itemID openapi_types.UUID) error
	// (PUT /orders/{orderId}/items/{itemId}/format)
	SetItemFormat(ctx echo.Context, orderID, itemID openapi_types.UUID) error
	// (PUT /orders/{orderId}/items/{itemId}/quote)
	QuoteItem(ctx echo.Context, orderID, itemID openapi_types.UUID) error
	// (POST /orders/{orderId}/confirm)
	ConfirmOrder(ctx echo.Context, orderID openapi_types.UUID) error
	// (POST /orders/{orderId}/quote/complete)
	CompleteQuote(ctx echo.Context, orderID openapi_types.UUID) error
	// (POST /orders/{orderId}/downloaded)
	MarkOrderDownloaded(ctx echo.Context, orderID openapi_types.UUID) error
	// (POST /validations/{token}/approve)
	ApproveValidation(ctx echo.Context, token openapi_types.UUID) error
	// (POST /validations/{token}/refuse)
	RefuseValidation(ctx echo.Context, token openapi_types.UUID) error
	// (POST /providers/{providerId}/extract/fetch)
	FetchExtraction(ctx echo.Context, providerID openapi_types.UUID) error
	// (GET /providers/{providerId}/extract/items)
	GetExtractItems(ctx echo.Context, providerID openapi_types.UUID, params GetExtractItemsParams) error
	// (PUT /providers/{providerId}/extract/orders/{orderId}/items/{itemId}/result)
	UploadExtractResult(ctx echo.Context, providerID, orderID, itemID openapi_types.UUID) error
	// (POST /providers/{providerId}/extract/orders/{orderId}/items/{itemId}/reject)
	RejectExtractItem(ctx echo.Context, providerID, orderID, itemID openapi_types.UUID) error
}

// GetExtractItemsParams defines parameters for GetExtractItems.
type GetExtractItemsParams struct {
	// Status filters by item status; IN_EXTRACT when absent.
	Status *[]string `form:"status,omitempty" json:"status,omitempty"`
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) CreateIdentity(ctx echo.Context) error {
	return w.Handler.CreateIdentity(ctx)
}

func (w *ServerInterfaceWrapper) CreatePricing(ctx echo.Context) error {
	return w.Handler.CreatePricing(ctx)
}

func (w *ServerInterfaceWrapper) AddPricingGeometry(ctx echo.Context) error {
	return w.Handler.AddPricingGeometry(ctx)
}

func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	return w.Handler.CreateProduct(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GetLastDraft(ctx echo.Context) error {
	clientID, err := bindPathUUID(ctx, "clientId")
	if err != nil {
		return err
	}
	return w.Handler.GetLastDraft(ctx, clientID)
}

func (w *ServerInterfaceWrapper) AddOrderItem(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.AddOrderItem(ctx, orderID)
}

func (w *ServerInterfaceWrapper) RemoveOrderItem(ctx echo.Context) error {
	orderID, itemID, err := bindOrderItem(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RemoveOrderItem(ctx, orderID, itemID)
}

func (w *ServerInterfaceWrapper) SetItemFormat(ctx echo.Context) error {
	orderID, itemID, err := bindOrderItem(ctx)
	if err != nil {
		return err
	}
	return w.Handler.SetItemFormat(ctx, orderID, itemID)
}

func (w *ServerInterfaceWrapper) QuoteItem(ctx echo.Context) error {
	orderID, itemID, err := bindOrderItem(ctx)
	if err != nil {
		return err
	}
	return w.Handler.QuoteItem(ctx, orderID, itemID)
}

func (w *ServerInterfaceWrapper) ConfirmOrder(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ConfirmOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) CompleteQuote(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.CompleteQuote(ctx, orderID)
}

func (w *ServerInterfaceWrapper) MarkOrderDownloaded(ctx echo.Context) error {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.MarkOrderDownloaded(ctx, orderID)
}

func (w *ServerInterfaceWrapper) ApproveValidation(ctx echo.Context) error {
	token, err := bindPathUUID(ctx, "token")
	if err != nil {
		return err
	}
	return w.Handler.ApproveValidation(ctx, token)
}

func (w *ServerInterfaceWrapper) RefuseValidation(ctx echo.Context) error {
	token, err := bindPathUUID(ctx, "token")
	if err != nil {
		return err
	}
	return w.Handler.RefuseValidation(ctx, token)
}

func (w *ServerInterfaceWrapper) FetchExtraction(ctx echo.Context) error {
	providerID, err := bindPathUUID(ctx, "providerId")
	if err != nil {
		return err
	}
	return w.Handler.FetchExtraction(ctx, providerID)
}

func (w *ServerInterfaceWrapper) GetExtractItems(ctx echo.Context) error {
	providerID, err := bindPathUUID(ctx, "providerId")
	if err != nil {
		return err
	}

	var params GetExtractItemsParams
	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return w.Handler.GetExtractItems(ctx, providerID, params)
}

func (w *ServerInterfaceWrapper) UploadExtractResult(ctx echo.Context) error {
	providerID, orderID, itemID, err := bindProviderOrderItem(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UploadExtractResult(ctx, providerID, orderID, itemID)
}

func (w *ServerInterfaceWrapper) RejectExtractItem(ctx echo.Context) error {
	providerID, orderID, itemID, err := bindProviderOrderItem(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RejectExtractItem(ctx, providerID, orderID, itemID)
}

func bindPathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func bindOrderItem(ctx echo.Context) (openapi_types.UUID, openapi_types.UUID, error) {
	orderID, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return orderID, openapi_types.UUID{}, err
	}
	itemID, err := bindPathUUID(ctx, "itemId")
	return orderID, itemID, err
}

func bindProviderOrderItem(ctx echo.Context) (openapi_types.UUID, openapi_types.UUID, openapi_types.UUID, error) {
	providerID, err := bindPathUUID(ctx, "providerId")
	if err != nil {
		return providerID, openapi_types.UUID{}, openapi_types.UUID{}, err
	}
	orderID, itemID, err := bindOrderItem(ctx)
	return providerID, orderID, itemID, err
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every route under router with no prefix.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/identities", wrapper.CreateIdentity)
	router.POST(baseURL+"/pricings", wrapper.CreatePricing)
	router.POST(baseURL+"/pricing-geometries", wrapper.AddPricingGeometry)
	router.POST(baseURL+"/products", wrapper.CreateProduct)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.PATCH(baseURL+"/orders/:orderId", wrapper.UpdateOrder)
	router.GET(baseURL+"/clients/:clientId/last-draft", wrapper.GetLastDraft)
	router.POST(baseURL+"/orders/:orderId/items", wrapper.AddOrderItem)
	router.DELETE(baseURL+"/orders/:orderId/items/:itemId", wrapper.RemoveOrderItem)
	router.PUT(baseURL+"/orders/:orderId/items/:itemId/format", wrapper.SetItemFormat)
	router.PUT(baseURL+"/orders/:orderId/items/:itemId/quote", wrapper.QuoteItem)
	router.POST(baseURL+"/orders/:orderId/confirm", wrapper.ConfirmOrder)
	router.POST(baseURL+"/orders/:orderId/quote/complete", wrapper.CompleteQuote)
	router.POST(baseURL+"/orders/:orderId/downloaded", wrapper.MarkOrderDownloaded)
	router.POST(baseURL+"/validations/:token/approve", wrapper.ApproveValidation)
	router.POST(baseURL+"/validations/:token/refuse", wrapper.RefuseValidation)
	router.POST(baseURL+"/providers/:providerId/extract/fetch", wrapper.FetchExtraction)
	router.GET(baseURL+"/providers/:providerId/extract/items", wrapper.GetExtractItems)
	router.PUT(baseURL+"/providers/:providerId/extract/orders/:orderId/items/:itemId/result", wrapper.UploadExtractResult)
	router.POST(baseURL+"/providers/:providerId/extract/orders/:orderId/items/:itemId/reject", wrapper.RejectExtractItem)
}
