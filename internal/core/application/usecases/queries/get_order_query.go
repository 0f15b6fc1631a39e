package queries

import (
	"errors"
	"time"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/guard"

	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order with its items.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	view, err := NewGetOrderQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load order: %w", err)
//	}
//	fmt.Println(view.Status, len(view.Items))
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderView is the read model of an order. Amounts are nil until known;
// item prices stay nil while they are pending.
type OrderView struct {
	ID               kernel.UUID
	ClientID         kernel.UUID
	InvoiceContactID *kernel.UUID
	Title            string
	Description      string
	InvoiceReference string
	OrderType        string
	Status           string
	Geom             orb.Geometry
	SRID             int
	Currency         string
	ProcessingFee    *decimal.Decimal
	TotalWithoutVAT  *decimal.Decimal
	PartVAT          *decimal.Decimal
	TotalWithVAT     *decimal.Decimal
	DateOrdered      *time.Time
	DateProcessed    *time.Time
	DateDownloaded   *time.Time
	Items            []OrderItemView
}

type OrderItemView struct {
	ID           kernel.UUID
	ProductID    kernel.UUID
	ProductLabel string
	FormatID     *kernel.UUID
	FormatName   string
	PriceStatus  string
	Price        *decimal.Decimal
	BaseFee      *decimal.Decimal
	Status       string
	LastDownload *time.Time
}
