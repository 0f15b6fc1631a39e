package commands_test

import (
	"testing"
	"time"

	"geoshop/internal/core/domain/model/identity"
	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/order"
	"geoshop/internal/core/domain/model/pricing"
	"geoshop/internal/core/domain/model/product"

	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var vat = decimal.RequireFromString("0.077")

func square(t *testing.T, size float64) kernel.Geometry {
	t.Helper()
	x, y := 2600000.0, 1200000.0
	g, err := kernel.NewPolygon(orb.Polygon{{
		{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}, {x, y},
	}}, kernel.DefaultSRID)
	require.NoError(t, err)
	return g
}

func chf(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(amount, "CHF")
	require.NoError(t, err)
	return m
}

func newClient(t *testing.T, subscribed bool) *identity.Identity {
	t.Helper()
	i, err := identity.NewIdentity(kernel.NewUUID(), "client@example.ch", "Client", "", subscribed)
	require.NoError(t, err)
	return i
}

func newDraft(t *testing.T, clientID kernel.UUID) *order.Order {
	t.Helper()
	orderType, err := order.NewType("private")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "Cadastre", square(t, 100), clientID, orderType, "CHF")
	require.NoError(t, err)
	return o
}

// newProduct builds a published product with one format. A nil provider
// leaves the product without one.
func newProduct(t *testing.T, providerID *kernel.UUID, isManual bool) *product.Product {
	t.Helper()
	price := chf(t, "100")
	pr, err := pricing.NewPricing(kernel.NewUUID(), "Single", "SINGLE", "CHF", pricing.Amounts{UnitPrice: &price})
	require.NoError(t, err)
	format, err := product.NewFormat(kernel.NewUUID(), "GeoPackage", isManual)
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), "Cadastre", pr, product.Attributes{
		ProviderID: providerID,
		Formats:    []product.Format{format},
	})
	require.NoError(t, err)
	require.NoError(t, p.Publish(false))
	return p
}

func addItem(t *testing.T, o *order.Order, p *product.Product) *order.Item {
	t.Helper()
	format, ok := p.FirstFormat()
	require.True(t, ok)
	formatID := format.ID()
	item, err := order.NewItem(kernel.NewUUID(), p.ID(), &formatID, p.RequiresValidation())
	require.NoError(t, err)
	require.NoError(t, o.AddItem(item))
	return item
}

// readyOrder returns a confirmed order holding one priced item of p.
func readyOrder(t *testing.T, p *product.Product) (*order.Order, *order.Item) {
	t.Helper()
	o := newDraft(t, kernel.NewUUID())
	item := addItem(t, o, p)
	require.NoError(t, o.SetItemCalculatedPrice(item.ID(), chf(t, "100"), chf(t, "0")))
	require.NoError(t, o.Confirm(time.Now(), vat, nil))
	require.Equal(t, order.Ready, o.Status())
	return o, item
}
