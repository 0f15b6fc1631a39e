package order_test

import (
	"testing"
	"time"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/order"
	"geoshop/internal/pkg/errs"

	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var vat = decimal.RequireFromString("0.077")

func square(t *testing.T, size float64) kernel.Geometry {
	t.Helper()
	g, err := kernel.NewPolygon(orb.Polygon{{
		{2600000, 1200000},
		{2600000 + size, 1200000},
		{2600000 + size, 1200000 + size},
		{2600000, 1200000 + size},
		{2600000, 1200000},
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

func newDraft(t *testing.T) *order.Order {
	t.Helper()
	orderType, err := order.NewType("private")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "Cadastre Neuchâtel", square(t, 100), kernel.NewUUID(), orderType, "CHF")
	require.NoError(t, err)
	return o
}

func addItem(t *testing.T, o *order.Order, requiresValidation bool) *order.Item {
	t.Helper()
	format := kernel.NewUUID()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), &format, requiresValidation)
	require.NoError(t, err)
	require.NoError(t, o.AddItem(item))
	return item
}

func TestNewOrder(t *testing.T) {
	orderType, _ := order.NewType("private")

	t.Run("should create draft order", func(t *testing.T) {
		clientID := kernel.NewUUID()
		o, err := order.NewOrder(kernel.NewUUID(), " Parcels ", square(t, 10), clientID, orderType, "CHF")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Draft, o.Status())
		assert.Equal(t, "Parcels", o.Title())
		assert.True(t, o.ClientID().IsEqual(clientID))
		assert.Empty(t, o.Items())
		_, ok := o.Totals()
		assert.False(t, ok)
	})

	t.Run("should reject point geometry", func(t *testing.T) {
		point, err := kernel.NewPoint(orb.Point{1, 2}, kernel.DefaultSRID)
		require.NoError(t, err)

		o, err := order.NewOrder(kernel.NewUUID(), "title", point, kernel.NewUUID(), orderType, "CHF")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
	})

	t.Run("should join all errors", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, "", kernel.Geometry{}, kernel.UUID{}, order.Type{}, "chf")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_EditsOnlyInDraft(t *testing.T) {
	o := newDraft(t)
	item := addItem(t, o, false)
	require.NoError(t, o.SetItemCalculatedPrice(item.ID(), chf(t, "10"), chf(t, "0")))
	require.NoError(t, o.Confirm(time.Now(), vat, nil))
	require.Equal(t, order.Ready, o.Status())

	orderType, _ := order.NewType("public")
	edits := map[string]error{
		"title":       o.SetTitle("other"),
		"description": o.SetDescription("other"),
		"geom":        o.SetGeometry(square(t, 5)),
		"order type":  o.SetOrderType(orderType),
		"contact":     o.SetInvoiceContact(nil),
		"remove item": o.RemoveItem(item.ID()),
		"format":      o.SetItemFormat(item.ID(), kernel.NewUUID()),
		"price":       o.SetItemCalculatedPrice(item.ID(), chf(t, "1"), chf(t, "0")),
	}
	for name, err := range edits {
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid, name)
	}
	assert.Len(t, o.Items(), 1)
}

func TestOrder_RecalculatePrice(t *testing.T) {
	t.Run("5.6 ha at 150 plus base fee 50", func(t *testing.T) {
		o := newDraft(t)
		item := addItem(t, o, false)
		require.NoError(t, o.SetItemCalculatedPrice(item.ID(), chf(t, "840"), chf(t, "50")))

		require.True(t, o.RecalculatePrice(vat))

		totals, ok := o.Totals()
		require.True(t, ok)
		assert.Equal(t, "50.00 CHF", totals.ProcessingFee.String())
		assert.Equal(t, "890.00 CHF", totals.TotalWithoutVAT.String())
		assert.Equal(t, "68.53 CHF", totals.PartVAT.String())
		assert.Equal(t, "958.53 CHF", totals.TotalWithVAT.String())
	})

	t.Run("processing fee is the highest base fee", func(t *testing.T) {
		o := newDraft(t)
		first := addItem(t, o, false)
		second := addItem(t, o, false)
		require.NoError(t, o.SetItemCalculatedPrice(first.ID(), chf(t, "100"), chf(t, "20")))
		require.NoError(t, o.SetItemCalculatedPrice(second.ID(), chf(t, "30"), chf(t, "45")))

		require.True(t, o.RecalculatePrice(decimal.Zero))

		totals, _ := o.Totals()
		assert.Equal(t, "45.00 CHF", totals.ProcessingFee.String())
		assert.Equal(t, "175.00 CHF", totals.TotalWithoutVAT.String())
	})

	t.Run("is idempotent", func(t *testing.T) {
		o := newDraft(t)
		item := addItem(t, o, false)
		require.NoError(t, o.SetItemCalculatedPrice(item.ID(), chf(t, "12.345"), chf(t, "0")))

		require.True(t, o.RecalculatePrice(vat))
		first, _ := o.Totals()
		require.True(t, o.RecalculatePrice(vat))
		second, _ := o.Totals()

		assert.True(t, first.TotalWithVAT.IsEqual(second.TotalWithVAT))
		assert.True(t, first.PartVAT.IsEqual(second.PartVAT))
	})

	t.Run("is all or nothing", func(t *testing.T) {
		o := newDraft(t)
		priced := addItem(t, o, false)
		addItem(t, o, false)
		require.NoError(t, o.SetItemCalculatedPrice(priced.ID(), chf(t, "100"), chf(t, "20")))

		assert.False(t, o.RecalculatePrice(vat))
		_, ok := o.Totals()
		assert.False(t, ok)
		assert.False(t, o.AllPriced())
	})

	t.Run("resetting a price clears totals", func(t *testing.T) {
		o := newDraft(t)
		item := addItem(t, o, false)
		require.NoError(t, o.SetItemCalculatedPrice(item.ID(), chf(t, "100"), chf(t, "20")))
		require.True(t, o.RecalculatePrice(vat))

		require.NoError(t, o.ResetItemPrice(item.ID()))

		_, ok := o.Totals()
		assert.False(t, ok)
		_, ok = item.Price()
		assert.False(t, ok)
	})

	t.Run("rejects a price in another currency", func(t *testing.T) {
		o := newDraft(t)
		item := addItem(t, o, false)
		eur, err := kernel.NewMoneyFromString("10", "EUR")
		require.NoError(t, err)

		err = o.SetItemCalculatedPrice(item.ID(), eur, eur)
		require.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
	})
}

func TestOrder_Confirm(t *testing.T) {
	t.Run("all priced goes ready", func(t *testing.T) {
		o := newDraft(t)
		item := addItem(t, o, false)
		require.NoError(t, o.SetItemCalculatedPrice(item.ID(), chf(t, "10"), chf(t, "5")))
		now := time.Now()

		require.NoError(t, o.Confirm(now, vat, nil))

		assert.Equal(t, order.Ready, o.Status())
		require.NotNil(t, o.DateOrdered())
		assert.Equal(t, now, *o.DateOrdered())
		assert.NotNil(t, o.DownloadGUID())
		assert.Empty(t, o.PullEvents())
	})

	t.Run("unpriced items ask operators for a quote", func(t *testing.T) {
		o := newDraft(t)
		item := addItem(t, o, false)

		require.NoError(t, o.Confirm(time.Now(), vat, nil))

		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.DownloadGUID())
		events := o.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.QuoteRequested, events[0].Kind)
		assert.Equal(t, order.Operators, events[0].Recipient.Role)
		assert.True(t, events[0].ItemID.IsEqual(item.ID()))
		assert.True(t, events[0].OrderID.IsEqual(o.ID()))
		assert.Empty(t, o.PullEvents())
	})

	t.Run("validators receive a token", func(t *testing.T) {
		o := newDraft(t)
		item := addItem(t, o, true)
		require.NoError(t, o.SetItemCalculatedPrice(item.ID(), chf(t, "0"), chf(t, "0")))
		validatorID := kernel.NewUUID()

		err := o.Confirm(time.Now(), vat, map[kernel.UUID]order.Recipient{
			item.ID(): {IdentityID: &validatorID, Email: "validator@example.org"},
		})
		require.NoError(t, err)

		assert.Equal(t, order.ItemValidationPending, item.Status())
		require.NotNil(t, item.Token())
		events := o.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.ValidationRequested, events[0].Kind)
		assert.Equal(t, order.Validator, events[0].Recipient.Role)
		assert.Equal(t, "validator@example.org", events[0].Recipient.Email)
		assert.True(t, events[0].Token.IsEqual(*item.Token()))
	})

	t.Run("requires items", func(t *testing.T) {
		o := newDraft(t)
		err := o.Confirm(time.Now(), vat, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, order.ErrOrderHasNoItems)
		assert.Equal(t, order.Draft, o.Status())
	})

	t.Run("requires data formats", func(t *testing.T) {
		o := newDraft(t)
		item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), nil, false)
		require.NoError(t, err)
		require.NoError(t, o.AddItem(item))

		err = o.Confirm(time.Now(), vat, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "data_format")
	})

	t.Run("cannot confirm twice", func(t *testing.T) {
		o := newDraft(t)
		addItem(t, o, false)
		require.NoError(t, o.Confirm(time.Now(), vat, nil))

		err := o.Confirm(time.Now(), vat, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_QuoteFlow(t *testing.T) {
	o := newDraft(t)
	item := addItem(t, o, false)
	require.NoError(t, o.Confirm(time.Now(), vat, nil))
	o.PullEvents()

	done, err := o.QuoteDone(vat)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, order.Pending, o.Status())

	require.NoError(t, o.SetItemQuote(item.ID(), chf(t, "840"), chf(t, "50")))
	done, err = o.QuoteDone(vat)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, order.QuoteDone, o.Status())

	events := o.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, order.QuoteCompleted, events[0].Kind)
	assert.Equal(t, order.Client, events[0].Recipient.Role)
	assert.True(t, events[0].Recipient.IdentityID.IsEqual(o.ClientID()))

	require.NoError(t, o.Confirm(time.Now(), vat, nil))
	assert.Equal(t, order.Ready, o.Status())
	totals, ok := o.Totals()
	require.True(t, ok)
	assert.Equal(t, "958.53 CHF", totals.TotalWithVAT.String())

	err = o.SetItemQuote(item.ID(), chf(t, "1"), chf(t, "0"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestOrder_ReplaceGroupItem(t *testing.T) {
	o := newDraft(t)
	group := addItem(t, o, false)

	format := kernel.NewUUID()
	first, _ := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), &format, false)
	second, _ := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), &format, false)

	require.NoError(t, o.ReplaceGroupItem(group.ID(), []*order.Item{first, second}))

	items := o.Items()
	require.Len(t, items, 2)
	_, found := o.Item(group.ID())
	assert.False(t, found)

	err := o.ReplaceGroupItem(group.ID(), nil)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func readyOrder(t *testing.T, items int) (*order.Order, []*order.Item) {
	t.Helper()
	o := newDraft(t)
	list := make([]*order.Item, 0, items)
	for range items {
		item := addItem(t, o, false)
		require.NoError(t, o.SetItemCalculatedPrice(item.ID(), chf(t, "10"), chf(t, "0")))
		list = append(list, item)
	}
	require.NoError(t, o.Confirm(time.Now(), vat, nil))
	require.Equal(t, order.Ready, o.Status())
	return o, list
}

func TestOrder_ExtractionByTwoProviders(t *testing.T) {
	o, items := readyOrder(t, 2)
	now := time.Now()

	require.NoError(t, o.StartExtraction([]kernel.UUID{items[0].ID()}))
	assert.Equal(t, order.InExtract, o.Status())

	require.NoError(t, o.DeliverItem(items[0].ID(), now))
	assert.Equal(t, order.PartiallyDelivered, o.Status())
	assert.Empty(t, o.PullEvents())

	require.NoError(t, o.StartExtraction([]kernel.UUID{items[1].ID()}))
	require.NoError(t, o.DeliverItem(items[1].ID(), now))
	assert.Equal(t, order.Processed, o.Status())
	require.NotNil(t, o.DateProcessed())

	events := o.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, order.DownloadReady, events[0].Kind)

	err := o.NextStatusOnExtractInput(now)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Empty(t, o.PullEvents())
}

func TestOrder_NextStatusOnExtractInput(t *testing.T) {
	now := time.Now()

	t.Run("outstanding only stays ready", func(t *testing.T) {
		o, _ := readyOrder(t, 1)
		require.NoError(t, o.NextStatusOnExtractInput(now))
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("everything rejected", func(t *testing.T) {
		o, items := readyOrder(t, 2)
		require.NoError(t, o.RejectItem(items[0].ID(), now))
		assert.Equal(t, order.Ready, o.Status())
		require.NoError(t, o.RejectItem(items[1].ID(), now))
		assert.Equal(t, order.Rejected, o.Status())
		assert.Empty(t, o.PullEvents())
	})

	t.Run("rejected and processed", func(t *testing.T) {
		o, items := readyOrder(t, 2)
		require.NoError(t, o.StartExtraction([]kernel.UUID{items[0].ID(), items[1].ID()}))
		require.NoError(t, o.RejectItem(items[0].ID(), now))
		assert.Equal(t, order.Ready, o.Status())
		require.NoError(t, o.DeliverItem(items[1].ID(), now))
		assert.Equal(t, order.Processed, o.Status())
	})

	t.Run("pickup requires pending item", func(t *testing.T) {
		o, items := readyOrder(t, 1)
		require.NoError(t, o.StartExtraction([]kernel.UUID{items[0].ID()}))
		err := o.StartExtraction([]kernel.UUID{items[0].ID()})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("not before confirmation", func(t *testing.T) {
		o := newDraft(t)
		err := o.NextStatusOnExtractInput(now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validation(t *testing.T) {
	confirm := func(t *testing.T) (*order.Order, *order.Item, *order.Item) {
		o := newDraft(t)
		validated := addItem(t, o, true)
		plain := addItem(t, o, false)
		for _, item := range []*order.Item{validated, plain} {
			require.NoError(t, o.SetItemCalculatedPrice(item.ID(), chf(t, "1"), chf(t, "0")))
		}
		require.NoError(t, o.Confirm(time.Now(), vat, map[kernel.UUID]order.Recipient{
			validated.ID(): {Email: "v@example.org"},
		}))
		return o, validated, plain
	}

	t.Run("approve releases the item", func(t *testing.T) {
		o, validated, _ := confirm(t)
		require.NoError(t, o.ApproveValidation(*validated.Token()))
		assert.Equal(t, order.ItemPending, validated.Status())

		err := o.ApproveValidation(*validated.Token())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("refuse after delivery of the rest", func(t *testing.T) {
		o, validated, plain := confirm(t)
		now := time.Now()
		require.NoError(t, o.StartExtraction([]kernel.UUID{plain.ID()}))
		require.NoError(t, o.DeliverItem(plain.ID(), now))
		assert.Equal(t, order.PartiallyDelivered, o.Status())

		require.NoError(t, o.RefuseValidation(*validated.Token(), now))
		assert.Equal(t, order.ItemRejected, validated.Status())
		assert.Equal(t, order.Processed, o.Status())
	})

	t.Run("unknown token", func(t *testing.T) {
		o, _, _ := confirm(t)
		err := o.RefuseValidation(kernel.NewUUID(), time.Now())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrder_DownloadAndArchive(t *testing.T) {
	o, items := readyOrder(t, 1)
	now := time.Now()

	require.ErrorIs(t, o.MarkDownloaded(now), errs.ErrValueIsInvalid)
	require.ErrorIs(t, o.Archive(), errs.ErrValueIsInvalid)

	require.NoError(t, o.StartExtraction([]kernel.UUID{items[0].ID()}))
	require.NoError(t, o.DeliverItem(items[0].ID(), now))

	require.NoError(t, o.MarkDownloaded(now))
	require.NotNil(t, o.DateDownloaded())
	require.NotNil(t, items[0].LastDownload())

	require.NoError(t, o.Archive())
	assert.Equal(t, order.Archived, o.Status())
	assert.Equal(t, order.ItemArchived, items[0].Status())
}

func TestRestoreOrder(t *testing.T) {
	orderType, _ := order.NewType("private")
	price := chf(t, "10")
	item, err := order.RestoreItem(order.ItemState{
		ID:          kernel.NewUUID(),
		ProductID:   kernel.NewUUID(),
		PriceStatus: order.PriceImported,
		Price:       &price,
		BaseFee:     &price,
		Status:      order.ItemPending,
	})
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.State{
		ID:        kernel.NewUUID(),
		Version:   3,
		Title:     "restored",
		Geom:      square(t, 10),
		ClientID:  kernel.NewUUID(),
		OrderType: orderType,
		Currency:  "CHF",
		Status:    order.Pending,
		Items:     []*order.Item{item},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, o.Version())
	assert.Equal(t, order.Pending, o.Status())
	assert.True(t, o.AllPriced())

	_, err = order.RestoreItem(order.ItemState{
		ID:          kernel.NewUUID(),
		ProductID:   kernel.NewUUID(),
		PriceStatus: order.PriceCalculated,
		Status:      order.ItemPending,
	})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
