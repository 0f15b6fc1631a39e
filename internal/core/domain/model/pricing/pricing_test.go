package pricing_test

import (
	"testing"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/core/domain/model/pricing"
	"geoshop/internal/pkg/errs"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount string) *kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(amount, "CHF")
	require.NoError(t, err)
	return &m
}

func TestParseType(t *testing.T) {
	tests := []struct {
		code string
		want pricing.Type
	}{
		{"FREE", pricing.Free},
		{"SINGLE", pricing.Single},
		{"BY_NUMBER_OBJECTS", pricing.ByNumberObjects},
		{"BY_AREA", pricing.ByArea},
		{"FROM_PRICING_LAYER", pricing.FromPricingLayer},
		{"FROM_CHILDREN_OF_GROUP", pricing.FromChildrenOfGroup},
		{"MANUAL", pricing.Manual},
		{"BY_VOLUME", pricing.Unrecognized},
		{"", pricing.Unrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := pricing.ParseType(tt.code)
			assert.Equal(t, tt.want, got)
			if tt.want.IsRecognized() {
				assert.Equal(t, tt.code, got.Code())
			}
		})
	}
}

func TestNewPricing(t *testing.T) {
	t.Run("by area with unit price", func(t *testing.T) {
		p, err := pricing.NewPricing(kernel.NewUUID(), "area", "BY_AREA", "CHF", pricing.Amounts{
			BaseFee:   money(t, "50"),
			UnitPrice: money(t, "150"),
		})

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, pricing.ByArea, p.Type())
		assert.Equal(t, pricing.ByAreaRule{UnitPrice: *money(t, "150")}, p.Rule())
	})

	t.Run("unit price is required for multiplying types", func(t *testing.T) {
		for _, code := range []string{"SINGLE", "BY_AREA", "BY_NUMBER_OBJECTS"} {
			_, err := pricing.NewPricing(kernel.NewUUID(), "p", code, "CHF", pricing.Amounts{})
			require.ErrorIs(t, err, errs.ErrValueIsRequired, code)
		}
	})

	t.Run("currency of amounts must match", func(t *testing.T) {
		eur, err := kernel.NewMoneyFromString("1", "EUR")
		require.NoError(t, err)

		_, err = pricing.NewPricing(kernel.NewUUID(), "p", "FREE", "CHF", pricing.Amounts{BaseFee: &eur})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("min above max", func(t *testing.T) {
		_, err := pricing.NewPricing(kernel.NewUUID(), "p", "FREE", "CHF", pricing.Amounts{
			MinPrice: money(t, "300"),
			MaxPrice: money(t, "250"),
		})
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("aggregates every invalid field", func(t *testing.T) {
		_, err := pricing.NewPricing(kernel.UUID{}, "p", "", "chf", pricing.Amounts{})

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPricing_Rule(t *testing.T) {
	t.Run("unknown code is kept", func(t *testing.T) {
		p, err := pricing.RestorePricing(kernel.NewUUID(), "future", "BY_VOLUME", "CHF", pricing.Amounts{})

		require.NoError(t, err)
		assert.Equal(t, "BY_VOLUME", p.Code())
		assert.Equal(t, pricing.UnknownRule{Code: "BY_VOLUME"}, p.Rule())
	})

	t.Run("restored rule without unit price is incomplete", func(t *testing.T) {
		p, err := pricing.RestorePricing(kernel.NewUUID(), "broken", "SINGLE", "CHF", pricing.Amounts{})

		require.NoError(t, err)
		assert.Equal(t, pricing.IncompleteRule{Type: pricing.Single, Missing: "unit_price"}, p.Rule())
	})

	t.Run("base fee defaults to zero", func(t *testing.T) {
		p, err := pricing.NewPricing(kernel.NewUUID(), "free", "FREE", "CHF", pricing.Amounts{})

		require.NoError(t, err)
		assert.True(t, p.BaseFeeOrZero().IsZero())
		assert.Equal(t, pricing.FreeRule{}, p.Rule())
	})
}

func TestNewGeometry(t *testing.T) {
	zone, err := kernel.NewPolygon(orb.Polygon{{{0, 0}, {100, 0}, {100, 100}, {0, 100}, {0, 0}}}, kernel.DefaultSRID)
	require.NoError(t, err)
	point, err := kernel.NewPoint(orb.Point{5, 5}, kernel.DefaultSRID)
	require.NoError(t, err)
	pricingID := kernel.NewUUID()

	t.Run("zone with unit price", func(t *testing.T) {
		g, err := pricing.NewGeometry(kernel.NewUUID(), "zone", zone, &pricingID, money(t, "12"))

		require.NoError(t, err)
		require.NoError(t, g.Validate())
		assert.True(t, g.PricingID().IsEqual(pricingID))
	})

	t.Run("unlinked point", func(t *testing.T) {
		g, err := pricing.NewGeometry(kernel.NewUUID(), "tree", point, nil, nil)

		require.NoError(t, err)
		assert.Nil(t, g.PricingID())
		assert.Nil(t, g.UnitPrice())
	})

	t.Run("point cannot carry a unit price", func(t *testing.T) {
		_, err := pricing.NewGeometry(kernel.NewUUID(), "tree", point, nil, money(t, "1"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing geometry", func(t *testing.T) {
		_, err := pricing.NewGeometry(kernel.NewUUID(), "empty", kernel.Geometry{}, nil, money(t, "1"))
		require.ErrorIs(t, err, kernel.ErrGeometryIsNotConstructed)
	})
}
