package kernel_test

import (
	"testing"

	"geoshop/internal/core/domain/model/kernel"
	"geoshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chf(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(amount, "CHF")
	require.NoError(t, err)
	return m
}

func TestNewMoney(t *testing.T) {
	t.Run("valid amount and currency", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromInt(50), "CHF")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "CHF", m.Currency())
		assert.Equal(t, "50.00 CHF", m.String())
	})

	t.Run("rejects malformed currency", func(t *testing.T) {
		for _, code := range []string{"", "chf", "CH", "EURO"} {
			_, err := kernel.NewMoney(decimal.NewFromInt(1), code)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, code)
		}
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1), "CHF")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects unparsable literal", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("12,5", "CHF")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var m kernel.Money
		require.ErrorIs(t, m.Validate(), kernel.ErrMoneyIsNotConstructed)
	})
}

func TestMoney_Round(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"68.53", "68.53"},
		{"68.530000", "68.53"},
		{"68.525", "68.53"},
		{"68.5249", "68.52"},
		{"0.005", "0.01"},
		{"0.004", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := chf(t, tt.in).Round()
			assert.Equal(t, tt.want, got.Amount().StringFixed(2))
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add same currency", func(t *testing.T) {
		sum, err := chf(t, "840").Add(chf(t, "50"))

		require.NoError(t, err)
		assert.True(t, sum.IsEqual(chf(t, "890")))
	})

	t.Run("add different currency fails", func(t *testing.T) {
		eur, err := kernel.NewMoneyFromString("1", "EUR")
		require.NoError(t, err)

		_, err = chf(t, "1").Add(eur)
		require.ErrorIs(t, err, kernel.ErrCurrencyMismatch)

		_, err = chf(t, "1").Compare(eur)
		require.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
	})

	t.Run("vat on 890 is 68.53", func(t *testing.T) {
		vat := chf(t, "890").Mul(decimal.RequireFromString("0.077")).Round()
		assert.Equal(t, "68.53 CHF", vat.String())
	})

	t.Run("negative factor clamps to zero", func(t *testing.T) {
		assert.True(t, chf(t, "10").Mul(decimal.NewFromInt(-2)).IsZero())
	})

	t.Run("compare", func(t *testing.T) {
		cmp, err := chf(t, "10").Compare(chf(t, "20"))
		require.NoError(t, err)
		assert.Equal(t, -1, cmp)
	})
}
