// Package columns maps kernel value objects onto plain SQL columns shared by
// the repositories.
package columns

import (
	"geoshop/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Amount returns the amount of m as a nullable numeric.
func Amount(m *kernel.Money) decimal.NullDecimal {
	if m == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(m.Amount())
}

// AmountOf is Amount for a non-optional value.
func AmountOf(m kernel.Money) decimal.NullDecimal {
	return decimal.NewNullDecimal(m.Amount())
}

// Money rebuilds an optional amount stored next to its currency column.
func Money(amount decimal.NullDecimal, currency string) (*kernel.Money, error) {
	if !amount.Valid {
		return nil, nil
	}
	m, err := kernel.NewMoney(amount.Decimal, currency)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

