package kernel

import (
	"errors"
	"fmt"
	"regexp"

	"geoshop/internal/pkg/errs"
	"geoshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places every amount is rounded to.
const MoneyScale = 2

var (
	ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney constructor")
	ErrCurrencyMismatch      = errors.New("currency mismatch")

	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Money is an immutable amount in a single ISO 4217 currency.
//
// Arithmetic never silently mixes currencies: Add and Compare return
// ErrCurrencyMismatch, and callers treat that as "cannot price" rather
// than converting.
type Money struct {
	amount   decimal.Decimal
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney validates the currency code and keeps the amount as given.
// Use Round to bring it to MoneyScale.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if !currencyPattern.MatchString(currency) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"currency",
			fmt.Errorf("%q is not an ISO 4217 code", currency),
		)
	}
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), 0, "unbounded")
	}
	return Money{amount: amount, currency: currency, guard: guard.NewConstructorGuard()}, nil
}

// NewMoneyFromString parses a decimal literal such as "150.00".
func NewMoneyFromString(amount, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d, currency)
}

// ZeroMoney returns 0 in the given currency.
func ZeroMoney(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Add sums two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency, guard: m.guard}, nil
}

// Mul scales the amount. Negative factors are clamped to zero since prices
// are never negative.
func (m Money) Mul(factor decimal.Decimal) Money {
	if factor.IsNegative() {
		factor = decimal.Zero
	}
	return Money{amount: m.amount.Mul(factor), currency: m.currency, guard: m.guard}
}

// Round rounds half-up (away from zero) to MoneyScale decimals.
func (m Money) Round() Money {
	return Money{amount: m.amount.Round(MoneyScale), currency: m.currency, guard: m.guard}
}

// Compare returns -1, 0 or +1.
func (m Money) Compare(other Money) (int, error) {
	if m.currency != other.currency {
		return 0, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return m.amount.Cmp(other.amount), nil
}

func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String renders "958.53 CHF".
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale) + " " + m.currency
}
