package kernel

import (
	"fmt"
	"math"

	"feedo/internal/pkg/errs"
)

// Money is a value object representing a monetary amount in minor currency
// units (cents). Carrying cents instead of floating point keeps cart totals
// and order item subtotals exact; a price change in the catalog can never
// drift a stored historical amount.
//
// The zero value is a valid zero amount, so totals can start from
// kernel.Money{} and be accumulated with Add.
//
// Example:
//
//	price, _ := kernel.MoneyFromFloat(8.00)
//	total := price.MultiplyQuantity(2) // 16.00
type Money struct {
	cents int64
}

// MaxCents is the largest amount a single Money value accepts at
// construction. Together with the item quantity bound it keeps every line
// subtotal far below the int64 ceiling, so arithmetic on validated amounts
// cannot wrap.
const MaxCents = int64(1_000_000_000_000)

// NewMoneyFromCents creates a Money from a non-negative amount of minor
// units, at most MaxCents.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%d cents is negative", cents),
		)
	}
	if cents > MaxCents {
		return Money{}, errs.NewValueIsOutOfRangeError("money", cents, 0, MaxCents)
	}
	return Money{cents: cents}, nil
}

// MoneyFromFloat creates a Money from a decimal amount, rounding to the
// nearest cent. Used at the boundary where prices arrive as decimals.
func MoneyFromFloat(amount float64) (Money, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%v is not a valid amount", amount),
		)
	}
	if amount > float64(MaxCents)/100 {
		return Money{}, errs.NewValueIsOutOfRangeError("money", amount, 0, float64(MaxCents)/100)
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the decimal representation of the amount.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MultiplyQuantity returns the amount multiplied by a line quantity.
// Negative quantities clamp to zero. Amounts stay within MaxCents and
// quantities within the order item bound, so the product fits in int64.
func (m Money) MultiplyQuantity(quantity int) Money {
	if quantity <= 0 {
		return Money{}
	}
	return Money{cents: m.cents * int64(quantity)}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places, e.g. "18.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
