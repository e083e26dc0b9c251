package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money values must be created via NewMoney, NewMoneyFromDecimal, or MustMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or NewMoneyFromDecimal constructors")

// Money represents a non-negative monetary amount with two decimal places.
// It is an immutable value object backed by exact decimal arithmetic, which keeps
// order totals, tax calculations, and payment reconciliation free of float drift.
// The zero value of Money is invalid; use the constructors.
//
// Example:
//
//	price, err := kernel.NewMoney("10.00")
//	if err != nil {
//	    // Handle validation error
//	}
//	total := price.MulInt(3) // 30.00
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from its decimal string representation.
// The amount must parse as a decimal number and must not be negative.
//
// Returns:
//   - Money: a valid monetary amount rounded to two decimal places
//   - error: validation error if the string is malformed or negative
func NewMoney(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoneyFromDecimal(d)
}

// NewMoneyFromDecimal creates a Money value from a decimal.Decimal.
// The amount must not be negative; it is rounded to two decimal places.
func NewMoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{
		amount: amount.Round(2),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ZeroMoney returns a valid Money representing 0.00.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// MustMoney creates a Money value and panics on validation failure.
// Intended for constants and tests where the literal is known to be valid.
func MustMoney(amount string) Money {
	m, err := NewMoney(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// Validate checks that the Money value was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted with two decimal places, e.g. "36.90".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Add returns the sum of two monetary amounts.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount).Round(2),
		guard:  guard.NewConstructorGuard(),
	}
}

// Sub returns the difference of two monetary amounts.
// The result may not be used if it would be negative; callers that need a
// floor at zero should use SubFloorZero.
func (m Money) Sub(other Money) (Money, error) {
	return NewMoneyFromDecimal(m.amount.Sub(other.amount))
}

// SubFloorZero returns m - other, floored at 0.00.
// Used for balance-due style calculations where overpayment yields a zero balance.
func (m Money) SubFloorZero(other Money) Money {
	d := m.amount.Sub(other.amount)
	if d.IsNegative() {
		return ZeroMoney()
	}
	return Money{amount: d.Round(2), guard: guard.NewConstructorGuard()}
}

// MulInt returns the amount multiplied by a whole quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))).Round(2),
		guard:  guard.NewConstructorGuard(),
	}
}

// ApplyRate returns the given percentage of the amount, rounded to two
// decimal places. A rate of 18 yields 18% of the amount.
func (m Money) ApplyRate(ratePercent decimal.Decimal) Money {
	return Money{
		amount: m.amount.Mul(ratePercent).Div(decimal.NewFromInt(100)).Round(2),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsZero reports whether the amount equals 0.00.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is strictly greater than 0.00.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares two monetary amounts for exact equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsGreaterOrEqual reports whether m >= other.
func (m Money) IsGreaterOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// IsLess reports whether m < other.
func (m Money) IsLess(other Money) bool {
	return m.amount.LessThan(other.amount)
}
