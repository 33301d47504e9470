package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits every Money amount carries.
// All amounts are rounded half-up to this scale on construction and after
// every arithmetic operation, so cent precision is never silently lost.
const moneyScale = 2

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created via NewMoney, MoneyFromString or
// ZeroMoney to ensure the amount is validated and scaled.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, MoneyFromString or ZeroMoney constructors")

// Money is an immutable fixed-point monetary amount with two fractional digits.
// It wraps github.com/shopspring/decimal to avoid floating-point drift in
// pricing arithmetic. Amounts are always non-negative; signed arithmetic has
// no meaning in this domain.
//
// The zero value of Money is invalid and must be constructed through one of
// the provided factory functions.
//
// Example:
//
//	price, err := kernel.MoneyFromString("9.90")
//	if err != nil {
//	    // handle validation error
//	}
//	subtotal := price.MulInt(3)
//	fmt.Println(subtotal) // Output: 29.70
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money amount from a decimal value.
// The amount must be non-negative; it is rounded half-up to two fractional
// digits if it carries more precision.
//
// Example:
//
//	m, err := kernel.NewMoney(decimal.NewFromFloat(12.345))
//	// m.String() == "12.35"
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount", fmt.Errorf("%s is negative", amount))
	}

	return Money{
		amount: amount.Round(moneyScale),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a Money amount from its decimal string representation,
// e.g. "12.50". Returns an error for malformed or negative amounts.
// This is the typical entry point when reconstructing amounts from persistence
// or external input.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a valid zero amount. Used as the initial total of an
// empty order and as the identity element for Add.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// Sub returns the difference of two amounts. The result may not be negative;
// an error is returned if other exceeds m.
func (m Money) Sub(other Money) (Money, error) {
	return NewMoney(m.amount.Sub(other.amount))
}

// MulInt multiplies the amount by an integer quantity, rounding half-up to
// two fractional digits. By construction a two-digit amount times an integer
// never needs rounding, the Round call guards the invariant regardless.
func (m Money) MulInt(quantity int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))).Round(moneyScale),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares two amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal amount.
// Used by persistence adapters when mapping to numeric columns.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted with exactly two fractional digits,
// e.g. "12.50". Implements fmt.Stringer.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

// Validate checks that the Money was created through a constructor.
// Returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
