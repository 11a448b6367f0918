package kernel

import (
	"fmt"
	"math"

	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created via NewMoney or MoneyFromDollars.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or MoneyFromDollars constructors")

// Money represents a non-negative USD amount with exact cent precision.
// Amounts are stored as integer cents so that arithmetic never accumulates
// floating point error. Money is an immutable value object; the zero value is
// invalid and will fail validation - use constructors to create instances.
//
// Example:
//
//	price, err := kernel.NewMoney(985)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(price) // Output: $9.85
type Money struct { //nolint:recvcheck //using for validation
	cents int64
	guard guard.ConstructorGuard
}

// NewMoney creates a Money from an integer number of cents.
// Negative amounts are rejected.
func NewMoney(cents int64) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setCents(cents); err != nil {
		return Money{}, err
	}

	return m, nil
}

// MoneyFromDollars creates a Money from a floating point dollar amount,
// rounding half away from zero to the nearest cent.
//
// Example:
//
//	m, _ := kernel.MoneyFromDollars(9.855) // $9.86
func MoneyFromDollars(dollars float64) (Money, error) {
	if math.IsNaN(dollars) || math.IsInf(dollars, 0) {
		return Money{}, errs.NewValueIsInvalidError("dollars")
	}
	return NewMoney(int64(math.Round(dollars * 100)))
}

// Validate checks if the Money was properly constructed using a constructor.
// The zero value is invalid and fails this validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Cents returns the amount as integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Dollars returns the amount as a float64 dollar value. Use only for display
// and interchange; arithmetic should stay in cents.
func (m Money) Dollars() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts. Both amounts must be properly
// constructed for the operation to succeed.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoney(m.cents + other.cents)
}

// MultiplyScalar returns the amount scaled by factor, rounded half away from
// zero to the nearest cent. Negative factors are rejected.
//
// Example:
//
//	m, _ := kernel.NewMoney(1000)
//	discounted, _ := m.MultiplyScalar(0.85) // $8.50
func (m Money) MultiplyScalar(factor float64) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if factor < 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return Money{}, errs.NewValueIsInvalidError("factor")
	}

	return NewMoney(int64(math.Round(float64(m.cents) * factor)))
}

// IsEqual compares two amounts for equality. Both amounts must be properly
// constructed for the comparison to succeed.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := m.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return m.cents == other.cents, nil
}

// String returns the amount formatted as dollars with two decimals.
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return fmt.Sprintf("$%d.%02d", m.cents/100, m.cents%100)
}

// setCents sets the amount with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (m *Money) setCents(cents int64) error {
	if cents < 0 {
		return errs.NewValueIsOutOfRangeError("cents", cents, 0, math.MaxInt64)
	}

	m.cents = cents
	return nil
}
