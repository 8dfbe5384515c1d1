package kernel

import (
	"errors"
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money value. Money must be created via NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney constructor")

// Money represents a non-negative monetary amount in dollars.
// It is an immutable value object that keeps full floating-point precision
// internally so intermediate billing arithmetic does not compound rounding
// error. Rounding to cents happens only at the display boundary via Rounded
// and String.
//
// Example:
//
//	base, _ := kernel.NewMoney(60 * 1.10)
//	fee, _ := kernel.NewMoney(24)
//	total, _ := base.Add(fee)
//	fmt.Println(total) // Output: $90.00
type Money struct { //nolint:recvcheck //using for validation
	amount float64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from a dollar amount.
// The amount must be finite and not negative.
func NewMoney(amount float64) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}

	return m, nil
}

// Validate checks if the Money value was properly constructed using NewMoney.
// The zero value of Money is invalid and will fail this validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the full-precision dollar amount.
// Use Rounded when presenting the value to callers outside the domain.
func (m Money) Amount() float64 {
	return m.amount
}

// Rounded returns the amount rounded to two decimal places (cents).
func (m Money) Rounded() float64 {
	return math.Round(m.amount*100) / 100
}

// Add returns a new Money holding the sum of both amounts.
// Both operands must be properly constructed.
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount + other.amount)
}

// IsEqual compares two Money values at cent precision.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.Rounded() == other.Rounded(), nil
}

// String returns the amount formatted as dollars and cents, e.g. "$25.00".
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return fmt.Sprintf("$%.2f", m.Rounded())
}

func (m *Money) setAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is negative", amount))
	}

	m.amount = amount
	return nil
}
