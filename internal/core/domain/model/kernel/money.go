package kernel

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency assumed when external input carries an
// amount without a currency code.
const DefaultCurrency = "EUR"

// currencyCodeLength is the number of letters in an ISO 4217 currency code.
const currencyCodeLength = 3

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created via NewMoney, NewMoneyFromFloat,
// or ZeroMoney to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney, NewMoneyFromFloat, or ZeroMoney constructors")

// ErrCurrencyMismatch is the sentinel for arithmetic across different
// currencies. Use errors.Is to classify; the concrete CurrencyMismatchError
// carries both currency codes.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// CurrencyMismatchError is returned when adding Money values of different
// currencies.
type CurrencyMismatchError struct {
	Left  string
	Right string
}

// NewCurrencyMismatchError creates a CurrencyMismatchError for the two
// incompatible currency codes.
func NewCurrencyMismatchError(left, right string) *CurrencyMismatchError {
	return &CurrencyMismatchError{Left: left, Right: right}
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("currency mismatch: cannot add %s and %s", e.Left, e.Right)
}

func (e *CurrencyMismatchError) Unwrap() error {
	return ErrCurrencyMismatch
}

// Money represents a monetary value with a currency. It is an immutable
// value object: arithmetic returns fresh instances and never mutates the
// operands. The zero value of Money is invalid and will fail validation -
// use the constructors to create instances.
//
// Invariants:
//   - amount is never negative
//   - currency is exactly three ASCII letters, stored upper-case
//
// Example:
//
//	price, err := kernel.NewMoneyFromFloat(19.99, "eur")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(price) // Output: 19.99 EUR
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money value with the given amount and currency.
// The amount must not be negative and the currency must be exactly three
// letters; the currency is normalized to upper case.
//
// Returns:
//   - Money: a valid monetary value
//   - error: validation error if the amount or currency is invalid
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	money := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(money.setAmount(amount), money.setCurrency(currency)); err != nil {
		return Money{}, err
	}

	return money, nil
}

// NewMoneyFromFloat creates a Money value from a floating-point amount.
// This is the entry point for amounts arriving from loosely-typed external
// input; the amount is converted to an exact decimal representation.
func NewMoneyFromFloat(amount float64, currency string) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// ZeroMoney creates a Money value with a zero amount in the given currency.
func ZeroMoney(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Validate checks if the Money was properly constructed using a constructor.
// The zero value of Money is invalid and will fail this validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the monetary amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the upper-case three-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String returns a human-readable representation in the form "19.99 EUR".
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.String(), m.currency)
}

// IsEqual compares two monetary values for equality. Two Money values are
// equal if they have the same currency and numerically equal amounts.
// Both values must be properly constructed for the comparison to succeed.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.currency == other.currency && m.amount.Equal(other.amount), nil
}

// Add returns a new Money holding the sum of both amounts. Adding values of
// different currencies fails with a CurrencyMismatchError; the operands are
// never mutated.
//
// Example:
//
//	total, err := lineTotal.Add(shippingCost)
//	if errors.Is(err, kernel.ErrCurrencyMismatch) {
//	    // lines and shipping cost use different currencies
//	}
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}

	if m.currency != other.currency {
		return Money{}, NewCurrencyMismatchError(m.currency, other.currency)
	}

	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Multiply returns a new Money holding the amount scaled by the given
// factor. Scaling is commutative in the factor and amount; a factor that
// would produce a negative amount fails with the negative-amount
// construction error.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount.Mul(factor), m.currency)
}

// MultiplyInt returns a new Money holding the amount scaled by an integer
// factor, such as an order-line quantity.
func (m Money) MultiplyInt(factor int) (Money, error) {
	return m.Multiply(decimal.NewFromInt(int64(factor)))
}

// setAmount validates and sets the monetary amount.
// The amount must not be negative.
func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s must not be negative", amount.String()))
	}
	m.amount = amount
	return nil
}

// setCurrency validates, normalizes, and sets the currency code.
// The code must consist of exactly three ASCII letters.
func (m *Money) setCurrency(currency string) error {
	normalized := strings.ToUpper(strings.TrimSpace(currency))
	if len(normalized) != currencyCodeLength || !isLetters(normalized) {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a three-letter currency code", currency))
	}
	m.currency = normalized
	return nil
}

// isLetters reports whether the string consists solely of ASCII letters.
func isLetters(s string) bool {
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
