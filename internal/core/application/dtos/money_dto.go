package dtos

import (
	"bytes"
	"encoding/json"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// MoneyDTO is the boundary representation of the Money value object.
type MoneyDTO struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Validate checks and normalizes the monetary value in place: the amount
// must not be negative, and the currency is trimmed, upper-cased, defaulted
// to the default currency when blank, and must be exactly three letters.
func (d *MoneyDTO) Validate() error {
	violations := errs.NewValidationError()

	if d.Amount < 0 {
		violations.Add("amount", "must not be negative")
	}

	d.Currency = strings.ToUpper(strings.TrimSpace(d.Currency))
	if d.Currency == "" {
		d.Currency = kernel.DefaultCurrency
	}
	if len(d.Currency) != 3 || !isAlpha(d.Currency) {
		violations.Add("currency", "must be a three-letter currency code")
	}

	return violations.ErrOrNil()
}

// ToDomain validates the DTO and produces the domain Money value.
func (d *MoneyDTO) ToDomain() (kernel.Money, error) {
	if err := d.Validate(); err != nil {
		return kernel.Money{}, err
	}
	return kernel.NewMoneyFromFloat(d.Amount, d.Currency)
}

// MoneyFromDomain projects a domain Money value into its boundary
// representation.
func MoneyFromDomain(money kernel.Money) MoneyDTO {
	return MoneyDTO{
		Amount:   money.Amount().InexactFloat64(),
		Currency: money.Currency(),
	}
}

// moneySpecKind discriminates the accepted shapes of an optional monetary
// field.
type moneySpecKind int

const (
	moneySpecAbsent moneySpecKind = iota
	moneySpecNumber
	moneySpecMoney
)

// MoneySpec is the explicit variant accepted at the boundary for optional
// monetary fields such as unit_price and shipping_cost: absent, a bare
// numeric shorthand, or a well-formed money object. Resolve collapses the
// variant to a canonical MoneyDTO in one explicit normalization step; absent
// input resolves to a zero amount in the default currency.
type MoneySpec struct {
	kind   moneySpecKind
	number float64
	money  MoneyDTO
}

// AbsentMoney creates the absent variant.
func AbsentMoney() MoneySpec {
	return MoneySpec{kind: moneySpecAbsent}
}

// MoneyFromNumber creates the numeric-shorthand variant: an amount in the
// default currency.
func MoneyFromNumber(amount float64) MoneySpec {
	return MoneySpec{kind: moneySpecNumber, number: amount}
}

// MoneyFromValue creates the well-formed money object variant.
func MoneyFromValue(money MoneyDTO) MoneySpec {
	return MoneySpec{kind: moneySpecMoney, money: money}
}

// IsAbsent reports whether the variant is absent.
func (s MoneySpec) IsAbsent() bool {
	return s.kind == moneySpecAbsent
}

// Resolve collapses the variant to a canonical MoneyDTO. The result still
// needs Validate, which applies the default currency to blank codes.
func (s MoneySpec) Resolve() MoneyDTO {
	switch s.kind {
	case moneySpecNumber:
		return MoneyDTO{Amount: s.number}
	case moneySpecMoney:
		return s.money
	default:
		return MoneyDTO{}
	}
}

// UnmarshalJSON decodes the variant from external input. JSON null maps to
// absent, a bare number to the numeric shorthand, and an object to the
// money shape. Any other value is not money-shaped and coerces to absent,
// which resolves to a zero amount.
func (s *MoneySpec) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = AbsentMoney()
		return nil
	}

	var number float64
	if err := json.Unmarshal(trimmed, &number); err == nil {
		*s = MoneyFromNumber(number)
		return nil
	}

	if trimmed[0] == '{' {
		var money MoneyDTO
		if err := json.Unmarshal(trimmed, &money); err == nil {
			*s = MoneyFromValue(money)
			return nil
		}
	}

	*s = AbsentMoney()
	return nil
}

// MarshalJSON encodes the variant back to its external shape.
func (s MoneySpec) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case moneySpecNumber:
		return json.Marshal(s.number)
	case moneySpecMoney:
		return json.Marshal(s.money)
	default:
		return []byte("null"), nil
	}
}

// isAlpha reports whether the string consists solely of ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
