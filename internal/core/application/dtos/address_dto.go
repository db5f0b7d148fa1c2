package dtos

import (
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// countryCodeLength is the number of letters in an ISO 3166-1 alpha-2
// country code.
const countryCodeLength = 2

// AddressDTO is the boundary representation of the Address value object.
type AddressDTO struct {
	RecipientName string `json:"recipient_name"`
	Street1       string `json:"street1"`
	Street2       string `json:"street2"`
	City          string `json:"city"`
	StateProvince string `json:"state_province"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
}

// Validate checks and normalizes the address in place. All fields are
// trimmed; recipient name, street1, city, and postal code must be non-empty,
// and the country must be a two-letter code, normalized to upper case.
func (d *AddressDTO) Validate() error {
	violations := errs.NewValidationError()

	d.RecipientName = strings.TrimSpace(d.RecipientName)
	d.Street1 = strings.TrimSpace(d.Street1)
	d.Street2 = strings.TrimSpace(d.Street2)
	d.City = strings.TrimSpace(d.City)
	d.StateProvince = strings.TrimSpace(d.StateProvince)
	d.PostalCode = strings.TrimSpace(d.PostalCode)
	d.Country = strings.ToUpper(strings.TrimSpace(d.Country))

	requireNonEmpty(violations, "recipient_name", d.RecipientName)
	requireNonEmpty(violations, "street1", d.Street1)
	requireNonEmpty(violations, "city", d.City)
	requireNonEmpty(violations, "postal_code", d.PostalCode)

	if len(d.Country) != countryCodeLength || !isAlpha(d.Country) {
		violations.Add("country", "must be a two-letter country code")
	}

	return violations.ErrOrNil()
}

// ToDomain validates the DTO and produces the domain Address value.
func (d *AddressDTO) ToDomain() (kernel.Address, error) {
	if err := d.Validate(); err != nil {
		return kernel.Address{}, err
	}
	return kernel.NewAddress(
		d.RecipientName, d.Street1, d.Street2, d.City, d.StateProvince, d.PostalCode, d.Country)
}

// AddressFromDomain projects a domain Address into its boundary
// representation.
func AddressFromDomain(address kernel.Address) AddressDTO {
	return AddressDTO{
		RecipientName: address.RecipientName(),
		Street1:       address.Street1(),
		Street2:       address.Street2(),
		City:          address.City(),
		StateProvince: address.StateProvince(),
		PostalCode:    address.PostalCode(),
		Country:       address.Country(),
	}
}

// requireNonEmpty records a violation when the already-trimmed value is
// empty.
func requireNonEmpty(violations *errs.ValidationError, field, value string) {
	if value == "" {
		violations.Add(field, "must not be empty")
	}
}
