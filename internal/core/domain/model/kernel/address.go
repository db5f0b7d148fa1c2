package kernel

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an
// improperly initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents a shipping address. It is an immutable value object
// with structural equality. Recipient name, first street line, city, postal
// code, and country are required; the second street line and state/province
// are optional and default to empty.
//
// Country format rules (two-letter ISO code, upper case) are enforced at the
// boundary layer; the domain only requires the field to be present.
//
// Example:
//
//	addr, err := kernel.NewAddress("Jan de Vries", "Keizersgracht 1", "",
//	    "Amsterdam", "", "1015 CS", "NL")
//	if err != nil {
//	    // handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	recipientName string
	street1       string
	street2       string
	city          string
	stateProvince string
	postalCode    string
	country       string
	guard         guard.ConstructorGuard
}

// NewAddress creates a new Address. All fields are trimmed of surrounding
// whitespace; recipientName, street1, city, postalCode, and country must be
// non-empty after trimming. Validation failures for multiple fields are
// joined into a single error.
func NewAddress(recipientName, street1, street2, city, stateProvince, postalCode, country string) (Address, error) {
	address := Address{
		street2:       strings.TrimSpace(street2),
		stateProvince: strings.TrimSpace(stateProvince),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setRequired(&address.recipientName, "recipient name", recipientName),
		address.setRequired(&address.street1, "street1", street1),
		address.setRequired(&address.city, "city", city),
		address.setRequired(&address.postalCode, "postal code", postalCode),
		address.setRequired(&address.country, "country", country),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate checks if the Address was properly constructed using NewAddress.
// The zero value of Address is invalid and will fail this validation.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// RecipientName returns the name of the recipient.
func (a Address) RecipientName() string {
	return a.recipientName
}

// Street1 returns the first street line.
func (a Address) Street1() string {
	return a.street1
}

// Street2 returns the optional second street line.
func (a Address) Street2() string {
	return a.street2
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// StateProvince returns the optional state or province.
func (a Address) StateProvince() string {
	return a.stateProvince
}

// PostalCode returns the postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Country returns the country code.
func (a Address) Country() string {
	return a.country
}

// String returns a single-line representation of the address.
// This method implements the fmt.Stringer interface.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s %s, %s", a.recipientName, a.street1, a.postalCode, a.city, a.country)
}

// IsEqual compares two addresses structurally. Both addresses must be
// properly constructed for the comparison to succeed.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return a == other, nil
}

// setRequired trims the value and assigns it to the target field, failing
// when the trimmed value is empty.
func (a *Address) setRequired(target *string, paramName, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*target = trimmed
	return nil
}
