package dtos

import (
	"net/mail"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/gommon/log"
	"github.com/nyaruka/phonenumbers"
)

// dateLayout is the wire format for dates crossing the boundary.
const dateLayout = "2006-01-02"

// defaultShippingLeadDays is the calendar-day offset applied when no
// estimated shipping date is supplied.
const defaultShippingLeadDays = 7

// ShippingInfoDTO is the boundary representation of the ShippingInfo
// entity. Dates cross the boundary as "YYYY-MM-DD" strings; the shipping
// cost accepts the MoneySpec variants.
type ShippingInfoDTO struct {
	Address               AddressDTO `json:"address"`
	Carrier               string     `json:"carrier"`
	ShippingMethod        string     `json:"shipping_method"`
	ShippingCost          MoneySpec  `json:"shipping_cost"`
	EstimatedShippingDate string     `json:"estimated_shipping_date"`
	EmailAddress          string     `json:"email_address"`
	PhoneNumber           string     `json:"phone_number"`
}

// Validate checks and normalizes the shipping details in place.
//
// Single-field pass: the nested address is validated (violations
// re-parented under "address"), the carrier must be non-empty, a blank
// shipping method defaults to "Standard", the shipping cost variant is
// resolved and validated, the email address must be syntactically valid
// when present, and a provided shipping date must parse.
//
// Cross-field pass (only when the single-field pass is clean): the phone
// number is parsed against the address country - a parse failure clears the
// field silently, a parseable but invalid number is a violation, and a
// valid one is normalized to E.164; a provided shipping date must lie
// strictly in the future, and an absent one defaults to seven calendar days
// from today.
func (d *ShippingInfoDTO) Validate() error {
	violations := errs.NewValidationError()

	violations.AddNested("address", d.Address.Validate())

	d.Carrier = strings.TrimSpace(d.Carrier)
	requireNonEmpty(violations, "carrier", d.Carrier)

	d.ShippingMethod = strings.TrimSpace(d.ShippingMethod)
	if d.ShippingMethod == "" {
		d.ShippingMethod = order.DefaultShippingMethod
	}

	shippingCost := d.ShippingCost.Resolve()
	if err := shippingCost.Validate(); err != nil {
		violations.AddNested("shipping_cost", err)
	}
	d.ShippingCost = MoneyFromValue(shippingCost)

	d.EmailAddress = strings.TrimSpace(d.EmailAddress)
	if d.EmailAddress != "" && !isValidEmail(d.EmailAddress) {
		violations.Add("email_address", "must be a valid email address")
	}

	d.EstimatedShippingDate = strings.TrimSpace(d.EstimatedShippingDate)
	var shippingDate *time.Time
	if d.EstimatedShippingDate != "" {
		parsed, err := time.Parse(dateLayout, d.EstimatedShippingDate)
		if err != nil {
			violations.Add("estimated_shipping_date", "must be a date in YYYY-MM-DD format")
		} else {
			shippingDate = &parsed
		}
	}

	d.PhoneNumber = strings.TrimSpace(d.PhoneNumber)

	if violations.HasViolations() {
		return violations
	}

	d.validatePhone(violations)
	d.validateShippingDate(violations, shippingDate)

	return violations.ErrOrNil()
}

// validatePhone parses the phone number against the address country region.
// Parse failures are recoverable: the field is cleared silently and a
// warning logged, so callers must treat an absent phone number as unusable
// input rather than failure. A number that parses but is not valid for the
// region is a violation. Valid numbers are normalized to E.164.
func (d *ShippingInfoDTO) validatePhone(violations *errs.ValidationError) {
	if d.PhoneNumber == "" {
		return
	}

	parsed, err := phonenumbers.Parse(d.PhoneNumber, d.Address.Country)
	if err != nil {
		log.Warnf("could not parse phone number %q: %v", d.PhoneNumber, err)
		d.PhoneNumber = ""
		return
	}

	if !phonenumbers.IsValidNumber(parsed) {
		violations.Add("phone_number", "is not a valid phone number")
		return
	}

	d.PhoneNumber = phonenumbers.Format(parsed, phonenumbers.E164)
}

// validateShippingDate enforces the future rule for a provided date and
// applies the default lead time when the date is absent.
func (d *ShippingInfoDTO) validateShippingDate(violations *errs.ValidationError, shippingDate *time.Time) {
	today := utcToday()
	if shippingDate != nil {
		if !shippingDate.After(today) {
			violations.Add("estimated_shipping_date", "must be in the future")
		}
		return
	}

	d.EstimatedShippingDate = today.AddDate(0, 0, defaultShippingLeadDays).Format(dateLayout)
}

// ToDomain validates the DTO and produces the domain ShippingInfo entity.
func (d *ShippingInfoDTO) ToDomain() (*order.ShippingInfo, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	address, err := d.Address.ToDomain()
	if err != nil {
		return nil, err
	}

	shippingCost := d.ShippingCost.Resolve()
	cost, err := shippingCost.ToDomain()
	if err != nil {
		return nil, err
	}

	var shippingDate *time.Time
	if d.EstimatedShippingDate != "" {
		parsed, parseErr := time.Parse(dateLayout, d.EstimatedShippingDate)
		if parseErr != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("estimated_shipping_date", parseErr)
		}
		shippingDate = &parsed
	}

	return order.NewShippingInfo(
		address, d.Carrier, d.ShippingMethod, cost, shippingDate, d.EmailAddress, d.PhoneNumber)
}

// ShippingInfoFromDomain projects a domain ShippingInfo into its boundary
// representation.
func ShippingInfoFromDomain(info *order.ShippingInfo) ShippingInfoDTO {
	dto := ShippingInfoDTO{
		Address:        AddressFromDomain(info.Address()),
		Carrier:        info.Carrier(),
		ShippingMethod: info.ShippingMethod(),
		ShippingCost:   MoneyFromValue(MoneyFromDomain(info.ShippingCost())),
		EmailAddress:   info.EmailAddress(),
		PhoneNumber:    info.PhoneNumber(),
	}
	if date := info.EstimatedShippingDate(); date != nil {
		dto.EstimatedShippingDate = date.Format(dateLayout)
	}
	return dto
}

// isValidEmail reports whether the value is a bare, syntactically valid
// email address.
func isValidEmail(value string) bool {
	parsed, err := mail.ParseAddress(value)
	return err == nil && parsed.Address == value
}

// utcToday returns the current UTC date at midnight.
func utcToday() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
