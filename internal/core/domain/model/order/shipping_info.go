package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// DefaultShippingMethod is the shipping method assumed when none is given.
const DefaultShippingMethod = "Standard"

// ErrShippingInfoIsNotConstructed is returned when a ShippingInfo instance
// was not created through the NewShippingInfo constructor.
var ErrShippingInfoIsNotConstructed = errors.New("ShippingInfo must be created via NewShippingInfo constructor")

// ShippingInfo represents the shipping details of an Order: destination
// address, carrier, method, cost, and optional contact data.
//
// ShippingInfo follows these invariants:
//   - the address is a valid Address value
//   - the carrier is non-empty
//   - the shipping method is non-empty (defaults to "Standard")
//   - the shipping cost is a valid Money value (defaults to zero in the
//     default currency)
//
// Email address and phone number are optional; an empty string means absent.
// Format rules for both (syntactic email validity, E.164 phone
// normalization) are enforced at the boundary layer.
type ShippingInfo struct {
	// address is the delivery destination
	address kernel.Address
	// carrier is the shipping carrier handling the delivery
	carrier string
	// shippingMethod is the carrier service level
	shippingMethod string
	// shippingCost is what the customer pays for shipping
	shippingCost kernel.Money
	// estimatedShippingDate is the expected ship date (nil if not yet set)
	estimatedShippingDate *time.Time
	// emailAddress is the optional contact email
	emailAddress string
	// phoneNumber is the optional contact phone in E.164 form
	phoneNumber string
	// guard ensures the shipping info was properly constructed
	guard guard.ConstructorGuard
}

// NewShippingInfo creates a new ShippingInfo with validation.
//
// Parameters:
//   - address: delivery destination (must be a constructed Address)
//   - carrier: shipping carrier (non-empty after trimming)
//   - shippingMethod: service level; blank defaults to "Standard"
//   - shippingCost: shipping price; an unconstructed zero value defaults to
//     zero in the default currency
//   - estimatedShippingDate: expected ship date, nil when not yet known
//   - emailAddress, phoneNumber: optional contact data, empty when absent
//
// Returns:
//   - *ShippingInfo: the created entity if all validations pass
//   - error: joined validation errors otherwise
func NewShippingInfo(
	address kernel.Address,
	carrier string,
	shippingMethod string,
	shippingCost kernel.Money,
	estimatedShippingDate *time.Time,
	emailAddress string,
	phoneNumber string,
) (*ShippingInfo, error) {
	info := &ShippingInfo{
		emailAddress: strings.TrimSpace(emailAddress),
		phoneNumber:  strings.TrimSpace(phoneNumber),
		guard:        guard.NewConstructorGuard(),
	}

	if estimatedShippingDate != nil {
		day := truncateToDay(*estimatedShippingDate)
		info.estimatedShippingDate = &day
	}

	if err := errors.Join(
		info.setAddress(address),
		info.setCarrier(carrier),
		info.setShippingMethod(shippingMethod),
		info.setShippingCost(shippingCost),
	); err != nil {
		return nil, err
	}

	return info, nil
}

// Validate ensures the ShippingInfo was properly constructed through
// NewShippingInfo.
func (s *ShippingInfo) Validate() error {
	if s == nil {
		return ErrShippingInfoIsNotConstructed
	}
	return s.guard.Validate(ErrShippingInfoIsNotConstructed)
}

// Address returns the delivery destination.
func (s *ShippingInfo) Address() kernel.Address {
	return s.address
}

// Carrier returns the shipping carrier.
func (s *ShippingInfo) Carrier() string {
	return s.carrier
}

// ShippingMethod returns the carrier service level.
func (s *ShippingInfo) ShippingMethod() string {
	return s.shippingMethod
}

// ShippingCost returns the shipping price.
func (s *ShippingInfo) ShippingCost() kernel.Money {
	return s.shippingCost
}

// EstimatedShippingDate returns the expected ship date, or nil when not yet
// set. The returned pointer refers to a copy.
func (s *ShippingInfo) EstimatedShippingDate() *time.Time {
	if s.estimatedShippingDate == nil {
		return nil
	}
	date := *s.estimatedShippingDate
	return &date
}

// EmailAddress returns the optional contact email, empty when absent.
func (s *ShippingInfo) EmailAddress() string {
	return s.emailAddress
}

// PhoneNumber returns the optional contact phone, empty when absent.
func (s *ShippingInfo) PhoneNumber() string {
	return s.phoneNumber
}

// UpdateEstimatedShippingDate sets the estimated shipping date to the given
// number of working days from the current UTC date. Saturdays and Sundays do
// not count toward the budget but are crossed while advancing.
//
// Returns an error if days is negative or the entity was not constructed.
func (s *ShippingInfo) UpdateEstimatedShippingDate(days int) error {
	if err := s.Validate(); err != nil {
		return err
	}

	if days < 0 {
		return errs.NewValueIsInvalidErrorWithCause("days",
			fmt.Errorf("%d is not a positive number of days", days))
	}

	date := NextShippingDate(time.Now().UTC(), days)
	s.estimatedShippingDate = &date
	return nil
}

// UpdateAddress replaces the delivery destination. The replacement must be a
// properly constructed Address; zero values are rejected.
func (s *ShippingInfo) UpdateAddress(newAddress kernel.Address) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := newAddress.Validate(); err != nil {
		return err
	}

	s.address = newAddress
	return nil
}

// NextShippingDate advances from the given moment one calendar day at a
// time, counting only Monday through Friday toward the workingDays budget,
// and returns the resulting date truncated to midnight UTC. It is a pure
// function of its inputs.
//
// Example: three working days from a Friday lands on the following
// Wednesday, five calendar days later.
func NextShippingDate(from time.Time, workingDays int) time.Time {
	date := truncateToDay(from)
	for workingDays > 0 {
		date = date.AddDate(0, 0, 1)
		if weekday := date.Weekday(); weekday != time.Saturday && weekday != time.Sunday {
			workingDays--
		}
	}
	return date
}

// truncateToDay drops the time-of-day component, keeping the UTC date.
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// setAddress validates and sets the delivery destination.
func (s *ShippingInfo) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	s.address = address
	return nil
}

// setCarrier validates and sets the carrier.
func (s *ShippingInfo) setCarrier(carrier string) error {
	trimmed := strings.TrimSpace(carrier)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("carrier")
	}
	s.carrier = trimmed
	return nil
}

// setShippingMethod sets the service level, defaulting blank input to
// DefaultShippingMethod.
func (s *ShippingInfo) setShippingMethod(shippingMethod string) error {
	trimmed := strings.TrimSpace(shippingMethod)
	if trimmed == "" {
		trimmed = DefaultShippingMethod
	}
	s.shippingMethod = trimmed
	return nil
}

// setShippingCost sets the shipping price, defaulting an unconstructed zero
// value to zero in the default currency.
func (s *ShippingInfo) setShippingCost(shippingCost kernel.Money) error {
	if shippingCost.Validate() != nil {
		zero, err := kernel.ZeroMoney(kernel.DefaultCurrency)
		if err != nil {
			return err
		}
		s.shippingCost = zero
		return nil
	}
	s.shippingCost = shippingCost
	return nil
}
