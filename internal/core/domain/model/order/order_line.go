package order

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrOrderLineIsNotConstructed is returned when an OrderLine instance was
// not created through the NewOrderLine constructor.
var ErrOrderLineIsNotConstructed = errors.New("OrderLine must be created via NewOrderLine constructor")

// OrderLine represents a line item within an Order aggregate.
//
// OrderLine follows these invariants:
//   - line id and product id are non-empty
//   - quantity is greater than zero
//   - unit price is a valid Money value
//   - design ids form an ordered set: entries are non-empty and duplicates
//     are ignored
//
// Identity equality is by line id; the line total is derived from the unit
// price and quantity and never stored.
type OrderLine struct {
	// lineID uniquely identifies the line within the order
	lineID string
	// productID references the purchased product
	productID string
	// quantity is the number of units ordered
	quantity int
	// unitPrice is the price of a single unit
	unitPrice kernel.Money
	// designIDs are the print designs applied to the product, in insertion order
	designIDs []string
	// guard ensures the line was properly constructed
	guard guard.ConstructorGuard
}

// NewOrderLine creates a new OrderLine with validation. This is the only way
// to create a valid OrderLine.
//
// Parameters:
//   - lineID: unique line identifier (non-empty after trimming; the boundary
//     layer generates one when external input omits it)
//   - productID: product reference (non-empty after trimming)
//   - quantity: units ordered (must be greater than zero)
//   - unitPrice: price per unit (must be a constructed Money value)
//   - designIDs: initial design ids; blank entries fail, duplicates are ignored
//
// Returns:
//   - *OrderLine: the created line if all validations pass
//   - error: joined validation errors otherwise
func NewOrderLine(
	lineID string,
	productID string,
	quantity int,
	unitPrice kernel.Money,
	designIDs []string,
) (*OrderLine, error) {
	line := &OrderLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setLineID(lineID),
		line.setProductID(productID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
		line.setDesignIDs(designIDs),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// Validate ensures the OrderLine was properly constructed through
// NewOrderLine.
func (l *OrderLine) Validate() error {
	if l == nil {
		return ErrOrderLineIsNotConstructed
	}
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// IsEqual compares two order lines by their line ids.
func (l *OrderLine) IsEqual(other *OrderLine) bool {
	return other != nil && l.lineID == other.lineID
}

// LineID returns the line's unique identifier.
func (l *OrderLine) LineID() string {
	return l.lineID
}

// ProductID returns the product reference.
func (l *OrderLine) ProductID() string {
	return l.productID
}

// Quantity returns the number of units ordered.
func (l *OrderLine) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price of a single unit.
func (l *OrderLine) UnitPrice() kernel.Money {
	return l.unitPrice
}

// DesignIDs returns a copy of the design ids in insertion order. Mutating
// the returned slice does not affect the line.
func (l *OrderLine) DesignIDs() []string {
	ids := make([]string, len(l.designIDs))
	copy(ids, l.designIDs)
	return ids
}

// LineTotal calculates the total price for this line: unit price times
// quantity. A fresh Money value is returned on every call.
func (l *OrderLine) LineTotal() (kernel.Money, error) {
	if err := l.Validate(); err != nil {
		return kernel.Money{}, err
	}

	return l.unitPrice.MultiplyInt(l.quantity)
}

// AddDesignID appends a design id to the line. The id is trimmed of
// surrounding whitespace; blank ids are rejected and duplicates are ignored,
// so the operation is idempotent.
func (l *OrderLine) AddDesignID(designID string) error {
	if err := l.Validate(); err != nil {
		return err
	}

	trimmed := strings.TrimSpace(designID)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("design id")
	}

	for _, existing := range l.designIDs {
		if existing == trimmed {
			return nil
		}
	}

	l.designIDs = append(l.designIDs, trimmed)
	return nil
}

// setLineID validates and sets the line identifier.
func (l *OrderLine) setLineID(lineID string) error {
	trimmed := strings.TrimSpace(lineID)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("line id")
	}
	l.lineID = trimmed
	return nil
}

// setProductID validates and sets the product reference.
func (l *OrderLine) setProductID(productID string) error {
	trimmed := strings.TrimSpace(productID)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("product id")
	}
	l.productID = trimmed
	return nil
}

// setQuantity validates and sets the quantity.
// Quantity must be greater than zero.
func (l *OrderLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

// setUnitPrice validates and sets the unit price.
func (l *OrderLine) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	l.unitPrice = unitPrice
	return nil
}

// setDesignIDs seeds the design id set, applying the same trimming,
// blank-rejection, and de-duplication rules as AddDesignID.
func (l *OrderLine) setDesignIDs(designIDs []string) error {
	for _, id := range designIDs {
		trimmed := strings.TrimSpace(id)
		if trimmed == "" {
			return errs.NewValueIsRequiredError("design id")
		}
		duplicate := false
		for _, existing := range l.designIDs {
			if existing == trimmed {
				duplicate = true
				break
			}
		}
		if !duplicate {
			l.designIDs = append(l.designIDs, trimmed)
		}
	}
	return nil
}
