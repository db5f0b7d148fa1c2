package order

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructors")

	// ErrOrderHasNoLines is returned when an order without order lines is
	// sent to processing.
	ErrOrderHasNoLines = errors.New("order cannot be processed without order lines")
)

// Order represents a customer order in the fulfillment pipeline. It is the
// aggregate root that manages the order lifecycle from intake through
// processing to completion or failure.
//
// Order follows these invariants:
//   - order id, customer id, external id, and source name are non-empty
//   - shipping info is an owned, properly constructed ShippingInfo
//   - status transitions follow the defined state machine
//   - order lines may only change while the order is New
//   - can only be created through NewOrder or RestoreOrder
//
// The Order exclusively owns its ShippingInfo and OrderLines: accessors
// return the owned entities for reading and derived computation, and all
// consistency-guarded mutations flow through the aggregate's methods.
type Order struct {
	// id is the unique identifier for the order
	id string
	// customerID identifies the ordering customer
	customerID string
	// externalID is the order's id in the originating system
	externalID string
	// sourceName names the originating sales channel
	sourceName string
	// shippingInfo holds the owned shipping details
	shippingInfo *ShippingInfo
	// orderLines are the owned line items, in insertion order
	orderLines []*OrderLine
	// status represents the current state in the order lifecycle
	status Status
	// erpID is the optional reference assigned by the ERP system
	erpID string
	// orderDate is the UTC date the order was placed
	orderDate time.Time
	// observer receives lifecycle events (nil means silent)
	observer Observer
	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in the New status.
//
// Parameters:
//   - id: unique order identifier (non-empty after trimming; the boundary
//     layer generates one when external input omits it)
//   - customerID, externalID, sourceName: required order provenance fields
//   - shippingInfo: owned shipping details (must be constructed)
//   - orderLines: initial line items; may be empty at intake but must be
//     non-empty by the time the order is processed
//   - orderDate: the UTC order date; the zero value defaults to today
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: joined validation errors otherwise
func NewOrder(
	id string,
	customerID string,
	externalID string,
	sourceName string,
	shippingInfo *ShippingInfo,
	orderLines []*OrderLine,
	orderDate time.Time,
) (*Order, error) {
	order := &Order{
		status: New,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setRequired(&order.customerID, "customer id", customerID),
		order.setRequired(&order.externalID, "external id", externalID),
		order.setRequired(&order.sourceName, "source name", sourceName),
		order.setShippingInfo(shippingInfo),
		order.setOrderLines(orderLines),
		order.setOrderDate(orderDate),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order with an explicit status and ERP id,
// for round-trips through the boundary layer or external storage. Unlike
// NewOrder, the status is caller-supplied and must be valid.
func RestoreOrder(
	id string,
	customerID string,
	externalID string,
	sourceName string,
	shippingInfo *ShippingInfo,
	orderLines []*OrderLine,
	status Status,
	erpID string,
	orderDate time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	order, err := NewOrder(id, customerID, externalID, sourceName, shippingInfo, orderLines, orderDate)
	if err != nil {
		return nil, err
	}

	order.status = status
	order.erpID = strings.TrimSpace(erpID)
	return order, nil
}

// Validate ensures the Order instance was properly constructed through one
// of its constructors.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() string {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() string {
	return o.customerID
}

// ExternalID returns the order's identifier in the originating system.
func (o *Order) ExternalID() string {
	return o.externalID
}

// SourceName returns the originating sales channel.
func (o *Order) SourceName() string {
	return o.sourceName
}

// ShippingInfo returns the owned shipping details.
func (o *Order) ShippingInfo() *ShippingInfo {
	return o.shippingInfo
}

// OrderLines returns a copy of the order's line list in insertion order.
// Mutating the returned slice does not affect the order.
func (o *Order) OrderLines() []*OrderLine {
	lines := make([]*OrderLine, len(o.orderLines))
	copy(lines, o.orderLines)
	return lines
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ErpID returns the ERP reference, empty when not yet assigned.
func (o *Order) ErpID() string {
	return o.erpID
}

// OrderDate returns the UTC date the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// TotalAmount calculates the total amount of the order: the sum of all line
// totals plus the shipping cost. The currency is taken from the shipping
// cost; a line priced in a different currency fails with the currency
// mismatch error.
func (o *Order) TotalAmount() (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}

	total, err := kernel.ZeroMoney(o.shippingInfo.ShippingCost().Currency())
	if err != nil {
		return kernel.Money{}, err
	}

	for _, line := range o.orderLines {
		lineTotal, lineErr := line.LineTotal()
		if lineErr != nil {
			return kernel.Money{}, lineErr
		}
		total, err = total.Add(lineTotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total.Add(o.shippingInfo.ShippingCost())
}

// MarkAsProcessing transitions the order to Processing.
//
// Business rules:
//   - the order must have at least one order line (checked first, so an
//     empty order always reports the missing lines regardless of status)
//   - the order must be in the New status
//
// Returns nil on success; ErrOrderHasNoLines or an invalid-state-transition
// error otherwise. On success an informational event is emitted.
func (o *Order) MarkAsProcessing() error {
	if err := o.Validate(); err != nil {
		return err
	}

	if len(o.orderLines) == 0 {
		return ErrOrderHasNoLines
	}

	newStatus, err := o.status.Process()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.notify(LevelInfo, "order %s marked as PROCESSING", o.id)
	return nil
}

// MarkAsCompleted transitions the order to Completed.
//
// Completion is legal from New (direct completion) and Processing; any other
// status fails with an invalid-state-transition error. On success an
// informational event is emitted.
func (o *Order) MarkAsCompleted() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.notify(LevelInfo, "order %s marked as COMPLETED", o.id)
	return nil
}

// MarkAsFailed transitions the order to Failed. The transition is
// unconditionally legal from every status, including the terminal ones.
// The reason is reported through the observer event for diagnostics and is
// not stored on the entity.
func (o *Order) MarkAsFailed(reason string) {
	o.status = o.status.Fail()
	o.notify(LevelError, "order %s marked as FAILED, reason: %s", o.id, reason)
}

// AssignErpID records the reference assigned by the ERP system. The id must
// be non-empty after trimming. Overwriting a different existing id is
// allowed but reported as a warn-level event.
func (o *Order) AssignErpID(erpID string) error {
	if err := o.Validate(); err != nil {
		return err
	}

	trimmed := strings.TrimSpace(erpID)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("erp id")
	}

	if o.erpID != "" && o.erpID != trimmed {
		o.notify(LevelWarn, "overwriting existing ERP ID %s for order %s", o.erpID, o.id)
	}

	o.erpID = trimmed
	o.notify(LevelInfo, "assigned ERP ID %s to order %s", trimmed, o.id)
	return nil
}

// AddOrderLine appends a line to the order. Lines may only be added while
// the order is in the New status.
func (o *Order) AddOrderLine(line *OrderLine) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.status.ValidateModifyLines(); err != nil {
		return err
	}
	if err := line.Validate(); err != nil {
		return err
	}

	o.orderLines = append(o.orderLines, line)
	o.notify(LevelInfo, "added order line %s to order %s", line.LineID(), o.id)
	return nil
}

// RemoveOrderLine deletes every line matching the given line id. Removing a
// line id that is not present is a no-op, not an error. Lines may only be
// removed while the order is in the New status.
func (o *Order) RemoveOrderLine(lineID string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.status.ValidateModifyLines(); err != nil {
		return err
	}

	remaining := o.orderLines[:0]
	for _, line := range o.orderLines {
		if line.LineID() != lineID {
			remaining = append(remaining, line)
		}
	}
	o.orderLines = remaining
	o.notify(LevelInfo, "removed order line %s from order %s", lineID, o.id)
	return nil
}

// UpdateShippingAddress replaces the delivery destination. The update is
// legal while the order is New or Processing and delegates the replacement
// to the owned ShippingInfo.
func (o *Order) UpdateShippingAddress(newAddress kernel.Address) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := o.status.ValidateUpdateShippingAddress(); err != nil {
		return err
	}
	if err := o.shippingInfo.UpdateAddress(newAddress); err != nil {
		return err
	}

	o.notify(LevelInfo, "updated shipping address for order %s", o.id)
	return nil
}

// setID validates and sets the order identifier.
func (o *Order) setID(id string) error {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = trimmed
	return nil
}

// setRequired trims the value and assigns it to the target field, failing
// when the trimmed value is empty.
func (o *Order) setRequired(target *string, paramName, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*target = trimmed
	return nil
}

// setShippingInfo validates and sets the owned shipping details.
func (o *Order) setShippingInfo(shippingInfo *ShippingInfo) error {
	if err := shippingInfo.Validate(); err != nil {
		return err
	}
	o.shippingInfo = shippingInfo
	return nil
}

// setOrderLines validates and sets the initial line list.
func (o *Order) setOrderLines(orderLines []*OrderLine) error {
	lines := make([]*OrderLine, 0, len(orderLines))
	for _, line := range orderLines {
		if err := line.Validate(); err != nil {
			return err
		}
		lines = append(lines, line)
	}
	o.orderLines = lines
	return nil
}

// setOrderDate sets the order date, defaulting the zero value to the
// current UTC date.
func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		orderDate = time.Now().UTC()
	}
	o.orderDate = truncateToDay(orderDate)
	return nil
}
