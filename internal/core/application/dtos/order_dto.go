package dtos

import (
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// OrderDTO is the boundary representation of the Order aggregate.
type OrderDTO struct {
	OrderID      string          `json:"order_id"`
	CustomerID   string          `json:"customer_id"`
	ExternalID   string          `json:"external_id"`
	SourceName   string          `json:"source_name"`
	ShippingInfo ShippingInfoDTO `json:"shipping_info"`
	OrderLines   []OrderLineDTO  `json:"order_lines"`
	Status       string          `json:"status"`
	ErpID        string          `json:"erp_id"`
	OrderDate    string          `json:"order_date"`
}

// Validate checks and normalizes the order in place: customer id, external
// id, and source name must be non-empty, at least one order line must be
// present, a missing order id is generated, a blank status defaults to NEW,
// and a blank order date defaults to the current UTC date. Violations of the
// nested shipping info and order lines are re-parented under their field
// paths.
func (d *OrderDTO) Validate() error {
	violations := errs.NewValidationError()

	d.OrderID = strings.TrimSpace(d.OrderID)
	if d.OrderID == "" {
		d.OrderID = kernel.NewID()
	}

	d.CustomerID = strings.TrimSpace(d.CustomerID)
	d.ExternalID = strings.TrimSpace(d.ExternalID)
	d.SourceName = strings.TrimSpace(d.SourceName)
	d.ErpID = strings.TrimSpace(d.ErpID)
	requireNonEmpty(violations, "customer_id", d.CustomerID)
	requireNonEmpty(violations, "external_id", d.ExternalID)
	requireNonEmpty(violations, "source_name", d.SourceName)

	violations.AddNested("shipping_info", d.ShippingInfo.Validate())

	if len(d.OrderLines) == 0 {
		violations.Add("order_lines", "must contain at least one order line")
	}
	for i := range d.OrderLines {
		violations.AddNested(fmt.Sprintf("order_lines[%d]", i), d.OrderLines[i].Validate())
	}

	d.Status = strings.TrimSpace(d.Status)
	if d.Status == "" {
		d.Status = order.New.String()
	} else if status, err := order.StatusFromString(d.Status); err != nil {
		violations.Add("status", fmt.Sprintf("%q is not a valid status", d.Status))
	} else {
		d.Status = status.String()
	}

	d.OrderDate = strings.TrimSpace(d.OrderDate)
	if d.OrderDate == "" {
		d.OrderDate = utcToday().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, d.OrderDate); err != nil {
		violations.Add("order_date", "must be a date in YYYY-MM-DD format")
	}

	return violations.ErrOrNil()
}

// ToDomain validates the DTO and reconstructs the domain Order aggregate,
// including its status and ERP reference, so orders round-trip through the
// boundary without losing lifecycle state.
func (d *OrderDTO) ToDomain() (*order.Order, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	shippingInfo, err := d.ShippingInfo.ToDomain()
	if err != nil {
		return nil, err
	}

	lines := make([]*order.OrderLine, 0, len(d.OrderLines))
	for i := range d.OrderLines {
		line, lineErr := d.OrderLines[i].ToDomain()
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	status, err := order.StatusFromString(d.Status)
	if err != nil {
		return nil, err
	}

	orderDate, err := time.Parse(dateLayout, d.OrderDate)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order_date", err)
	}

	return order.RestoreOrder(
		d.OrderID, d.CustomerID, d.ExternalID, d.SourceName,
		shippingInfo, lines, status, d.ErpID, orderDate)
}

// OrderFromDomain projects a domain Order into its boundary representation.
func OrderFromDomain(o *order.Order) OrderDTO {
	domainLines := o.OrderLines()
	lines := make([]OrderLineDTO, 0, len(domainLines))
	for _, line := range domainLines {
		lines = append(lines, OrderLineFromDomain(line))
	}

	return OrderDTO{
		OrderID:      o.ID(),
		CustomerID:   o.CustomerID(),
		ExternalID:   o.ExternalID(),
		SourceName:   o.SourceName(),
		ShippingInfo: ShippingInfoFromDomain(o.ShippingInfo()),
		OrderLines:   lines,
		Status:       o.Status().String(),
		ErpID:        o.ErpID(),
		OrderDate:    o.OrderDate().Format(dateLayout),
	}
}
