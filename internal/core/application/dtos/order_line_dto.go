package dtos

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// OrderLineDTO is the boundary representation of the OrderLine entity.
// The unit price accepts the MoneySpec variants; absent or malformed input
// resolves to a zero amount in the default currency.
type OrderLineDTO struct {
	LineID    string    `json:"line_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice MoneySpec `json:"unit_price"`
	DesignIDs []string  `json:"design_ids"`
}

// Validate checks and normalizes the line in place: the product id must be
// non-empty, the quantity positive, at least one design id present, and a
// missing line id is generated. The unit price variant is resolved to its
// canonical money shape.
func (d *OrderLineDTO) Validate() error {
	violations := errs.NewValidationError()

	d.LineID = strings.TrimSpace(d.LineID)
	if d.LineID == "" {
		d.LineID = kernel.NewID()
	}

	d.ProductID = strings.TrimSpace(d.ProductID)
	requireNonEmpty(violations, "product_id", d.ProductID)

	if d.Quantity <= 0 {
		violations.Add("quantity", "must be greater than zero")
	}

	designIDs := make([]string, 0, len(d.DesignIDs))
	for i, id := range d.DesignIDs {
		trimmed := strings.TrimSpace(id)
		if trimmed == "" {
			violations.Add(fmt.Sprintf("design_ids[%d]", i), "must not be empty")
			continue
		}
		designIDs = append(designIDs, trimmed)
	}
	if len(designIDs) == 0 {
		violations.Add("design_ids", "must contain at least one design id")
	}
	d.DesignIDs = designIDs

	unitPrice := d.UnitPrice.Resolve()
	if err := unitPrice.Validate(); err != nil {
		violations.AddNested("unit_price", err)
	}
	d.UnitPrice = MoneyFromValue(unitPrice)

	return violations.ErrOrNil()
}

// ToDomain validates the DTO and produces the domain OrderLine entity.
func (d *OrderLineDTO) ToDomain() (*order.OrderLine, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	unitPrice := d.UnitPrice.Resolve()
	price, err := unitPrice.ToDomain()
	if err != nil {
		return nil, err
	}

	return order.NewOrderLine(d.LineID, d.ProductID, d.Quantity, price, d.DesignIDs)
}

// OrderLineFromDomain projects a domain OrderLine into its boundary
// representation.
func OrderLineFromDomain(line *order.OrderLine) OrderLineDTO {
	return OrderLineDTO{
		LineID:    line.LineID(),
		ProductID: line.ProductID(),
		Quantity:  line.Quantity(),
		UnitPrice: MoneyFromValue(MoneyFromDomain(line.UnitPrice())),
		DesignIDs: line.DesignIDs(),
	}
}
