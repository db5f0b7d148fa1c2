package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(t *testing.T, lines ...*order.OrderLine) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewID(), "CUST-1", "EXT-1", "webshop", testShippingInfo(t), lines, time.Time{})
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		line := testOrderLine(t)
		orderDate := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

		o, err := order.NewOrder("order-1", "CUST-1", "EXT-1", "webshop", testShippingInfo(t),
			[]*order.OrderLine{line}, orderDate)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "order-1", o.ID())
		assert.Equal(t, "CUST-1", o.CustomerID())
		assert.Equal(t, "EXT-1", o.ExternalID())
		assert.Equal(t, "webshop", o.SourceName())
		assert.Equal(t, order.New, o.Status())
		assert.Empty(t, o.ErpID())
		assert.Equal(t, orderDate, o.OrderDate())
		require.Len(t, o.OrderLines(), 1)
		assert.True(t, o.OrderLines()[0].IsEqual(line))
	})

	t.Run("should default zero order date to current UTC date", func(t *testing.T) {
		o := testOrder(t)

		today := time.Now().UTC()
		expected := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		assert.Equal(t, expected, o.OrderDate())
	})

	t.Run("should fail with blank order id", func(t *testing.T) {
		_, err := order.NewOrder("  ", "CUST-1", "EXT-1", "webshop", testShippingInfo(t), nil, time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "order id")
	})

	t.Run("should fail with nil shipping info", func(t *testing.T) {
		_, err := order.NewOrder("order-1", "CUST-1", "EXT-1", "webshop", nil, nil, time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ShippingInfo must be created")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		_, err := order.NewOrder("", "", "", "", nil, nil, time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "order id")
		assert.Contains(t, err.Error(), "customer id")
		assert.Contains(t, err.Error(), "external id")
		assert.Contains(t, err.Error(), "source name")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with explicit status and erp id", func(t *testing.T) {
		o, err := order.RestoreOrder("order-1", "CUST-1", "EXT-1", "webshop", testShippingInfo(t),
			[]*order.OrderLine{testOrderLine(t)}, order.Completed, "ERP-9", time.Time{})

		require.NoError(t, err)
		assert.Equal(t, order.Completed, o.Status())
		assert.Equal(t, "ERP-9", o.ErpID())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder("order-1", "CUST-1", "EXT-1", "webshop", testShippingInfo(t),
			nil, order.Unknown, "", time.Time{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_MarkAsProcessing(t *testing.T) {
	t.Run("should transition a new order with lines", func(t *testing.T) {
		o := testOrder(t, testOrderLine(t))
		linesBefore := len(o.OrderLines())
		shippingBefore := o.ShippingInfo()

		err := o.MarkAsProcessing()

		require.NoError(t, err)
		assert.Equal(t, order.Processing, o.Status())
		assert.Len(t, o.OrderLines(), linesBefore)
		assert.Same(t, shippingBefore, o.ShippingInfo())
	})

	t.Run("should fail the second time with invalid state transition", func(t *testing.T) {
		o := testOrder(t, testOrderLine(t))
		require.NoError(t, o.MarkAsProcessing())

		err := o.MarkAsProcessing()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Contains(t, err.Error(), "PROCESSING")
	})

	t.Run("should fail without order lines", func(t *testing.T) {
		o := testOrder(t)

		err := o.MarkAsProcessing()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderHasNoLines, err)
		assert.Equal(t, order.New, o.Status())
	})

	t.Run("should report missing lines regardless of status", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.MarkAsCompleted())

		err := o.MarkAsProcessing()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderHasNoLines, err)
	})
}

func TestOrder_MarkAsCompleted(t *testing.T) {
	t.Run("should complete directly from new", func(t *testing.T) {
		o := testOrder(t, testOrderLine(t))

		err := o.MarkAsCompleted()

		require.NoError(t, err)
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("should complete from processing", func(t *testing.T) {
		o := testOrder(t, testOrderLine(t))
		require.NoError(t, o.MarkAsProcessing())

		err := o.MarkAsCompleted()

		require.NoError(t, err)
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("should fail from terminal statuses", func(t *testing.T) {
		o := testOrder(t, testOrderLine(t))
		require.NoError(t, o.MarkAsCompleted())

		err := o.MarkAsCompleted()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestOrder_MarkAsFailed(t *testing.T) {
	t.Run("should fail from any status including terminal ones", func(t *testing.T) {
		o := testOrder(t, testOrderLine(t))
		require.NoError(t, o.MarkAsCompleted())

		o.MarkAsFailed("carrier rejected the parcel")

		assert.Equal(t, order.Failed, o.Status())
	})

	t.Run("should report the reason through the observer only", func(t *testing.T) {
		o := testOrder(t, testOrderLine(t))
		var events []order.Event
		o.SetObserver(func(e order.Event) { events = append(events, e) })

		o.MarkAsFailed("out of stock")

		require.Len(t, events, 1)
		assert.Equal(t, order.LevelError, events[0].Level)
		assert.Equal(t, o.ID(), events[0].OrderID)
		assert.Contains(t, events[0].Message, "out of stock")
	})
}

func TestOrder_AssignErpID(t *testing.T) {
	t.Run("should assign a trimmed erp id", func(t *testing.T) {
		o := testOrder(t)

		err := o.AssignErpID("  ERP-42  ")

		require.NoError(t, err)
		assert.Equal(t, "ERP-42", o.ErpID())
	})

	t.Run("should reject blank erp id", func(t *testing.T) {
		o := testOrder(t)

		err := o.AssignErpID("   ")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Empty(t, o.ErpID())
	})

	t.Run("should allow overwriting with a warn event", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.AssignErpID("ERP-1"))

		var warns []order.Event
		o.SetObserver(func(e order.Event) {
			if e.Level == order.LevelWarn {
				warns = append(warns, e)
			}
		})

		err := o.AssignErpID("ERP-2")

		require.NoError(t, err)
		assert.Equal(t, "ERP-2", o.ErpID())
		require.Len(t, warns, 1)
		assert.Contains(t, warns[0].Message, "overwriting")
	})

	t.Run("should not warn when reassigning the same id", func(t *testing.T) {
		o := testOrder(t)
		require.NoError(t, o.AssignErpID("ERP-1"))

		var warns []order.Event
		o.SetObserver(func(e order.Event) {
			if e.Level == order.LevelWarn {
				warns = append(warns, e)
			}
		})

		require.NoError(t, o.AssignErpID("ERP-1"))
		assert.Empty(t, warns)
	})
}

func TestOrder_OrderLineManagement(t *testing.T) {
	t.Run("should add and remove a line restoring the original count", func(t *testing.T) {
		o := testOrder(t, testOrderLine(t))
		countBefore := len(o.OrderLines())
		extra := testOrderLine(t)

		require.NoError(t, o.AddOrderLine(extra))
		assert.Len(t, o.OrderLines(), countBefore+1)

		require.NoError(t, o.RemoveOrderLine(extra.LineID()))
		assert.Len(t, o.OrderLines(), countBefore)
	})

	t.Run("should remove all lines matching the id", func(t *testing.T) {
		line, err := order.NewOrderLine("dup-line", "PROD-1", 1, testMoney(t, 1), nil)
		require.NoError(t, err)
		o := testOrder(t, line)

		require.NoError(t, o.RemoveOrderLine("dup-line"))

		assert.Empty(t, o.OrderLines())
	})

	t.Run("should treat removing an absent line id as a no-op", func(t *testing.T) {
		o := testOrder(t, testOrderLine(t))

		err := o.RemoveOrderLine("missing-line")

		require.NoError(t, err)
		assert.Len(t, o.OrderLines(), 1)
	})

	t.Run("should reject adding lines outside the new status", func(t *testing.T) {
		o := testOrder(t, testOrderLine(t))
		require.NoError(t, o.MarkAsProcessing())

		err := o.AddOrderLine(testOrderLine(t))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Len(t, o.OrderLines(), 1)
	})

	t.Run("should reject removing lines outside the new status", func(t *testing.T) {
		line := testOrderLine(t)
		o := testOrder(t, line)
		require.NoError(t, o.MarkAsCompleted())

		err := o.RemoveOrderLine(line.LineID())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		assert.Len(t, o.OrderLines(), 1)
	})

	t.Run("should reject adding an unconstructed line", func(t *testing.T) {
		o := testOrder(t)
		var line *order.OrderLine

		err := o.AddOrderLine(line)

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderLineIsNotConstructed, err)
	})

	t.Run("should return a defensive copy of the line list", func(t *testing.T) {
		o := testOrder(t, testOrderLine(t))

		lines := o.OrderLines()
		lines[0] = nil

		assert.NotNil(t, o.OrderLines()[0])
	})
}

func TestOrder_UpdateShippingAddress(t *testing.T) {
	newAddr := func(t *testing.T) kernel.Address {
		t.Helper()
		addr, err := kernel.NewAddress("Piet Bakker", "Herengracht 2", "", "Amsterdam", "", "1016 BR", "NL")
		require.NoError(t, err)
		return addr
	}

	t.Run("should update while new", func(t *testing.T) {
		o := testOrder(t)

		err := o.UpdateShippingAddress(newAddr(t))

		require.NoError(t, err)
		equal, err := o.ShippingInfo().Address().IsEqual(newAddr(t))
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should update while processing", func(t *testing.T) {
		o := testOrder(t, testOrderLine(t))
		require.NoError(t, o.MarkAsProcessing())

		err := o.UpdateShippingAddress(newAddr(t))

		require.NoError(t, err)
	})

	t.Run("should reject after completion", func(t *testing.T) {
		o := testOrder(t, testOrderLine(t))
		require.NoError(t, o.MarkAsCompleted())

		err := o.UpdateShippingAddress(newAddr(t))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
	})
}

func TestOrder_TotalAmount(t *testing.T) {
	t.Run("should sum line totals and shipping cost", func(t *testing.T) {
		lineA, err := order.NewOrderLine("line-a", "PROD-1", 2, testMoney(t, 19.99), []string{"design-1"})
		require.NoError(t, err)
		lineB, err := order.NewOrderLine("line-b", "PROD-2", 2, testMoney(t, 19.99), []string{"design-2"})
		require.NoError(t, err)
		o := testOrder(t, lineA, lineB) // shipping cost 5.00 EUR

		total, err := o.TotalAmount()

		require.NoError(t, err)
		// 2 lines of 19.99 x 2 each plus 5.00 shipping.
		assert.True(t, total.Amount().Equal(decimal.NewFromFloat(84.96)),
			"expected 84.96, got %s", total.Amount())
		assert.Equal(t, "EUR", total.Currency())
	})

	t.Run("should equal the shipping cost for an order without lines", func(t *testing.T) {
		o := testOrder(t)

		total, err := o.TotalAmount()

		require.NoError(t, err)
		assert.True(t, total.Amount().Equal(decimal.NewFromInt(5)))
	})

	t.Run("should fail when a line uses a different currency", func(t *testing.T) {
		price, err := kernel.NewMoneyFromFloat(10, "USD")
		require.NoError(t, err)
		line, err := order.NewOrderLine("line-usd", "PROD-1", 1, price, nil)
		require.NoError(t, err)
		o := testOrder(t, line)

		_, err = o.TotalAmount()

		require.Error(t, err)
		require.ErrorIs(t, err, kernel.ErrCurrencyMismatch)
	})
}

func TestOrder_Observer(t *testing.T) {
	t.Run("should emit info events for transitions", func(t *testing.T) {
		o := testOrder(t, testOrderLine(t))
		var events []order.Event
		o.SetObserver(func(e order.Event) { events = append(events, e) })

		require.NoError(t, o.MarkAsProcessing())
		require.NoError(t, o.MarkAsCompleted())

		require.Len(t, events, 2)
		assert.Equal(t, order.LevelInfo, events[0].Level)
		assert.Contains(t, events[0].Message, "PROCESSING")
		assert.Contains(t, events[1].Message, "COMPLETED")
	})

	t.Run("should stay silent without an observer", func(t *testing.T) {
		o := testOrder(t, testOrderLine(t))

		require.NoError(t, o.MarkAsProcessing())
	})

	t.Run("should stay silent after detaching the observer", func(t *testing.T) {
		o := testOrder(t, testOrderLine(t))
		var events []order.Event
		o.SetObserver(func(e order.Event) { events = append(events, e) })
		o.SetObserver(nil)

		o.MarkAsFailed("whatever")

		assert.Empty(t, events)
	})
}
