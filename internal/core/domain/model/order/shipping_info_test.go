package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("Jan de Vries", "Keizersgracht 1", "", "Amsterdam", "", "1015 CS", "NL")
	require.NoError(t, err)
	return addr
}

func testShippingInfo(t *testing.T) *order.ShippingInfo {
	t.Helper()
	info, err := order.NewShippingInfo(testAddress(t), "PostNL", "Standard", testMoney(t, 5), nil, "", "")
	require.NoError(t, err)
	return info
}

func TestNewShippingInfo(t *testing.T) {
	t.Run("should create valid shipping info", func(t *testing.T) {
		cost := testMoney(t, 5)
		info, err := order.NewShippingInfo(testAddress(t), "PostNL", "Express", cost,
			nil, "jan@example.com", "+31612345678")

		require.NoError(t, err)
		require.NoError(t, info.Validate())
		assert.Equal(t, "PostNL", info.Carrier())
		assert.Equal(t, "Express", info.ShippingMethod())
		assert.Equal(t, "jan@example.com", info.EmailAddress())
		assert.Equal(t, "+31612345678", info.PhoneNumber())
		assert.Nil(t, info.EstimatedShippingDate())

		equal, err := info.ShippingCost().IsEqual(cost)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should default blank shipping method to Standard", func(t *testing.T) {
		info, err := order.NewShippingInfo(testAddress(t), "PostNL", "  ", testMoney(t, 0), nil, "", "")

		require.NoError(t, err)
		assert.Equal(t, order.DefaultShippingMethod, info.ShippingMethod())
	})

	t.Run("should default unconstructed shipping cost to zero in default currency", func(t *testing.T) {
		var cost kernel.Money

		info, err := order.NewShippingInfo(testAddress(t), "PostNL", "Standard", cost, nil, "", "")

		require.NoError(t, err)
		assert.True(t, info.ShippingCost().IsZero())
		assert.Equal(t, kernel.DefaultCurrency, info.ShippingCost().Currency())
	})

	t.Run("should truncate the estimated shipping date to a day", func(t *testing.T) {
		moment := time.Date(2026, time.September, 15, 13, 45, 12, 0, time.UTC)

		info, err := order.NewShippingInfo(testAddress(t), "PostNL", "Standard", testMoney(t, 0),
			&moment, "", "")

		require.NoError(t, err)
		require.NotNil(t, info.EstimatedShippingDate())
		assert.Equal(t, time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), *info.EstimatedShippingDate())
	})

	t.Run("should fail with unconstructed address", func(t *testing.T) {
		var addr kernel.Address

		_, err := order.NewShippingInfo(addr, "PostNL", "Standard", testMoney(t, 0), nil, "", "")

		require.Error(t, err)
		assert.Equal(t, kernel.ErrAddressIsNotConstructed, err)
	})

	t.Run("should fail with blank carrier", func(t *testing.T) {
		_, err := order.NewShippingInfo(testAddress(t), "   ", "Standard", testMoney(t, 0), nil, "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "carrier")
	})
}

func TestShippingInfo_Validate(t *testing.T) {
	t.Run("should fail for nil shipping info", func(t *testing.T) {
		var info *order.ShippingInfo

		err := info.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrShippingInfoIsNotConstructed, err)
	})

	t.Run("should fail for zero value shipping info", func(t *testing.T) {
		var info order.ShippingInfo

		err := info.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrShippingInfoIsNotConstructed, err)
	})
}

func TestShippingInfo_UpdateEstimatedShippingDate(t *testing.T) {
	t.Run("should set a date counting only working days", func(t *testing.T) {
		info := testShippingInfo(t)

		err := info.UpdateEstimatedShippingDate(3)

		require.NoError(t, err)
		require.NotNil(t, info.EstimatedShippingDate())
		expected := order.NextShippingDate(time.Now().UTC(), 3)
		assert.Equal(t, expected, *info.EstimatedShippingDate())
	})

	t.Run("should allow zero days leaving the date at today", func(t *testing.T) {
		info := testShippingInfo(t)

		err := info.UpdateEstimatedShippingDate(0)

		require.NoError(t, err)
		require.NotNil(t, info.EstimatedShippingDate())
		assert.Equal(t, order.NextShippingDate(time.Now().UTC(), 0), *info.EstimatedShippingDate())
	})

	t.Run("should reject negative days", func(t *testing.T) {
		info := testShippingInfo(t)

		err := info.UpdateEstimatedShippingDate(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "days")
		assert.Nil(t, info.EstimatedShippingDate())
	})
}

func TestShippingInfo_UpdateAddress(t *testing.T) {
	t.Run("should replace the address", func(t *testing.T) {
		info := testShippingInfo(t)
		newAddr, err := kernel.NewAddress("Piet Bakker", "Herengracht 2", "", "Amsterdam", "", "1016 BR", "NL")
		require.NoError(t, err)

		err = info.UpdateAddress(newAddr)

		require.NoError(t, err)
		equal, err := info.Address().IsEqual(newAddr)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should reject unconstructed address", func(t *testing.T) {
		info := testShippingInfo(t)
		original := info.Address()
		var addr kernel.Address

		err := info.UpdateAddress(addr)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrAddressIsNotConstructed, err)

		equal, err := info.Address().IsEqual(original)
		require.NoError(t, err)
		assert.True(t, equal)
	})
}

func TestNextShippingDate(t *testing.T) {
	// 2026-01-02 is a Friday.
	friday := time.Date(2026, time.January, 2, 10, 30, 0, 0, time.UTC)

	t.Run("should skip the weekend but not count it toward the budget", func(t *testing.T) {
		result := order.NextShippingDate(friday, 3)

		// Sat and Sun are crossed without consuming budget; Mon, Tue, Wed do.
		assert.Equal(t, time.Date(2026, time.January, 7, 0, 0, 0, 0, time.UTC), result)
		assert.Equal(t, 5, int(result.Sub(order.NextShippingDate(friday, 0)).Hours()/24))
	})

	t.Run("should land on Monday for one working day from Friday", func(t *testing.T) {
		result := order.NextShippingDate(friday, 1)

		assert.Equal(t, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), result)
		assert.Equal(t, time.Monday, result.Weekday())
	})

	t.Run("should advance day by day within a week", func(t *testing.T) {
		monday := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

		assert.Equal(t, time.Date(2026, time.January, 6, 0, 0, 0, 0, time.UTC), order.NextShippingDate(monday, 1))
		assert.Equal(t, time.Date(2026, time.January, 9, 0, 0, 0, 0, time.UTC), order.NextShippingDate(monday, 4))
	})

	t.Run("should return the starting date for zero working days", func(t *testing.T) {
		result := order.NextShippingDate(friday, 0)

		assert.Equal(t, time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC), result)
	})

	t.Run("should start counting from a weekend without consuming budget", func(t *testing.T) {
		saturday := time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC)

		result := order.NextShippingDate(saturday, 1)

		assert.Equal(t, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), result)
	})
}
