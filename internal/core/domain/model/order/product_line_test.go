package order_test

import (
	"testing"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductLine(t *testing.T) {
	t.Run("should create line with valid parameters", func(t *testing.T) {
		line, err := order.NewProductLine("P100", "Brake pad", 10, 8)

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.Equal(t, "P100", line.ProductID())
		assert.Equal(t, "Brake pad", line.Name())
		assert.Equal(t, 10, line.QuantityOrdered())
		assert.Equal(t, 8, line.QuantityAvailable())
		assert.Equal(t, 0, line.QuantityPacked())
		assert.Empty(t, line.Allocations())
	})

	t.Run("should return error for missing product code", func(t *testing.T) {
		line, err := order.NewProductLine("", "Brake pad", 10, 10)

		require.Error(t, err)
		assert.Nil(t, line)
		assert.Contains(t, err.Error(), "productID")
	})

	t.Run("should return error for missing name", func(t *testing.T) {
		_, err := order.NewProductLine("P100", "", 10, 10)
		require.Error(t, err)
	})

	t.Run("should return error for negative quantities", func(t *testing.T) {
		_, err := order.NewProductLine("P100", "Brake pad", -1, 10)
		require.Error(t, err)

		_, err = order.NewProductLine("P100", "Brake pad", 10, -1)
		require.Error(t, err)
	})

	t.Run("zero ordered quantity is allowed", func(t *testing.T) {
		line, err := order.NewProductLine("P100", "Brake pad", 0, 5)
		require.NoError(t, err)
		assert.Equal(t, 0, line.QuantityUnpacked())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var line order.ProductLine
		require.ErrorIs(t, line.Validate(), order.ErrProductLineIsNotConstructed)
	})
}

func TestRestoreProductLine(t *testing.T) {
	t.Run("restores allocations", func(t *testing.T) {
		line, err := order.RestoreProductLine("P100", "Brake pad", 10, 10, map[string]int{"B1": 4, "B2": 6})

		require.NoError(t, err)
		assert.Equal(t, 10, line.QuantityPacked())
		assert.Equal(t, 4, line.AllocationFor("B1"))
		assert.Equal(t, 6, line.AllocationFor("B2"))
	})

	t.Run("rejects negative persisted quantities", func(t *testing.T) {
		_, err := order.RestoreProductLine("P100", "Brake pad", 10, 10, map[string]int{"B1": -2})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero quantities are dropped rather than stored", func(t *testing.T) {
		line, err := order.RestoreProductLine("P100", "Brake pad", 10, 10, map[string]int{"B1": 0, "B2": 3})

		require.NoError(t, err)
		assert.Len(t, line.Allocations(), 1)
		assert.Equal(t, 0, line.AllocationFor("B1"))
	})
}

func TestProductLine_QuantityUnpacked(t *testing.T) {
	t.Run("counts the short-packed amount", func(t *testing.T) {
		line := restoreLine(t, "P1", 10, 10, map[string]int{"B1": 6})
		assert.Equal(t, 4, line.QuantityUnpacked())
	})

	t.Run("never reports negative when over-ordered allocations exist", func(t *testing.T) {
		line := restoreLine(t, "P1", 5, 10, map[string]int{"B1": 7})
		assert.Equal(t, 0, line.QuantityUnpacked())
	})
}

func TestProductLine_Allocations_ReturnsCopy(t *testing.T) {
	line := restoreLine(t, "P1", 10, 10, map[string]int{"B1": 6})

	allocations := line.Allocations()
	allocations["B1"] = 999

	assert.Equal(t, 6, line.AllocationFor("B1"))
}
