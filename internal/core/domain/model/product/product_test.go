package product_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/product"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPrice(t *testing.T) kernel.Money {
	t.Helper()
	price, err := kernel.MoneyFromString("9.90")
	require.NoError(t, err)
	return price
}

func TestNewProduct(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid product", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Margherita", validPrice(t), 25)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.Equal(t, "Margherita", p.Name())
		assert.Equal(t, 25, p.Stock())
		assert.Equal(t, "9.90", p.UnitPrice().String())
	})

	t.Run("should accept zero stock", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Margherita", validPrice(t), 0)

		require.NoError(t, err)
		assert.Equal(t, 0, p.Stock())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := product.NewProduct(invalidID, "Margherita", validPrice(t), 25)

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		p, err := product.NewProduct(validID, "", validPrice(t), 25)

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero price", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Margherita", kernel.ZeroMoney(), 25)

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("should fail with negative stock", func(t *testing.T) {
		p, err := product.NewProduct(validID, "Margherita", validPrice(t), -1)

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("should fail validation for zero value product", func(t *testing.T) {
		var p *product.Product

		require.Error(t, p.Validate())
		assert.Equal(t, product.ErrProductIsNotConstructed, p.Validate())
	})
}

func TestProduct_Reserve(t *testing.T) {
	t.Run("should decrement stock on success", func(t *testing.T) {
		p, _ := product.NewProduct(kernel.NewUUID(), "Margherita", validPrice(t), 5)

		err := p.Reserve(3)

		require.NoError(t, err)
		assert.Equal(t, 2, p.Stock())
	})

	t.Run("should reject reservation exceeding stock and leave stock unchanged", func(t *testing.T) {
		p, _ := product.NewProduct(kernel.NewUUID(), "Margherita", validPrice(t), 5)

		err := p.Reserve(6)

		require.Error(t, err)
		require.ErrorIs(t, err, product.ErrInsufficientStock)

		var insufficientErr *product.InsufficientStockError
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, 5, insufficientErr.Available)
		assert.Equal(t, 6, insufficientErr.Requested)
		assert.Equal(t, 5, p.Stock())
	})

	t.Run("should allow reserving exactly the available stock", func(t *testing.T) {
		p, _ := product.NewProduct(kernel.NewUUID(), "Margherita", validPrice(t), 5)

		require.NoError(t, p.Reserve(5))
		assert.Equal(t, 0, p.Stock())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		p, _ := product.NewProduct(kernel.NewUUID(), "Margherita", validPrice(t), 5)

		require.Error(t, p.Reserve(0))
		require.Error(t, p.Reserve(-2))
		assert.Equal(t, 5, p.Stock())
	})
}

func TestProduct_Release(t *testing.T) {
	t.Run("reserve then release restores prior stock", func(t *testing.T) {
		p, _ := product.NewProduct(kernel.NewUUID(), "Margherita", validPrice(t), 5)

		require.NoError(t, p.Reserve(4))
		require.NoError(t, p.Release(4))

		assert.Equal(t, 5, p.Stock())
	})

	t.Run("release has no upper bound", func(t *testing.T) {
		p, _ := product.NewProduct(kernel.NewUUID(), "Margherita", validPrice(t), 5)

		require.NoError(t, p.Release(100))

		assert.Equal(t, 105, p.Stock())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		p, _ := product.NewProduct(kernel.NewUUID(), "Margherita", validPrice(t), 5)

		require.Error(t, p.Release(0))
		assert.Equal(t, 5, p.Stock())
	})
}

func TestProduct_StockNeverNegative(t *testing.T) {
	p, _ := product.NewProduct(kernel.NewUUID(), "Margherita", validPrice(t), 3)

	// Any sequence of reserve/release calls keeps stock >= 0.
	ops := []struct {
		reserve  int
		expectOK bool
	}{
		{reserve: 2, expectOK: true},
		{reserve: 2, expectOK: false},
		{reserve: 1, expectOK: true},
		{reserve: 1, expectOK: false},
	}

	for _, op := range ops {
		err := p.Reserve(op.reserve)
		if op.expectOK {
			require.NoError(t, err)
		} else {
			require.ErrorIs(t, err, product.ErrInsufficientStock)
		}
		assert.GreaterOrEqual(t, p.Stock(), 0)
	}
}
