package services_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingCalculator_LineSubtotal(t *testing.T) {
	calc := services.NewPricingCalculator()

	t.Run("should multiply unit price by quantity", func(t *testing.T) {
		price, _ := kernel.MoneyFromString("4.25")

		subtotal, err := calc.LineSubtotal(price, 3)

		require.NoError(t, err)
		assert.Equal(t, "12.75", subtotal.String())
	})

	t.Run("quantity of one returns the unit price", func(t *testing.T) {
		price, _ := kernel.MoneyFromString("7.00")

		subtotal, err := calc.LineSubtotal(price, 1)

		require.NoError(t, err)
		assert.True(t, subtotal.IsEqual(price))
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		price, _ := kernel.MoneyFromString("4.25")

		_, err := calc.LineSubtotal(price, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with unconstructed unit price", func(t *testing.T) {
		var price kernel.Money

		_, err := calc.LineSubtotal(price, 2)

		require.Error(t, err)
	})

	t.Run("should fail with zero unit price", func(t *testing.T) {
		_, err := calc.LineSubtotal(kernel.ZeroMoney(), 2)

		require.Error(t, err)
	})
}

func TestPricingCalculator_OrderTotal(t *testing.T) {
	calc := services.NewPricingCalculator()

	t.Run("should sum subtotals", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("12.75")
		b, _ := kernel.MoneyFromString("9.90")

		total := calc.OrderTotal([]kernel.Money{a, b})

		assert.Equal(t, "22.65", total.String())
	})

	t.Run("empty order totals to zero", func(t *testing.T) {
		total := calc.OrderTotal(nil)

		assert.True(t, total.IsZero())
	})

	t.Run("recomputation is idempotent", func(t *testing.T) {
		a, _ := kernel.MoneyFromString("3.10")
		b, _ := kernel.MoneyFromString("5.55")
		subtotals := []kernel.Money{a, b, a}

		first := calc.OrderTotal(subtotals)
		second := calc.OrderTotal(subtotals)

		assert.True(t, first.IsEqual(second))
		assert.Equal(t, "11.75", first.String())
	})
}
