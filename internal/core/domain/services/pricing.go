package services

import (
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// PricingCalculator is a pure, stateless domain service computing line
// subtotals and order totals from captured unit prices.
//
// All arithmetic is fixed-point with two fractional digits (kernel.Money);
// no floating point is involved at any step, so repeated recomputation of a
// total from the same lines is idempotent.
//
// Example usage:
//
//	calc := NewPricingCalculator()
//	subtotal, err := calc.LineSubtotal(unitPrice, 3)
//	if err != nil {
//	    // invalid quantity or unit price
//	}
//	total := calc.OrderTotal([]kernel.Money{subtotal, otherSubtotal})
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{}
}

// LineSubtotal computes unit price times quantity.
//
// Parameters:
//   - unitPrice: the price captured at line-creation time (must be a
//     constructed, positive amount)
//   - quantity: number of units (must be at least 1)
//
// Returns the subtotal, or a validation error for a non-positive quantity or
// an unconstructed or non-positive unit price.
func (c PricingCalculator) LineSubtotal(unitPrice kernel.Money, quantity int) (kernel.Money, error) {
	if err := unitPrice.Validate(); err != nil {
		return kernel.Money{}, err
	}

	if !unitPrice.IsPositive() {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%s is not greater than 0", unitPrice))
	}

	if quantity < 1 {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return unitPrice.MulInt(quantity), nil
}

// OrderTotal sums the given line subtotals. The empty sum is zero, matching
// the total of an order with no lines.
func (c PricingCalculator) OrderTotal(subtotals []kernel.Money) kernel.Money {
	total := kernel.ZeroMoney()
	for _, subtotal := range subtotals {
		total = total.Add(subtotal)
	}
	return total
}
