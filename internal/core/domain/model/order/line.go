package order

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory function.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one product entry within an order: a product reference, a quantity
// and the unit price captured when the line was first created. The captured
// price is immutable, so later catalog price changes never reprice an
// existing order. The subtotal is re-derived whenever the quantity changes.
//
// A Line belongs to exactly one Order and never outlives it; it holds only
// the product's identifier, never a live product reference.
type Line struct {
	id        kernel.UUID
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money
	subtotal  kernel.Money

	pricing       services.PricingCalculator
	isConstructed bool
}

// NewLine creates a new order line with validation.
//
// Parameters:
//   - id: unique identifier for the line
//   - productID: identifier of the ordered product
//   - quantity: number of units (must be at least 1)
//   - unitPrice: catalog price captured at creation time (must be positive)
//
// The subtotal is derived as unitPrice × quantity.
func NewLine(id kernel.UUID, productID kernel.UUID, quantity int, unitPrice kernel.Money) (*Line, error) {
	if err := errors.Join(id.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	line := &Line{
		id:            id,
		productID:     productID,
		unitPrice:     unitPrice,
		pricing:       services.NewPricingCalculator(),
		isConstructed: true,
	}

	if err := line.setQuantity(quantity); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLine reconstructs a Line from persistence, re-deriving the subtotal
// from the stored unit price and quantity. Used by repository adapters only.
func RestoreLine(id kernel.UUID, productID kernel.UUID, quantity int, unitPrice kernel.Money) (*Line, error) {
	return NewLine(id, productID, quantity, unitPrice)
}

// Validate ensures the Line was created through a factory function.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// ProductID returns the identifier of the ordered product.
func (l *Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the number of ordered units.
func (l *Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price captured when the line was created.
func (l *Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Subtotal returns unit price × quantity.
func (l *Line) Subtotal() kernel.Money {
	return l.subtotal
}

// increaseQuantity merges an additional quantity into the line and re-derives
// the subtotal. The captured unit price is kept as is. Only the owning Order
// calls this, as the merge half of its one-line-per-product policy.
func (l *Line) increaseQuantity(delta int) error {
	return l.setQuantity(l.quantity + delta)
}

func (l *Line) setQuantity(quantity int) error {
	subtotal, err := l.pricing.LineSubtotal(l.unitPrice, quantity)
	if err != nil {
		return err
	}

	l.quantity = quantity
	l.subtotal = subtotal
	return nil
}
