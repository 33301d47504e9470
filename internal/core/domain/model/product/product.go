package product

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created
	// through the NewProduct or RestoreProduct factory functions.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

	// ErrInsufficientStock is the unwrap target of InsufficientStockError.
	// Callers classify reservation failures with errors.Is against this value.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError is returned when a reservation would drive a product's
// available stock below zero. It carries enough detail for the caller to present
// the shortfall without another catalog read.
type InsufficientStockError struct {
	ProductID string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// NewInsufficientStockError creates an InsufficientStockError for the given product.
func NewInsufficientStockError(productID string, available, requested int) *InsufficientStockError {
	return &InsufficientStockError{ProductID: productID, Available: available, Requested: requested}
}

// Product is the catalog entry consumed by the ordering core: a priced item with
// a non-negative count of available stock. It is the aggregate behind the stock
// ledger; stock only changes through Reserve and Release so the non-negativity
// invariant is enforced in one place.
//
// Invariants:
//   - Must have a valid unique identifier and non-empty name
//   - Unit price must be positive
//   - Stock is never negative; a reservation that would violate this is
//     rejected as a whole (no partial decrement)
//
// A Product instance is not safe for uncoordinated concurrent writers; the
// persistence layer provides the atomic compare-and-decrement used when
// multiple transactions race on the same stock counter.
type Product struct {
	id        kernel.UUID
	name      string
	unitPrice kernel.Money
	stock     int

	isConstructed bool
}

// NewProduct creates a new Product with validation.
//
// Parameters:
//   - id: unique identifier (must be a constructed UUID)
//   - name: display name (must be non-empty)
//   - unitPrice: catalog price (must be positive)
//   - stock: initially available quantity (must be non-negative)
//
// Returns a validation error if any parameter is invalid.
func NewProduct(id kernel.UUID, name string, unitPrice kernel.Money, stock int) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setUnitPrice(unitPrice),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence.
// Applies the same validation as NewProduct; used by repository adapters only.
func RestoreProduct(id kernel.UUID, name string, unitPrice kernel.Money, stock int) (*Product, error) {
	return NewProduct(id, name, unitPrice, stock)
}

// Validate ensures the Product was created through a factory function.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// UnitPrice returns the current catalog price for one unit.
func (p *Product) UnitPrice() kernel.Money {
	return p.unitPrice
}

// Stock returns the currently available quantity.
func (p *Product) Stock() int {
	return p.stock
}

// Reserve atomically checks availability and decrements stock by quantity.
// The check and the decrement are one indivisible step on the aggregate:
// either the full quantity is reserved or nothing changes.
//
// Returns:
//   - a validation error if quantity is less than 1
//   - *InsufficientStockError if available stock is below quantity
//   - nil on success, with stock reduced by quantity
func (p *Product) Reserve(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	if p.stock < quantity {
		return NewInsufficientStockError(p.id.String(), p.stock, quantity)
	}

	p.stock -= quantity
	return nil
}

// Release returns a previously reserved quantity to the available stock.
// Unconditional addition: the catalog defines no upper bound here. Callers
// must release each reservation at most once; double releases inflate stock.
func (p *Product) Release(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	p.stock += quantity
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%s is not greater than 0", unitPrice))
	}
	p.unitPrice = unitPrice
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}
	p.stock = stock
	return nil
}
