package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/product"
)

// ProductRepository is the stock ledger's persistence contract: catalog reads
// plus atomic stock movements attributed to order lines.
//
// ReserveStock must be atomic with respect to concurrent callers reserving
// against the same product: the availability check and the decrement happen
// as one conditional update, so two racing reservations cannot both succeed
// when only one fits the remaining stock.
type ProductRepository interface {
	// Add persists a new product to the catalog.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	// Returns *errs.ObjectNotFoundError if no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// ReserveStock atomically decrements the product's available stock by
	// quantity if and only if at least that much is available.
	// Returns *product.InsufficientStockError when availability is below
	// quantity (stock unchanged), or *errs.ObjectNotFoundError for an
	// unknown product.
	ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error

	// ReleaseStock unconditionally returns quantity units to the product's
	// available stock. Callers release each reservation at most once.
	// Returns *errs.ObjectNotFoundError for an unknown product.
	ReleaseStock(ctx context.Context, id kernel.UUID, quantity int) error
}
