package ports

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their owned lines. The aggregate is stored and loaded as a whole:
// lines never travel without their order.
//
// Inside a unit of work, Get takes a row-level lock on the order so
// concurrent mutations of the same aggregate are serialized by the database.
type OrderRepository interface {
	// Add persists a new order aggregate with all of its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate: the order row,
	// changed lines, and removal of lines no longer present.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, locking the
	// order row for update when called within a transaction.
	// Returns *errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingCreatedBefore retrieves Pending orders created before the
	// cutoff. Used by the stale-order sweep.
	GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// Delete removes an order and its lines from storage.
	// Returns *errs.ObjectNotFoundError if no such order exists.
	// Callers enforce the Pending-only deletion policy and release reserved
	// stock before calling Delete.
	Delete(ctx context.Context, id kernel.UUID) error
}
