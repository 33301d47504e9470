package ports

import (
	"context"

	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery records.
// Each record belongs to exactly one order.
type DeliveryRepository interface {
	// Add persists a new delivery record.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery record.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// GetByOrderID retrieves the delivery record belonging to an order.
	// Returns *errs.ObjectNotFoundError if the order has no delivery record.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// DeleteByOrderID removes the delivery record belonging to an order,
	// if one exists. Deleting a missing record is not an error: orders may
	// be deleted before their delivery record was created.
	DeleteByOrderID(ctx context.Context, orderID kernel.UUID) error
}
