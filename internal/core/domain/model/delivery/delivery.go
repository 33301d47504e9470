package delivery

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through the NewDelivery or RestoreDelivery factory functions.
	ErrDeliveryIsNotConstructed = errors.New(
		"Delivery must be created via NewDelivery or RestoreDelivery constructor")

	// ErrDeliveryAlreadyCompleted is returned when completing or reassigning a
	// delivery that already has a completion timestamp.
	ErrDeliveryAlreadyCompleted = errors.New("delivery is already completed")
)

// Delivery is the companion record tracking the hand-off of exactly one order.
// It is created when the order's stock reservations commit and completed when
// the order enters its terminal Delivered status. A courier may be assigned at
// any point before completion; the reference is optional throughout.
type Delivery struct {
	id          kernel.UUID
	orderID     kernel.UUID
	courierID   *kernel.UUID
	assignedAt  time.Time
	completedAt *time.Time

	isConstructed bool
}

// NewDelivery creates a new Delivery for an order.
//
// Parameters:
//   - id: unique identifier for the delivery record
//   - orderID: the order this delivery belongs to
//   - assignedAt: timestamp of record creation (must be non-zero)
//
// The delivery starts without a courier and without a completion time.
func NewDelivery(id kernel.UUID, orderID kernel.UUID, assignedAt time.Time) (*Delivery, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if assignedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("assignedAt")
	}

	return &Delivery{
		id:            id,
		orderID:       orderID,
		assignedAt:    assignedAt,
		isConstructed: true,
	}, nil
}

// RestoreDelivery reconstructs a Delivery from persistence.
// Used by repository adapters only.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	courierID *kernel.UUID,
	assignedAt time.Time,
	completedAt *time.Time,
) (*Delivery, error) {
	d, err := NewDelivery(id, orderID, assignedAt)
	if err != nil {
		return nil, err
	}

	if courierID != nil {
		if err = courierID.Validate(); err != nil {
			return nil, err
		}
		d.courierID = courierID
	}
	d.completedAt = completedAt

	return d, nil
}

// Validate ensures the Delivery was created through a factory function.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the order being delivered.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// Courier returns the assigned courier's identifier, or nil if unassigned.
func (d *Delivery) Courier() *kernel.UUID {
	return d.courierID
}

// AssignedAt returns the record's creation timestamp.
func (d *Delivery) AssignedAt() time.Time {
	return d.assignedAt
}

// CompletedAt returns the completion timestamp, or nil while undelivered.
func (d *Delivery) CompletedAt() *time.Time {
	return d.completedAt
}

// IsCompleted reports whether the delivery has been marked completed.
func (d *Delivery) IsCompleted() bool {
	return d.completedAt != nil
}

// AssignCourier attaches a courier to the delivery. Reassignment is allowed
// while the delivery is not completed.
func (d *Delivery) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if d.IsCompleted() {
		return ErrDeliveryAlreadyCompleted
	}

	d.courierID = &courierID
	return nil
}

// Complete stamps the completion time. Called when the order enters its
// terminal Delivered status. Completing twice is rejected.
func (d *Delivery) Complete(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("completedAt")
	}
	if d.IsCompleted() {
		return ErrDeliveryAlreadyCompleted
	}

	d.completedAt = &at
	return nil
}
