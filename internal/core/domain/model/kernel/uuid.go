package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not initialized through
// one of the constructor functions. Returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is a value object identifying every entity in the system: orders,
// order lines, products, customers, couriers and deliveries all carry one.
// It wraps github.com/google/uuid so that identity comparison and validation
// live in one place and the rest of the domain never touches the library
// type directly.
//
// The zero value is invalid; construct through NewUUID, UUIDFromString or
// UUIDFromBytes. UUID is immutable and safe for concurrent use.
//
// Example usage:
//
//	orderID := kernel.NewUUID()
//
//	productID, err := kernel.UUIDFromString(req.ProductID)
//	if err != nil {
//	    // 400: the caller sent a malformed identifier
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
// This is how every aggregate, line and delivery record gets its identity.
//
// Example:
//
//	lineID := kernel.NewUUID()
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// It accepts the standard formats, including:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//
// Returns an error for anything else. This is the entry point for
// identifiers arriving over HTTP (path parameters, request bodies) and for
// rehydrating entities from persistence.
//
// Example:
//
//	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
//	if err != nil {
//	    return respondError(ctx, http.StatusBadRequest, "Invalid order ID")
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a byte slice, which must be exactly
// 16 bytes long. Nil UUIDs are rejected: a row holding an all-zero
// identifier is corrupt, not merely empty.
//
// Used when reading identifiers stored as binary uuid columns.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
// A zero-value UUID renders as all zeros. Used for JSON responses, log
// fields and the text side of error messages.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value (not a byte slice; slice it
// with [:] when needed). Exists for the persistence layer, which binds
// identifiers to uuid columns; domain code should not need it.
//
// Example:
//
//	db.First(&dto, "id = ?", orderID.Bytes())
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two UUIDs identify the same entity.
//
// Example:
//
//	if !line.ProductID().IsEqual(productID) {
//	    continue
//	}
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate checks that the UUID came from a constructor.
// Returns ErrUUIDIsNotConstructed for the zero value. Every aggregate
// constructor and command setter calls this before accepting an identifier.
//
// Example:
//
//	func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
//	    if err := orderID.Validate(); err != nil {
//	        return err
//	    }
//	    c.orderID = orderID
//	    return nil
//	}
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
