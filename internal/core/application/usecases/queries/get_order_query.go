// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read directly from the database with raw SQL, bypassing the
// domain model and its aggregate locking: reads never contend with writes.
package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its lines and delivery state.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %s: %s, total %s\n", resp.ID, resp.Status, resp.Total)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order.
// Validates the order identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse represents a full order view: the order row, its
// lines and, when present, the delivery record's state.
type GetOrderQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Address    string
	Status     string
	CreatedAt  time.Time
	Total      string
	Lines      []OrderLineResponse
	Delivery   *OrderDeliveryResponse
}

// OrderLineResponse represents one line of an order view.
// Subtotal is the captured unit price multiplied by the quantity.
type OrderLineResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Quantity  int
	UnitPrice string
	Subtotal  string
}

// OrderDeliveryResponse represents the delivery state of an order view.
type OrderDeliveryResponse struct {
	ID          kernel.UUID
	CourierID   *kernel.UUID
	AssignedAt  time.Time
	CompletedAt *time.Time
}
