package queries

import (
	"context"
	"database/sql"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its lines and delivery state
// from the database. Reads the tables directly: no aggregate rehydration, no
// row locks.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    var notFoundErr *errs.ObjectNotFoundError
//	    if errors.As(err, &notFoundErr) {
//	        // 404
//	    }
//	    return err
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
// Returns *errs.ObjectNotFoundError if no order with the given ID exists.
// The Delivery field is nil when the order has no delivery record.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.readOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Lines, resp.Total, err = h.readLines(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Delivery, err = h.readDelivery(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) readOrder(ctx context.Context, orderID kernel.UUID) (GetOrderQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			address,
			created_at,
			status
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var resp GetOrderQueryResponse
	var id, customerID uuid.UUID
	var status int

	err := row.Scan(&id, &customerID, &resp.Address, &resp.CreatedAt, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Status = order.Status(status).String()

	return resp, nil
}

func (h GetOrderQueryHandler) readLines(ctx context.Context, orderID kernel.UUID) ([]OrderLineResponse, string, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			quantity,
			unit_price
		FROM order_lines
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	lines := make([]OrderLineResponse, 0)
	total := decimal.Zero

	for rows.Next() {
		var line OrderLineResponse
		var id, productID uuid.UUID
		var unitPrice decimal.Decimal

		if err = rows.Scan(&id, &productID, &line.Quantity, &unitPrice); err != nil {
			return nil, "", err
		}

		if line.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, "", err
		}
		if line.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, "", err
		}

		subtotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		line.UnitPrice = unitPrice.StringFixed(2)
		line.Subtotal = subtotal.StringFixed(2)
		total = total.Add(subtotal)

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, "", err
	}

	return lines, total.StringFixed(2), nil
}

func (h GetOrderQueryHandler) readDelivery(ctx context.Context, orderID kernel.UUID) (*OrderDeliveryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			courier_id,
			assigned_at,
			completed_at
		FROM deliveries
		WHERE order_id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var resp OrderDeliveryResponse
	var id uuid.UUID
	var courierID *uuid.UUID

	if err = rows.Scan(&id, &courierID, &resp.AssignedAt, &resp.CompletedAt); err != nil {
		return nil, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return nil, err
	}
	if courierID != nil {
		cID, cErr := kernel.UUIDFromBytes((*courierID)[:])
		if cErr != nil {
			return nil, cErr
		}
		resp.CourierID = &cID
	}

	return &resp, nil
}
