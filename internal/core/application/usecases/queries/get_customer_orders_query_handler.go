package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler retrieves a customer's order summaries from
// the database, newest first. Line counts and totals are aggregated in SQL so
// the history view costs one query regardless of order sizes.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order
// history queries. Requires a GORM database connection for query execution.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query.
// A customer with no orders yields an empty slice, not an error.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.address,
			o.status,
			o.created_at,
			COUNT(l.id),
			COALESCE(SUM(l.unit_price * l.quantity), 0)
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE o.customer_id = ?
		GROUP BY o.id, o.address, o.status, o.created_at
		ORDER BY o.created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetCustomerOrdersQueryResponse, 0)

	for rows.Next() {
		var resp GetCustomerOrdersQueryResponse
		var id uuid.UUID
		var status int
		var total decimal.Decimal

		err = rows.Scan(
			&id,
			&resp.Address,
			&status,
			&resp.CreatedAt,
			&resp.LineCount,
			&total,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status).String()
		resp.Total = total.StringFixed(2)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
