package http

import (
	"time"

	"foodorder/internal/core/application/usecases/queries"
)

// OrderView is the JSON representation of a full order.
type OrderView struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Address    string        `json:"address"`
	Status     string        `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	Total      string        `json:"total"`
	Lines      []LineView    `json:"lines"`
	Delivery   *DeliveryView `json:"delivery,omitempty"`
}

// LineView is the JSON representation of one order line.
type LineView struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

// DeliveryView is the JSON representation of an order's delivery state.
type DeliveryView struct {
	ID          string     `json:"id"`
	CourierID   *string    `json:"courier_id,omitempty"`
	AssignedAt  time.Time  `json:"assigned_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// OrderSummaryView is one entry of a customer's order history.
type OrderSummaryView struct {
	ID        string    `json:"id"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	LineCount int       `json:"line_count"`
	Total     string    `json:"total"`
}

func toOrderView(resp queries.GetOrderQueryResponse) OrderView {
	lines := make([]LineView, len(resp.Lines))
	for i, line := range resp.Lines {
		lines[i] = LineView{
			ID:        line.ID.String(),
			ProductID: line.ProductID.String(),
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  line.Subtotal,
		}
	}

	view := OrderView{
		ID:         resp.ID.String(),
		CustomerID: resp.CustomerID.String(),
		Address:    resp.Address,
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt,
		Total:      resp.Total,
		Lines:      lines,
	}

	if resp.Delivery != nil {
		delivery := &DeliveryView{
			ID:          resp.Delivery.ID.String(),
			AssignedAt:  resp.Delivery.AssignedAt,
			CompletedAt: resp.Delivery.CompletedAt,
		}
		if resp.Delivery.CourierID != nil {
			courierID := resp.Delivery.CourierID.String()
			delivery.CourierID = &courierID
		}
		view.Delivery = delivery
	}

	return view
}
