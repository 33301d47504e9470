// Package http provides the inbound HTTP adapter.
// Handlers stay thin: they parse requests, delegate to command and query
// handlers, and map the typed error taxonomy onto status codes.
package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/product"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	addLineHandler           commands.AddLineCommandHandler
	removeLineHandler        commands.RemoveLineCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addLineHandler commands.AddLineCommandHandler,
	removeLineHandler commands.RemoveLineCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		addLineHandler:           addLineHandler,
		removeLineHandler:        removeLineHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		deleteOrderHandler:       deleteOrderHandler,
		getOrderHandler:          getOrderHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
	}
}

// RegisterRoutes mounts all order routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderID", s.GetOrder)
	api.DELETE("/orders/:orderID", s.DeleteOrder)
	api.POST("/orders/:orderID/lines", s.AddLine)
	api.DELETE("/orders/:orderID/lines/:lineID", s.RemoveLine)
	api.POST("/orders/:orderID/status", s.ChangeOrderStatus)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.GET("/customers/:customerID/orders", s.GetCustomerOrders)
}

// ErrorResponse is the JSON error body returned by every handler.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderRequest is the request body for POST /api/v1/orders.
type NewOrderRequest struct {
	CustomerID string           `json:"customer_id"`
	Address    string           `json:"address"`
	Lines      []NewLineRequest `json:"lines"`
}

// NewLineRequest is one requested line item.
type NewLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// ChangeStatusRequest is the request body for POST /api/v1/orders/:orderID/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// CreatedResponse echoes back the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// CreateOrder handles POST /api/v1/orders - creates a new order with optional lines.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid customer ID: "+err.Error())
	}

	lines := make([]commands.LineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		productID, lineErr := kernel.UUIDFromString(line.ProductID)
		if lineErr != nil {
			return respondError(ctx, http.StatusBadRequest, "Invalid product ID: "+lineErr.Error())
		}
		lines = append(lines, commands.LineInput{ProductID: productID, Quantity: line.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, req.Address, lines)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// AddLine handles POST /api/v1/orders/:orderID/lines - adds a product to an order.
func (s *Server) AddLine(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
	}

	var req NewLineRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid product ID: "+err.Error())
	}

	cmd, err := commands.NewAddLineCommand(orderID, productID, req.Quantity)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid line data: "+err.Error())
	}

	if err = s.addLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveLine handles DELETE /api/v1/orders/:orderID/lines/:lineID.
func (s *Server) RemoveLine(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
	}

	lineID, err := kernel.UUIDFromString(ctx.Param("lineID"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid line ID: "+err.Error())
	}

	cmd, err := commands.NewRemoveLineCommand(orderID, lineID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid line data: "+err.Error())
	}

	if err = s.removeLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderID/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Unknown status: "+req.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid status change: "+err.Error())
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid cancellation: "+err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:orderID.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid deletion: "+err.Error())
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderView(resp))
}

// GetCustomerOrders handles GET /api/v1/customers/:customerID/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerID"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid customer ID: "+err.Error())
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	response := make([]OrderSummaryView, len(orders))
	for i, o := range orders {
		response[i] = OrderSummaryView{
			ID:        o.ID.String(),
			Address:   o.Address,
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
			LineCount: o.LineCount,
			Total:     o.Total,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// respondDomainError maps the typed error taxonomy onto HTTP status codes:
// unknown object 404, stock conflicts 409, lifecycle violations 422,
// bad values 400, anything else 500.
func respondDomainError(ctx echo.Context, err error) error {
	var (
		notFoundErr    *errs.ObjectNotFoundError
		stockErr       *product.InsufficientStockError
		transitionErr  *order.InvalidTransitionError
		notEditableErr *order.NotEditableError
	)

	switch {
	case errors.As(err, &notFoundErr):
		return respondError(ctx, http.StatusNotFound, err.Error())
	case errors.As(err, &stockErr):
		return respondError(ctx, http.StatusConflict, err.Error())
	case errors.As(err, &transitionErr), errors.As(err, &notEditableErr):
		return respondError(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respondError(ctx, http.StatusBadRequest, err.Error())
	default:
		return respondError(ctx, http.StatusInternalServerError, "Internal error")
	}
}

func respondError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
