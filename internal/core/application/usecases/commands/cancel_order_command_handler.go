package commands

import (
	"context"
)

// CancelOrderCommandHandler handles order cancellation.
// The status change and the stock releases commit together: a cancelled
// order's reservations are always returned, and a failed cancellation
// returns nothing.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory)
//	cmd, _ := NewCancelOrderCommand(orderID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    var transitionErr *order.InvalidTransitionError
//	    if errors.As(err, &transitionErr) {
//	        // order already EnRoute, Delivered or Cancelled
//	    }
//	    return err
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderProductUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for cancellation operations.
func NewCancelOrderCommandHandler(uowFactory OrderProductUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Loads and locks the order, moves it to Cancelled via the transition table,
// releases every line's reserved quantity and persists the aggregate.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = cancelOrder(ctx, orderRepo, uow.ProductRepository(), aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
