package commands

import (
	"context"
	"time"
)

// CancelStaleOrdersCommandHandler sweeps Pending orders that outlived their
// time-to-live, cancelling each and returning its reserved stock to the
// catalog. The whole batch commits as one transaction.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderProductUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale-order
// sweep.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderProductUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command.
// Retrieves every Pending order created before now minus the TTL and cancels
// each through the transition table, releasing its reservations.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) error {
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
	productRepo := uow.ProductRepository()

	cutoff := time.Now().UTC().Add(-cmd.TTL())
	staleOrders, err := orderRepo.GetAllPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, stale := range staleOrders {
		if err = cancelOrder(ctx, orderRepo, productRepo, stale); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
