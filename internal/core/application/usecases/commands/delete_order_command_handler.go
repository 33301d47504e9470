package commands

import (
	"context"
)

// DeleteOrderCommandHandler handles permanent order removal.
// Deletion is restricted to Pending orders. Reserved stock is released, the
// order's delivery record dropped and the aggregate (order plus lines)
// removed, all in one transaction.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for deletion operations.
// Requires a UoWFactory because deletions span orders, the stock ledger and
// delivery records.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
// Loads and locks the order, rejects anything past Pending with
// *order.NotEditableError, releases every line's reserved quantity and
// removes the order with its lines and delivery record.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if err = aggregate.EnsureEditable(); err != nil {
		return err
	}

	if err = releaseOrderStock(ctx, uow.ProductRepository(), aggregate); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().DeleteByOrderID(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
