package commands

import (
	"context"
)

// RemoveLineCommandHandler handles removing lines from Pending orders.
// Removing a line releases its entire reserved quantity back to the stock
// ledger in the same transaction, so a committed removal never strands a
// reservation.
type RemoveLineCommandHandler struct {
	uowFactory OrderProductUoWFactory
}

// NewRemoveLineCommandHandler creates a handler for line removal operations.
func NewRemoveLineCommandHandler(uowFactory OrderProductUoWFactory) RemoveLineCommandHandler {
	return RemoveLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line removal command.
// Loads and locks the order, removes the line (rejecting non-Pending orders
// and unknown lines), releases the removed line's quantity and persists the
// shrunken aggregate.
func (h *RemoveLineCommandHandler) Handle(ctx context.Context, cmd RemoveLineCommand) error {
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

	removed, err := aggregate.RemoveLine(cmd.LineID())
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().ReleaseStock(ctx, removed.ProductID(), removed.Quantity()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
