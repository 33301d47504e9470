package commands

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// AddLineCommandHandler handles adding product quantities to Pending orders.
// Reserves stock with the ledger before touching the aggregate, so a line
// only ever exists with its quantity backed by a reservation.
//
// Example:
//
//	handler := NewAddLineCommandHandler(uowFactory)
//	cmd, _ := NewAddLineCommand(orderID, productID, 3)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    var stockErr *product.InsufficientStockError
//	    if errors.As(err, &stockErr) {
//	        // surface availability to the caller
//	    }
//	    return err
//	}
type AddLineCommandHandler struct {
	uowFactory OrderProductUoWFactory
}

// NewAddLineCommandHandler creates a handler for line addition operations.
func NewAddLineCommandHandler(uowFactory OrderProductUoWFactory) AddLineCommandHandler {
	return AddLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line addition command.
// Loads and locks the order, rejects non-Pending orders before any stock
// moves, then reserves the quantity at the product's current unit price and
// merges or appends the line. Rolls back on any failure, undoing the
// reservation.
func (h *AddLineCommandHandler) Handle(ctx context.Context, cmd AddLineCommand) error {
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

	productRepo := uow.ProductRepository()
	catalogProduct, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = productRepo.ReserveStock(ctx, cmd.ProductID(), cmd.Quantity()); err != nil {
		return err
	}

	if _, err = aggregate.AddLine(
		kernel.NewUUID(), cmd.ProductID(), cmd.Quantity(), catalogProduct.UnitPrice(),
	); err != nil {
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
