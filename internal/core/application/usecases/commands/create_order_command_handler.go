package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates a new Pending order, reserves stock for each requested line at the
// price currently in the catalog, and opens the order's delivery record.
//
// The whole operation runs in one unit of work: if any product is unknown or
// lacks stock, the transaction rolls back and every reservation made so far
// is undone, leaving no partial order behind.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), customerID, "Carrer de Mallorca 401",
//	    []LineInput{{ProductID: pizzaID, Quantity: 2}})
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now Pending with stock reserved for every line
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence across orders, the
// stock ledger and delivery records.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// For every requested line it looks up the product, reserves stock and adds
// the line at the product's current unit price. Lines naming the same product
// are merged by the aggregate. Finishes by persisting the order and opening
// its delivery record.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	now := time.Now().UTC()

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.Address(), now)
	if err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	for _, line := range cmd.Lines() {
		catalogProduct, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return err
		}

		if err = productRepo.ReserveStock(ctx, line.ProductID, line.Quantity); err != nil {
			return err
		}

		if _, err = aggregate.AddLine(
			kernel.NewUUID(), line.ProductID, line.Quantity, catalogProduct.UnitPrice(),
		); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	record, err := delivery.NewDelivery(kernel.NewUUID(), aggregate.ID(), now)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
