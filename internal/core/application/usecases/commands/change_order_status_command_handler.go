package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/delivery"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler handles order lifecycle transitions.
// Beyond the bare status change, two transitions carry side effects handled
// in the same transaction:
//   - Cancelled: every line's reserved quantity goes back to the stock ledger
//   - Delivered: the order's delivery record is stamped with a completion time
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
// Requires a UoWFactory because cancellations touch the stock ledger and
// deliveries touch delivery records.
func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// Loads and locks the order, asks the transition table whether the move is
// legal, performs the transition's side effects and persists everything
// atomically. An illegal move returns *order.InvalidTransitionError with the
// order untouched.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	switch cmd.Target() {
	case order.Cancelled:
		err = cancelOrder(ctx, orderRepo, uow.ProductRepository(), aggregate)
	case order.Delivered:
		err = h.deliverOrder(ctx, uow, aggregate)
	default:
		if err = aggregate.TransitionTo(cmd.Target()); err == nil {
			err = orderRepo.Update(ctx, aggregate)
		}
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// deliverOrder moves the order to Delivered and completes its delivery
// record. Orders created before delivery records existed get one created on
// the spot, backdated to the order's creation time.
func (h *ChangeOrderStatusCommandHandler) deliverOrder(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
) error {
	if err := aggregate.TransitionTo(order.Delivered); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	record, err := deliveryRepo.GetByOrderID(ctx, aggregate.ID())

	var notFoundErr *errs.ObjectNotFoundError
	switch {
	case err == nil:
		if err = record.Complete(time.Now().UTC()); err != nil {
			return err
		}
		return deliveryRepo.Update(ctx, record)
	case errors.As(err, &notFoundErr):
		record, err = delivery.NewDelivery(kernel.NewUUID(), aggregate.ID(), aggregate.CreatedAt())
		if err != nil {
			return err
		}
		if err = record.Complete(time.Now().UTC()); err != nil {
			return err
		}
		return deliveryRepo.Add(ctx, record)
	default:
		return err
	}
}
