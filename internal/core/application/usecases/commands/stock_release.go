package commands

import (
	"context"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"
)

// releaseOrderStock returns every line's reserved quantity to the stock
// ledger. Stock is reserved at line-add time, so cancellation and deletion
// release it regardless of how far past Pending the order got.
// Runs inside the caller's unit of work; a later rollback undoes the releases.
func releaseOrderStock(ctx context.Context, products ports.ProductRepository, o *order.Order) error {
	for _, line := range o.Lines() {
		if err := products.ReleaseStock(ctx, line.ProductID(), line.Quantity()); err != nil {
			return err
		}
	}
	return nil
}

// cancelOrder transitions the order to Cancelled, releases its reserved
// stock and persists the aggregate. Shared by the cancel command, the
// status-transition command and the stale-order sweep.
func cancelOrder(
	ctx context.Context,
	orders ports.OrderRepository,
	products ports.ProductRepository,
	o *order.Order,
) error {
	if err := o.Cancel(); err != nil {
		return err
	}

	if err := releaseOrderStock(ctx, products, o); err != nil {
		return err
	}

	return orders.Update(ctx, o)
}
