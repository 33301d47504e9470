package order_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Carrer de Mallorca 401", time.Now())
	require.NoError(t, err)
	return o
}

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validCustomer := kernel.NewUUID()
	now := time.Now()

	t.Run("should create valid pending order", func(t *testing.T) {
		o, err := order.NewOrder(validID, validCustomer, "Carrer de Mallorca 401", now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.CustomerID().IsEqual(validCustomer))
		assert.Equal(t, "Carrer de Mallorca 401", o.Address())
		assert.Equal(t, order.Pending, o.Status())
		assert.Empty(t, o.Lines())
		assert.True(t, o.Total().IsZero())
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validCustomer, "Carrer de Mallorca 401", now)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with invalid customer ID", func(t *testing.T) {
		var invalidCustomer kernel.UUID

		o, err := order.NewOrder(validID, invalidCustomer, "Carrer de Mallorca 401", now)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with empty address", func(t *testing.T) {
		o, err := order.NewOrder(validID, validCustomer, "", now)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with zero timestamp", func(t *testing.T) {
		o, err := order.NewOrder(validID, validCustomer, "Carrer de Mallorca 401", time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_AddLine(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("should add a new line and update total", func(t *testing.T) {
		o := newTestOrder(t)

		line, err := o.AddLine(kernel.NewUUID(), productID, 2, mustMoney(t, "9.90"))

		require.NoError(t, err)
		assert.Len(t, o.Lines(), 1)
		assert.Equal(t, 2, line.Quantity())
		assert.Equal(t, "19.80", line.Subtotal().String())
		assert.Equal(t, "19.80", o.Total().String())
	})

	t.Run("should merge quantity for an existing product", func(t *testing.T) {
		o := newTestOrder(t)

		first, err := o.AddLine(kernel.NewUUID(), productID, 2, mustMoney(t, "9.90"))
		require.NoError(t, err)

		merged, err := o.AddLine(kernel.NewUUID(), productID, 3, mustMoney(t, "12.00"))
		require.NoError(t, err)

		assert.Len(t, o.Lines(), 1)
		assert.True(t, merged.ID().IsEqual(first.ID()))
		assert.Equal(t, 5, merged.Quantity())
		// The unit price captured at first add wins; later catalog prices are ignored.
		assert.Equal(t, "9.90", merged.UnitPrice().String())
		assert.Equal(t, "49.50", merged.Subtotal().String())
		assert.Equal(t, "49.50", o.Total().String())
	})

	t.Run("should keep distinct products on distinct lines", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.AddLine(kernel.NewUUID(), productID, 2, mustMoney(t, "9.90"))
		require.NoError(t, err)
		_, err = o.AddLine(kernel.NewUUID(), kernel.NewUUID(), 1, mustMoney(t, "4.50"))
		require.NoError(t, err)

		assert.Len(t, o.Lines(), 2)
		assert.Equal(t, "24.30", o.Total().String())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.AddLine(kernel.NewUUID(), productID, 0, mustMoney(t, "9.90"))

		require.Error(t, err)
		assert.Empty(t, o.Lines())
	})

	t.Run("should reject addition outside Pending", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Confirm())

		_, err := o.AddLine(kernel.NewUUID(), productID, 1, mustMoney(t, "9.90"))

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrOrderNotEditable)

		var notEditable *order.NotEditableError
		require.ErrorAs(t, err, &notEditable)
		assert.Equal(t, order.Confirmed, notEditable.Status)
	})
}

func TestOrder_RemoveLine(t *testing.T) {
	t.Run("should remove line and recompute total", func(t *testing.T) {
		o := newTestOrder(t)
		keep, _ := o.AddLine(kernel.NewUUID(), kernel.NewUUID(), 1, mustMoney(t, "4.50"))
		removeMe, _ := o.AddLine(kernel.NewUUID(), kernel.NewUUID(), 2, mustMoney(t, "9.90"))

		removed, err := o.RemoveLine(removeMe.ID())

		require.NoError(t, err)
		assert.True(t, removed.ID().IsEqual(removeMe.ID()))
		assert.Equal(t, 2, removed.Quantity())
		assert.Len(t, o.Lines(), 1)
		assert.True(t, o.Lines()[0].ID().IsEqual(keep.ID()))
		assert.Equal(t, "4.50", o.Total().String())
	})

	t.Run("removing the last line leaves a zero total", func(t *testing.T) {
		o := newTestOrder(t)
		line, _ := o.AddLine(kernel.NewUUID(), kernel.NewUUID(), 2, mustMoney(t, "9.90"))

		_, err := o.RemoveLine(line.ID())

		require.NoError(t, err)
		assert.Empty(t, o.Lines())
		assert.True(t, o.Total().IsZero())
	})

	t.Run("should fail for a line of another order", func(t *testing.T) {
		o := newTestOrder(t)
		_, _ = o.AddLine(kernel.NewUUID(), kernel.NewUUID(), 1, mustMoney(t, "4.50"))

		_, err := o.RemoveLine(kernel.NewUUID())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject removal outside Pending", func(t *testing.T) {
		o := newTestOrder(t)
		line, _ := o.AddLine(kernel.NewUUID(), kernel.NewUUID(), 1, mustMoney(t, "4.50"))
		require.NoError(t, o.Confirm())

		_, err := o.RemoveLine(line.ID())

		require.ErrorIs(t, err, order.ErrOrderNotEditable)
		assert.Len(t, o.Lines(), 1)
		assert.Equal(t, "4.50", o.Total().String())
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("should walk the full happy path", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.TransitionTo(order.Confirmed))
		require.NoError(t, o.TransitionTo(order.Preparing))
		require.NoError(t, o.TransitionTo(order.EnRoute))
		require.NoError(t, o.TransitionTo(order.Delivered))

		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("rejected transition leaves status unchanged", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.TransitionTo(order.Delivered)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("cancel is legal from Pending, Confirmed and Preparing", func(t *testing.T) {
		for _, setup := range []func(o *order.Order){
			func(_ *order.Order) {},
			func(o *order.Order) { require.NoError(t, o.Confirm()) },
			func(o *order.Order) {
				require.NoError(t, o.Confirm())
				require.NoError(t, o.TransitionTo(order.Preparing))
			},
		} {
			o := newTestOrder(t)
			setup(o)

			require.NoError(t, o.Cancel())
			assert.Equal(t, order.Cancelled, o.Status())
		}
	})

	t.Run("cancel is rejected once EnRoute", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.TransitionTo(order.Preparing))
		require.NoError(t, o.TransitionTo(order.EnRoute))

		err := o.Cancel()

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.EnRoute, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should rebuild aggregate and recompute total from lines", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		createdAt := time.Now().Add(-time.Hour)

		lineA, err := order.RestoreLine(kernel.NewUUID(), kernel.NewUUID(), 2, mustMoney(t, "9.90"))
		require.NoError(t, err)
		lineB, err := order.RestoreLine(kernel.NewUUID(), kernel.NewUUID(), 1, mustMoney(t, "4.50"))
		require.NoError(t, err)

		o, err := order.RestoreOrder(id, customerID, "Carrer de Mallorca 401", createdAt,
			order.Confirmed, []*order.Line{lineA, lineB})

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Len(t, o.Lines(), 2)
		assert.Equal(t, "24.30", o.Total().String())
	})

	t.Run("should reject invalid stored status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), "addr", time.Now(),
			order.Status(42), nil)

		require.Error(t, err)
	})
}

func TestOrder_Line(t *testing.T) {
	o := newTestOrder(t)
	line, _ := o.AddLine(kernel.NewUUID(), kernel.NewUUID(), 1, mustMoney(t, "4.50"))

	t.Run("should find owned line", func(t *testing.T) {
		found, err := o.Line(line.ID())

		require.NoError(t, err)
		assert.True(t, found.ID().IsEqual(line.ID()))
	})

	t.Run("should fail for unknown line", func(t *testing.T) {
		_, err := o.Line(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
