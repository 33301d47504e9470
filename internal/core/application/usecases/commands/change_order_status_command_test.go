package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Confirmed)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, order.Confirmed, cmd.Target())
	assert.NoError(t, cmd.Validate())
}

func TestNewChangeOrderStatusCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, order.Confirmed)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewChangeOrderStatusCommand_UnknownTarget(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Unknown)
	require.Error(t, err)

	_, err = commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Status(42))
	require.Error(t, err)
}

func TestChangeOrderStatusCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.ChangeOrderStatusCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrChangeOrderStatusCommandIsNotConstructed)
}
