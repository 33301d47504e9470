package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var ErrRemoveLineCommandIsNotConstructed = errors.New(
	"RemoveLineCommand must be created via NewRemoveLineCommand constructor",
)

// RemoveLineCommand represents a request to remove a line from a Pending
// order. The line's full reserved quantity is returned to the stock ledger.
type RemoveLineCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	lineID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveLineCommand creates a command to remove a line from an order.
// Validates both identifiers.
func NewRemoveLineCommand(orderID kernel.UUID, lineID kernel.UUID) (RemoveLineCommand, error) {
	cmd := RemoveLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineID(lineID),
	); err != nil {
		return RemoveLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveLineCommandIsNotConstructed if validation fails.
func (c RemoveLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveLineCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to modify.
func (c RemoveLineCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineID returns the identifier of the line to remove.
func (c RemoveLineCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c *RemoveLineCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RemoveLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}
	c.lineID = lineID
	return nil
}
