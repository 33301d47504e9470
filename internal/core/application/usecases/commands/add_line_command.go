package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrAddLineCommandIsNotConstructed = errors.New(
	"AddLineCommand must be created via NewAddLineCommand constructor",
)

// AddLineCommand represents a request to add a quantity of a product to a
// Pending order. If the order already holds a line for the product, the
// quantity is merged into it instead of a second line appearing.
//
// Example:
//
//	cmd, err := NewAddLineCommand(orderID, productID, 3)
//	if err != nil {
//	    return fmt.Errorf("invalid line data: %w", err)
//	}
//
//	handler := NewAddLineCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add line: %w", err)
//	}
type AddLineCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddLineCommand creates a command to add quantity units of a product to
// an order. Validates both identifiers and requires quantity >= 1.
func NewAddLineCommand(orderID kernel.UUID, productID kernel.UUID, quantity int) (AddLineCommand, error) {
	cmd := AddLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddLineCommandIsNotConstructed if validation fails.
func (c AddLineCommand) Validate() error {
	return c.guard.Validate(ErrAddLineCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to modify.
func (c AddLineCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the identifier of the product to add.
func (c AddLineCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the number of units to add.
func (c AddLineCommand) Quantity() int {
	return c.quantity
}

func (c *AddLineCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddLineCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *AddLineCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}
