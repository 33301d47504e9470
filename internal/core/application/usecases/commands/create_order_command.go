package commands

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrAddressIsRequired = errors.New("address is required")
)

// LineInput is one requested line item in an order-creation call:
// a product reference and a quantity. The unit price is not part of the
// input; it is captured from the catalog when the line is created.
type LineInput struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to create a new order for a
// customer, optionally with an initial batch of line items. Creation is
// all-or-nothing: if any requested line cannot be reserved, no order is
// created and no stock is moved.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, customerID, "Carrer de Mallorca 401",
//	    []LineInput{{ProductID: pizzaID, Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	address    string
	lines      []LineInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identifiers, requires a non-empty address, and requires every
// requested line to reference a valid product with a quantity of at least 1.
// An empty line batch is allowed: orders may start empty and be filled while
// Pending.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	address string,
	lines []LineInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setAddress(address),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the owning customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// Lines returns the requested initial line batch.
func (c CreateOrderCommand) Lines() []LineInput {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	c.address = address
	return nil
}

func (c *CreateOrderCommand) setLines(lines []LineInput) error {
	for i, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("line %d: %d is not greater than 0", i, line.Quantity))
		}
	}
	c.lines = lines
	return nil
}
