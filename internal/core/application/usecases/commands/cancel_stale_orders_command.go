package commands

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
	"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
)

// CancelStaleOrdersCommand triggers cancellation of Pending orders older than
// a time-to-live. Abandoned carts hold stock reservations forever otherwise;
// the sweep returns that stock to the catalog.
//
// Example:
//
//	cmd, _ := NewCancelStaleOrdersCommand(30 * time.Minute)
//	handler := NewCancelStaleOrdersCommandHandler(uowFactory)
//
//	// Run periodically from a scheduler
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("stale order sweep failed: %v", err)
//	}
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to cancel Pending orders
// older than ttl. Requires a positive ttl.
func NewCancelStaleOrdersCommand(ttl time.Duration) (CancelStaleOrdersCommand, error) {
	cmd := CancelStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTTL(ttl); err != nil {
		return CancelStaleOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelStaleOrdersCommandIsNotConstructed if validation fails.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// TTL returns how long a Pending order may live before the sweep cancels it.
func (c CancelStaleOrdersCommand) TTL() time.Duration {
	return c.ttl
}

func (c *CancelStaleOrdersCommand) setTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("ttl",
			fmt.Errorf("%s is not a positive duration", ttl))
	}
	c.ttl = ttl
	return nil
}
