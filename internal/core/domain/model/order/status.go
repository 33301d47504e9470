package order

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
)

// ErrInvalidTransition is the unwrap target of InvalidTransitionError.
// Callers classify rejected status changes with errors.Is against this value.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError is returned when a requested status change is not in
// the transition table. The current status is left unchanged.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of an order.
// It implements a state machine driven by an explicit transition table,
// so the legal sequence of statuses is data, not scattered conditionals.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> EnRoute ──> Delivered
//	   │            │             │
//	   └────────────┴─────────────┴──> Cancelled
//
// Pending is the only editable status: line membership may change there and
// nowhere else. Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status after order creation.
	// Lines may be added and removed only while the order is Pending.
	Pending

	// Confirmed indicates the customer has confirmed the order.
	// Line membership is frozen from this point on.
	Confirmed

	// Preparing indicates the kitchen is preparing the order.
	Preparing

	// EnRoute indicates the order has left for delivery.
	// Cancellation is no longer possible.
	EnRoute

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled and its reserved stock
	// returned to the catalog. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Preparing: "Preparing",
		EnRoute:   "EnRoute",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getAllowedTransitions returns the transition table of the order state
// machine. A requested change is legal iff the target appears in the slice
// keyed by the current status. Terminal statuses have no entries.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Confirmed, Cancelled},
		Confirmed: {Preparing, Cancelled},
		Preparing: {EnRoute, Cancelled},
		EnRoute:   {Delivered},
	}
}

// StatusFromString parses a status from its string name, e.g. "Confirmed".
// Used when accepting a target status from the calling layer.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is a defined, non-Unknown status.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsEditable reports whether line membership may change in this status.
// Only Pending orders are editable.
func (s Status) IsEditable() bool {
	return s == Pending
}

// IsTerminal reports whether no further transition is possible from this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the transition table allows moving from the
// current status to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the requested change against the transition table.
//
// Returns:
//   - (target, nil) when the transition is legal
//   - (0, *InvalidTransitionError) otherwise, leaving the caller's state unchanged
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, &InvalidTransitionError{From: s, To: target}
	}

	return target, nil
}
