package order

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderNotEditable is the unwrap target of NotEditableError.
	// Callers classify rejected mutations with errors.Is against this value.
	ErrOrderNotEditable = errors.New("order is not editable")
)

// NotEditableError is returned when line membership is mutated, or the order
// deleted, outside the editable Pending status.
type NotEditableError struct {
	Status Status
}

func (e *NotEditableError) Error() string {
	return fmt.Sprintf("order is not editable in status %s", e.Status)
}

func (e *NotEditableError) Unwrap() error {
	return ErrOrderNotEditable
}

// Order is the aggregate root of the ordering core: the customer's cart turned
// into a priced, stock-checked order. It owns its lines (no line outlives its
// order), governs its own status transitions and keeps its total equal to the
// sum of line subtotals after every mutation.
//
// Order follows these invariants:
//   - total == Σ line.subtotal at all times after any mutation
//   - at most one line per product; adding the same product merges quantities
//   - lines may be added or removed only while the order is Pending
//   - status changes follow the transition table in Status
//
// The aggregate is the unit of locking: a single Order is not safe for
// uncoordinated concurrent writers. The persistence layer serializes
// concurrent mutations of one order on its row lock.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	address    string
	createdAt  time.Time
	status     Status
	lines      []*Line
	total      kernel.Money

	pricing       services.PricingCalculator
	isConstructed bool
}

// NewOrder creates a new empty Order in Pending status.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: identifier of the owning customer
//   - address: delivery address (must be non-empty)
//   - createdAt: creation timestamp (must be non-zero)
//
// Lines are added afterwards via AddLine; the initial total is zero.
func NewOrder(id kernel.UUID, customerID kernel.UUID, address string, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		total:         kernel.ZeroMoney(),
		pricing:       services.NewPricingCalculator(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setAddress(address),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with its stored status
// and lines. The total is recomputed from the restored lines rather than
// trusted from storage, keeping the total invariant self-healing.
// Used by repository adapters only.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	address string,
	createdAt time.Time,
	status Status,
	lines []*Line,
) (*Order, error) {
	o, err := NewOrder(id, customerID, address, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	for _, line := range lines {
		if err = line.Validate(); err != nil {
			return nil, err
		}
	}
	o.lines = lines
	o.recalculateTotal()

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the owning customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the order total, equal to the sum of all line subtotals.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Lines returns the order's lines. The returned slice is a copy; the lines
// themselves are owned by the order and must not be mutated by callers.
func (o *Order) Lines() []*Line {
	lines := make([]*Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Line returns the line with the given identifier, or an ObjectNotFoundError
// if no such line belongs to this order.
func (o *Order) Line(lineID kernel.UUID) (*Line, error) {
	for _, line := range o.lines {
		if line.id.IsEqual(lineID) {
			return line, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("lineId", lineID.String())
}

// EnsureEditable returns nil while line membership may change.
// Outside Pending it returns a NotEditableError carrying the current status.
// Callers use it to fail fast before reserving stock for a mutation that the
// aggregate would reject anyway.
func (o *Order) EnsureEditable() error {
	if !o.status.IsEditable() {
		return &NotEditableError{Status: o.status}
	}
	return nil
}

// AddLine adds quantity units of a product to the order.
//
// Policy: one line per product per order. If a line for productID already
// exists, its quantity is incremented and its subtotal re-derived from the
// unit price captured when that line was first created; otherwise a new line
// is created with the given identifier and unit price. The order total is
// recomputed either way.
//
// The caller is responsible for having reserved quantity units with the stock
// ledger before calling AddLine; the aggregate tracks membership and pricing,
// not stock.
//
// Returns:
//   - the affected line (new or merged)
//   - *NotEditableError if the order is not Pending
//   - a validation error for a non-positive quantity or invalid price
func (o *Order) AddLine(
	lineID kernel.UUID,
	productID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
) (*Line, error) {
	if err := o.EnsureEditable(); err != nil {
		return nil, err
	}

	for _, line := range o.lines {
		if line.productID.IsEqual(productID) {
			if err := line.increaseQuantity(quantity); err != nil {
				return nil, err
			}
			o.recalculateTotal()
			return line, nil
		}
	}

	line, err := NewLine(lineID, productID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	o.lines = append(o.lines, line)
	o.recalculateTotal()
	return line, nil
}

// RemoveLine removes the line with the given identifier and recomputes the
// order total.
//
// Returns:
//   - the removed line, so the caller can release its reserved quantity
//   - *NotEditableError if the order is not Pending
//   - *errs.ObjectNotFoundError if the line does not belong to this order
func (o *Order) RemoveLine(lineID kernel.UUID) (*Line, error) {
	if err := o.EnsureEditable(); err != nil {
		return nil, err
	}

	for i, line := range o.lines {
		if line.id.IsEqual(lineID) {
			o.lines = append(o.lines[:i], o.lines[i+1:]...)
			o.recalculateTotal()
			return line, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("lineId", lineID.String())
}

// TransitionTo moves the order to the target status if the transition table
// allows it. On rejection the status is left unchanged and an
// *InvalidTransitionError is returned.
//
// Side effects of entering Cancelled (releasing reserved stock) and Delivered
// (completing the delivery record) involve other aggregates and are
// coordinated by the command handlers within the same unit of work.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Confirm transitions the order from Pending to Confirmed, freezing line
// membership.
func (o *Order) Confirm() error {
	return o.TransitionTo(Confirmed)
}

// Cancel transitions the order to Cancelled. Legal from Pending, Confirmed
// and Preparing; rejected once the order is EnRoute or terminal.
func (o *Order) Cancel() error {
	return o.TransitionTo(Cancelled)
}

// recalculateTotal re-derives the order total from the current line
// subtotals. Called after every line mutation.
func (o *Order) recalculateTotal() {
	subtotals := make([]kernel.Money, 0, len(o.lines))
	for _, line := range o.lines {
		subtotals = append(subtotals, line.subtotal)
	}
	o.total = o.pricing.OrderTotal(subtotals)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
