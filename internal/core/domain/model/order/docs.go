// Package order provides the Order aggregate of the food-ordering core:
// the unit of consistency that turns a cart of line items into a priced,
// stock-checked order and advances it through a constrained lifecycle.
//
// The package includes:
//   - Order: the aggregate root owning lines, status and total
//   - Line: one product entry with a captured unit price and derived subtotal
//   - Status: a state machine driven by an explicit transition table
//
// Key business rules:
//   - order.total always equals the sum of line subtotals
//   - one line per product per order; re-adding a product merges quantities
//   - line membership may change only while the order is Pending
//   - Pending -> Confirmed -> Preparing -> EnRoute -> Delivered, with
//     Cancelled reachable from the first three; Delivered and Cancelled
//     are terminal
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
