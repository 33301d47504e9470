// Package product provides the catalog-facing aggregate of the ordering core:
// a priced item with a non-negative available stock counter.
//
// The package implements the stock ledger's domain rules:
//   - Reserve: atomic check-and-decrement that rejects reservations exceeding
//     availability, as a whole, with a typed InsufficientStockError
//   - Release: unconditional return of a previously reserved quantity
//
// Stock never goes negative. Cross-transaction atomicity for concurrent
// reservations against the same product is provided by the persistence
// adapter's conditional update; this package owns the single-writer rules.
package product
