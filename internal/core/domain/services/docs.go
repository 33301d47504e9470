// Package services contains stateless domain services that implement business
// logic spanning value objects without belonging to a single aggregate.
//
// PricingCalculator computes line subtotals (unit price × quantity) and order
// totals (sum of subtotals) using fixed-point decimal arithmetic, keeping all
// monetary computation in one independently testable place.
package services
