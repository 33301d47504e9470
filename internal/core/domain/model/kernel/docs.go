// Package kernel provides shared value objects used across the domain model.
// These are the building blocks that other domain packages compose:
//
//   - UUID: validated unique identifiers for entities and aggregates
//   - Money: immutable fixed-point monetary amounts with two fractional digits
//
// All kernel types are immutable value objects that enforce their invariants
// through constructor functions. Zero values are invalid and fail Validate,
// preventing accidental use of unconstructed objects.
package kernel
