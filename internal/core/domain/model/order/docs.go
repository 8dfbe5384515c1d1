// Package order provides the canonical delivery-order record for the dispatch
// invoicing system. Orders arrive from an external ingestion step and carry
// the fields needed to group them into billable routes.
//
// The package includes:
//   - Order: one delivery leg with driver, addresses, trip number, timestamps
//     and distance values
//   - Missing-field tracking: an ordered set of field names that are empty or
//     invalid, recomputed on every mutation
//
// Key business rules:
//   - An order always has a valid unique identifier
//   - A field name appears in MissingFields iff its value is empty at the time
//     of computation
//   - Orders are corrected in place (driver, trip number, distance) but never
//     deleted individually; removal happens only through explicit bulk
//     operations on the working set
package order
