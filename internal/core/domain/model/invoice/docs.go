// Package invoice provides the invoice aggregate for the dispatch invoicing
// system. It implements the billing document produced by one generation run,
// its line items and its lifecycle state machine.
//
// The package includes:
//   - Invoice: the aggregate root holding items, totals and metadata
//   - Item: one billable line covering one route
//   - Status: the Draft -> Reviewed -> Finalized state machine
//
// Key business rules:
//   - Totals are always the sums over current items and are recomputed after
//     every item mutation
//   - An item's total cost always equals base cost plus add-ons
//   - OriginalDistance is recorded on the first manual recalculation and is
//     immutable afterwards
//   - Status transitions are one-directional; finalized invoices reject all
//     mutation with ErrInvoiceLocked
//
// Every mutating operation returns a new *Invoice value rather than mutating
// in place, so the session layer owns the single mutable reference.
package invoice
