// Package route provides the trip grouping model for the dispatch invoicing
// system. A route is one or more delivery orders sharing a trip identifier,
// billed as a single invoice line item.
//
// The package includes:
//   - Route: a derived, never-persisted group of orders with a stable key
//   - Kind: the billing discriminator ("single" vs "multi-stop"), computed
//     once at grouping time
//
// Key business rules:
//   - Every order with a non-empty trip number belongs to exactly one route
//   - Orders without a trip number are each their own single-stop route keyed
//     by order identifier
//   - A trip number shared by only one order still yields a single-stop route
//   - Member order preserves first-seen input order; visitation order for
//     distance purposes sorts by expected ready time when available
package route
