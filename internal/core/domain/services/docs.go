// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the dispatch system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - RouteOrganizer: groups orders into routes and filters trip-number noise
//   - DistanceResolver: measures route distances through the mapping service
//     in bounded concurrent waves with progress reporting
//   - PricingEngine: converts resolved routes into invoice line items under
//     the tiered tariff
//   - IssueDetector: scans the working set for anomalies needing review
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
