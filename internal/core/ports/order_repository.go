package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for the session's working set
// of delivery orders. The working set is what invoice generation and issue
// scans read from.
type OrderRepository interface {
	// Add stores a new order in the working set.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores changes to an existing order.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves the full working set in ingestion order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetAllIncomplete retrieves orders with one or more missing tracked
	// fields, in ingestion order.
	GetAllIncomplete(ctx context.Context) ([]*order.Order, error)

	// ReplaceAll swaps the entire working set for the given orders. Used by
	// the bulk removal workflows.
	ReplaceAll(ctx context.Context, aggregates []*order.Order) error
}
