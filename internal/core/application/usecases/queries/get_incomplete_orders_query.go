// Package queries contains read-only operations over the session state.
// Implements the Query side of the CQRS architecture: handlers read from the
// repositories directly and never mutate anything.
package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetIncompleteOrdersQueryIsNotConstructed = errors.New(
	"GetIncompleteOrdersQuery must be created via NewGetIncompleteOrdersQuery constructor",
)

// GetIncompleteOrdersQuery retrieves every order with one or more missing
// tracked fields, so the dispatcher can correct them before generation.
//
// Example:
//
//	query := NewGetIncompleteOrdersQuery()
//	handler := NewGetIncompleteOrdersQueryHandler(orderRepo)
//
//	incomplete, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get incomplete orders: %w", err)
//	}
//	fmt.Printf("%d orders need correction\n", len(incomplete))
type GetIncompleteOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetIncompleteOrdersQuery creates a query to retrieve incomplete orders.
func NewGetIncompleteOrdersQuery() GetIncompleteOrdersQuery {
	return GetIncompleteOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetIncompleteOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetIncompleteOrdersQueryIsNotConstructed)
}

// GetIncompleteOrdersQueryResponse lists one incomplete order and the names
// of its missing fields.
type GetIncompleteOrdersQueryResponse struct {
	ID            kernel.UUID
	Driver        string
	TripNumber    string
	MissingFields []string
}
