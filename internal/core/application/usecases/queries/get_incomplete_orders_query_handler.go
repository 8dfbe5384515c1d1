package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetIncompleteOrdersQueryHandler retrieves orders pending correction from
// the session store.
type GetIncompleteOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetIncompleteOrdersQueryHandler creates a handler for incomplete-order
// queries.
func NewGetIncompleteOrdersQueryHandler(orderRepo ports.OrderRepository) GetIncompleteOrdersQueryHandler {
	return GetIncompleteOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle executes the query. Results come back in ingestion order.
func (h GetIncompleteOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetIncompleteOrdersQuery,
) ([]GetIncompleteOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.GetAllIncomplete(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]GetIncompleteOrdersQueryResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, GetIncompleteOrdersQueryResponse{
			ID:            o.ID(),
			Driver:        o.Driver(),
			TripNumber:    o.TripNumber(),
			MissingFields: o.MissingFields(),
		})
	}

	return responses, nil
}
