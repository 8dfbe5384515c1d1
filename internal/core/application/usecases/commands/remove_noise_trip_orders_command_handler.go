package commands

import (
	"context"

	"dispatch/internal/core/domain/services"
)

// RemoveNoiseTripOrdersCommandHandler drops orders with placeholder trip
// numbers from the working set and reports how many were removed, so the
// caller can notify the dispatcher.
type RemoveNoiseTripOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	organizer  services.RouteOrganizer
}

// NewRemoveNoiseTripOrdersCommandHandler creates a handler using the given
// organizer's noise predicate.
func NewRemoveNoiseTripOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	organizer services.RouteOrganizer,
) RemoveNoiseTripOrdersCommandHandler {
	return RemoveNoiseTripOrdersCommandHandler{
		uowFactory: uowFactory,
		organizer:  organizer,
	}
}

// Handle replaces the working set with its noise-free subset and returns the
// number of removed orders.
func (h *RemoveNoiseTripOrdersCommandHandler) Handle(ctx context.Context, cmd RemoveNoiseTripOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	orders, err := repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	kept, removed := h.organizer.RemoveNoiseTripOrders(orders)
	if removed == 0 {
		return 0, uow.Commit(ctx)
	}

	if err = repo.ReplaceAll(ctx, kept); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
