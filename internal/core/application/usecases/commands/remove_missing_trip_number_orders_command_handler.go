package commands

import (
	"context"

	"dispatch/internal/core/domain/services"
)

// RemoveMissingTripNumberOrdersCommandHandler drops orders without a trip
// number from the working set and reports how many were removed.
type RemoveMissingTripNumberOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	organizer  services.RouteOrganizer
}

// NewRemoveMissingTripNumberOrdersCommandHandler creates a handler for the
// bulk removal.
func NewRemoveMissingTripNumberOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	organizer services.RouteOrganizer,
) RemoveMissingTripNumberOrdersCommandHandler {
	return RemoveMissingTripNumberOrdersCommandHandler{
		uowFactory: uowFactory,
		organizer:  organizer,
	}
}

// Handle replaces the working set with the orders that carry a trip number
// and returns the number of removed orders.
func (h *RemoveMissingTripNumberOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd RemoveMissingTripNumberOrdersCommand,
) (int, error) {
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

	kept, removed := h.organizer.RemoveMissingTripNumberOrders(orders)
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
