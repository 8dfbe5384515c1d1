package commands

import (
	"context"
)

// CorrectOrderCommandHandler applies manual corrections to one order in the
// working set. The order's missing-field set is recomputed by each applied
// correction, so a fixed order drops out of the incomplete list.
type CorrectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCorrectOrderCommandHandler creates a handler for order corrections.
func NewCorrectOrderCommandHandler(uowFactory OrderUoWFactory) CorrectOrderCommandHandler {
	return CorrectOrderCommandHandler{uowFactory: uowFactory}
}

// Handle loads the addressed order, applies the carried corrections and
// stores the result.
func (h *CorrectOrderCommandHandler) Handle(ctx context.Context, cmd CorrectOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	fields := cmd.Fields()
	if fields.Driver != nil {
		if err = aggregate.AssignDriver(*fields.Driver); err != nil {
			return err
		}
	}
	if fields.TripNumber != nil {
		if err = aggregate.AssignTripNumber(*fields.TripNumber); err != nil {
			return err
		}
	}
	if fields.Distance != nil {
		if err = aggregate.OverrideDistance(*fields.Distance); err != nil {
			return err
		}
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
