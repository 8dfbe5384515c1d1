package commands

import (
	"context"
)

// FinalizeInvoiceCommandHandler moves the session invoice from Reviewed to
// Finalized. A Draft invoice is rejected with
// invoice.ErrInvalidStateTransition; there is no path back from Finalized.
type FinalizeInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewFinalizeInvoiceCommandHandler creates a handler for the finalize transition.
func NewFinalizeInvoiceCommandHandler(uowFactory InvoiceUoWFactory) FinalizeInvoiceCommandHandler {
	return FinalizeInvoiceCommandHandler{uowFactory: uowFactory}
}

// Handle processes the finalize command against the current session invoice.
func (h *FinalizeInvoiceCommandHandler) Handle(ctx context.Context, cmd FinalizeInvoiceCommand) error {
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

	repo := uow.InvoiceRepository()
	aggregate, err := repo.Get(ctx)
	if err != nil {
		return err
	}

	finalized, err := aggregate.Finalize()
	if err != nil {
		return err
	}

	if err = repo.Save(ctx, finalized); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
