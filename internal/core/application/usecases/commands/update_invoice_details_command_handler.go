package commands

import (
	"context"
)

// UpdateInvoiceDetailsCommandHandler replaces the session invoice's header
// metadata. A Finalized invoice is rejected with invoice.ErrInvoiceLocked.
type UpdateInvoiceDetailsCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewUpdateInvoiceDetailsCommandHandler creates a handler for metadata edits.
func NewUpdateInvoiceDetailsCommandHandler(uowFactory InvoiceUoWFactory) UpdateInvoiceDetailsCommandHandler {
	return UpdateInvoiceDetailsCommandHandler{uowFactory: uowFactory}
}

// Handle processes the metadata update against the current session invoice.
func (h *UpdateInvoiceDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateInvoiceDetailsCommand) error {
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

	updated, err := aggregate.UpdateDetails(cmd.Details())
	if err != nil {
		return err
	}

	if err = repo.Save(ctx, updated); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
