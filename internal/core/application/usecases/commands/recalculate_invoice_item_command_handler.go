package commands

import (
	"context"
)

// RecalculateInvoiceItemCommandHandler applies a manual distance correction
// to one line item of the session invoice. The item keeps its first-ever
// distance as originalDistance; a Finalized invoice rejects the edit with
// invoice.ErrInvoiceLocked.
type RecalculateInvoiceItemCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewRecalculateInvoiceItemCommandHandler creates a handler for manual
// distance corrections.
func NewRecalculateInvoiceItemCommandHandler(uowFactory InvoiceUoWFactory) RecalculateInvoiceItemCommandHandler {
	return RecalculateInvoiceItemCommandHandler{uowFactory: uowFactory}
}

// Handle reprices the addressed item and stores the updated invoice.
func (h *RecalculateInvoiceItemCommandHandler) Handle(ctx context.Context, cmd RecalculateInvoiceItemCommand) error {
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

	updated, err := aggregate.RecalculateItem(cmd.ItemIndex(), cmd.Miles(), cmd.Settings())
	if err != nil {
		return err
	}

	if err = repo.Save(ctx, updated); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
