package commands

import (
	"context"
)

// ReviewInvoiceCommandHandler moves the session invoice from Draft to
// Reviewed. A Reviewed or Finalized invoice is rejected with
// invoice.ErrInvalidStateTransition.
type ReviewInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewReviewInvoiceCommandHandler creates a handler for the review transition.
func NewReviewInvoiceCommandHandler(uowFactory InvoiceUoWFactory) ReviewInvoiceCommandHandler {
	return ReviewInvoiceCommandHandler{uowFactory: uowFactory}
}

// Handle processes the review command against the current session invoice.
func (h *ReviewInvoiceCommandHandler) Handle(ctx context.Context, cmd ReviewInvoiceCommand) error {
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

	reviewed, err := aggregate.Review()
	if err != nil {
		return err
	}

	if err = repo.Save(ctx, reviewed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
