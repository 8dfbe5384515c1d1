package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/invoice"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateInvoiceDetailsCommandIsNotConstructed = errors.New(
	"UpdateInvoiceDetailsCommand must be created via NewUpdateInvoiceDetailsCommand constructor",
)

// UpdateInvoiceDetailsCommand represents a request to replace the session
// invoice's header metadata. Allowed while the invoice is Draft or Reviewed;
// a Finalized invoice rejects the edit.
type UpdateInvoiceDetailsCommand struct { //nolint:recvcheck //using for validation
	details invoice.Details

	guard guard.ConstructorGuard
}

// NewUpdateInvoiceDetailsCommand creates a command carrying the new metadata.
func NewUpdateInvoiceDetailsCommand(details invoice.Details) UpdateInvoiceDetailsCommand {
	return UpdateInvoiceDetailsCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c UpdateInvoiceDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInvoiceDetailsCommandIsNotConstructed)
}

// Details returns the replacement metadata.
func (c UpdateInvoiceDetailsCommand) Details() invoice.Details {
	return c.details
}
