package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrFinalizeInvoiceCommandIsNotConstructed = errors.New(
	"FinalizeInvoiceCommand must be created via NewFinalizeInvoiceCommand constructor",
)

// FinalizeInvoiceCommand represents a request to finalize the session
// invoice. Only a Reviewed invoice can be finalized; finalization locks the
// invoice against all further mutation.
type FinalizeInvoiceCommand struct {
	guard guard.ConstructorGuard
}

// NewFinalizeInvoiceCommand creates a command to finalize the session invoice.
func NewFinalizeInvoiceCommand() FinalizeInvoiceCommand {
	return FinalizeInvoiceCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c FinalizeInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeInvoiceCommandIsNotConstructed)
}
