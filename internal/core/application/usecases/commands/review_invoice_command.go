package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrReviewInvoiceCommandIsNotConstructed = errors.New(
	"ReviewInvoiceCommand must be created via NewReviewInvoiceCommand constructor",
)

// ReviewInvoiceCommand represents a request to mark the session invoice as
// reviewed. Only a Draft invoice can be reviewed.
type ReviewInvoiceCommand struct {
	guard guard.ConstructorGuard
}

// NewReviewInvoiceCommand creates a command to review the session invoice.
func NewReviewInvoiceCommand() ReviewInvoiceCommand {
	return ReviewInvoiceCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ReviewInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrReviewInvoiceCommandIsNotConstructed)
}
