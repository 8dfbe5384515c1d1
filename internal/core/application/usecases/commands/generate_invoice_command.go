package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/billing"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/guard"
)

var ErrGenerateInvoiceCommandIsNotConstructed = errors.New(
	"GenerateInvoiceCommand must be created via NewGenerateInvoiceCommand constructor",
)

// GenerateInvoiceCommand represents a request to build a draft invoice from
// the current working set of orders. Settings are captured at construction so
// mid-session tariff edits apply only to the next generation.
//
// Example:
//
//	cmd, err := NewGenerateInvoiceCommand(settings, details, func(current, total int) {
//	    fmt.Printf("resolved %d/%d routes\n", current, total)
//	})
//	if err != nil {
//	    return err
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoRoutesResolved) {
//	    // Every distance lookup failed; nothing billable was produced
//	    return err
//	}
type GenerateInvoiceCommand struct { //nolint:recvcheck //using for validation
	settings   billing.Settings
	details    InvoiceDetails
	onProgress services.ProgressFunc

	guard guard.ConstructorGuard
}

// InvoiceDetails carries the header metadata stamped onto the generated
// invoice. Every field is optional.
type InvoiceDetails struct {
	Date          time.Time
	WeekEnding    time.Time
	BusinessName  string
	BusinessType  string
	ContactPerson string
}

// NewGenerateInvoiceCommand creates a command to generate a draft invoice.
// onProgress may be nil when the caller does not need incremental feedback.
func NewGenerateInvoiceCommand(
	settings billing.Settings,
	details InvoiceDetails,
	onProgress services.ProgressFunc,
) (GenerateInvoiceCommand, error) {
	if err := settings.Validate(); err != nil {
		return GenerateInvoiceCommand{}, err
	}

	return GenerateInvoiceCommand{
		settings:   settings,
		details:    details,
		onProgress: onProgress,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrGenerateInvoiceCommandIsNotConstructed if validation fails.
func (c GenerateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrGenerateInvoiceCommandIsNotConstructed)
}

// Settings returns the tariff configuration captured for this generation.
func (c GenerateInvoiceCommand) Settings() billing.Settings {
	return c.settings
}

// Details returns the invoice header metadata.
func (c GenerateInvoiceCommand) Details() InvoiceDetails {
	return c.details
}

// OnProgress returns the progress callback, or nil.
func (c GenerateInvoiceCommand) OnProgress() services.ProgressFunc {
	return c.onProgress
}
