package commands

import (
	"errors"
	"math"

	"dispatch/internal/core/domain/model/billing"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrRecalculateInvoiceItemCommandIsNotConstructed = errors.New(
		"RecalculateInvoiceItemCommand must be created via NewRecalculateInvoiceItemCommand constructor",
	)

	// ErrManualAdjustmentDisabled is returned when the current settings do
	// not allow manual distance corrections.
	ErrManualAdjustmentDisabled = errors.New("manual distance adjustment is disabled in settings")
)

// RecalculateInvoiceItemCommand represents a request to manually correct one
// line item's distance and reprice it under the current tariff.
//
// Example:
//
//	cmd, err := NewRecalculateInvoiceItemCommand(2, 18.4, settings)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); errors.Is(err, invoice.ErrInvoiceLocked) {
//	    // The invoice was already finalized
//	}
type RecalculateInvoiceItemCommand struct { //nolint:recvcheck //using for validation
	itemIndex int
	miles     float64
	settings  billing.Settings

	guard guard.ConstructorGuard
}

// NewRecalculateInvoiceItemCommand creates a command carrying the corrected
// distance. The index is range-checked against the invoice by the handler.
func NewRecalculateInvoiceItemCommand(
	itemIndex int,
	miles float64,
	settings billing.Settings,
) (RecalculateInvoiceItemCommand, error) {
	if itemIndex < 0 {
		return RecalculateInvoiceItemCommand{}, errs.NewValueIsOutOfRangeError("itemIndex", itemIndex, 0, math.MaxInt)
	}
	if miles < 0 {
		return RecalculateInvoiceItemCommand{}, errs.NewValueIsInvalidError("miles")
	}
	if err := settings.Validate(); err != nil {
		return RecalculateInvoiceItemCommand{}, err
	}
	if !settings.AllowManualDistanceAdjustment {
		return RecalculateInvoiceItemCommand{}, ErrManualAdjustmentDisabled
	}

	return RecalculateInvoiceItemCommand{
		itemIndex: itemIndex,
		miles:     miles,
		settings:  settings,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecalculateInvoiceItemCommand) Validate() error {
	return c.guard.Validate(ErrRecalculateInvoiceItemCommandIsNotConstructed)
}

// ItemIndex returns the position of the line item to correct.
func (c RecalculateInvoiceItemCommand) ItemIndex() int {
	return c.itemIndex
}

// Miles returns the corrected distance.
func (c RecalculateInvoiceItemCommand) Miles() float64 {
	return c.miles
}

// Settings returns the tariff used to reprice the item.
func (c RecalculateInvoiceItemCommand) Settings() billing.Settings {
	return c.settings
}
