package commands

import (
	"context"

	"dispatch/internal/core/domain/model/invoice"
	"dispatch/internal/core/domain/model/issue"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// ErrNoRoutesResolved is returned when every route in the working set failed
// its distance lookup, so no billable invoice could be produced.
var ErrNoRoutesResolved = errs.NewObjectNotFoundError("resolved routes", nil)

// GenerateInvoiceResult carries the generated draft invoice together with the
// issues raised by failed distance lookups during this generation. Lookup
// issues are generation-scoped; they are not re-derivable by a later scan.
type GenerateInvoiceResult struct {
	Invoice          *invoice.Invoice
	ResolutionIssues []issue.Issue
}

// GenerateInvoiceCommandHandler orchestrates invoice generation: grouping the
// working set into routes, resolving distances in bounded concurrent waves,
// pricing each route, and storing the assembled draft invoice.
//
// Failure policy: a route whose distance lookup fails is billed at zero miles
// and flagged with an error-severity issue; generation aborts only when every
// route failed.
type GenerateInvoiceCommandHandler struct {
	uowFactory UoWFactory
	organizer  services.RouteOrganizer
	resolver   services.DistanceResolver
	pricing    services.PricingEngine
}

// NewGenerateInvoiceCommandHandler creates a handler wired with the domain
// services invoice generation runs through.
func NewGenerateInvoiceCommandHandler(
	uowFactory UoWFactory,
	organizer services.RouteOrganizer,
	resolver services.DistanceResolver,
	pricing services.PricingEngine,
) GenerateInvoiceCommandHandler {
	return GenerateInvoiceCommandHandler{
		uowFactory: uowFactory,
		organizer:  organizer,
		resolver:   resolver,
		pricing:    pricing,
	}
}

// Handle processes the generation command and returns the draft invoice.
// The working set must contain at least one order. The stored session invoice
// is replaced on success; a failed generation leaves it untouched.
func (h *GenerateInvoiceCommandHandler) Handle(
	ctx context.Context,
	cmd GenerateInvoiceCommand,
) (GenerateInvoiceResult, error) {
	if err := cmd.Validate(); err != nil {
		return GenerateInvoiceResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GenerateInvoiceResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return GenerateInvoiceResult{}, err
	}
	if len(orders) == 0 {
		return GenerateInvoiceResult{}, errs.NewValueIsRequiredError("orders")
	}

	routes, err := h.organizer.GroupByTrip(orders)
	if err != nil {
		return GenerateInvoiceResult{}, err
	}

	resolutions, err := h.resolver.ResolveAll(ctx, routes, cmd.OnProgress())
	if err != nil {
		return GenerateInvoiceResult{}, err
	}

	resolved := 0
	for _, resolution := range resolutions {
		if resolution.Resolved() {
			resolved++
		}
	}
	if resolved == 0 {
		return GenerateInvoiceResult{}, ErrNoRoutesResolved
	}

	items, resolutionIssues, err := h.pricing.BuildItems(routes, resolutions, cmd.Settings())
	if err != nil {
		return GenerateInvoiceResult{}, err
	}

	details := cmd.Details()
	aggregate, err := invoice.NewInvoice(invoice.Details{
		Date:          details.Date,
		WeekEnding:    details.WeekEnding,
		BusinessName:  details.BusinessName,
		BusinessType:  details.BusinessType,
		ContactPerson: details.ContactPerson,
	}, items)
	if err != nil {
		return GenerateInvoiceResult{}, err
	}

	if err = uow.InvoiceRepository().Save(ctx, aggregate); err != nil {
		return GenerateInvoiceResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return GenerateInvoiceResult{}, err
	}

	return GenerateInvoiceResult{
		Invoice:          aggregate,
		ResolutionIssues: resolutionIssues,
	}, nil
}
