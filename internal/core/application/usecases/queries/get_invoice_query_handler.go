package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetInvoiceQueryHandler reads the session's current invoice and flattens it
// into a display-ready response with cent-rounded amounts.
type GetInvoiceQueryHandler struct {
	invoiceRepo ports.InvoiceRepository
}

// NewGetInvoiceQueryHandler creates a handler for invoice queries.
func NewGetInvoiceQueryHandler(invoiceRepo ports.InvoiceRepository) GetInvoiceQueryHandler {
	return GetInvoiceQueryHandler{invoiceRepo: invoiceRepo}
}

// Handle executes the query. Returns an ObjectNotFoundError when no invoice
// has been generated yet.
func (h GetInvoiceQueryHandler) Handle(
	ctx context.Context,
	query GetInvoiceQuery,
) (GetInvoiceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInvoiceQueryResponse{}, err
	}

	aggregate, err := h.invoiceRepo.Get(ctx)
	if err != nil {
		return GetInvoiceQueryResponse{}, err
	}

	details := aggregate.Details()
	response := GetInvoiceQueryResponse{
		Status:            aggregate.Status().String(),
		Date:              details.Date,
		WeekEnding:        details.WeekEnding,
		BusinessName:      details.BusinessName,
		BusinessType:      details.BusinessType,
		ContactPerson:     details.ContactPerson,
		TotalDistance:     aggregate.TotalDistance(),
		TotalCost:         aggregate.TotalCost().Rounded(),
		RecalculatedCount: aggregate.RecalculatedCount(),
		LastModified:      aggregate.LastModified(),
	}

	for _, item := range aggregate.Items() {
		response.Items = append(response.Items, GetInvoiceItemResponse{
			OrderID:          item.OrderID(),
			Driver:           item.Driver(),
			Pickup:           item.Pickup(),
			Dropoff:          item.Dropoff(),
			Distance:         item.Distance(),
			OriginalDistance: item.OriginalDistance(),
			RouteType:        item.RouteType().String(),
			Stops:            item.Stops(),
			BaseCost:         item.BaseCost().Rounded(),
			AddOns:           item.AddOns().Rounded(),
			TotalCost:        item.TotalCost().Rounded(),
			Recalculated:     item.Recalculated(),
		})
	}

	return response, nil
}
