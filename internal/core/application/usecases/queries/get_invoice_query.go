package queries

import (
	"errors"
	"time"

	"dispatch/internal/pkg/guard"
)

var ErrGetInvoiceQueryIsNotConstructed = errors.New(
	"GetInvoiceQuery must be created via NewGetInvoiceQuery constructor",
)

// GetInvoiceQuery retrieves the session's current invoice with its items,
// totals and lifecycle status.
type GetInvoiceQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInvoiceQuery creates a query for the current session invoice.
func NewGetInvoiceQuery() GetInvoiceQuery {
	return GetInvoiceQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceQueryIsNotConstructed)
}

// GetInvoiceQueryResponse is the read model of the session invoice. Monetary
// amounts are rounded to cents at this boundary.
type GetInvoiceQueryResponse struct {
	Status            string
	Date              time.Time
	WeekEnding        time.Time
	BusinessName      string
	BusinessType      string
	ContactPerson     string
	TotalDistance     float64
	TotalCost         float64
	RecalculatedCount int
	LastModified      time.Time
	Items             []GetInvoiceItemResponse
}

// GetInvoiceItemResponse is the read model of one invoice line item.
type GetInvoiceItemResponse struct {
	OrderID          string
	Driver           string
	Pickup           string
	Dropoff          string
	Distance         float64
	OriginalDistance *float64
	RouteType        string
	Stops            int
	BaseCost         float64
	AddOns           float64
	TotalCost        float64
	Recalculated     bool
}
