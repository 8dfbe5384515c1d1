package ports

import (
	"context"

	"dispatch/internal/core/domain/model/invoice"
)

// InvoiceRepository defines the storage contract for the session's invoice.
// The session holds at most one invoice at a time; generation replaces it.
type InvoiceRepository interface {
	// Save stores the invoice as the session's current invoice, replacing
	// any previous one.
	Save(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves the session's current invoice.
	// Returns an ObjectNotFoundError when no invoice has been generated.
	Get(ctx context.Context) (*invoice.Invoice, error)
}
