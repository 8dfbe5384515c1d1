package invoice

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/billing"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
	// created through the NewInvoice factory method.
	ErrInvoiceIsNotConstructed = errs.NewValueIsRequiredError("Invoice must be created via NewInvoice constructor")

	// ErrInvoiceLocked is returned when a mutating operation is attempted on
	// a finalized invoice. The invoice is left unchanged.
	ErrInvoiceLocked = errors.New("invoice locked: finalized invoices reject mutation")

	// ErrInvoiceHasNoItems is returned when an invoice is constructed without
	// line items.
	ErrInvoiceHasNoItems = errs.NewValueIsRequiredError("invoice items")
)

// Details carries the billing metadata of an invoice. It is editable while
// the invoice is in Draft or Reviewed status and frozen by finalization.
type Details struct {
	Date          time.Time
	WeekEnding    time.Time
	BusinessName  string
	BusinessType  string
	ContactPerson string
}

// Invoice is the aggregate produced by one generation run.
//
// Invariants:
//   - TotalDistance and TotalCost are always the sums over the current items,
//     recomputed after every item mutation
//   - RecalculatedCount equals the number of items with the recalculated flag
//   - Status transitions follow the Draft -> Reviewed -> Finalized machine
//   - LastModified is bumped on every mutation
//
// Every mutating operation treats the receiver as immutable and returns a new
// *Invoice, so the session layer can keep a single reference, diff states and
// undo safely.
type Invoice struct {
	details Details

	items []Item

	totalDistance float64
	totalCost     kernel.Money

	status            Status
	recalculatedCount int
	lastModified      time.Time

	guard guard.ConstructorGuard
}

// NewInvoice creates a Draft invoice from line items produced by one
// generation run. Items keep the given order (route discovery order), and the
// invoice totals are computed from them at full precision.
func NewInvoice(details Details, items []Item) (*Invoice, error) {
	if len(items) == 0 {
		return nil, ErrInvoiceHasNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	inv := &Invoice{
		details:      details,
		items:        copyItems(items),
		status:       Draft,
		lastModified: time.Now(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := inv.recomputeTotals(); err != nil {
		return nil, err
	}

	return inv, nil
}

// Validate ensures the Invoice was properly constructed through NewInvoice.
func (inv *Invoice) Validate() error {
	if inv == nil {
		return ErrInvoiceIsNotConstructed
	}
	return inv.guard.Validate(ErrInvoiceIsNotConstructed)
}

// Details returns the invoice metadata.
func (inv *Invoice) Details() Details {
	return inv.details
}

// Items returns the line items in route discovery order.
// The slice is a copy; items themselves are immutable values.
func (inv *Invoice) Items() []Item {
	return copyItems(inv.items)
}

// Item returns the line item at the given index.
func (inv *Invoice) Item(index int) (Item, error) {
	if index < 0 || index >= len(inv.items) {
		return Item{}, errs.NewValueIsOutOfRangeError("item index", index, 0, len(inv.items)-1)
	}
	return inv.items[index], nil
}

// TotalDistance returns the sum of item distances in miles.
func (inv *Invoice) TotalDistance() float64 {
	return inv.totalDistance
}

// TotalCost returns the sum of item total costs.
func (inv *Invoice) TotalCost() kernel.Money {
	return inv.totalCost
}

// Status returns the lifecycle status.
func (inv *Invoice) Status() Status {
	return inv.status
}

// RecalculatedCount returns the number of manually recalculated items.
func (inv *Invoice) RecalculatedCount() int {
	return inv.recalculatedCount
}

// LastModified returns the timestamp of the most recent mutation.
func (inv *Invoice) LastModified() time.Time {
	return inv.lastModified
}

// Review returns a copy of the invoice transitioned to Reviewed.
// Fails with ErrInvalidStateTransition unless the invoice is a Draft.
func (inv *Invoice) Review() (*Invoice, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	newStatus, err := inv.status.Review()
	if err != nil {
		return nil, err
	}

	next := inv.clone()
	next.status = newStatus
	next.lastModified = time.Now()
	return next, nil
}

// Finalize returns a copy of the invoice transitioned to Finalized.
// Fails with ErrInvalidStateTransition unless the invoice is Reviewed;
// finalizing straight from Draft is not a legal path.
func (inv *Invoice) Finalize() (*Invoice, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	newStatus, err := inv.status.Finalize()
	if err != nil {
		return nil, err
	}

	next := inv.clone()
	next.status = newStatus
	next.lastModified = time.Now()
	return next, nil
}

// UpdateDetails returns a copy of the invoice with new billing metadata.
// Allowed in Draft and Reviewed; a finalized invoice fails with
// ErrInvoiceLocked. Metadata edits do not affect totals.
func (inv *Invoice) UpdateDetails(details Details) (*Invoice, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	if inv.status.IsFinal() {
		return nil, ErrInvoiceLocked
	}

	next := inv.clone()
	next.details = details
	next.lastModified = time.Now()
	return next, nil
}

// RecalculateItem returns a copy of the invoice with the item at index
// repriced at the given distance under the supplied settings.
//
// The item keeps its first-ever distance in OriginalDistance, gains the
// recalculated flag, and the invoice totals, recalculated count and
// LastModified are refreshed. A finalized invoice fails with
// ErrInvoiceLocked before any change is made.
func (inv *Invoice) RecalculateItem(index int, miles float64, settings billing.Settings) (*Invoice, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}
	if inv.status.IsFinal() {
		return nil, ErrInvoiceLocked
	}
	if index < 0 || index >= len(inv.items) {
		return nil, errs.NewValueIsOutOfRangeError("item index", index, 0, len(inv.items)-1)
	}

	repriced, err := inv.items[index].withDistance(miles, settings)
	if err != nil {
		return nil, err
	}

	next := inv.clone()
	next.items[index] = repriced
	if err := next.recomputeTotals(); err != nil {
		return nil, err
	}
	next.lastModified = time.Now()
	return next, nil
}

// clone returns a deep copy of the invoice sharing no mutable state with the
// receiver.
func (inv *Invoice) clone() *Invoice {
	next := *inv
	next.items = copyItems(inv.items)
	return &next
}

// recomputeTotals rebuilds the invoice-level sums from the current items.
// Accumulation happens at full precision; rounding is left to the Money
// display boundary.
func (inv *Invoice) recomputeTotals() error {
	var distance, cost float64
	recalculated := 0

	for _, item := range inv.items {
		distance += item.Distance()
		cost += item.TotalCost().Amount()
		if item.Recalculated() {
			recalculated++
		}
	}

	total, err := kernel.NewMoney(cost)
	if err != nil {
		return fmt.Errorf("recompute invoice totals: %w", err)
	}

	inv.totalDistance = distance
	inv.totalCost = total
	inv.recalculatedCount = recalculated
	return nil
}

func copyItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
