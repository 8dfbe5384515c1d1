package invoice_test

import (
	"testing"

	"dispatch/internal/core/domain/model/billing"
	"dispatch/internal/core/domain/model/invoice"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func singleItem(t *testing.T, orderID string, distance float64, base float64) invoice.Item {
	t.Helper()
	item, err := invoice.NewItem(invoice.ItemParams{
		OrderID:   orderID,
		Driver:    "Alice",
		Pickup:    "Depot",
		Dropoff:   "Market St",
		Distance:  distance,
		RouteType: route.Single,
		Stops:     1,
		BaseCost:  money(t, base),
		AddOns:    money(t, 0),
	})
	require.NoError(t, err)
	return item
}

func draftInvoice(t *testing.T, items ...invoice.Item) *invoice.Invoice {
	t.Helper()
	inv, err := invoice.NewInvoice(invoice.Details{BusinessName: "Acme Logistics"}, items)
	require.NoError(t, err)
	return inv
}

func TestNewItem(t *testing.T) {
	t.Run("total cost equals base plus add-ons", func(t *testing.T) {
		item, err := invoice.NewItem(invoice.ItemParams{
			OrderID:   "TR-100",
			Driver:    "Alice",
			Distance:  60,
			RouteType: route.MultiStop,
			Stops:     3,
			BaseCost:  money(t, 66),
			AddOns:    money(t, 24),
		})

		require.NoError(t, err)
		assert.InDelta(t, 90.0, item.TotalCost().Amount(), 1e-9)
		assert.Nil(t, item.OriginalDistance())
		assert.False(t, item.Recalculated())
	})

	t.Run("route type must match stop count", func(t *testing.T) {
		_, err := invoice.NewItem(invoice.ItemParams{
			OrderID:   "TR-100",
			Distance:  10,
			RouteType: route.Single,
			Stops:     3,
			BaseCost:  money(t, 25),
			AddOns:    money(t, 0),
		})

		require.Error(t, err)
	})

	t.Run("order id is required", func(t *testing.T) {
		_, err := invoice.NewItem(invoice.ItemParams{
			Distance:  10,
			RouteType: route.Single,
			Stops:     1,
			BaseCost:  money(t, 25),
			AddOns:    money(t, 0),
		})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewInvoice(t *testing.T) {
	t.Run("starts as draft with summed totals", func(t *testing.T) {
		inv := draftInvoice(t,
			singleItem(t, "a", 10, 25),
			singleItem(t, "b", 40, 44),
		)

		assert.Equal(t, invoice.Draft, inv.Status())
		assert.InDelta(t, 50.0, inv.TotalDistance(), 1e-9)
		assert.InDelta(t, 69.0, inv.TotalCost().Amount(), 1e-9)
		assert.Zero(t, inv.RecalculatedCount())
		assert.False(t, inv.LastModified().IsZero())
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		_, err := invoice.NewInvoice(invoice.Details{}, nil)

		require.Error(t, err)
		assert.Equal(t, invoice.ErrInvoiceHasNoItems, err)
	})

	t.Run("nil invoice fails validation", func(t *testing.T) {
		var inv *invoice.Invoice

		require.Error(t, inv.Validate())
	})
}

func TestInvoice_Lifecycle(t *testing.T) {
	t.Run("finalize from draft is rejected", func(t *testing.T) {
		inv := draftInvoice(t, singleItem(t, "a", 10, 25))

		_, err := inv.Finalize()

		require.Error(t, err)
		require.ErrorIs(t, err, invoice.ErrInvalidStateTransition)
		assert.Equal(t, invoice.Draft, inv.Status(), "original invoice unchanged")
	})

	t.Run("review then finalize is the only legal path", func(t *testing.T) {
		inv := draftInvoice(t, singleItem(t, "a", 10, 25))

		reviewed, err := inv.Review()
		require.NoError(t, err)
		assert.Equal(t, invoice.Reviewed, reviewed.Status())
		assert.Equal(t, invoice.Draft, inv.Status(), "review returns a new value")

		finalized, err := reviewed.Finalize()
		require.NoError(t, err)
		assert.Equal(t, invoice.Finalized, finalized.Status())
	})

	t.Run("double review is rejected", func(t *testing.T) {
		inv := draftInvoice(t, singleItem(t, "a", 10, 25))
		reviewed, _ := inv.Review()

		_, err := reviewed.Review()

		require.Error(t, err)
		require.ErrorIs(t, err, invoice.ErrInvalidStateTransition)
	})

	t.Run("finalized invoice rejects recalculation with locked error", func(t *testing.T) {
		inv := draftInvoice(t, singleItem(t, "a", 10, 25))
		reviewed, _ := inv.Review()
		finalized, _ := reviewed.Finalize()

		_, err := finalized.RecalculateItem(0, 42, billing.DefaultSettings())

		require.Error(t, err)
		require.ErrorIs(t, err, invoice.ErrInvoiceLocked)
	})

	t.Run("finalized invoice rejects metadata edits", func(t *testing.T) {
		inv := draftInvoice(t, singleItem(t, "a", 10, 25))
		reviewed, _ := inv.Review()
		finalized, _ := reviewed.Finalize()

		_, err := finalized.UpdateDetails(invoice.Details{BusinessName: "Other"})

		require.Error(t, err)
		require.ErrorIs(t, err, invoice.ErrInvoiceLocked)
	})
}

func TestInvoice_UpdateDetails(t *testing.T) {
	t.Run("allowed in draft and reviewed", func(t *testing.T) {
		inv := draftInvoice(t, singleItem(t, "a", 10, 25))

		updated, err := inv.UpdateDetails(invoice.Details{BusinessName: "Acme", ContactPerson: "Pat"})
		require.NoError(t, err)
		assert.Equal(t, "Pat", updated.Details().ContactPerson)

		reviewed, _ := updated.Review()
		again, err := reviewed.UpdateDetails(invoice.Details{BusinessName: "Acme", ContactPerson: "Sam"})
		require.NoError(t, err)
		assert.Equal(t, "Sam", again.Details().ContactPerson)
	})

	t.Run("does not affect totals", func(t *testing.T) {
		inv := draftInvoice(t, singleItem(t, "a", 10, 25))

		updated, err := inv.UpdateDetails(invoice.Details{BusinessName: "Acme"})

		require.NoError(t, err)
		assert.InDelta(t, inv.TotalCost().Amount(), updated.TotalCost().Amount(), 1e-9)
		assert.InDelta(t, inv.TotalDistance(), updated.TotalDistance(), 1e-9)
	})
}

func TestInvoice_RecalculateItem(t *testing.T) {
	settings := billing.DefaultSettings()

	t.Run("reprices the item and refreshes totals", func(t *testing.T) {
		inv := draftInvoice(t,
			singleItem(t, "a", 10, 25),
			singleItem(t, "b", 40, 44),
		)

		updated, err := inv.RecalculateItem(1, 50, settings)

		require.NoError(t, err)
		item, err := updated.Item(1)
		require.NoError(t, err)
		assert.InDelta(t, 50.0, item.Distance(), 1e-9)
		assert.InDelta(t, 55.0, item.TotalCost().Amount(), 1e-9, "50mi at $1.10/mi")
		assert.True(t, item.Recalculated())
		assert.Equal(t, 1, updated.RecalculatedCount())
		assert.InDelta(t, 60.0, updated.TotalDistance(), 1e-9)
		assert.InDelta(t, 80.0, updated.TotalCost().Amount(), 1e-9)

		// The original invoice value is untouched.
		assert.InDelta(t, 50.0, inv.TotalDistance(), 1e-9)
		assert.Zero(t, inv.RecalculatedCount())
	})

	t.Run("recalculating under the flat threshold applies the flat rate", func(t *testing.T) {
		inv := draftInvoice(t, singleItem(t, "a", 40, 44))

		updated, err := inv.RecalculateItem(0, 12, settings)

		require.NoError(t, err)
		item, _ := updated.Item(0)
		assert.InDelta(t, 25.0, item.TotalCost().Amount(), 1e-9)
	})

	t.Run("original distance survives repeated recalculation", func(t *testing.T) {
		inv := draftInvoice(t, singleItem(t, "a", 10, 25))

		once, err := inv.RecalculateItem(0, 20, settings)
		require.NoError(t, err)
		twice, err := once.RecalculateItem(0, 30, settings)
		require.NoError(t, err)

		item, _ := twice.Item(0)
		require.NotNil(t, item.OriginalDistance())
		assert.InDelta(t, 10.0, *item.OriginalDistance(), 1e-9)
		assert.InDelta(t, 30.0, item.Distance(), 1e-9)
	})

	t.Run("totals invariant holds after every mutation", func(t *testing.T) {
		inv := draftInvoice(t,
			singleItem(t, "a", 10, 25),
			singleItem(t, "b", 40, 44),
		)

		updated, err := inv.RecalculateItem(0, 33.3, settings)
		require.NoError(t, err)

		var wantCost, wantDistance float64
		for _, item := range updated.Items() {
			wantCost += item.TotalCost().Amount()
			wantDistance += item.Distance()
		}
		assert.InDelta(t, wantCost, updated.TotalCost().Amount(), 1e-9)
		assert.InDelta(t, wantDistance, updated.TotalDistance(), 1e-9)
	})

	t.Run("out of range index is rejected", func(t *testing.T) {
		inv := draftInvoice(t, singleItem(t, "a", 10, 25))

		_, err := inv.RecalculateItem(3, 20, settings)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("negative distance is rejected", func(t *testing.T) {
		inv := draftInvoice(t, singleItem(t, "a", 10, 25))

		_, err := inv.RecalculateItem(0, -5, settings)

		require.Error(t, err)
	})
}
