package services

import (
	"fmt"

	"dispatch/internal/core/domain/model/billing"
	"dispatch/internal/core/domain/model/invoice"
	"dispatch/internal/core/domain/model/issue"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/pkg/errs"
)

// PricingEngine converts resolved routes into invoice line items under the
// tiered tariff carried by billing.Settings.
//
// A route whose distance lookup failed still produces a line item: its
// distance is recorded as zero and an error-severity issue is raised so the
// dispatcher can correct it manually. Generation never aborts for one failed
// lookup.
type PricingEngine struct{}

// NewPricingEngine creates a new PricingEngine instance.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// BuildItems prices every route, pairing routes[i] with resolutions[i].
// Items come back in route order. Settings are read fresh on every call so
// mid-session tariff changes apply to the next generation only.
func (p PricingEngine) BuildItems(
	routes []route.Route,
	resolutions []Resolution,
	settings billing.Settings,
) ([]invoice.Item, []issue.Issue, error) {
	if len(routes) != len(resolutions) {
		return nil, nil, errs.NewValueIsInvalidErrorWithCause("resolutions",
			fmt.Errorf("%d resolutions for %d routes", len(resolutions), len(routes)))
	}

	items := make([]invoice.Item, 0, len(routes))
	var issues []issue.Issue

	for i, rt := range routes {
		resolution := resolutions[i]

		miles := resolution.Miles
		if !resolution.Resolved() {
			miles = 0
			issues = append(issues, issue.Issue{
				OrderID:  rt.Representative().ID().String(),
				Driver:   rt.Driver(),
				Severity: issue.Error,
				Message:  "distance could not be resolved; invoiced at zero miles pending manual correction",
				Details: map[string]string{
					"tripNumber": rt.Key(),
					"cause":      resolution.Err.Error(),
				},
			})
		}

		base, addOns, err := settings.Quote(rt.Kind(), rt.Stops(), miles)
		if err != nil {
			return nil, nil, err
		}

		item, err := invoice.NewItem(invoice.ItemParams{
			OrderID:   rt.Key(),
			Driver:    rt.Driver(),
			Pickup:    rt.Pickup(),
			Dropoff:   rt.Dropoff(),
			Distance:  miles,
			RouteType: rt.Kind(),
			Stops:     rt.Stops(),
			BaseCost:  base,
			AddOns:    addOns,
		})
		if err != nil {
			return nil, nil, err
		}

		items = append(items, item)
	}

	return items, issues, nil
}
