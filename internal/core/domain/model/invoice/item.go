package invoice

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/billing"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("Item must be created via NewItem constructor")

// ItemParams carries the values needed to build one invoice line item.
type ItemParams struct {
	// OrderID identifies the billed route: the shared trip number of a
	// multi-stop route, or the representative order identifier of a
	// single-stop route.
	OrderID string

	Driver  string
	Pickup  string
	Dropoff string

	// Distance is the resolved route distance in miles. Zero when the
	// distance lookup failed and the route degraded.
	Distance float64

	RouteType route.Kind
	Stops     int

	BaseCost kernel.Money
	AddOns   kernel.Money
}

// Item is one billable invoice line, covering one route (not one order).
//
// Invariants:
//   - TotalCost always equals BaseCost + AddOns
//   - OriginalDistance is set on the first manual recalculation to the value
//     being replaced, and is never overwritten afterwards
type Item struct {
	orderID string
	driver  string
	pickup  string
	dropoff string

	distance  float64
	routeType route.Kind
	stops     int

	baseCost  kernel.Money
	addOns    kernel.Money
	totalCost kernel.Money

	originalDistance *float64
	recalculated     bool

	guard guard.ConstructorGuard
}

// NewItem creates an invoice line item and computes its total cost.
// The route type and stop count must be consistent; cost values must be
// properly constructed Money.
func NewItem(params ItemParams) (Item, error) {
	if params.OrderID == "" {
		return Item{}, errs.NewValueIsRequiredError("orderID")
	}
	if err := params.RouteType.Validate(); err != nil {
		return Item{}, err
	}
	if params.Stops < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("stops", fmt.Errorf("%d is not at least 1", params.Stops))
	}
	if params.RouteType != route.KindForStops(params.Stops) {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("routeType",
			fmt.Errorf("%s does not match %d stops", params.RouteType, params.Stops))
	}
	if params.Distance < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("distance", fmt.Errorf("%v is negative", params.Distance))
	}
	if err := errors.Join(params.BaseCost.Validate(), params.AddOns.Validate()); err != nil {
		return Item{}, err
	}

	total, err := params.BaseCost.Add(params.AddOns)
	if err != nil {
		return Item{}, err
	}

	return Item{
		orderID:   params.OrderID,
		driver:    params.Driver,
		pickup:    params.Pickup,
		dropoff:   params.Dropoff,
		distance:  params.Distance,
		routeType: params.RouteType,
		stops:     params.Stops,
		baseCost:  params.BaseCost,
		addOns:    params.AddOns,
		totalCost: total,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item was properly constructed through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// OrderID returns the billed route identifier.
func (i Item) OrderID() string {
	return i.orderID
}

// Driver returns the driver billed for the route.
func (i Item) Driver() string {
	return i.driver
}

// Pickup returns the first pickup address of the route.
func (i Item) Pickup() string {
	return i.pickup
}

// Dropoff returns the last delivery address of the route.
func (i Item) Dropoff() string {
	return i.dropoff
}

// Distance returns the billed distance in miles.
func (i Item) Distance() float64 {
	return i.distance
}

// RouteType returns the billing kind of the route.
func (i Item) RouteType() route.Kind {
	return i.routeType
}

// Stops returns the number of stops on the route.
func (i Item) Stops() int {
	return i.stops
}

// BaseCost returns the tier-derived base charge.
func (i Item) BaseCost() kernel.Money {
	return i.baseCost
}

// AddOns returns the per-extra-stop fees.
func (i Item) AddOns() kernel.Money {
	return i.addOns
}

// TotalCost returns BaseCost + AddOns.
func (i Item) TotalCost() kernel.Money {
	return i.totalCost
}

// OriginalDistance returns the distance the item carried before its first
// manual recalculation, or nil when the item was never recalculated.
func (i Item) OriginalDistance() *float64 {
	if i.originalDistance == nil {
		return nil
	}
	v := *i.originalDistance
	return &v
}

// Recalculated reports whether the item went through a manual
// recalculation.
func (i Item) Recalculated() bool {
	return i.recalculated
}

// withDistance returns a copy of the item repriced at the given distance
// under the supplied settings. The first recalculation records the replaced
// distance as OriginalDistance; later recalculations leave it untouched.
func (i Item) withDistance(miles float64, settings billing.Settings) (Item, error) {
	if err := i.Validate(); err != nil {
		return Item{}, err
	}
	if miles < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("distance", fmt.Errorf("%v is negative", miles))
	}

	base, addOns, err := settings.Quote(i.routeType, i.stops, miles)
	if err != nil {
		return Item{}, err
	}

	total, err := base.Add(addOns)
	if err != nil {
		return Item{}, err
	}

	next := i
	if next.originalDistance == nil {
		original := i.distance
		next.originalDistance = &original
	}
	next.distance = miles
	next.baseCost = base
	next.addOns = addOns
	next.totalCost = total
	next.recalculated = true

	return next, nil
}
