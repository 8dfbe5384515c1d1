package route

import (
	"sort"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrRouteIsNotConstructed is returned when a Route instance was not
	// created through the NewRoute factory method.
	ErrRouteIsNotConstructed = errs.NewValueIsRequiredError("Route must be created via NewRoute constructor")

	// ErrRouteKeyIsRequired is returned when a route is constructed without a
	// grouping key.
	ErrRouteKeyIsRequired = errs.NewValueIsRequiredError("route key")

	// ErrRouteHasNoOrders is returned when a route is constructed with an
	// empty order group.
	ErrRouteHasNoOrders = errs.NewValueIsRequiredError("route orders")
)

// Route is a group of delivery orders billed as a single line item.
// Orders sharing one non-empty trip number form one route; an order without a
// trip number is its own single-stop route keyed by its identifier.
//
// Route is a value derived on demand by the route organizer; it is never
// persisted. Orders keep the relative order in which they were first seen in
// the input sequence, which makes grouping stable and keeps invoice items in
// discovery order.
type Route struct {
	key    string
	kind   Kind
	orders []*order.Order

	guard guard.ConstructorGuard
}

// NewRoute creates a route from a grouping key and its member orders.
// The kind is computed once from the member count: two or more orders make a
// multi-stop route, one order makes a single-stop route — even when that
// order carries a shared-looking trip number.
func NewRoute(key string, orders []*order.Order) (Route, error) {
	if key == "" {
		return Route{}, ErrRouteKeyIsRequired
	}
	if len(orders) == 0 {
		return Route{}, ErrRouteHasNoOrders
	}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return Route{}, err
		}
	}

	members := make([]*order.Order, len(orders))
	copy(members, orders)

	return Route{
		key:    key,
		kind:   KindForStops(len(members)),
		orders: members,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Route was properly constructed through NewRoute.
func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// Key returns the grouping key: the shared trip number, or the order
// identifier for a synthetic single-stop route.
func (r Route) Key() string {
	return r.key
}

// Kind returns the billing kind computed at grouping time.
func (r Route) Kind() Kind {
	return r.kind
}

// Orders returns the member orders in first-seen input order.
// The slice is a copy; the members themselves are shared.
func (r Route) Orders() []*order.Order {
	out := make([]*order.Order, len(r.orders))
	copy(out, r.orders)
	return out
}

// Stops returns the number of orders in the route.
func (r Route) Stops() int {
	return len(r.orders)
}

// Representative returns the order whose identity stands for the route on an
// invoice line: the first member in input order.
func (r Route) Representative() *order.Order {
	return r.orders[0]
}

// Driver returns the representative order's driver name.
func (r Route) Driver() string {
	return r.Representative().Driver()
}

// Pickup returns the pickup address of the first stop in visitation order.
func (r Route) Pickup() string {
	visit := r.visitationOrder()
	for _, o := range visit {
		if o.Pickup() != "" {
			return o.Pickup()
		}
	}
	return ""
}

// Dropoff returns the delivery address of the last stop in visitation order.
func (r Route) Dropoff() string {
	visit := r.visitationOrder()
	for i := len(visit) - 1; i >= 0; i-- {
		if visit[i].Dropoff() != "" {
			return visit[i].Dropoff()
		}
	}
	return ""
}

// Waypoints returns the addresses of the route in visitation order: pickup
// before dropoff per order, orders sorted by expected ready time when every
// member carries one, input order otherwise. Consecutive duplicates are
// collapsed because stops of one trip share waypoints.
func (r Route) Waypoints() []string {
	var points []string
	for _, o := range r.visitationOrder() {
		for _, addr := range []string{o.Pickup(), o.Dropoff()} {
			if addr == "" {
				continue
			}
			if len(points) > 0 && points[len(points)-1] == addr {
				continue
			}
			points = append(points, addr)
		}
	}
	return points
}

// KnownDistance sums the distance values already carried by the member orders
// (a manual override wins over the ingested estimate). Returns nil when no
// member carries any distance value. Used for pre-invoice anomaly scans that
// must not call the distance collaborator.
func (r Route) KnownDistance() *float64 {
	var total float64
	found := false
	for _, o := range r.orders {
		switch {
		case o.Distance() != nil:
			total += *o.Distance()
			found = true
		case o.EstimatedDistance() != nil:
			total += *o.EstimatedDistance()
			found = true
		}
	}
	if !found {
		return nil
	}
	return &total
}

// OverriddenDistance sums the explicitly assigned distance values of the
// member orders, returning nil unless every member carries one. A route with
// a full set of assigned distances needs no lookup.
func (r Route) OverriddenDistance() *float64 {
	var total float64
	for _, o := range r.orders {
		d := o.Distance()
		if d == nil {
			return nil
		}
		total += *d
	}
	return &total
}

// visitationOrder returns members sorted by expected ready time when every
// member has one; otherwise the first-seen input order is kept.
func (r Route) visitationOrder() []*order.Order {
	for _, o := range r.orders {
		if o.ExReadyTime() == nil {
			return r.orders
		}
	}

	sorted := make([]*order.Order, len(r.orders))
	copy(sorted, r.orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExReadyTime().Before(*sorted[j].ExReadyTime())
	})
	return sorted
}
