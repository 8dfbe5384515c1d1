package services

import (
	"strings"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/route"
)

// NoisePredicate reports whether a trip number is a placeholder rather than a
// real trip identifier. The exact pattern set is a configuration surface;
// DefaultNoisePredicate covers the values dispatchers are known to type in.
type NoisePredicate func(tripNumber string) bool

// DefaultNoisePredicate classifies a trip number as noise when it is one of
// the common placeholder literals, a single repeated character ("1111",
// "xxxx"), or a short ascending digit run ("123", "123456").
func DefaultNoisePredicate(tripNumber string) bool {
	normalized := strings.ToLower(strings.TrimSpace(tripNumber))
	if normalized == "" {
		return false
	}

	switch normalized {
	case "test", "testing", "n/a", "na", "none", "tbd", "todo", "xxx", "temp", "unknown":
		return true
	}

	if isRepeatedChar(normalized) {
		return true
	}

	return isAscendingDigitRun(normalized)
}

func isRepeatedChar(s string) bool {
	if len(s) < 2 {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// isAscendingDigitRun matches "123", "1234" and similar keyboard-walk digit
// sequences starting at 1. Legitimate trip numbers in the feed always carry a
// prefix or are not consecutive.
func isAscendingDigitRun(s string) bool {
	if len(s) < 3 || s[0] != '1' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' || s[i] != s[i-1]+1 {
			return false
		}
	}
	return true
}

// RouteOrganizer is a domain service that groups raw delivery orders into
// routes and sanitizes trip-number noise from a working set.
//
// Key responsibilities:
//   - Grouping orders by trip number into single and multi-stop routes
//   - Filtering orders whose trip numbers are placeholder noise
//   - Filtering orders with no trip number at all, as an explicit bulk action
//
// Business rules:
//   - Grouping is stable: route order follows first appearance in the input,
//     and orders within a route keep their relative input order
//   - An order without a usable trip number becomes its own single-stop route
//     keyed by its order ID
//   - A trip number shared by only one order still yields a single-stop route
type RouteOrganizer struct {
	isNoise NoisePredicate
}

// NewRouteOrganizer creates a RouteOrganizer using the given noise predicate.
// Passing nil selects DefaultNoisePredicate.
func NewRouteOrganizer(isNoise NoisePredicate) RouteOrganizer {
	if isNoise == nil {
		isNoise = DefaultNoisePredicate
	}
	return RouteOrganizer{isNoise: isNoise}
}

// GroupByTrip groups orders into routes. Orders sharing a non-empty,
// non-noise trip number form one route; every other order forms a single-stop
// route keyed by its own ID. Invalid (nil or unconstructed) orders are
// rejected.
func (r RouteOrganizer) GroupByTrip(orders []*order.Order) ([]route.Route, error) {
	grouped := make(map[string][]*order.Order, len(orders))
	keys := make([]string, 0, len(orders))

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}

		key := o.TripNumber()
		if key == "" || r.isNoise(key) {
			key = o.ID().String()
		}

		if _, seen := grouped[key]; !seen {
			keys = append(keys, key)
		}
		grouped[key] = append(grouped[key], o)
	}

	routes := make([]route.Route, 0, len(keys))
	for _, key := range keys {
		rt, err := route.NewRoute(key, grouped[key])
		if err != nil {
			return nil, err
		}
		routes = append(routes, rt)
	}

	return routes, nil
}

// MultiStopRouteCount reports how many routes carry two or more stops.
func (r RouteOrganizer) MultiStopRouteCount(routes []route.Route) int {
	count := 0
	for _, rt := range routes {
		if rt.Kind() == route.MultiStop {
			count++
		}
	}
	return count
}

// RemoveNoiseTripOrders drops every order whose trip number the noise
// predicate rejects, returning the kept orders and the number removed. Orders
// with an empty trip number are kept; removing those is a separate explicit
// action.
func (r RouteOrganizer) RemoveNoiseTripOrders(orders []*order.Order) ([]*order.Order, int) {
	kept := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.HasTripNumber() && r.isNoise(o.TripNumber()) {
			continue
		}
		kept = append(kept, o)
	}
	return kept, len(orders) - len(kept)
}

// RemoveMissingTripNumberOrders drops every order without a trip number,
// returning the kept orders and the number removed.
func (r RouteOrganizer) RemoveMissingTripNumberOrders(orders []*order.Order) ([]*order.Order, int) {
	kept := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if !o.HasTripNumber() {
			continue
		}
		kept = append(kept, o)
	}
	return kept, len(orders) - len(kept)
}
