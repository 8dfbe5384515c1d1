package route

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Kind discriminates how a route is billed.
// It is computed once during grouping so downstream consumers never have to
// re-derive it from the stop count.
//
//	Single    — one order, billed flat-rate or per-mile depending on distance
//	MultiStop — two or more orders under one trip number, billed per-mile plus
//	            a fee for every stop beyond the first
type Kind int

const (
	// Unknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	Unknown Kind = iota

	// Single is a route with exactly one order.
	Single

	// MultiStop is a route with two or more orders grouped under one trip
	// number.
	MultiStop
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		Unknown:   "Unknown",
		Single:    "single",
		MultiStop: "multi-stop",
	}
}

func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Kind]string{
		Single:    "single",
		MultiStop: "multi-stop",
	}
}

// Validate checks if the Kind value is valid.
// Valid kinds are Single and MultiStop; Unknown (0) and any other values are
// invalid.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("route kind is invalid", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

// String returns the billing name of the kind: "single" or "multi-stop".
// Invalid values return "Unknown". Implements fmt.Stringer.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// KindForStops returns the Kind implied by a stop count.
func KindForStops(stops int) Kind {
	if stops >= 2 {
		return MultiStop
	}
	return Single
}
