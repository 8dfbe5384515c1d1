// Package billing provides the invoice-generation configuration surface.
// Settings are passed explicitly into every generation call so mid-session
// changes apply to the next run and never retroactively to an invoice that
// was already produced.
package billing

import (
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
)

// Default pricing and flagging values. They match the standard courier tariff
// the dispatch desk operates with.
const (
	DefaultFlatRate          = 25.0
	DefaultMileageRate       = 1.10
	DefaultAdditionalStopFee = 12.0
	DefaultDistanceThreshold = 25.0

	DefaultFlagDriverLoadThreshold = 10
	// DefaultFlagDistanceThreshold of zero disables distance-outlier flagging.
	DefaultFlagDistanceThreshold = 0.0
	DefaultFlagTimeWindow        = 30 * time.Minute
)

// Settings is the runtime configuration recognized by the pricing engine and
// the issue detector. It is read fresh on each generation or scan call.
type Settings struct {
	// FlatRate is the fixed charge for a single-stop route at or under
	// DistanceThreshold miles.
	FlatRate float64

	// MileageRate is the per-mile charge for routes billed by distance.
	MileageRate float64

	// AdditionalStopFee is charged for every stop beyond the first on a
	// multi-stop route.
	AdditionalStopFee float64

	// DistanceThreshold is the mileage at or under which a single-stop route
	// is billed flat-rate.
	DistanceThreshold float64

	// AllowManualDistanceAdjustment gates the manual recalculation workflow.
	AllowManualDistanceAdjustment bool

	// FlagDriverLoadThreshold is the per-driver-per-day order count above
	// which an overload warning is raised.
	FlagDriverLoadThreshold int

	// FlagDistanceThreshold is the route distance above which an outlier
	// warning is raised. Zero disables the rule.
	FlagDistanceThreshold float64

	// FlagTimeWindow is the allowed gap between expected and actual pickup or
	// delivery times before a warning is raised.
	FlagTimeWindow time.Duration
}

// DefaultSettings returns the standard tariff with manual distance adjustment
// enabled.
func DefaultSettings() Settings {
	return Settings{
		FlatRate:                      DefaultFlatRate,
		MileageRate:                   DefaultMileageRate,
		AdditionalStopFee:             DefaultAdditionalStopFee,
		DistanceThreshold:             DefaultDistanceThreshold,
		AllowManualDistanceAdjustment: true,
		FlagDriverLoadThreshold:       DefaultFlagDriverLoadThreshold,
		FlagDistanceThreshold:         DefaultFlagDistanceThreshold,
		FlagTimeWindow:                DefaultFlagTimeWindow,
	}
}

// Validate checks the settings for values the pricing engine cannot work
// with. Zero thresholds are allowed; negative amounts are not.
func (s Settings) Validate() error {
	if s.FlatRate < 0 {
		return errs.NewValueIsInvalidErrorWithCause("flatRate", fmt.Errorf("%v is negative", s.FlatRate))
	}
	if s.MileageRate < 0 {
		return errs.NewValueIsInvalidErrorWithCause("mileageRate", fmt.Errorf("%v is negative", s.MileageRate))
	}
	if s.AdditionalStopFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("additionalStopFee", fmt.Errorf("%v is negative", s.AdditionalStopFee))
	}
	if s.DistanceThreshold < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceThreshold", fmt.Errorf("%v is negative", s.DistanceThreshold))
	}
	if s.FlagDriverLoadThreshold < 0 {
		return errs.NewValueIsInvalidErrorWithCause("flagDriverLoadThreshold", fmt.Errorf("%d is negative", s.FlagDriverLoadThreshold))
	}
	if s.FlagDistanceThreshold < 0 {
		return errs.NewValueIsInvalidErrorWithCause("flagDistanceThreshold", fmt.Errorf("%v is negative", s.FlagDistanceThreshold))
	}
	if s.FlagTimeWindow < 0 {
		return errs.NewValueIsInvalidErrorWithCause("flagTimeWindow", fmt.Errorf("%v is negative", s.FlagTimeWindow))
	}
	return nil
}
