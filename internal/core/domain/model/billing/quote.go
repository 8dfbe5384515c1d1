package billing

import (
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/pkg/errs"
)

// Quote computes the billable cost of one route under the tiered tariff.
//
// Tiers:
//   - Single-stop route at or under DistanceThreshold miles: base = FlatRate,
//     regardless of exact distance.
//   - Single-stop route above the threshold: base = distance × MileageRate.
//   - Multi-stop route: base = distance × MileageRate and
//     addOns = (stops − 1) × AdditionalStopFee. The first stop carries no fee.
//
// Amounts are returned at full precision; callers round only at the display
// boundary. The caller's total is always base + addOns.
func (s Settings) Quote(kind route.Kind, stops int, distanceMiles float64) (base kernel.Money, addOns kernel.Money, err error) {
	if err = s.Validate(); err != nil {
		return kernel.Money{}, kernel.Money{}, err
	}
	if err = kind.Validate(); err != nil {
		return kernel.Money{}, kernel.Money{}, err
	}
	if stops < 1 {
		return kernel.Money{}, kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"stops", fmt.Errorf("%d is not at least 1", stops))
	}
	if distanceMiles < 0 {
		return kernel.Money{}, kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"distance", fmt.Errorf("%v is negative", distanceMiles))
	}

	var baseAmount, addOnAmount float64
	switch kind {
	case route.Single:
		if distanceMiles <= s.DistanceThreshold {
			baseAmount = s.FlatRate
		} else {
			baseAmount = distanceMiles * s.MileageRate
		}
	case route.MultiStop:
		baseAmount = distanceMiles * s.MileageRate
		addOnAmount = float64(stops-1) * s.AdditionalStopFee
	}

	base, err = kernel.NewMoney(baseAmount)
	if err != nil {
		return kernel.Money{}, kernel.Money{}, err
	}

	addOns, err = kernel.NewMoney(addOnAmount)
	if err != nil {
		return kernel.Money{}, kernel.Money{}, err
	}

	return base, addOns, nil
}
