package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"dispatch/internal/core/domain/model/route"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// DefaultWaveSize bounds how many distance lookups run concurrently against
// the mapping service in one wave.
const DefaultWaveSize = 5

// ErrRouteHasNoWaypoints is reported in a Resolution when a route carries no
// usable addresses to measure.
var ErrRouteHasNoWaypoints = errs.NewValueIsRequiredError("route has no usable waypoints")

// Resolution is the outcome of one route's distance lookup. A failed lookup
// leaves Miles at zero and records the cause; callers degrade that route
// rather than abort the batch.
type Resolution struct {
	Miles float64
	Err   error
}

// Resolved reports whether the lookup produced a usable distance.
func (r Resolution) Resolved() bool {
	return r.Err == nil
}

// ProgressFunc receives incremental progress while a batch resolves.
// Invocations are ordered: current increases monotonically up to total.
type ProgressFunc func(current, total int)

// DistanceResolver obtains one driving distance per route from the mapping
// service.
//
// Key responsibilities:
//   - Using a manually corrected or ingested distance when every order on the
//     route already carries one, skipping the lookup
//   - Measuring the remaining routes along their waypoint visitation order
//   - Bounding concurrent lookups to waves of a fixed size
//
// Business rules:
//   - Results are positional: Resolutions[i] belongs to routes[i] regardless
//     of lookup completion order
//   - Progress is reported per route in route order, never out of sequence
//   - Cancellation is cooperative: the context is checked between waves, and
//     a cancelled context aborts the remaining waves
type DistanceResolver struct {
	estimator ports.DistanceEstimator
	waveSize  int
}

// NewDistanceResolver creates a DistanceResolver over the given estimator.
// A waveSize below 1 selects DefaultWaveSize.
func NewDistanceResolver(estimator ports.DistanceEstimator, waveSize int) (DistanceResolver, error) {
	if estimator == nil {
		return DistanceResolver{}, errs.NewValueIsRequiredError("estimator")
	}
	if waveSize < 1 {
		waveSize = DefaultWaveSize
	}
	return DistanceResolver{estimator: estimator, waveSize: waveSize}, nil
}

// ResolveAll measures every route, returning one Resolution per route in
// route order. onProgress may be nil. The only error returned is context
// cancellation; per-route failures are carried inside the Resolutions.
func (d DistanceResolver) ResolveAll(ctx context.Context, routes []route.Route, onProgress ProgressFunc) ([]Resolution, error) {
	total := len(routes)
	resolutions := make([]Resolution, total)

	for start := 0; start < total; start += d.waveSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		end := start + d.waveSize
		if end > total {
			end = total
		}

		group, groupCtx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			i := i
			group.Go(func() error {
				resolutions[i] = d.resolve(groupCtx, routes[i])
				return nil
			})
		}
		// Workers never return errors; Wait only synchronizes the wave.
		_ = group.Wait()

		if onProgress != nil {
			for i := start; i < end; i++ {
				onProgress(i+1, total)
			}
		}
	}

	return resolutions, nil
}

// resolve measures one route. A route whose orders all carry a distance is
// answered from those values without touching the mapping service.
func (d DistanceResolver) resolve(ctx context.Context, rt route.Route) Resolution {
	if err := rt.Validate(); err != nil {
		return Resolution{Err: err}
	}

	if overridden := rt.OverriddenDistance(); overridden != nil {
		return Resolution{Miles: *overridden}
	}

	waypoints := rt.Waypoints()
	if len(waypoints) < 2 {
		return Resolution{Err: ErrRouteHasNoWaypoints}
	}

	miles, err := d.estimator.EstimateDistance(ctx, waypoints)
	if err != nil {
		return Resolution{Err: err}
	}

	return Resolution{Miles: miles}
}
