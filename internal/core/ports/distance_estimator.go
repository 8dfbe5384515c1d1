package ports

import "context"

// DistanceEstimator is the outbound contract for the external mapping
// service. Given an ordered list of waypoint addresses it returns the total
// driving distance in miles along the path.
//
// Implementations may be slow and may fail per call; callers are expected to
// bound concurrency and degrade per route rather than abort on failure.
type DistanceEstimator interface {
	EstimateDistance(ctx context.Context, waypoints []string) (float64, error)
}
