package domain

// Result of resolving a route between two coordinates.
// A RouteResult is owned by the pipeline run that requested it and is
// never cached or reused across runs. Distance is in kilometers and
// duration in seconds; both are non-negative (a zero-length route is valid).
type RouteResult struct {
	DistanceKm      float64
	DurationSeconds float64
}
