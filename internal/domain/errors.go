package domain

import "errors"

// Error kinds surfaced by pipeline stages. Every stage failure wraps
// exactly one of these so callers can message the user precisely
// ("could not locate an address" vs "could not find a route" vs
// "service unreachable") and decide whether a retry is worthwhile.
var (
	// ErrInvalidInput marks bad arguments to a stage; never retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a geocode lookup that returned no candidates.
	ErrNotFound = errors.New("address not found")

	// ErrNoRouteFound marks a routing response with zero candidates.
	ErrNoRouteFound = errors.New("no route found")

	// ErrServiceUnavailable marks a network or service failure against an
	// external collaborator; eligible for caller-initiated retry.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrParse marks a malformed external response; retrying is unlikely
	// to fix a response-shape mismatch, so it is fatal for the run.
	ErrParse = errors.New("malformed service response")
)

// FailureKind maps a stage error to its stable machine-readable tag.
// Unrecognized errors report as "internal".
func FailureKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrNoRouteFound):
		return "no_route_found"
	case errors.Is(err, ErrServiceUnavailable):
		return "service_unavailable"
	case errors.Is(err, ErrParse):
		return "parse_error"
	default:
		return "internal"
	}
}
