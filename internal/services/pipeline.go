package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trip-fare-service/internal/domain"
	"trip-fare-service/internal/ports"
)

// RunState is a trip estimation run's position in its lifecycle.
type RunState string

const (
	StateIdle               RunState = "idle"
	StateResolvingEndpoints RunState = "resolving_endpoints"
	StateRoutePending       RunState = "route_pending"
	StateEstimated          RunState = "estimated"
	StateFailed             RunState = "failed"
)

// allowedTransitions encodes the run state machine. Estimated and Failed
// are terminal; a retry is always a fresh run.
var allowedTransitions = map[RunState][]RunState{
	StateIdle:               {StateResolvingEndpoints},
	StateResolvingEndpoints: {StateRoutePending, StateFailed},
	StateRoutePending:       {StateEstimated, StateFailed},
	StateEstimated:          {},
	StateFailed:             {},
}

func canTransition(from, to RunState) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Run is one end-to-end estimation for a single pickup/destination pair.
// Every run owns its coordinates, route result and estimate; nothing is
// shared between concurrent runs.
type Run struct {
	ID          string
	Pickup      string
	Destination string
	State       RunState

	PickupCoord  *domain.Coordinate
	DropoffCoord *domain.Coordinate
	Route        *domain.RouteResult
	Estimate     *domain.TripEstimate

	FailureKind    string
	FailureMessage string

	CreatedAt time.Time
	UpdatedAt time.Time
}

var (
	ErrRunNotFound     = errors.New("estimation run not found")
	ErrRunNotEstimated = errors.New("estimation run has no resolved route")
)

// Pipeline orchestrates geocoding, route resolution and fare derivation
// for trip estimation runs, and holds run state between the two inbound
// entry points (start estimation, compute fare).
type Pipeline struct {
	geocoder ports.Geocoder
	routes   ports.RouteProvider
	overlay  *Overlay
	log      *zap.Logger

	geocodeTimeout time.Duration
	routeTimeout   time.Duration

	mu   sync.RWMutex
	runs map[string]*Run
}

func NewPipeline(
	geocoder ports.Geocoder,
	routes ports.RouteProvider,
	overlay *Overlay,
	log *zap.Logger,
	geocodeTimeout time.Duration,
	routeTimeout time.Duration,
) *Pipeline {
	return &Pipeline{
		geocoder:       geocoder,
		routes:         routes,
		overlay:        overlay,
		log:            log,
		geocodeTimeout: geocodeTimeout,
		routeTimeout:   routeTimeout,
		runs:           make(map[string]*Run),
	}
}

type StartCommand struct {
	Pickup      string
	Destination string
}

type FareCommand struct {
	RunID     string
	RatePerKm float64
	Mode      string
}

// StartEstimation runs the estimation stages for a fresh run: both
// endpoint geocode lookups concurrently, then the route request once both
// coordinates are ready. Stage failures finish the run in StateFailed with
// the originating error kind inspectable; only invalid input (which never
// creates a run or touches the network) is returned as an error.
func (p *Pipeline) StartEstimation(ctx context.Context, cmd StartCommand) (Run, error) {
	if strings.TrimSpace(cmd.Pickup) == "" || strings.TrimSpace(cmd.Destination) == "" {
		return Run{}, fmt.Errorf("start estimation: pickup and destination must be non-empty: %w", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	run := &Run{
		ID:          uuid.NewString(),
		Pickup:      cmd.Pickup,
		Destination: cmd.Destination,
		State:       StateIdle,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	p.mu.Lock()
	p.runs[run.ID] = run
	p.mu.Unlock()

	if err := p.transition(run, StateResolvingEndpoints); err != nil {
		return Run{}, err
	}

	// Both endpoint lookups are dispatched concurrently and awaited
	// jointly; the route request is gated on both succeeding.
	gctx, cancel := context.WithTimeout(ctx, p.geocodeTimeout)
	defer cancel()

	var (
		wg                     sync.WaitGroup
		pickupCoord, dropCoord domain.Coordinate
		pickupErr, dropErr     error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		pickupCoord, pickupErr = p.geocoder.Resolve(gctx, cmd.Pickup)
	}()
	go func() {
		defer wg.Done()
		dropCoord, dropErr = p.geocoder.Resolve(gctx, cmd.Destination)
	}()
	wg.Wait()

	// When both lookups fail, exactly one failure is reported.
	if pickupErr != nil {
		return p.fail(run, fmt.Errorf("geocode pickup %q: %w", cmd.Pickup, pickupErr)), nil
	}
	if dropErr != nil {
		return p.fail(run, fmt.Errorf("geocode destination %q: %w", cmd.Destination, dropErr)), nil
	}

	p.mu.Lock()
	run.PickupCoord = &pickupCoord
	run.DropoffCoord = &dropCoord
	p.mu.Unlock()

	if err := p.transition(run, StateRoutePending); err != nil {
		return Run{}, err
	}

	rctx, cancel := context.WithTimeout(ctx, p.routeTimeout)
	defer cancel()

	route, err := p.routes.ResolveRoute(rctx, pickupCoord, dropCoord)
	if err != nil {
		return p.fail(run, fmt.Errorf("route %q -> %q: %w", cmd.Pickup, cmd.Destination, err)), nil
	}

	p.mu.Lock()
	run.Route = &route
	p.mu.Unlock()

	// A new calculation replaces prior overlay state instead of stacking
	// route lines on the shared surface.
	p.overlay.Clear()
	p.overlay.Draw(OverlayLine{
		RunID:       run.ID,
		Origin:      pickupCoord,
		Destination: dropCoord,
		DistanceKm:  route.DistanceKm,
	})

	if err := p.transition(run, StateEstimated); err != nil {
		return Run{}, err
	}

	p.log.Info("estimation run resolved",
		zap.String("run_id", run.ID),
		zap.Float64("distance_km", route.DistanceKm),
		zap.Float64("duration_s", route.DurationSeconds),
	)

	return p.snapshot(run.ID)
}

// ComputeFare is the explicit second step: it accepts a rate and a mode
// tag, validates both at this boundary, and derives the immutable trip
// estimate from the run's resolved distance.
func (p *Pipeline) ComputeFare(ctx context.Context, cmd FareCommand) (domain.TripEstimate, error) {
	mode, err := domain.ParseTransportMode(cmd.Mode)
	if err != nil {
		return domain.TripEstimate{}, fmt.Errorf("compute fare: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	run, ok := p.runs[cmd.RunID]
	if !ok {
		return domain.TripEstimate{}, fmt.Errorf("compute fare: run %q: %w", cmd.RunID, ErrRunNotFound)
	}

	if run.State != StateEstimated {
		return domain.TripEstimate{}, fmt.Errorf("compute fare: run %q is %s: %w", cmd.RunID, run.State, ErrRunNotEstimated)
	}

	fare, err := ComputeFare(run.Route.DistanceKm, cmd.RatePerKm, mode)
	if err != nil {
		return domain.TripEstimate{}, err
	}

	est := domain.TripEstimate{
		Pickup:     run.Pickup,
		Dropoff:    run.Destination,
		DistanceKm: run.Route.DistanceKm,
		RatePerKm:  cmd.RatePerKm,
		Mode:       mode,
		Fare:       fare,
	}
	run.Estimate = &est
	run.UpdatedAt = time.Now().UTC()

	return est, nil
}

// GetRun returns a copy of the run's current state.
func (p *Pipeline) GetRun(id string) (Run, error) {
	return p.snapshot(id)
}

func (p *Pipeline) snapshot(id string) (Run, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	run, ok := p.runs[id]
	if !ok {
		return Run{}, fmt.Errorf("run %q: %w", id, ErrRunNotFound)
	}

	out := *run
	if run.PickupCoord != nil {
		c := *run.PickupCoord
		out.PickupCoord = &c
	}
	if run.DropoffCoord != nil {
		c := *run.DropoffCoord
		out.DropoffCoord = &c
	}
	if run.Route != nil {
		r := *run.Route
		out.Route = &r
	}
	if run.Estimate != nil {
		e := *run.Estimate
		out.Estimate = &e
	}
	return out, nil
}

func (p *Pipeline) transition(run *Run, to RunState) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !canTransition(run.State, to) {
		return fmt.Errorf("run %q: illegal transition %s -> %s", run.ID, run.State, to)
	}
	run.State = to
	run.UpdatedAt = time.Now().UTC()
	return nil
}

func (p *Pipeline) fail(run *Run, cause error) Run {
	kind := domain.FailureKind(cause)

	p.mu.Lock()
	run.State = StateFailed
	run.FailureKind = kind
	run.FailureMessage = failureMessage(kind)
	run.UpdatedAt = time.Now().UTC()
	out := *run
	p.mu.Unlock()

	p.log.Info("estimation run failed",
		zap.String("run_id", run.ID),
		zap.String("kind", kind),
		zap.Error(cause),
	)

	return out
}

// failureMessage maps an error kind to the user-facing explanation of
// which stage failed and why.
func failureMessage(kind string) string {
	switch kind {
	case "not_found":
		return "could not locate one or both addresses"
	case "no_route_found":
		return "could not find a route between the locations"
	case "service_unavailable":
		return "map service unreachable, please try again later"
	case "parse_error":
		return "map service returned an unexpected response"
	default:
		return "trip estimation failed"
	}
}
