package domain

import (
	"fmt"
	"math"
	"strconv"
)

// TripEstimate is the terminal artifact of a pipeline run: the confirmed
// pickup/dropoff pair, the resolved distance, the rate used, and the fare
// derived from them. It is immutable once created and is handed to the
// receipt view as an ordered parameter list.
type TripEstimate struct {
	Pickup     string
	Dropoff    string
	DistanceKm float64
	RatePerKm  float64
	Mode       TransportMode
	Fare       float64
}

// ReceiptParams encodes the estimate as the ordered parameter list the
// receipt view consumes: [pickup, dropoff, distance, rate, mode].
// Numeric fields are decimal text produced with the shortest exact
// representation so the receiving view's re-parse recovers the values.
func (e TripEstimate) ReceiptParams() []string {
	return []string{
		e.Pickup,
		e.Dropoff,
		strconv.FormatFloat(e.DistanceKm, 'f', -1, 64),
		strconv.FormatFloat(e.RatePerKm, 'f', -1, 64),
		string(e.Mode),
	}
}

// ParseReceiptParams performs the receiving view's re-parse of an encoded
// estimate. It rejects short lists, non-numeric or non-finite numeric
// fields, negative distances, non-positive rates, and unrecognized mode
// tags. The fare is recomputed from distance and rate.
func ParseReceiptParams(params []string) (TripEstimate, error) {
	if len(params) != 5 {
		return TripEstimate{}, fmt.Errorf("receipt params: want 5 values, got %d: %w", len(params), ErrInvalidInput)
	}

	distance, err := strconv.ParseFloat(params[2], 64)
	if err != nil {
		return TripEstimate{}, fmt.Errorf("receipt params: distance %q: %w", params[2], ErrInvalidInput)
	}
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		return TripEstimate{}, fmt.Errorf("receipt params: distance must be a finite non-negative number: %w", ErrInvalidInput)
	}

	rate, err := strconv.ParseFloat(params[3], 64)
	if err != nil {
		return TripEstimate{}, fmt.Errorf("receipt params: rate %q: %w", params[3], ErrInvalidInput)
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return TripEstimate{}, fmt.Errorf("receipt params: rate must be a finite positive number: %w", ErrInvalidInput)
	}

	mode, err := ParseTransportMode(params[4])
	if err != nil {
		return TripEstimate{}, fmt.Errorf("receipt params: %w", err)
	}

	return TripEstimate{
		Pickup:     params[0],
		Dropoff:    params[1],
		DistanceKm: distance,
		RatePerKm:  rate,
		Mode:       mode,
		Fare:       math.Round(distance * rate),
	}, nil
}
