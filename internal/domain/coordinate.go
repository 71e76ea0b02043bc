package domain

import "math"

// Immutable geographic coordinate (latitude, longitude in degrees).
// A Coordinate is only ever produced by a successful geocode lookup;
// there is no meaningful zero value for callers to construct.
type Coordinate struct {
	Lat float64
	Lon float64
}

// IsFinite reports whether both fields are real numbers (no NaN/Inf).
func (c Coordinate) IsFinite() bool {
	return !math.IsNaN(c.Lat) && !math.IsInf(c.Lat, 0) &&
		!math.IsNaN(c.Lon) && !math.IsInf(c.Lon, 0)
}

// Return the coordinate as [lon, lat] for external API compatibility.
func (c Coordinate) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }
