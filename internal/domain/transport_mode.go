package domain

import "fmt"

// TransportMode is the closed set of modes a rider can select.
// Values arriving from route parameters are validated here at the
// boundary instead of being carried through as unchecked tags.
type TransportMode string

const (
	ModeTrain TransportMode = "train"
	ModeMetro TransportMode = "metro"
	ModeBus   TransportMode = "bus"
	ModeAuto  TransportMode = "auto"
)

var knownModes = map[TransportMode]struct{}{
	ModeTrain: {},
	ModeMetro: {},
	ModeBus:   {},
	ModeAuto:  {},
}

// IsValid returns true if the mode is a recognized transport mode.
func (m TransportMode) IsValid() bool {
	_, ok := knownModes[m]
	return ok
}

// String returns the string representation of the mode.
func (m TransportMode) String() string { return string(m) }

// ParseTransportMode converts a free-form tag to a TransportMode,
// failing with ErrInvalidInput for unrecognized tags.
func ParseTransportMode(s string) (TransportMode, error) {
	mode := TransportMode(s)
	if !mode.IsValid() {
		return "", fmt.Errorf("transport mode %q: %w", s, ErrInvalidInput)
	}
	return mode, nil
}
