package services

import (
	"sync"

	"trip-fare-service/internal/domain"
)

// OverlayLine is one route line drawn on the shared map surface.
type OverlayLine struct {
	RunID       string
	Origin      domain.Coordinate
	Destination domain.Coordinate
	DistanceKm  float64
}

// Overlay is the explicitly owned handle for the rendering surface shared
// across route calculations within a view. Callers wanting a clean slate
// must Clear before Draw; drawing without clearing accumulates lines.
type Overlay struct {
	mu    sync.Mutex
	lines []OverlayLine
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

// Clear removes all previously drawn lines.
func (o *Overlay) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lines = nil
}

// Draw adds a route line on top of whatever is already drawn.
func (o *Overlay) Draw(line OverlayLine) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lines = append(o.lines, line)
}

// Lines returns a copy of the currently drawn lines.
func (o *Overlay) Lines() []OverlayLine {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]OverlayLine, len(o.lines))
	copy(out, o.lines)
	return out
}
