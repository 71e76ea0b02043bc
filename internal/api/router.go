package api

import (
	"net/http"

	"go.uber.org/zap"

	"trip-fare-service/internal/api/handlers"
	"trip-fare-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware
// of concrete adapters).
func NewRouter(pipeline *services.Pipeline, overlay *services.Overlay, defaultRatePerKm float64, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	estimates := &handlers.EstimateHandler{
		Pipeline:         pipeline,
		Overlay:          overlay,
		DefaultRatePerKm: defaultRatePerKm,
	}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("POST /estimates", estimates.Start)
	mux.HandleFunc("GET /estimates/{id}", estimates.Get)
	mux.HandleFunc("POST /estimates/{id}/fare", estimates.Fare)
	mux.HandleFunc("GET /overlay", estimates.OverlayLines)

	return loggingMiddleware(log, mux)
}
