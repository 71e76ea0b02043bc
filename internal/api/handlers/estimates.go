package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"trip-fare-service/internal/api/dto"
	"trip-fare-service/internal/services"
)

// EstimateHandler exposes the pipeline's two inbound entry points (start
// estimation, compute fare) plus run inspection and the overlay view.
type EstimateHandler struct {
	Pipeline         *services.Pipeline
	Overlay          *services.Overlay
	DefaultRatePerKm float64
}

// Start begins a fresh estimation run for a pickup/destination pair.
// The run snapshot is returned whether the run estimated or failed; only
// invalid input is rejected outright.
func (h *EstimateHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req dto.StartEstimateRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	run, err := h.Pipeline.StartEstimation(r.Context(), services.StartCommand{
		Pickup:      req.Pickup,
		Destination: req.Destination,
	})
	if err != nil {
		writeError(w, r, statusForError(err), "pickup and destination are required")
		return
	}

	writeJSON(w, r, http.StatusCreated, toEstimateResponse(run))
}

// Get returns the current state of a run.
func (h *EstimateHandler) Get(w http.ResponseWriter, r *http.Request) {
	run, err := h.Pipeline.GetRun(r.PathValue("id"))
	if err != nil {
		writeError(w, r, statusForError(err), "estimation run not found")
		return
	}

	writeJSON(w, r, http.StatusOK, toEstimateResponse(run))
}

// Fare is the explicit second step: it derives the fare for an estimated
// run from a rate and a validated transport-mode tag, and returns the
// receipt parameter list the confirmation view consumes.
func (h *EstimateHandler) Fare(w http.ResponseWriter, r *http.Request) {
	var req dto.FareRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	rate := h.DefaultRatePerKm
	if req.RatePerKm != nil {
		rate = *req.RatePerKm
	}

	est, err := h.Pipeline.ComputeFare(r.Context(), services.FareCommand{
		RunID:     r.PathValue("id"),
		RatePerKm: rate,
		Mode:      req.Mode,
	})
	if err != nil {
		zap.L().Debug("compute fare rejected", zap.Error(err))
		writeError(w, r, statusForError(err), err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FareResponse{
		Pickup:        est.Pickup,
		Dropoff:       est.Dropoff,
		DistanceKm:    est.DistanceKm,
		RatePerKm:     est.RatePerKm,
		Mode:          est.Mode.String(),
		Fare:          est.Fare,
		ReceiptParams: est.ReceiptParams(),
	})
}

// OverlayLines returns the route lines currently drawn on the shared
// rendering surface.
func (h *EstimateHandler) OverlayLines(w http.ResponseWriter, r *http.Request) {
	lines := h.Overlay.Lines()

	res := dto.OverlayResponse{Lines: make([]dto.OverlayLineResponse, 0, len(lines))}
	for _, l := range lines {
		res.Lines = append(res.Lines, dto.OverlayLineResponse{
			RunID:      l.RunID,
			OriginLat:  l.Origin.Lat,
			OriginLon:  l.Origin.Lon,
			DestLat:    l.Destination.Lat,
			DestLon:    l.Destination.Lon,
			DistanceKm: l.DistanceKm,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toEstimateResponse(run services.Run) dto.EstimateResponse {
	res := dto.EstimateResponse{
		ID:          run.ID,
		State:       string(run.State),
		Pickup:      run.Pickup,
		Destination: run.Destination,
	}

	if run.Route != nil {
		res.DistanceKm = &run.Route.DistanceKm
		res.DurationSeconds = &run.Route.DurationSeconds
	}
	if run.Estimate != nil {
		res.Fare = &run.Estimate.Fare
	}
	if run.State == services.StateFailed {
		res.Failure = &dto.FailureResponse{
			Kind:    run.FailureKind,
			Message: run.FailureMessage,
		}
	}

	return res
}
