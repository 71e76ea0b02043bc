package dto

type StartEstimateRequest struct {
	Pickup      string `json:"pickup"`
	Destination string `json:"destination"`
}

type FareRequest struct {
	RatePerKm *float64 `json:"rate_per_km"`
	Mode      string   `json:"mode"`
}

type FailureResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type EstimateResponse struct {
	ID              string           `json:"id"`
	State           string           `json:"state"`
	Pickup          string           `json:"pickup"`
	Destination     string           `json:"destination"`
	DistanceKm      *float64         `json:"distance_km,omitempty"`
	DurationSeconds *float64         `json:"duration_seconds,omitempty"`
	Fare            *float64         `json:"fare,omitempty"`
	Failure         *FailureResponse `json:"failure,omitempty"`
}

type FareResponse struct {
	Pickup        string   `json:"pickup"`
	Dropoff       string   `json:"dropoff"`
	DistanceKm    float64  `json:"distance_km"`
	RatePerKm     float64  `json:"rate_per_km"`
	Mode          string   `json:"mode"`
	Fare          float64  `json:"fare"`
	ReceiptParams []string `json:"receipt_params"`
}

type OverlayLineResponse struct {
	RunID      string  `json:"run_id"`
	OriginLat  float64 `json:"origin_lat"`
	OriginLon  float64 `json:"origin_lon"`
	DestLat    float64 `json:"dest_lat"`
	DestLon    float64 `json:"dest_lon"`
	DistanceKm float64 `json:"distance_km"`
}

type OverlayResponse struct {
	Lines []OverlayLineResponse `json:"lines"`
}
