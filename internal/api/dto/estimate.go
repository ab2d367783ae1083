package dto

type EstimateRequest struct {
	SessionID   string `json:"session_id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

type EstimateRowResponse struct {
	Mode            string `json:"mode"`
	Price           int    `json:"price"`
	DurationMinutes int    `json:"duration_minutes"`
	Descriptor      string `json:"descriptor"`
}

type EstimateResponse struct {
	Rows       []EstimateRowResponse `json:"rows"`
	DistanceKm float64               `json:"distance_km"`
	Message    string                `json:"message"`
	Warning    string                `json:"warning,omitempty"`
}
