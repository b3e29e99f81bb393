package handler

import "github.com/Rangggase/Holy-Grail/internal/domain"

type ContextInfo struct {
	Weather   string `json:"weather"`
	GroupSize string `json:"group_size"`
	TimeOfDay string `json:"time_of_day"`
	// TimeLabel is the UI text; afternoons read "Sore" even though the
	// model bucket stays Siang.
	TimeLabel string `json:"time_label"`
}

type CustomerInfo struct {
	ID     int64  `json:"user_id,omitempty"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type RecommendationResponse struct {
	Customer        CustomerInfo      `json:"customer"`
	Context         ContextInfo       `json:"context"`
	Recommendations domain.RankedMenu `json:"recommendations"`
	Metadata        Meta              `json:"metadata"`
}

type Meta struct {
	CacheHit    bool   `json:"cache_hit"`
	GeneratedAt string `json:"generated_at"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
