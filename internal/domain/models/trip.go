package models

import (
	"time"

	"travelmitr/internal/domain"
)

// TripRecord is what the optimizer persists for its recommendation.
type TripRecord struct {
	UserID        domain.ID
	SourceID      domain.ID
	DestID        domain.ID
	SelectedMode  Mode
	TotalCost     float64
	TotalDuration int
	ComfortScore  int
}

// Trip is a stored optimization outcome joined with its endpoint names.
type Trip struct {
	ID            domain.ID `json:"trip_id"`
	UserID        domain.ID `json:"user_id"`
	SourceID      domain.ID `json:"source_id"`
	DestID        domain.ID `json:"dest_id"`
	SelectedMode  Mode      `json:"selected_mode"`
	TotalCost     float64   `json:"total_cost"`
	TotalDuration int       `json:"total_duration"`
	ComfortScore  int       `json:"comfort_score"`
	CreatedAt     time.Time `json:"created_at"`

	SourceName  string `json:"source_name"`
	SourceCity  string `json:"source_city"`
	SourceState string `json:"source_state"`
	DestName    string `json:"dest_name"`
	DestCity    string `json:"dest_city"`
	DestState   string `json:"dest_state"`
}
