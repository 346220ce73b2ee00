package models

import "travelmitr/internal/domain"

// Mode is a travel mode. Storage may hold modes beyond the listed ones.
type Mode string

const (
	ModeCab    Mode = "Cab"
	ModeAuto   Mode = "Auto"
	ModeBus    Mode = "Bus"
	ModeTrain  Mode = "Train"
	ModeFlight Mode = "Flight"
)

// TransportOption is one mode of travel on an ordered (source, destination) pair.
type TransportOption struct {
	ID           domain.ID `json:"trans_id"`
	SourceID     domain.ID `json:"source_id"`
	DestID       domain.ID `json:"dest_id"`
	Mode         Mode      `json:"mode"`
	BaseCost     float64   `json:"base_cost"`
	Duration     int       `json:"duration"`
	ComfortLevel int       `json:"comfort_level"`
}
