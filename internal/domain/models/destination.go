package models

import "travelmitr/internal/domain"

// Destination is immutable catalog data.
type Destination struct {
	ID      domain.ID `json:"dest_id"`
	Name    string    `json:"name"`
	City    string    `json:"city"`
	State   string    `json:"state"`
	Pincode string    `json:"pincode"`
}

// DestinationInput is the payload for creating a destination and the row shape
// of the seed catalog.
type DestinationInput struct {
	Name    string `json:"name" csv:"name"`
	City    string `json:"city" csv:"city"`
	State   string `json:"state" csv:"state"`
	Pincode string `json:"pincode" csv:"pincode"`
}
