package models

import "travelmitr/internal/domain"

// FareQuote is a ride-hailing provider's offer for a transport option.
type FareQuote struct {
	ID            domain.ID `json:"ride_id"`
	TransportID   domain.ID `json:"trans_id"`
	AppName       string    `json:"app_name"`
	Fare          float64   `json:"fare"`
	EstimatedTime int       `json:"estimated_time"`
}
