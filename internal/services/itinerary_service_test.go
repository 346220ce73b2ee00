package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"travelmitr/internal/domain"
	"travelmitr/internal/domain/models"
)

func TestItineraryServiceGenerate(t *testing.T) {
	loader := func(ctx context.Context, tripID, userID domain.ID) (models.Trip, error) {
		return models.Trip{
			ID:            tripID,
			UserID:        userID,
			SelectedMode:  models.ModeCab,
			TotalCost:     480,
			TotalDuration: 55,
			ComfortScore:  8,
			CreatedAt:     time.Now(),
			SourceName:    "Mumbai Airport",
			SourceCity:    "Mumbai",
			SourceState:   "Maharashtra",
			DestName:      "Mumbai Central",
			DestCity:      "Mumbai",
			DestState:     "Maharashtra",
		}, nil
	}

	svc := ItineraryService{Loader: loader}
	pdf, filename, err := svc.Generate(context.Background(), 7, 12)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("Generate did not return a PDF")
	}
	if filename != "ITINERARY_12_Mumbai_Mumbai.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestItineraryServiceNotOwned(t *testing.T) {
	m := newMemStore()
	svc := ItineraryService{Trips: memTrips{m}}
	if _, _, err := svc.Generate(context.Background(), 7, 1); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
