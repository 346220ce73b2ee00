package services

import (
	"context"
	"fmt"

	intdb "travelmitr/internal/db"
	"travelmitr/internal/domain"
	"travelmitr/internal/domain/models"
	"travelmitr/internal/repositories"
	"travelmitr/internal/utils"
)

type DestinationService struct {
	Destinations DestinationStore
	RequestID    string
}

func NewDestinationService(db intdb.DBTX, requestID string) DestinationService {
	return DestinationService{Destinations: repositories.DestinationRepository{DB: db}, RequestID: requestID}
}

func (s DestinationService) List(ctx context.Context) ([]models.Destination, error) {
	return s.Destinations.FindAll(ctx)
}

func (s DestinationService) Search(ctx context.Context, q string) ([]models.Destination, error) {
	q = utils.NormalizeSpace(q)
	if q == "" {
		return nil, domain.ValidationError{Field: "q", Msg: "search query is required"}
	}
	return s.Destinations.SearchByName(ctx, q)
}

func (s DestinationService) Get(ctx context.Context, id domain.ID) (models.Destination, error) {
	if id <= 0 {
		return models.Destination{}, domain.ValidationError{Field: "id", Msg: "invalid destination id"}
	}
	return s.Destinations.FindByID(ctx, id)
}

// Create requires all four fields.
func (s DestinationService) Create(ctx context.Context, in models.DestinationInput) (domain.ID, error) {
	var err error
	if in.Name, err = required("name", in.Name); err != nil {
		return 0, err
	}
	if in.City, err = required("city", in.City); err != nil {
		return 0, err
	}
	if in.State, err = required("state", in.State); err != nil {
		return 0, err
	}
	if in.Pincode, err = required("pincode", in.Pincode); err != nil {
		return 0, err
	}
	id, err := s.Destinations.Create(ctx, in)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "destinations", "create", fmt.Sprintf("dest_id=%d", id))
	return id, nil
}
