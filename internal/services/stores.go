package services

import (
	"context"

	"travelmitr/internal/domain"
	"travelmitr/internal/domain/models"
)

// The store interfaces below are satisfied by the MySQL repositories and by
// in-memory fakes in tests.

type DestinationStore interface {
	FindAll(ctx context.Context) ([]models.Destination, error)
	FindByID(ctx context.Context, id domain.ID) (models.Destination, error)
	SearchByName(ctx context.Context, term string) ([]models.Destination, error)
	Create(ctx context.Context, in models.DestinationInput) (domain.ID, error)
}

type TransportStore interface {
	FindByRoute(ctx context.Context, sourceID, destID domain.ID) ([]models.TransportOption, error)
}

type FareStore interface {
	FindByTransportID(ctx context.Context, transID domain.ID) ([]models.FareQuote, error)
}

type TripStore interface {
	Create(ctx context.Context, rec models.TripRecord) (domain.ID, error)
	FindByUser(ctx context.Context, userID domain.ID) ([]models.Trip, error)
	FindByID(ctx context.Context, tripID, userID domain.ID) (models.Trip, error)
	Delete(ctx context.Context, tripID, userID domain.ID) (bool, error)
}

type UserStore interface {
	Create(ctx context.Context, u models.User) (domain.ID, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id domain.ID) (models.User, error)
	UpdateProfile(ctx context.Context, id domain.ID, name, phone string) error
}
