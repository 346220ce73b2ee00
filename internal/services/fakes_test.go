package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"travelmitr/internal/domain"
	"travelmitr/internal/domain/models"
)

// memStore backs every store interface with maps for service tests.
type memStore struct {
	mu           sync.Mutex
	destinations []models.Destination
	options      []models.TransportOption
	fares        map[domain.ID][]models.FareQuote
	trips        []models.Trip
	users        []models.User

	fareErr  error
	tripErr  error
	fareHits int
}

func newMemStore() *memStore {
	return &memStore{fares: map[domain.ID][]models.FareQuote{}}
}

// seedMumbai loads the airport to central route: Cab with three app quotes,
// Auto and Bus without.
func seedMumbai(m *memStore) {
	m.destinations = []models.Destination{
		{ID: 1, Name: "Mumbai Airport", City: "Mumbai", State: "Maharashtra", Pincode: "400099"},
		{ID: 3, Name: "Mumbai Central", City: "Mumbai", State: "Maharashtra", Pincode: "400008"},
		{ID: 4, Name: "Pune Station", City: "Pune", State: "Maharashtra", Pincode: "411001"},
	}
	m.options = []models.TransportOption{
		{ID: 1, SourceID: 1, DestID: 3, Mode: models.ModeCab, BaseCost: 500, Duration: 45, ComfortLevel: 8},
		{ID: 2, SourceID: 1, DestID: 3, Mode: models.ModeAuto, BaseCost: 200, Duration: 60, ComfortLevel: 4},
		{ID: 3, SourceID: 1, DestID: 3, Mode: models.ModeBus, BaseCost: 150, Duration: 75, ComfortLevel: 5},
	}
	m.fares[1] = []models.FareQuote{
		{ID: 3, TransportID: 1, AppName: "Rapido", Fare: 480, EstimatedTime: 55},
		{ID: 2, TransportID: 1, AppName: "Ola", Fare: 520, EstimatedTime: 50},
		{ID: 1, TransportID: 1, AppName: "Uber", Fare: 550, EstimatedTime: 45},
	}
}

func (m *memStore) FindAll(ctx context.Context) ([]models.Destination, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Destination{}, m.destinations...), nil
}

func (m *memStore) FindByID(ctx context.Context, id domain.ID) (models.Destination, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.destinations {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Destination{}, domain.NotFoundError{Resource: "destination"}
}

func (m *memStore) SearchByName(ctx context.Context, term string) ([]models.Destination, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Destination{}
	for _, d := range m.destinations {
		if strings.Contains(strings.ToLower(d.Name), strings.ToLower(term)) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memStore) Create(ctx context.Context, in models.DestinationInput) (domain.ID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := domain.ID(len(m.destinations) + 100)
	m.destinations = append(m.destinations, models.Destination{ID: id, Name: in.Name, City: in.City, State: in.State, Pincode: in.Pincode})
	return id, nil
}

func (m *memStore) FindByRoute(ctx context.Context, sourceID, destID domain.ID) ([]models.TransportOption, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.TransportOption{}
	for _, o := range m.options {
		if o.SourceID == sourceID && o.DestID == destID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memStore) FindByTransportID(ctx context.Context, transID domain.ID) ([]models.FareQuote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fareHits++
	if m.fareErr != nil {
		return nil, m.fareErr
	}
	return append([]models.FareQuote{}, m.fares[transID]...), nil
}

// memTrips is a view of memStore satisfying TripStore, whose method names clash
// with the destination ones.
type memTrips struct{ *memStore }

func (t memTrips) Create(ctx context.Context, rec models.TripRecord) (domain.ID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.tripErr != nil {
		return 0, t.tripErr
	}
	id := domain.ID(len(t.trips) + 1)
	t.trips = append(t.trips, models.Trip{
		ID: id, UserID: rec.UserID, SourceID: rec.SourceID, DestID: rec.DestID,
		SelectedMode: rec.SelectedMode, TotalCost: rec.TotalCost,
		TotalDuration: rec.TotalDuration, ComfortScore: rec.ComfortScore,
		CreatedAt: time.Date(2024, 3, 1, 9, 0, int(id), 0, time.UTC),
	})
	return id, nil
}

func (t memTrips) FindByUser(ctx context.Context, userID domain.ID) ([]models.Trip, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := []models.Trip{}
	for i := len(t.trips) - 1; i >= 0; i-- {
		if t.trips[i].UserID == userID {
			out = append(out, t.trips[i])
		}
	}
	return out, nil
}

func (t memTrips) FindByID(ctx context.Context, tripID, userID domain.ID) (models.Trip, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, tr := range t.trips {
		if tr.ID == tripID && tr.UserID == userID {
			return tr, nil
		}
	}
	return models.Trip{}, domain.NotFoundError{Resource: "trip"}
}

func (t memTrips) Delete(ctx context.Context, tripID, userID domain.ID) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, tr := range t.trips {
		if tr.ID == tripID && tr.UserID == userID {
			t.trips = append(t.trips[:i], t.trips[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memUsers struct{ *memStore }

func (u memUsers) Create(ctx context.Context, usr models.User) (domain.ID, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, x := range u.users {
		if x.Email == usr.Email {
			return 0, domain.ConflictError{Resource: "user", Msg: "user already exists with this email"}
		}
	}
	usr.ID = domain.ID(len(u.users) + 1)
	u.users = append(u.users, usr)
	return usr.ID, nil
}

func (u memUsers) FindByEmail(ctx context.Context, email string) (models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, x := range u.users {
		if x.Email == email {
			return x, nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "user"}
}

func (u memUsers) FindByID(ctx context.Context, id domain.ID) (models.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, x := range u.users {
		if x.ID == id {
			x.PasswordHash = ""
			return x, nil
		}
	}
	return models.User{}, domain.NotFoundError{Resource: "user"}
}

func (u memUsers) UpdateProfile(ctx context.Context, id domain.ID, name, phone string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	for i := range u.users {
		if u.users[i].ID == id {
			u.users[i].Name = name
			u.users[i].Phone = phone
		}
	}
	return nil
}

func newTripService(m *memStore) TripService {
	return TripService{Destinations: m, Transports: m, Fares: m, Trips: memTrips{m}, RequestID: "test"}
}
