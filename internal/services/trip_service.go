package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	intdb "travelmitr/internal/db"
	"travelmitr/internal/domain"
	"travelmitr/internal/domain/models"
	"travelmitr/internal/metrics"
	"travelmitr/internal/optimizer"
	"travelmitr/internal/repositories"
	"travelmitr/internal/utils"
)

// TripService runs the route optimizer and manages the caller's saved trips.
type TripService struct {
	Destinations DestinationStore
	Transports   TransportStore
	Fares        FareStore
	Trips        TripStore
	RequestID    string
}

// NewTripService wires the MySQL repositories over db.
func NewTripService(db intdb.DBTX, requestID string) TripService {
	return TripService{
		Destinations: repositories.DestinationRepository{DB: db},
		Transports:   repositories.TransportRepository{DB: db},
		Fares:        repositories.FareRepository{DB: db},
		Trips:        repositories.TripRepository{DB: db},
		RequestID:    requestID,
	}
}

// OptimizeInput identifies the route either by id or, when an id is zero, by
// free text resolved against destination names.
type OptimizeInput struct {
	SourceID   domain.ID
	DestID     domain.ID
	SourceText string
	DestText   string
	Weights    domain.Weights
}

type Recommendation struct {
	Mode          models.Mode        `json:"mode"`
	AppName       string             `json:"appName"`
	TotalCost     float64            `json:"totalCost"`
	TotalDuration int                `json:"totalDuration"`
	Comfort       int                `json:"comfort"`
	Score         string             `json:"score"`
	Source        models.Destination `json:"source"`
	Destination   models.Destination `json:"destination"`
}

type RankedOption struct {
	Mode     models.Mode        `json:"mode"`
	AppName  string             `json:"appName"`
	Cost     float64            `json:"cost"`
	Duration int                `json:"duration"`
	Comfort  int                `json:"comfort"`
	Score    string             `json:"score"`
	Rides    []models.FareQuote `json:"rides"`
}

type OptimizeResult struct {
	TripID         domain.ID      `json:"tripId"`
	Recommendation Recommendation `json:"recommendation"`
	AllOptions     []RankedOption `json:"allOptions"`
}

// Optimize ranks every transport option on the route and stores the winner as
// a Trip. The insert is the final step; any earlier failure writes nothing.
func (s TripService) Optimize(ctx context.Context, userID domain.ID, in OptimizeInput) (OptimizeResult, error) {
	res, err := s.optimize(ctx, userID, in)
	outcome := "ok"
	if err != nil {
		outcome = domain.Kind(err)
		utils.LogError(s.RequestID, "trips", "optimize", err)
	}
	metrics.Optimizations.WithLabelValues(outcome).Inc()
	return res, err
}

func (s TripService) optimize(ctx context.Context, userID domain.ID, in OptimizeInput) (OptimizeResult, error) {
	src, err := s.resolveEndpoint(ctx, in.SourceID, in.SourceText)
	if err != nil {
		return OptimizeResult{}, err
	}
	dst, err := s.resolveEndpoint(ctx, in.DestID, in.DestText)
	if err != nil {
		return OptimizeResult{}, err
	}
	if src == 0 || dst == 0 {
		return OptimizeResult{}, domain.ValidationError{Field: "source_id", Msg: "source and destination are required"}
	}
	if src == dst {
		return OptimizeResult{}, domain.ValidationError{Field: "dest_id", Msg: "source and destination must differ"}
	}

	options, err := s.Transports.FindByRoute(ctx, src, dst)
	if err != nil {
		return OptimizeResult{}, asStorage("find transport options", err)
	}
	if len(options) == 0 {
		return OptimizeResult{}, domain.NoRouteError{SourceID: src, DestID: dst}
	}

	enriched, err := s.enrich(ctx, options)
	if err != nil {
		return OptimizeResult{}, err
	}

	ranked, err := optimizer.Rank(enriched, in.Weights)
	if err != nil {
		return OptimizeResult{}, domain.InternalError{Msg: "ranking failed", Err: err}
	}
	best := ranked[0]

	source, err := s.Destinations.FindByID(ctx, src)
	if err != nil {
		return OptimizeResult{}, err
	}
	destination, err := s.Destinations.FindByID(ctx, dst)
	if err != nil {
		return OptimizeResult{}, err
	}

	tripID, err := s.Trips.Create(ctx, models.TripRecord{
		UserID:        userID,
		SourceID:      src,
		DestID:        dst,
		SelectedMode:  best.Mode(),
		TotalCost:     best.Normalized.ActualCost,
		TotalDuration: best.Normalized.ActualTime,
		ComfortScore:  best.Normalized.Comfort,
	})
	if err != nil {
		return OptimizeResult{}, asStorage("create trip", err)
	}

	metrics.OptionsRanked.Observe(float64(len(ranked)))
	metrics.RecommendedModes.WithLabelValues(string(best.Mode())).Inc()
	utils.LogEvent(s.RequestID, "trips", "optimize",
		fmt.Sprintf("trip_id=%d source_id=%d dest_id=%d mode=%s cost=%s options=%d",
			tripID, src, dst, best.Mode(), utils.FormatRupee(best.Normalized.ActualCost), len(ranked)))

	out := OptimizeResult{
		TripID: tripID,
		Recommendation: Recommendation{
			Mode:          best.Mode(),
			AppName:       best.Provider(),
			TotalCost:     best.Normalized.ActualCost,
			TotalDuration: best.Normalized.ActualTime,
			Comfort:       best.Normalized.Comfort,
			Score:         utils.FormatScore(best.Composite),
			Source:        source,
			Destination:   destination,
		},
		AllOptions: make([]RankedOption, len(ranked)),
	}
	for i, r := range ranked {
		out.AllOptions[i] = RankedOption{
			Mode:     r.Mode(),
			AppName:  r.Provider(),
			Cost:     r.Normalized.ActualCost,
			Duration: r.Normalized.ActualTime,
			Comfort:  r.Normalized.Comfort,
			Score:    utils.FormatScore(r.Composite),
			Rides:    r.Normalized.Enriched.Quotes,
		}
	}
	return out, nil
}

// enrich fetches quotes for every option concurrently. Results keep the
// option order regardless of completion order; the first failure cancels the rest.
func (s TripService) enrich(ctx context.Context, options []models.TransportOption) ([]optimizer.EnrichedOption, error) {
	out := make([]optimizer.EnrichedOption, len(options))
	g, gctx := errgroup.WithContext(ctx)
	for i, opt := range options {
		g.Go(func() error {
			quotes, err := s.Fares.FindByTransportID(gctx, opt.ID)
			if err != nil {
				return err
			}
			out[i] = optimizer.Enrich(opt, quotes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, asStorage("find fare quotes", err)
	}
	return out, nil
}

// resolveEndpoint returns id, or the first destination whose name contains
// text when id is zero. Unresolvable text yields zero.
func (s TripService) resolveEndpoint(ctx context.Context, id domain.ID, text string) (domain.ID, error) {
	text = utils.NormalizeSpace(text)
	if id != 0 || text == "" {
		return id, nil
	}
	hits, err := s.Destinations.SearchByName(ctx, text)
	if err != nil {
		return 0, asStorage("search destinations", err)
	}
	if len(hits) == 0 {
		return 0, nil
	}
	return hits[0].ID, nil
}

func (s TripService) ListTrips(ctx context.Context, userID domain.ID) ([]models.Trip, error) {
	return s.Trips.FindByUser(ctx, userID)
}

func (s TripService) GetTrip(ctx context.Context, userID, tripID domain.ID) (models.Trip, error) {
	return s.Trips.FindByID(ctx, tripID, userID)
}

func (s TripService) DeleteTrip(ctx context.Context, userID, tripID domain.ID) error {
	ok, err := s.Trips.Delete(ctx, tripID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFoundError{Resource: "trip"}
	}
	utils.LogEvent(s.RequestID, "trips", "delete", fmt.Sprintf("trip_id=%d", tripID))
	return nil
}

// asStorage keeps typed domain errors and wraps anything else as StorageError.
func asStorage(op string, err error) error {
	if errors.Is(err, context.Canceled) || domain.Kind(err) != domain.KindInternal {
		return err
	}
	return domain.StorageError{Op: op, Err: err}
}
