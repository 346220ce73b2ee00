// Package optimizer ranks transport options for one route by a weighted score of
// cost, time and comfort.
//
// The pipeline has four stages, each its own value type:
//
//	models.TransportOption -> EnrichedOption -> NormalizedOption -> ScoredOption
//
// Nothing here performs I/O; callers fetch options and quotes and hand them in.
package optimizer

import (
	"errors"
	"math"
	"sort"

	"travelmitr/internal/domain"
	"travelmitr/internal/domain/models"
)

// DirectProvider is reported when an option has no fare quote.
const DirectProvider = "Direct"

// ErrNoOptions is returned when there is nothing to rank.
var ErrNoOptions = errors.New("optimizer: no options to rank")

// EnrichedOption is a transport option together with its fare quotes.
type EnrichedOption struct {
	Option   models.TransportOption
	Quotes   []models.FareQuote
	Cheapest *models.FareQuote
}

// Enrich attaches quotes to opt and picks the cheapest one. On equal fares the
// earliest quote in the slice wins.
func Enrich(opt models.TransportOption, quotes []models.FareQuote) EnrichedOption {
	out := EnrichedOption{Option: opt, Quotes: quotes}
	if out.Quotes == nil {
		out.Quotes = []models.FareQuote{}
	}
	for i := range quotes {
		if out.Cheapest == nil || quotes[i].Fare < out.Cheapest.Fare {
			q := quotes[i]
			out.Cheapest = &q
		}
	}
	return out
}

// Provider names the app behind the cheapest quote, or DirectProvider.
func (e EnrichedOption) Provider() string {
	if e.Cheapest == nil {
		return DirectProvider
	}
	return e.Cheapest.AppName
}

// NormalizedOption carries the values the option is actually scored on.
type NormalizedOption struct {
	Enriched   EnrichedOption
	ActualCost float64
	ActualTime int
	Comfort    int
}

// Normalize resolves actual cost and time from the cheapest quote when there is
// one, falling back to the option's base cost and duration.
func Normalize(e EnrichedOption) NormalizedOption {
	out := NormalizedOption{
		Enriched:   e,
		ActualCost: e.Option.BaseCost,
		ActualTime: e.Option.Duration,
		Comfort:    e.Option.ComfortLevel,
	}
	if e.Cheapest != nil {
		out.ActualCost = e.Cheapest.Fare
		out.ActualTime = e.Cheapest.EstimatedTime
	}
	return out
}

// ScoredOption is a normalized option with its 0-100 dimension scores and the
// weighted composite.
type ScoredOption struct {
	Normalized   NormalizedOption
	CostScore    float64
	TimeScore    float64
	ComfortScore float64
	Composite    float64
}

// Mode is a shortcut to the underlying option's mode.
func (s ScoredOption) Mode() models.Mode { return s.Normalized.Enriched.Option.Mode }

// Provider is a shortcut to the enriched option's provider.
func (s ScoredOption) Provider() string { return s.Normalized.Enriched.Provider() }

// RankValue is the composite used for ordering; NaN ranks as zero.
func (s ScoredOption) RankValue() float64 {
	if math.IsNaN(s.Composite) {
		return 0
	}
	return s.Composite
}

// Score scores n against the bounds of its option set.
func Score(n NormalizedOption, b Bounds, w domain.Weights) ScoredOption {
	out := ScoredOption{
		Normalized:   n,
		CostScore:    b.Cost.lowerIsBetter(n.ActualCost),
		TimeScore:    b.Time.lowerIsBetter(float64(n.ActualTime)),
		ComfortScore: b.Comfort.higherIsBetter(float64(n.Comfort)),
	}
	out.Composite = w.Cost*out.CostScore + w.Time*out.TimeScore + w.Comfort*out.ComfortScore
	return out
}

// Rank runs the whole pipeline and returns the options best first. Options
// with equal composites keep their input order.
func Rank(options []EnrichedOption, w domain.Weights) ([]ScoredOption, error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}

	normalized := make([]NormalizedOption, len(options))
	for i, e := range options {
		normalized[i] = Normalize(e)
	}

	bounds := ComputeBounds(normalized)

	scored := make([]ScoredOption, len(normalized))
	for i, n := range normalized {
		scored[i] = Score(n, bounds, w)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RankValue() > scored[j].RankValue()
	})
	return scored, nil
}
