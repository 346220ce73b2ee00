package domain

// ID is used across domain entities.
type ID int64

// Weights are the user-supplied multipliers for the cost, time and comfort scores.
// They are applied as given; nothing enforces a sum of 1 or non-negativity.
type Weights struct {
	Cost    float64 `json:"cost_weight"`
	Time    float64 `json:"time_weight"`
	Comfort float64 `json:"comfort_weight"`
}

// DefaultWeights are used for any weight the caller leaves out.
var DefaultWeights = Weights{Cost: 0.4, Time: 0.3, Comfort: 0.3}

// WeightsOrDefault fills each nil weight from DefaultWeights.
func WeightsOrDefault(cost, time, comfort *float64) Weights {
	w := DefaultWeights
	if cost != nil {
		w.Cost = *cost
	}
	if time != nil {
		w.Time = *time
	}
	if comfort != nil {
		w.Comfort = *comfort
	}
	return w
}
