package optimizer

// Range is the observed [Min, Max] of one dimension across an option set.
type Range struct {
	Min float64
	Max float64
}

func (r Range) include(v float64) Range {
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
	return r
}

// lowerIsBetter maps v onto 0..100 where Min scores 100. A zero-width range
// scores everything 100.
func (r Range) lowerIsBetter(v float64) float64 {
	if r.Max == r.Min {
		return 100
	}
	return 100 * (1 - (v-r.Min)/(r.Max-r.Min))
}

// higherIsBetter maps v onto 0..100 where Max scores 100.
func (r Range) higherIsBetter(v float64) float64 {
	if r.Max == r.Min {
		return 100
	}
	return 100 * (v - r.Min) / (r.Max - r.Min)
}

// Bounds holds the per-dimension ranges for one request.
type Bounds struct {
	Cost    Range
	Time    Range
	Comfort Range
}

// ComputeBounds folds the option set into its per-dimension ranges.
func ComputeBounds(options []NormalizedOption) Bounds {
	if len(options) == 0 {
		return Bounds{}
	}
	first := options[0]
	b := Bounds{
		Cost:    Range{Min: first.ActualCost, Max: first.ActualCost},
		Time:    Range{Min: float64(first.ActualTime), Max: float64(first.ActualTime)},
		Comfort: Range{Min: float64(first.Comfort), Max: float64(first.Comfort)},
	}
	for _, o := range options[1:] {
		b.Cost = b.Cost.include(o.ActualCost)
		b.Time = b.Time.include(float64(o.ActualTime))
		b.Comfort = b.Comfort.include(float64(o.Comfort))
	}
	return b
}
