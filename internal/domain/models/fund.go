package models

// Fund identifies one fund in the configured universe. The universe is
// read-only input for a run; funds are never created or mutated by the engine.
type Fund struct {
	Code  string `json:"code" yaml:"code" validate:"required"`
	Name  string `json:"name" yaml:"name" validate:"required"`
	SecID string `json:"secid" yaml:"secid" validate:"required"`
}

// Observation is a single NAV data point for one fund on one day.
// Date is an ISO-8601 calendar date (YYYY-MM-DD).
type Observation struct {
	Date string  `json:"date"`
	NAV  float64 `json:"nav"`
}

// Series is a fund's NAV history, strictly increasing by date with no
// duplicate dates. Only the series store mutates it, via Merge.
type Series []Observation

// Latest returns the most recent observation, or false on an empty series.
func (s Series) Latest() (Observation, bool) {
	if len(s) == 0 {
		return Observation{}, false
	}
	return s[len(s)-1], true
}

// Values returns the NAV sequence in date-ascending order.
func (s Series) Values() []float64 {
	vals := make([]float64, len(s))
	for i, o := range s {
		vals[i] = o.NAV
	}
	return vals
}
