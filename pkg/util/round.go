package util

import "math"

// Round rounds v half-away-from-zero to the given number of decimal places.
// Rounded output is part of the indicator contract, so all metrics go
// through here rather than formatting at render time.
func Round(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}

// Ptr returns a pointer to v. Optional metrics are nullable fields.
func Ptr(v float64) *float64 { return &v }
