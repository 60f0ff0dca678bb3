package models

// Reading is a single sensor sample. It carries no unit; the console only
// plots it.
type Reading int64

// Readings converts a slice of raw samples to Readings.
func Readings(values ...int64) []Reading {
	out := make([]Reading, len(values))
	for i, v := range values {
		out[i] = Reading(v)
	}
	return out
}
