package models

import (
	"fmt"
	"strings"
	"time"
)

// ObservationKind is the type of observation being configured.
type ObservationKind string

const (
	ObservationScan     ObservationKind = "scan"
	ObservationSurvey   ObservationKind = "survey"
	ObservationSpectrum ObservationKind = "spectrum"
)

// Valid returns true if the kind is a known value.
func (k ObservationKind) Valid() bool {
	switch k {
	case ObservationScan, ObservationSurvey, ObservationSpectrum:
		return true
	default:
		return false
	}
}

// Title returns the dialogue title for the kind, e.g. "New Scan".
func (k ObservationKind) Title() string {
	s := string(k)
	if s == "" {
		return "New Observation"
	}
	return "New " + strings.ToUpper(s[:1]) + s[1:]
}

// Interval is the nominal span of the active observation.
// Start and End are offsets from midnight.
type Interval struct {
	Start time.Duration
	End   time.Duration
}

// Length returns End - Start.
func (i Interval) Length() time.Duration {
	return i.End - i.Start
}

// String formats the interval as HH:MM:SS-HH:MM:SS.
func (i Interval) String() string {
	return formatClock(i.Start) + "-" + formatClock(i.End)
}

func formatClock(d time.Duration) string {
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}
