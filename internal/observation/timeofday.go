// Package observation implements the new-observation dialogue flow:
// collecting a start and end time of day and handing the resulting
// interval back to the console.
package observation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fortyfoot/threepio/pkg/models"
)

var (
	// ErrInvalidTime is returned for text that is not a HH:MM:SS time of day.
	ErrInvalidTime = errors.New("invalid time of day")
	// ErrInvalidInterval is returned when the end time is not after the start.
	ErrInvalidInterval = errors.New("end time must be after start time")
)

// TimeOfDay is a wall-clock time with no date attached.
type TimeOfDay struct {
	Hours   int
	Minutes int
	Seconds int
}

// ParseTimeOfDay parses "HH:MM:SS". Each field may be one or two digits.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return TimeOfDay{}, fmt.Errorf("%w: %q does not match HH:MM:SS", ErrInvalidTime, s)
	}

	limits := [3]int{23, 59, 59}
	var fields [3]int
	for i, p := range parts {
		if len(p) == 0 || len(p) > 2 || !allDigits(p) {
			return TimeOfDay{}, fmt.Errorf("%w: %q does not match HH:MM:SS", ErrInvalidTime, s)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("%w: %q does not match HH:MM:SS", ErrInvalidTime, s)
		}
		if n > limits[i] {
			return TimeOfDay{}, fmt.Errorf("%w: %q field %d out of range", ErrInvalidTime, s, i+1)
		}
		fields[i] = n
	}

	return TimeOfDay{Hours: fields[0], Minutes: fields[1], Seconds: fields[2]}, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Duration returns the offset of t from midnight.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.Hours)*time.Hour +
		time.Duration(t.Minutes)*time.Minute +
		time.Duration(t.Seconds)*time.Second
}

// String formats t as HH:MM:SS.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
}

// ParseInterval parses start and end times into an interval.
// Intervals that cross midnight are rejected with ErrInvalidInterval.
func ParseInterval(start, end string) (models.Interval, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return models.Interval{}, fmt.Errorf("start: %w", err)
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return models.Interval{}, fmt.Errorf("end: %w", err)
	}

	iv := models.Interval{Start: s.Duration(), End: e.Duration()}
	if iv.Length() <= 0 {
		return models.Interval{}, fmt.Errorf("%s to %s: %w", s, e, ErrInvalidInterval)
	}
	return iv, nil
}
