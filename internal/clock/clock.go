// Package clock tracks elapsed session time and observation progress.
package clock

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/fortyfoot/threepio/pkg/models"
)

// ErrEmptyInterval is returned when progress is requested against an
// interval whose end is not after its start.
var ErrEmptyInterval = errors.New("observation interval has no length")

// Clock measures wall-clock time elapsed since a fixed start.
type Clock struct {
	start time.Time
	now   func() time.Time
}

// New creates a Clock that started at start.
func New(start time.Time) *Clock {
	return &Clock{start: start, now: time.Now}
}

// NewWithSource creates a Clock that reads the current time from now.
// Used by tests to drive time deterministically.
func NewWithSource(start time.Time, now func() time.Time) *Clock {
	return &Clock{start: start, now: now}
}

// Start returns the time the clock started.
func (c *Clock) Start() time.Time {
	return c.start
}

// Now returns the current time.
func (c *Clock) Now() time.Time {
	return c.now()
}

// Elapsed returns the time since the clock started.
func (c *Clock) Elapsed() time.Duration {
	return c.now().Sub(c.start)
}

// FormatElapsed renders an elapsed duration as "T+<seconds>s" with two
// decimal places, e.g. "T+12.34s".
func FormatElapsed(d time.Duration) string {
	return fmt.Sprintf("T+%.2fs", d.Seconds())
}

// Progress returns the percentage of iv covered by elapsed, wrapped into
// [0, 100). It returns ErrEmptyInterval if iv has no positive length.
func Progress(elapsed time.Duration, iv models.Interval) (float64, error) {
	length := iv.Length()
	if length <= 0 {
		return 0, fmt.Errorf("progress over %s: %w", iv, ErrEmptyInterval)
	}
	pct := math.Mod(elapsed.Seconds()/length.Seconds()*100, 100)
	if pct < 0 {
		pct += 100
	}
	return pct, nil
}
