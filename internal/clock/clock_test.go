package clock

import (
	"errors"
	"testing"
	"time"

	"github.com/fortyfoot/threepio/pkg/models"
)

func TestClock_Elapsed(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	now := start
	c := NewWithSource(start, func() time.Time { return now })

	if c.Elapsed() != 0 {
		t.Errorf("Elapsed at start = %v, want 0", c.Elapsed())
	}

	now = start.Add(1500 * time.Millisecond)
	if c.Elapsed() != 1500*time.Millisecond {
		t.Errorf("Elapsed = %v, want 1.5s", c.Elapsed())
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "T+0.00s"},
		{1234 * time.Millisecond, "T+1.23s"},
		{90 * time.Second, "T+90.00s"},
	}
	for _, tt := range tests {
		if got := FormatElapsed(tt.d); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestProgress(t *testing.T) {
	iv := models.Interval{Start: 0, End: 10 * time.Second}

	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0},
		{5 * time.Second, 50},
		{10 * time.Second, 0},
		{12500 * time.Millisecond, 25},
	}
	for _, tt := range tests {
		got, err := Progress(tt.elapsed, iv)
		if err != nil {
			t.Fatalf("Progress(%v) error: %v", tt.elapsed, err)
		}
		if got != tt.want {
			t.Errorf("Progress(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestProgress_EmptyInterval(t *testing.T) {
	for _, iv := range []models.Interval{
		{Start: time.Hour, End: time.Hour},
		{Start: time.Hour, End: time.Minute},
	} {
		_, err := Progress(time.Second, iv)
		if !errors.Is(err, ErrEmptyInterval) {
			t.Errorf("Progress over %s: err = %v, want ErrEmptyInterval", iv, err)
		}
	}
}
