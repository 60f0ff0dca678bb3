// Package session holds the state of one console session and the tick
// that advances it.
//
// Session is the UI-independent view-model behind the console window:
// the TUI calls Tick on its timer and renders the returned View. All
// methods must be called from a single goroutine.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fortyfoot/threepio/internal/buffer"
	"github.com/fortyfoot/threepio/internal/clock"
	"github.com/fortyfoot/threepio/internal/logging"
	"github.com/fortyfoot/threepio/internal/observation"
	"github.com/fortyfoot/threepio/internal/source"
	"github.com/fortyfoot/threepio/internal/stripchart"
	"github.com/fortyfoot/threepio/pkg/models"
)

// DefaultInterval is the observation interval before one is configured.
var DefaultInterval = models.Interval{Start: 0, End: time.Second}

// View is a snapshot of everything the console displays.
type View struct {
	SessionID   string
	Elapsed     time.Duration
	ElapsedText string
	// Progress is the observation percentage in [0, 100). It is zero and
	// ProgressErr is set when the interval has no length.
	Progress    float64
	ProgressErr error
	Frame       stripchart.Frame
	BufferLen   int
	Budget      int
	Speed       models.SpeedPreset
	Interval    models.Interval
	Observation *observation.Observation
}

// Session owns the reading buffer, chart window, clock and active
// observation interval.
type Session struct {
	id       string
	clock    *clock.Clock
	buf      *buffer.Buffer
	chart    *stripchart.Renderer
	src      source.Source
	logger   *logging.DebugLogger
	speed    models.SpeedPreset
	interval models.Interval
	obs      *observation.Observation
	frame    stripchart.Frame
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces the wall clock.
func WithClock(c *clock.Clock) Option {
	return func(s *Session) { s.clock = c }
}

// WithLogger sets the debug logger.
func WithLogger(l *logging.DebugLogger) Option {
	return func(s *Session) { s.logger = l }
}

// WithSpeed selects the initial speed preset. Unknown presets select
// SpeedDefault so the reported speed always matches the budget.
func WithSpeed(p models.SpeedPreset) Option {
	return func(s *Session) {
		if !p.Valid() {
			p = models.SpeedDefault
		}
		s.speed = p
		s.chart.SetBudget(p.DisplayTicks())
	}
}

// New creates a session reading from src.
func New(src source.Source, opts ...Option) *Session {
	s := &Session{
		id:       uuid.New().String()[:8],
		clock:    clock.New(time.Now()),
		buf:      buffer.New(),
		chart:    stripchart.NewRenderer(models.TicksDefault),
		src:      src,
		logger:   logging.NopLogger(),
		speed:    models.SpeedDefault,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger.Log("session %s started, budget=%d", s.id, s.chart.Budget())
	return s
}

// ID returns the short session identifier.
func (s *Session) ID() string {
	return s.id
}

// Tick advances the session by one reading and returns the new view.
// If the source fails, no reading is appended and the error is returned
// alongside a view that still reflects the updated clock.
func (s *Session) Tick(ctx context.Context) (View, error) {
	r, err := s.src.Next(ctx)
	if err != nil {
		s.frame = s.chart.Update(s.buf)
		return s.View(), fmt.Errorf("next reading: %w", err)
	}
	s.buf.Append(r)
	s.frame = s.chart.Update(s.buf)
	return s.View(), nil
}

// View returns the current snapshot without advancing the session.
func (s *Session) View() View {
	elapsed := s.clock.Elapsed()
	progress, perr := clock.Progress(elapsed, s.interval)
	return View{
		SessionID:   s.id,
		Elapsed:     elapsed,
		ElapsedText: clock.FormatElapsed(elapsed),
		Progress:    progress,
		ProgressErr: perr,
		Frame:       s.frame,
		BufferLen:   s.buf.Len(),
		Budget:      s.chart.Budget(),
		Speed:       s.speed,
		Interval:    s.interval,
		Observation: s.obs,
	}
}

// SetSpeed selects a speed preset. The new budget applies from the next
// tick.
func (s *Session) SetSpeed(p models.SpeedPreset) {
	if !p.Valid() {
		p = models.SpeedDefault
	}
	s.speed = p
	s.chart.SetBudget(p.DisplayTicks())
	s.logger.Log("speed set to %s (%d ticks)", p, s.chart.Budget())
}

// SetInterval replaces the active observation interval.
func (s *Session) SetInterval(iv models.Interval) {
	s.interval = iv
	s.logger.Log("interval set to %s (%s)", iv, iv.Length())
}

// ApplyObservation makes obs the active observation.
func (s *Session) ApplyObservation(obs observation.Observation) {
	s.obs = &obs
	s.logger.Log("observation %s (%s) confirmed", obs.ID, obs.Kind)
	s.SetInterval(obs.Interval)
}

// ClearChart empties the visible chart. Collected readings are kept.
func (s *Session) ClearChart() {
	s.chart.Clear(s.buf)
	s.frame = stripchart.Frame{}
	s.logger.Log("chart cleared at %d readings", s.buf.Len())
}

// Visible returns the readings currently on the chart.
func (s *Session) Visible() []models.Reading {
	return s.chart.Visible(s.buf)
}
