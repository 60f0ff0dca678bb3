// Package stripchart maintains the scrolling window of readings shown on
// the console's strip chart and renders it as text.
package stripchart

import (
	"github.com/fortyfoot/threepio/internal/buffer"
	"github.com/fortyfoot/threepio/pkg/models"
)

// Point is one plotted reading. X is the 1-based position of the reading
// in the session buffer.
type Point struct {
	X int
	Y models.Reading
}

// Frame is a complete chart snapshot built for a single tick.
type Frame struct {
	Points []Point
	Min    models.Reading
	Max    models.Reading
}

// Empty reports whether the frame has nothing to draw.
func (f Frame) Empty() bool {
	return len(f.Points) == 0
}

// Renderer tracks which part of the buffer is visible.
//
// The visible series is buffer[offset:]. offset only grows: readings that
// scrolled off are not brought back when the budget is raised.
type Renderer struct {
	budget int
	offset int
}

// NewRenderer creates a Renderer that shows at most budget readings.
// A non-positive budget is replaced by models.TicksDefault.
func NewRenderer(budget int) *Renderer {
	if budget <= 0 {
		budget = models.TicksDefault
	}
	return &Renderer{budget: budget}
}

// Budget returns the display tick budget.
func (r *Renderer) Budget() int {
	return r.budget
}

// SetBudget changes the display tick budget used by the next Update.
// Non-positive values are ignored.
func (r *Renderer) SetBudget(n int) {
	if n > 0 {
		r.budget = n
	}
}

// Offset returns how many readings have scrolled off the chart.
func (r *Renderer) Offset() int {
	return r.offset
}

// Visible returns the readings currently on the chart.
func (r *Renderer) Visible(buf *buffer.Buffer) []models.Reading {
	return buf.Since(r.offset)
}

// Update scrolls the window so at most Budget readings remain visible and
// returns a fresh frame of the visible series.
func (r *Renderer) Update(buf *buffer.Buffer) Frame {
	if r.offset > buf.Len() {
		r.offset = buf.Len()
	}
	for buf.Len()-r.offset > r.budget {
		r.offset++
	}
	return r.frame(buf)
}

// Clear drains the visible series. The buffer itself is untouched.
func (r *Renderer) Clear(buf *buffer.Buffer) {
	for buf.Len()-r.offset > 0 {
		r.offset++
	}
}

func (r *Renderer) frame(buf *buffer.Buffer) Frame {
	visible := buf.Since(r.offset)
	f := Frame{Points: make([]Point, len(visible))}
	for i, v := range visible {
		f.Points[i] = Point{X: r.offset + i + 1, Y: v}
		if i == 0 || v < f.Min {
			f.Min = v
		}
		if i == 0 || v > f.Max {
			f.Max = v
		}
	}
	return f
}
