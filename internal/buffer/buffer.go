// Package buffer holds the ordered, append-only sequence of readings
// collected during a console session.
package buffer

import "github.com/fortyfoot/threepio/pkg/models"

// Buffer is an unbounded, append-only sequence of readings.
// It is not safe for concurrent use; the console mutates it from the UI
// loop only.
type Buffer struct {
	readings []models.Reading
}

// New creates an empty Buffer.
func New() *Buffer {
	return &Buffer{}
}

// Append adds a reading to the end of the buffer.
func (b *Buffer) Append(r models.Reading) {
	b.readings = append(b.readings, r)
}

// Len returns the number of readings collected so far.
func (b *Buffer) Len() int {
	return len(b.readings)
}

// Last returns the newest reading. ok is false when the buffer is empty.
func (b *Buffer) Last() (r models.Reading, ok bool) {
	if len(b.readings) == 0 {
		return 0, false
	}
	return b.readings[len(b.readings)-1], true
}

// Since returns the readings from index from to the end.
// The returned slice aliases the buffer and must not be modified.
// Out-of-range indexes are clamped.
func (b *Buffer) Since(from int) []models.Reading {
	if from < 0 {
		from = 0
	}
	if from > len(b.readings) {
		from = len(b.readings)
	}
	return b.readings[from:]
}
