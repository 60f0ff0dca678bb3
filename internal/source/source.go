// Package source produces the readings plotted on the strip chart.
//
// A Source is asked for one reading per console tick. The built-in
// sources generate test data; DAQSource adapts an acquisition device.
package source

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/fortyfoot/threepio/pkg/models"
)

// Source produces the next reading.
type Source interface {
	Next(ctx context.Context) (models.Reading, error)
}

// Kind names a built-in source.
type Kind string

const (
	KindRandomWalk Kind = "random_walk"
	KindSine       Kind = "sine"
	KindDAQ        Kind = "daq"
)

var (
	// ErrUnknownKind is returned by New for an unrecognised kind.
	ErrUnknownKind = errors.New("unknown source kind")
	// ErrNoDiscoverer is returned by New for KindDAQ without a Discoverer.
	ErrNoDiscoverer = errors.New("no daq driver available")
)

// Options configures the sources built by New.
type Options struct {
	// Step is the largest absolute change per reading of the random walk.
	Step int
	// Seed seeds the random walk. Zero picks a random seed.
	Seed uint64
	// Channel is the DAQ channel read by KindDAQ.
	Channel int
	// Discover locates the device for KindDAQ.
	Discover Discoverer
}

// ValidKind reports whether New accepts kind.
func ValidKind(kind Kind) bool {
	switch kind {
	case KindRandomWalk, KindSine, KindDAQ:
		return true
	default:
		return false
	}
}

// New builds a source by kind.
func New(kind Kind, opts Options) (Source, error) {
	switch kind {
	case KindRandomWalk, "":
		return NewRandomWalk(opts.Step, opts.Seed), nil
	case KindSine:
		return &Sine{}, nil
	case KindDAQ:
		if opts.Discover == nil {
			return nil, ErrNoDiscoverer
		}
		return NewDAQSource(opts.Discover, opts.Channel), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// RandomWalk starts at zero and moves by a uniform step in [-Step, Step]
// on every reading. The position is unbounded.
type RandomWalk struct {
	step int
	pos  int64
	rng  *rand.Rand
}

// NewRandomWalk creates a random walk. A non-positive step defaults to 2.
func NewRandomWalk(step int, seed uint64) *RandomWalk {
	if step <= 0 {
		step = 2
	}
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &RandomWalk{
		step: step,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Next implements Source.
func (w *RandomWalk) Next(ctx context.Context) (models.Reading, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	w.pos += int64(w.rng.IntN(2*w.step+1) - w.step)
	return models.Reading(w.pos), nil
}

// Sine produces a squared sine wave, useful for checking the chart scales.
type Sine struct {
	tick int
}

// Next implements Source.
func (s *Sine) Next(ctx context.Context) (models.Reading, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.tick++
	v := math.Sin(float64(s.tick)/(8*math.Pi)) * 300
	return models.Reading(int64(v * v)), nil
}
