package source

import (
	"context"
	"fmt"

	"github.com/fortyfoot/threepio/pkg/models"
)

// DAQ is a data acquisition device the console can read from.
// Drivers live outside this module.
type DAQ interface {
	Init(ctx context.Context) error
	Start(ctx context.Context) error
	ReadOne(ctx context.Context, channel int) (int64, error)
}

// Discoverer locates an attached DAQ.
type Discoverer func(ctx context.Context) (DAQ, error)

// DAQSource reads one sample per tick from a DAQ channel. The device is
// discovered, initialised and started on the first call to Next.
type DAQSource struct {
	discover Discoverer
	channel  int
	dev      DAQ
}

// NewDAQSource creates a source reading from channel of the discovered
// device.
func NewDAQSource(discover Discoverer, channel int) *DAQSource {
	return &DAQSource{discover: discover, channel: channel}
}

// Next implements Source.
func (d *DAQSource) Next(ctx context.Context) (models.Reading, error) {
	if d.dev == nil {
		if err := d.open(ctx); err != nil {
			return 0, err
		}
	}
	v, err := d.dev.ReadOne(ctx, d.channel)
	if err != nil {
		return 0, fmt.Errorf("read channel %d: %w", d.channel, err)
	}
	return models.Reading(v), nil
}

func (d *DAQSource) open(ctx context.Context) error {
	dev, err := d.discover(ctx)
	if err != nil {
		return fmt.Errorf("discover daq: %w", err)
	}
	if err := dev.Init(ctx); err != nil {
		return fmt.Errorf("init daq: %w", err)
	}
	if err := dev.Start(ctx); err != nil {
		return fmt.Errorf("start daq: %w", err)
	}
	d.dev = dev
	return nil
}
