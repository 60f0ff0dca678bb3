package source

import (
	"context"
	"errors"
	"testing"

	"github.com/fortyfoot/threepio/pkg/models"
)

func TestRandomWalk_StepBounds(t *testing.T) {
	w := NewRandomWalk(2, 42)
	ctx := context.Background()

	var prev models.Reading
	for i := 0; i < 10000; i++ {
		r, err := w.Next(ctx)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		d := r - prev
		if d < -2 || d > 2 {
			t.Fatalf("step %d: delta %d outside [-2, 2]", i, d)
		}
		prev = r
	}
}

func TestRandomWalk_SeedIsDeterministic(t *testing.T) {
	a, b := NewRandomWalk(2, 7), NewRandomWalk(2, 7)
	ctx := context.Background()
	for i := 0; i < 100; i++ {
		ra, _ := a.Next(ctx)
		rb, _ := b.Next(ctx)
		if ra != rb {
			t.Fatalf("reading %d differs: %d vs %d", i, ra, rb)
		}
	}
}

func TestRandomWalk_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewRandomWalk(2, 1).Next(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestSine_NonNegative(t *testing.T) {
	s := &Sine{}
	for i := 0; i < 500; i++ {
		r, err := s.Next(context.Background())
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if r < 0 || r > 90000 {
			t.Fatalf("reading %d = %d outside [0, 90000]", i, r)
		}
	}
}

func TestNew(t *testing.T) {
	if _, err := New(KindRandomWalk, Options{}); err != nil {
		t.Errorf("random walk: %v", err)
	}
	if _, err := New(KindSine, Options{}); err != nil {
		t.Errorf("sine: %v", err)
	}
	if _, err := New("telepathy", Options{}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
	if _, err := New(KindDAQ, Options{Channel: 1}); !errors.Is(err, ErrNoDiscoverer) {
		t.Errorf("err = %v, want ErrNoDiscoverer", err)
	}
}

func TestNew_DAQReadsConfiguredChannel(t *testing.T) {
	dev := &fakeDAQ{}
	src, err := New(KindDAQ, Options{
		Channel:  3,
		Discover: func(ctx context.Context) (DAQ, error) { return dev, nil },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 1; i <= 2; i++ {
		r, err := src.Next(context.Background())
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if r != models.Reading(3*i) {
			t.Errorf("reading %d = %d, want %d", i, r, 3*i)
		}
	}
}

func TestValidKind(t *testing.T) {
	for _, k := range []Kind{KindRandomWalk, KindSine, KindDAQ} {
		if !ValidKind(k) {
			t.Errorf("ValidKind(%q) = false", k)
		}
	}
	for _, k := range []Kind{"", "telepathy"} {
		if ValidKind(k) {
			t.Errorf("ValidKind(%q) = true", k)
		}
	}
}

type fakeDAQ struct {
	calls   []string
	value   int64
	readErr error
}

func (f *fakeDAQ) Init(ctx context.Context) error {
	f.calls = append(f.calls, "init")
	return nil
}

func (f *fakeDAQ) Start(ctx context.Context) error {
	f.calls = append(f.calls, "start")
	return nil
}

func (f *fakeDAQ) ReadOne(ctx context.Context, channel int) (int64, error) {
	f.calls = append(f.calls, "read")
	f.value += int64(channel)
	return f.value, f.readErr
}

func TestDAQSource_OpensOnce(t *testing.T) {
	dev := &fakeDAQ{}
	discovered := 0
	src := NewDAQSource(func(ctx context.Context) (DAQ, error) {
		discovered++
		return dev, nil
	}, 1)

	for i := 1; i <= 3; i++ {
		r, err := src.Next(context.Background())
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if r != models.Reading(i) {
			t.Errorf("reading %d = %d", i, r)
		}
	}

	if discovered != 1 {
		t.Errorf("discovered %d times, want 1", discovered)
	}
	want := []string{"init", "start", "read", "read", "read"}
	if len(dev.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", dev.calls, want)
	}
	for i := range want {
		if dev.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, dev.calls[i], want[i])
		}
	}
}

func TestDAQSource_Errors(t *testing.T) {
	boom := errors.New("no device")
	src := NewDAQSource(func(ctx context.Context) (DAQ, error) { return nil, boom }, 1)
	if _, err := src.Next(context.Background()); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped discovery error", err)
	}

	readErr := errors.New("timeout")
	src = NewDAQSource(func(ctx context.Context) (DAQ, error) {
		return &fakeDAQ{readErr: readErr}, nil
	}, 2)
	if _, err := src.Next(context.Background()); !errors.Is(err, readErr) {
		t.Errorf("err = %v, want wrapped read error", err)
	}
}
