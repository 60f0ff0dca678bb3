package observation

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fortyfoot/threepio/pkg/models"
)

// State is the lifecycle state of a Dialogue.
type State int

const (
	StateOpen State = iota
	StateConfirmed
	StateDismissed
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateConfirmed:
		return "confirmed"
	case StateDismissed:
		return "dismissed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrClosed is returned when acting on a dialogue that is no longer open.
var ErrClosed = errors.New("dialogue is closed")

// Observation is a confirmed observation request.
type Observation struct {
	ID       string
	Kind     models.ObservationKind
	Interval models.Interval
}

// Dialogue collects the interval for a new observation.
//
// A Dialogue starts Open and ends either Confirmed, after a successful
// Confirm, or Dismissed. A failed Confirm leaves it Open.
type Dialogue struct {
	kind      models.ObservationKind
	state     State
	onConfirm func(Observation)
}

// NewDialogue opens a dialogue for kind. onConfirm is called once with
// the confirmed observation; it may be nil.
func NewDialogue(kind models.ObservationKind, onConfirm func(Observation)) *Dialogue {
	return &Dialogue{kind: kind, onConfirm: onConfirm}
}

// Kind returns the kind of observation being configured.
func (d *Dialogue) Kind() models.ObservationKind {
	return d.kind
}

// Title returns the dialogue title.
func (d *Dialogue) Title() string {
	return d.kind.Title()
}

// State returns the current state.
func (d *Dialogue) State() State {
	return d.state
}

// Confirm parses the start and end fields and, if they form a valid
// interval, closes the dialogue and reports the observation.
func (d *Dialogue) Confirm(start, end string) (Observation, error) {
	if d.state != StateOpen {
		return Observation{}, ErrClosed
	}

	iv, err := ParseInterval(start, end)
	if err != nil {
		return Observation{}, err
	}

	obs := Observation{
		ID:       uuid.New().String()[:8],
		Kind:     d.kind,
		Interval: iv,
	}
	d.state = StateConfirmed
	if d.onConfirm != nil {
		d.onConfirm(obs)
	}
	return obs, nil
}

// Dismiss closes the dialogue without reporting anything.
func (d *Dialogue) Dismiss() {
	if d.state == StateOpen {
		d.state = StateDismissed
	}
}
