package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fortyfoot/threepio/internal/observation"
	"github.com/fortyfoot/threepio/internal/stylesheet"
	"github.com/fortyfoot/threepio/pkg/models"
)

// ObservationConfirmedMsg is sent when the form is confirmed with a valid
// interval.
type ObservationConfirmedMsg struct {
	Observation observation.Observation
}

// ObservationFailedMsg is sent when the form is confirmed with input that
// does not parse. The form stays open.
type ObservationFailedMsg struct {
	Err error
}

// ObservationForm is the modal form for a new scan, survey or spectrum.
// It wraps an observation.Dialogue with start and end text fields.
type ObservationForm struct {
	dialogue *observation.Dialogue
	start    textinput.Model
	end      textinput.Model
	focus    int
}

// NewObservationForm opens a form for kind.
func NewObservationForm(kind models.ObservationKind) *ObservationForm {
	newField := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 8
		ti.Width = 10
		return ti
	}

	f := &ObservationForm{
		dialogue: observation.NewDialogue(kind, nil),
		start:    newField("00:00:00"),
		end:      newField("00:00:10"),
	}
	f.start.Focus()
	return f
}

// Init starts the cursor blinking in the focused field.
func (f *ObservationForm) Init() tea.Cmd {
	return textinput.Blink
}

// Dialogue returns the underlying dialogue state machine.
func (f *ObservationForm) Dialogue() *observation.Dialogue {
	return f.dialogue
}

// Open reports whether the form is still awaiting input.
func (f *ObservationForm) Open() bool {
	return f.dialogue.State() == observation.StateOpen
}

// SetValues fills both fields.
func (f *ObservationForm) SetValues(start, end string) {
	f.start.SetValue(start)
	f.end.SetValue(end)
}

// Update handles input for the form.
func (f *ObservationForm) Update(msg tea.Msg) (*ObservationForm, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			f.dialogue.Dismiss()
			return f, nil
		case "tab", "shift+tab", "up", "down":
			return f, f.toggleFocus()
		case "enter":
			obs, err := f.dialogue.Confirm(f.start.Value(), f.end.Value())
			if err != nil {
				return f, func() tea.Msg { return ObservationFailedMsg{Err: err} }
			}
			return f, func() tea.Msg { return ObservationConfirmedMsg{Observation: obs} }
		}
	}

	var cmd tea.Cmd
	if f.focus == 0 {
		f.start, cmd = f.start.Update(msg)
	} else {
		f.end, cmd = f.end.Update(msg)
	}
	return f, cmd
}

func (f *ObservationForm) toggleFocus() tea.Cmd {
	if f.focus == 0 {
		f.focus = 1
		f.start.Blur()
		return f.end.Focus()
	}
	f.focus = 0
	f.end.Blur()
	return f.start.Focus()
}

// View renders the form.
func (f *ObservationForm) View(st stylesheet.Styles, width int) string {
	label := func(s string) string {
		return st.Muted.Width(8).Render(s)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		st.Title.Render(f.dialogue.Title()),
		"",
		label("Start")+f.start.View(),
		label("End")+f.end.View(),
		"",
		st.Muted.Render("enter ok · esc cancel · tab switch field"),
	)
	return st.Box.Width(min(width-2, 50)).Render(body)
}
