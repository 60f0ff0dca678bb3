package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fortyfoot/threepio/internal/stylesheet"
)

// AlertDialog is a read-only modal message with a single OK action.
type AlertDialog struct {
	message string
	closed  bool
}

// NewAlertDialog creates an alert showing message.
func NewAlertDialog(message string) *AlertDialog {
	return &AlertDialog{message: message}
}

// Message returns the alert text.
func (a *AlertDialog) Message() string {
	return a.message
}

// Closed reports whether the alert has been acknowledged.
func (a *AlertDialog) Closed() bool {
	return a.closed
}

// Update closes the alert on enter or escape.
func (a *AlertDialog) Update(msg tea.Msg) *AlertDialog {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "esc", " ":
			a.closed = true
		}
	}
	return a
}

// View renders the alert box.
func (a *AlertDialog) View(st stylesheet.Styles, width int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		st.Alert.Render("Alert"),
		"",
		st.Base.Render(a.message),
		"",
		st.Muted.Render("[ OK ]  enter"),
	)
	return st.Box.Width(min(width-2, 60)).Render(body)
}
