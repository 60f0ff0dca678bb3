package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fortyfoot/threepio/internal/logging"
	"github.com/fortyfoot/threepio/internal/session"
	"github.com/fortyfoot/threepio/internal/stripchart"
	"github.com/fortyfoot/threepio/internal/stylesheet"
	"github.com/fortyfoot/threepio/pkg/models"
)

// TickMsg drives the console tick loop.
type TickMsg time.Time

// StylesheetChangedMsg carries a stylesheet reloaded from disk.
type StylesheetChangedMsg struct {
	Sheet stylesheet.Sheet
	Err   error
}

// Options configures a MainWindow.
type Options struct {
	// TickRate is the tick loop period.
	TickRate time.Duration
	// ChartHeight is the strip chart height in rows.
	ChartHeight int
	// StylesheetPath is rewritten by legacy mode.
	StylesheetPath string
	// Sheet is the initial stylesheet.
	Sheet  stylesheet.Sheet
	Logger *logging.DebugLogger
}

// MainWindow is the console's top-level model. It owns the session and
// maps key presses to session operations. Ticks keep running while a
// dialogue or alert is open.
type MainWindow struct {
	ctx     context.Context
	session *session.Session
	opts    Options
	logger  *logging.DebugLogger

	sheet  stylesheet.Sheet
	styles stylesheet.Styles
	keys   keyMap
	help   help.Model
	bar    progress.Model

	view   session.View
	form   *ObservationForm
	alert  *AlertDialog
	status string

	width    int
	height   int
	quitting bool
}

// NewMainWindow creates the console window for s.
func NewMainWindow(ctx context.Context, s *session.Session, opts Options) *MainWindow {
	if opts.TickRate <= 0 {
		opts.TickRate = 10 * time.Millisecond
	}
	if opts.ChartHeight < 2 {
		opts.ChartHeight = 12
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}
	if opts.Sheet == (stylesheet.Sheet{}) {
		opts.Sheet = stylesheet.Default()
	}

	w := &MainWindow{
		ctx:     ctx,
		session: s,
		opts:    opts,
		logger:  opts.Logger,
		keys:    defaultKeyMap(),
		help:    help.New(),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		width:   80,
		height:  24,
	}
	w.applySheet(opts.Sheet)
	w.view = s.View()
	return w
}

// Session returns the window's session.
func (w *MainWindow) Session() *session.Session {
	return w.session
}

// Form returns the open observation form, or nil.
func (w *MainWindow) Form() *ObservationForm {
	return w.form
}

// Alert returns the open alert, or nil.
func (w *MainWindow) Alert() *AlertDialog {
	return w.alert
}

// Sheet returns the active stylesheet.
func (w *MainWindow) Sheet() stylesheet.Sheet {
	return w.sheet
}

// Init implements tea.Model.
func (w *MainWindow) Init() tea.Cmd {
	return w.scheduleTick()
}

func (w *MainWindow) scheduleTick() tea.Cmd {
	return tea.Tick(w.opts.TickRate, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update implements tea.Model.
func (w *MainWindow) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		w.tick()
		return w, w.scheduleTick()

	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		w.help.Width = msg.Width
		w.bar.Width = max(msg.Width-30, 10)
		return w, nil

	case StylesheetChangedMsg:
		if msg.Err != nil {
			w.logger.Log("stylesheet reload failed: %v", msg.Err)
			w.status = "stylesheet reload failed"
			return w, nil
		}
		w.applySheet(msg.Sheet)
		w.status = "stylesheet reloaded"
		return w, nil

	case ObservationConfirmedMsg:
		w.session.ApplyObservation(msg.Observation)
		w.form = nil
		w.view = w.session.View()
		w.status = fmt.Sprintf("%s %s set: %s", msg.Observation.Kind, msg.Observation.ID, msg.Observation.Interval)
		return w, nil

	case ObservationFailedMsg:
		w.logger.Log("observation rejected: %v", msg.Err)
		w.alert = NewAlertDialog(msg.Err.Error())
		return w, nil

	case tea.KeyMsg:
		return w.handleKey(msg)
	}

	return w, nil
}

func (w *MainWindow) tick() {
	view, err := w.session.Tick(w.ctx)
	w.view = view
	if err != nil {
		w.logger.Log("tick: %v", err)
		w.status = err.Error()
	}
}

func (w *MainWindow) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		w.quitting = true
		return w, tea.Quit
	}

	// Modals capture input while open
	if w.alert != nil {
		w.alert.Update(msg)
		if w.alert.Closed() {
			w.alert = nil
		}
		return w, nil
	}
	if w.form != nil {
		var cmd tea.Cmd
		w.form, cmd = w.form.Update(msg)
		if !w.form.Open() {
			w.form = nil
		}
		return w, cmd
	}

	switch {
	case key.Matches(msg, w.keys.Quit):
		w.quitting = true
		return w, tea.Quit
	case key.Matches(msg, w.keys.Scan):
		return w, w.openForm(models.ObservationScan)
	case key.Matches(msg, w.keys.Survey):
		return w, w.openForm(models.ObservationSurvey)
	case key.Matches(msg, w.keys.Spectrum):
		return w, w.openForm(models.ObservationSpectrum)
	case key.Matches(msg, w.keys.Faster):
		w.session.SetSpeed(models.SpeedFaster)
	case key.Matches(msg, w.keys.Slower):
		w.session.SetSpeed(models.SpeedSlower)
	case key.Matches(msg, w.keys.Default):
		w.session.SetSpeed(models.SpeedDefault)
	case key.Matches(msg, w.keys.Clear), key.Matches(msg, w.keys.Refresh):
		w.session.ClearChart()
	case key.Matches(msg, w.keys.Legacy):
		w.legacyMode()
	case key.Matches(msg, w.keys.Help):
		w.help.ShowAll = !w.help.ShowAll
	default:
		return w, nil
	}

	w.view = w.session.View()
	return w, nil
}

func (w *MainWindow) openForm(kind models.ObservationKind) tea.Cmd {
	w.form = NewObservationForm(kind)
	w.logger.Log("opened %s dialogue", kind)
	return w.form.Init()
}

func (w *MainWindow) legacyMode() {
	sheet, err := stylesheet.WriteLegacy(w.opts.StylesheetPath)
	if err != nil {
		w.logger.Log("legacy mode: %v", err)
		w.alert = NewAlertDialog(err.Error())
		return
	}
	w.applySheet(sheet)
	w.status = "legacy mode"
}

func (w *MainWindow) applySheet(s stylesheet.Sheet) {
	w.sheet = s
	w.styles = s.Styles()
}

// View implements tea.Model.
func (w *MainWindow) View() string {
	if w.quitting {
		return "Goodbye!\n"
	}

	sections := []string{
		w.headerView(),
		w.chartView(),
		w.speedView(),
	}

	switch {
	case w.alert != nil:
		sections = append(sections, w.alert.View(w.styles, w.width))
	case w.form != nil:
		sections = append(sections, w.form.View(w.styles, w.width))
	}

	if w.status != "" {
		sections = append(sections, w.styles.Muted.Render(w.status))
	}
	sections = append(sections, w.help.View(w.keys))

	return w.styles.Base.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (w *MainWindow) headerView() string {
	title := w.styles.Title.Render("THREEPIO")
	elapsed := w.styles.Value.Render(w.view.ElapsedText)

	pct := w.view.Progress
	progressText := fmt.Sprintf("%3d%%", int(pct))
	if w.view.ProgressErr != nil {
		progressText = w.styles.Alert.Render("n/a")
	}

	obs := "no observation"
	if o := w.view.Observation; o != nil {
		obs = fmt.Sprintf("%s %s %s", o.Kind, o.ID, o.Interval)
	}

	line1 := lipgloss.JoinHorizontal(lipgloss.Top,
		title, "  ", elapsed, "  ",
		w.styles.Muted.Render("session "+w.view.SessionID),
	)
	line2 := lipgloss.JoinHorizontal(lipgloss.Top,
		w.bar.ViewAs(pct/100), " ", progressText, "  ",
		w.styles.Muted.Render(obs),
	)
	return lipgloss.JoinVertical(lipgloss.Left, line1, line2)
}

func (w *MainWindow) chartView() string {
	chart := stripchart.Render(w.view.Frame, w.width-4, w.opts.ChartHeight, w.styles.Chart)
	caption := w.styles.Muted.Render(fmt.Sprintf("%d/%d readings shown · %d collected",
		len(w.view.Frame.Points), w.view.Budget, w.view.BufferLen))
	return w.styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left, chart, caption))
}

func (w *MainWindow) speedView() string {
	presets := []struct {
		preset models.SpeedPreset
		label  string
	}{
		{models.SpeedFaster, "Faster"},
		{models.SpeedSlower, "Slower"},
		{models.SpeedDefault, "Default"},
	}

	parts := make([]string, 0, len(presets))
	for _, p := range presets {
		if p.preset == w.view.Speed {
			parts = append(parts, w.styles.Active.Render("(•) "+p.label))
		} else {
			parts = append(parts, w.styles.Muted.Render("( ) "+p.label))
		}
	}
	return w.styles.Muted.Render("Speed ") + strings.Join(parts, "  ")
}

// NewProgram creates a Bubbletea program for the console window.
func NewProgram(w *MainWindow) *tea.Program {
	return tea.NewProgram(w, tea.WithAltScreen())
}
