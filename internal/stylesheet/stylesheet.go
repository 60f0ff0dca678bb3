// Package stylesheet loads the console's colour scheme from a YAML file
// and turns it into lipgloss styles.
package stylesheet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/fortyfoot/threepio/internal/stripchart"
)

// Sheet is the on-disk stylesheet. Colours are lipgloss colour strings:
// hex ("#ff0000") or ANSI 256 indexes ("39").
type Sheet struct {
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background,omitempty"`
	Accent     string `yaml:"accent"`
	Muted      string `yaml:"muted"`
	Border     string `yaml:"border"`
	Chart      string `yaml:"chart"`
	Alert      string `yaml:"alert"`
}

// Default returns the built-in stylesheet.
func Default() Sheet {
	return Sheet{
		Foreground: "252",
		Accent:     "205",
		Muted:      "240",
		Border:     "238",
		Chart:      "39",
		Alert:      "196",
	}
}

// Legacy returns the fixed legacy-mode stylesheet.
func Legacy() Sheet {
	return Sheet{
		Foreground: "#ff0000",
		Background: "#00ff00",
		Accent:     "#ff0000",
		Muted:      "#ff0000",
		Border:     "#ff0000",
		Chart:      "#ff0000",
		Alert:      "#ff0000",
	}
}

// Parse decodes a stylesheet. Fields left empty take their default value.
func Parse(data []byte) (Sheet, error) {
	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Sheet{}, fmt.Errorf("parse stylesheet: %w", err)
	}
	return s.withDefaults(), nil
}

// Load reads the stylesheet at path. A missing file yields Default.
func Load(path string) (Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Sheet{}, fmt.Errorf("read stylesheet %s: %w", path, err)
	}
	return Parse(data)
}

// Save writes s to path, creating parent directories.
func Save(path string, s Sheet) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode stylesheet: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create stylesheet directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write stylesheet %s: %w", path, err)
	}
	return nil
}

// WriteLegacy overwrites the stylesheet at path with the legacy sheet and
// returns it.
func WriteLegacy(path string) (Sheet, error) {
	s := Legacy()
	if err := Save(path, s); err != nil {
		return Sheet{}, err
	}
	return s, nil
}

func (s Sheet) withDefaults() Sheet {
	d := Default()
	if s.Foreground == "" {
		s.Foreground = d.Foreground
	}
	if s.Accent == "" {
		s.Accent = d.Accent
	}
	if s.Muted == "" {
		s.Muted = d.Muted
	}
	if s.Border == "" {
		s.Border = d.Border
	}
	if s.Chart == "" {
		s.Chart = d.Chart
	}
	if s.Alert == "" {
		s.Alert = d.Alert
	}
	return s
}

// Styles are the lipgloss styles derived from a Sheet.
type Styles struct {
	Base   lipgloss.Style
	Title  lipgloss.Style
	Value  lipgloss.Style
	Muted  lipgloss.Style
	Alert  lipgloss.Style
	Box    lipgloss.Style
	Active lipgloss.Style
	Chart  stripchart.Styles
}

// Styles builds the lipgloss styles for s.
func (s Sheet) Styles() Styles {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Foreground))
	if s.Background != "" {
		base = base.Background(lipgloss.Color(s.Background))
	}
	muted := base.Foreground(lipgloss.Color(s.Muted))

	return Styles{
		Base:  base,
		Title: base.Foreground(lipgloss.Color(s.Accent)).Bold(true),
		Value: base.Bold(true),
		Muted: muted,
		Alert: base.Foreground(lipgloss.Color(s.Alert)).Bold(true),
		Box: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(s.Border)).
			Padding(0, 1),
		Active: base.
			Foreground(lipgloss.Color(s.Accent)).
			Bold(true),
		Chart: stripchart.Styles{
			Line:  base.Foreground(lipgloss.Color(s.Chart)),
			Axis:  muted,
			Empty: muted.Italic(true),
		},
	}
}
