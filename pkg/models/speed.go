package models

import "fmt"

// SpeedPreset selects how many readings the strip chart keeps visible.
type SpeedPreset string

const (
	// SpeedFaster keeps a short window so the chart scrolls faster.
	SpeedFaster SpeedPreset = "faster"
	// SpeedSlower keeps a long window so the chart scrolls slower.
	SpeedSlower SpeedPreset = "slower"
	// SpeedDefault is the window used at startup.
	SpeedDefault SpeedPreset = "default"
)

// Display tick budgets for each preset.
const (
	TicksFaster  = 1024
	TicksSlower  = 3072
	TicksDefault = 2048
)

// Valid returns true if the preset is a known value.
func (s SpeedPreset) Valid() bool {
	switch s {
	case SpeedFaster, SpeedSlower, SpeedDefault:
		return true
	default:
		return false
	}
}

// DisplayTicks returns the display tick budget for the preset.
// Unknown presets fall back to the default budget.
func (s SpeedPreset) DisplayTicks() int {
	switch s {
	case SpeedFaster:
		return TicksFaster
	case SpeedSlower:
		return TicksSlower
	default:
		return TicksDefault
	}
}

// ParseSpeedPreset converts a string to a SpeedPreset.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	p := SpeedPreset(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown speed preset %q", s)
	}
	return p, nil
}
