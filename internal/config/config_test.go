package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fortyfoot/threepio/internal/source"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.TUI.TickRate != 10*time.Millisecond {
		t.Errorf("expected tick rate 10ms, got %v", cfg.TUI.TickRate)
	}

	if cfg.Chart.Speed != "default" {
		t.Errorf("expected speed 'default', got %q", cfg.Chart.Speed)
	}

	if cfg.Source.Kind != "random_walk" {
		t.Errorf("expected source kind 'random_walk', got %q", cfg.Source.Kind)
	}

	if cfg.Source.Channel != 1 {
		t.Errorf("expected source channel 1, got %d", cfg.Source.Channel)
	}

	if cfg.Stylesheet.Path != "stylesheet.yaml" {
		t.Errorf("expected stylesheet path 'stylesheet.yaml', got %q", cfg.Stylesheet.Path)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
tui:
  tick_rate: 50ms
chart:
  speed: faster
  height: 20
source:
  kind: daq
  channel: 4
  step: 3
stylesheet:
  path: /tmp/threepio.yaml
  watch: false
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.TUI.TickRate != 50*time.Millisecond {
		t.Errorf("expected tick rate 50ms, got %v", cfg.TUI.TickRate)
	}

	if cfg.Chart.Speed != "faster" {
		t.Errorf("expected speed 'faster', got %q", cfg.Chart.Speed)
	}

	if cfg.Chart.Height != 20 {
		t.Errorf("expected height 20, got %d", cfg.Chart.Height)
	}

	if cfg.Source.Kind != "daq" || cfg.Source.Channel != 4 || cfg.Source.Step != 3 {
		t.Errorf("unexpected source config %+v", cfg.Source)
	}

	if cfg.Stylesheet.Watch {
		t.Error("expected stylesheet.watch to be false")
	}

	// Unset keys keep their defaults
	if cfg.Log.Path != "" {
		t.Errorf("expected empty log path, got %q", cfg.Log.Path)
	}
}

func TestLoadFromPath_EnvOverride(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("chart:\n  speed: faster\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("THREEPIO_CHART_SPEED", "slower")

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Chart.Speed != "slower" {
		t.Errorf("expected env override 'slower', got %q", cfg.Chart.Speed)
	}
}

func TestLoadFromPath_ExpandsEnv(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := "stylesheet:\n  path: ${THREEPIO_TEST_HOME}/style.yaml\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("THREEPIO_TEST_HOME", "/opt/scope")

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Stylesheet.Path != "/opt/scope/style.yaml" {
		t.Errorf("expected expanded path, got %q", cfg.Stylesheet.Path)
	}
}

func TestLoadFromPath_Missing(t *testing.T) {
	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Chart.Speed = "slower"
	cfg.TUI.TickRate = 20 * time.Millisecond
	cfg.Log.Path = "/var/log/threepio.log"

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if loaded.Chart.Speed != "slower" {
		t.Errorf("speed = %q, want 'slower'", loaded.Chart.Speed)
	}
	if loaded.TUI.TickRate != 20*time.Millisecond {
		t.Errorf("tick rate = %v, want 20ms", loaded.TUI.TickRate)
	}
	if loaded.Log.Path != "/var/log/threepio.log" {
		t.Errorf("log path = %q", loaded.Log.Path)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick rate", func(c *Config) { c.TUI.TickRate = 0 }},
		{"unknown speed", func(c *Config) { c.Chart.Speed = "1000" }},
		{"empty speed", func(c *Config) { c.Chart.Speed = "" }},
		{"tiny chart", func(c *Config) { c.Chart.Height = 1 }},
		{"unknown source", func(c *Config) { c.Source.Kind = "telepathy" }},
		{"negative channel", func(c *Config) { c.Source.Channel = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	cfg := Default()
	cfg.Source.Kind = "telepathy"
	if err := cfg.Validate(); !errors.Is(err, source.ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestGetUserConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	dir := getUserConfigDir()
	expected := "/custom/config/threepio"
	if dir != expected {
		t.Errorf("expected %q, got %q", expected, dir)
	}
}
