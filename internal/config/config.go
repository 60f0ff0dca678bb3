// Package config handles configuration loading and management for Threepio.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/fortyfoot/threepio/internal/source"
	"github.com/fortyfoot/threepio/pkg/models"
)

// Config holds all configuration for Threepio.
type Config struct {
	TUI        TUIConfig        `mapstructure:"tui"`
	Chart      ChartConfig      `mapstructure:"chart"`
	Source     SourceConfig     `mapstructure:"source"`
	Stylesheet StylesheetConfig `mapstructure:"stylesheet"`
	Log        LogConfig        `mapstructure:"log"`
}

// TUIConfig holds console timing settings.
type TUIConfig struct {
	// TickRate is the period of the console tick loop.
	TickRate time.Duration `mapstructure:"tick_rate"`
}

// ChartConfig holds strip chart settings.
type ChartConfig struct {
	// Speed is the initial speed preset: faster, slower or default.
	Speed string `mapstructure:"speed"`
	// Height is the chart height in terminal rows.
	Height int `mapstructure:"height"`
}

// SourceConfig selects where readings come from.
type SourceConfig struct {
	Kind string `mapstructure:"kind"`
	// Channel is the acquisition channel read when Kind is daq.
	Channel int    `mapstructure:"channel"`
	Step    int    `mapstructure:"step"`
	Seed    uint64 `mapstructure:"seed"`
}

// StylesheetConfig locates the stylesheet.
type StylesheetConfig struct {
	Path  string `mapstructure:"path"`
	Watch bool   `mapstructure:"watch"`
}

// LogConfig holds debug log settings. An empty path disables logging.
type LogConfig struct {
	Path string `mapstructure:"path"`
}

// Validate checks values that would break the console at runtime.
func (c *Config) Validate() error {
	if c.TUI.TickRate <= 0 {
		return fmt.Errorf("tui.tick_rate must be positive, got %s", c.TUI.TickRate)
	}
	if _, err := models.ParseSpeedPreset(c.Chart.Speed); err != nil {
		return fmt.Errorf("chart.speed: %w", err)
	}
	if c.Chart.Height < 2 {
		return fmt.Errorf("chart.height must be at least 2, got %d", c.Chart.Height)
	}
	if !source.ValidKind(source.Kind(c.Source.Kind)) {
		return fmt.Errorf("source.kind: %w: %q", source.ErrUnknownKind, c.Source.Kind)
	}
	if c.Source.Channel < 0 {
		return fmt.Errorf("source.channel must not be negative, got %d", c.Source.Channel)
	}
	return nil
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (THREEPIO_CHART_SPEED, ...)
// 2. Project config (.threepio.yaml in current directory or parent)
// 3. User config (~/.config/threepio/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getUserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	// Project config takes precedence over user config
	if projectConfig := findProjectConfig(); projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	return unmarshal(v)
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := newViper()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	return unmarshal(v)
}

// Save writes the configuration to the user config file.
func Save(cfg *Config) error {
	return SaveTo(GetUserConfigPath(), cfg)
}

// SaveTo writes the configuration to path.
func SaveTo(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)

	v.Set("tui.tick_rate", cfg.TUI.TickRate.String())
	v.Set("chart.speed", cfg.Chart.Speed)
	v.Set("chart.height", cfg.Chart.Height)
	v.Set("source.kind", cfg.Source.Kind)
	v.Set("source.channel", cfg.Source.Channel)
	v.Set("source.step", cfg.Source.Step)
	v.Set("source.seed", cfg.Source.Seed)
	v.Set("stylesheet.path", cfg.Stylesheet.Path)
	v.Set("stylesheet.watch", cfg.Stylesheet.Watch)
	v.Set("log.path", cfg.Log.Path)

	return v.WriteConfig()
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("THREEPIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Stylesheet.Path = os.ExpandEnv(cfg.Stylesheet.Path)
	cfg.Log.Path = os.ExpandEnv(cfg.Log.Path)
	return cfg, nil
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("tui.tick_rate", "10ms")

	v.SetDefault("chart.speed", string(models.SpeedDefault))
	v.SetDefault("chart.height", 12)

	v.SetDefault("source.kind", string(source.KindRandomWalk))
	v.SetDefault("source.channel", 1)
	v.SetDefault("source.step", 2)
	v.SetDefault("source.seed", 0)

	v.SetDefault("stylesheet.path", "stylesheet.yaml")
	v.SetDefault("stylesheet.watch", true)

	v.SetDefault("log.path", "")
}

// getUserConfigDir returns the XDG config directory for Threepio.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "threepio")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "threepio")
	}
	return filepath.Join(home, ".config", "threepio")
}

// findProjectConfig searches for .threepio.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".threepio.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			TickRate: 10 * time.Millisecond,
		},
		Chart: ChartConfig{
			Speed:  string(models.SpeedDefault),
			Height: 12,
		},
		Source: SourceConfig{
			Kind:    string(source.KindRandomWalk),
			Channel: 1,
			Step:    2,
		},
		Stylesheet: StylesheetConfig{
			Path:  "stylesheet.yaml",
			Watch: true,
		},
	}
}
