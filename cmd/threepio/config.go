package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fortyfoot/threepio/internal/config"
	"github.com/fortyfoot/threepio/pkg/models"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Long: `View or modify Threepio configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/threepio/config.yaml
Project-specific overrides can be placed in .threepio.yaml`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		switch len(args) {
		case 0:
			displayAllConfig(cfg)
		case 1:
			displayConfigKey(cfg, args[0])
		default:
			setConfigKey(cfg, args[0], args[1])
		}
	},
}

// configKeys lists the keys in display order.
var configKeys = []string{
	"tui.tick_rate",
	"chart.speed",
	"chart.height",
	"source.kind",
	"source.channel",
	"source.step",
	"source.seed",
	"stylesheet.path",
	"stylesheet.watch",
	"log.path",
}

// displayAllConfig prints all configuration values.
func displayAllConfig(cfg *config.Config) {
	for _, key := range configKeys {
		value, _ := getConfigValue(cfg, key)
		fmt.Printf("%s: %s\n", key, value)
	}
}

// displayConfigKey prints a single configuration value.
func displayConfigKey(cfg *config.Config, key string) {
	value, err := getConfigValue(cfg, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(value)
}

// setConfigKey sets a configuration value and saves the config.
func setConfigKey(cfg *config.Config, key, value string) {
	if err := setConfigValue(cfg, key, value); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.Save(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Set %s = %s\n", key, value)
}

// getConfigValue retrieves a configuration value by dot-notation key.
func getConfigValue(cfg *config.Config, key string) (string, error) {
	switch strings.ToLower(key) {
	case "tui.tick_rate":
		return cfg.TUI.TickRate.String(), nil
	case "chart.speed":
		return cfg.Chart.Speed, nil
	case "chart.height":
		return strconv.Itoa(cfg.Chart.Height), nil
	case "source.kind":
		return cfg.Source.Kind, nil
	case "source.channel":
		return strconv.Itoa(cfg.Source.Channel), nil
	case "source.step":
		return strconv.Itoa(cfg.Source.Step), nil
	case "source.seed":
		return strconv.FormatUint(cfg.Source.Seed, 10), nil
	case "stylesheet.path":
		return cfg.Stylesheet.Path, nil
	case "stylesheet.watch":
		return strconv.FormatBool(cfg.Stylesheet.Watch), nil
	case "log.path":
		if cfg.Log.Path == "" {
			return "(disabled)", nil
		}
		return cfg.Log.Path, nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// setConfigValue sets a configuration value by dot-notation key.
func setConfigValue(cfg *config.Config, key, value string) error {
	switch strings.ToLower(key) {
	case "tui.tick_rate":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for tick_rate: %w", err)
		}
		cfg.TUI.TickRate = d
	case "chart.speed":
		preset, err := models.ParseSpeedPreset(value)
		if err != nil {
			return err
		}
		cfg.Chart.Speed = string(preset)
	case "chart.height":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for chart.height: %w", err)
		}
		cfg.Chart.Height = n
	case "source.kind":
		cfg.Source.Kind = value
	case "source.channel":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for source.channel: %w", err)
		}
		cfg.Source.Channel = n
	case "source.step":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for source.step: %w", err)
		}
		cfg.Source.Step = n
	case "source.seed":
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid value for source.seed: %w", err)
		}
		cfg.Source.Seed = n
	case "stylesheet.path":
		cfg.Stylesheet.Path = value
	case "stylesheet.watch":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for stylesheet.watch: %w", err)
		}
		cfg.Stylesheet.Watch = b
	case "log.path":
		cfg.Log.Path = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}
