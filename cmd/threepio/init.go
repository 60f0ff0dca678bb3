package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fortyfoot/threepio/internal/config"
	"github.com/fortyfoot/threepio/internal/stylesheet"
)

var (
	initForce  bool
	initLegacy bool
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Create a stylesheet and project config",
	Long: `Prepare a directory for running the console.

Writes stylesheet.yaml with the default colour scheme and a
.threepio.yaml project config pointing at it. Existing files are kept
unless --force is given.

Examples:
  threepio init              # Initialize current directory
  threepio init ./dome       # Initialize specific directory
  threepio init --legacy     # Start from the legacy stylesheet`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing files")
	initCmd.Flags().BoolVar(&initLegacy, "legacy", false, "Write the legacy stylesheet")
}

func runInit(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}

	absPath, err := filepath.Abs(targetDir)
	if err != nil {
		return fmt.Errorf("resolving absolute path: %w", err)
	}
	if err := os.MkdirAll(absPath, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", absPath, err)
	}

	fmt.Printf("Initializing Threepio in %s...\n\n", absPath)

	sheetPath := filepath.Join(absPath, "stylesheet.yaml")
	if exists(sheetPath) && !initForce {
		printStatus("⚠", "stylesheet.yaml exists (use --force to overwrite)", color.FgYellow)
	} else {
		sheet := stylesheet.Default()
		if initLegacy {
			sheet = stylesheet.Legacy()
		}
		if err := stylesheet.Save(sheetPath, sheet); err != nil {
			printStatus("✗", "Failed to write stylesheet.yaml", color.FgRed)
			return err
		}
		printStatus("✓", "Created stylesheet.yaml", color.FgGreen)
	}

	configPath := filepath.Join(absPath, ".threepio.yaml")
	if exists(configPath) && !initForce {
		printStatus("⚠", ".threepio.yaml exists (use --force to overwrite)", color.FgYellow)
	} else {
		cfg := config.Default()
		cfg.Stylesheet.Path = sheetPath
		if err := config.SaveTo(configPath, cfg); err != nil {
			printStatus("✗", "Failed to write .threepio.yaml", color.FgRed)
			return err
		}
		printStatus("✓", "Created .threepio.yaml", color.FgGreen)
	}

	fmt.Printf("\n%s Run 'threepio' from %s to start the console.\n", color.GreenString("✓"), absPath)
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// printStatus prints a status line with color
func printStatus(symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	fmt.Printf("%s %s\n", c.Sprint(symbol), message)
}
