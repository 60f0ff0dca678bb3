package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "threepio",
	Short: "Operator console for the 40' telescope",
	Long: `Threepio is the operator console for the 40' telescope.

With no arguments, launches the console: elapsed time, observation
progress and a live strip chart of sensor readings.

Keys:
  n / v / p   new scan / survey / spectrum
  f / s / d   faster / slower / default chart speed
  c / r       clear / refresh the strip chart
  L           legacy mode (overwrites the stylesheet)
  q           quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConsole(cmd.Context())
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&consoleSource, "source", "", "Reading source (random_walk, sine, daq); overrides source.kind")
	rootCmd.Flags().StringVar(&consoleSpeed, "speed", "", "Initial chart speed (faster, slower, default); overrides chart.speed")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(initCmd)
}
