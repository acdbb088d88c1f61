package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carloacu/ordered-goals-planner-sub001/internal/config"
	"github.com/carloacu/ordered-goals-planner-sub001/internal/logging"
)

var (
	verbose     bool
	traceFormat string
	cfg         *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "planner",
	Short:         "An ordered-goals PDDL planner",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(verbose); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		configPath := os.Getenv("PLANNER_CONFIG")
		if configPath == "" {
			configPath = defaultConfigPath()
		}
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if verbose {
			cfg.Logging.Verbose = true
		}
		if traceFormat != "" {
			cfg.Logging.TraceFormat = traceFormat
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".planner.yaml"
	}
	return home + "/.config/planner/config.yaml"
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose search tracing")
	rootCmd.PersistentFlags().StringVar(&traceFormat, "trace-format", "", "verbose trace output format: text or yaml (overrides config)")

	rootCmd.AddCommand(planCmd, validateCmd, watchCmd)
}
