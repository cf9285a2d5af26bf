// Package commands implements the truth-analysis CLI.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"truth-analysis-service/internal/config"
)

var (
	// Global flags
	configPath string

	// Global configuration (loaded before any command runs)
	globalConfig *config.Configuration
)

var rootCmd = &cobra.Command{
	Use:   "truthanalysis",
	Short: "Multimodal truthfulness analysis",
	Long: `truthanalysis - deterministic multimodal truthfulness scoring.

Scores a session from up to three observation channels (voice, facial,
text), fuses them into a single bounded truthfulness score and prints a
JSON session report.

Examples:
  # Score all three modalities and a transcript
  truthanalysis analyze --audio s.wav --video s.mp4 --text "I did not take it" \
      --transcript "I am telling the truth"

  # Text only, report to a file
  truthanalysis analyze --text @statement.txt --out report.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file (overlays env)")
}

func initConfig() {
	if configPath != "" {
		cfg, err := config.LoadFile(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Warning:", err)
			globalConfig = config.Load()
			return
		}
		globalConfig = cfg
		return
	}
	globalConfig = config.Load()
}

// GetConfig returns the global configuration.
func GetConfig() *config.Configuration {
	if globalConfig == nil {
		globalConfig = config.Load()
	}
	return globalConfig
}
