// Package cli implements the command-line interface for cubeplay.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeplay/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	verbose    bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubeplay",
	Short: "Rubik's cube move player",
	Long: `cubeplay - apply and play back Rubik's cube move sequences.

Moves use standard notation: R L U D F B, slices M E S, wide moves
r l u d f b and rotations x y z, each optionally followed by ' or 2.
Text after // is a comment.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every move")
}

// loadSettings reads the config file and builds the logger for a command.
func loadSettings() (config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return config.Config{}, nil, err
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(cfg.Level())
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return cfg, log, nil
}
