// blockfall is a falling-block puzzle game for the terminal and the desktop.
//
// Usage:
//
//	blockfall play            - Play in the terminal
//	blockfall window          - Play in a desktop window
//	blockfall list            - List available games
//	blockfall shapes          - Print every piece rotation
//	blockfall config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: from config)
//	--seed <value>        - Set RNG seed for reproducible games
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-file <path>     - Write logs to a rotated file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/logging"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagLogFormat  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - stack falling blocks and clear rows",
	Long: `Blockfall is a falling-block puzzle game. Pieces drop onto a
well; fill a row completely to clear it and score points.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  list     - Show all available games
  shapes   - Print every piece rotation
  config   - Print or save the effective configuration

Examples:
  blockfall play
  blockfall play --difficulty hard
  blockfall window --seed 42
  blockfall config --write`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = display.fps from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (empty = no logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format: text, logfmt, json")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file and difficulty flag.
func loadConfig() (config.Loaded, error) {
	loaded, err := config.LoadBlockfall(flagConfig)
	if err != nil {
		return config.Loaded{}, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParseDifficultyPreset(flagDifficulty)
		if err != nil {
			return config.Loaded{}, err
		}
		config.ApplyPreset(&loaded.Config, preset)
	}
	return loaded, nil
}

// session holds everything a frontend needs to start.
type session struct {
	runtime core.RuntimeConfig
	logger  *log.Logger
	closer  io.Closer
}

// prepare loads configuration, installs it for new games and opens the log.
// The flags override the frame rate and seed in rc.
func prepare(rc core.RuntimeConfig) (session, error) {
	loaded, err := loadConfig()
	if err != nil {
		return session{}, err
	}
	if err := blockfall.SetConfig(loaded.Config); err != nil {
		return session{}, err
	}

	logger, closer, err := logging.New(logging.Options{
		File:   flagLogFile,
		Level:  flagLogLevel,
		Format: flagLogFormat,
		Prefix: "blockfall",
	})
	if err != nil {
		return session{}, err
	}
	logger.Info("config loaded", "source", loaded.Source, "level", loaded.Config.Difficulty.Level)

	rc.FPS = loaded.Config.Display.FPS
	if flagFPS > 0 {
		rc.FPS = flagFPS
	}
	rc.Seed = flagSeed

	return session{runtime: rc, logger: logger, closer: closer}, nil
}
