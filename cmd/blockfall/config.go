package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/logging"
)

var flagWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or save the effective configuration",
	Long: `Prints the configuration a game would start with, after the
config file search and the --difficulty preset.

Search order:
  --config <path>
  ~/.blockfall/configs/blockfall.yaml
  ./configs/blockfall.yaml
  built-in defaults

With --write the result is saved to ~/.blockfall/configs/blockfall.yaml.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagWrite, "write", false, "Save to the per-user config file")
}

func runConfig(cmd *cobra.Command, args []string) {
	logger := logging.Stderr("blockfall")

	loaded, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", loaded.Source)

	if flagWrite {
		path := config.UserConfigFile()
		if path == "" {
			fmt.Fprintln(os.Stderr, "Error: no home directory for the user config")
			os.Exit(1)
		}
		if err := config.Save(path, loaded.Config); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("config saved", "path", path)
		return
	}

	data, err := config.Marshal(loaded.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
