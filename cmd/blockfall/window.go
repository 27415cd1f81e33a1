package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with the keyboard and mouse.

Click PLAY (or press Enter) to start. The mouse lights up the banner.

Controls:
  Left/Right, A/D  - Move (hold to repeat)
  Up/W             - Rotate
  Down/S           - Soft drop while held
  P                - Pause
  Esc/Q            - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	s, err := prepare(core.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := gui.Run(blockfall.New(), s.runtime, s.logger)
	if runErr != nil {
		s.logger.Error("frontend stopped", "error", runErr)
	}
	s.closer.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
