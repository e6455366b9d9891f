package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/tui"
)

var flagSize int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start an interactive game in the current terminal.

Controls:
  Arrows/WASD - Tilt the board
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Examples:
  tui2048 play
  tui2048 play --size 5
  tui2048 play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size (overrides config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagSize >= 2 {
		cfg.Game.BoardSize = flagSize
	}

	// Open score storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg, store, flagSeed)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
