// tui2048 is a terminal 2048-style sliding-tile puzzle.
//
// Usage:
//
//	tui2048 play             - Play in the current terminal
//	tui2048 scores           - Show recorded high scores
//	tui2048 serve            - Start an SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to a YAML config file
//	--db <path>      - Scores database path (overrides config)
//	--seed <value>   - Spawn RNG seed for reproducible games
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tui2048",
	Short: "Play 2048 in your terminal",
	Long: `tui2048 is a terminal version of the 2048 sliding-tile puzzle.

Slide tiles with the arrow keys; equal tiles merge and their sum is added
to your score. Reach the 2048 tile to win. Finished games are recorded in
a local scores database.

Available commands:
  play     - Play in the current terminal
  scores   - View recorded games and high scores
  serve    - Start an SSH server for remote play

Examples:
  tui2048 play
  tui2048 play --size 5
  tui2048 scores
  tui2048 serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Spawn RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	return cfg
}
