package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/tui"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded games and high scores",
	Long: `Display recorded games sorted by score.

By default an interactive scoreboard opens; use --plain for plain text
output suitable for scripts.

Examples:
  tui2048 scores
  tui2048 scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as plain text")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printScores(store)
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the top games as plain text.
func printScores(store *storage.Store) {
	games, err := store.TopGames(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - 2048")
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tui2048 play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %-8s  %s\n", "Rank", "Score", "Best tile", "Result", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %-8s  %s\n", "----", "-----", "---------", "------", "----")

	for i, g := range games {
		result := "lost"
		if g.Won {
			result = "won"
		}
		dateStr := g.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-10d  %-8s  %s\n", i+1, g.Score, g.BestTile, result, dateStr)
	}

	fmt.Println()
	if high, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}
