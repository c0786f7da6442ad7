package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagReset bool
	flagTUI   bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best and total score",
	Long: `Display the score ledger. With the sqlite backend the best finished
games and aggregate statistics are shown as well.

Examples:
  t2048 scores
  t2048 scores --backend sqlite --limit 5
  t2048 scores --tui
  t2048 scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the ledger and game history")
	scoresCmd.Flags().BoolVar(&flagTUI, "tui", false, "Open the interactive scores screen")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to list")
}

// resetter is implemented by backends that can wipe their data.
type resetter interface {
	Reset() error
}

func runScores(cmd *cobra.Command, args []string) {
	a := mustSetup(appOptions{logToFile: flagTUI})
	defer a.Close()

	if a.backend == nil {
		a.Close()
		fmt.Fprintf(os.Stderr, "Error: cannot open %s ledger\n", a.cfg.Storage.Backend)
		os.Exit(1)
	}
	store, hasHistory := a.backend.(*storage.Store)

	if flagReset {
		a.ledger.Reset()
		if r, ok := a.backend.(resetter); ok {
			if err := r.Reset(); err != nil {
				a.Close()
				fmt.Fprintf(os.Stderr, "Error resetting scores: %v\n", err)
				os.Exit(1)
			}
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		var source tui.ScoreSource
		if hasHistory {
			source = store
		}
		if err := tui.RunScoreboard(a.ledger, source, width, height); err != nil {
			a.Close()
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("2048 Scores")
	fmt.Println()
	fmt.Printf("  Best:  %d\n", a.ledger.Best())
	fmt.Printf("  Total: %d\n", a.ledger.Total())

	if !hasHistory {
		return
	}

	if err := printHistory(os.Stdout, store, flagLimit); err != nil {
		a.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving games: %v\n", err)
		os.Exit(1)
	}
}

// printHistory writes the best recorded games and aggregate stats.
func printHistory(w io.Writer, store *storage.Store, limit int) error {
	high, err := store.HighScore()
	if err != nil {
		return err
	}
	games, err := store.TopGames(limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "  High:  %d\n", high)
	fmt.Fprintln(w)
	if len(games) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 't2048 play --backend sqlite' to record the first one!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %-3s  %s\n", "Rank", "Score", "Tile", "Moves", "Won", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %-3s  %s\n", "----", "-----", "----", "-----", "---", "----")
	for i, g := range games {
		won := ""
		if g.Won {
			won = "yes"
		}
		fmt.Fprintf(w, "  %-4d  %-8d  %-6d  %-6d  %-3s  %s\n",
			i+1, g.Score, g.MaxTile, g.Moves, won, g.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Games: %d  Wins: %d  Average: %.0f  Best tile: %d\n",
			stats.GamesCount, stats.Wins, stats.AvgScore, stats.BestTile)
	}
	return nil
}
