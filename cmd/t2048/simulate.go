package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	flagTrace   bool
	flagPersist bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [command...]",
	Short: "Apply commands headlessly and print the result",
	Long: `Run a game without the terminal UI. Each argument is a command:
up/u, down/d, left/l, right/r, restart or quit. With no arguments,
whitespace-separated commands are read from stdin. Unknown commands are
skipped with a warning. Use --seed for a reproducible run.

The ledger is kept in memory unless --persist is given.

Examples:
  t2048 simulate --seed 42 left up right down
  t2048 simulate --seed 7 --trace l l u r
  echo "up left up left" | t2048 simulate --seed 1`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().BoolVar(&flagTrace, "trace", false, "Print the board after every accepted move")
	simulateCmd.Flags().BoolVar(&flagPersist, "persist", false, "Record score gains in the configured ledger")
}

func runSimulate(cmd *cobra.Command, args []string) {
	a := mustSetup(appOptions{memoryOnly: !flagPersist})
	defer a.Close()

	tokens := args
	if len(tokens) == 0 {
		var err error
		if tokens, err = readTokens(os.Stdin); err != nil {
			a.logger.Error("cannot read commands", "err", err)
			return
		}
	}

	game := a.newGame()
	simulate(game, tokens, os.Stdout, a.logger.Warn)
}

// readTokens splits r into whitespace-separated words.
func readTokens(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var tokens []string
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	return tokens, sc.Err()
}

// simulate applies tokens to game and writes the final state to w.
// warn receives a message with key/value pairs for every skipped token.
func simulate(game *t2048.Game, tokens []string, w io.Writer, warn func(msg any, keyvals ...any)) {
	for i, tok := range tokens {
		action, ok := core.ParseAction(tok)
		if !ok {
			warn("skipping unknown command", "index", i, "token", tok)
			continue
		}

		switch action {
		case core.ActionQuit:
			printState(w, game)
			return
		case core.ActionScores:
			warn("scores is not a game command", "index", i)
			continue
		}

		out, moved := game.Handle(action)
		if flagTrace && moved {
			fmt.Fprintf(w, "%s (+%d)\n", tok, out.ScoreGain)
			fmt.Fprint(w, formatGrid(game.Grid()))
			fmt.Fprintln(w)
		}
	}
	printState(w, game)
}

// printState writes the board, scores and flags.
func printState(w io.Writer, game *t2048.Game) {
	snap := game.Snapshot()
	fmt.Fprint(w, formatGrid(snap.Grid))
	fmt.Fprintf(w, "Score: %d  Best: %d  Total: %d  Moves: %d\n", snap.Score, snap.BestScore, snap.TotalScore, snap.Moves)
	fmt.Fprintf(w, "Won: %v  Over: %v  State: %s\n", snap.Won, snap.Over, snap.State)
}

// formatGrid renders the grid as right-aligned columns, "." for empty cells.
func formatGrid(g t2048.Grid) string {
	var b strings.Builder
	for _, row := range g {
		for c, v := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			if v == 0 {
				fmt.Fprintf(&b, "%5s", ".")
			} else {
				fmt.Fprintf(&b, "%5d", v)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
