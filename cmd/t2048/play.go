package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start an interactive game.

Controls:
  Arrows/WASD/hjkl - Slide tiles
  Enter/C          - Keep going after reaching the target
  R                - New game
  T                - Scores
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

Difficulty options (chance of a new tile being a 4):
  easy   - 5%
  normal - 10%
  hard   - 20%

Examples:
  t2048 play
  t2048 play --difficulty hard
  t2048 play --seed 42 --backend sqlite`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	a := mustSetup(appOptions{difficulty: flagDifficulty, logToFile: true})
	defer a.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: a.cfg.UI.TickRate,
			Seed:     flagSeed,
		},
		Animations: a.cfg.UI.Animations,
		Ledger:     a.ledger,
		Logger:     a.logger,
	}
	// Only the sqlite backend keeps a game history
	if store, ok := a.backend.(*storage.Store); ok {
		opts.History = store
		opts.Scores = store
	}

	a.logger.Info("starting game", "backend", a.cfg.Storage.Backend, "best", a.ledger.Best(), "total", a.ledger.Total())
	if err := tui.Run(a.newGame(), opts); err != nil {
		a.Close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
