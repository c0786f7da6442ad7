// t2048 plays the 2048 sliding-tile puzzle in the terminal.
//
// Usage:
//
//	t2048                     - Play (same as 'play')
//	t2048 play                - Play interactively
//	t2048 simulate <cmd>...   - Apply commands headlessly and print the board
//	t2048 scores              - Show best/total score and game history
//	t2048 backends            - List ledger storage backends
//	t2048 config              - Print the effective configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible games
//	--config <path>     - Use a custom config YAML
//	--backend <name>    - Ledger backend: json or sqlite
//	--store <path>      - Ledger location (default depends on backend)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"

	// Import storage to register the ledger backends
	_ "github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagBackend  string
	flagStore    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `2048 is played on a 4x4 board. Slide all tiles in one direction;
equal neighbours merge and add their value to your score. Reach 2048 to win,
then keep going until no move is left.

Available commands:
  play      - Play interactively (default)
  simulate  - Apply a sequence of commands headlessly
  scores    - Show best/total score and finished games
  backends  - List ledger storage backends
  config    - Print the effective configuration

Examples:
  t2048
  t2048 play --difficulty hard
  t2048 simulate --seed 42 left up right down
  t2048 scores --backend sqlite`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Ledger backend: json, sqlite (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Ledger file or database path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(configCmd)
}

// app holds everything a command needs: configuration, logger and the
// opened ledger backend.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	logFile io.Closer
	backend registry.Backend // nil when the backend could not be opened
	ledger  *t2048.ScoreLedger
}

// appOptions tweak setup per command.
type appOptions struct {
	difficulty string // preset override, empty keeps config
	logToFile  bool   // the TUI owns stderr
	memoryOnly bool   // don't open a backend
}

// loadConfig loads the config and applies global flag overrides.
func loadConfig(difficulty string) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagBackend != "" {
		if !registry.Exists(flagBackend) {
			return cfg, fmt.Errorf("unknown backend %q (see 't2048 backends')", flagBackend)
		}
		cfg.Storage.Backend = flagBackend
		if flagStore == "" {
			cfg.Storage.Path = ""
		}
	}
	if flagStore != "" {
		cfg.Storage.Path = flagStore
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if difficulty != "" {
		config.ApplyPreset(&cfg, config.DifficultyPreset(difficulty))
	}
	return cfg, cfg.Validate()
}

// setupApp loads configuration, builds the logger and opens the ledger.
// A backend that cannot be opened is logged and the game runs without it.
func setupApp(opts appOptions) (*app, error) {
	cfg, err := loadConfig(opts.difficulty)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}

	var w io.Writer = os.Stderr
	if opts.logToFile && cfg.Log.File != "" {
		path := config.ExpandHome(cfg.Log.File)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				w = f
				a.logFile = f
			}
		}
		if a.logFile == nil {
			w = io.Discard
		}
	}

	a.logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
	})
	level, _ := log.ParseLevel(cfg.Log.Level)
	a.logger.SetLevel(level)

	var store t2048.LedgerStore
	if !opts.memoryOnly {
		backend, err := registry.Open(cfg.Storage.Backend, cfg.Storage.Path)
		if err != nil {
			a.logger.Warn("ledger unavailable, scores will not persist", "backend", cfg.Storage.Backend, "err", err)
		} else {
			a.backend = backend
			store = backend
		}
	}
	a.ledger = t2048.NewScoreLedger(store, a.logger)

	return a, nil
}

// newGame creates a game with the configured rules and seed.
func (a *app) newGame() *t2048.Game {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.logger.Debug("new game", "seed", seed, "target", a.cfg.Game.Target, "four_prob", a.cfg.FourProb())

	spawner := t2048.NewSpawner(rand.New(rand.NewSource(seed)), a.cfg.FourProb())
	return t2048.New(spawner, a.ledger, t2048.WithTarget(a.cfg.Game.Target))
}

// Close releases the backend and log file.
func (a *app) Close() {
	if a.backend != nil {
		if err := a.backend.Close(); err != nil {
			a.logger.Warn("cannot close ledger", "err", err)
		}
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// mustSetup is setupApp for command handlers.
func mustSetup(opts appOptions) *app {
	a, err := setupApp(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return a
}
