// Package config provides YAML-based configuration loading and
// difficulty presets for the game.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Storage backend names.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config is the complete application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	UI      UIConfig      `yaml:"ui"`
}

// GameConfig defines rule parameters.
type GameConfig struct {
	Target        int              `yaml:"target"`          // tile value that wins
	SpawnFourProb float64          `yaml:"spawn_four_prob"` // used when difficulty is custom
	Difficulty    DifficultyPreset `yaml:"difficulty"`
}

// StorageConfig selects where the score ledger lives.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "json" or "sqlite"
	Path    string `yaml:"path"`    // empty selects the backend default
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // log destination while the TUI owns the terminal
}

// UIConfig defines terminal presentation.
type UIConfig struct {
	TickRate   int  `yaml:"tick_rate"` // animation frames per second
	Animations bool `yaml:"animations"`
}

// FourProb returns the effective 4-spawn probability.
func (c Config) FourProb() float64 {
	if c.Game.Difficulty == "" || c.Game.Difficulty == DifficultyCustom {
		return c.Game.SpawnFourProb
	}
	return FourProbForPreset(c.Game.Difficulty)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Game.Target < 4 || c.Game.Target&(c.Game.Target-1) != 0 {
		return fmt.Errorf("config: target %d is not a power of two >= 4", c.Game.Target)
	}
	if p := c.FourProb(); p < 0 || p > 1 {
		return fmt.Errorf("config: spawn_four_prob %v outside [0, 1]", p)
	}
	if !c.Game.Difficulty.Valid() {
		return fmt.Errorf("config: unknown difficulty %q", c.Game.Difficulty)
	}
	if c.UI.TickRate <= 0 {
		return errors.New("config: tick_rate must be positive")
	}
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
