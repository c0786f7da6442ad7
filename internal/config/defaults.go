package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration used when no file
// can be read.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			Target:        2048,
			SpawnFourProb: 0.10,
			Difficulty:    DifficultyNormal,
		},
		Storage: StorageConfig{
			Backend: BackendJSON,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.t2048/t2048.log",
		},
		UI: UIConfig{
			TickRate:   60,
			Animations: true,
		},
	}
}
