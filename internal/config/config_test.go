package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and the working directory at fresh temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "t2048.yaml"), "game:\n  target: 512\n")
	cfg, _ := Load("")
	if cfg.Game.Target != 512 {
		t.Errorf("local config target = %d, expected 512", cfg.Game.Target)
	}
	if cfg.UI.TickRate != 60 {
		t.Errorf("partial file should keep defaults, tick rate = %d", cfg.UI.TickRate)
	}

	writeFile(t, filepath.Join(home, ".t2048", "config.yaml"), "game:\n  target: 1024\n")
	cfg, _ = Load("")
	if cfg.Game.Target != 1024 {
		t.Errorf("user config target = %d, expected 1024", cfg.Game.Target)
	}

	custom := filepath.Join(work, "custom.yaml")
	writeFile(t, custom, "storage:\n  backend: sqlite\n")
	cfg, err := Load(custom)
	if err != nil {
		t.Fatalf("Load(custom) failed: %v", err)
	}
	if cfg.Storage.Backend != BackendSQLite || cfg.Game.Target != 2048 {
		t.Errorf("custom config = %+v", cfg)
	}
}

func TestLoadSkipsBrokenUserFile(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".t2048", "config.yaml"), "game: [unclosed")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("broken user file should fall through to defaults, got %+v", cfg)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	_, work := isolate(t)

	if _, err := Load(filepath.Join(work, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(work, "bad.yaml")
	writeFile(t, bad, "game: [unclosed")
	if _, err := Load(bad); err == nil {
		t.Error("invalid custom config should be an error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"target 4", func(c *Config) { c.Game.Target = 4 }, true},
		{"target 2", func(c *Config) { c.Game.Target = 2 }, false},
		{"target not power of two", func(c *Config) { c.Game.Target = 1000 }, false},
		{"custom prob", func(c *Config) { c.Game.Difficulty = DifficultyCustom; c.Game.SpawnFourProb = 0.5 }, true},
		{"custom prob out of range", func(c *Config) { c.Game.Difficulty = DifficultyCustom; c.Game.SpawnFourProb = 1.5 }, false},
		{"unknown difficulty", func(c *Config) { c.Game.Difficulty = "nightmare" }, false},
		{"zero tick rate", func(c *Config) { c.UI.TickRate = 0 }, false},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "redis" }, false},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			if err := cfg.Validate(); (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected float64
	}{
		{DifficultyEasy, 0.05},
		{DifficultyNormal, 0.10},
		{DifficultyHard, 0.20},
	}

	for _, tc := range tests {
		cfg := DefaultConfig()
		ApplyPreset(&cfg, tc.preset)
		if got := cfg.FourProb(); got != tc.expected {
			t.Errorf("%s: FourProb() = %v, expected %v", tc.preset, got, tc.expected)
		}
	}

	cfg := DefaultConfig()
	cfg.Game.SpawnFourProb = 0.3
	ApplyPreset(&cfg, DifficultyCustom)
	if got := cfg.FourProb(); got != 0.3 {
		t.Errorf("custom FourProb() = %v, expected 0.3", got)
	}
}
