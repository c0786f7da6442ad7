package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyCustom DifficultyPreset = "custom" // use spawn_four_prob as given
)

// Valid reports whether the preset is known. Empty means custom.
func (p DifficultyPreset) Valid() bool {
	switch p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyCustom:
		return true
	}
	return false
}

// FourProbForPreset returns the chance of spawning a 4 for a preset.
func FourProbForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.05
	case DifficultyHard:
		return 0.20
	default:
		return 0.10
	}
}

// ApplyPreset sets the difficulty and pins the probability to the preset's.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	cfg.Game.Difficulty = preset
	if preset != DifficultyCustom {
		cfg.Game.SpawnFourProb = FourProbForPreset(preset)
	}
}
