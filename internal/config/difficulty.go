package config

import "fmt"

// DifficultyPreset is a named difficulty level for the companion games.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParsePreset validates a preset name. The empty string means medium.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyMedium, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", name)
}

// MemoryBoard returns the board for a preset, falling back to medium.
func (m MemoryConfig) MemoryBoard(p DifficultyPreset) MemoryDifficulty {
	if d, ok := m.Difficulties[p]; ok {
		return d
	}
	if d, ok := m.Difficulties[DifficultyMedium]; ok {
		return d
	}
	return DefaultConfig().Memory.Difficulties[DifficultyMedium]
}

// ApplyTapPerfectPreset scales the meter speed for a preset.
func ApplyTapPerfectPreset(cfg *TapPerfectConfig, p DifficultyPreset) {
	switch p {
	case DifficultyEasy:
		cfg.PowerStep = max(1, cfg.PowerStep*2/3)
	case DifficultyHard:
		cfg.PowerStep = cfg.PowerStep * 3 / 2
	}
}

// ApplyStackDropPreset scales the swing speed for a preset.
func ApplyStackDropPreset(cfg *StackDropConfig, p DifficultyPreset) {
	switch p {
	case DifficultyEasy:
		cfg.SwingSpeed *= 0.75
		cfg.MaxSpeed *= 0.75
	case DifficultyHard:
		cfg.SwingSpeed *= 1.5
		cfg.MaxSpeed *= 1.5
	}
}
