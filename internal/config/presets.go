package config

import "fmt"

// Preset names a deal size.
type Preset string

const (
	PresetClassic Preset = "classic" // Deal as configured (3 suits, 3 dragons by default)
	PresetSmall   Preset = "small"   // Short game for a narrow terminal
	PresetLarge   Preset = "large"   // Four suits and four dragons over ten columns
)

// Presets returns all presets in display order.
func Presets() []Preset {
	return []Preset{PresetClassic, PresetSmall, PresetLarge}
}

// ParsePreset converts a name to a Preset.
func ParsePreset(s string) (Preset, error) {
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown preset %q", s)
}

// Description returns a one-line summary of the preset.
func (p Preset) Description() string {
	switch p {
	case PresetClassic:
		return "the configured deal"
	case PresetSmall:
		return "2 suits to 6, 2 dragons of 2, 6 columns"
	case PresetLarge:
		return "4 suits to 10, 4 dragons of 4, 10 columns"
	default:
		return ""
	}
}

// ApplyPreset modifies the config based on a preset.
// The classic preset keeps whatever deal was loaded.
func ApplyPreset(cfg *PatienceConfig, preset Preset) {
	switch preset {
	case PresetSmall:
		cfg.Deal = DealConfig{Suits: 2, Dragons: 2, MaxRank: 6, Columns: 6, CardsPerDragon: 2}
	case PresetLarge:
		cfg.Deal = DealConfig{Suits: 4, Dragons: 4, MaxRank: 10, Columns: 10, CardsPerDragon: 4}
	}
}
