package config

import (
	_ "embed"
)

//go:embed defaults/patience.yaml
var defaultPatienceYAML []byte

// DefaultPatienceConfig returns the hardcoded default configuration.
func DefaultPatienceConfig() PatienceConfig {
	return PatienceConfig{
		Deal: DealConfig{
			Suits:          3,
			Dragons:        3,
			MaxRank:        9,
			Columns:        8,
			CardsPerDragon: 4,
		},
		Play: PlayConfig{
			AutoResolve: true,
			ShowHints:   true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPatienceYAML
}
