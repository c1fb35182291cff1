// Package config provides YAML-based game configuration loading and
// deal presets for patience.
package config

// PatienceConfig contains all configuration for a patience game.
type PatienceConfig struct {
	Deal DealConfig `yaml:"deal"`
	Play PlayConfig `yaml:"play"`
}

// DealConfig defines the shape of the deck and the tableau.
type DealConfig struct {
	Suits          int `yaml:"suits"`
	Dragons        int `yaml:"dragons"`
	MaxRank        int `yaml:"max_rank"`
	Columns        int `yaml:"columns"`
	CardsPerDragon int `yaml:"cards_per_dragon"`
}

// PlayConfig defines assistance options for the interactive game.
type PlayConfig struct {
	AutoResolve bool `yaml:"auto_resolve"` // Sweep cards home after every move
	ShowHints   bool `yaml:"show_hints"`   // Highlight liftable cards and gatherable dragons
}
