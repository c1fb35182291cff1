package core

import (
	"errors"
	"fmt"
	"math/rand"
)

// Limits that keep suit labels unambiguous (numbered suits count up from 'A',
// dragons count down from 'Z', and the two ranges must not meet).
const (
	MaxSuits   = 8
	MaxDragons = 8
	MaxRank    = 20
)

// ErrInvalidConfig is returned when a game configuration is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError describes which configuration field was rejected.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s = %d: %s", ErrInvalidConfig, e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// Config is the fixed rule set for one game.
type Config struct {
	Suits          int // Number of numbered suits
	Dragons        int // Number of dragon types (also the free cell count)
	MaxRank        int // Highest rank in each numbered suit
	Columns        int // Number of tableau columns
	CardsPerDragon int // Copies of each dragon, all needed for a gather
}

// DefaultConfig returns the classic layout: three suits of 1-9, three
// dragons of four copies each, eight columns.
func DefaultConfig() Config {
	return Config{
		Suits:          3,
		Dragons:        3,
		MaxRank:        9,
		Columns:        8,
		CardsPerDragon: 4,
	}
}

// Validate checks that every field is usable.
func (c Config) Validate() error {
	checks := []struct {
		field    string
		value    int
		min, max int
	}{
		{"suits", c.Suits, 1, MaxSuits},
		{"dragons", c.Dragons, 1, MaxDragons},
		{"max_rank", c.MaxRank, 1, MaxRank},
		{"columns", c.Columns, 1, 64},
		{"cards_per_dragon", c.CardsPerDragon, 1, 16},
	}
	for _, chk := range checks {
		if chk.value < chk.min {
			return &ConfigError{Field: chk.field, Value: chk.value, Reason: fmt.Sprintf("must be at least %d", chk.min)}
		}
		if chk.value > chk.max {
			return &ConfigError{Field: chk.field, Value: chk.value, Reason: fmt.Sprintf("must be at most %d", chk.max)}
		}
	}
	return nil
}

// DeckSize returns the number of cards BuildDeck produces for this config.
func (c Config) DeckSize() int {
	return c.Suits*c.MaxRank + c.Dragons*c.CardsPerDragon + 1
}

// SuitLabel returns the label of numbered suit i (0-based): 'A', 'B', ...
func SuitLabel(i int) rune {
	return rune('A' + i)
}

// DragonLabel returns the label of dragon type i (0-based) when n dragon
// types are in play. Labels end at 'Z', so three dragons are X, Y, Z.
func DragonLabel(i, n int) rune {
	return rune('Z' - (n - 1) + i)
}

// SuitIndex returns the 0-based index of a numbered suit label.
func SuitIndex(suit rune) int {
	return int(suit - 'A')
}

// IDGen hands out unique, ascending card ids. The zero value starts at 1.
type IDGen struct {
	next int
}

// Next returns a fresh id.
func (g *IDGen) Next() int {
	g.next++
	return g.next
}

// BuildDeck creates every card for cfg in a fixed order: dragons, then the
// numbered suits in rank order, then the flower.
func BuildDeck(cfg Config, gen *IDGen) []Card {
	deck := make([]Card, 0, cfg.DeckSize())

	for d := 0; d < cfg.Dragons; d++ {
		label := DragonLabel(d, cfg.Dragons)
		for i := 0; i < cfg.CardsPerDragon; i++ {
			deck = append(deck, NewDragon(gen.Next(), label))
		}
	}

	for s := 0; s < cfg.Suits; s++ {
		for rank := 1; rank <= cfg.MaxRank; rank++ {
			deck = append(deck, NewNumbered(gen.Next(), SuitLabel(s), rank))
		}
	}

	deck = append(deck, NewFlower(gen.Next()))
	return deck
}

// Shuffle returns a uniformly shuffled copy of deck (Fisher-Yates).
func Shuffle(deck []Card, rng *rand.Rand) []Card {
	shuffled := make([]Card, len(deck))
	copy(shuffled, deck)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Deal distributes deck round-robin: card i goes to column i % columns.
// Relative order within each column follows the deck order.
func Deal(deck []Card, columns int) [][]Card {
	if columns < 1 {
		return nil
	}
	cols := make([][]Card, columns)
	for i := range cols {
		cols[i] = make([]Card, 0, len(deck)/columns+1)
	}
	for i, c := range deck {
		cols[i%columns] = append(cols[i%columns], c)
	}
	return cols
}
