// Package core provides the board/move engine for the dragon patience game.
// This package is UI-agnostic and deterministic: every transition is a pure
// function from one immutable Board to the next.
package core

import "fmt"

// Kind distinguishes the three families of cards in the deck.
type Kind uint8

const (
	KindNumbered Kind = iota
	KindDragon
	KindFlower
)

// String returns the string representation of a card kind.
func (k Kind) String() string {
	switch k {
	case KindNumbered:
		return "Numbered"
	case KindDragon:
		return "Dragon"
	case KindFlower:
		return "Flower"
	default:
		return "Unknown"
	}
}

// FlowerSuit is the suit label carried by the single flower card.
const FlowerSuit = '@'

// Card is a single playing card. Cards are never destroyed, only moved
// between containers on the board.
type Card struct {
	ID     int  // Unique, ascending; assigned by IDGen
	Kind   Kind // Numbered, Dragon or Flower
	Suit   rune // 'A'.. for numbered suits, ..'Z' for dragons, '@' for the flower
	Rank   int  // 1..MaxRank for numbered cards, 0 otherwise
	Mobile bool // False only for a dragon parked by a gather
}

// NewNumbered returns a mobile numbered card.
func NewNumbered(id int, suit rune, rank int) Card {
	return Card{ID: id, Kind: KindNumbered, Suit: suit, Rank: rank, Mobile: true}
}

// NewDragon returns a mobile dragon card.
func NewDragon(id int, suit rune) Card {
	return Card{ID: id, Kind: KindDragon, Suit: suit, Mobile: true}
}

// NewFlower returns the flower card.
func NewFlower(id int) Card {
	return Card{ID: id, Kind: KindFlower, Suit: FlowerSuit, Mobile: true}
}

// IsNumbered reports whether the card belongs to a numbered suit.
func (c Card) IsNumbered() bool { return c.Kind == KindNumbered }

// IsDragon reports whether the card is a dragon.
func (c Card) IsDragon() bool { return c.Kind == KindDragon }

// IsFlower reports whether the card is the flower.
func (c Card) IsFlower() bool { return c.Kind == KindFlower }

// Same compares two cards structurally, ignoring identity.
func (c Card) Same(o Card) bool {
	return c.Kind == o.Kind && c.Suit == o.Suit && c.Rank == o.Rank && c.Mobile == o.Mobile
}

// String renders a card the way the board shows it: "A3", "X", "@".
// Parked dragons carry a trailing '*'.
func (c Card) String() string {
	switch c.Kind {
	case KindNumbered:
		return fmt.Sprintf("%c%d", c.Suit, c.Rank)
	case KindDragon:
		if !c.Mobile {
			return string(c.Suit) + "*"
		}
		return string(c.Suit)
	case KindFlower:
		return string(FlowerSuit)
	default:
		return "?"
	}
}

// IsValidChild reports whether child may sit directly on top of parent in a
// run: both numbered, different suits, child exactly one rank lower.
func IsValidChild(child, parent Card) bool {
	return child.Suit != parent.Suit &&
		child.Rank == parent.Rank-1 &&
		child.Rank != 0
}

// Slot is a single-card container (free cell or flower slot).
// The zero value is an empty slot.
type Slot struct {
	card     Card
	occupied bool
}

// EmptySlot returns an empty slot.
func EmptySlot() Slot { return Slot{} }

// Occupied returns a slot holding c.
func Occupied(c Card) Slot { return Slot{card: c, occupied: true} }

// IsEmpty reports whether the slot holds no card.
func (s Slot) IsEmpty() bool { return !s.occupied }

// Card returns the held card and whether there is one.
func (s Slot) Card() (Card, bool) { return s.card, s.occupied }

// Same compares two slots structurally.
func (s Slot) Same(o Slot) bool {
	if s.occupied != o.occupied {
		return false
	}
	return !s.occupied || s.card.Same(o.card)
}

// String returns the held card's label, or "--" when empty.
func (s Slot) String() string {
	if !s.occupied {
		return "--"
	}
	return s.card.String()
}
