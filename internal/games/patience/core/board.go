package core

import "fmt"

// Origin identifies where the cards in hand were lifted from.
type Origin struct {
	Area  Area
	Index int // Column or free cell index
}

// Area is a region of the board.
type Area uint8

const (
	AreaNone Area = iota
	AreaColumn
	AreaFreeCell
)

// Board is one immutable snapshot of the game. Transitions never modify a
// Board in place; they return a fresh copy.
type Board struct {
	Columns   [][]Card // Bottom to top; the last card is exposed
	FreeCells []Slot   // One per dragon type
	Home      []Card   // One per numbered suit; Rank 0 means nothing banked
	Flower    Slot
	Hand      []Card // Cards lifted off the board, bottom first
	HandFrom  Origin // Where Hand came from; AreaNone when Hand is empty
	Rules     Config // Rules the board was dealt under; not compared by Same
}

// NewBoard deals deck into cfg.Columns columns and sets up empty cells and
// home piles.
func NewBoard(cfg Config, deck []Card) Board {
	b := Board{
		Columns:   Deal(deck, cfg.Columns),
		FreeCells: make([]Slot, cfg.Dragons),
		Home:      make([]Card, cfg.Suits),
		Rules:     cfg,
	}
	for s := range b.Home {
		b.Home[s] = Card{Kind: KindNumbered, Suit: SuitLabel(s), Mobile: true}
	}
	return b
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := Board{
		Columns:   make([][]Card, len(b.Columns)),
		FreeCells: append([]Slot(nil), b.FreeCells...),
		Home:      append([]Card(nil), b.Home...),
		Flower:    b.Flower,
		HandFrom:  b.HandFrom,
		Rules:     b.Rules,
	}
	for i, col := range b.Columns {
		out.Columns[i] = append(make([]Card, 0, len(col)), col...)
	}
	if len(b.Hand) > 0 {
		out.Hand = append([]Card(nil), b.Hand...)
	}
	return out
}

// Same compares two boards structurally: card kinds, suits, ranks, mobility
// and positions. Card ids are ignored.
func (b Board) Same(o Board) bool {
	if len(b.Columns) != len(o.Columns) ||
		len(b.FreeCells) != len(o.FreeCells) ||
		len(b.Home) != len(o.Home) {
		return false
	}
	for i := range b.Columns {
		if !sameCards(b.Columns[i], o.Columns[i]) {
			return false
		}
	}
	for i := range b.FreeCells {
		if !b.FreeCells[i].Same(o.FreeCells[i]) {
			return false
		}
	}
	if !sameCards(b.Home, o.Home) {
		return false
	}
	if !b.Flower.Same(o.Flower) {
		return false
	}
	return sameCards(b.Hand, o.Hand) && b.HandFrom == o.HandFrom
}

func sameCards(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Same(b[i]) {
			return false
		}
	}
	return true
}

// Holding reports whether cards are currently in hand.
func (b Board) Holding() bool {
	return len(b.Hand) > 0
}

// Top returns the exposed card of column c.
func (b Board) Top(c int) (Card, bool) {
	if c < 0 || c >= len(b.Columns) || len(b.Columns[c]) == 0 {
		return Card{}, false
	}
	col := b.Columns[c]
	return col[len(col)-1], true
}

// Liftable reports whether column c can be picked up from index i: every
// card above i must be a valid child of the card beneath it. A single
// exposed card is always liftable.
func (b Board) Liftable(c, i int) bool {
	if c < 0 || c >= len(b.Columns) {
		return false
	}
	col := b.Columns[c]
	if i < 0 || i >= len(col) {
		return false
	}
	for k := i; k < len(col)-1; k++ {
		if !IsValidChild(col[k+1], col[k]) {
			return false
		}
	}
	return true
}

// HomeRank returns the highest rank banked for the suit, or -1 for an
// unknown suit.
func (b Board) HomeRank(suit rune) int {
	s := SuitIndex(suit)
	if s < 0 || s >= len(b.Home) {
		return -1
	}
	return b.Home[s].Rank
}

// Accepts reports whether card c could go straight to its home pile.
func (b Board) Accepts(c Card) bool {
	if !c.IsNumbered() {
		return false
	}
	rank := b.HomeRank(c.Suit)
	return rank >= 0 && rank+1 == c.Rank
}

// CardsInPlay counts cards outside home piles and the flower slot. Parked
// dragon markers count once.
func (b Board) CardsInPlay() int {
	n := len(b.Hand)
	for _, col := range b.Columns {
		n += len(col)
	}
	for _, s := range b.FreeCells {
		if !s.IsEmpty() {
			n++
		}
	}
	return n
}

// IsWon reports whether the game is finished: nothing in hand and every
// column empty.
func IsWon(b Board) bool {
	if b.Holding() {
		return false
	}
	for _, col := range b.Columns {
		if len(col) > 0 {
			return false
		}
	}
	return true
}

// Accounted returns how many dealt cards the board represents. Each parked
// dragon stands for a whole gathered set and each home pile for every rank
// banked so far.
func (b Board) Accounted() int {
	n := len(b.Hand)
	for _, col := range b.Columns {
		n += len(col)
	}
	for _, s := range b.FreeCells {
		card, ok := s.Card()
		switch {
		case !ok:
		case card.IsDragon() && !card.Mobile:
			n += b.Rules.CardsPerDragon
		default:
			n++
		}
	}
	for _, h := range b.Home {
		n += h.Rank
	}
	if !b.Flower.IsEmpty() {
		n++
	}
	return n
}

// CheckInvariants verifies card conservation and home pile consistency.
func CheckInvariants(b Board) error {
	if want, got := b.Rules.DeckSize(), b.Accounted(); want != got {
		return fmt.Errorf("board accounts for %d cards, dealt %d", got, want)
	}
	for s, h := range b.Home {
		if h.Suit != SuitLabel(s) {
			return fmt.Errorf("home pile %d holds suit %c", s, h.Suit)
		}
	}
	if len(b.Hand) == 0 && b.HandFrom.Area != AreaNone {
		return fmt.Errorf("empty hand has origin %v", b.HandFrom)
	}
	return nil
}
