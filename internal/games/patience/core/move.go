package core

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is wrapped by every rejection from the transition function.
var ErrIllegalMove = errors.New("illegal move")

// IllegalMoveError explains why a request was rejected.
type IllegalMoveError struct {
	Move   MoveRequest
	Reason string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrIllegalMove, e.Move, e.Reason)
}

// Unwrap lets errors.Is match ErrIllegalMove.
func (e *IllegalMoveError) Unwrap() error { return ErrIllegalMove }

func illegal(req MoveRequest, format string, args ...any) error {
	return &IllegalMoveError{Move: req, Reason: fmt.Sprintf(format, args...)}
}

// MoveRequest is a single player intent. The concrete types below are the
// only implementations.
type MoveRequest interface {
	fmt.Stringer
	move()
}

// PickupColumn lifts Columns[Column][Index:] into the hand.
type PickupColumn struct{ Column, Index int }

// DropColumn places the hand on top of a column.
type DropColumn struct{ Column int }

// PickupFreeCell lifts the card held in a free cell.
type PickupFreeCell struct{ Cell int }

// DropFreeCell places a single held card into an empty free cell.
type DropFreeCell struct{ Cell int }

// DropHome banks a single held card onto its suit's home pile.
type DropHome struct{ Suit rune }

// DropFlower places the held flower card into the flower slot.
type DropFlower struct{}

// GatherDragon collects every exposed copy of a dragon into one free cell.
type GatherDragon struct{ Dragon rune }

// CancelHand returns the held cards to where they were lifted from.
type CancelHand struct{}

func (PickupColumn) move()   {}
func (DropColumn) move()     {}
func (PickupFreeCell) move() {}
func (DropFreeCell) move()   {}
func (DropHome) move()       {}
func (DropFlower) move()     {}
func (GatherDragon) move()   {}
func (CancelHand) move()     {}

func (m PickupColumn) String() string   { return fmt.Sprintf("pickup column %d at %d", m.Column, m.Index) }
func (m DropColumn) String() string     { return fmt.Sprintf("drop on column %d", m.Column) }
func (m PickupFreeCell) String() string { return fmt.Sprintf("pickup free cell %d", m.Cell) }
func (m DropFreeCell) String() string   { return fmt.Sprintf("drop on free cell %d", m.Cell) }
func (m DropHome) String() string       { return fmt.Sprintf("drop on home %c", m.Suit) }
func (DropFlower) String() string       { return "drop flower" }
func (m GatherDragon) String() string   { return fmt.Sprintf("gather dragon %c", m.Dragon) }
func (CancelHand) String() string       { return "cancel hand" }

// Apply is the transition function. Illegal requests return b unchanged.
func Apply(b Board, req MoveRequest) Board {
	next, err := Transition(b, req)
	if err != nil {
		return b
	}
	return next
}

// Validate reports why req is illegal on b, or nil if it is legal.
func Validate(b Board, req MoveRequest) error {
	_, err := Transition(b, req)
	return err
}

// Transition applies req to b. On success it returns a new board; on
// failure it returns b itself and an *IllegalMoveError.
func Transition(b Board, req MoveRequest) (Board, error) {
	var (
		next Board
		err  error
	)
	switch m := req.(type) {
	case PickupColumn:
		next, err = pickupColumn(b, m)
	case DropColumn:
		next, err = dropColumn(b, m)
	case PickupFreeCell:
		next, err = pickupFreeCell(b, m)
	case DropFreeCell:
		next, err = dropFreeCell(b, m)
	case DropHome:
		next, err = dropHome(b, m)
	case DropFlower:
		next, err = dropFlower(b, m)
	case GatherDragon:
		next, err = gatherDragon(b, m)
	case CancelHand:
		next, err = cancelHand(b, m)
	case nil:
		err = &IllegalMoveError{Reason: "nil request"}
	default:
		err = illegal(req, "unknown request")
	}
	if err != nil {
		return b, err
	}
	return next, nil
}

func pickupColumn(b Board, m PickupColumn) (Board, error) {
	if b.Holding() {
		return b, illegal(m, "hand is not empty")
	}
	if m.Column < 0 || m.Column >= len(b.Columns) {
		return b, illegal(m, "no such column")
	}
	if !b.Liftable(m.Column, m.Index) {
		return b, illegal(m, "cards are not a movable run")
	}

	next := b.Clone()
	col := next.Columns[m.Column]
	next.Hand = append([]Card(nil), col[m.Index:]...)
	next.Columns[m.Column] = col[:m.Index]
	next.HandFrom = Origin{Area: AreaColumn, Index: m.Column}
	return next, nil
}

func dropColumn(b Board, m DropColumn) (Board, error) {
	if !b.Holding() {
		return b, illegal(m, "hand is empty")
	}
	if m.Column < 0 || m.Column >= len(b.Columns) {
		return b, illegal(m, "no such column")
	}
	if top, ok := b.Top(m.Column); ok && !IsValidChild(b.Hand[0], top) {
		return b, illegal(m, "%s cannot go on %s", b.Hand[0], top)
	}

	next := b.Clone()
	next.Columns[m.Column] = append(next.Columns[m.Column], next.Hand...)
	next.clearHand()
	return next, nil
}

func pickupFreeCell(b Board, m PickupFreeCell) (Board, error) {
	if b.Holding() {
		return b, illegal(m, "hand is not empty")
	}
	if m.Cell < 0 || m.Cell >= len(b.FreeCells) {
		return b, illegal(m, "no such free cell")
	}
	card, ok := b.FreeCells[m.Cell].Card()
	if !ok {
		return b, illegal(m, "free cell is empty")
	}
	if !card.Mobile {
		return b, illegal(m, "%s is locked", card)
	}

	next := b.Clone()
	next.FreeCells[m.Cell] = EmptySlot()
	next.Hand = []Card{card}
	next.HandFrom = Origin{Area: AreaFreeCell, Index: m.Cell}
	return next, nil
}

func dropFreeCell(b Board, m DropFreeCell) (Board, error) {
	if !b.Holding() {
		return b, illegal(m, "hand is empty")
	}
	if len(b.Hand) != 1 {
		return b, illegal(m, "only a single card fits in a free cell")
	}
	if m.Cell < 0 || m.Cell >= len(b.FreeCells) {
		return b, illegal(m, "no such free cell")
	}
	if !b.FreeCells[m.Cell].IsEmpty() {
		return b, illegal(m, "free cell is occupied")
	}

	next := b.Clone()
	next.FreeCells[m.Cell] = Occupied(b.Hand[0])
	next.clearHand()
	return next, nil
}

func dropHome(b Board, m DropHome) (Board, error) {
	if !b.Holding() {
		return b, illegal(m, "hand is empty")
	}
	if len(b.Hand) != 1 {
		return b, illegal(m, "only a single card can go home")
	}
	s := SuitIndex(m.Suit)
	if s < 0 || s >= len(b.Home) {
		return b, illegal(m, "no such home pile")
	}
	card := b.Hand[0]
	if !card.IsNumbered() || card.Suit != m.Suit {
		return b, illegal(m, "%s does not belong on home %c", card, m.Suit)
	}
	if card.Rank != b.Home[s].Rank+1 {
		return b, illegal(m, "home %c expects rank %d, got %d", m.Suit, b.Home[s].Rank+1, card.Rank)
	}

	next := b.Clone()
	next.Home[s] = card
	next.clearHand()
	return next, nil
}

func dropFlower(b Board, m DropFlower) (Board, error) {
	if len(b.Hand) != 1 || !b.Hand[0].IsFlower() {
		return b, illegal(m, "hand is not the flower")
	}
	if !b.Flower.IsEmpty() {
		return b, illegal(m, "flower slot is occupied")
	}

	next := b.Clone()
	next.Flower = Occupied(b.Hand[0])
	next.clearHand()
	return next, nil
}

// exposedDragon is one copy of a dragon that a gather would remove.
type exposedDragon struct {
	area  Area
	index int
	card  Card
}

// exposedDragons lists every mobile copy of dragon d sitting on a column
// top or in a free cell.
func (b Board) exposedDragons(d rune) []exposedDragon {
	var out []exposedDragon
	for c := range b.Columns {
		if top, ok := b.Top(c); ok && top.IsDragon() && top.Mobile && top.Suit == d {
			out = append(out, exposedDragon{area: AreaColumn, index: c, card: top})
		}
	}
	for i, s := range b.FreeCells {
		if card, ok := s.Card(); ok && card.IsDragon() && card.Mobile && card.Suit == d {
			out = append(out, exposedDragon{area: AreaFreeCell, index: i, card: card})
		}
	}
	return out
}

// gatherTarget returns the first free cell that is empty or holds a copy of
// dragon d, or -1.
func (b Board) gatherTarget(d rune) int {
	for i, s := range b.FreeCells {
		card, ok := s.Card()
		if !ok || (card.IsDragon() && card.Mobile && card.Suit == d) {
			return i
		}
	}
	return -1
}

// CanGather reports whether GatherDragon{d} would succeed.
func (b Board) CanGather(d rune) bool {
	return Validate(b, GatherDragon{Dragon: d}) == nil
}

func gatherDragon(b Board, m GatherDragon) (Board, error) {
	if b.Holding() {
		return b, illegal(m, "hand is not empty")
	}
	need := b.Rules.CardsPerDragon
	exposed := b.exposedDragons(m.Dragon)
	if need < 1 || len(exposed) != need {
		return b, illegal(m, "%d of %d copies exposed", len(exposed), need)
	}
	target := b.gatherTarget(m.Dragon)
	if target < 0 {
		return b, illegal(m, "no free cell available")
	}

	next := b.Clone()
	for _, e := range exposed {
		switch e.area {
		case AreaColumn:
			col := next.Columns[e.index]
			next.Columns[e.index] = col[:len(col)-1]
		case AreaFreeCell:
			next.FreeCells[e.index] = EmptySlot()
		}
	}
	parked := exposed[0].card
	parked.Mobile = false
	next.FreeCells[target] = Occupied(parked)
	return next, nil
}

func cancelHand(b Board, m CancelHand) (Board, error) {
	if !b.Holding() {
		return b, illegal(m, "hand is empty")
	}

	next := b.Clone()
	switch b.HandFrom.Area {
	case AreaColumn:
		c := b.HandFrom.Index
		if c < 0 || c >= len(next.Columns) {
			return b, illegal(m, "origin column missing")
		}
		next.Columns[c] = append(next.Columns[c], next.Hand...)
	case AreaFreeCell:
		i := b.HandFrom.Index
		if i < 0 || i >= len(next.FreeCells) || !next.FreeCells[i].IsEmpty() || len(b.Hand) != 1 {
			return b, illegal(m, "origin free cell unavailable")
		}
		next.FreeCells[i] = Occupied(b.Hand[0])
	default:
		return b, illegal(m, "hand has no origin")
	}
	next.clearHand()
	return next, nil
}

func (b *Board) clearHand() {
	b.Hand = nil
	b.HandFrom = Origin{}
}
