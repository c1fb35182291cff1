package core

// AutoResolve moves every card that can go somewhere terminal (the flower to
// its slot, numbered cards onto their home piles) until nothing more moves.
// It does nothing while cards are held.
func AutoResolve(b Board) Board {
	steps := AutoResolveSteps(b)
	if len(steps) == 0 {
		return b
	}
	return steps[len(steps)-1]
}

// AutoResolveSteps returns the board after each resolving move, in order.
// The result is empty when no move applies.
//
// Each pass visits every column top and free cell once and moves at most one
// card from each. Every move takes a card out of play, so the loop stops
// after at most CardsInPlay passes.
func AutoResolveSteps(b Board) []Board {
	if b.Holding() {
		return nil
	}

	var steps []Board
	limit := b.CardsInPlay()
	for pass := 0; pass <= limit; pass++ {
		moved := false

		for c := range b.Columns {
			top, ok := b.Top(c)
			if !ok {
				continue
			}
			if next, ok := resolveOne(b, PickupColumn{Column: c, Index: len(b.Columns[c]) - 1}, top); ok {
				b = next
				steps = append(steps, b)
				moved = true
			}
		}

		for i := range b.FreeCells {
			card, ok := b.FreeCells[i].Card()
			if !ok || !card.Mobile {
				continue
			}
			if next, ok := resolveOne(b, PickupFreeCell{Cell: i}, card); ok {
				b = next
				steps = append(steps, b)
				moved = true
			}
		}

		if !moved {
			break
		}
	}
	return steps
}

// resolveOne lifts card with pickup and sends it to its terminal place.
// Both halves must succeed or the board is left alone.
func resolveOne(b Board, pickup MoveRequest, card Card) (Board, bool) {
	var drop MoveRequest
	switch {
	case card.IsFlower():
		drop = DropFlower{}
	case card.IsNumbered() && b.Accepts(card):
		drop = DropHome{Suit: card.Suit}
	default:
		return b, false
	}

	held, err := Transition(b, pickup)
	if err != nil {
		return b, false
	}
	placed, err := Transition(held, drop)
	if err != nil {
		return b, false
	}
	return placed, true
}
