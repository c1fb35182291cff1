package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-patience/internal/games/patience/core"
)

// nextID keeps hand-built cards distinct within a test binary.
var nextID = 1000

func num(suit rune, rank int) core.Card {
	nextID++
	return core.NewNumbered(nextID, suit, rank)
}

func dragon(suit rune) core.Card {
	nextID++
	return core.NewDragon(nextID, suit)
}

func flower() core.Card {
	nextID++
	return core.NewFlower(nextID)
}

// testBoard builds a classic-rules board with the given columns and no
// other cards placed.
func testBoard(cols ...[]core.Card) core.Board {
	cfg := core.DefaultConfig()
	cfg.Columns = len(cols)
	b := core.NewBoard(cfg, nil)
	for i, col := range cols {
		b.Columns[i] = col
	}
	return b
}

// mustApply applies req and fails the test if it was rejected.
func mustApply(t *testing.T, b core.Board, req core.MoveRequest) core.Board {
	t.Helper()
	next, err := core.Transition(b, req)
	if err != nil {
		t.Fatalf("%s: %v", req, err)
	}
	return next
}

// rejected asserts that req leaves b unchanged.
func rejected(t *testing.T, b core.Board, req core.MoveRequest) {
	t.Helper()
	if err := core.Validate(b, req); err == nil {
		t.Fatalf("%s: expected rejection", req)
	}
	if next := core.Apply(b, req); !next.Same(b) {
		t.Fatalf("%s: board changed on a rejected move", req)
	}
}

func cards(cs ...core.Card) []core.Card { return cs }
