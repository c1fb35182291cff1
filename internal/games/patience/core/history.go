package core

import "errors"

// ErrHistoryUnderflow is returned when undo would remove the initial deal
// or redo has nothing to restore.
var ErrHistoryUnderflow = errors.New("history underflow")

// History is the append-only log of board snapshots for one game.
// Entry 0 is the initial deal.
//
// Undo is destructive: it pops the tip onto a redo stack. Recording any new
// board clears that stack, so redo only ever replays a straight line.
type History struct {
	entries []Board
	redo    []Board
}

// NewHistory starts a history at the initial deal.
func NewHistory(initial Board) *History {
	return &History{entries: []Board{initial}}
}

// Current returns the latest snapshot.
func (h *History) Current() Board {
	return h.entries[len(h.entries)-1]
}

// Initial returns the deal the history started from.
func (h *History) Initial() Board {
	return h.entries[0]
}

// Len returns the number of snapshots held.
func (h *History) Len() int {
	return len(h.entries)
}

// At returns snapshot i.
func (h *History) At(i int) (Board, bool) {
	if i < 0 || i >= len(h.entries) {
		return Board{}, false
	}
	return h.entries[i], true
}

// CanUndo reports whether an undo would succeed.
func (h *History) CanUndo() bool { return len(h.entries) > 1 }

// CanRedo reports whether a redo would succeed.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Record appends b if it differs structurally from the tip.
// Returns true if the history grew.
func (h *History) Record(b Board) bool {
	if b.Same(h.Current()) {
		return false
	}
	h.entries = append(h.entries, b)
	h.redo = h.redo[:0]
	return true
}

// Undo discards the tip, keeping it for Redo.
func (h *History) Undo() error {
	if !h.CanUndo() {
		return ErrHistoryUnderflow
	}
	last := len(h.entries) - 1
	h.redo = append(h.redo, h.entries[last])
	h.entries = h.entries[:last]
	return nil
}

// Redo restores the most recently undone snapshot.
func (h *History) Redo() error {
	if !h.CanRedo() {
		return ErrHistoryUnderflow
	}
	last := len(h.redo) - 1
	h.entries = append(h.entries, h.redo[last])
	h.redo = h.redo[:last]
	return nil
}

// ResetToStart records the initial deal as a new tip. Earlier entries stay,
// so the reset itself can be undone.
func (h *History) ResetToStart() bool {
	return h.Record(h.Initial())
}
