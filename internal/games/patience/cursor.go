package patience

import (
	platformcore "github.com/vovakirdan/tui-patience/internal/core"
	"github.com/vovakirdan/tui-patience/internal/games/patience/core"
)

// Zone is the row the cursor is on.
type Zone uint8

const (
	ZoneTableau Zone = iota // Columns
	ZoneTop                 // Free cells, flower slot and home piles
)

// TopArea identifies a slot kind in the top row.
type TopArea uint8

const (
	TopFreeCell TopArea = iota
	TopFlower
	TopHome
)

// Cursor is a position on the board. In the tableau Depth is the index of
// the card the cursor would pick up from.
type Cursor struct {
	Zone  Zone
	Pos   int
	Depth int
}

// topSlots returns the number of slots in the top row.
func topSlots(b core.Board) int {
	return len(b.FreeCells) + 1 + len(b.Home)
}

// TopSlot resolves a top-row position into an area and an index within it.
func (c Cursor) TopSlot(b core.Board) (TopArea, int) {
	cells := len(b.FreeCells)
	switch {
	case c.Pos < cells:
		return TopFreeCell, c.Pos
	case c.Pos == cells:
		return TopFlower, 0
	default:
		return TopHome, c.Pos - cells - 1
	}
}

// CardAt returns the card under the cursor: the exposed card of the column,
// or the content of a top-row slot.
func (c Cursor) CardAt(b core.Board) (core.Card, bool) {
	if c.Zone == ZoneTableau {
		return b.Top(c.Pos)
	}
	area, i := c.TopSlot(b)
	switch area {
	case TopFreeCell:
		return b.FreeCells[i].Card()
	case TopFlower:
		return b.Flower.Card()
	default:
		home := b.Home[i]
		return home, home.Rank > 0
	}
}

// move applies a navigation action.
func (c *Cursor) move(in platformcore.InputFrame, b core.Board) {
	switch {
	case in.Has(platformcore.ActionLeft):
		c.step(-1, b)
	case in.Has(platformcore.ActionRight):
		c.step(1, b)
	case in.Has(platformcore.ActionUp):
		c.up(b)
	case in.Has(platformcore.ActionDown):
		c.down(b)
	}
}

func (c *Cursor) step(delta int, b core.Board) {
	if c.Zone == ZoneTop {
		c.Pos = platformcore.Wrap(c.Pos+delta, topSlots(b))
		return
	}
	c.Pos = platformcore.Wrap(c.Pos+delta, len(b.Columns))
	c.Depth = topIndex(b, c.Pos)
}

// up extends the selection one card deeper while the run stays liftable,
// then moves to the top row.
func (c *Cursor) up(b core.Board) {
	if c.Zone == ZoneTop {
		return
	}
	if c.Depth > 0 && b.Liftable(c.Pos, c.Depth-1) {
		c.Depth--
		return
	}
	c.Zone = ZoneTop
	c.Pos = scale(c.Pos, len(b.Columns), topSlots(b))
}

// down shrinks the selection, or drops from the top row into the tableau.
func (c *Cursor) down(b core.Board) {
	if c.Zone == ZoneTop {
		c.Zone = ZoneTableau
		c.Pos = scale(c.Pos, topSlots(b), len(b.Columns))
		c.Depth = topIndex(b, c.Pos)
		return
	}
	c.Depth = platformcore.Clamp(c.Depth+1, 0, topIndex(b, c.Pos))
}

// normalize keeps the cursor on the board after the board changed.
func (c *Cursor) normalize(b core.Board) {
	if c.Zone == ZoneTop {
		c.Pos = platformcore.Clamp(c.Pos, 0, topSlots(b)-1)
		return
	}
	if len(b.Columns) == 0 {
		c.Pos, c.Depth = 0, 0
		return
	}
	c.Pos = platformcore.Clamp(c.Pos, 0, len(b.Columns)-1)
	top := topIndex(b, c.Pos)
	c.Depth = platformcore.Clamp(c.Depth, 0, top)
	if len(b.Columns[c.Pos]) > 0 && !b.Liftable(c.Pos, c.Depth) {
		c.Depth = top
	}
}

// topIndex returns the index of the exposed card of column i, or 0 when
// the column is empty.
func topIndex(b core.Board, i int) int {
	if i < 0 || i >= len(b.Columns) {
		return 0
	}
	return max(len(b.Columns[i])-1, 0)
}

// scale maps position pos in a row of n slots onto a row of m slots.
func scale(pos, n, m int) int {
	if n <= 1 || m <= 1 {
		return 0
	}
	return platformcore.Clamp((pos*(m-1)+(n-1)/2)/(n-1), 0, m-1)
}
