package patience

// Snapshot captures the visible game state for determinism testing.
type Snapshot struct {
	Variant     string
	Seed        int64
	Moves       int
	Won         bool
	HandSize    int
	CardsInPlay int
	HomeRanks   []int
	FreeCells   []string
	Flower      bool
	Cursor      Cursor
	Message     string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	b := g.session.Board()

	homes := make([]int, len(b.Home))
	for i, h := range b.Home {
		homes[i] = h.Rank
	}
	cells := make([]string, len(b.FreeCells))
	for i, c := range b.FreeCells {
		cells[i] = c.String()
	}

	return Snapshot{
		Variant:     g.ID(),
		Seed:        g.session.Seed(),
		Moves:       g.session.Moves(),
		Won:         g.session.Won(),
		HandSize:    len(b.Hand),
		CardsInPlay: b.CardsInPlay(),
		HomeRanks:   homes,
		FreeCells:   cells,
		Flower:      !b.Flower.IsEmpty(),
		Cursor:      g.cursor,
		Message:     g.message,
	}
}
