package patience

import (
	"fmt"
	"strings"

	platformcore "github.com/vovakirdan/tui-patience/internal/core"
	"github.com/vovakirdan/tui-patience/internal/games/patience/core"
)

// Layout constants
const (
	slotW     = 5 // "[A3 ]"
	slotPitch = slotW + 1
	groupGap  = 2 // Extra space between free cells, flower and home
	topRowY   = 2
	tableTopY = 4
	minH      = 12
)

// MinSize returns the smallest screen that fits a board with this deal.
func MinSize(b core.Board) (int, int) {
	top := topSlots(b)*slotPitch + 2*groupGap
	table := len(b.Columns) * slotPitch
	return max(top, table, 40) + 2, minH
}

// Render draws the current board into the provided screen buffer.
func (g *Game) Render(dst *platformcore.Screen) {
	if g.session == nil {
		return
	}
	b := g.session.Board()

	w, h := MinSize(b)
	if dst.Width() < w || dst.Height() < h {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d, have %dx%d", w, h, dst.Width(), dst.Height()))
		return
	}

	g.renderHeader(dst)
	g.renderTopRow(dst, b)
	g.renderTableau(dst, b)
	g.renderFooter(dst, b)
}

func (g *Game) renderHeader(dst *platformcore.Screen) {
	dst.DrawStyled(1, 0, strings.ToUpper(g.Title()), platformcore.ColorBrightWhite, platformcore.AttrBold)

	stats := fmt.Sprintf("Moves %d  Seed %d", g.session.Moves(), g.session.Seed())
	dst.DrawStyled(dst.Width()-len(stats)-1, 0, stats, platformcore.ColorGray, platformcore.AttrNone)
}

func (g *Game) renderTopRow(dst *platformcore.Screen, b core.Board) {
	x := 1
	pos := 0
	cursorOn := func(p int) bool {
		return g.cursor.Zone == ZoneTop && g.cursor.Pos == p
	}

	frameGroup(dst, x, len(b.FreeCells))
	for _, cell := range b.FreeCells {
		c, ok := cell.Card()
		g.drawSlot(dst, x, topRowY, c, ok, cursorOn(pos), b)
		x += slotPitch
		pos++
	}

	x += groupGap
	frameGroup(dst, x, 1)
	c, ok := b.Flower.Card()
	if !ok {
		drawEmpty(dst, x, topRowY, "@", cursorOn(pos))
	} else {
		g.drawSlot(dst, x, topRowY, c, true, cursorOn(pos), b)
	}
	x += slotPitch
	pos++

	x += groupGap
	frameGroup(dst, x, len(b.Home))
	for i, home := range b.Home {
		if home.Rank == 0 {
			drawEmpty(dst, x, topRowY, string(core.SuitLabel(i)), cursorOn(pos))
		} else {
			g.drawSlot(dst, x, topRowY, home, true, cursorOn(pos), b)
		}
		x += slotPitch
		pos++
	}
}

func (g *Game) renderTableau(dst *platformcore.Screen, b core.Board) {
	avail := dst.Height() - 3 - tableTopY

	for ci, col := range b.Columns {
		x := 1 + ci*slotPitch
		selected := g.cursor.Zone == ZoneTableau && g.cursor.Pos == ci

		if len(col) == 0 {
			drawEmpty(dst, x, tableTopY, "", selected)
			continue
		}

		first := 0
		y := tableTopY
		if len(col) > avail {
			first = len(col) - avail + 1
			dst.DrawStyled(x, y, fmt.Sprintf("[+%-2d]", first), platformcore.ColorGray, platformcore.AttrFaint)
			y++
		}

		liftFrom := firstLiftable(b, ci)
		for i := first; i < len(col); i++ {
			c := col[i]
			on := selected && i >= g.cursor.Depth
			attr := g.cardAttr(c, b)
			if g.cfg.Play.ShowHints && i < liftFrom {
				attr |= platformcore.AttrFaint
			}
			if on {
				attr |= platformcore.AttrReverse
			}
			dst.DrawStyled(x, y, slotText(c.String()), cardColor(c), attr)
			y++
		}
	}
}

func (g *Game) renderFooter(dst *platformcore.Screen, b core.Board) {
	y := dst.Height() - 2
	x := dst.DrawStyled(1, y, "Hand: ", platformcore.ColorGray, platformcore.AttrNone)
	if !b.Holding() {
		dst.DrawStyled(x, y, "empty", platformcore.ColorGray, platformcore.AttrFaint)
	}
	for _, c := range b.Hand {
		x = dst.DrawStyled(x, y, slotText(c.String()), cardColor(c), platformcore.AttrBold)
	}

	msg := g.message
	if g.session.Won() {
		msg = fmt.Sprintf("Solved in %d moves! n: new deal  u: undo", g.session.Moves())
	}
	if msg != "" {
		dst.DrawStyled(1, dst.Height()-1, msg, platformcore.ColorYellow, platformcore.AttrNone)
	}
}

// frameGroup boxes n top-row slots starting at column x.
func frameGroup(dst *platformcore.Screen, x, n int) {
	dst.DrawBox(platformcore.NewRect(x-1, topRowY-1, n*slotPitch+1, 3), platformcore.ColorGray)
}

// drawSlot draws a card in a top-row slot.
func (g *Game) drawSlot(dst *platformcore.Screen, x, y int, c core.Card, ok, cursor bool, b core.Board) {
	if !ok {
		drawEmpty(dst, x, y, "", cursor)
		return
	}
	attr := g.cardAttr(c, b)
	if cursor {
		attr |= platformcore.AttrReverse
	}
	dst.DrawStyled(x, y, slotText(c.String()), cardColor(c), attr)
}

// cardAttr returns hint attributes for a card.
func (g *Game) cardAttr(c core.Card, b core.Board) platformcore.Attr {
	switch {
	case c.IsDragon() && !c.Mobile:
		return platformcore.AttrFaint
	case g.cfg.Play.ShowHints && c.IsDragon() && b.CanGather(c.Suit):
		return platformcore.AttrBold
	default:
		return platformcore.AttrNone
	}
}

func drawEmpty(dst *platformcore.Screen, x, y int, label string, cursor bool) {
	attr := platformcore.AttrFaint
	if cursor {
		attr = platformcore.AttrReverse
	}
	dst.DrawStyled(x, y, slotText(label), platformcore.ColorGray, attr)
}

func slotText(label string) string {
	return fmt.Sprintf("[%-3s]", label)
}

func cardColor(c core.Card) platformcore.Color {
	switch c.Kind {
	case core.KindDragon:
		return platformcore.ColorBrightWhite
	case core.KindFlower:
		return platformcore.ColorOrange
	default:
		return platformcore.SuitColor(core.SuitIndex(c.Suit))
	}
}

// firstLiftable returns the lowest index of column ci that can be picked up.
func firstLiftable(b core.Board, ci int) int {
	col := b.Columns[ci]
	i := len(col) - 1
	for i > 0 && core.IsValidChild(col[i], col[i-1]) {
		i--
	}
	return max(i, 0)
}
