// Package patience adapts the dragon patience engine to the platform: it
// maps cursor actions to move requests and draws the board into a screen
// buffer.
package patience

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-patience/internal/config"
	platformcore "github.com/vovakirdan/tui-patience/internal/core"
	"github.com/vovakirdan/tui-patience/internal/games/patience/core"
	"github.com/vovakirdan/tui-patience/internal/registry"
)

// Package-level settings applied on the next Reset.
var (
	activeConfig = config.DefaultPatienceConfig()
	logger       *log.Logger
)

// SetConfig sets the loaded configuration used by new games.
func SetConfig(cfg config.PatienceConfig) {
	activeConfig = cfg
}

// SetLogger sets the logger handed to new sessions. Nil disables logging.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game implements registry.Game for one deal preset.
type Game struct {
	preset  config.Preset
	cfg     config.PatienceConfig
	session *core.Session
	rng     *rand.Rand
	cursor  Cursor

	screenW int
	screenH int

	message string
	quit    bool
}

// New creates a game for the given preset. Call Reset before use.
func New(preset config.Preset) *Game {
	return &Game{preset: preset}
}

func init() {
	for _, p := range config.Presets() {
		registry.Register(string(p), func() registry.Game {
			return New(p)
		})
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return string(g.preset)
}

// Title returns the display name.
func (g *Game) Title() string {
	return fmt.Sprintf("Patience (%s)", g.preset)
}

// Description returns a summary of the deal this variant produces.
func (g *Game) Description() string {
	d := g.presetConfig().Deal
	return fmt.Sprintf("%d suits to %d, %d dragons of %d, %d columns",
		d.Suits, d.MaxRank, d.Dragons, d.CardsPerDragon, d.Columns)
}

// presetConfig returns the active configuration with this preset applied.
func (g *Game) presetConfig() config.PatienceConfig {
	cfg := activeConfig
	config.ApplyPreset(&cfg, g.preset)
	return cfg
}

// Rules converts a deal configuration into engine rules.
func Rules(d config.DealConfig) core.Config {
	return core.Config{
		Suits:          d.Suits,
		Dragons:        d.Dragons,
		MaxRank:        d.MaxRank,
		Columns:        d.Columns,
		CardsPerDragon: d.CardsPerDragon,
	}
}

// Reset deals a new game from the runtime seed.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) error {
	g.cfg = g.presetConfig()
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.message = ""
	g.quit = false

	var opts []core.Option
	if logger != nil {
		opts = append(opts, core.WithLogger(logger.WithPrefix(string(g.preset))))
	}

	session, err := core.NewSession(Rules(g.cfg.Deal), cfg.Seed, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", g.preset, err)
	}
	g.session = session
	g.cursor = Cursor{}
	g.cursor.normalize(g.session.Board())
	return nil
}

// Resize updates the screen dimensions used by Render.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Board returns the current board.
func (g *Game) Board() core.Board {
	return g.session.Board()
}

// Cursor returns the cursor position.
func (g *Game) Cursor() Cursor {
	return g.cursor
}

// Step applies one frame of input.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.session == nil || in.Empty() {
		return platformcore.StepResult{State: g.State()}
	}
	before := g.session.Moves()
	beforeBoard := g.session.Board()
	g.message = ""

	switch {
	case in.Has(platformcore.ActionQuit):
		g.quit = true
	case in.Has(platformcore.ActionNewGame):
		g.newGame()
	case g.session.Won():
		// Only undo/restart are meaningful on a finished board.
		g.history(in)
	case in.Has(platformcore.ActionUndo), in.Has(platformcore.ActionRedo), in.Has(platformcore.ActionRestart):
		g.history(in)
	case in.Has(platformcore.ActionAuto):
		if !g.session.AutoResolve() {
			g.message = "nothing to send home"
		}
	case in.Has(platformcore.ActionCancel):
		g.try(core.CancelHand{})
	case in.Has(platformcore.ActionGather):
		g.gather()
	case in.Has(platformcore.ActionHome):
		g.sendHome()
	case in.Has(platformcore.ActionSelect):
		g.selectAtCursor()
	default:
		g.cursor.move(in, g.session.Board())
	}

	g.cursor.normalize(g.session.Board())
	changed := g.session.Moves() != before || !g.session.Board().Same(beforeBoard)
	return platformcore.StepResult{State: g.State(), Changed: changed}
}

// history handles undo, redo and restart.
func (g *Game) history(in platformcore.InputFrame) {
	switch {
	case in.Has(platformcore.ActionUndo):
		if !g.session.Undo() {
			g.message = "nothing to undo"
		}
	case in.Has(platformcore.ActionRedo):
		if !g.session.Redo() {
			g.message = "nothing to redo"
		}
	case in.Has(platformcore.ActionRestart):
		if !g.session.ResetToStart() {
			g.message = "already at the deal"
		}
	}
}

func (g *Game) newGame() {
	seed := g.rng.Int63()
	if err := g.session.NewGame(Rules(g.cfg.Deal), seed); err != nil {
		g.message = err.Error()
		return
	}
	g.cursor = Cursor{}
}

// try validates req against the current board, applies it and sweeps
// cards home when auto-resolve is on. Returns false with a message on
// rejection.
func (g *Game) try(req core.MoveRequest) bool {
	if err := core.Validate(g.session.Board(), req); err != nil {
		g.message = reason(err)
		return false
	}
	if !g.session.Do(req) {
		return false
	}
	g.settle()
	return true
}

// settle runs the auto-resolver after a move when enabled.
func (g *Game) settle() {
	if g.cfg.Play.AutoResolve && !g.session.Board().Holding() {
		g.session.AutoResolve()
	}
}

func (g *Game) selectAtCursor() {
	b := g.session.Board()
	c := g.cursor

	if b.Holding() {
		switch {
		case c.Zone == ZoneTableau:
			g.try(core.DropColumn{Column: c.Pos})
		default:
			area, i := c.TopSlot(b)
			switch area {
			case TopFreeCell:
				g.try(core.DropFreeCell{Cell: i})
			case TopFlower:
				g.try(core.DropFlower{})
			case TopHome:
				g.try(core.DropHome{Suit: core.SuitLabel(i)})
			}
		}
		return
	}

	switch {
	case c.Zone == ZoneTableau:
		if len(b.Columns[c.Pos]) == 0 {
			g.message = "column is empty"
			return
		}
		g.try(core.PickupColumn{Column: c.Pos, Index: c.Depth})
	default:
		area, i := c.TopSlot(b)
		if area != TopFreeCell {
			g.message = "nothing to pick up here"
			return
		}
		g.try(core.PickupFreeCell{Cell: i})
	}
}

// sendHome banks the held card, or the exposed card under the cursor.
func (g *Game) sendHome() {
	b := g.session.Board()

	if b.Holding() {
		g.try(homeRequest(b.Hand[0]))
		return
	}

	var pickup core.MoveRequest
	switch g.cursor.Zone {
	case ZoneTableau:
		col := b.Columns[g.cursor.Pos]
		if len(col) == 0 {
			g.message = "column is empty"
			return
		}
		pickup = core.PickupColumn{Column: g.cursor.Pos, Index: len(col) - 1}
	default:
		area, i := g.cursor.TopSlot(b)
		if area != TopFreeCell {
			g.message = "nothing to send home"
			return
		}
		pickup = core.PickupFreeCell{Cell: i}
	}

	held, err := core.Transition(b, pickup)
	if err != nil {
		g.message = reason(err)
		return
	}
	drop := homeRequest(held.Hand[0])
	if err := core.Validate(held, drop); err != nil {
		g.message = reason(err)
		return
	}
	if g.session.Chain(pickup, drop) {
		g.settle()
	}
}

func homeRequest(c core.Card) core.MoveRequest {
	if c.IsFlower() {
		return core.DropFlower{}
	}
	return core.DropHome{Suit: c.Suit}
}

// gather parks the dragon under the cursor, or the first dragon that can
// be gathered.
func (g *Game) gather() {
	b := g.session.Board()
	if c, ok := g.cursor.CardAt(b); ok && c.IsDragon() && c.Mobile {
		g.try(core.GatherDragon{Dragon: c.Suit})
		return
	}

	for i := 0; i < b.Rules.Dragons; i++ {
		d := core.DragonLabel(i, b.Rules.Dragons)
		if b.CanGather(d) {
			g.try(core.GatherDragon{Dragon: d})
			return
		}
	}
	g.message = "no dragon can be gathered"
}

// reason extracts the human-readable part of a rejection.
func reason(err error) string {
	var illegal *core.IllegalMoveError
	if errors.As(err, &illegal) {
		return illegal.Reason
	}
	return err.Error()
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{GameOver: g.quit}
	}
	won := g.session.Won()
	return platformcore.GameState{
		Moves:    g.session.Moves(),
		Won:      won,
		Holding:  g.session.Board().Holding(),
		Seed:     g.session.Seed(),
		Message:  g.message,
		GameOver: won || g.quit,
	}
}
