package core

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Session is one game in progress: the rules, the deal and the move history.
// Callers serialize access; a Session is not safe for concurrent use.
type Session struct {
	cfg     Config
	seed    int64
	ids     IDGen
	history *History
	logger  *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes session events to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession validates cfg and deals a new game shuffled with seed.
func NewSession(cfg Config, seed int64, opts ...Option) (*Session, error) {
	s := &Session{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.NewGame(cfg, seed); err != nil {
		return nil, err
	}
	return s, nil
}

// NewGame replaces the current game with a fresh deal. An invalid cfg is
// rejected before any deck is built and the current game is kept.
func (s *Session) NewGame(cfg Config, seed int64) error {
	if err := cfg.Validate(); err != nil {
		s.logger.Warn("rejected configuration", "error", err)
		return fmt.Errorf("new game: %w", err)
	}

	s.cfg = cfg
	s.seed = seed
	s.ids = IDGen{}
	deck := Shuffle(BuildDeck(cfg, &s.ids), rand.New(rand.NewSource(seed)))
	s.history = NewHistory(NewBoard(cfg, deck))

	s.logger.Info("new game", "seed", seed, "cards", len(deck), "columns", cfg.Columns)
	return nil
}

// Config returns the rules of the current game.
func (s *Session) Config() Config { return s.cfg }

// Seed returns the shuffle seed of the current game.
func (s *Session) Seed() int64 { return s.seed }

// Board returns the latest snapshot.
func (s *Session) Board() Board { return s.history.Current() }

// History exposes the snapshot log for read-only inspection.
func (s *Session) History() *History { return s.history }

// Won reports whether the latest snapshot is a finished game.
func (s *Session) Won() bool { return IsWon(s.Board()) }

// Moves counts recorded transitions since the deal.
func (s *Session) Moves() int { return s.history.Len() - 1 }

// Do applies req to the latest board and records the result.
// Returns false when the move was illegal.
func (s *Session) Do(req MoveRequest) bool {
	next, err := Transition(s.Board(), req)
	if err != nil {
		s.logger.Debug("move rejected", "error", err)
		return false
	}
	if !s.history.Record(next) {
		return false
	}
	s.logger.Debug("move", "request", req.String(), "moves", s.Moves())
	if IsWon(next) {
		s.logger.Info("game won", "seed", s.seed, "moves", s.Moves())
	}
	return true
}

// Chain applies reqs in order and records only the final board, so the
// sequence undoes as one step. Nothing is recorded if any request fails.
func (s *Session) Chain(reqs ...MoveRequest) bool {
	next := s.Board()
	for _, req := range reqs {
		var err error
		next, err = Transition(next, req)
		if err != nil {
			s.logger.Debug("chain rejected", "request", req.String(), "error", err)
			return false
		}
	}
	if !s.history.Record(next) {
		return false
	}
	s.logger.Debug("chain", "requests", len(reqs), "moves", s.Moves())
	if IsWon(next) {
		s.logger.Info("game won", "seed", s.seed, "moves", s.Moves())
	}
	return true
}

// PickupColumn lifts a run from column c starting at index i.
func (s *Session) PickupColumn(c, i int) bool { return s.Do(PickupColumn{Column: c, Index: i}) }

// DropColumn places the hand on column c.
func (s *Session) DropColumn(c int) bool { return s.Do(DropColumn{Column: c}) }

// PickupFreeCell lifts the card in free cell i.
func (s *Session) PickupFreeCell(i int) bool { return s.Do(PickupFreeCell{Cell: i}) }

// DropFreeCell places the held card in free cell i.
func (s *Session) DropFreeCell(i int) bool { return s.Do(DropFreeCell{Cell: i}) }

// DropHome banks the held card on the home pile of suit.
func (s *Session) DropHome(suit rune) bool { return s.Do(DropHome{Suit: suit}) }

// DropFlower places the held flower in its slot.
func (s *Session) DropFlower() bool { return s.Do(DropFlower{}) }

// GatherDragon parks every exposed copy of dragon d in one free cell.
func (s *Session) GatherDragon(d rune) bool { return s.Do(GatherDragon{Dragon: d}) }

// CancelHand puts the held cards back where they came from.
func (s *Session) CancelHand() bool { return s.Do(CancelHand{}) }

// AutoResolve sends every safe card home and records the final board as a
// single step.
func (s *Session) AutoResolve() bool {
	before := s.Board()
	steps := AutoResolveSteps(before)
	if len(steps) == 0 {
		return false
	}
	if !s.history.Record(steps[len(steps)-1]) {
		return false
	}
	s.logger.Debug("auto-resolve", "cards", len(steps), "moves", s.Moves())
	if s.Won() {
		s.logger.Info("game won", "seed", s.seed, "moves", s.Moves())
	}
	return true
}

// Undo steps back one snapshot. The initial deal cannot be undone.
func (s *Session) Undo() bool {
	if err := s.history.Undo(); err != nil {
		s.logger.Debug("undo", "error", err)
		return false
	}
	return true
}

// Redo re-applies the last undone snapshot.
func (s *Session) Redo() bool {
	if err := s.history.Redo(); err != nil {
		s.logger.Debug("redo", "error", err)
		return false
	}
	return true
}

// ResetToStart records the initial deal as the latest snapshot.
func (s *Session) ResetToStart() bool {
	return s.history.ResetToStart()
}
