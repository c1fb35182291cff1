package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-patience/internal/core"
	"github.com/vovakirdan/tui-patience/internal/registry"
	"github.com/vovakirdan/tui-patience/internal/storage"
)

// resizer is implemented by games that lay out relative to the screen.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for playing a patience variant.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	gameState core.GameState
	started   time.Time
	now       time.Time
	saved     bool // Result recorded for the current deal
	quitting  bool
}

// NewModel deals the first game and creates the Bubble Tea model for it.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	if err := game.Reset(cfg); err != nil {
		return Model{}, err
	}

	now := time.Now()
	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logger,
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		gameState: game.State(),
		started:   now,
		now:       now,
	}
	m.help.Width = cfg.ScreenW
	m.layout()
	return m, nil
}

// Init starts the clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(clockInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.now = time.Time(msg)
		return m, tickCmd(clockInterval)
	}

	return m, nil
}

// handleKey maps a key to an action and steps the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionNone {
		return m, nil
	}

	// Leaving a deal records it as played.
	if action == core.ActionQuit || action == core.ActionNewGame {
		m.recordResult()
	}

	prevSeed := m.gameState.Seed
	result := m.game.Step(core.NewInputFrame(action))
	m.gameState = result.State

	if m.gameState.Seed != prevSeed {
		m.started = time.Now()
		m.now = m.started
		m.saved = false
	}

	if m.gameState.Won {
		m.recordResult()
	}

	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// recordResult saves the current deal once, if any move was made.
func (m *Model) recordResult() {
	if m.saved || m.gameState.Moves == 0 {
		return
	}
	m.saved = true

	// The clock only advances on ticks.
	m.now = time.Now()
	elapsed := m.elapsed()
	m.logger.Info("game finished",
		"variant", m.game.ID(), "seed", m.gameState.Seed,
		"won", m.gameState.Won, "moves", m.gameState.Moves, "elapsed", elapsed)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		Variant:  m.game.ID(),
		Seed:     m.gameState.Seed,
		Won:      m.gameState.Won,
		Moves:    m.gameState.Moves,
		Duration: elapsed,
	})
	if err != nil {
		m.logger.Error("cannot save result", "err", err)
	}
}

// elapsed returns the time spent on the current deal.
func (m Model) elapsed() time.Duration {
	if m.now.Before(m.started) {
		return 0
	}
	return m.now.Sub(m.started).Truncate(time.Second)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout sizes the board screen to leave room for the help bar. The deal
// survives resizes.
func (m *Model) layout() {
	helpLines := 1
	if m.help.ShowAll {
		helpLines = len(m.keys.FullHelp()[0])
	}
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-helpLines, 1))

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.screen.Width(), m.screen.Height())
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".patience", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the board, the clock and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	clock := helpStyle.Render(formatDuration(m.elapsed()) + "  ")

	return RenderScreen(m.screen) + "\n" + clock + m.help.View(m.keys)
}

// formatDuration renders d as m:ss or h:mm:ss.
func formatDuration(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	mins := int(d/time.Minute) % 60
	secs := int(d/time.Second) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, mins, secs)
	}
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// Run starts the Bubble Tea program for one variant.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(game, store, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
