package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-patience/internal/core"
	"github.com/vovakirdan/tui-patience/internal/registry"
	"github.com/vovakirdan/tui-patience/internal/storage"
)

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{} })
	registry.Register("fake-two", func() registry.Game { return &fakeGame{} })
}

func menuSend(m MenuModel, msgs ...tea.Msg) (MenuModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(MenuModel)
	}
	return m, cmd
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig())
	if len(m.items) != 2 {
		t.Fatalf("Expected 2 registered variants, got %d", len(m.items))
	}

	m, _ = menuSend(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Errorf("cursor should stop at the last item, got %d", m.cursor)
	}

	m, cmd := menuSend(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("select should quit the menu program")
	}

	res := m.result()
	if res.Quit || res.WantsScoreboard || res.Variant != "fake-two" {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m, _ := menuSend(NewMenuModel(core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if res := m.result(); !res.WantsScoreboard {
		t.Errorf("tab should request the scoreboard, got %+v", res)
	}

	m, _ = menuSend(NewMenuModel(core.DefaultConfig()), runeKey('q'))
	if res := m.result(); !res.Quit {
		t.Errorf("q should quit, got %+v", res)
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m, _ := menuSend(NewMenuModel(core.DefaultConfig()), tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := m.Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
	if !strings.Contains(m.View(), "P A T I E N C E") {
		t.Error("menu title missing")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText = %q", got)
	}
}

func TestScoreboardShowsResults(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Result{
		{Variant: "fake", Seed: 11, Won: true, Moves: 42, Duration: 95 * time.Second},
		{Variant: "fake", Seed: 12, Moves: 7},
		{Variant: "fake-two", Seed: 13, Moves: 3},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 120, 40)
	if len(m.results) != 2 {
		t.Fatalf("Expected 2 results for the first variant, got %d", len(m.results))
	}
	if line := m.statsLine(); !strings.Contains(line, "Played 2") || !strings.Contains(line, "Best 42 moves") {
		t.Errorf("statsLine() = %q", line)
	}
	if !strings.Contains(m.View(), "RESULTS") {
		t.Error("title missing")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.results) != 1 || m.results[0].Seed != 13 {
		t.Errorf("tab should switch variants, got %+v", m.results)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ScoreboardModel)
	if m.detail == nil || m.detail.Seed != 13 {
		t.Fatalf("enter should open the selected game, got %+v", m.detail)
	}
	if !strings.Contains(m.View(), "patience play fake-two --seed 13") {
		t.Error("detail should show the replay command")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if m.detail != nil || m.IsGoingBack() {
		t.Error("esc should close the detail before leaving")
	}

	next, _ = m.Update(runeKey('b'))
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("b should go back to the menu")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if m.statsLine() != "No games played" {
		t.Errorf("statsLine() = %q", m.statsLine())
	}
	if !strings.Contains(m.View(), "No games recorded yet") {
		t.Error("empty notice missing")
	}
}

func TestResultRows(t *testing.T) {
	rows := resultRows([]storage.Result{{Won: true, Moves: 5, Seed: 9, Duration: 61 * time.Second}})
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row[0] != "1" || row[1] != "won" || row[2] != "5" || row[3] != "1:01" || row[4] != "9" {
		t.Errorf("unexpected row %v", row)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawStyled(3, 0, "X", core.ColorRed, core.AttrBold)
	s.DrawText(0, 1, "cd")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "X") {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "cd") {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestCellStyleAttributes(t *testing.T) {
	style := cellStyle(core.ColorGreen, core.AttrBold|core.AttrReverse)
	if !style.GetBold() || !style.GetReverse() || style.GetFaint() {
		t.Error("unexpected style attributes")
	}
	if cellStyle(core.Color(99), core.AttrNone).GetBold() {
		t.Error("unknown colors should fall back to the default style")
	}
}
