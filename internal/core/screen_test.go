package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if r := s.GetCell(x, y).Rune; r != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", r, x, y)
			}
		}
	}

	if z := NewScreen(-3, -1); z.Width() != 0 || z.Height() != 0 || z.String() != "" {
		t.Error("negative dimensions should produce an empty screen")
	}
}

func TestScreenSetCellBounds(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, Cell{Rune: 'X', Color: ColorCyan})
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorCyan {
		t.Errorf("GetCell(5, 5) = %+v", c)
	}

	// Out of bounds should be silent
	for _, p := range [][2]int{{-1, 0}, {100, 0}, {0, -1}, {0, 100}} {
		s.SetCell(p[0], p[1], Cell{Rune: 'A'})
	}
	if strings.Contains(s.String(), "A") {
		t.Error("out of bounds writes should be dropped")
	}
	if s.GetCell(100, 0) != (Cell{Rune: ' '}) {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenStyledText(t *testing.T) {
	s := NewScreen(10, 2)

	end := s.DrawStyled(2, 1, "A3", ColorRed, AttrReverse)
	if end != 4 {
		t.Errorf("DrawStyled() returned %d, expected 4", end)
	}

	c := s.GetCell(3, 1)
	if c.Rune != '3' || c.Color != ColorRed || !c.Attr.Has(AttrReverse) {
		t.Errorf("unexpected cell %+v", c)
	}

	s.Clear()
	if s.GetCell(3, 1) != (Cell{Rune: ' '}) {
		t.Error("Clear should reset styles")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "Hello")
	s.DrawTextCentered(2, "X")

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Hello" {
		t.Errorf("Line 0 = %q, expected %q", lines[0], "Hello")
	}
	if lines[2] != "  X  " {
		t.Errorf("Line 2 = %q, expected %q", lines[2], "  X  ")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)
	s.DrawBox(NewRect(3, 2, 5, 5), ColorGray) // clipped to a single corner

	want := "┌──┐\n│  │\n└──┌"
	if s.String() != want {
		t.Errorf("DrawBox() produced\n%s\nexpected\n%s", s.String(), want)
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("box should carry its color")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawText(1, 1, "X")
	s.Resize(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Errorf("Resize() = %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if s.GetCell(1, 1).Rune != ' ' {
		t.Error("Resize should clear the buffer")
	}
}
