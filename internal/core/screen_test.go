package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(4, 2)
	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", s.Width(), s.Height())
	}
	if got, want := s.String(), "    \n    "; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if z := NewScreen(-1, 3); z.Width() != 0 || z.String() != "\n\n" {
		t.Errorf("negative width should clamp to 0, got %d %q", z.Width(), z.String())
	}
}

func TestScreenSetGetClips(t *testing.T) {
	s := NewScreen(3, 3)
	s.SetColored(1, 2, 'D', ColorDestination)
	s.Set(-1, 0, 'x')
	s.Set(3, 0, 'x')
	s.Set(0, 3, 'x')

	if got := s.GetCell(1, 2); got != (Cell{Rune: 'D', Color: ColorDestination}) {
		t.Errorf("GetCell(1, 2) = %+v", got)
	}
	if got := s.Get(5, 5); got != ' ' {
		t.Errorf("Get outside = %q, want space", got)
	}
	if strings.ContainsRune(s.String(), 'x') {
		t.Errorf("out-of-bounds write landed: %q", s.String())
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(2, 2)
	s.SetColored(0, 0, '#', ColorWall)
	s.Clear()
	if got := s.GetCell(0, 0); got != (Cell{Rune: ' '}) {
		t.Errorf("after Clear, cell = %+v", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawColoredText(3, 0, "ab→c", ColorMuted)
	if got := s.String(); got != "   ab" {
		t.Errorf("String() = %q, want clipped text", got)
	}
	if got := s.GetCell(4, 0).Color; got != ColorMuted {
		t.Errorf("color = %v, want ColorMuted", got)
	}

	s.Clear()
	s.DrawText(0, 0, "→←")
	if got := s.String(); got != "→←   " {
		t.Errorf("multi-byte runes should take one cell each, got %q", got)
	}
}

func TestScreenDrawBoxAndRect(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4))
	s.DrawRect(NewRect(1, 1, 3, 2), '.')
	want := strings.Join([]string{
		"┌───┐",
		"│...│",
		"│...│",
		"└───┘",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("box:\n%s\nwant:\n%s", got, want)
	}

	// A rect hanging off the screen is clipped, not a panic.
	s.DrawRect(NewRect(3, 2, 10, 10), '#')
	if s.Get(4, 3) != '#' || s.Get(2, 3) != '─' {
		t.Errorf("clipped rect:\n%s", s.String())
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(4, 1)
	s.DrawHLine(1, 0, 10, '─')
	if got := s.String(); got != " ───" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	s.Resize(2, 3)
	if got, want := s.String(), "ab\nde\n  "; got != want {
		t.Errorf("shrink width: %q, want %q", got, want)
	}
	s.Resize(4, 1)
	if got, want := s.String(), "ab  "; got != want {
		t.Errorf("grow width: %q, want %q", got, want)
	}
}
