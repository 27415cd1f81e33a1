package core

import (
	"strings"
	"testing"
)

// runeAt is shorthand for the rune stored at (x, y).
func runeAt(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(4, 2)

	if s.Width() != 4 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 4x2", s.Width(), s.Height())
	}
	if s.String() != "    \n    " {
		t.Errorf("String() = %q, expected two blank rows", s.String())
	}
	if got := NewScreen(-3, -1); got.Width() != 0 || got.Height() != 0 {
		t.Errorf("negative size gave %dx%d, expected 0x0", got.Width(), got.Height())
	}
}

func TestSetWithColorClips(t *testing.T) {
	s := NewScreen(3, 3)
	s.SetWithColor(1, 2, '▓', ColorGreen)
	s.SetWithColor(3, 0, 'x', ColorRed)
	s.SetWithColor(0, -1, 'x', ColorRed)

	if got := s.GetCell(1, 2); got != (Cell{Rune: '▓', Color: ColorGreen}) {
		t.Errorf("GetCell(1, 2) = %+v, expected green ▓", got)
	}
	if strings.ContainsRune(s.String(), 'x') {
		t.Error("out-of-bounds writes reached the buffer")
	}
	if got := s.GetCell(9, 9); got != (Cell{Rune: ' ', Color: ColorDefault}) {
		t.Errorf("GetCell outside = %+v, expected blank", got)
	}
}

func TestDrawTextColorByRune(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawTextColor(1, 0, "·█·", ColorGray)

	if s.String() != " ·█·  " {
		t.Errorf("String() = %q, expected multi-byte runes in consecutive columns", s.String())
	}
	if s.GetCell(2, 0).Color != ColorGray {
		t.Errorf("Color = %v, expected gray", s.GetCell(2, 0).Color)
	}

	s.DrawTextColor(4, 0, "SCORE", ColorWhite)
	if s.String() != " ·█·SC" {
		t.Errorf("String() = %q, expected text clipped at the edge", s.String())
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "PAUSED", ColorYellow)

	// (11 - 6) / 2 = 2
	if s.String() != "  PAUSED   " {
		t.Errorf("String() = %q", s.String())
	}

	s.Clear()
	s.DrawTextCentered(0, "é→é", ColorYellow)
	if runeAt(s, 4, 0) != 'é' || runeAt(s, 5, 0) != '→' {
		t.Errorf("String() = %q, expected centering by rune count", s.String())
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorGray)

	expected := strings.Join([]string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}, "\n")
	if s.String() != expected {
		t.Errorf("DrawBox gave\n%s\nexpected\n%s", s.String(), expected)
	}

	s.Clear()
	s.DrawBox(NewRect(0, 0, 1, 4), ColorGray)
	if strings.TrimSpace(s.String()) != "" {
		t.Error("a box narrower than two cells should draw nothing")
	}
}

func TestResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawTextColor(0, 0, "abcd", ColorDefault)
	s.DrawTextColor(0, 2, "wxyz", ColorDefault)

	s.Resize(2, 2)
	if s.String() != "ab\n  " {
		t.Errorf("after shrink String() = %q", s.String())
	}

	s.Resize(3, 3)
	if s.String() != "ab \n   \n   " {
		t.Errorf("after grow String() = %q, expected cut rows to come back blank", s.String())
	}
}
