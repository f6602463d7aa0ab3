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
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return a default cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawRect(NewRect(0, 0, 4, 3), 'X', ColorGreen)
	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if s.GetCell(x, y) != blank {
				t.Fatalf("Clear() left %+v at (%d, %d)", s.GetCell(x, y), x, y)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(2, 0, "héllo")

	if got := s.Row(0); got != "  héllo   " {
		t.Errorf("Row(0) = %q", got)
	}

	s.DrawText(8, 1, "clip")
	if got := s.Row(1); got != "        cl" {
		t.Errorf("clipped Row(1) = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab", ColorYellow)

	if s.Get(4, 0) != 'a' || s.Get(5, 0) != 'b' {
		t.Errorf("centered text misplaced: %q", s.Row(0))
	}
	if s.GetCell(4, 0).Color != ColorYellow {
		t.Error("centered text should keep its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorGray)

	want := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawHLine(1, 0, 3, '═', ColorGray)

	if got := s.Row(0); got != " ═══  " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(3, 3)
	s.Set(1, 1, 'X')
	s.Resize(5, 2)

	if s.Width() != 5 || s.Height() != 2 {
		t.Fatalf("Resize() gave %dx%d", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("Resize() should clear the buffer")
	}
	if got := s.Row(5); got != "     " {
		t.Errorf("out of range Row = %q", got)
	}
}
