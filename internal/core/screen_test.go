package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 || s.Height() != 12 {
		t.Errorf("dimensions = %dx%d, expected 40x12", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, 'Q', ColorSelected)
	cell := s.GetCell(3, 4)
	if cell.Rune != 'Q' || cell.Color != ColorSelected {
		t.Errorf("GetCell(3, 4) = %+v, expected Q/ColorSelected", cell)
	}

	// Plain Set resets the color
	s.Set(3, 4, 'R')
	if cell := s.GetCell(3, 4); cell.Color != ColorDefault {
		t.Errorf("Set should write ColorDefault, got %v", cell.Color)
	}

	// Out of bounds is silent
	s.SetCell(-1, 0, 'A', ColorFound)
	s.SetCell(0, 100, 'A', ColorFound)
	if s.Get(-1, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(12, 3)
	s.DrawTextColor(1, 1, "REACT", ColorFound)

	if got := s.Row(1); !strings.HasPrefix(got, " REACT") {
		t.Errorf("Row(1) = %q, expected prefix %q", got, " REACT")
	}
	for i := 1; i <= 5; i++ {
		if s.GetCell(i, 1).Color != ColorFound {
			t.Errorf("cell %d should be ColorFound", i)
		}
	}

	// Clipped at right edge
	s.DrawText(10, 0, "WEB")
	if s.Get(10, 0) != 'W' || s.Get(11, 0) != 'E' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "Hi", ColorTitle)

	x := (20 - 2) / 2
	if s.Get(x, 1) != 'H' || s.Get(x+1, 1) != 'i' {
		t.Errorf("centered text not at expected position, row = %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDim)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.r {
			t.Errorf("corner at (%d, %d) = %q, expected %q", c.x, c.y, got, c.r)
		}
	}
	if s.GetCell(3, 1).Color != ColorDim {
		t.Error("box edges should carry the given color")
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ABC")
	s.DrawText(0, 1, "DEF")

	if got := s.String(); got != "ABC\nDEF" {
		t.Errorf("String() = %q, expected %q", got, "ABC\nDEF")
	}

	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Errorf("after Resize dimensions = %dx%d, expected 4x3", s.Width(), s.Height())
	}
	if s.Row(0) != "    " {
		t.Errorf("Resize should clear content, row 0 = %q", s.Row(0))
	}
}
