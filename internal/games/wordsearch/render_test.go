package wordsearch

import (
	"strings"
	"testing"

	"github.com/vovakirdan/wordsearch/internal/core"
)

func TestLayoutHitTest(t *testing.T) {
	s := fixtureSession(t)
	b := s.Layout(80, 24, 3)

	if b.TooSmall {
		t.Fatal("80x24 should fit the board")
	}
	if !b.ListBeside {
		t.Error("word list should fit beside the board at 80 columns")
	}

	x0, y0 := b.Cells.X, b.Cells.Y
	tests := []struct {
		name     string
		x, y     int
		expected Coord
		ok       bool
	}{
		{"top-left", x0, y0, C(0, 0), true},
		{"top-left last column", x0 + 2, y0, C(0, 0), true},
		{"second column", x0 + 3, y0, C(0, 1), true},
		{"bottom-right", x0 + 26, y0 + 8, C(8, 8), true},
		{"frame", x0 - 1, y0, Coord{}, false},
		{"past right edge", x0 + 27, y0, Coord{}, false},
		{"below grid", x0, y0 + 9, Coord{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := b.HitTest(tt.x, tt.y)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("HitTest(%d, %d) = %v, %v, expected %v, %v",
					tt.x, tt.y, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestLayoutTooSmall(t *testing.T) {
	s := fixtureSession(t)
	b := s.Layout(20, 10, 3)

	if !b.TooSmall {
		t.Fatal("20x10 should be too small")
	}
	if _, ok := b.HitTest(b.Cells.X, b.Cells.Y); ok {
		t.Error("HitTest() should reject every point when too small")
	}

	screen := core.NewScreen(20, 10)
	s.Render(screen, b)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small message not rendered")
	}
}

func TestLayoutListBelow(t *testing.T) {
	s := fixtureSession(t)
	b := s.Layout(32, 24, 3)

	if b.TooSmall {
		t.Fatal("32x24 should fit the board with the list below")
	}
	if b.ListBeside {
		t.Error("word list should wrap below the board at 32 columns")
	}
	if b.ListY <= b.Frame.Bottom()-1 {
		t.Errorf("ListY = %d, expected below frame bottom %d", b.ListY, b.Frame.Bottom())
	}
}

func TestRenderHighlights(t *testing.T) {
	s := fixtureSession(t)
	b := s.Layout(80, 24, 3)
	screen := core.NewScreen(80, 24)

	s.Render(screen, b)
	if !strings.Contains(screen.Row(1), "Found: 0/4") {
		t.Errorf("counter row = %q, expected Found: 0/4", screen.Row(1))
	}

	letterAt := func(c Coord) core.Cell {
		r := b.CellRect(c)
		return screen.GetCell(r.X+1, r.Y)
	}

	if cell := letterAt(C(2, 3)); cell.Rune != 'S' || cell.Color != core.ColorDefault {
		t.Errorf("cell (2,3) = %+v, expected uncolored S", cell)
	}

	s.Dispatch(PointerDown{Cell: C(2, 3)})
	s.Dispatch(PointerMove{Cell: C(2, 5)})
	s.Render(screen, b)
	if cell := letterAt(C(2, 4)); cell.Color != core.ColorSelected {
		t.Errorf("selected cell color = %v, expected %v", cell.Color, core.ColorSelected)
	}

	s.Dispatch(PointerUp{})
	s.Render(screen, b)
	if cell := letterAt(C(2, 4)); cell.Color != core.ColorFound {
		t.Errorf("found cell color = %v, expected %v", cell.Color, core.ColorFound)
	}
	if cell := screen.GetCell(b.ListX, b.ListY); cell.Rune != 'S' || cell.Color != core.ColorStruck {
		t.Errorf("word list entry = %+v, expected struck SQL", cell)
	}
	if !strings.Contains(screen.Row(1), "Found: 1/4") {
		t.Errorf("counter row = %q, expected Found: 1/4", screen.Row(1))
	}
}

func TestRenderCompleteBanner(t *testing.T) {
	s := fixtureSession(t)
	for _, p := range s.Placements() {
		s.MarkFound(p.Word, p.Cells())
	}

	screen := core.NewScreen(80, 24)
	s.Render(screen, s.Layout(80, 24, 3))
	if !strings.Contains(screen.String(), bannerText) {
		t.Error("completion banner not rendered")
	}
}

func TestRenderBannerBelowCenteredList(t *testing.T) {
	s := fixtureSession(t)
	p := fixturePuzzle(t)
	p.Words = []string{"ELEPHANT", "GIRAFFE", "KANGAROO", "DOLPHIN", "PENGUIN", "TORTOISE"}
	p.Placements = nil

	for width := 21; width <= 32; width++ {
		s.LoadPuzzle(p)
		b := s.Layout(width, 24, 2)
		if b.ListBeside || b.TooSmall {
			t.Fatalf("width %d: ListBeside = %v, TooSmall = %v, expected list below", width, b.ListBeside, b.TooSmall)
		}
		if width > 21 && b.ListX == 0 {
			t.Errorf("width %d: ListX = 0, expected a centered board", width)
		}

		screen := core.NewScreen(width, 24)
		s.Render(screen, b)
		bannerRow := b.ListY + s.listLines(width-b.ListX)
		if row := strings.TrimSpace(screen.Row(bannerRow)); row != "" {
			t.Errorf("width %d: banner row %d already holds %q", width, bannerRow, row)
		}

		for _, word := range p.Words {
			s.MarkFound(word, nil)
		}
		s.Render(screen, b)
		for _, word := range p.Words {
			if !strings.Contains(screen.String(), word) {
				t.Errorf("width %d: %s hidden after the banner was drawn", width, word)
			}
		}
	}
}
