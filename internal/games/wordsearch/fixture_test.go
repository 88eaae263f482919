package wordsearch

import (
	"math/rand"
	"testing"
)

// fixtureRows hides SQL across row 2, WEB down column 0, CSS down-right from
// (5,5) and API up-right from (8,0).
var fixtureRows = []string{
	"WXXXXXXXX",
	"EXXXXXXXX",
	"BXXSQLXXX",
	"XXXXXXXXX",
	"XXXXXXXXX",
	"XXXXXCXXX",
	"XXIXXXSXX",
	"XPXXXXXSX",
	"AXXXXXXXX",
}

var techPool = []string{
	"REACT", "VUE", "HTML", "CSS", "JAVA", "PHP",
	"RUBY", "NODE", "API", "SQL", "NEXT", "WEB",
}

func fixturePuzzle(t *testing.T) Puzzle {
	t.Helper()

	grid := GridFromRows(fixtureRows...)
	if grid == nil {
		t.Fatal("fixture rows do not form a square grid")
	}

	placements := []Placement{
		{Word: "SQL", Start: C(2, 3), Dir: Right},
		{Word: "WEB", Start: C(0, 0), Dir: Down},
		{Word: "CSS", Start: C(5, 5), Dir: DownRight},
		{Word: "API", Start: C(8, 0), Dir: UpRight},
	}
	words := make([]string, len(placements))
	for i, p := range placements {
		words[i] = p.Word
	}

	return Puzzle{
		Grid:       grid,
		Drawn:      words,
		Words:      words,
		Placements: placements,
	}
}

func fixtureSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(rand.New(rand.NewSource(1)), techPool, DefaultGenParams())
	s.LoadPuzzle(fixturePuzzle(t))
	return s
}

// drag performs a full press-move-release gesture from start to end.
func drag(s *Session, start, end Coord) Outcome {
	s.Dispatch(PointerDown{Cell: start})
	s.Dispatch(PointerMove{Cell: end})
	return s.Dispatch(PointerUp{})
}
