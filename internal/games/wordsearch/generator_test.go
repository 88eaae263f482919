package wordsearch

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestGenerateFillsEveryCell(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		p := Generate(rand.New(rand.NewSource(seed)), techPool, DefaultGenParams())

		if p.Grid.Size() != DefaultSize {
			t.Fatalf("seed %d: Size() = %d, expected %d", seed, p.Grid.Size(), DefaultSize)
		}
		if p.Grid.EmptyCount() != 0 {
			t.Errorf("seed %d: %d empty cells after fill", seed, p.Grid.EmptyCount())
		}
		for _, row := range p.Grid.Rows() {
			for _, ch := range row {
				if ch < 'A' || ch > 'Z' {
					t.Errorf("seed %d: cell %q is not an uppercase letter", seed, ch)
				}
			}
		}
	}
}

func TestGeneratePlacementsReadBack(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		p := Generate(rand.New(rand.NewSource(seed)), techPool, DefaultGenParams())

		if len(p.Placements) != len(p.Words) {
			t.Fatalf("seed %d: %d placements for %d words", seed, len(p.Placements), len(p.Words))
		}
		for i, pl := range p.Placements {
			if pl.Word != p.Words[i] {
				t.Errorf("seed %d: placement %d is %q, expected %q", seed, i, pl.Word, p.Words[i])
			}
			if got := p.Grid.Read(pl.Cells()); got != pl.Word {
				t.Errorf("seed %d: grid reads %q along %v %v, expected %q",
					seed, got, pl.Start, pl.Dir, pl.Word)
			}
			if !containsDirection(DefaultDirections(), pl.Dir) {
				t.Errorf("seed %d: %q placed along disallowed direction %v", seed, pl.Word, pl.Dir)
			}
		}
	}
}

func TestGenerateDrawsDistinctPoolWords(t *testing.T) {
	inPool := make(map[string]bool, len(techPool))
	for _, w := range techPool {
		inPool[w] = true
	}

	for seed := int64(1); seed <= 20; seed++ {
		p := Generate(rand.New(rand.NewSource(seed)), techPool, DefaultGenParams())

		if len(p.Drawn) != DefaultRoundWords {
			t.Errorf("seed %d: drew %d words, expected %d", seed, len(p.Drawn), DefaultRoundWords)
		}
		seen := make(map[string]bool)
		for _, w := range p.Drawn {
			if !inPool[w] {
				t.Errorf("seed %d: drawn word %q is not in the pool", seed, w)
			}
			if seen[w] {
				t.Errorf("seed %d: word %q drawn twice", seed, w)
			}
			seen[w] = true
		}
		for _, w := range p.Words {
			if !seen[w] {
				t.Errorf("seed %d: round word %q was never drawn", seed, w)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p1 := Generate(rand.New(rand.NewSource(99)), techPool, DefaultGenParams())
	p2 := Generate(rand.New(rand.NewSource(99)), techPool, DefaultGenParams())

	if !reflect.DeepEqual(p1.Grid.Rows(), p2.Grid.Rows()) {
		t.Error("same seed should produce the same grid")
	}
	if !reflect.DeepEqual(p1.Words, p2.Words) {
		t.Errorf("Words = %v and %v, expected equal", p1.Words, p2.Words)
	}
}

func TestGenerateDropsUnplaceableWords(t *testing.T) {
	pool := []string{"ABCDEFGHIJ", "SQL"}
	p := Generate(rand.New(rand.NewSource(3)), pool, DefaultGenParams())

	if len(p.Drawn) != 2 {
		t.Fatalf("Drawn = %v, expected both pool words", p.Drawn)
	}
	if !reflect.DeepEqual(p.Words, []string{"SQL"}) {
		t.Errorf("Words = %v, expected [SQL]", p.Words)
	}
	if p.Grid.EmptyCount() != 0 {
		t.Error("grid should be filled even when a word is dropped")
	}
}

func TestDrawWords(t *testing.T) {
	pool := []string{"A", "B", "C"}
	original := append([]string(nil), pool...)

	got := DrawWords(rand.New(rand.NewSource(7)), pool, 10)
	if len(got) != 3 {
		t.Errorf("DrawWords() returned %d words, expected the whole pool", len(got))
	}
	if !reflect.DeepEqual(pool, original) {
		t.Errorf("pool modified to %v", pool)
	}

	if got := DrawWords(rand.New(rand.NewSource(7)), pool, 0); len(got) != 0 {
		t.Errorf("DrawWords(0) = %v, expected empty", got)
	}
}

func TestCanPlace(t *testing.T) {
	g := NewGrid(9)
	PlaceAt(g, "SQL", C(2, 3), Right)

	tests := []struct {
		name     string
		word     string
		start    Coord
		dir      Direction
		expected bool
	}{
		{"empty cells", "WEB", C(0, 0), Down, true},
		{"runs off the right edge", "REACT", C(0, 6), Right, false},
		{"runs off the top", "API", C(1, 0), UpRight, false},
		{"crosses on a matching letter", "QUIZ", C(2, 4), Down, true},
		{"conflicts with a placed letter", "XYZ", C(2, 3), Down, false},
		{"start out of bounds", "VUE", C(-1, 0), Right, false},
		{"empty word", "", C(0, 0), Right, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanPlace(g, tt.word, tt.start, tt.dir); got != tt.expected {
				t.Errorf("CanPlace(%q, %v, %v) = %v, expected %v",
					tt.word, tt.start, tt.dir, got, tt.expected)
			}
		})
	}
}

func TestGenParamsDefaults(t *testing.T) {
	p := GenParams{}.withDefaults()
	if !reflect.DeepEqual(p, DefaultGenParams()) {
		t.Errorf("withDefaults() = %+v, expected %+v", p, DefaultGenParams())
	}

	custom := GenParams{Size: 12, Alphabet: "XY"}.withDefaults()
	if custom.Size != 12 || custom.Alphabet != "XY" {
		t.Errorf("withDefaults() overwrote explicit fields: %+v", custom)
	}
}

func TestPlacementEnd(t *testing.T) {
	p := Placement{Word: "API", Start: C(8, 0), Dir: UpRight}
	if p.End() != C(6, 2) {
		t.Errorf("End() = %v, expected (6,2)", p.End())
	}
}
