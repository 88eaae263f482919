package wordsearch

import (
	"math/rand"
)

// Generation defaults.
const (
	DefaultSize        = 9
	DefaultRoundWords  = 6
	DefaultMaxAttempts = 100
	DefaultAlphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// GenParams configures puzzle generation.
type GenParams struct {
	Size        int         // Grid dimension N
	RoundWords  int         // Words drawn per round
	MaxAttempts int         // Placement attempts per word before it is dropped
	Directions  []Direction // Permitted placement and selection directions
	Alphabet    string      // Letters used to fill empty cells
}

// DefaultGenParams returns a 9x9 grid, 6 words, 100 attempts and the four
// forward directions.
func DefaultGenParams() GenParams {
	return GenParams{
		Size:        DefaultSize,
		RoundWords:  DefaultRoundWords,
		MaxAttempts: DefaultMaxAttempts,
		Directions:  DefaultDirections(),
		Alphabet:    DefaultAlphabet,
	}
}

// withDefaults fills zero fields with defaults.
func (p GenParams) withDefaults() GenParams {
	d := DefaultGenParams()
	if p.Size <= 0 {
		p.Size = d.Size
	}
	if p.RoundWords <= 0 {
		p.RoundWords = d.RoundWords
	}
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = d.MaxAttempts
	}
	if len(p.Directions) == 0 {
		p.Directions = d.Directions
	}
	if p.Alphabet == "" {
		p.Alphabet = d.Alphabet
	}
	return p
}

// Placement records where a word was written.
type Placement struct {
	Word  string    `json:"word"`
	Start Coord     `json:"start"`
	Dir   Direction `json:"dir"`
}

// Cells returns the coordinates the word occupies, in letter order.
func (p Placement) Cells() []Coord {
	return Line(p.Start, p.Dir, len([]rune(p.Word)))
}

// End returns the coordinate of the last letter.
func (p Placement) End() Coord {
	return p.Start.Step(p.Dir, len([]rune(p.Word))-1)
}

// Puzzle is the output of one generation run.
type Puzzle struct {
	Grid       *Grid
	Drawn      []string    // Words drawn from the pool, in draw order
	Words      []string    // Drawn words that were placed; the round's targets
	Placements []Placement // One per entry of Words
}

// Generate builds a new puzzle from pool.
// Words that cannot be placed within MaxAttempts are dropped from the round.
func Generate(rng *rand.Rand, pool []string, p GenParams) Puzzle {
	p = p.withDefaults()

	grid := NewGrid(p.Size)
	drawn := DrawWords(rng, pool, p.RoundWords)

	puzzle := Puzzle{
		Grid:       grid,
		Drawn:      drawn,
		Words:      make([]string, 0, len(drawn)),
		Placements: make([]Placement, 0, len(drawn)),
	}

	for _, word := range drawn {
		placement, ok := placeWord(rng, grid, word, p)
		if !ok {
			continue
		}
		puzzle.Words = append(puzzle.Words, word)
		puzzle.Placements = append(puzzle.Placements, placement)
	}

	fillEmpty(rng, grid, p.Alphabet)
	return puzzle
}

// DrawWords picks n distinct entries of pool uniformly at random.
// It shuffles a copy with Fisher-Yates and takes the prefix; pool is not modified.
func DrawWords(rng *rand.Rand, pool []string, n int) []string {
	shuffled := make([]string, len(pool))
	copy(shuffled, pool)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	if n > len(shuffled) {
		n = len(shuffled)
	}
	if n < 0 {
		n = 0
	}
	return shuffled[:n]
}

// placeWord tries random directions and start cells until the word fits.
func placeWord(rng *rand.Rand, g *Grid, word string, p GenParams) (Placement, bool) {
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		dir := p.Directions[rng.Intn(len(p.Directions))]
		start := C(rng.Intn(g.Size()), rng.Intn(g.Size()))

		if CanPlace(g, word, start, dir) {
			PlaceAt(g, word, start, dir)
			return Placement{Word: word, Start: start, Dir: dir}, true
		}
	}
	return Placement{}, false
}

// CanPlace reports whether word fits at start along dir: every letter must be
// in bounds and land on an empty cell or a cell holding the same letter.
func CanPlace(g *Grid, word string, start Coord, dir Direction) bool {
	letters := []rune(word)
	if len(letters) == 0 {
		return false
	}
	if !g.InBounds(start) || !g.InBounds(start.Step(dir, len(letters)-1)) {
		return false
	}

	for i, ch := range letters {
		c := start.Step(dir, i)
		if existing := g.At(c); existing != emptyCell && existing != ch {
			return false
		}
	}
	return true
}

// PlaceAt writes word into the grid. Callers check CanPlace first.
func PlaceAt(g *Grid, word string, start Coord, dir Direction) {
	for i, ch := range []rune(word) {
		g.Set(start.Step(dir, i), ch)
	}
}

// fillEmpty writes a random alphabet letter into every empty cell.
func fillEmpty(rng *rand.Rand, g *Grid, alphabet string) {
	letters := []rune(alphabet)
	for i, r := range g.cells {
		if r == emptyCell {
			g.cells[i] = letters[rng.Intn(len(letters))]
		}
	}
}
