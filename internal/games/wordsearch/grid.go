package wordsearch

import "strings"

// emptyCell marks a cell that has not been written during generation.
const emptyCell rune = 0

// Grid is a square letter grid stored in row-major order: index = row*size + col.
// It is written only while a puzzle is generated and read-only afterwards.
type Grid struct {
	size  int
	cells []rune
}

// NewGrid creates an empty size×size grid.
func NewGrid(size int) *Grid {
	if size < 0 {
		size = 0
	}
	return &Grid{
		size:  size,
		cells: make([]rune, size*size),
	}
}

// GridFromRows builds a grid from equal-length rows of letters.
// Returns nil if the rows do not form a square.
func GridFromRows(rows ...string) *Grid {
	g := NewGrid(len(rows))
	for r, row := range rows {
		letters := []rune(row)
		if len(letters) != len(rows) {
			return nil
		}
		for c, ch := range letters {
			g.Set(C(r, c), ch)
		}
	}
	return g
}

// Size returns the grid dimension N.
func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) index(c Coord) int {
	return c.Row*g.size + c.Col
}

// InBounds returns true if the coordinate is inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// At returns the letter at c, or 0 for empty or out-of-bounds cells.
func (g *Grid) At(c Coord) rune {
	if !g.InBounds(c) {
		return emptyCell
	}
	return g.cells[g.index(c)]
}

// IsEmpty reports whether the cell at c has no letter yet.
func (g *Grid) IsEmpty(c Coord) bool {
	return g.InBounds(c) && g.cells[g.index(c)] == emptyCell
}

// Set writes a letter. Out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, r rune) {
	if g.InBounds(c) {
		g.cells[g.index(c)] = r
	}
}

// Read concatenates the letters along path, looking each coordinate up in the grid.
// Out-of-bounds coordinates are skipped.
func (g *Grid) Read(path []Coord) string {
	var sb strings.Builder
	sb.Grow(len(path))
	for _, c := range path {
		if !g.InBounds(c) {
			continue
		}
		if r := g.cells[g.index(c)]; r != emptyCell {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Row returns the letters of one row. Empty cells are rendered as '.'.
func (g *Grid) Row(row int) string {
	if row < 0 || row >= g.size {
		return ""
	}
	var sb strings.Builder
	for col := 0; col < g.size; col++ {
		r := g.cells[g.index(C(row, col))]
		if r == emptyCell {
			r = '.'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Rows returns every row as a string.
func (g *Grid) Rows() []string {
	rows := make([]string, g.size)
	for r := range rows {
		rows[r] = g.Row(r)
	}
	return rows
}

// EmptyCount returns the number of cells without a letter.
func (g *Grid) EmptyCount() int {
	count := 0
	for _, r := range g.cells {
		if r == emptyCell {
			count++
		}
	}
	return count
}

// String renders the grid with letters separated by spaces, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.size; r++ {
		if r > 0 {
			sb.WriteRune('\n')
		}
		for i, ch := range g.Row(r) {
			if i > 0 {
				sb.WriteRune(' ')
			}
			sb.WriteRune(ch)
		}
	}
	return sb.String()
}
