package wordsearch

import (
	"fmt"

	"github.com/vovakirdan/wordsearch/internal/core"
)

const (
	hudHeight  = 3 // Title, counter, blank line
	listGap    = 3 // Columns between the board frame and the word list
	minCellW   = 1
	bannerText = "All words found! Press N for a new game"
)

// Board is the screen placement of the grid for one frame.
// The same Board is used for drawing and for mapping pointer positions to cells.
type Board struct {
	Cells      core.Rect // Area covered by letters, excluding the frame
	Frame      core.Rect // Cells plus a one-character border
	CellW      int       // Terminal columns per grid cell
	ListX      int       // Word list origin
	ListY      int
	ListBeside bool // Word list drawn to the right of the board instead of below
	TooSmall   bool
}

// Layout computes where the board and word list go on a screenW×screenH screen.
func (s *Session) Layout(screenW, screenH, cellW int) Board {
	cellW = core.Max(cellW, minCellW)
	n := s.Size()

	frameW := n*cellW + 2
	frameH := n + 2
	listW := s.longestWord() + 2

	b := Board{CellW: cellW}

	// Prefer the list beside the board, fall back to below it.
	totalW := frameW + listGap + listW
	b.ListBeside = totalW <= screenW
	if !b.ListBeside {
		totalW = frameW
	}

	frameX := core.Max((screenW-totalW)/2, 0)
	b.Frame = core.NewRect(frameX, hudHeight, frameW, frameH)
	b.Cells = core.NewRect(frameX+1, hudHeight+1, n*cellW, n)

	if b.ListBeside {
		b.ListX = b.Frame.Right() + listGap
		b.ListY = b.Cells.Y
	} else {
		b.ListX = b.Frame.X
		b.ListY = b.Frame.Bottom() + 1
	}

	needH := b.Frame.Bottom() + 2 // Banner line and one spare
	if !b.ListBeside {
		needH = b.ListY + s.listLines(screenW-b.ListX) + 2
	}
	b.TooSmall = !b.Frame.Fits(screenW, screenH) || needH > screenH
	return b
}

// HitTest maps a screen position to a grid cell.
func (b Board) HitTest(x, y int) (Coord, bool) {
	if b.TooSmall || !b.Cells.Contains(x, y) {
		return Coord{}, false
	}
	return C(y-b.Cells.Y, (x-b.Cells.X)/b.CellW), true
}

// CellRect returns the screen area of a grid cell.
func (b Board) CellRect(c Coord) core.Rect {
	return core.NewRect(b.Cells.X+c.Col*b.CellW, b.Cells.Y+c.Row, b.CellW, 1)
}

// Render draws the session into dst using the placement b.
func (s *Session) Render(dst *core.Screen, b Board) {
	dst.Clear()

	if b.TooSmall {
		y := dst.Height() / 2
		dst.DrawTextCentered(y, "Window too small", core.ColorWarning)
		dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDim)
		return
	}

	s.renderHUD(dst)
	s.renderGrid(dst, b)
	s.renderWordList(dst, b)

	if s.Complete() {
		y := b.Frame.Bottom()
		if !b.ListBeside {
			y = b.ListY + s.listLines(dst.Width()-b.ListX)
		}
		dst.DrawTextCentered(y, bannerText, core.ColorBanner)
	}
}

func (s *Session) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, "W O R D   S E A R C H", core.ColorTitle)
	dst.DrawTextCentered(1, fmt.Sprintf("Found: %d/%d", s.FoundCount(), s.Total()), core.ColorTitle)
}

func (s *Session) renderGrid(dst *core.Screen, b Board) {
	dst.DrawBox(b.Frame, core.ColorDim)

	n := s.Size()
	pad := (b.CellW - 1) / 2
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			c := C(row, col)
			color := core.ColorDefault
			switch {
			case s.IsSelected(c):
				color = core.ColorSelected
			case s.IsFoundCell(c):
				color = core.ColorFound
			}

			r := b.CellRect(c)
			for i := 0; i < r.W; i++ {
				ch := ' '
				if i == pad {
					ch = s.puzzle.Grid.At(c)
				}
				dst.SetCell(r.X+i, r.Y, ch, color)
			}
		}
	}
}

func (s *Session) renderWordList(dst *core.Screen, b Board) {
	if b.ListBeside {
		for i, word := range s.puzzle.Words {
			s.drawWord(dst, b.ListX, b.ListY+i, word)
		}
		return
	}

	offsets, _ := s.wrapList(dst.Width() - b.ListX)
	for i, word := range s.puzzle.Words {
		s.drawWord(dst, b.ListX+offsets[i].X, b.ListY+offsets[i].Y, word)
	}
}

func (s *Session) drawWord(dst *core.Screen, x, y int, word string) {
	if s.IsFound(word) {
		dst.DrawTextColor(x, y, word, core.ColorStruck)
		return
	}
	dst.DrawText(x, y, word)
}

// wrapList flows the word list into lines of at most width columns. It returns
// each word's area relative to the list origin and the number of lines used.
func (s *Session) wrapList(width int) ([]core.Rect, int) {
	offsets := make([]core.Rect, len(s.puzzle.Words))
	if len(offsets) == 0 {
		return offsets, 0
	}
	x, y := 0, 0
	for i, word := range s.puzzle.Words {
		w := len([]rune(word))
		if x > 0 && x+w > width {
			x = 0
			y++
		}
		offsets[i] = core.NewRect(x, y, w, 1)
		x += w + 2
	}
	return offsets, y + 1
}

// listLines returns how many lines the word list needs when drawn below the
// board with width columns to the right of its origin.
func (s *Session) listLines(width int) int {
	_, lines := s.wrapList(width)
	return lines
}

func (s *Session) longestWord() int {
	longest := 0
	for _, word := range s.puzzle.Words {
		longest = core.Max(longest, len([]rune(word)))
	}
	return longest
}
