package wordsearch

import "github.com/vovakirdan/wordsearch/internal/core"

// StepBetween returns the unit step leading from start to end when both cells
// lie on one line along a permitted direction.
//
// The delta is normalized by max(|dRow|, |dCol|); a drag is accepted only if
// the normalized step is exactly one of dirs. A zero delta is rejected.
func StepBetween(start, end Coord, dirs []Direction) (Direction, bool) {
	dRow := end.Row - start.Row
	dCol := end.Col - start.Col
	if dRow == 0 && dCol == 0 {
		return Direction{}, false
	}

	length := core.Max(core.Abs(dRow), core.Abs(dCol))
	// Both components must be 0 or ±length, otherwise the step is fractional.
	if dRow%length != 0 || dCol%length != 0 {
		return Direction{}, false
	}

	step := Direction{DRow: dRow / length, DCol: dCol / length}
	if !containsDirection(dirs, step) {
		return Direction{}, false
	}
	return step, true
}

// Line returns n coordinates starting at start and stepping by dir.
func Line(start Coord, dir Direction, n int) []Coord {
	if n <= 0 {
		return nil
	}
	cells := make([]Coord, n)
	for i := range cells {
		cells[i] = start.Step(dir, i)
	}
	return cells
}

// ResolvePath returns the inclusive cell sequence from start to end, or false
// if the drag does not follow a permitted direction.
func ResolvePath(start, end Coord, dirs []Direction) ([]Coord, bool) {
	step, ok := StepBetween(start, end, dirs)
	if !ok {
		return nil, false
	}
	steps := core.Max(core.Abs(end.Row-start.Row), core.Abs(end.Col-start.Col))
	return Line(start, step, steps+1), true
}
