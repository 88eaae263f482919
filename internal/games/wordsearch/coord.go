package wordsearch

import (
	"fmt"
	"strings"
)

// Coord addresses a single grid cell.
// Row increases downward, Col increases to the right.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step returns the coordinate n steps away in direction d.
func (c Coord) Step(d Direction, n int) Coord {
	return Coord{Row: c.Row + d.DRow*n, Col: c.Col + d.DCol*n}
}

// Direction is a unit step vector (DRow, DCol) used for both word placement
// and selection validation.
type Direction struct {
	DRow int `json:"drow"`
	DCol int `json:"dcol"`
}

// The eight unit directions. Only the first four are enabled by default.
var (
	Right     = Direction{DRow: 0, DCol: 1}
	Down      = Direction{DRow: 1, DCol: 0}
	DownRight = Direction{DRow: 1, DCol: 1}
	UpRight   = Direction{DRow: -1, DCol: 1}
	Left      = Direction{DRow: 0, DCol: -1}
	Up        = Direction{DRow: -1, DCol: 0}
	UpLeft    = Direction{DRow: -1, DCol: -1}
	DownLeft  = Direction{DRow: 1, DCol: -1}
)

var directionNames = []struct {
	name string
	dir  Direction
}{
	{"right", Right},
	{"down", Down},
	{"down-right", DownRight},
	{"up-right", UpRight},
	{"left", Left},
	{"up", Up},
	{"up-left", UpLeft},
	{"down-left", DownLeft},
}

// DefaultDirections returns right, down, down-right and up-right.
// Reverse drags are not accepted with this set.
func DefaultDirections() []Direction {
	return []Direction{Right, Down, DownRight, UpRight}
}

// ParseDirection resolves a direction name such as "down-right".
// Underscores are accepted in place of dashes.
func ParseDirection(name string) (Direction, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, dn := range directionNames {
		if dn.name == key {
			return dn.dir, true
		}
	}
	return Direction{}, false
}

// String returns the direction name, or the raw vector for non-unit values.
func (d Direction) String() string {
	for _, dn := range directionNames {
		if dn.dir == d {
			return dn.name
		}
	}
	return fmt.Sprintf("(%d,%d)", d.DRow, d.DCol)
}

// containsDirection reports whether d is one of dirs.
func containsDirection(dirs []Direction, d Direction) bool {
	for _, candidate := range dirs {
		if candidate == d {
			return true
		}
	}
	return false
}
