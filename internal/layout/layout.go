// Package layout maps a viewport width to a grid cell size and debounces
// resize notifications.
package layout

import (
	"errors"
	"fmt"
	"time"
)

// Delays applied before a layout recomputation.
const (
	ResizeDebounce   = 250 * time.Millisecond
	OrientationDelay = 200 * time.Millisecond
)

// ErrInvalidTable is returned by Table.Validate.
var ErrInvalidTable = errors.New("layout: invalid breakpoint table")

// Breakpoint applies CellSize to viewports no wider than MaxWidth.
type Breakpoint struct {
	MaxWidth int `yaml:"max_width" json:"maxWidth"`
	CellSize int `yaml:"cell_size" json:"cellSize"`
}

// Table is an ordered set of breakpoints with a fallback size.
type Table struct {
	Breakpoints []Breakpoint `yaml:"breakpoints" json:"breakpoints"`
	Default     int          `yaml:"default" json:"default"`
}

// PixelTable returns the browser breakpoints in pixels.
func PixelTable() Table {
	return Table{
		Breakpoints: []Breakpoint{
			{MaxWidth: 480, CellSize: 28},
			{MaxWidth: 768, CellSize: 35},
		},
		Default: 40,
	}
}

// TerminalTable returns the terminal breakpoints, in columns per cell.
func TerminalTable() Table {
	return Table{
		Breakpoints: []Breakpoint{
			{MaxWidth: 60, CellSize: 2},
			{MaxWidth: 100, CellSize: 3},
		},
		Default: 4,
	}
}

// CellSize returns the size of the first breakpoint whose MaxWidth is at
// least width, or the default.
func (t Table) CellSize(width int) int {
	for _, bp := range t.Breakpoints {
		if width <= bp.MaxWidth {
			return bp.CellSize
		}
	}
	return t.Default
}

// Validate checks sizes are positive and breakpoints strictly ascending.
func (t Table) Validate() error {
	if t.Default <= 0 {
		return fmt.Errorf("%w: default cell size %d", ErrInvalidTable, t.Default)
	}
	for i, bp := range t.Breakpoints {
		if bp.CellSize <= 0 {
			return fmt.Errorf("%w: breakpoint %d has cell size %d", ErrInvalidTable, i, bp.CellSize)
		}
		if i > 0 && bp.MaxWidth <= t.Breakpoints[i-1].MaxWidth {
			return fmt.Errorf("%w: breakpoint %d is not ascending", ErrInvalidTable, i)
		}
	}
	return nil
}

// GridTemplate returns the CSS grid-template-columns value for n cells of size px.
func GridTemplate(n, size int) string {
	return fmt.Sprintf("repeat(%d, %dpx)", n, size)
}

// Layout is the computed layout sent to a client.
type Layout struct {
	Width    int    `json:"width"`
	CellSize int    `json:"cellSize"`
	Template string `json:"template"`
}

// Compute resolves the layout of an n×n grid at the given viewport width.
func (t Table) Compute(n, width int) Layout {
	size := t.CellSize(width)
	return Layout{Width: width, CellSize: size, Template: GridTemplate(n, size)}
}
