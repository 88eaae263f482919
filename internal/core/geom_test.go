package core

import "testing"

func TestRectContains(t *testing.T) {
	// A 9-cell board, 3 columns per cell, drawn at (4, 2).
	r := NewRect(4, 2, 27, 9)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 4, 2, true},
		{"last column", 30, 2, true},
		{"last row", 4, 10, true},
		{"right edge (exclusive)", 31, 5, false},
		{"bottom edge (exclusive)", 10, 11, false},
		{"left of board", 3, 5, false},
		{"above board", 10, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectFits(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		w, h     int
		expected bool
	}{
		{"inside", NewRect(1, 1, 10, 5), 20, 10, true},
		{"exact fit", NewRect(0, 0, 20, 10), 20, 10, true},
		{"too wide", NewRect(5, 0, 20, 10), 20, 10, false},
		{"too tall", NewRect(0, 1, 20, 10), 20, 10, false},
		{"negative origin", NewRect(-1, 0, 5, 5), 20, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Fits(tc.w, tc.h); got != tc.expected {
				t.Errorf("Fits(%d, %d) = %v, expected %v", tc.w, tc.h, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbsMinMax(t *testing.T) {
	if Abs(-3) != 3 || Abs(3) != 3 || Abs(0) != 0 {
		t.Error("Abs should return the magnitude")
	}
	if Min(2, -2) != -2 {
		t.Errorf("Min(2, -2) = %d, expected -2", Min(2, -2))
	}
	if Max(2, -2) != 2 {
		t.Errorf("Max(2, -2) = %d, expected 2", Max(2, -2))
	}
}

func TestNewRandSeeded(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 10; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("same seed produced %d and %d", x, y)
		}
	}
}
