package wordsearch

import (
	"reflect"
	"testing"
)

func TestStepBetween(t *testing.T) {
	all := append(DefaultDirections(), Left, Up, UpLeft, DownLeft)

	tests := []struct {
		name       string
		start, end Coord
		dirs       []Direction
		expected   Direction
		ok         bool
	}{
		{"horizontal", C(2, 3), C(2, 5), DefaultDirections(), Right, true},
		{"vertical", C(0, 0), C(2, 0), DefaultDirections(), Down, true},
		{"diagonal down", C(5, 5), C(7, 7), DefaultDirections(), DownRight, true},
		{"diagonal up", C(8, 0), C(6, 2), DefaultDirections(), UpRight, true},
		{"adjacent", C(4, 4), C(4, 5), DefaultDirections(), Right, true},
		{"knight move", C(2, 3), C(3, 5), DefaultDirections(), Direction{}, false},
		{"off-line", C(0, 0), C(3, 1), DefaultDirections(), Direction{}, false},
		{"reverse", C(2, 5), C(2, 3), DefaultDirections(), Direction{}, false},
		{"same cell", C(2, 3), C(2, 3), DefaultDirections(), Direction{}, false},
		{"reverse with all directions", C(2, 5), C(2, 3), all, Left, true},
		{"up-left with all directions", C(3, 3), C(0, 0), all, UpLeft, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := StepBetween(tt.start, tt.end, tt.dirs)
			if ok != tt.ok {
				t.Fatalf("StepBetween(%v, %v) ok = %v, expected %v", tt.start, tt.end, ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("StepBetween(%v, %v) = %v, expected %v", tt.start, tt.end, got, tt.expected)
			}
		})
	}
}

func TestResolvePath(t *testing.T) {
	path, ok := ResolvePath(C(2, 3), C(2, 5), DefaultDirections())
	if !ok {
		t.Fatal("ResolvePath() rejected a horizontal drag")
	}
	expected := []Coord{C(2, 3), C(2, 4), C(2, 5)}
	if !reflect.DeepEqual(path, expected) {
		t.Errorf("ResolvePath() = %v, expected %v", path, expected)
	}

	if _, ok := ResolvePath(C(2, 3), C(3, 5), DefaultDirections()); ok {
		t.Error("ResolvePath() accepted a non-line drag")
	}
}

func TestLine(t *testing.T) {
	if got := Line(C(0, 0), Down, 0); got != nil {
		t.Errorf("Line(n=0) = %v, expected nil", got)
	}
	got := Line(C(8, 0), UpRight, 3)
	expected := []Coord{C(8, 0), C(7, 1), C(6, 2)}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Line() = %v, expected %v", got, expected)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		name     string
		expected Direction
		ok       bool
	}{
		{"right", Right, true},
		{"Down-Right", DownRight, true},
		{"up_right", UpRight, true},
		{" left ", Left, true},
		{"sideways", Direction{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseDirection(tt.name)
		if ok != tt.ok || got != tt.expected {
			t.Errorf("ParseDirection(%q) = %v, %v, expected %v, %v", tt.name, got, ok, tt.expected, tt.ok)
		}
	}

	if got := (Direction{DRow: 2, DCol: 0}).String(); got != "(2,0)" {
		t.Errorf("String() = %q, expected %q", got, "(2,0)")
	}
}
