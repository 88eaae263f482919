// Package wordsearch implements the word search puzzle: grid generation with
// word placement, straight-line selection matching and the per-user round state.
// It has no terminal or network dependencies; front ends feed it events and
// render a projection of its state.
package wordsearch

import (
	"math/rand"
)

// State is the selection state of a session.
type State int

const (
	StateIdle State = iota
	StateSelecting
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelecting:
		return "selecting"
	default:
		return "unknown"
	}
}

// Session holds one round of play: the grid, the round words, the words found
// so far and the in-progress selection.
// A session is not safe for concurrent use; each front end drives its own.
type Session struct {
	rng    *rand.Rand
	params GenParams
	pool   []string

	puzzle     Puzzle
	found      map[string]bool
	foundOrder []string
	foundCells map[Coord]bool

	state     State
	selection []Coord
	round     int
}

// NewSession creates a session and starts its first round.
func NewSession(rng *rand.Rand, pool []string, p GenParams) *Session {
	s := &Session{
		rng:    rng,
		params: p.withDefaults(),
		pool:   append([]string(nil), pool...),
	}
	s.NewGame()
	return s
}

// NewGame discards the current round and generates a fresh one.
func (s *Session) NewGame() {
	s.puzzle = Generate(s.rng, s.pool, s.params)
	s.found = make(map[string]bool, len(s.puzzle.Words))
	s.foundOrder = s.foundOrder[:0]
	s.foundCells = make(map[Coord]bool)
	s.state = StateIdle
	s.selection = nil
	s.round++
}

// LoadPuzzle replaces the current round with a prepared puzzle.
func (s *Session) LoadPuzzle(p Puzzle) {
	s.puzzle = p
	s.found = make(map[string]bool, len(p.Words))
	s.foundOrder = nil
	s.foundCells = make(map[Coord]bool)
	s.state = StateIdle
	s.selection = nil
	s.round++
}

// Begin starts a selection at c. Out-of-bounds cells are ignored.
func (s *Session) Begin(c Coord) bool {
	if !s.puzzle.Grid.InBounds(c) {
		return false
	}
	s.state = StateSelecting
	s.selection = []Coord{c}
	return true
}

// Extend moves the selection end to c.
// It returns false and leaves the selection untouched when the session is idle,
// c is already part of the selection, or the drag is not a permitted line.
func (s *Session) Extend(c Coord) bool {
	if s.state != StateSelecting || len(s.selection) == 0 {
		return false
	}
	if !s.puzzle.Grid.InBounds(c) || s.IsSelected(c) {
		return false
	}

	path, ok := ResolvePath(s.selection[0], c, s.params.Directions)
	if !ok {
		return false
	}
	s.selection = path
	return true
}

// Release ends the selection. If the selected letters spell an unfound round
// word, that word is marked found and returned with true.
// The selection is cleared either way.
func (s *Session) Release() (string, bool) {
	if s.state != StateSelecting {
		return "", false
	}

	path := s.selection
	word := s.puzzle.Grid.Read(path)
	found := s.MarkFound(word, path)

	s.state = StateIdle
	s.selection = nil

	if !found {
		return "", false
	}
	return word, true
}

// MarkFound records word as found and flags the cells of path.
// Only unfound round words are accepted, so repeated calls have no effect.
func (s *Session) MarkFound(word string, path []Coord) bool {
	if s.found[word] || !s.isRoundWord(word) {
		return false
	}
	s.found[word] = true
	s.foundOrder = append(s.foundOrder, word)
	for _, c := range path {
		s.foundCells[c] = true
	}
	return true
}

func (s *Session) isRoundWord(word string) bool {
	for _, w := range s.puzzle.Words {
		if w == word {
			return true
		}
	}
	return false
}

// Grid returns the current grid. Callers must not modify it.
func (s *Session) Grid() *Grid {
	return s.puzzle.Grid
}

// Size returns the grid dimension.
func (s *Session) Size() int {
	return s.puzzle.Grid.Size()
}

// Words returns the round's target words in draw order.
func (s *Session) Words() []string {
	return append([]string(nil), s.puzzle.Words...)
}

// Drawn returns every word drawn for the round, including dropped ones.
func (s *Session) Drawn() []string {
	return append([]string(nil), s.puzzle.Drawn...)
}

// Placements returns where each round word was written.
func (s *Session) Placements() []Placement {
	return append([]Placement(nil), s.puzzle.Placements...)
}

// Directions returns the permitted directions.
func (s *Session) Directions() []Direction {
	return append([]Direction(nil), s.params.Directions...)
}

// Found returns found words in the order they were found.
func (s *Session) Found() []string {
	return append([]string(nil), s.foundOrder...)
}

// IsFound reports whether word has been found this round.
func (s *Session) IsFound(word string) bool {
	return s.found[word]
}

// FoundCount returns the number of found words.
func (s *Session) FoundCount() int {
	return len(s.foundOrder)
}

// Total returns the number of round words.
func (s *Session) Total() int {
	return len(s.puzzle.Words)
}

// Complete reports whether every round word has been found.
func (s *Session) Complete() bool {
	return len(s.puzzle.Words) > 0 && len(s.foundOrder) == len(s.puzzle.Words)
}

// State returns the selection state.
func (s *Session) State() State {
	return s.state
}

// Selection returns a copy of the current selection path.
func (s *Session) Selection() []Coord {
	return append([]Coord(nil), s.selection...)
}

// SelectedWord returns the letters under the current selection.
func (s *Session) SelectedWord() string {
	return s.puzzle.Grid.Read(s.selection)
}

// IsSelected reports whether c is part of the current selection.
func (s *Session) IsSelected(c Coord) bool {
	for _, sel := range s.selection {
		if sel == c {
			return true
		}
	}
	return false
}

// IsFoundCell reports whether c belongs to a found word's path.
func (s *Session) IsFoundCell(c Coord) bool {
	return s.foundCells[c]
}

// Round returns the 1-based round counter.
func (s *Session) Round() int {
	return s.round
}
