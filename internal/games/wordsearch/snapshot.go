package wordsearch

// WordStatus is one entry of the word list.
type WordStatus struct {
	Word  string `json:"word"`
	Found bool   `json:"found"`
}

// Snapshot is a serializable view of a session, sent to browser clients.
type Snapshot struct {
	Round      int          `json:"round"`
	Size       int          `json:"size"`
	Rows       []string     `json:"rows"`
	Words      []WordStatus `json:"words"`
	FoundCount int          `json:"foundCount"`
	Total      int          `json:"total"`
	Selection  []Coord      `json:"selection"`
	FoundCells []Coord      `json:"foundCells"`
	State      string       `json:"state"`
	Complete   bool         `json:"complete"`
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Round:      s.round,
		Size:       s.Size(),
		Rows:       s.puzzle.Grid.Rows(),
		Words:      make([]WordStatus, 0, len(s.puzzle.Words)),
		FoundCount: s.FoundCount(),
		Total:      s.Total(),
		Selection:  s.Selection(),
		FoundCells: make([]Coord, 0, len(s.foundCells)),
		State:      s.state.String(),
		Complete:   s.Complete(),
	}
	if snap.Selection == nil {
		snap.Selection = []Coord{}
	}

	for _, w := range s.puzzle.Words {
		snap.Words = append(snap.Words, WordStatus{Word: w, Found: s.found[w]})
	}

	// Row-major order keeps the output stable across map iteration.
	n := s.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if c := C(row, col); s.foundCells[c] {
				snap.FoundCells = append(snap.FoundCells, c)
			}
		}
	}
	return snap
}
