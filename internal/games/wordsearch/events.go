package wordsearch

// Event is an input consumed by Session.Dispatch.
// Front ends translate mouse, touch or socket messages into these values.
type Event interface {
	isEvent()
}

// PointerDown starts a selection at Cell.
type PointerDown struct {
	Cell Coord
}

// PointerMove reports that the pointer entered Cell while held.
type PointerMove struct {
	Cell Coord
}

// PointerUp releases the pointer.
type PointerUp struct{}

// NewGame requests a fresh round.
type NewGame struct{}

func (PointerDown) isEvent() {}
func (PointerMove) isEvent() {}
func (PointerUp) isEvent()   {}
func (NewGame) isEvent()     {}

// Outcome describes what a dispatched event changed.
type Outcome struct {
	SelectionChanged bool   // Selection path was set, extended or cleared
	Found            string // Word found on this release, if any
	NewRound         bool   // A new round was generated
	Completed        bool   // This event found the round's last word
}

// Changed reports whether the event had any visible effect.
func (o Outcome) Changed() bool {
	return o.SelectionChanged || o.Found != "" || o.NewRound
}

// Dispatch applies one event to the Idle/Selecting state machine.
// Events that do not apply in the current state are ignored.
func (s *Session) Dispatch(ev Event) Outcome {
	switch e := ev.(type) {
	case PointerDown:
		return Outcome{SelectionChanged: s.Begin(e.Cell)}

	case PointerMove:
		return Outcome{SelectionChanged: s.Extend(e.Cell)}

	case PointerUp:
		if s.state != StateSelecting {
			return Outcome{}
		}
		word, ok := s.Release()
		out := Outcome{SelectionChanged: true}
		if ok {
			out.Found = word
			out.Completed = s.Complete()
		}
		return out

	case NewGame:
		s.NewGame()
		return Outcome{NewRound: true, SelectionChanged: true}
	}

	return Outcome{}
}
