package web

import (
	"github.com/vovakirdan/wordsearch/internal/games/wordsearch"
	"github.com/vovakirdan/wordsearch/internal/layout"
)

// Inbound message types sent by the browser.
const (
	MsgDown    = "down"
	MsgMove    = "move"
	MsgUp      = "up"
	MsgNewGame = "new_game"
	MsgResize  = "resize"
)

// Outbound message types sent to the browser.
const (
	EventState = "state"
	EventFound = "found"
	EventError = "error"
)

// Inbound is a pointer, game or viewport message from the browser.
// Row and Col are used by down and move, Width by resize.
type Inbound struct {
	Type  string `json:"type"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Width int    `json:"width,omitempty"`
}

// Outbound is sent after every change. State and Layout are always present on
// state events; Word is set on found events.
type Outbound struct {
	Event  string               `json:"event"`
	Pack   string               `json:"pack,omitempty"`
	State  *wordsearch.Snapshot `json:"state,omitempty"`
	Layout *layout.Layout       `json:"layout,omitempty"`
	Word   string               `json:"word,omitempty"`
	Error  string               `json:"error,omitempty"`
}

// event converts an inbound message into a session event.
func (in Inbound) event() (wordsearch.Event, bool) {
	switch in.Type {
	case MsgDown:
		return wordsearch.PointerDown{Cell: wordsearch.C(in.Row, in.Col)}, true
	case MsgMove:
		return wordsearch.PointerMove{Cell: wordsearch.C(in.Row, in.Col)}, true
	case MsgUp:
		return wordsearch.PointerUp{}, true
	case MsgNewGame:
		return wordsearch.NewGame{}, true
	}
	return nil, false
}

// PuzzleResponse is returned by GET /api/puzzle. Placements are included only
// when the solution is requested.
type PuzzleResponse struct {
	Pack       string                 `json:"pack"`
	Size       int                    `json:"size"`
	Rows       []string               `json:"rows"`
	Words      []string               `json:"words"`
	Placements []wordsearch.Placement `json:"placements,omitempty"`
}
