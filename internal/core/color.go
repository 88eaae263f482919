package core

// Color identifies how a screen cell is styled.
// The platform layer maps each value to a terminal style.
type Color uint8

// Styles used by the word search board.
const (
	ColorDefault  Color = iota
	ColorDim            // Grid frame, hints
	ColorTitle          // Title and counters
	ColorSelected       // Cells under the active drag
	ColorFound          // Cells of found words
	ColorStruck         // Found entries in the word list
	ColorBanner         // Round complete message
	ColorWarning        // Window too small
)
