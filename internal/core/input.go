package core

// Action represents a semantic command, abstracted from physical key presses.
// Pointer input is not an Action; it is delivered to the game as cell events.
type Action int

const (
	ActionNone    Action = iota
	ActionNewGame        // N - generate a new round
	ActionHelp           // ? - toggle full help
	ActionMenu           // Esc, M - back to the pack menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNewGame:
		return "NewGame"
	case ActionHelp:
		return "Help"
	case ActionMenu:
		return "Menu"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
