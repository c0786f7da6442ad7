package core

import "strings"

// Action represents a semantic game command, abstracted from physical key presses.
// Input handlers translate keys or tokens into actions; the game decides
// whether an action has any effect.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // slide tiles up
	ActionDown           // slide tiles down
	ActionLeft           // slide tiles left
	ActionRight          // slide tiles right
	ActionRestart        // start a new game
	ActionQuit           // exit
	ActionScores         // open the scores view
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScores:
		return "Scores"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action is one of the four slides.
func (a Action) IsDirection() bool {
	return a >= ActionUp && a <= ActionRight
}

// ParseAction translates a textual command token into an action.
// Accepts full names and single-letter directions, case-insensitive.
// Unknown tokens return ActionNone and false.
func ParseAction(token string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "up", "u":
		return ActionUp, true
	case "down", "d":
		return ActionDown, true
	case "left", "l":
		return ActionLeft, true
	case "right", "r":
		return ActionRight, true
	case "restart":
		return ActionRestart, true
	case "quit":
		return ActionQuit, true
	case "scores":
		return ActionScores, true
	}
	return ActionNone, false
}
