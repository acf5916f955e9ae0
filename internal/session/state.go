// Package session implements the interactive, menu driven grade tracker loop
package session

import "strings"

// State is a node of the menu state machine
type State int

const (
	StateMenu State = iota
	StateAdd
	StateView
	StateAverage
	StateEdit
	StateReport
	StateExit
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateAdd:
		return "add"
	case StateView:
		return "view"
	case StateAverage:
		return "average"
	case StateEdit:
		return "edit"
	case StateReport:
		return "report"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// IsFeature reports whether s performs a grade operation
func (s State) IsFeature() bool {
	return s >= StateAdd && s <= StateReport
}

// Effect describes the side effect the loop performs for a transition
type Effect int

const (
	EffectNone Effect = iota
	// EffectInvalidChoice prints the invalid choice message
	EffectInvalidChoice
	// EffectRunFeature runs the handler of the next state
	EffectRunFeature
	// EffectFarewell prints the goodbye message and ends the session
	EffectFarewell
)

// Transition is the outcome of Dispatch
type Transition struct {
	Next   State
	Effect Effect
}

// menuChoices maps trimmed menu input to the state it selects
var menuChoices = map[string]State{
	"1": StateAdd,
	"2": StateView,
	"3": StateAverage,
	"4": StateEdit,
	"5": StateReport,
	"6": StateExit,
}

// Dispatch computes the next state from the current state and a line of input.
// It has no side effects. Input is only consulted in StateMenu; every feature
// state returns to the menu and StateExit is terminal.
func Dispatch(state State, input string) Transition {
	switch {
	case state == StateMenu:
		next, ok := menuChoices[strings.TrimSpace(input)]
		if !ok {
			return Transition{Next: StateMenu, Effect: EffectInvalidChoice}
		}
		if next == StateExit {
			return Transition{Next: StateExit, Effect: EffectFarewell}
		}
		return Transition{Next: next, Effect: EffectRunFeature}
	case state.IsFeature():
		return Transition{Next: StateMenu, Effect: EffectNone}
	default:
		return Transition{Next: StateExit, Effect: EffectNone}
	}
}
