package domain

import "fmt"

// State identifies a screen of the controller.
type State int

const (
	// StateNone is the terminal marker. It has no actions; reaching it ends the run loop.
	StateNone State = iota
	// StateIdle is the main menu, current right after initialization.
	StateIdle
	StateList
	StateStack
	StateQueue
)

// String returns the upper-case name of the state.
func (s State) String() string {
	switch s {
	case StateNone:
		return "NONE"
	case StateIdle:
		return "IDLE"
	case StateList:
		return "LIST"
	case StateStack:
		return "STACK"
	case StateQueue:
		return "QUEUE"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Kind returns the structure edited while s is current.
// The second value is false for IDLE and NONE.
func (s State) Kind() (Kind, bool) {
	switch s {
	case StateStack:
		return KindStack, true
	case StateQueue:
		return KindQueue, true
	case StateList:
		return KindList, true
	default:
		return "", false
	}
}

// ParseState converts a state name (case-insensitive) into a State.
func ParseState(name string) (State, error) {
	for _, s := range []State{StateNone, StateIdle, StateList, StateStack, StateQueue} {
		if equalFold(name, s.String()) {
			return s, nil
		}
	}
	return StateNone, fmt.Errorf("%w: %q", ErrUnknownState, name)
}
