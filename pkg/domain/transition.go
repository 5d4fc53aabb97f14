package domain

// Transition is an edge of the screen state machine, taken when the user
// picks Option from the menu of From.
type Transition struct {
	From   State
	To     State
	Option rune
	Label  string
}

// Transitions lists every menu-driven state change. Mutating options
// (push, pop and so on) stay in the same state and are not listed.
// Quitting from IDLE ends the loop without running a transition, so the
// state stays IDLE even though the edge points at NONE.
func Transitions() []Transition {
	return []Transition{
		{From: StateIdle, To: StateStack, Option: '1', Label: "Stack"},
		{From: StateIdle, To: StateQueue, Option: '2', Label: "Queue"},
		{From: StateIdle, To: StateList, Option: '3', Label: "List"},
		{From: StateIdle, To: StateNone, Option: '4', Label: "Quit"},
		{From: StateStack, To: StateList, Option: '3', Label: "List"},
		{From: StateStack, To: StateQueue, Option: '4', Label: "Queue"},
		{From: StateStack, To: StateNone, Option: '5', Label: "Quit"},
		{From: StateQueue, To: StateStack, Option: '3', Label: "Stack"},
		{From: StateQueue, To: StateList, Option: '4', Label: "List"},
		{From: StateQueue, To: StateNone, Option: '5', Label: "Quit"},
		{From: StateList, To: StateStack, Option: '3', Label: "Stack"},
		{From: StateList, To: StateQueue, Option: '4', Label: "Queue"},
		{From: StateList, To: StateNone, Option: '5', Label: "Quit"},
	}
}
