package structures

import "github.com/aretw0/jumptable/pkg/domain"

// Stack is a last-in-first-out store of characters.
type Stack struct {
	items []rune
}

// NewStack returns a stack built by pushing items in order, so the last one is on top.
func NewStack(items ...rune) *Stack {
	s := &Stack{items: make([]rune, 0, len(items))}
	for _, r := range items {
		s.Push(r)
	}
	return s
}

// Push puts r on top. It reports false, leaving the stack untouched, for the delimiter.
func (s *Stack) Push(r rune) bool {
	if r == domain.Delimiter {
		return false
	}
	s.items = append(s.items, r)
	return true
}

// Pop removes and returns the top element. Popping an empty stack is a no-op.
func (s *Stack) Pop() (rune, bool) {
	n := len(s.items) - 1
	if n < 0 {
		return 0, false
	}
	top := s.items[n]
	s.items = s.items[:n]
	return top, true
}

// Peek returns the top element without removing it.
func (s *Stack) Peek() (rune, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack) Len() int {
	return len(s.items)
}

// Items returns the elements bottom-to-top. Pushing them in order rebuilds the stack.
func (s *Stack) Items() []rune {
	return append([]rune(nil), s.items...)
}

func (s *Stack) Reset() {
	s.items = s.items[:0]
}
