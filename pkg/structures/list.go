package structures

import "github.com/aretw0/jumptable/pkg/domain"

// List is an ordered store of characters that grows and shrinks at its end.
type List struct {
	items []rune
}

// NewList returns a list holding items in order.
func NewList(items ...rune) *List {
	l := &List{items: make([]rune, 0, len(items))}
	for _, r := range items {
		l.Append(r)
	}
	return l
}

// Append adds r at the end. It reports false for the delimiter.
func (l *List) Append(r rune) bool {
	if r == domain.Delimiter {
		return false
	}
	l.items = append(l.items, r)
	return true
}

// RemoveLast drops and returns the last element. On an empty list it is a no-op.
func (l *List) RemoveLast() (rune, bool) {
	n := len(l.items) - 1
	if n < 0 {
		return 0, false
	}
	last := l.items[n]
	l.items = l.items[:n]
	return last, true
}

// At returns the element at index i.
func (l *List) At(i int) (rune, bool) {
	if i < 0 || i >= len(l.items) {
		return 0, false
	}
	return l.items[i], true
}

func (l *List) Len() int {
	return len(l.items)
}

// Items returns the elements in order.
func (l *List) Items() []rune {
	return append([]rune(nil), l.items...)
}

func (l *List) Reset() {
	l.items = l.items[:0]
}
