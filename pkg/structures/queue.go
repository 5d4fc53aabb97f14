package structures

import "github.com/aretw0/jumptable/pkg/domain"

// Queue is a first-in-first-out store of characters.
type Queue struct {
	items []rune
}

// NewQueue returns a queue built by enqueuing items in order.
func NewQueue(items ...rune) *Queue {
	q := &Queue{items: make([]rune, 0, len(items))}
	for _, r := range items {
		q.Enqueue(r)
	}
	return q
}

// Enqueue adds r at the tail. It reports false for the delimiter.
func (q *Queue) Enqueue(r rune) bool {
	if r == domain.Delimiter {
		return false
	}
	q.items = append(q.items, r)
	return true
}

// Dequeue removes and returns the head. Dequeuing an empty queue is a no-op.
func (q *Queue) Dequeue() (rune, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	head := q.items[0]
	q.items = q.items[1:]
	return head, true
}

// Peek returns the head without removing it.
func (q *Queue) Peek() (rune, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	return q.items[0], true
}

func (q *Queue) Len() int {
	return len(q.items)
}

// Items returns the elements head-to-tail.
func (q *Queue) Items() []rune {
	return append([]rune(nil), q.items...)
}

func (q *Queue) Reset() {
	q.items = nil
}
