package domain

import (
	"fmt"
	"strings"
)

// Delimiter separates elements in the persisted form of a structure.
// No structure ever holds it as an element.
const Delimiter = ','

// Kind names a persisted structure.
type Kind string

const (
	KindStack Kind = "stack"
	KindQueue Kind = "queue"
	KindList  Kind = "list"
)

// Kinds lists every structure kind in menu order.
var Kinds = []Kind{KindStack, KindQueue, KindList}

// ParseKind converts a kind name (case-insensitive) into a Kind.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindStack, KindQueue, KindList:
		return true
	}
	return false
}

// State returns the screen that edits k.
func (k Kind) State() State {
	switch k {
	case KindStack:
		return StateStack
	case KindQueue:
		return StateQueue
	case KindList:
		return StateList
	}
	return StateNone
}

// FileName is the name of the file backing k in a directory store.
func (k Kind) FileName() string {
	return string(k) + ".txt"
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), b)
}
