package domain

import "errors"

// ErrUnknownKind is returned when a structure kind name is not recognised.
var ErrUnknownKind = errors.New("unknown structure kind")

// ErrUnknownState is returned when a state name is not recognised.
var ErrUnknownState = errors.New("unknown state")

// ErrStoreUnavailable is returned when a store backend cannot be reached or opened.
var ErrStoreUnavailable = errors.New("store unavailable")
