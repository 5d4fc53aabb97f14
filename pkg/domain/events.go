package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStateEnter EventType = "state_enter"
	EventStateLeave EventType = "state_leave"
	EventTransition EventType = "transition"
	EventOperation  EventType = "operation"
	EventStoreError EventType = "store_error"
)

// Operation names a change applied to a structure, or a store round-trip.
type Operation string

const (
	OpPush       Operation = "push"
	OpPop        Operation = "pop"
	OpEnqueue    Operation = "enqueue"
	OpDequeue    Operation = "dequeue"
	OpAppend     Operation = "append"
	OpRemoveLast Operation = "remove_last"
	OpLoad       Operation = "load"
	OpSave       Operation = "save"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// StateEvent represents a transition. Enter and leave events are only fired
// for states with actions; transition events are fired for every change.
type StateEvent struct {
	EventBase
	From State `json:"from"`
	To   State `json:"to"`
}

// OperationEvent represents a structure operation.
// Applied is false for no-ops such as popping an empty stack.
type OperationEvent struct {
	EventBase
	Kind    Kind      `json:"kind"`
	Op      Operation `json:"op"`
	Item    rune      `json:"item,omitempty"`
	Applied bool      `json:"applied"`
	Size    int       `json:"size"`
}

// StoreEvent represents a failed load or save.
type StoreEvent struct {
	EventBase
	Kind Kind      `json:"kind"`
	Op   Operation `json:"op"`
	Err  error     `json:"-"`
}

// LifecycleHooks defines callbacks for controller observability.
type LifecycleHooks struct {
	OnStateEnter func(context.Context, *StateEvent)
	OnStateLeave func(context.Context, *StateEvent)
	OnTransition func(context.Context, *StateEvent)
	OnOperation  func(context.Context, *OperationEvent)
	OnStoreError func(context.Context, *StoreEvent)
}

// MergeHooks returns hooks that call every non-nil callback of each argument, in order.
func MergeHooks(hooks ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnStateEnter: func(ctx context.Context, e *StateEvent) {
			for _, h := range hooks {
				if h.OnStateEnter != nil {
					h.OnStateEnter(ctx, e)
				}
			}
		},
		OnStateLeave: func(ctx context.Context, e *StateEvent) {
			for _, h := range hooks {
				if h.OnStateLeave != nil {
					h.OnStateLeave(ctx, e)
				}
			}
		},
		OnTransition: func(ctx context.Context, e *StateEvent) {
			for _, h := range hooks {
				if h.OnTransition != nil {
					h.OnTransition(ctx, e)
				}
			}
		},
		OnOperation: func(ctx context.Context, e *OperationEvent) {
			for _, h := range hooks {
				if h.OnOperation != nil {
					h.OnOperation(ctx, e)
				}
			}
		},
		OnStoreError: func(ctx context.Context, e *StoreEvent) {
			for _, h := range hooks {
				if h.OnStoreError != nil {
					h.OnStoreError(ctx, e)
				}
			}
		},
	}
}
