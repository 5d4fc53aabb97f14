package screen

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aretw0/jumptable/internal/display"
	"github.com/aretw0/jumptable/internal/logging"
	"github.com/aretw0/jumptable/internal/render"
	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/aretw0/jumptable/pkg/ports"
	"github.com/aretw0/jumptable/pkg/structures"
)

// Screen is the controller. It owns the current state and the three structures.
// It is not safe for concurrent use.
type Screen struct {
	state domain.State

	stack *structures.Stack
	queue *structures.Queue
	list  *structures.List

	store    ports.Store
	input    *bufio.Reader
	output   io.Writer
	renderer *render.Renderer
	clearer  display.Clearer
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
}

// New creates a controller persisting to store. Call Initialize before RunStep.
func New(store ports.Store, opts ...Option) *Screen {
	s := &Screen{
		state:   domain.StateNone,
		stack:   structures.NewStack(),
		queue:   structures.NewQueue(),
		list:    structures.NewList(),
		store:   store,
		output:  os.Stdout,
		clearer: display.Nop{},
		logger:  logging.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.input == nil {
		s.input = bufio.NewReader(os.Stdin)
	}
	if s.renderer == nil {
		s.renderer = render.New(s.output)
	}

	return s
}

// Initialize resets the state to NONE and enters IDLE.
func (s *Screen) Initialize(ctx context.Context) {
	s.state = domain.StateNone
	s.Transition(ctx, domain.StateIdle)
}

// State returns the current state.
func (s *Screen) State() domain.State {
	return s.state
}

// Items returns a snapshot of the in-memory structure of kind, in persistence order.
// Structures are only populated while their state is current.
func (s *Screen) Items(kind domain.Kind) []rune {
	switch kind {
	case domain.KindStack:
		return s.stack.Items()
	case domain.KindQueue:
		return s.queue.Items()
	case domain.KindList:
		return s.list.Items()
	}
	return nil
}

// RunStep clears the display and runs the stay action of the current state.
// It returns false when the program should stop, including when the current
// state has no stay action.
func (s *Screen) RunStep(ctx context.Context) bool {
	h := s.handler(s.state)
	if h == nil {
		return false
	}
	if err := s.clearer.ClearDisplay(); err != nil {
		s.logger.Warn("failed to clear display", "error", err)
	}
	return h.stay(ctx)
}

// Transition moves to next, running the current exit action and then the next
// entry action. OnTransition fires between the two, even when neither state
// has actions. Moving to the current state does nothing.
func (s *Screen) Transition(ctx context.Context, next domain.State) {
	if next == s.state {
		return
	}
	prev := s.state

	if h := s.handler(prev); h != nil {
		h.exit(ctx)
		if s.hooks.OnStateLeave != nil {
			s.hooks.OnStateLeave(ctx, &domain.StateEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStateLeave},
				From:      prev,
				To:        next,
			})
		}
	}

	s.state = next
	s.logger.Debug("state changed", "from", prev, "to", next)
	if s.hooks.OnTransition != nil {
		s.hooks.OnTransition(ctx, &domain.StateEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventTransition},
			From:      prev,
			To:        next,
		})
	}

	if h := s.handler(next); h != nil {
		h.enter(ctx)
		if s.hooks.OnStateEnter != nil {
			s.hooks.OnStateEnter(ctx, &domain.StateEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStateEnter},
				From:      prev,
				To:        next,
			})
		}
	}
}

// quit leaves the current state for NONE, flushing its structure, and stops the loop.
func (s *Screen) quit(ctx context.Context) bool {
	s.Transition(ctx, domain.StateNone)
	return false
}

// load fetches kind from the store. Failures yield an empty structure.
func (s *Screen) load(ctx context.Context, kind domain.Kind) []rune {
	items, err := s.store.Load(ctx, kind)
	if err != nil {
		s.logger.Error("failed to load structure", "kind", kind, "error", err)
		s.storeError(ctx, kind, domain.OpLoad, err)
		return nil
	}
	s.operation(ctx, kind, domain.OpLoad, 0, true, len(items))
	return items
}

// save flushes kind to the store. Failures are reported and otherwise ignored.
func (s *Screen) save(ctx context.Context, kind domain.Kind, items []rune) {
	if err := s.store.Save(ctx, kind, items); err != nil {
		s.logger.Error("failed to save structure", "kind", kind, "error", err)
		s.storeError(ctx, kind, domain.OpSave, err)
		return
	}
	s.operation(ctx, kind, domain.OpSave, 0, true, len(items))
}

func (s *Screen) operation(ctx context.Context, kind domain.Kind, op domain.Operation, item rune, applied bool, size int) {
	s.logger.Debug("operation", "kind", kind, "op", op, "item", string(item), "applied", applied, "size", size)
	if s.hooks.OnOperation != nil {
		s.hooks.OnOperation(ctx, &domain.OperationEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventOperation},
			Kind:      kind,
			Op:        op,
			Item:      item,
			Applied:   applied,
			Size:      size,
		})
	}
}

func (s *Screen) storeError(ctx context.Context, kind domain.Kind, op domain.Operation, err error) {
	if s.hooks.OnStoreError != nil {
		s.hooks.OnStoreError(ctx, &domain.StoreEvent{
			EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStoreError},
			Kind:      kind,
			Op:        op,
			Err:       err,
		})
	}
}

// draw prints the depiction of a structure.
func (s *Screen) draw(kind domain.Kind, items []rune) {
	fmt.Fprint(s.output, s.renderer.Structure(kind, items))
}

// readCommand prints the menu and reads one line. It reports false once the
// input is exhausted or unreadable.
func (s *Screen) readCommand(m menu) (command, bool) {
	fmt.Fprint(s.output, s.renderer.Prompt(m.String()))

	line, err := s.input.ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			s.logger.Debug("input closed", "state", s.state)
		} else {
			s.logger.Error("failed to read input", "state", s.state, "error", err)
		}
		return command{}, false
	}

	return parseCommand(strings.TrimRight(line, "\r\n")), true
}
