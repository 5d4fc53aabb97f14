package jumptable

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/jumptable/internal/display"
	"github.com/aretw0/jumptable/internal/render"
	"github.com/aretw0/jumptable/internal/screen"
	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/aretw0/jumptable/pkg/ports"
)

// Session is the high-level entry point for embedding the menu.
// It wraps the screen controller and provides a simplified API for consumers.
type Session struct {
	screen *screen.Screen

	input     io.Reader
	output    io.Writer
	color     bool
	ansiClear bool
	logger    *slog.Logger
	hooks     []domain.LifecycleHooks
}

// Option defines a functional option for configuring the Session.
type Option func(*Session)

// WithIO sets where commands are read from and screens are drawn.
// A nil reader behaves like closed input; a nil writer discards output.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(s *Session) {
		s.input = in
		s.output = out
	}
}

// WithColor enables colored structures and prompts.
func WithColor(enabled bool) Option {
	return func(s *Session) {
		s.color = enabled
	}
}

// WithANSIClear clears the output with escape sequences before each screen.
func WithANSIClear() Option {
	return func(s *Session) {
		s.ansiClear = true
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks. It may be given more than once.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Session) {
		s.hooks = append(s.hooks, hooks)
	}
}

// New creates a Session persisting to store. Without WithIO it does not read
// or draw anything useful, so callers normally pass os.Stdin and os.Stdout.
func New(store ports.Store, opts ...Option) *Session {
	s := &Session{
		input:  eofReader{},
		output: io.Discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.input == nil {
		s.input = eofReader{}
	}
	if s.output == nil {
		s.output = io.Discard
	}

	scrOpts := []screen.Option{
		screen.WithInput(s.input),
		screen.WithOutput(s.output),
		screen.WithRenderer(render.New(s.output, render.WithColor(s.color))),
		screen.WithLifecycleHooks(domain.MergeHooks(s.hooks...)),
	}
	if s.ansiClear {
		scrOpts = append(scrOpts, screen.WithClearer(display.NewANSI(s.output)))
	}
	if s.logger != nil {
		scrOpts = append(scrOpts, screen.WithLogger(s.logger))
	}
	s.screen = screen.New(store, scrOpts...)
	return s
}

// Run enters the main menu and steps until the user quits or the input ends.
// The structure on screen is persisted before Run returns. Cancelling ctx is
// observed between steps only.
func (s *Session) Run(ctx context.Context) error {
	s.screen.Initialize(ctx)
	for ctx.Err() == nil && s.screen.RunStep(ctx) {
	}
	if err := ctx.Err(); err != nil {
		s.screen.Transition(context.WithoutCancel(ctx), domain.StateNone)
		return err
	}
	return nil
}

// State reports the current screen.
func (s *Session) State() domain.State {
	return s.screen.State()
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
