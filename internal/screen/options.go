package screen

import (
	"bufio"
	"io"
	"log/slog"

	"github.com/aretw0/jumptable/internal/display"
	"github.com/aretw0/jumptable/internal/render"
	"github.com/aretw0/jumptable/pkg/domain"
)

// Option defines a functional option for configuring the Screen.
type Option func(*Screen)

// WithInput sets the source of user commands (default os.Stdin).
func WithInput(r io.Reader) Option {
	return func(s *Screen) {
		s.input = bufio.NewReader(r)
	}
}

// WithOutput sets where screens are drawn (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(s *Screen) {
		s.output = w
	}
}

// WithRenderer sets the renderer. By default one is created for the output.
func WithRenderer(r *render.Renderer) Option {
	return func(s *Screen) {
		s.renderer = r
	}
}

// WithClearer sets how the display is cleared before each step (default: not at all).
func WithClearer(c display.Clearer) Option {
	return func(s *Screen) {
		s.clearer = c
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Screen) {
		s.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Screen) {
		s.hooks = hooks
	}
}
