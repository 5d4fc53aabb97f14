package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/jumptable/internal/config"
	"github.com/aretw0/jumptable/internal/logging"
	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/google/uuid"
	"golang.org/x/term"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	once   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// Unlike signal.NotifyContext it remembers which signal arrived.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sc.sigCh:
			sc.mu.Lock()
			sc.sigVal = sig
			sc.mu.Unlock()
			sc.Cancel()
		case <-sc.Context.Done():
		}
		sc.once.Do(func() {
			signal.Stop(sc.sigCh)
		})
	}()

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// interruptible returns a reader that reports io.EOF once ctx is done, even
// while the underlying reader is blocked. The screen treats that like closed
// input, so the active structure is still persisted.
func interruptible(ctx context.Context, r io.Reader) io.Reader {
	pr, pw := io.Pipe()
	go func() {
		_, err := io.Copy(pw, r)
		pw.CloseWithError(err)
	}()
	go func() {
		<-ctx.Done()
		pw.Close()
	}()
	return pr
}

// createLogger configures the application logger for cfg. Logs go to
// cfg.LogFile when set and to stderr otherwise. A quiet logger (used while
// screens own the terminal) discards everything unless cfg.Debug is set.
// Every record carries the run_id of this process.
func createLogger(cfg *config.Config, stderr io.Writer, quiet bool) (*slog.Logger, func() error, error) {
	level := cfg.LogLevel
	if cfg.Debug {
		level = slog.LevelDebug
	}

	var logger *slog.Logger
	closer := func() error { return nil }
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger = logging.NewWithWriter(f, level)
		closer = f.Close
	case quiet && !cfg.Debug:
		return logging.NewNop(), closer, nil
	default:
		logger = logging.NewWithWriter(stderr, level)
	}

	return logger.With("run_id", uuid.NewString()), closer, nil
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStateEnter: func(ctx context.Context, e *domain.StateEvent) {
			logger.Debug("Enter State", "state", e.To, "from", e.From)
		},
		OnStateLeave: func(ctx context.Context, e *domain.StateEvent) {
			logger.Debug("Leave State", "state", e.From, "to", e.To)
		},
		OnOperation: func(ctx context.Context, e *domain.OperationEvent) {
			logger.Debug("Operation", "kind", e.Kind, "op", e.Op, "applied", e.Applied, "size", e.Size)
		},
		OnStoreError: func(ctx context.Context, e *domain.StoreEvent) {
			logger.Debug("Store Error", "kind", e.Kind, "op", e.Op, "err", e.Err)
		},
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
