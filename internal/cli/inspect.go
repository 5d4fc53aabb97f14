package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/aretw0/jumptable/internal/config"
	"github.com/aretw0/jumptable/internal/logging"
	"github.com/aretw0/jumptable/internal/metrics"
	"github.com/aretw0/jumptable/internal/presentation/graph"
	"github.com/aretw0/jumptable/internal/presentation/tui"
	"github.com/aretw0/jumptable/internal/render"
	"github.com/aretw0/jumptable/internal/server"
	"github.com/aretw0/jumptable/pkg/adapters/mcp"
	"github.com/aretw0/jumptable/pkg/domain"
)

// Show draws the persisted contents of each kind once.
func Show(ctx context.Context, cfg *config.Config, out io.Writer, kinds []domain.Kind) error {
	backend, err := OpenStore(ctx, cfg, logging.NewNop())
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer backend.Close()

	r := render.New(out, render.WithColor(cfg.Color && isTerminal(out)))
	for _, kind := range kinds {
		items, err := backend.Store.Load(ctx, kind)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", kind, err)
		}
		if len(kinds) > 1 {
			fmt.Fprintf(out, "%s:\n", kind)
		}
		fmt.Fprint(out, r.Structure(kind, items))
	}
	return nil
}

// Reset deletes the persisted contents of each kind.
func Reset(ctx context.Context, cfg *config.Config, out io.Writer, kinds []domain.Kind) error {
	backend, err := OpenStore(ctx, cfg, logging.NewNop())
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer backend.Close()

	for _, kind := range kinds {
		if err := backend.Store.Delete(ctx, kind); err != nil {
			return fmt.Errorf("failed to reset %s: %w", kind, err)
		}
		printSystemMessage(out, "Reset %s.", kind)
	}
	return nil
}

// Serve exposes the configured store over HTTP until ctx is done or a signal arrives.
// A nil listener makes Serve listen on cfg.ServeAddr.
func Serve(ctx context.Context, cfg *config.Config, streams Streams, ln net.Listener) error {
	logger, closeLog, err := createLogger(cfg, streams.Err, false)
	if err != nil {
		return err
	}
	defer closeLog()

	sigCtx := NewSignalContext(ctx)
	defer sigCtx.Cancel()

	backend, err := OpenStore(sigCtx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer backend.Close()

	if ln == nil {
		ln, err = net.Listen("tcp", cfg.ServeAddr)
		if err != nil {
			return fmt.Errorf("failed to listen: %w", err)
		}
	}

	m := metrics.New()
	srv := &http.Server{
		Handler:           server.NewHandler(backend.Store, m.Handler(), logger),
		ReadHeaderTimeout: cfg.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	logger.Info("serving structures", "addr", ln.Addr().String(), "store", cfg.Store)
	printSystemMessage(streams.Out, "Serving on http://%s", ln.Addr())

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-sigCtx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// MCP serves the configured store to an MCP client over streams.In and
// streams.Out until the input closes, ctx is done or a signal arrives.
func MCP(ctx context.Context, cfg *config.Config, streams Streams) error {
	logger, closeLog, err := createLogger(cfg, streams.Err, false)
	if err != nil {
		return err
	}
	defer closeLog()

	sigCtx := NewSignalContext(ctx)
	defer sigCtx.Cancel()

	backend, err := OpenStore(sigCtx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer backend.Close()

	logger.Info("serving MCP over stdio", "store", cfg.Store)
	srv := mcp.NewServer(backend.Store, logger)
	if err := srv.Listen(sigCtx, streams.In, streams.Out, streams.Err); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server failed: %w", err)
	}
	logger.Info("MCP server stopped")
	return nil
}

// Graph writes the screen state machine as a Mermaid diagram. A non-empty
// highlight names a state to mark as current.
func Graph(out io.Writer, highlight string) error {
	var overlay *graph.Overlay
	if highlight != "" {
		state, err := domain.ParseState(highlight)
		if err != nil {
			return fmt.Errorf("%w (want none, idle, stack, queue or list)", err)
		}
		overlay = &graph.Overlay{Current: state}
	}
	_, err := io.WriteString(out, graph.GenerateMermaid(domain.Transitions(), overlay))
	return err
}

// Guide renders the user guide. Markdown styling is skipped when out is not a terminal.
func Guide(out io.Writer, width int) error {
	renderMarkdown, err := tui.NewRenderer(!isTerminal(out), width)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	text, err := renderMarkdown(tui.Guide())
	if err != nil {
		return fmt.Errorf("failed to render guide: %w", err)
	}
	_, err = io.WriteString(out, text)
	return err
}
