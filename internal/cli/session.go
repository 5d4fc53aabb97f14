package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/jumptable"
	"github.com/aretw0/jumptable/internal/config"
	"github.com/aretw0/jumptable/internal/display"
	"github.com/aretw0/jumptable/internal/metrics"
	"github.com/aretw0/jumptable/internal/presentation/tui"
	"github.com/aretw0/jumptable/internal/render"
	"github.com/aretw0/jumptable/internal/screen"
	"github.com/aretw0/jumptable/pkg/domain"
)

// Streams are the standard streams of a command.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// RunSession runs the interactive menu until the user quits, the input ends
// or a signal arrives. The active structure is persisted in every case.
func RunSession(ctx context.Context, cfg *config.Config, streams Streams) error {
	logger, closeLog, err := createLogger(cfg, streams.Err, true)
	if err != nil {
		return err
	}
	defer closeLog()

	interactive := isTerminal(streams.Out)
	if cfg.Banner && interactive {
		tui.PrintBanner(streams.Out, strings.TrimSpace(jumptable.Version))
	}

	sigCtx := NewSignalContext(ctx)
	defer sigCtx.Cancel()

	backend, err := OpenStore(sigCtx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer backend.Close()

	unlock, err := lockSession(sigCtx, backend, cfg)
	if err != nil {
		return err
	}
	defer unlock()

	var hooks []domain.LifecycleHooks
	if cfg.Debug {
		hooks = append(hooks, createDebugHooks(logger))
	}
	if cfg.MetricsAddr != "" {
		m := metrics.New()
		hooks = append(hooks, m.Hooks())
		stop := startHTTPServer(cfg.MetricsAddr, m.Handler(), cfg.ReadTimeout, logger)
		defer stop()
	}

	clearer, err := display.FromMode(cfg.Clear, streams.Out, interactive)
	if err != nil {
		return err
	}

	scr := screen.New(backend.Store,
		screen.WithInput(interruptible(sigCtx, streams.In)),
		screen.WithOutput(streams.Out),
		screen.WithRenderer(render.New(streams.Out, render.WithColor(cfg.Color && interactive))),
		screen.WithClearer(clearer),
		screen.WithLogger(logger),
		screen.WithLifecycleHooks(domain.MergeHooks(hooks...)),
	)

	// Exit actions must still reach the store after a signal.
	runCtx := context.WithoutCancel(sigCtx)

	logger.Info("session started", "store", cfg.Store)
	scr.Initialize(runCtx)
	for scr.RunStep(runCtx) {
	}
	logger.Info("session finished", "state", scr.State())

	if sig := sigCtx.Signal(); sig != nil {
		fmt.Fprintln(streams.Out)
		printSystemMessage(streams.Out, "Interrupted (%s). Changes saved.", sig)
	}
	return nil
}

// startHTTPServer serves h on addr in the background. The returned function
// shuts the server down.
func startHTTPServer(addr string, h http.Handler, readTimeout time.Duration, logger *slog.Logger) func() {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: readTimeout,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "addr", addr, "error", err)
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
