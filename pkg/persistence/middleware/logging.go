package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/jumptable/pkg/codec"
	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/aretw0/jumptable/pkg/ports"
)

type loggingMiddleware struct {
	next        ports.Store
	logger      *slog.Logger
	showContent bool
}

// NewLoggingMiddleware logs every store call at debug level and failures at error level.
// Items are reduced to a count unless showContent is set.
func NewLoggingMiddleware(logger *slog.Logger, showContent bool) Middleware {
	return func(next ports.Store) ports.Store {
		return &loggingMiddleware{next: next, logger: logger, showContent: showContent}
	}
}

func (m *loggingMiddleware) Load(ctx context.Context, kind domain.Kind) ([]rune, error) {
	start := time.Now()
	items, err := m.next.Load(ctx, kind)
	m.log(ctx, "load", kind, items, time.Since(start), err)
	return items, err
}

func (m *loggingMiddleware) Save(ctx context.Context, kind domain.Kind, items []rune) error {
	start := time.Now()
	err := m.next.Save(ctx, kind, items)
	m.log(ctx, "save", kind, items, time.Since(start), err)
	return err
}

func (m *loggingMiddleware) Delete(ctx context.Context, kind domain.Kind) error {
	start := time.Now()
	err := m.next.Delete(ctx, kind)
	m.log(ctx, "delete", kind, nil, time.Since(start), err)
	return err
}

func (m *loggingMiddleware) log(ctx context.Context, op string, kind domain.Kind, items []rune, took time.Duration, err error) {
	if err != nil {
		m.logger.ErrorContext(ctx, "store call failed", "op", op, "kind", kind, "took", took, "error", err)
		return
	}
	attrs := []any{"op", op, "kind", kind, "took", took}
	if op != "delete" {
		attrs = append(attrs, "size", len(items))
		if m.showContent {
			attrs = append(attrs, "line", codec.Encode(items))
		}
	}
	m.logger.DebugContext(ctx, "store call", attrs...)
}
