package middleware

import (
	"context"
	"time"

	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/aretw0/jumptable/pkg/ports"
)

type timeoutMiddleware struct {
	next    ports.Store
	timeout time.Duration
}

// NewTimeoutMiddleware bounds every store call by d. A non-positive d disables it.
func NewTimeoutMiddleware(d time.Duration) Middleware {
	return func(next ports.Store) ports.Store {
		if d <= 0 {
			return next
		}
		return &timeoutMiddleware{next: next, timeout: d}
	}
}

func (m *timeoutMiddleware) Load(ctx context.Context, kind domain.Kind) ([]rune, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.next.Load(ctx, kind)
}

func (m *timeoutMiddleware) Save(ctx context.Context, kind domain.Kind, items []rune) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.next.Save(ctx, kind, items)
}

func (m *timeoutMiddleware) Delete(ctx context.Context, kind domain.Kind) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.next.Delete(ctx, kind)
}
