package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/aretw0/jumptable/pkg/adapters/memory"
	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/aretw0/jumptable/pkg/persistence/middleware"
	"github.com/aretw0/jumptable/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowStore blocks until ctx is done.
type slowStore struct{ *memory.Store }

func (slowStore) Load(ctx context.Context, kind domain.Kind) ([]rune, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestMiddlewares_SatisfyStoreContract(t *testing.T) {
	var buf bytes.Buffer
	store := middleware.Chain(memory.NewStore(),
		middleware.NewLoggingMiddleware(newLogger(&buf), false),
		middleware.NewTimeoutMiddleware(time.Second),
	)
	ports.RunStoreContract(t, store)
}

func TestLoggingMiddleware(t *testing.T) {
	ctx := context.Background()

	t.Run("Hides Content By Default", func(t *testing.T) {
		var buf bytes.Buffer
		store := middleware.NewLoggingMiddleware(newLogger(&buf), false)(memory.NewStore())

		require.NoError(t, store.Save(ctx, domain.KindStack, []rune("xy")))
		assert.Contains(t, buf.String(), "op=save kind=stack")
		assert.Contains(t, buf.String(), "size=2")
		assert.NotContains(t, buf.String(), "x,y,")
	})

	t.Run("Shows Content", func(t *testing.T) {
		var buf bytes.Buffer
		store := middleware.NewLoggingMiddleware(newLogger(&buf), true)(memory.NewStore())

		require.NoError(t, store.Save(ctx, domain.KindQueue, []rune("xy")))
		_, err := store.Load(ctx, domain.KindQueue)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "line=x,y,")
		assert.Contains(t, buf.String(), "op=load")
	})

	t.Run("Logs Failures", func(t *testing.T) {
		var buf bytes.Buffer
		store := middleware.NewLoggingMiddleware(newLogger(&buf), false)(memory.NewStore())

		err := store.Delete(ctx, domain.Kind("heap"))
		assert.ErrorIs(t, err, domain.ErrUnknownKind)
		assert.Contains(t, buf.String(), "level=ERROR")
	})
}

func TestTimeoutMiddleware(t *testing.T) {
	store := middleware.NewTimeoutMiddleware(20 * time.Millisecond)(slowStore{memory.NewStore()})

	_, err := store.Load(context.Background(), domain.KindList)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestTimeoutMiddleware_Disabled(t *testing.T) {
	inner := memory.NewStore()
	assert.Same(t, inner, middleware.NewTimeoutMiddleware(0)(inner))
}

func TestChain_Order(t *testing.T) {
	var calls []string
	tag := func(name string) middleware.Middleware {
		return func(next ports.Store) ports.Store {
			return tagStore{Store: next, name: name, calls: &calls}
		}
	}

	store := middleware.Chain(memory.NewStore(), tag("outer"), tag("inner"))
	_, err := store.Load(context.Background(), domain.KindStack)
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, calls)
}

type tagStore struct {
	ports.Store
	name  string
	calls *[]string
}

func (s tagStore) Load(ctx context.Context, kind domain.Kind) ([]rune, error) {
	*s.calls = append(*s.calls, s.name)
	return s.Store.Load(ctx, kind)
}
