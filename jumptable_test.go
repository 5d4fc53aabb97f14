package jumptable_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/jumptable"
	"github.com/aretw0/jumptable/pkg/adapters/memory"
	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_RunUntilQuit(t *testing.T) {
	store := memory.NewStore()
	var out bytes.Buffer
	var entered []domain.State

	s := jumptable.New(store,
		jumptable.WithIO(strings.NewReader("3\n1 k\n5\n"), &out),
		jumptable.WithLifecycleHooks(domain.LifecycleHooks{
			OnStateEnter: func(ctx context.Context, e *domain.StateEvent) {
				entered = append(entered, e.To)
			},
		}),
	)

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, domain.StateNone, s.State())
	assert.Equal(t, []domain.State{domain.StateIdle, domain.StateList}, entered)
	assert.Contains(t, out.String(), "{ k }")

	items, err := store.Load(context.Background(), domain.KindList)
	require.NoError(t, err)
	assert.Equal(t, []rune("k"), items)
}

func TestSession_NoInputQuitsFromIdle(t *testing.T) {
	s := jumptable.New(memory.NewStore())
	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, domain.StateIdle, s.State())
}

func TestSession_CancelledContextPersists(t *testing.T) {
	store := memory.NewStore()
	ctx, cancel := context.WithCancel(context.Background())

	s := jumptable.New(store,
		jumptable.WithIO(strings.NewReader("2\n1 c\n1 d\n"), nil),
		jumptable.WithLifecycleHooks(domain.LifecycleHooks{
			OnOperation: func(ctx context.Context, e *domain.OperationEvent) {
				if e.Op == domain.OpEnqueue && e.Item == 'c' {
					cancel()
				}
			},
		}),
	)

	err := s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.StateNone, s.State())

	items, err := store.Load(context.Background(), domain.KindQueue)
	require.NoError(t, err)
	assert.Equal(t, []rune("c"), items)
}

func TestSession_ColorAndClear(t *testing.T) {
	var out bytes.Buffer
	s := jumptable.New(memory.NewStore(),
		jumptable.WithIO(strings.NewReader("1\n5\n"), &out),
		jumptable.WithColor(true),
		jumptable.WithANSIClear(),
	)
	require.NoError(t, s.Run(context.Background()))
	assert.Contains(t, out.String(), "\x1b[")
}
