package metrics_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/jumptable/internal/metrics"
	"github.com/aretw0/jumptable/internal/screen"
	"github.com/aretw0/jumptable/pkg/adapters/memory"
	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHooks_Count(t *testing.T) {
	m := metrics.New()
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnTransition(ctx, &domain.StateEvent{From: domain.StateIdle, To: domain.StateStack})
	hooks.OnOperation(ctx, &domain.OperationEvent{Kind: domain.KindStack, Op: domain.OpPush, Item: 'a', Applied: true, Size: 1})
	hooks.OnOperation(ctx, &domain.OperationEvent{Kind: domain.KindStack, Op: domain.OpPush, Item: 'b', Applied: true, Size: 2})
	hooks.OnOperation(ctx, &domain.OperationEvent{Kind: domain.KindQueue, Op: domain.OpDequeue, Applied: false})
	hooks.OnStoreError(ctx, &domain.StoreEvent{Kind: domain.KindList, Op: domain.OpSave, Err: errors.New("boom")})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("IDLE", "STACK")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Operations.WithLabelValues("stack", "push")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Operations.WithLabelValues("queue", "dequeue")), "no-ops are not counted")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Items.WithLabelValues("stack")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreErrors.WithLabelValues("list", "save")))
}

func TestHooks_CountTransitionsOfARealScreen(t *testing.T) {
	m := metrics.New()
	scr := screen.New(memory.NewStore(),
		screen.WithInput(strings.NewReader("1\n5\n")),
		screen.WithOutput(io.Discard),
		screen.WithLifecycleHooks(m.Hooks()),
	)

	ctx := context.Background()
	scr.Initialize(ctx)
	for scr.RunStep(ctx) {
	}

	require.Equal(t, domain.StateNone, scr.State())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("NONE", "IDLE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("IDLE", "STACK")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("STACK", "NONE")))
}

func TestHandler_Exposes(t *testing.T) {
	m := metrics.New()
	m.Operations.WithLabelValues("list", "append").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `jumptable_operations_total{kind="list",op="append"} 1`)
}
