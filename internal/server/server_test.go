package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aretw0/jumptable/internal/metrics"
	"github.com/aretw0/jumptable/internal/server"
	"github.com/aretw0/jumptable/pkg/adapters/memory"
	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestGetStructure(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.Save(context.Background(), domain.KindStack, []rune("ab")))
	h := server.NewHandler(store, nil, nil)

	rec := do(h, http.MethodGet, "/structures/stack")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got server.Structure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, server.Structure{Kind: "stack", Items: []string{"a", "b"}, Line: "a,b,"}, got)
}

func TestListStructures(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.Save(context.Background(), domain.KindQueue, []rune("q")))
	h := server.NewHandler(store, nil, nil)

	rec := do(h, http.MethodGet, "/structures")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []server.Structure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "stack", got[0].Kind)
	assert.Empty(t, got[0].Items)
	assert.Equal(t, []string{"q"}, got[1].Items)
	assert.Equal(t, "q,", got[1].Line)
}

func TestDeleteStructure(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Save(ctx, domain.KindList, []rune("xyz")))
	h := server.NewHandler(store, nil, nil)

	rec := do(h, http.MethodDelete, "/structures/list")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	items, err := store.Load(ctx, domain.KindList)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUnknownKind(t *testing.T) {
	h := server.NewHandler(memory.NewStore(), nil, nil)

	rec := do(h, http.MethodGet, "/structures/heap")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(h, http.MethodDelete, "/structures/heap")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body server.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "heap")
}

type failingStore struct{ *memory.Store }

func (failingStore) Load(ctx context.Context, kind domain.Kind) ([]rune, error) {
	return nil, errors.New("connection refused")
}

func TestStoreFailure(t *testing.T) {
	h := server.NewHandler(failingStore{memory.NewStore()}, nil, nil)

	rec := do(h, http.MethodGet, "/structures/queue")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestHealthAndMetrics(t *testing.T) {
	m := metrics.New()
	m.Operations.WithLabelValues("stack", "push").Inc()
	h := server.NewHandler(memory.NewStore(), m.Handler(), nil)

	rec := do(h, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = do(h, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jumptable_operations_total")
}

func TestMetricsNotMounted(t *testing.T) {
	h := server.NewHandler(memory.NewStore(), nil, nil)
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/metrics").Code)
}

func TestOpenAPISpec(t *testing.T) {
	h := server.NewHandler(memory.NewStore(), nil, nil)

	rec := do(h, http.MethodGet, "/openapi.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/yaml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "/structures/{kind}")

	swagger, err := server.GetSwagger()
	require.NoError(t, err)
	require.NoError(t, swagger.Validate(context.Background()))

	item := swagger.Paths.Value("/structures/{kind}")
	require.NotNil(t, item)
	assert.Equal(t, "GetStructure", item.GetOperation(http.MethodGet).OperationID)
	assert.Equal(t, "DeleteStructure", item.GetOperation(http.MethodDelete).OperationID)
	assert.NotNil(t, swagger.Paths.Value("/healthz"))
	assert.NotNil(t, swagger.Paths.Value("/structures"))
}

func TestUnimplementedRoutes(t *testing.T) {
	h := server.Handler(server.Unimplemented{})
	assert.Equal(t, http.StatusNotImplemented, do(h, http.MethodGet, "/structures/stack").Code)
	assert.Equal(t, http.StatusNotFound, do(h, http.MethodGet, "/openapi.yaml").Code)
}
