// Package server exposes persisted structures over HTTP for inspection.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/jumptable"
	"github.com/aretw0/jumptable/internal/logging"
	"github.com/aretw0/jumptable/pkg/codec"
	"github.com/aretw0/jumptable/pkg/domain"
	"github.com/aretw0/jumptable/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:generate go tool oapi-codegen -package server -generate types,chi-server,spec -o api.gen.go ../../api/openapi.yaml

// Server implements the generated ServerInterface. It reads and deletes
// persisted data and never drives a screen.
type Server struct {
	Store  ports.Store
	Logger *slog.Logger
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// NewHandler creates the router. metrics may be nil, in which case /metrics is not mounted.
func NewHandler(store ports.Store, metrics http.Handler, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{Store: store, Logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			logger.Error("failed to load OpenAPI spec", "error", err)
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(spec)
	})
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	return HandlerFromMux(s, r)
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, Health{
		Status:  "ok",
		Version: strings.TrimSpace(jumptable.Version),
	})
}

// ListStructures handles GET /structures.
func (s *Server) ListStructures(w http.ResponseWriter, r *http.Request) {
	out := make([]Structure, 0, len(domain.Kinds))
	for _, kind := range domain.Kinds {
		items, err := s.Store.Load(r.Context(), kind)
		if err != nil {
			s.fail(w, err)
			return
		}
		out = append(out, toStructure(kind, items))
	}
	s.writeJSON(w, http.StatusOK, out)
}

// GetStructure handles GET /structures/{kind}.
func (s *Server) GetStructure(w http.ResponseWriter, r *http.Request, kind Kind) {
	k, err := domain.ParseKind(kind)
	if err != nil {
		s.fail(w, err)
		return
	}
	items, err := s.Store.Load(r.Context(), k)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toStructure(k, items))
}

// DeleteStructure handles DELETE /structures/{kind}.
func (s *Server) DeleteStructure(w http.ResponseWriter, r *http.Request, kind Kind) {
	k, err := domain.ParseKind(kind)
	if err != nil {
		s.fail(w, err)
		return
	}
	if err := s.Store.Delete(r.Context(), k); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toStructure(kind domain.Kind, items []rune) Structure {
	strs := make([]string, len(items))
	for i, r := range items {
		strs[i] = string(r)
	}
	return Structure{Kind: string(kind), Items: strs, Line: codec.Encode(items)}
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrUnknownKind) {
		status = http.StatusNotFound
	} else {
		s.Logger.Error("request failed", "error", err)
	}
	s.writeJSON(w, status, Error{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("encode error", "error", err)
	}
}
