// Package server exposes a road network's shortest distances over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/roadpath/bellmanford"
	"github.com/katalvlaran/roadpath/internal/config"
	"github.com/katalvlaran/roadpath/roadnet"
)

const requestIDHeader = "X-Request-ID"

// DistancesResponse is the body of GET /v1/distances.
type DistancesResponse struct {
	Source    string          `json:"source"`
	Cached    bool            `json:"cached"`
	Distances []roadnet.Entry `json:"distances"`
}

// NetworkResponse is the body of GET /v1/network.
type NetworkResponse struct {
	Cities        []string `json:"cities"`
	Roads         int      `json:"roads"`
	DefaultSource string   `json:"default_source,omitempty"`
	CachedSources []string `json:"cached_sources"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// Server serves one network through one engine.
type Server struct {
	net    *roadnet.Network
	engine *bellmanford.Engine
	log    zerolog.Logger
	server *http.Server
}

// New wires the routes. gatherer backs /metrics; pass the registry the
// engine's metrics.Collector was registered with.
func New(n *roadnet.Network, e *bellmanford.Engine, cfg config.Server, gatherer prometheus.Gatherer, log zerolog.Logger) *Server {
	s := &Server{
		net:    n,
		engine: e,
		log:    log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/health", handleHealth)
	mux.HandleFunc("/v1/distances", s.handleDistances)
	mux.HandleFunc("/v1/network", s.handleNetwork)
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	addr := cfg.Addr
	if addr == "" {
		addr = ":8090"
	}
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.withLogging(s.withRecovery(mux)),
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
		IdleTimeout:  cfg.IdleTimeout(),
	}

	return s
}

// Handler returns the fully wrapped handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.server.Handler }

// Addr returns the listen address.
func (s *Server) Addr() string { return s.server.Addr }

// Start runs the HTTP server (blocking). It returns nil after Stop.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("server starting")
	if err := s.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info().Msg("server stopping")

	return s.server.Shutdown(ctx)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDistances(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	name := r.URL.Query().Get("source")
	if name == "" {
		name = s.net.Source
	}
	if name == "" {
		writeError(w, http.StatusBadRequest, "missing_source", "source query parameter is required")
		return
	}
	src, err := s.net.Index(name)
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown_city", name)
		return
	}

	d, cached, err := s.engine.Lookup(r.Context(), src)
	switch {
	case err == nil:
	case errors.Is(err, bellmanford.ErrNegativeCycle):
		writeError(w, http.StatusUnprocessableEntity, "negative_cycle", err.Error())
		return
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "canceled", err.Error())
		return
	default:
		s.log.Error().Err(err).Str("source", name).Msg("distance query failed")
		writeError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}

	writeJSON(w, http.StatusOK, DistancesResponse{
		Source:    name,
		Cached:    cached,
		Distances: roadnet.Entries(s.net, d),
	})
}

func (s *Server) handleNetwork(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	resp := NetworkResponse{
		Cities:        s.net.Cities,
		Roads:         len(s.net.Roads),
		DefaultSource: s.net.Source,
		CachedSources: []string{},
	}
	for i := range s.net.Cities {
		if s.engine.Cached(i) {
			resp.CachedSources = append(resp.CachedSources, s.net.Name(i))
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, reason string) {
	writeJSON(w, status, errorResponse{Error: code, Reason: reason})
}

func (s *Server) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("panic recovered")
				writeError(w, http.StatusInternalServerError, "internal_error", "")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("request_id", id).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.status).
			Dur("elapsed", time.Since(start)).
			Msg("http request")
	})
}

// statusWriter captures the response status for logging.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
