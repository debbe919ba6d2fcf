// Package http serves the chat assistant over HTTP: a health check, the chat
// endpoint and Prometheus metrics, behind CORS, request IDs and access
// logging.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/sitechat"
	"github.com/rs/cors"
)

const (
	// MaxBodySize caps request bodies.
	MaxBodySize = 32 << 20

	// DefaultShutdownTimeout bounds graceful shutdown.
	DefaultShutdownTimeout = 10 * time.Second
)

// Server is the HTTP front of a sitechat.Assistant.
type Server struct {
	assistant       sitechat.Assistant
	logger          *slog.Logger
	metrics         *Metrics
	shutdownTimeout time.Duration
	handler         http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for access and error lines.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithShutdownTimeout sets how long Serve waits for in-flight requests.
// Defaults to DefaultShutdownTimeout (10s).
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

// NewServer creates a Server answering with assistant.
func NewServer(assistant sitechat.Assistant, opts ...Option) *Server {
	s := &Server{
		assistant:       assistant,
		logger:          slog.Default(),
		metrics:         NewMetrics(),
		shutdownTimeout: DefaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.Handle("GET /metrics", s.metrics.Handler())

	// Everything is allowed for now. Credentials rule out "*", so every
	// origin is accepted and echoed back.
	c := cors.New(cors.Options{
		AllowOriginFunc:  func(string) bool { return true },
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodHead, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// request → RequestID → AccessLog → Metrics → Recover → CORS → mux
	var chain http.Handler = mux
	chain = c.Handler(chain)
	chain = recoverPanic(s.logger)(chain)
	chain = s.metrics.middleware(chain)
	chain = accessLog(s.logger)(chain)
	chain = requestID(chain)
	s.handler = chain

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Metrics returns the collectors of this server.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "timeout", s.shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	in := ResolveChatInput(r)
	req := in.Request()

	resp, err := s.assistant.Chat(r.Context(), req)
	if err != nil {
		s.logger.Error("chat failed",
			"err", err,
			"request_id", RequestIDFromContext(r.Context()),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: sitechat.ErrorMessage(err)})
		return
	}

	searched := "false"
	if sitechat.HasTrigger(req.Text) {
		searched = "true"
	}
	s.metrics.ChatRequestsTotal.WithLabelValues(searched).Inc()
	s.metrics.ChatDocRefs.Observe(float64(len(resp.DocRefs)))

	s.logger.Debug("chat",
		"input", in.Kind.String(),
		"image", req.Image != nil,
		"doc_refs", len(resp.DocRefs),
		"request_id", RequestIDFromContext(r.Context()),
	)

	writeJSON(w, http.StatusOK, resp)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
