package api

import (
	"context"
	"encoding/json"
	"mime"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/yogabind/pkg/buildinfo"
	"github.com/matzehuels/yogabind/pkg/document"
	"github.com/matzehuels/yogabind/pkg/errors"
	"github.com/matzehuels/yogabind/pkg/observability"
	"github.com/matzehuels/yogabind/pkg/yoga"
)

// HeaderLayoutID carries the id assigned to each layout request.
const HeaderLayoutID = "X-Layout-ID"

// DefaultMaxBodyBytes bounds the size of a layout document.
const DefaultMaxBodyBytes = 1 << 20

// Server is the HTTP layout service.
type Server struct {
	binding *yoga.Binding
	maxBody int64
	logger  *log.Logger
	router  chi.Router

	mu sync.Mutex
}

// Option configures a Server.
type Option func(*Server)

// WithMaxBodyBytes limits request bodies to n bytes.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) { s.maxBody = n }
}

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// New creates a server running passes on b, or on the process binding when b
// is nil.
func New(b *yoga.Binding, opts ...Option) *Server {
	if b == nil {
		b = yoga.Default()
	}
	s := &Server{
		binding: b,
		maxBody: DefaultMaxBodyBytes,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)
	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/layout", s.handleLayout)
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// observe reports requests to the HTTP hooks and the logger.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), elapsed)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", elapsed,
			"request_id", middleware.GetReqID(r.Context()))
	})
}

type healthResponse struct {
	Status     string `json:"status"`
	Engine     string `json:"engine"`
	Convention string `json:"convention"`
	Version    string `json:"version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:     "ok",
		Engine:     s.binding.Engine(),
		Convention: s.binding.Convention().String(),
		Version:    buildinfo.Version,
	})
}

type errorResponse struct {
	Code  errors.Code `json:"code"`
	Error string      `json:"error"`
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	w.Header().Set(HeaderLayoutID, id)

	format, err := requestFormat(r)
	if err != nil {
		s.fail(w, id, err)
		return
	}
	doc, err := document.Read(http.MaxBytesReader(w, r.Body, s.maxBody), format)
	if err != nil {
		s.fail(w, id, err)
		return
	}

	res, err := s.layout(doc)
	if err != nil {
		s.fail(w, id, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) layout(doc *document.Document) (*document.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return document.Layout(s.binding, doc)
}

func (s *Server) fail(w http.ResponseWriter, id string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("layout failed", "id", id, "error", err)
	} else {
		s.logger.Debug("layout rejected", "id", id, "error", err)
	}
	writeJSON(w, status, errorResponse{Code: errors.GetCode(err), Error: errors.UserMessage(err)})
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidStyleInput,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidDocument,
		errors.ErrCodeInvalidNodeName:
		return http.StatusBadRequest
	case errors.ErrCodeCallbackPanic:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// requestFormat picks the document format from the query or Content-Type.
func requestFormat(r *http.Request) (document.Format, error) {
	if q := r.URL.Query().Get("format"); q != "" {
		return document.ParseFormat(q)
	}
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return document.FormatJSON, nil
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidFormat, err, "content type %q", ct)
	}
	switch {
	case strings.HasSuffix(mt, "toml"):
		return document.FormatTOML, nil
	case strings.HasSuffix(mt, "yaml"):
		return document.FormatYAML, nil
	}
	return document.FormatJSON, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ListenAndServe serves h on addr until ctx is cancelled, then shuts down
// gracefully.
func ListenAndServe(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
