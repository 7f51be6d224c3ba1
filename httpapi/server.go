// Package httpapi maps the REST surface onto the formbox core. It is glue:
// routing, JSON codec, CORS, bearer tokens, and error-to-status mapping.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Jumpaku/go-formbox/auth"
	"github.com/Jumpaku/go-formbox/errors"
	"github.com/Jumpaku/go-formbox/store"
	"go.uber.org/zap"
)

// Server serves the form-builder REST API.
type Server struct {
	store  store.Store
	auth   *auth.Authenticator
	log    *zap.Logger
	origin string
}

// New creates a Server. origin is the frontend origin allowed by CORS.
func New(st store.Store, authenticator *auth.Authenticator, logger *zap.Logger, origin string) *Server {
	return &Server{store: st, auth: authenticator, log: logger, origin: origin}
}

// Handler builds the routing table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("API is running..."))
	})

	mux.HandleFunc("POST /api/users/signup", s.handleSignup)
	mux.HandleFunc("POST /api/users/login", s.handleLogin)
	mux.HandleFunc("POST /api/users/logout", s.handleLogout)

	mux.HandleFunc("POST /api/forms", s.handleCreateForm)
	mux.HandleFunc("GET /api/forms/allforms", s.handleListForms)
	mux.HandleFunc("GET /api/forms/{id}", s.handleGetForm)
	mux.HandleFunc("POST /api/forms/submit", s.handleSubmitResponse)
	mux.HandleFunc("GET /api/forms/{id}/responses", s.handleGetResponses)

	return s.withLogging(s.withCORS(mux))
}

func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", recorder.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// bearerSession resolves the request's Authorization header to a session, if
// any.
func (s *Server) bearerSession(r *http.Request) (session auth.Session, ok bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return auth.Session{}, false
	}
	session, err := s.auth.Identify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return auth.Session{}, false
	}
	return session, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

type messageBody struct {
	Message string `json:"message"`
}

// writeError maps the error taxonomy onto HTTP statuses. Schema and
// validation errors carry their own client-correctable message; everything
// else is opaque.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errors.ErrNotFound):
		s.writeJSON(w, http.StatusNotFound, messageBody{Message: err.Error()})
	case errors.Is(err, errors.ErrUnauthorized):
		s.writeJSON(w, http.StatusUnauthorized, messageBody{Message: err.Error()})
	case errors.Is(err, errors.ErrAlreadyExists):
		s.writeJSON(w, http.StatusConflict, messageBody{Message: err.Error()})
	case errors.Is(err, errors.ErrEmptyTitle),
		errors.Is(err, errors.ErrNoFields),
		errors.Is(err, errors.ErrInvalidField),
		errors.Is(err, errors.ErrUnknownField),
		errors.Is(err, errors.ErrTypeMismatch),
		errors.Is(err, errors.ErrInvalidOption),
		errors.Is(err, errors.ErrInvalidAccount):
		s.writeJSON(w, http.StatusBadRequest, messageBody{Message: err.Error()})
	default:
		s.log.Error("internal error", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, messageBody{Message: "Server error"})
	}
}
