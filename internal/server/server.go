// Package server exposes the calculator over HTTP. Every accepted
// expression is evaluated synchronously and kept in memory so its result
// can be fetched again by id.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/arithmo/termcalc"
)

// Record is one stored evaluation.
type Record struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Status     string    `json:"status"`
	Result     jsonFloat `json:"result"`
}

// jsonFloat marshals non-finite values as strings, which encoding/json
// otherwise refuses to encode.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return json.Marshal(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return json.Marshal(v)
}

// Server evaluates expressions posted to it and serves the results. It
// is safe for concurrent use.
type Server struct {
	mu      sync.RWMutex
	records map[string]*Record
	order   []string
	log     *slog.Logger
}

func New(log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		records: make(map[string]*Record),
		log:     log,
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Post("/api/v1/calculate", s.handleCalculate)
	r.Get("/api/v1/expressions", s.handleExpressions)
	r.Get("/api/v1/expressions/{id}", s.handleExpression)
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Expression string `json:"expression"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result, err := termcalc.EvalString(req.Expression)
	if err != nil {
		var perr termcalc.ParseError
		if errors.As(err, &perr) {
			s.log.Warn("rejected expression", "expression", req.Expression, "err", err)
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	rec := &Record{
		ID:         uuid.NewString(),
		Expression: req.Expression,
		Status:     "completed",
		Result:     jsonFloat(result),
	}
	s.mu.Lock()
	s.records[rec.ID] = rec
	s.order = append(s.order, rec.ID)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]string{"id": rec.ID})
}

func (s *Server) handleExpressions(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	list := make([]*Record, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.records[id])
	}
	s.mu.RUnlock()
	writeJSON(w, http.StatusOK, map[string][]*Record{"expressions": list})
}

func (s *Server) handleExpression(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		writeError(w, http.StatusNotFound, "no such expression")
		return
	}
	writeJSON(w, http.StatusOK, map[string]*Record{"expression": rec})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
