// Package server is the local development server: it reloads the
// scenario on every request so edits to transit.yaml show up without a
// restart.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ArunNairID/transit/pkg/analytics"
	"github.com/ArunNairID/transit/pkg/curve"
	"github.com/ArunNairID/transit/pkg/scenario"
)

// Server serves the solved operating point and residual curve for one
// project directory.
type Server struct {
	projectPath string
	port        int
	logger      *slog.Logger
}

// New creates a server for the given project directory.
func New(projectPath string, port int, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		projectPath: projectPath,
		port:        port,
		logger:      logger,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/scenario", s.handleScenario)
	mux.HandleFunc("GET /api/solution", s.handleSolution)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /curve.png", s.handleCurve)
	mux.HandleFunc("GET /", s.handleIndex)

	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("transit server starting", "addr", fmt.Sprintf("http://localhost%s", addr))
	s.logger.Info("serving project", "path", s.projectPath)

	return http.ListenAndServe(addr, mux)
}

func (s *Server) load(w http.ResponseWriter) (*scenario.Scenario, bool) {
	sc, err := scenario.LoadProject(s.projectPath)
	if err != nil {
		s.logger.Error("loading scenario", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return sc, true
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>Transit</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>Transit</h1>
<p><a style="color:#6cf" href="/api/solution">solution</a> &middot;
<a style="color:#6cf" href="/api/validation">validation</a> &middot;
<a style="color:#6cf" href="/curve.png">residual curve</a></p>
</div>
</body></html>`)
}

func (s *Server) handleScenario(w http.ResponseWriter, _ *http.Request) {
	sc, ok := s.load(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleSolution(w http.ResponseWriter, _ *http.Request) {
	sc, ok := s.load(w)
	if !ok {
		return
	}

	sol, report := analytics.Resolve(sc)
	if !report.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"validation": report,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"solution":   sol,
		"validation": report,
	})
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	sc, ok := s.load(w)
	if !ok {
		return
	}

	report := analytics.ValidateSchema(sc)
	if report.Valid {
		_, solveReport := analytics.Resolve(sc)
		report.Merge(solveReport)
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleCurve(w http.ResponseWriter, _ *http.Request) {
	sc, ok := s.load(w)
	if !ok {
		return
	}

	p := sc.Params()
	series, err := curve.Sample(p.Residual, sc.Curve.Min, sc.Curve.Max, sc.Curve.Samples)
	if err != nil {
		s.logger.Error("sampling residual", "err", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	title := sc.Name
	if title == "" {
		title = "break-even residual"
	}
	w.Header().Set("Content-Type", "image/png")
	if err := curve.WritePNG(series, title, w); err != nil {
		s.logger.Error("rendering curve", "err", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
