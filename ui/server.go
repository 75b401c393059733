package ui

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is a read-only browser over the report JSON files an analysis run
// leaves in the output directory.
type Server struct {
	router    *chi.Mux
	outputDir string
}

// NewServer creates the report server for one output directory.
func NewServer(outputDir string) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		outputDir: outputDir,
	}
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/reports", s.handleListReports)
	s.router.Get("/reports/{source}", s.handleGetReport)

	return s
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the server on addr.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(s.outputDir)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	sources := []string{}
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), "_report.json"); ok {
			sources = append(sources, name)
		}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"reports": sources})
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	source := chi.URLParam(r, "source")
	// Reject path traversal; source names are flat identifiers.
	if source != filepath.Base(source) || strings.Contains(source, "..") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid report name"})
		return
	}
	path := filepath.Join(s.outputDir, source+"_report.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "report not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
