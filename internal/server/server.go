package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/planforge/floorplan/pkg/analysis"
	"github.com/planforge/floorplan/pkg/plan"
	"github.com/planforge/floorplan/pkg/validation"
	"github.com/planforge/floorplan/pkg/zones"
)

// Server is the local development server backing the drawing front end.
// The plan document on disk is the source of truth: every request reloads
// it, so edits show up without restarting.
type Server struct {
	projectPath string
	port        int
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/plan", s.handlePlan)
	mux.HandleFunc("GET /api/analysis", s.handleAnalysis)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/zones", s.handleZones)
	mux.HandleFunc("POST /api/zones/detect", s.handleDetect)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("floorplan server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, mux)
}

func (s *Server) load(w http.ResponseWriter) *plan.Plan {
	p, err := plan.LoadProject(s.projectPath)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("loading plan: %v", err))
		return nil
	}
	return p
}

func (s *Server) handlePlan(w http.ResponseWriter, _ *http.Request) {
	p := s.load(w)
	if p == nil {
		return
	}
	writeJSON(w, p)
}

func (s *Server) handleAnalysis(w http.ResponseWriter, _ *http.Request) {
	p := s.load(w)
	if p == nil {
		return
	}

	report := analysis.Analyze(p.Lines, p.Scale)
	if mgr := materializeZones(p); len(mgr.All()) > 0 {
		summary := mgr.Summary()
		report.Zones = &summary
	}
	writeJSON(w, report)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	p := s.load(w)
	if p == nil {
		return
	}

	report := validation.ValidateSchema(p)
	report.Merge(validation.ValidateGeometry(p.Lines, p.Scale))
	writeJSON(w, report)
}

func (s *Server) handleZones(w http.ResponseWriter, _ *http.Request) {
	p := s.load(w)
	if p == nil {
		return
	}
	writeJSON(w, materializeZones(p).Summary())
}

func (s *Server) handleDetect(w http.ResponseWriter, _ *http.Request) {
	p := s.load(w)
	if p == nil {
		return
	}

	mgr := materializeZones(p)
	detected := mgr.AutoDetect(p.Lines)
	writeJSON(w, map[string]any{
		"detected": detected,
		"summary":  mgr.Summary(),
	})
}

// materializeZones builds a zone collection from the plan's declared
// zones. Declarations that fail the minimum-membership rule are dropped;
// the validation endpoint reports those separately.
func materializeZones(p *plan.Plan) *zones.Manager {
	mgr := zones.NewManager(p.Scale)
	for _, def := range p.Zones {
		if _, err := mgr.Create(def.Name, zones.ZoneType(def.Type), def.Color, def.LineIndices, p.Lines); err != nil {
			log.Printf("skipping declared zone %q: %v", def.Name, err)
		}
	}
	return mgr
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
