package admin

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"

	"buildmon/internal/monitor"
	"buildmon/internal/sensor"
	"buildmon/internal/telemetry"
)

type Server struct {
	Agg       *monitor.Aggregator
	Equipment sensor.EquipmentController
	tpl       *template.Template
}

//go:embed templates/index.html
var content embed.FS

func NewServer(agg *monitor.Aggregator, equipment sensor.EquipmentController) *Server {
	tpl := template.Must(template.New("index.html").ParseFS(content, "templates/index.html"))
	return &Server{Agg: agg, Equipment: equipment, tpl: tpl}
}

func (s *Server) routes() {
	http.HandleFunc("/", s.handleIndex)
	http.HandleFunc("/snapshot", s.handleSnapshot)
	http.HandleFunc("/alerts", s.handleAlerts)
	http.HandleFunc("/stats", s.handleStats)
	http.HandleFunc("/compliance", s.handleCompliance)
	http.HandleFunc("/equipment", s.handleEquipment)
	http.HandleFunc("/set-target", s.handleSetTarget)
}

func (s *Server) Start(addr string) error {
	s.routes()
	return http.ListenAndServe(addr, nil)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.Agg.LastSnapshot()
	data := struct {
		BuildingID   string
		HaveSnapshot bool
		Snapshot     telemetry.Snapshot
		Alerts       []telemetry.Alert
		Stats        telemetry.Stats
	}{
		BuildingID:   s.Agg.BuildingID(),
		HaveSnapshot: ok,
		Snapshot:     snap,
		Alerts:       s.Agg.ActiveAlerts(),
		Stats:        s.Agg.Stats(),
	}
	s.tpl.Execute(w, data)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.Agg.LastSnapshot()
	if !ok {
		http.Error(w, "no snapshot yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.Agg.ActiveAlerts())
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.Agg.Stats())
}

func (s *Server) handleCompliance(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.Agg.LastSnapshot()
	findings := []telemetry.ComplianceFinding{}
	if ok && snap.Findings != nil {
		findings = snap.Findings
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(findings)
}

func (s *Server) handleEquipment(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.Equipment.Status())
}

func (s *Server) handleSetTarget(w http.ResponseWriter, r *http.Request) {
	target, err := strconv.ParseFloat(r.URL.Query().Get("target"), 64)
	if err != nil {
		http.Error(w, "invalid target", http.StatusBadRequest)
		return
	}
	if err := s.Equipment.SetTargetTemperature(target); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
