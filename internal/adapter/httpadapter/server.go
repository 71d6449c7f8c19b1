// Package httpadapter exposes the dashboard over HTTP: view-model JSON
// for every panel, rendered SVG chart images, the hour selector, and the
// operational endpoints (health, readiness, metrics).
package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/trip-risk-dashboard/internal/adapter/riskapi"
	"github.com/couchcryptid/trip-risk-dashboard/internal/dashboard"
	"github.com/couchcryptid/trip-risk-dashboard/internal/domain"
	"github.com/couchcryptid/trip-risk-dashboard/internal/view"
)

// Server exposes the dashboard panels plus health, readiness, and metrics
// endpoints.
type Server struct {
	httpServer *http.Server
	state      *dashboard.State
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the dashboard routes mounted
// under /dashboard and the operational routes at the root.
func NewServer(addr string, state *dashboard.State, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		state:  state,
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(state))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /dashboard/overview", s.handleOverview)
	mux.HandleFunc("GET /dashboard/top-zones", s.handleTopZones)
	mux.HandleFunc("GET /dashboard/hour", s.handleGetHour)
	mux.HandleFunc("PUT /dashboard/hour", s.handleSetHour)
	mux.HandleFunc("GET /dashboard/zones/{id}", s.handleZoneDetail)
	mux.HandleFunc("GET /dashboard/map", s.handleMap)
	mux.HandleFunc("GET /dashboard/charts/density.svg", s.handleDensityChart)
	mux.HandleFunc("GET /dashboard/charts/revenue.svg", s.handleRevenueChart)
	mux.HandleFunc("POST /dashboard/driver-risk", s.handleDriverRisk)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

type overviewResponse struct {
	Loaded bool          `json:"loaded"`
	KPI    view.KPIPanel `json:"kpi"`
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	kpi, loaded := s.state.KPI()
	s.writeJSON(w, http.StatusOK, overviewResponse{Loaded: loaded, KPI: kpi})
}

type topZonesResponse struct {
	Hour          int             `json:"hour"`
	HourLabel     string          `json:"hour_label"`
	Rows          []view.TableRow `json:"rows"`
	LastRefreshed time.Time       `json:"last_refreshed"`
}

func (s *Server) handleTopZones(w http.ResponseWriter, r *http.Request) {
	rows, refreshed := s.state.TopZoneRows()
	s.writeJSON(w, http.StatusOK, topZonesResponse{
		Hour:          s.state.CurrentHour(),
		HourLabel:     s.state.HourLabel(),
		Rows:          rows,
		LastRefreshed: refreshed,
	})
}

type hourResponse struct {
	Hour  int    `json:"hour"`
	Label string `json:"label"`
}

func (s *Server) handleGetHour(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, hourResponse{
		Hour:  s.state.CurrentHour(),
		Label: s.state.HourLabel(),
	})
}

func (s *Server) handleSetHour(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Hour int `json:"hour"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Hour < 0 || req.Hour > 23 {
		s.writeError(w, http.StatusBadRequest, "hour must be between 0 and 23")
		return
	}

	s.state.SetHour(r.Context(), req.Hour)
	s.writeJSON(w, http.StatusOK, hourResponse{
		Hour:  s.state.CurrentHour(),
		Label: s.state.HourLabel(),
	})
}

func (s *Server) handleZoneDetail(w http.ResponseWriter, r *http.Request) {
	id := domain.ZoneID(r.PathValue("id"))
	panel, err := s.state.ZoneDetail(r.Context(), id)
	if err != nil {
		status := http.StatusBadGateway
		var ferr *riskapi.FetchError
		if errors.As(err, &ferr) && ferr.Kind == riskapi.FailureStatus && ferr.Status == http.StatusNotFound {
			status = http.StatusNotFound
		}
		s.writeError(w, status, "zone detail unavailable")
		return
	}
	s.writeJSON(w, http.StatusOK, panel)
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.state.MapPanel())
}

func (s *Server) handleDensityChart(w http.ResponseWriter, r *http.Request) {
	s.writeSVG(w, s.state.DensitySVG())
}

func (s *Server) handleRevenueChart(w http.ResponseWriter, r *http.Request) {
	s.writeSVG(w, s.state.RevenueSVG())
}

func (s *Server) handleDriverRisk(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DriverID int64 `json:"driver_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	panel, err := s.state.SubmitDriverRisk(r.Context(), req.DriverID)
	if err != nil {
		status := http.StatusBadGateway
		var ferr *riskapi.FetchError
		if errors.As(err, &ferr) && ferr.Kind == riskapi.FailureStatus {
			status = ferr.Status
		}
		s.writeError(w, status, view.DriverErrorMessage(err))
		return
	}
	s.writeJSON(w, http.StatusOK, panel)
}

func (s *Server) writeSVG(w http.ResponseWriter, svg []byte) {
	if len(svg) == 0 {
		http.Error(w, "chart not rendered yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write(svg)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
