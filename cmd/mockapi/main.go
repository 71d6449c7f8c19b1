// Command mockapi serves a deterministic stand-in for the trip risk
// analytics API. It exposes the same endpoints the dashboard consumes,
// with fixture data that varies by hour so hour switching and the
// stale-response guard can be exercised end to end.
//
// Usage:
//
//	go run ./cmd/mockapi -addr :8000 -latency 250ms
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type zoneRecord struct {
	ZoneID        string  `json:"zone_id"`
	ZoneName      string  `json:"zone_name"`
	Borough       string  `json:"borough"`
	RiskScore     float64 `json:"risk_score"`
	TripCount     int64   `json:"trip_count"`
	ExposureScore float64 `json:"exposure_score"`
}

var zones = []zoneRecord{
	{ZoneID: "161", ZoneName: "Midtown Center", Borough: "Manhattan", RiskScore: 0.81, TripCount: 4200, ExposureScore: 0.74},
	{ZoneID: "74", ZoneName: "East Harlem North", Borough: "Manhattan", RiskScore: 0.62, TripCount: 1900, ExposureScore: 0.55},
	{ZoneID: "132", ZoneName: "JFK Airport", Borough: "Queens", RiskScore: 0.44, TripCount: 3100, ExposureScore: 0.61},
	{ZoneID: "61", ZoneName: "Crown Heights North", Borough: "Brooklyn", RiskScore: 0.38, TripCount: 1200, ExposureScore: 0.42},
	{ZoneID: "79", ZoneName: "East Village", Borough: "Manhattan", RiskScore: 0.29, TripCount: 2600, ExposureScore: 0.33},
	{ZoneID: "244", ZoneName: "Washington Heights South", Borough: "Manhattan", RiskScore: 0.18, TripCount: 800, ExposureScore: 0.21},
}

func main() {
	addr := flag.String("addr", ":8000", "listen address")
	latency := flag.Duration("latency", 0, "artificial response delay, useful for exercising the stale-response guard")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/overview", delayed(*latency, handleOverview))
	mux.HandleFunc("GET /api/hourly_density", delayed(*latency, handleHourlyDensity))
	mux.HandleFunc("GET /api/top_zones", delayed(*latency, handleTopZones))
	mux.HandleFunc("GET /api/zone/{id}", delayed(*latency, handleZoneDetail))
	mux.HandleFunc("GET /api/revenue", delayed(*latency, handleRevenue))
	mux.HandleFunc("POST /api/driver-risk", delayed(*latency, handleDriverRisk))

	log.Printf("mock analytics API listening on %s (latency %s)", *addr, *latency)
	log.Fatal(http.ListenAndServe(*addr, mux))
}

func delayed(d time.Duration, h http.HandlerFunc) http.HandlerFunc {
	if d == 0 {
		return h
	}
	return func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(d)
		h(w, r)
	}
}

func handleOverview(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"total_trips":              2_500_000,
		"high_risk_zones_count":    12,
		"peak_exposure_hour":       18,
		"revenue_volatility_score": 0.3456,
	})
}

func handleHourlyDensity(w http.ResponseWriter, r *http.Request) {
	points := make([]map[string]any, 0, 24)
	for h := 0; h < 24; h++ {
		// Two-peak curve: morning and evening rush.
		trips := 40_000 + 30_000*peak(h, 8) + 45_000*peak(h, 18)
		points = append(points, map[string]any{"hour": h, "total_trips": int64(trips)})
	}
	writeJSON(w, http.StatusOK, points)
}

// peak is a triangular bump of width 4 centered on c.
func peak(h, c int) float64 {
	d := h - c
	if d < 0 {
		d = -d
	}
	if d >= 4 {
		return 0
	}
	return float64(4-d) / 4
}

func handleTopZones(w http.ResponseWriter, r *http.Request) {
	hour, err := strconv.Atoi(r.URL.Query().Get("hour"))
	if err != nil || hour < 0 || hour > 23 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "hour must be an integer in [0,23]"})
		return
	}

	// Rotate and rescale the fixture by hour so every hour looks distinct.
	out := make([]zoneRecord, len(zones))
	for i := range zones {
		rec := zones[(i+hour)%len(zones)]
		rec.RiskScore = rec.RiskScore * (0.6 + 0.4*peak(hour, 18))
		out[i] = rec
	}
	writeJSON(w, http.StatusOK, out)
}

func handleZoneDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	for _, z := range zones {
		if z.ZoneID != id {
			continue
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"zone_name":         z.ZoneName,
			"borough":           z.Borough,
			"trips_per_hour":    z.TripCount / 24,
			"avg_trip_duration": 14.6,
			"exposure_index":    z.ExposureScore,
			"revenue_stability": 1 - z.RiskScore,
			"risk_score":        z.RiskScore,
		})
		return
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf("zone %s not found", id)})
}

func handleRevenue(w http.ResponseWriter, r *http.Request) {
	out := make([]map[string]any, 0, len(zones))
	for _, z := range zones {
		out = append(out, map[string]any{
			"zone_id":            z.ZoneID,
			"zone_name":          z.ZoneName,
			"revenue_volatility": z.RiskScore * 0.9,
			"stability_score":    1 - z.RiskScore*0.9,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func handleDriverRisk(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DriverID int64 `json:"driver_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.DriverID <= 0 || req.DriverID > 1000 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "driver not found"})
		return
	}

	// Deterministic per-driver fixture.
	score := float64(20 + req.DriverID%60)
	level := "Low"
	switch {
	case score >= 60:
		level = "High"
	case score >= 40:
		level = "Medium"
	}
	names := []string{"Alex", "Sam", "Jordan", "Casey", "Riley"}
	name := names[req.DriverID%int64(len(names))]
	trips := 150 + req.DriverID*3

	writeJSON(w, http.StatusOK, map[string]any{
		"personalized_message": fmt.Sprintf("Hi %s, here is your risk summary.", name),
		"risk_assessment": map[string]any{
			"composite_risk_score": score,
			"risk_level":           level,
		},
		"driver": map[string]any{"name": name},
		"operating_profile": map[string]any{
			"zones":                profileZones(req.DriverID),
			"hours":                []int{7, 8, 17, 18},
			"total_trips_analyzed": trips,
		},
		"calculation_logic": map[string]any{
			"methodology": "Weighted blend of zone risk and hour exposure",
		},
		"explanation": fmt.Sprintf("Your score reflects %s-hour operation in %s.", strings.ToLower(level), zones[req.DriverID%int64(len(zones))].Borough),
	})
}

func profileZones(driverID int64) []map[string]string {
	a := zones[driverID%int64(len(zones))]
	b := zones[(driverID+2)%int64(len(zones))]
	return []map[string]string{
		{"zone_name": a.ZoneName},
		{"zone_name": b.ZoneName},
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode response: %v", err)
	}
}
