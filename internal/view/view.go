// Package view projects domain records into display-ready panels: every
// number is formatted and every color resolved here, so consumers (HTTP
// handlers, the CLI) only place strings.
package view

import (
	"github.com/couchcryptid/trip-risk-dashboard/internal/adapter/geo"
	"github.com/couchcryptid/trip-risk-dashboard/internal/domain"
)

// KPIPanel holds the four overview figures shown across the dashboard top.
type KPIPanel struct {
	TotalTrips        string `json:"total_trips"`
	HighRiskZones     string `json:"high_risk_zones"`
	PeakHour          string `json:"peak_hour"`
	RevenueVolatility string `json:"revenue_volatility"`
}

// BuildKPIPanel formats the overview payload.
func BuildKPIPanel(o domain.Overview) KPIPanel {
	return KPIPanel{
		TotalTrips:        domain.FormatCount(float64(o.TotalTrips)),
		HighRiskZones:     domain.FormatCount(float64(o.HighRiskZonesCount)),
		PeakHour:          domain.FormatHourLabel(o.PeakExposureHour),
		RevenueVolatility: domain.FormatDecimal(o.RevenueVolatilityScore),
	}
}

// TableRow is one row of the top-zones table.
type TableRow struct {
	ZoneID    string `json:"zone_id"`
	Zone      string `json:"zone"`
	Borough   string `json:"borough"`
	Risk      string `json:"risk"`
	RiskColor string `json:"risk_color"`
	Trips     string `json:"trips"`
	Exposure  string `json:"exposure"`
}

// BuildTopZoneRows formats records into table rows, preserving the given
// order. Ordering is the selector's responsibility; rows are never
// re-sorted here.
func BuildTopZoneRows(records []domain.ZoneRiskRecord) []TableRow {
	rows := make([]TableRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, TableRow{
			ZoneID:    string(r.ZoneID),
			Zone:      r.DisplayName(),
			Borough:   r.Borough,
			Risk:      domain.FormatDecimal(r.RiskScore),
			RiskColor: domain.ColorForRisk(r.RiskScore),
			Trips:     domain.FormatCount(float64(r.TripCount)),
			Exposure:  domain.FormatDecimal(r.ExposureScore),
		})
	}
	return rows
}

// DetailPanel is the per-zone drill-down.
type DetailPanel struct {
	ZoneName         string `json:"zone_name"`
	Borough          string `json:"borough"`
	TripsPerHour     string `json:"trips_per_hour"`
	AvgTripDuration  string `json:"avg_trip_duration"`
	ExposureIndex    string `json:"exposure_index"`
	RevenueStability string `json:"revenue_stability"`
	RiskScore        string `json:"risk_score"`
	RiskColor        string `json:"risk_color"`
}

// BuildDetailPanel formats a zone detail payload, falling back to the zone
// ID when the API omitted a name.
func BuildDetailPanel(id domain.ZoneID, d domain.ZoneDetail) DetailPanel {
	name := d.ZoneName
	if name == "" {
		name = string(id)
	}
	return DetailPanel{
		ZoneName:         name,
		Borough:          d.Borough,
		TripsPerHour:     domain.FormatCount(float64(d.TripsPerHour)),
		AvgTripDuration:  domain.FormatDecimal(d.AvgTripDuration),
		ExposureIndex:    domain.FormatDecimal(d.ExposureIndex),
		RevenueStability: domain.FormatDecimal(d.RevenueStability),
		RiskScore:        domain.FormatDecimal(d.RiskScore),
		RiskColor:        domain.ColorForRisk(d.RiskScore),
	}
}

// MapPanel describes the zone boundary layer state.
type MapPanel struct {
	BoundariesLoaded bool   `json:"boundaries_loaded"`
	ZoneCount        int    `json:"zone_count"`
	FallbackNotice   string `json:"fallback_notice,omitempty"`
}

// BuildMapPanel reports whether boundaries loaded; a nil collection yields
// the visible fallback notice.
func BuildMapPanel(fc *geo.FeatureCollection) MapPanel {
	if fc == nil {
		return MapPanel{FallbackNotice: "Zone boundaries unavailable"}
	}
	return MapPanel{
		BoundariesLoaded: true,
		ZoneCount:        len(fc.Features),
	}
}
