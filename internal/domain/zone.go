package domain

import (
	"encoding/json"
	"fmt"
)

// ZoneID identifies a zone across the analytics API. Upstream payloads are
// inconsistent about the JSON type (some endpoints emit numbers, some
// strings), so it normalizes both to a string.
type ZoneID string

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (z *ZoneID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*z = ZoneID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("zone_id must be a string or number: %w", err)
	}
	*z = ZoneID(n.String())
	return nil
}

// ZoneRiskRecord is one row of zone risk data for a given hour.
type ZoneRiskRecord struct {
	ZoneID        ZoneID  `json:"zone_id"`
	ZoneName      string  `json:"zone_name,omitempty"`
	Borough       string  `json:"borough,omitempty"`
	RiskScore     float64 `json:"risk_score"`
	TripCount     int64   `json:"trip_count"`
	ExposureScore float64 `json:"exposure_score"`
}

// DisplayName returns the zone name, falling back to the zone ID when the
// API omitted one.
func (r ZoneRiskRecord) DisplayName() string {
	if r.ZoneName != "" {
		return r.ZoneName
	}
	return string(r.ZoneID)
}

// Overview holds the fleet-wide KPI figures loaded once at startup.
type Overview struct {
	TotalTrips            int64   `json:"total_trips"`
	HighRiskZonesCount    int64   `json:"high_risk_zones_count"`
	PeakExposureHour      int     `json:"peak_exposure_hour"`
	RevenueVolatilityScore float64 `json:"revenue_volatility_score"`
}

// HourlyDensityPoint is one point of the 24-hour trip density series.
type HourlyDensityPoint struct {
	Hour       int   `json:"hour"`
	TotalTrips int64 `json:"total_trips"`
}

// ZoneDetail is the per-zone drill-down payload, scoped to a single hour.
type ZoneDetail struct {
	ZoneName         string  `json:"zone_name"`
	Borough          string  `json:"borough"`
	TripsPerHour     int64   `json:"trips_per_hour"`
	AvgTripDuration  float64 `json:"avg_trip_duration"`
	ExposureIndex    float64 `json:"exposure_index"`
	RevenueStability float64 `json:"revenue_stability"`
	RiskScore        float64 `json:"risk_score"`
}

// RevenueMetric is one zone's revenue volatility/stability pair.
type RevenueMetric struct {
	ZoneID            ZoneID  `json:"zone_id"`
	ZoneName          string  `json:"zone_name"`
	RevenueVolatility float64 `json:"revenue_volatility"`
	StabilityScore    float64 `json:"stability_score"`
}

// DisplayName returns the zone name, falling back to the zone ID.
func (m RevenueMetric) DisplayName() string {
	if m.ZoneName != "" {
		return m.ZoneName
	}
	return string(m.ZoneID)
}
