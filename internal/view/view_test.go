package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/trip-risk-dashboard/internal/adapter/geo"
	"github.com/couchcryptid/trip-risk-dashboard/internal/domain"
)

func TestBuildKPIPanel(t *testing.T) {
	panel := BuildKPIPanel(domain.Overview{
		TotalTrips:             1_250_000,
		HighRiskZonesCount:     14,
		PeakExposureHour:       18,
		RevenueVolatilityScore: 0.3749,
	})

	assert.Equal(t, "1.3M", panel.TotalTrips)
	assert.Equal(t, "14", panel.HighRiskZones)
	assert.Equal(t, "18:00", panel.PeakHour)
	assert.Equal(t, "0.37", panel.RevenueVolatility)
}

func TestBuildKPIPanel_ZeroValue(t *testing.T) {
	panel := BuildKPIPanel(domain.Overview{})

	assert.Equal(t, "0", panel.TotalTrips)
	assert.Equal(t, "00:00", panel.PeakHour)
	assert.Equal(t, "0.00", panel.RevenueVolatility)
}

func TestBuildTopZoneRows(t *testing.T) {
	records := []domain.ZoneRiskRecord{
		{ZoneID: "161", ZoneName: "Midtown Center", Borough: "Manhattan", RiskScore: 0.81, TripCount: 5400, ExposureScore: 0.66},
		{ZoneID: "74", RiskScore: 0.4, TripCount: 1500},
	}

	rows := BuildTopZoneRows(records)

	require.Len(t, rows, 2)

	assert.Equal(t, "161", rows[0].ZoneID)
	assert.Equal(t, "Midtown Center", rows[0].Zone)
	assert.Equal(t, "Manhattan", rows[0].Borough)
	assert.Equal(t, "0.81", rows[0].Risk)
	assert.Equal(t, domain.RiskColorHigh, rows[0].RiskColor)
	assert.Equal(t, "5.4K", rows[0].Trips)
	assert.Equal(t, "0.66", rows[0].Exposure)

	// Missing name falls back to the zone ID; 0.4 sits in the medium band.
	assert.Equal(t, "74", rows[1].Zone)
	assert.Equal(t, domain.RiskColorMedium, rows[1].RiskColor)
	assert.Equal(t, "1.5K", rows[1].Trips)
}

func TestBuildTopZoneRows_PreservesOrder(t *testing.T) {
	// Rows render in the order given, even when it is not sorted by risk.
	records := []domain.ZoneRiskRecord{
		{ZoneID: "A", RiskScore: 0.1},
		{ZoneID: "B", RiskScore: 0.9},
	}

	rows := BuildTopZoneRows(records)

	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].ZoneID)
	assert.Equal(t, "B", rows[1].ZoneID)
}

func TestBuildDetailPanel(t *testing.T) {
	panel := BuildDetailPanel("161", domain.ZoneDetail{
		ZoneName:         "Midtown Center",
		Borough:          "Manhattan",
		TripsPerHour:     430,
		AvgTripDuration:  14.618,
		ExposureIndex:    0.71,
		RevenueStability: 0.54,
		RiskScore:        0.81,
	})

	assert.Equal(t, "Midtown Center", panel.ZoneName)
	assert.Equal(t, "430", panel.TripsPerHour)
	assert.Equal(t, "14.62", panel.AvgTripDuration)
	assert.Equal(t, "0.81", panel.RiskScore)
	assert.Equal(t, domain.RiskColorHigh, panel.RiskColor)
}

func TestBuildDetailPanel_NameFallsBackToID(t *testing.T) {
	panel := BuildDetailPanel("74", domain.ZoneDetail{})
	assert.Equal(t, "74", panel.ZoneName)
}

func TestBuildMapPanel(t *testing.T) {
	t.Run("loaded boundaries", func(t *testing.T) {
		panel := BuildMapPanel(&geo.FeatureCollection{
			Type:     "FeatureCollection",
			Features: []geo.Feature{{}, {}},
		})
		assert.True(t, panel.BoundariesLoaded)
		assert.Equal(t, 2, panel.ZoneCount)
		assert.Empty(t, panel.FallbackNotice)
	})

	t.Run("missing boundaries", func(t *testing.T) {
		panel := BuildMapPanel(nil)
		assert.False(t, panel.BoundariesLoaded)
		assert.Equal(t, "Zone boundaries unavailable", panel.FallbackNotice)
	})
}
