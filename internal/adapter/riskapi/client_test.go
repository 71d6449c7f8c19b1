package riskapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/trip-risk-dashboard/internal/domain"
	"github.com/couchcryptid/trip-risk-dashboard/internal/observability"
)

const (
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

func testClient(baseURL string) *Client {
	return NewClient(
		baseURL,
		5*time.Second,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		observability.NewMetricsForTesting(),
	)
}

func TestClient_Overview(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/overview", r.URL.Path)
		w.Header().Set(headerContentType, contentTypeJSON)
		_, err := w.Write([]byte(`{"total_trips":1250000,"high_risk_zones_count":14,"peak_exposure_hour":18,"revenue_volatility_score":0.37}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	overview, err := testClient(srv.URL).Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1250000), overview.TotalTrips)
	assert.Equal(t, int64(14), overview.HighRiskZonesCount)
	assert.Equal(t, 18, overview.PeakExposureHour)
	assert.Equal(t, 0.37, overview.RevenueVolatilityScore)
}

func TestClient_TopZones(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/top_zones", r.URL.Path)
		assert.Equal(t, "17", r.URL.Query().Get("hour"))
		w.Header().Set(headerContentType, contentTypeJSON)
		// zone_id arrives as a number from this endpoint.
		_, err := w.Write([]byte(`[{"zone_id":161,"zone_name":"Midtown Center","borough":"Manhattan","risk_score":0.81,"trip_count":5400,"exposure_score":0.66}]`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	records, err := testClient(srv.URL).TopZones(context.Background(), 17)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, domain.ZoneID("161"), records[0].ZoneID)
	assert.Equal(t, "Midtown Center", records[0].ZoneName)
	assert.Equal(t, 0.81, records[0].RiskScore)
	assert.Equal(t, int64(5400), records[0].TripCount)
}

func TestClient_ZoneDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/zone/161", r.URL.Path)
		assert.Equal(t, "9", r.URL.Query().Get("hour"))
		w.Header().Set(headerContentType, contentTypeJSON)
		_, err := w.Write([]byte(`{"zone_name":"Midtown Center","borough":"Manhattan","trips_per_hour":430,"avg_trip_duration":14.6,"exposure_index":0.71,"revenue_stability":0.54,"risk_score":0.81}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	detail, err := testClient(srv.URL).ZoneDetail(context.Background(), "161", 9)
	require.NoError(t, err)

	assert.Equal(t, "Midtown Center", detail.ZoneName)
	assert.Equal(t, int64(430), detail.TripsPerHour)
	assert.Equal(t, 0.81, detail.RiskScore)
}

func TestClient_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Overview(context.Background())
	require.Error(t, err)

	var ferr *FetchError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, FailureStatus, ferr.Kind)
	assert.Equal(t, http.StatusBadGateway, ferr.Status)
	assert.Equal(t, "overview", ferr.Endpoint)
}

func TestClient_TransportError(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := testClient(srv.URL).HourlyDensity(context.Background())
	require.Error(t, err)

	var ferr *FetchError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, FailureTransport, ferr.Kind)
	assert.Error(t, errors.Unwrap(ferr))
}

func TestClient_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).RevenueMetrics(context.Background())
	require.Error(t, err)

	var ferr *FetchError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, FailureDecode, ferr.Kind)
}

func TestClient_DriverRisk_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/driver-risk", r.URL.Path)

		var body map[string]int64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, int64(42), body["driver_id"])

		w.Header().Set(headerContentType, contentTypeJSON)
		_, err := w.Write([]byte(`{"driver":{"name":"Alex"},"risk_assessment":{"composite_risk_score":55.2,"risk_level":"High"}}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	report, err := testClient(srv.URL).DriverRisk(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, "Alex", report.Driver.Name)
	assert.Equal(t, "High", report.RiskAssessment.RiskLevel)
}

func TestClient_DriverRisk_ServerErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(headerContentType, contentTypeJSON)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"driver not found"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).DriverRisk(context.Background(), 999)
	require.Error(t, err)

	var ferr *FetchError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, FailureStatus, ferr.Kind)
	assert.Equal(t, http.StatusNotFound, ferr.Status)
	assert.Equal(t, "driver not found", ferr.ServerMessage)
}

func TestClient_DriverRisk_StatusWithoutPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).DriverRisk(context.Background(), 1)
	require.Error(t, err)

	var ferr *FetchError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, http.StatusInternalServerError, ferr.Status)
	assert.Empty(t, ferr.ServerMessage)
}
