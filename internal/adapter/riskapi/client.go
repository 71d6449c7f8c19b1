// Package riskapi is the HTTP client for the external trip-risk analytics
// API. It only consumes payload shapes; all ranking, formatting, and
// coloring happens in the domain package.
package riskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/trip-risk-dashboard/internal/domain"
	"github.com/couchcryptid/trip-risk-dashboard/internal/observability"
)

// Client fetches dashboard payloads from the analytics API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates an analytics API client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
		metrics: metrics,
	}
}

// Overview fetches the fleet-wide KPI figures.
func (c *Client) Overview(ctx context.Context) (domain.Overview, error) {
	var out domain.Overview
	if err := c.getJSON(ctx, "overview", "/api/overview", &out); err != nil {
		return domain.Overview{}, err
	}
	return out, nil
}

// HourlyDensity fetches the 24-hour trip density series.
func (c *Client) HourlyDensity(ctx context.Context) ([]domain.HourlyDensityPoint, error) {
	var out []domain.HourlyDensityPoint
	if err := c.getJSON(ctx, "hourly_density", "/api/hourly_density", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TopZones fetches the zone risk records for the given hour.
func (c *Client) TopZones(ctx context.Context, hour int) ([]domain.ZoneRiskRecord, error) {
	var out []domain.ZoneRiskRecord
	path := fmt.Sprintf("/api/top_zones?hour=%d", hour)
	if err := c.getJSON(ctx, "top_zones", path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ZoneDetail fetches the drill-down payload for one zone at the given hour.
func (c *Client) ZoneDetail(ctx context.Context, id domain.ZoneID, hour int) (domain.ZoneDetail, error) {
	var out domain.ZoneDetail
	path := fmt.Sprintf("/api/zone/%s?hour=%d", url.PathEscape(string(id)), hour)
	if err := c.getJSON(ctx, "zone_detail", path, &out); err != nil {
		return domain.ZoneDetail{}, err
	}
	return out, nil
}

// RevenueMetrics fetches the per-zone revenue volatility/stability pairs.
func (c *Client) RevenueMetrics(ctx context.Context) ([]domain.RevenueMetric, error) {
	var out []domain.RevenueMetric
	if err := c.getJSON(ctx, "revenue", "/api/revenue", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DriverRisk submits a driver identifier and returns the risk report. On a
// non-success status the returned FetchError carries the server's `error`
// message when the payload provided one.
func (c *Client) DriverRisk(ctx context.Context, driverID int64) (domain.DriverRiskReport, error) {
	const endpoint = "driver_risk"

	body, err := json.Marshal(map[string]int64{"driver_id": driverID})
	if err != nil {
		return domain.DriverRiskReport{}, fmt.Errorf("encode driver risk request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/driver-risk", bytes.NewReader(body))
	if err != nil {
		return domain.DriverRiskReport{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		ferr := &FetchError{Kind: FailureTransport, Endpoint: endpoint, Err: err}
		c.observe(endpoint, start, ferr)
		return domain.DriverRiskReport{}, ferr
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ferr := &FetchError{Kind: FailureStatus, Endpoint: endpoint, Status: resp.StatusCode}
		var errPayload struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errPayload); decodeErr == nil {
			ferr.ServerMessage = errPayload.Error
		}
		c.observe(endpoint, start, ferr)
		return domain.DriverRiskReport{}, ferr
	}

	var report domain.DriverRiskReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		ferr := &FetchError{Kind: FailureDecode, Endpoint: endpoint, Err: err}
		c.observe(endpoint, start, ferr)
		return domain.DriverRiskReport{}, ferr
	}

	c.observe(endpoint, start, nil)
	return report, nil
}

// getJSON fetches a GET endpoint and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		ferr := &FetchError{Kind: FailureTransport, Endpoint: endpoint, Err: err}
		c.observe(endpoint, start, ferr)
		return ferr
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ferr := &FetchError{Kind: FailureStatus, Endpoint: endpoint, Status: resp.StatusCode}
		c.observe(endpoint, start, ferr)
		return ferr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		ferr := &FetchError{Kind: FailureDecode, Endpoint: endpoint, Err: err}
		c.observe(endpoint, start, ferr)
		return ferr
	}

	c.observe(endpoint, start, nil)
	return nil
}

func (c *Client) observe(endpoint string, start time.Time, ferr *FetchError) {
	c.metrics.FetchDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if ferr == nil {
		c.metrics.FetchRequests.WithLabelValues(endpoint, "success").Inc()
		return
	}
	c.metrics.FetchRequests.WithLabelValues(endpoint, ferr.outcome()).Inc()
	c.logger.Warn("analytics fetch failed", "endpoint", endpoint, "kind", ferr.Kind, "error", ferr)
}
