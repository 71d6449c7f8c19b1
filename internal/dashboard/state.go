// Package dashboard owns the hour-scoped application state: the selected
// hour, the zone metrics cache, the chart slots, and the last-built view
// panels. Renderers receive state explicitly instead of reading ambient
// globals, which makes the stale-response ordering hazard testable.
package dashboard

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/couchcryptid/trip-risk-dashboard/internal/adapter/geo"
	"github.com/couchcryptid/trip-risk-dashboard/internal/cache"
	"github.com/couchcryptid/trip-risk-dashboard/internal/domain"
	"github.com/couchcryptid/trip-risk-dashboard/internal/observability"
	"github.com/couchcryptid/trip-risk-dashboard/internal/view"
)

// Fetcher is the analytics API surface the state controller depends on.
type Fetcher interface {
	Overview(ctx context.Context) (domain.Overview, error)
	HourlyDensity(ctx context.Context) ([]domain.HourlyDensityPoint, error)
	TopZones(ctx context.Context, hour int) ([]domain.ZoneRiskRecord, error)
	ZoneDetail(ctx context.Context, id domain.ZoneID, hour int) (domain.ZoneDetail, error)
	RevenueMetrics(ctx context.Context) ([]domain.RevenueMetric, error)
	DriverRisk(ctx context.Context, driverID int64) (domain.DriverRiskReport, error)
}

// Options configures a State.
type Options struct {
	InitialHour   int
	TopZonesLimit int

	// StaleGuard discards hour-scoped responses that resolve after the
	// hour has moved on. Disabling it reproduces the legacy behavior
	// where a slow response for an old hour overwrites the table.
	StaleGuard bool

	// HourScopedCache keys cached records by (hour, zone).
	HourScopedCache bool

	// BoundariesPath locates the optional zone boundary document.
	BoundariesPath string
}

// State is the dashboard application state.
type State struct {
	fetcher Fetcher
	logger  *slog.Logger
	metrics *observability.Metrics
	cache   *cache.ZoneMetrics

	density *ChartSlot
	revenue *ChartSlot

	staleGuard bool
	limit      int
	boundaries string

	mu            sync.Mutex
	currentHour   int
	kpi           view.KPIPanel
	kpiLoaded     bool
	topRows       []view.TableRow
	mapPanel      view.MapPanel
	lastRefreshed time.Time
	ready         bool
}

// New creates the dashboard state. Nothing is loaded until Start.
func New(fetcher Fetcher, logger *slog.Logger, metrics *observability.Metrics, opts Options) *State {
	return &State{
		fetcher:     fetcher,
		logger:      logger,
		metrics:     metrics,
		cache:       cache.NewZoneMetrics(opts.HourScopedCache),
		density:     NewChartSlot(SlotDensity, metrics),
		revenue:     NewChartSlot(SlotRevenue, metrics),
		staleGuard:  opts.StaleGuard,
		limit:       opts.TopZonesLimit,
		boundaries:  opts.BoundariesPath,
		currentHour: opts.InitialHour,
		mapPanel:    view.BuildMapPanel(nil),
	}
}

// Start performs the once-only initial loads: KPIs, both charts, zone
// boundaries, and the top zones for the initial hour. Every panel is
// best-effort; a failed load leaves that panel blank and the rest alive.
func (s *State) Start(ctx context.Context) {
	s.metrics.CurrentHour.Set(float64(s.CurrentHour()))

	s.loadOverview(ctx)
	s.loadDensitySeries(ctx)
	s.loadRevenueMetrics(ctx)
	s.loadBoundaries()
	s.reloadTopZones(ctx, s.CurrentHour())
}

// CurrentHour returns the hour the dashboard is scoped to.
func (s *State) CurrentHour() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentHour
}

// HourLabel returns the current hour formatted for display.
func (s *State) HourLabel() string {
	return domain.FormatHourLabel(s.CurrentHour())
}

// SetHour moves the dashboard to a new hour and reloads the hour-scoped
// zone ranking. No debouncing: every call issues its own request, tagged
// with the hour it was issued for.
func (s *State) SetHour(ctx context.Context, hour int) {
	s.mu.Lock()
	s.currentHour = hour
	s.mu.Unlock()

	s.metrics.HourChanges.Inc()
	s.metrics.CurrentHour.Set(float64(hour))

	s.reloadTopZones(ctx, hour)
}

// reloadTopZones fetches the ranking for issuedHour and rebuilds the table
// rows. With the stale guard on, a response whose issued hour no longer
// matches the current hour at resolution time is discarded, so a slow
// response for an abandoned hour can never overwrite a newer one.
func (s *State) reloadTopZones(ctx context.Context, issuedHour int) {
	records, err := s.fetcher.TopZones(ctx, issuedHour)
	if err != nil {
		// Best-effort: previous rows stay up. The client already counted
		// and logged the failure.
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.staleGuard && issuedHour != s.currentHour {
		s.metrics.StaleResponsesDiscarded.Inc()
		return
	}

	s.cache.UpsertAll(issuedHour, records)
	s.metrics.CacheEntries.Set(float64(s.cache.Len()))

	top := domain.TopByRisk(s.cache.All(issuedHour), s.limit)
	s.topRows = view.BuildTopZoneRows(top)
	s.lastRefreshed = clock.Now()

	if !s.ready {
		s.ready = true
		s.metrics.Ready.Set(1)
	}
}

// TopZoneRows returns the current table rows and when they were built.
func (s *State) TopZoneRows() ([]view.TableRow, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]view.TableRow, len(s.topRows))
	copy(rows, s.topRows)
	return rows, s.lastRefreshed
}

// KPI returns the overview panel; ok is false until the initial overview
// load has succeeded.
func (s *State) KPI() (view.KPIPanel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kpi, s.kpiLoaded
}

// MapPanel reports the zone boundary layer state.
func (s *State) MapPanel() view.MapPanel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mapPanel
}

// DensitySVG returns the rendered density chart, nil before first render.
func (s *State) DensitySVG() []byte { return s.density.SVG() }

// RevenueSVG returns the rendered revenue chart, nil before first render.
func (s *State) RevenueSVG() []byte { return s.revenue.SVG() }

// ZoneDetail fetches and renders the drill-down panel for one zone at the
// current hour.
func (s *State) ZoneDetail(ctx context.Context, id domain.ZoneID) (view.DetailPanel, error) {
	detail, err := s.fetcher.ZoneDetail(ctx, id, s.CurrentHour())
	if err != nil {
		return view.DetailPanel{}, err
	}
	return view.BuildDetailPanel(id, detail), nil
}

// SubmitDriverRisk submits a driver identifier and renders the report
// panel. Errors propagate so the caller can surface them in the error
// region (view.DriverErrorMessage).
func (s *State) SubmitDriverRisk(ctx context.Context, driverID int64) (view.DriverPanel, error) {
	report, err := s.fetcher.DriverRisk(ctx, driverID)
	if err != nil {
		return view.DriverPanel{}, err
	}
	return view.BuildDriverPanel(report), nil
}

// CheckReadiness reports ready once the initial top-zones load has
// succeeded.
func (s *State) CheckReadiness(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return errors.New("initial top-zones load has not completed")
	}
	return nil
}

func (s *State) loadOverview(ctx context.Context) {
	overview, err := s.fetcher.Overview(ctx)
	if err != nil {
		return
	}
	s.mu.Lock()
	s.kpi = view.BuildKPIPanel(overview)
	s.kpiLoaded = true
	s.mu.Unlock()
}

func (s *State) loadDensitySeries(ctx context.Context) {
	points, err := s.fetcher.HourlyDensity(ctx)
	if err != nil || len(points) == 0 {
		return
	}
	graph := view.DensityChart(points)
	if err := s.density.Replace(func(w io.Writer) error {
		return graph.Render(chart.SVG, w)
	}); err != nil {
		s.logger.Warn("density chart render failed", "error", err)
	}
}

func (s *State) loadRevenueMetrics(ctx context.Context) {
	metrics, err := s.fetcher.RevenueMetrics(ctx)
	if err != nil || len(metrics) == 0 {
		return
	}
	graph := view.RevenueChart(metrics)
	if err := s.revenue.Replace(func(w io.Writer) error {
		return graph.Render(chart.SVG, w)
	}); err != nil {
		s.logger.Warn("revenue chart render failed", "error", err)
	}
}

func (s *State) loadBoundaries() {
	if s.boundaries == "" {
		return
	}
	fc, err := geo.LoadBoundaries(s.boundaries)
	if err != nil {
		s.logger.Warn("zone boundaries unavailable", "path", s.boundaries, "error", err)
		fc = nil
	}
	s.mu.Lock()
	s.mapPanel = view.BuildMapPanel(fc)
	s.mu.Unlock()
}
