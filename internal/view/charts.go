package view

import (
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/couchcryptid/trip-risk-dashboard/internal/domain"
)

// Chart palette, matching the risk banding accents.
var (
	densityStroke   = drawing.ColorFromHex("38bdf8")
	volatilityColor = drawing.ColorFromHex("f87171")
	stabilityColor  = drawing.ColorFromHex("34d399")
)

// DensityChart builds the 24-hour trip density line chart. Axis ticks go
// through the shared formatters: hours as "HH:00", counts compacted.
func DensityChart(points []domain.HourlyDensityPoint) chart.Chart {
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		xs = append(xs, float64(p.Hour))
		ys = append(ys, float64(p.TotalTrips))
	}

	// go-chart needs at least two X values to render a series.
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}

	return chart.Chart{
		Height: 280,
		XAxis: chart.XAxis{
			ValueFormatter: hourTick,
		},
		YAxis: chart.YAxis{
			ValueFormatter: countTick,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Trips",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: densityStroke,
					StrokeWidth: 2,
					FillColor:   densityStroke.WithAlpha(26),
				},
			},
		},
	}
}

// RevenueChart builds the per-zone volatility/stability bar chart: two
// bars per zone, volatility red, stability green.
func RevenueChart(metrics []domain.RevenueMetric) chart.BarChart {
	bars := make([]chart.Value, 0, len(metrics)*2)
	for _, m := range metrics {
		bars = append(bars,
			chart.Value{
				Label: m.DisplayName(),
				Value: finite(m.RevenueVolatility),
				Style: chart.Style{FillColor: volatilityColor, StrokeColor: volatilityColor},
			},
			chart.Value{
				Value: finite(m.StabilityScore),
				Style: chart.Style{FillColor: stabilityColor, StrokeColor: stabilityColor},
			},
		)
	}

	return chart.BarChart{
		Height:   280,
		BarWidth: 24,
		YAxis: chart.YAxis{
			ValueFormatter: countTick,
		},
		Bars: bars,
	}
}

func hourTick(v any) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	return domain.FormatHourLabel(int(math.Round(f)))
}

func countTick(v any) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	return domain.FormatCount(f)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
