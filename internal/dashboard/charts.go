package dashboard

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/couchcryptid/trip-risk-dashboard/internal/observability"
)

// Chart slot names, used as the metrics label.
const (
	SlotDensity = "density"
	SlotRevenue = "revenue"
)

// ChartSlot owns exactly one rendered chart per canvas slot. Replace is
// the only way to change it: the new image is rendered to completion and
// then swapped in whole, so repeated reloads can never accumulate
// overlapping charts, and a failed render leaves the previous image
// intact. Replacement is serialized per slot; overlapping reloads for the
// same slot queue rather than interleave.
type ChartSlot struct {
	name    string
	metrics *observability.Metrics

	mu  sync.Mutex
	svg []byte
}

// NewChartSlot creates an empty slot.
func NewChartSlot(name string, metrics *observability.Metrics) *ChartSlot {
	return &ChartSlot{
		name:    name,
		metrics: metrics,
	}
}

// Replace renders a new chart image and swaps it in.
func (s *ChartSlot) Replace(render func(io.Writer) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	s.svg = buf.Bytes()
	s.metrics.ChartRenderDuration.WithLabelValues(s.name).Observe(time.Since(start).Seconds())
	return nil
}

// SVG returns the current image, or nil when nothing has rendered yet.
func (s *ChartSlot) SVG() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.svg
}
