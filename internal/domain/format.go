package domain

import (
	"fmt"
	"math"
	"strconv"
)

// FormatHourLabel renders an hour-of-day as a zero-padded "HH:00" label.
// Callers guarantee the 0–23 range; out-of-range values are not validated.
func FormatHourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// FormatCount compacts a count for display: millions as "x.xM", thousands
// as "x.xK", anything smaller as-is. This is the single implementation
// behind both table cells and chart axis ticks.
func FormatCount(v float64) string {
	v = finiteOrZero(v)
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.1fK", v/1_000)
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// FormatDecimal renders a value with exactly two decimal places.
func FormatDecimal(v float64) string {
	return fmt.Sprintf("%.2f", finiteOrZero(v))
}

// finiteOrZero coerces NaN and ±Inf to 0 so formatters never emit a
// non-numeric-looking string.
func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
