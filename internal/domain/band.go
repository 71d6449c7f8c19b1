package domain

import (
	"math"
	"strings"
)

// Color tokens for the continuous risk-score bands (zone table, map fills).
const (
	RiskColorEmpty  = "#0f172a"
	RiskColorLow    = "#22c55e"
	RiskColorMedium = "#eab308"
	RiskColorHigh   = "#ef4444"
)

// Color tokens for the server-assigned discrete risk levels (driver report
// badge and gauge). Note "High" here is orange, not the score-band red.
const (
	LevelColorLow      = "#22c55e"
	LevelColorMedium   = "#eab308"
	LevelColorHigh     = "#f97316"
	LevelColorVeryHigh = "#ef4444"
	LevelColorUnknown  = "#9ca3af"
)

// DefaultGaugeMax is the composite score that corresponds to a full gauge
// sweep.
const DefaultGaugeMax = 80.0

// ColorForRisk buckets a continuous risk score into a display color.
// Bounds are half-open on the lower side: exactly 0.4 is medium, exactly
// 0.7 is high. Scores are not clamped.
func ColorForRisk(score float64) string {
	score = finiteOrZero(score)
	switch {
	case score <= 0:
		return RiskColorEmpty
	case score < 0.4:
		return RiskColorLow
	case score < 0.7:
		return RiskColorMedium
	default:
		return RiskColorHigh
	}
}

// ColorForLevel maps a server-assigned risk level label to a display color.
// Matching is case-insensitive; anything unrecognized (including empty)
// renders neutral gray. Kept separate from ColorForRisk: one buckets a
// continuous score, the other trusts a label the server already derived.
func ColorForLevel(level string) string {
	switch strings.ToLower(level) {
	case "low":
		return LevelColorLow
	case "medium":
		return LevelColorMedium
	case "high":
		return LevelColorHigh
	case "very high":
		return LevelColorVeryHigh
	default:
		return LevelColorUnknown
	}
}

// GaugeAngle converts a composite score into the sweep angle of a circular
// gauge: round(score/maxScore * 360). The angle is not clamped; sweeps of
// 360° or more read as a full circle at render time.
func GaugeAngle(score, maxScore float64) int {
	score = finiteOrZero(score)
	if maxScore == 0 {
		return 0
	}
	return int(math.Round(score / maxScore * 360))
}
