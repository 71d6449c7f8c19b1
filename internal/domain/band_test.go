package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorForRisk(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected string
	}{
		{"zero is empty", 0, RiskColorEmpty},
		{"negative is empty", -0.3, RiskColorEmpty},
		{"low band", 0.2, RiskColorLow},
		{"just under medium boundary", 0.39999, RiskColorLow},
		{"exactly 0.4 is medium", 0.4, RiskColorMedium},
		{"mid medium", 0.55, RiskColorMedium},
		{"just under high boundary", 0.69999, RiskColorMedium},
		{"exactly 0.7 is high", 0.7, RiskColorHigh},
		{"above the usual range", 1.8, RiskColorHigh},
		{"NaN is empty", math.NaN(), RiskColorEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ColorForRisk(tt.score))
		})
	}
}

func TestColorForLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected string
	}{
		{"low", "Low", LevelColorLow},
		{"medium lowercase", "medium", LevelColorMedium},
		{"high uppercase", "HIGH", LevelColorHigh},
		{"very high mixed case", "Very High", LevelColorVeryHigh},
		{"empty", "", LevelColorUnknown},
		{"unrecognized", "catastrophic", LevelColorUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ColorForLevel(tt.level))
		})
	}
}

func TestColorForLevel_IndependentFromScoreBanding(t *testing.T) {
	// "High" as a server label is orange, while a high score band is red.
	assert.NotEqual(t, ColorForRisk(0.9), ColorForLevel("High"))
}

func TestGaugeAngle(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		maxScore float64
		expected int
	}{
		{"zero score", 0, DefaultGaugeMax, 0},
		{"half sweep", 40, DefaultGaugeMax, 180},
		{"full sweep", 80, DefaultGaugeMax, 360},
		{"rounds to nearest degree", 10, DefaultGaugeMax, 45},
		{"beyond max is not clamped", 100, DefaultGaugeMax, 450},
		{"NaN score", math.NaN(), DefaultGaugeMax, 0},
		{"zero max", 50, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GaugeAngle(tt.score, tt.maxScore))
		})
	}
}
