package view

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/couchcryptid/trip-risk-dashboard/internal/adapter/riskapi"
	"github.com/couchcryptid/trip-risk-dashboard/internal/domain"
)

// DriverPanel is the rendered driver risk report.
type DriverPanel struct {
	Title   string `json:"title"`
	Message string `json:"message"`

	Level      string `json:"level"`
	LevelText  string `json:"level_text"`
	LevelColor string `json:"level_color"`
	Score      string `json:"score"`

	// GaugeDegrees is the conic sweep for the score ring; sweeps of 360 or
	// more read as a full circle.
	GaugeDegrees int  `json:"gauge_degrees"`
	GaugeFull    bool `json:"gauge_full"`

	Zones       string `json:"zones"`
	Hours       string `json:"hours"`
	Trips       string `json:"trips"`
	Methodology string `json:"methodology"`
	Explanation string `json:"explanation"`
}

// BuildDriverPanel formats a driver risk report for display.
func BuildDriverPanel(r domain.DriverRiskReport) DriverPanel {
	level := r.RiskAssessment.RiskLevel
	if level == "" {
		level = "Unknown"
	}

	name := r.Driver.Name
	if name == "" {
		name = "Driver"
	}

	score := r.RiskAssessment.CompositeRiskScore
	if math.IsNaN(score) || math.IsInf(score, 0) {
		score = 0
	}
	deg := domain.GaugeAngle(score, domain.DefaultGaugeMax)

	methodology := r.CalculationLogic.Methodology
	if methodology == "" {
		methodology = "Based on your areas and work hours"
	}

	return DriverPanel{
		Title:        "Risk Report for " + name,
		Message:      r.PersonalizedMessage,
		Level:        level,
		LevelText:    level + " Risk",
		LevelColor:   domain.ColorForLevel(level),
		Score:        fmt.Sprintf("%.1f", score),
		GaugeDegrees: deg,
		GaugeFull:    deg >= 360,
		Zones:        joinZones(r.OperatingProfile.Zones),
		Hours:        joinHours(r.OperatingProfile.Hours),
		Trips:        tripsText(r.OperatingProfile.TotalTripsAnalyzed),
		Methodology:  methodology,
		Explanation:  r.Explanation,
	}
}

func joinZones(zones []domain.ProfileZone) string {
	if len(zones) == 0 {
		return "—"
	}
	names := make([]string, 0, len(zones))
	for _, z := range zones {
		names = append(names, z.ZoneName)
	}
	return strings.Join(names, ", ")
}

func joinHours(hours []int) string {
	if len(hours) == 0 {
		return "—"
	}
	labels := make([]string, 0, len(hours))
	for _, h := range hours {
		labels = append(labels, domain.FormatHourLabel(h))
	}
	return strings.Join(labels, ", ")
}

func tripsText(n *int64) string {
	if n == nil {
		return "—"
	}
	return strconv.FormatInt(*n, 10)
}

// DriverErrorMessage renders a driver risk submission failure for the
// error region. Server-provided messages pass through verbatim; a bare
// non-success status gets the generic status-coded text; anything that
// never produced a usable response reads as unreachable, with the
// underlying failure included.
func DriverErrorMessage(err error) string {
	var ferr *riskapi.FetchError
	if errors.As(err, &ferr) {
		switch ferr.Kind {
		case riskapi.FailureStatus:
			if ferr.ServerMessage != "" {
				return ferr.ServerMessage
			}
			return fmt.Sprintf("Something went wrong (%d)", ferr.Status)
		default:
			return fmt.Sprintf("Could not reach the server. Is it running? (%v)", ferr.Err)
		}
	}
	return fmt.Sprintf("Could not reach the server. Is it running? (%v)", err)
}
