package domain

// DriverRiskReport is the analytics API response to a driver risk
// submission.
type DriverRiskReport struct {
	PersonalizedMessage string           `json:"personalized_message"`
	RiskAssessment      RiskAssessment   `json:"risk_assessment"`
	Driver              DriverInfo       `json:"driver"`
	OperatingProfile    OperatingProfile `json:"operating_profile"`
	CalculationLogic    CalculationLogic `json:"calculation_logic"`
	Explanation         string           `json:"explanation"`
}

// RiskAssessment carries the composite score and the server-assigned
// discrete risk level. The level is matched case-insensitively when mapped
// to a color; unrecognized values render neutral gray.
type RiskAssessment struct {
	CompositeRiskScore float64 `json:"composite_risk_score"`
	RiskLevel          string  `json:"risk_level"`
}

// DriverInfo names the driver the report was generated for.
type DriverInfo struct {
	Name string `json:"name"`
}

// OperatingProfile summarizes where and when the driver operates.
// TotalTripsAnalyzed is a pointer because the UI distinguishes "0 trips"
// from "not reported".
type OperatingProfile struct {
	Zones              []ProfileZone `json:"zones"`
	Hours              []int         `json:"hours"`
	TotalTripsAnalyzed *int64        `json:"total_trips_analyzed"`
}

// ProfileZone is one zone in a driver's operating profile.
type ProfileZone struct {
	ZoneName string `json:"zone_name"`
}

// CalculationLogic describes how the score was derived.
type CalculationLogic struct {
	Methodology string `json:"methodology"`
}
