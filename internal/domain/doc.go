// Package domain models per-zone trip-risk analytics for the fleet
// monitoring dashboard.
//
// # Data Source
//
// Zone metrics originate from the taxi-trip risk analytics API, which
// aggregates trip records into hourly per-zone figures: a continuous risk
// score, a trip count, and a volume-weighted exposure score. The dashboard
// engine consumes those payloads read-only; it never computes risk itself.
//
// # Risk Banding
//
// The continuous risk score is bucketed into four display bands with
// half-open lower bounds:
//
//	score ≤ 0        empty (no data)
//	0 < score < 0.4  low (green)
//	0.4 ≤ score < 0.7 medium (amber)
//	score ≥ 0.7      high (red)
//
// Exactly 0.4 is medium and exactly 0.7 is high. Scores are not clamped;
// values outside the usual 0..1 range still land in a band.
//
// Driver risk reports carry a separate, server-assigned discrete level
// ("Low", "Medium", "High", "Very High", matched case-insensitively).
// Its color mapping is deliberately independent of the score banding:
// one buckets a continuous metric, the other trusts a label the server
// already derived. Unrecognized labels map to a neutral gray, never an
// error. See [ColorForRisk] and [ColorForLevel].
//
// # Number Formatting
//
// Counts compact with K/M suffixes at one decimal place (1500 → "1.5K",
// 2500000 → "2.5M", 950 → "950"). Decimals render with exactly two places.
// Hour-of-day labels zero-pad to "HH:00". Non-finite inputs coerce to 0
// before formatting; formatters never fail. [FormatCount] is the single
// implementation shared by table cells and chart axis ticks so the two
// surfaces cannot drift.
//
// # Top-N Ranking
//
// [TopByRisk] selects the highest-risk records by repeated scan of the
// remaining pool, one scan per output slot. The comparison is
// strictly-greater, so when two records tie on risk score the one seen
// first in the input keeps its slot. Downstream tables render the result
// in selector order and never re-sort.
//
// # Gauge Encoding
//
// The driver report gauge maps a composite score onto a conic sweep:
// round(score/max * 360) degrees, max 80. Angles are not clamped; a sweep
// of 360° or more reads as a full circle at render time.
package domain
