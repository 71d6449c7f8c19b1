package domain

import "math"

// TopByRisk returns the n highest-risk records, ordered by risk score
// descending. It scans the remaining pool once per output slot and picks
// the record with the strictly greatest score, so ties resolve to the
// record seen first in the input; a later record with an equal score
// never displaces an earlier one. With fewer than n candidates every
// record is returned, fully ordered, no padding. The input slice is left
// untouched.
func TopByRisk(records []ZoneRiskRecord, n int) []ZoneRiskRecord {
	if n <= 0 || len(records) == 0 {
		return nil
	}

	pool := make([]ZoneRiskRecord, len(records))
	copy(pool, records)

	out := make([]ZoneRiskRecord, 0, min(n, len(pool)))
	for len(pool) > 0 && len(out) < n {
		best := 0
		for i := 1; i < len(pool); i++ {
			if comparableRisk(pool[i]) > comparableRisk(pool[best]) {
				best = i
			}
		}
		out = append(out, pool[best])
		pool = append(pool[:best], pool[best+1:]...)
	}
	return out
}

// comparableRisk treats a NaN score as 0 for ranking without mutating the
// stored record.
func comparableRisk(r ZoneRiskRecord) float64 {
	if math.IsNaN(r.RiskScore) {
		return 0
	}
	return r.RiskScore
}
