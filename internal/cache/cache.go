// Package cache holds the keyed store of zone risk records shared by every
// view that receives zone data.
package cache

import (
	"sync"

	"github.com/couchcryptid/trip-risk-dashboard/internal/domain"
)

// ZoneMetrics is the zone risk record cache. Records are upserted by zone
// ID with latest-write-wins semantics, never evicted, and live for the
// process. Iteration order is unspecified; consumers re-rank with
// domain.TopByRisk.
//
// In hour-scoped mode the key is (hour, zone ID), so a record loaded for
// hour 17 can never surface while hour 9 is selected. Legacy mode keys by
// zone ID alone, reproducing the original dashboard behavior where records
// from a previous hour stay visible until overwritten.
type ZoneMetrics struct {
	mu         sync.RWMutex
	hourScoped bool
	entries    map[recordKey]domain.ZoneRiskRecord
}

type recordKey struct {
	hour int
	zone domain.ZoneID
}

// NewZoneMetrics creates an empty cache. hourScoped selects the keying
// policy.
func NewZoneMetrics(hourScoped bool) *ZoneMetrics {
	return &ZoneMetrics{
		hourScoped: hourScoped,
		entries:    make(map[recordKey]domain.ZoneRiskRecord),
	}
}

// Upsert inserts or overwrites the record for its zone ID at the given
// hour. The hour is ignored when the cache is not hour-scoped.
func (c *ZoneMetrics) Upsert(hour int, rec domain.ZoneRiskRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[c.key(hour, rec.ZoneID)] = rec
}

// UpsertAll upserts every record in the slice, typically one top-zones
// response.
func (c *ZoneMetrics) UpsertAll(hour int, recs []domain.ZoneRiskRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, rec := range recs {
		c.entries[c.key(hour, rec.ZoneID)] = rec
	}
}

// All returns the current records for the given hour, in unspecified
// order. In legacy mode every cached record is returned regardless of the
// hour it arrived for.
func (c *ZoneMetrics) All(hour int) []domain.ZoneRiskRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.ZoneRiskRecord, 0, len(c.entries))
	for k, rec := range c.entries {
		if c.hourScoped && k.hour != hour {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Len reports the total number of cached records across all hours.
func (c *ZoneMetrics) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *ZoneMetrics) key(hour int, zone domain.ZoneID) recordKey {
	if !c.hourScoped {
		hour = 0
	}
	return recordKey{hour: hour, zone: zone}
}
