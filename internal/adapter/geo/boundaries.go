// Package geo loads the static zone boundary document the map panel draws
// from. The document is optional: when it is absent or malformed the map
// panel degrades to a visible fallback notice instead of failing the page.
package geo

import (
	"encoding/json"
	"fmt"
	"os"
)

// FeatureCollection is the top-level GeoJSON document of zone polygons.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is one zone boundary.
type Feature struct {
	Type       string     `json:"type"`
	Properties Properties `json:"properties"`
	Geometry   *Geometry  `json:"geometry"`
}

// Properties carries the zone attributes attached to each polygon.
type Properties struct {
	Zone       string `json:"zone"`
	Borough    string `json:"borough"`
	LocationID string `json:"location_id"`
}

// Geometry keeps coordinates raw; the engine never interprets polygon
// rings, it only passes them through to whatever draws the map.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// LoadBoundaries reads and parses a zone boundary document. Callers treat
// any error as "render the fallback notice".
func LoadBoundaries(path string) (*FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read boundaries: %w", err)
	}

	var fc FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse boundaries: %w", err)
	}
	return &fc, nil
}
