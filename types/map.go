package types

import "time"

// Coordinates is a bare lat/lng pair used by the map-side aggregates.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ArticleRef is a lightweight reference to an article stored inside a
// CorruptionLocation. RelevanceScore is 0-1.
type ArticleRef struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	URL            string    `json:"url"`
	Source         string    `json:"source"`
	PublishedAt    time.Time `json:"publishedAt"`
	Summary        string    `json:"summary,omitempty"`
	RelevanceScore float64   `json:"relevanceScore"`
}

// CorruptionLocation aggregates all articles resolved to the same place.
// ID is a deterministic slug of (city, province); merging by article ID is
// idempotent.
type CorruptionLocation struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	City           string       `json:"city"`
	Province       string       `json:"province,omitempty"`
	Coordinates    Coordinates  `json:"coordinates"`
	Articles       []ArticleRef `json:"articles"`
	CorruptionType []string     `json:"corruptionType"`
	Severity       Severity     `json:"severity"`
	LastUpdated    time.Time    `json:"lastUpdated"`
}

// ClusteredLocation is a zoom-dependent visual grouping of nearby locations.
// Recomputed on every zoom change, never persisted.
type ClusteredLocation struct {
	CorruptionLocation
	IsCluster bool `json:"isCluster"`
	Count     int  `json:"count"`
}

// HeatmapPoint is the shape consumed by the map rendering layer.
type HeatmapPoint struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Weight float64 `json:"weight"`
}

// MapBounds is a lat/lng bounding box.
type MapBounds struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// Philippines map bounds (approximate).
var PhilippinesBounds = MapBounds{
	North: 21.120611,
	South: 4.646923,
	East:  126.603249,
	West:  116.931366,
}

// PhilippinesCenter is the default map center.
var PhilippinesCenter = Coordinates{Lat: 12.8797, Lng: 121.7740}
