package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// NewsSource is a configured Philippine news outlet with an ordered list of
// RSS feed URLs. Feeds are alternates, not retries: the first one that yields
// items wins and the rest are skipped.
type NewsSource struct {
	Name   string   `json:"name"`
	Domain string   `json:"domain"`
	Feeds  []string `json:"feeds"`
}

// RawFeedItem is a single parsed RSS item before filtering and enrichment.
type RawFeedItem struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"published_at"`
	Source      string    `json:"source"`
	ImageURL    string    `json:"image_url,omitempty"`
}

// GeoLocation is a resolved Philippine location attached to an article.
// Confidence is 0-100.
type GeoLocation struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	LocationName string  `json:"locationName"`
	Province     string  `json:"province,omitempty"`
	Region       string  `json:"region,omitempty"`
	Confidence   int     `json:"confidence"`
}

// Article is a corruption-relevant news item after enrichment.
type Article struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	URL         string       `json:"url"`
	Source      string       `json:"source"`
	PublishedAt time.Time    `json:"publishedAt"`
	Summary     string       `json:"summary"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Geo         *GeoLocation `json:"geoLocation,omitempty"`
}

// ScanRequest is the POST /api/scan body. All fields are optional.
type ScanRequest struct {
	Query   string   `json:"query,omitempty"`
	Sources []string `json:"sources,omitempty"`
	Limit   int      `json:"limit,omitempty"`
}

// ScanResponse is the result of one stateless scan.
type ScanResponse struct {
	Articles  []*Article `json:"articles"`
	ScanID    string     `json:"scanId"`
	Timestamp time.Time  `json:"timestamp"`
	Query     string     `json:"query"`
}

// GenerateID creates a short, stable ID by hashing the provided string input
func GenerateID(input string) string {
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:])[:16]
}
