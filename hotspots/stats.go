package hotspots

import (
	"time"

	"balitai/types"
)

// Summary holds aggregate counts for the map sidebar.
type Summary struct {
	TotalLocations int                    `json:"totalLocations"`
	TotalArticles  int                    `json:"totalArticles"`
	BySeverity     map[types.Severity]int `json:"bySeverity"`
	ByProvince     map[string]int         `json:"byProvince"`
	LastUpdated    time.Time              `json:"lastUpdated"`
}

// Stats computes summary counts over a set of locations.
func Stats(locations []types.CorruptionLocation) Summary {
	s := Summary{
		BySeverity: make(map[types.Severity]int),
		ByProvince: make(map[string]int),
	}
	for _, loc := range locations {
		s.TotalLocations++
		s.TotalArticles += len(loc.Articles)
		s.BySeverity[loc.Severity]++
		if loc.Province != "" {
			s.ByProvince[loc.Province] += len(loc.Articles)
		}
		if loc.LastUpdated.After(s.LastUpdated) {
			s.LastUpdated = loc.LastUpdated
		}
	}
	return s
}
