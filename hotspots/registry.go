package hotspots

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"balitai/relevance"
	"balitai/types"
)

// State maps location ID to its aggregate. Treated as immutable: Upsert
// returns a fresh map and never mutates its input, so callers can hold old
// snapshots safely.
type State map[string]types.CorruptionLocation

var slugCleanRe = regexp.MustCompile(`[^a-z0-9]+`)

// LocationID builds the deterministic slug for a (city, province) pair.
// Case and spacing variations of the same place produce the same ID.
func LocationID(city, province string) string {
	slug := func(s string) string {
		s = strings.ToLower(strings.TrimSpace(s))
		s = slugCleanRe.ReplaceAllString(s, "_")
		return strings.Trim(s, "_")
	}
	if province == "" || strings.EqualFold(city, province) {
		return slug(city)
	}
	return slug(city) + "_" + slug(province)
}

// Upsert folds one geolocated article into the state and returns the new
// state. Adding the same article twice is a no-op: merging is idempotent by
// article ID. Type tags are unioned and severity only ever escalates.
func Upsert(state State, article *types.Article) State {
	if article.Geo == nil {
		return state
	}

	next := make(State, len(state)+1)
	for id, loc := range state {
		next[id] = loc
	}

	id := LocationID(article.Geo.LocationName, article.Geo.Province)
	text := article.Title + " " + article.Content
	severity := relevance.DetermineSeverity(text)
	categories := relevance.CategorizeCorruptionType(text)

	loc, exists := next[id]
	if !exists {
		loc = types.CorruptionLocation{
			ID:       id,
			Title:    article.Geo.LocationName,
			City:     article.Geo.LocationName,
			Province: article.Geo.Province,
			Coordinates: types.Coordinates{
				Lat: article.Geo.Latitude,
				Lng: article.Geo.Longitude,
			},
		}
	}

	for _, ref := range loc.Articles {
		if ref.ID == article.ID {
			return state
		}
	}

	// Copy the refs so snapshots branched off the same state never share a
	// backing array.
	refs := make([]types.ArticleRef, len(loc.Articles), len(loc.Articles)+1)
	copy(refs, loc.Articles)
	loc.Articles = append(refs, types.ArticleRef{
		ID:             article.ID,
		Title:          article.Title,
		URL:            article.URL,
		Source:         article.Source,
		PublishedAt:    article.PublishedAt,
		Summary:        article.Summary,
		RelevanceScore: relevance.HeatWeight(text) / 4.0,
	})
	loc.CorruptionType = unionTypes(loc.CorruptionType, categories)
	loc.Severity = types.MaxSeverity(loc.Severity, severity)
	loc.LastUpdated = time.Now()

	next[id] = loc
	return next
}

// FromArticles builds a fresh state from a scan result. Articles without a
// resolved location are skipped.
func FromArticles(articles []*types.Article) State {
	state := State{}
	for _, a := range articles {
		state = Upsert(state, a)
	}
	return state
}

// Locations flattens the state into a slice sorted by ID for stable output.
func Locations(state State) []types.CorruptionLocation {
	locations := make([]types.CorruptionLocation, 0, len(state))
	for _, loc := range state {
		locations = append(locations, loc)
	}
	sort.Slice(locations, func(i, j int) bool {
		return locations[i].ID < locations[j].ID
	})
	return locations
}

func unionTypes(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing))
	merged := make([]string, 0, len(existing)+len(incoming))
	for _, t := range existing {
		if !seen[t] {
			seen[t] = true
			merged = append(merged, t)
		}
	}
	for _, t := range incoming {
		if !seen[t] {
			seen[t] = true
			merged = append(merged, t)
		}
	}
	return merged
}
