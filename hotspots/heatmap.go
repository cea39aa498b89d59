package hotspots

import (
	"balitai/relevance"
	"balitai/types"
)

// HeatmapPoints converts locations into weighted map points. A location's
// weight is the sum of the heat weights of its articles, so places with many
// severe reports glow hotter than places with one minor one.
func HeatmapPoints(locations []types.CorruptionLocation) []types.HeatmapPoint {
	points := make([]types.HeatmapPoint, 0, len(locations))
	for _, loc := range locations {
		var weight float64
		for _, ref := range loc.Articles {
			weight += relevance.HeatWeight(ref.Title + " " + ref.Summary)
		}
		if weight == 0 {
			weight = 1.0
		}
		points = append(points, types.HeatmapPoint{
			Lat:    loc.Coordinates.Lat,
			Lng:    loc.Coordinates.Lng,
			Weight: weight,
		})
	}
	return points
}
