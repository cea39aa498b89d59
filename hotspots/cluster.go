package hotspots

import (
	"fmt"

	"balitai/config"
	"balitai/geolocation"
	"balitai/types"
)

// Cluster groups nearby locations for a given map zoom level. At or above the
// cutoff zoom every location stands alone. Below it, locations within a
// zoom-scaled distance of a seed are greedily absorbed into one cluster.
// Clustering is a view transform: the underlying state is untouched.
func Cluster(locations []types.CorruptionLocation, zoom int) []types.ClusteredLocation {
	if zoom >= config.ClusterZoomCutoff {
		clustered := make([]types.ClusteredLocation, 0, len(locations))
		for _, loc := range locations {
			clustered = append(clustered, types.ClusteredLocation{
				CorruptionLocation: loc,
				IsCluster:          false,
				Count:              1,
			})
		}
		return clustered
	}

	thresholdKm := config.ClusterBaseDistanceKm * float64(config.ClusterZoomCutoff-zoom)

	var clustered []types.ClusteredLocation
	used := make([]bool, len(locations))
	for i, seed := range locations {
		if used[i] {
			continue
		}
		used[i] = true
		members := []types.CorruptionLocation{seed}
		for j := i + 1; j < len(locations); j++ {
			if used[j] {
				continue
			}
			if geolocation.Distance(seed.Coordinates, locations[j].Coordinates) < thresholdKm {
				used[j] = true
				members = append(members, locations[j])
			}
		}
		clustered = append(clustered, mergeCluster(members))
	}
	return clustered
}

func mergeCluster(members []types.CorruptionLocation) types.ClusteredLocation {
	if len(members) == 1 {
		return types.ClusteredLocation{
			CorruptionLocation: members[0],
			IsCluster:          false,
			Count:              1,
		}
	}

	merged := members[0]
	merged.ID = "cluster_" + members[0].ID
	merged.Title = fmt.Sprintf("%d corruption reports", len(members))

	var sumLat, sumLng float64
	for _, m := range members {
		sumLat += m.Coordinates.Lat
		sumLng += m.Coordinates.Lng
	}
	merged.Coordinates = types.Coordinates{
		Lat: sumLat / float64(len(members)),
		Lng: sumLng / float64(len(members)),
	}

	merged.Articles = nil
	merged.CorruptionType = nil
	merged.Severity = ""
	for _, m := range members {
		merged.Articles = append(merged.Articles, m.Articles...)
		merged.CorruptionType = unionTypes(merged.CorruptionType, m.CorruptionType)
		merged.Severity = types.MaxSeverity(merged.Severity, m.Severity)
		if m.LastUpdated.After(merged.LastUpdated) {
			merged.LastUpdated = m.LastUpdated
		}
	}

	return types.ClusteredLocation{
		CorruptionLocation: merged,
		IsCluster:          true,
		Count:              len(members),
	}
}
