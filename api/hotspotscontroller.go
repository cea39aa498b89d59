package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"balitai/config"
	"balitai/hotspots"
	"balitai/types"
)

// RegisterHotspotRoutes registers the map aggregation endpoints. They are
// pure transforms over articles supplied in the request, keeping the server
// stateless.
func RegisterHotspotRoutes(r *gin.Engine) {
	g := r.Group("/api/hotspots")
	g.POST("", handleAggregateHotspots)
	g.POST("/heatmap", handleHeatmap)
}

// HotspotsRequest carries geolocated articles to aggregate. Zoom controls
// clustering; zero means no clustering.
type HotspotsRequest struct {
	Articles []*types.Article `json:"articles" binding:"required"`
	Zoom     int              `json:"zoom,omitempty"`
}

// HotspotsResponse is the aggregated map payload.
type HotspotsResponse struct {
	Locations []types.ClusteredLocation `json:"locations"`
	Stats     hotspots.Summary          `json:"stats"`
}

func handleAggregateHotspots(c *gin.Context) {
	var req HotspotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	zoom := req.Zoom
	if v := c.Query("zoom"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			zoom = n
		}
	}
	if zoom <= 0 {
		zoom = config.ClusterZoomCutoff
	}

	locations := hotspots.Locations(hotspots.FromArticles(req.Articles))
	c.JSON(http.StatusOK, HotspotsResponse{
		Locations: hotspots.Cluster(locations, zoom),
		Stats:     hotspots.Stats(locations),
	})
}

func handleHeatmap(c *gin.Context) {
	var req HotspotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	locations := hotspots.Locations(hotspots.FromArticles(req.Articles))
	c.JSON(http.StatusOK, gin.H{"points": hotspots.HeatmapPoints(locations)})
}
