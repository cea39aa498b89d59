package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"balitai/archive"
)

// RegisterArchiveRoutes exposes read access to archived scans. A nil archiver
// means archiving is disabled and the routes answer 503.
func RegisterArchiveRoutes(r *gin.Engine, a *archive.Archiver) {
	group := r.Group("/api/archive")

	group.GET("", func(c *gin.Context) {
		if a == nil {
			archiveDisabled(c)
			return
		}
		date := c.Query("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}
		ids, err := a.ListScans(c.Request.Context(), date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "archive listing failed",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"date": date, "scans": ids})
	})

	group.GET("/:date/:id", func(c *gin.Context) {
		if a == nil {
			archiveDisabled(c)
			return
		}
		resp, err := a.LoadScan(c.Request.Context(), c.Param("date"), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "archived scan not found",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, resp)
	})
}

func archiveDisabled(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"error":   "archiving disabled",
		"message": "Set S3_BUCKET to enable the scan archive",
	})
}
