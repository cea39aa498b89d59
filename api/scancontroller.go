package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"balitai/scanner"
	"balitai/types"
)

// RegisterScanRoutes registers the scan endpoints.
func RegisterScanRoutes(r *gin.Engine, s *scanner.Scanner) {
	r.POST("/api/scan", handlePostScan(s))
	r.GET("/api/scan", handleGetScan)
}

// handlePostScan runs a full scan. The request body is optional: an empty
// body scans the default sources with the default limit.
func handlePostScan(s *scanner.Scanner) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ScanRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		resp, err := s.Scan(c.Request.Context(), req)
		if err != nil {
			log.Printf("Scan failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "scan failed",
				"message": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// handleGetScan tells callers the endpoint is POST-only instead of letting
// the router answer with an opaque 404.
func handleGetScan(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{
		"error":   "method not allowed",
		"message": "use POST /api/scan with an optional JSON body {query, sources, limit}",
	})
}
