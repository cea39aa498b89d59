package api

import (
	"github.com/gin-gonic/gin"

	"balitai/archive"
	"balitai/scanner"
)

// NewRouter constructs a Gin engine with registered routes. archiver may be
// nil when archiving is disabled.
func NewRouter(s *scanner.Scanner, archiver *archive.Archiver) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	// Register resource routers
	RegisterScanRoutes(r, s)
	RegisterHotspotRoutes(r)
	RegisterArchiveRoutes(r, archiver)
	RegisterHealthRoutes(r)
	return r
}
