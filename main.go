package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"balitai/api"
	"balitai/archive"
	"balitai/dedup"
	"balitai/events"
	"balitai/geolocation"
	"balitai/llm"
	"balitai/rssfeeds"
	"balitai/scanner"
	"balitai/summarize"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	gen := llm.NewDefaultGenerator(os.Getenv("COHERE_MODEL"))
	if gen == nil {
		log.Println("COHERE_API_KEY not set; using heuristic summaries and keyword-only geolocation")
	} else {
		log.Printf("Language model enabled: %s", gen.ModelName())
	}

	bloom, err := dedup.NewRedisBloomFromEnv()
	if err != nil {
		log.Printf("Warning: bloom dedup disabled: %v", err)
	}
	publisher, err := events.NewPublisherFromEnv()
	if err != nil {
		log.Printf("Warning: Kafka events disabled: %v", err)
	}
	archiver, err := archive.NewArchiverFromEnv(context.Background())
	if err != nil {
		log.Printf("Warning: S3 archiving disabled: %v", err)
	}

	s := scanner.NewScanner(scanner.Deps{
		Fetcher:    rssfeeds.NewFetcher(),
		Resolver:   geolocation.NewResolver(gen),
		Summarizer: summarize.NewSummarizer(gen),
		Bloom:      bloom,
		Publisher:  publisher,
		Archiver:   archiver,
	})

	r := api.NewRouter(s, archiver)
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  POST /api/scan")
	log.Println("  POST /api/hotspots")
	log.Println("  POST /api/hotspots/heatmap")
	log.Println("  GET  /api/archive")
	log.Println("  GET  /api/archive/:date/:id")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
