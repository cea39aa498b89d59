package config

import "time"

// RSS Fetch Constants
const (
	// FeedTimeout bounds a single feed URL request
	FeedTimeout = 10 * time.Second

	// SourceTimeout bounds one source across all of its fallback feeds
	SourceTimeout = 15 * time.Second

	// MaxItemsPerFeed caps how many <item> blocks are parsed per feed
	MaxItemsPerFeed = 20

	// FeedUserAgent is sent on every feed request; some outlets reject
	// default Go client agents
	FeedUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Scan Pipeline Constants
const (
	// DefaultScanLimit is the article count returned when the request omits one
	DefaultScanLimit = 10

	// MinFilteredArticles is the threshold below which demo articles are
	// injected so the UI never renders an empty map
	MinFilteredArticles = 3

	// SummaryDelay is a self-imposed rate limit between sequential LLM
	// summarization calls, not a performance knob
	SummaryDelay = 200 * time.Millisecond

	// ExtractWorkerCount sizes the full-content extraction worker pool
	ExtractWorkerCount = 5

	// ExtractTimeout bounds a single readability extraction
	ExtractTimeout = 30 * time.Second
)

// Location Resolution Constants
const (
	// MaxLLMLocationCalls caps slow-path geolocation per scan to bound
	// latency and cost; articles beyond the cap stay unresolved
	MaxLLMLocationCalls = 5

	// LocationCallDelay spaces sequential slow-path calls
	LocationCallDelay = 100 * time.Millisecond

	// MinLocationConfidence rejects LLM location guesses below this value
	MinLocationConfidence = 30
)

// Clustering Constants
const (
	// ClusterZoomCutoff is the zoom level at or above which every location
	// is shown individually
	ClusterZoomCutoff = 11

	// ClusterBaseDistanceKm scales the merge distance: threshold =
	// ClusterBaseDistanceKm * (ClusterZoomCutoff - zoom)
	ClusterBaseDistanceKm = 0.05
)
