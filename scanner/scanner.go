package scanner

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"balitai/archive"
	"balitai/config"
	"balitai/dedup"
	"balitai/events"
	"balitai/geolocation"
	"balitai/relevance"
	"balitai/rssfeeds"
	"balitai/summarize"
	"balitai/types"
)

// Scanner runs the full corruption-news pipeline: fetch, filter, dedupe,
// enrich, geolocate, summarize. Scans are stateless; the optional side
// channels (bloom, Kafka, S3) never affect the response.
type Scanner struct {
	fetcher    *rssfeeds.Fetcher
	resolver   *geolocation.Resolver
	summarizer *summarize.Summarizer

	bloom     *dedup.RedisBloom
	publisher *events.Publisher
	archiver  *archive.Archiver
}

// Deps carries the scanner's collaborators. Bloom, Publisher and Archiver
// may be nil.
type Deps struct {
	Fetcher    *rssfeeds.Fetcher
	Resolver   *geolocation.Resolver
	Summarizer *summarize.Summarizer
	Bloom      *dedup.RedisBloom
	Publisher  *events.Publisher
	Archiver   *archive.Archiver
}

// NewScanner creates a Scanner from its dependencies.
func NewScanner(deps Deps) *Scanner {
	return &Scanner{
		fetcher:    deps.Fetcher,
		resolver:   deps.Resolver,
		summarizer: deps.Summarizer,
		bloom:      deps.Bloom,
		publisher:  deps.Publisher,
		archiver:   deps.Archiver,
	}
}

// Scan executes one full pipeline run. Partial source failures never fail
// the scan; when fewer than MinFilteredArticles relevant items survive
// filtering, canned demo articles backfill the result.
func (s *Scanner) Scan(ctx context.Context, req types.ScanRequest) (*types.ScanResponse, error) {
	started := time.Now()

	domains := req.Sources
	if len(domains) == 0 {
		domains = rssfeeds.DefaultSourceDomains
	}
	sources := rssfeeds.ResolveSources(domains)
	if len(sources) == 0 {
		return nil, fmt.Errorf("no known sources among %v", domains)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = config.DefaultScanLimit
	}

	items := s.fetcher.FetchAllSources(ctx, sources)
	relevant := s.filterItems(items, req.Query)
	log.Printf("Relevant after filtering: %d/%d", len(relevant), len(items))

	relevant = s.dedupeItems(relevant)

	if len(relevant) < config.MinFilteredArticles {
		log.Printf("Warning: only %d relevant articles, adding demo articles", len(relevant))
		relevant = append(relevant, mockCorruptionNews(started)...)
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].PublishedAt.After(relevant[j].PublishedAt)
	})
	if len(relevant) > limit {
		relevant = relevant[:limit]
	}

	articles := make([]*types.Article, 0, len(relevant))
	for _, item := range relevant {
		articles = append(articles, &types.Article{
			ID:          types.GenerateID(item.URL + item.Title),
			Title:       item.Title,
			Content:     item.Content,
			URL:         item.URL,
			Source:      item.Source,
			PublishedAt: item.PublishedAt,
			ImageURL:    item.ImageURL,
		})
	}

	rssfeeds.EnrichContent(articles)
	s.resolver.ResolveBatch(ctx, articles)

	for i, a := range articles {
		log.Printf("[%d/%d] Summarizing: %.50s", i+1, len(articles), a.Title)
		a.Summary = s.summarizer.Summarize(ctx, a.Content, a.Title)
		if i < len(articles)-1 {
			time.Sleep(config.SummaryDelay)
		}
	}

	resp := &types.ScanResponse{
		Articles:  articles,
		ScanID:    types.GenerateID(fmt.Sprintf("scan_%d", started.UnixNano())),
		Timestamp: started,
		Query:     req.Query,
	}

	s.afterScan(ctx, resp, len(sources))
	log.Printf("Scan %s done: %d articles in %s", resp.ScanID, len(articles), time.Since(started).Round(time.Millisecond))
	return resp, nil
}

// filterItems applies the strict relevance filter and the optional free-text
// query.
func (s *Scanner) filterItems(items []types.RawFeedItem, query string) []types.RawFeedItem {
	q := strings.ToLower(strings.TrimSpace(query))

	var kept []types.RawFeedItem
	for _, item := range items {
		if !relevance.PassesStrictFilter(item.Title, item.Content) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(item.Title+" "+item.Content), q) {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

// dedupeItems drops repeated URLs within the scan, and items already served
// in earlier scans when the bloom filter is available. Bloom errors fail
// open: the item stays.
func (s *Scanner) dedupeItems(items []types.RawFeedItem) []types.RawFeedItem {
	seen := make(map[string]bool, len(items))
	var kept []types.RawFeedItem
	for _, item := range items {
		norm := dedup.NormalizeURL(item.URL)
		if seen[norm] {
			continue
		}
		seen[norm] = true

		if s.bloom != nil {
			exists, err := s.bloom.Exists(dedup.NormalizeAndHash(item.URL, item.Title))
			if err != nil {
				log.Printf("Warning: bloom check failed: %v", err)
			} else if exists {
				continue
			}
		}
		kept = append(kept, item)
	}
	return kept
}

// afterScan runs the best-effort side channels. Failures are logged, never
// surfaced.
func (s *Scanner) afterScan(ctx context.Context, resp *types.ScanResponse, sourceCount int) {
	if s.archiver != nil {
		if err := s.archiver.ArchiveScan(ctx, resp); err != nil {
			log.Printf("Warning: scan archive failed: %v", err)
		}
	}
	if s.publisher != nil {
		err := s.publisher.PublishScanCompleted(events.ScanCompleted{
			ScanID:       resp.ScanID,
			Query:        resp.Query,
			ArticleCount: len(resp.Articles),
			SourceCount:  sourceCount,
			Timestamp:    resp.Timestamp,
		})
		if err != nil {
			log.Printf("Warning: scan event publish failed: %v", err)
		}
	}
	if s.bloom != nil {
		for _, a := range resp.Articles {
			if err := s.bloom.Add(dedup.NormalizeAndHash(a.URL, a.Title)); err != nil {
				log.Printf("Warning: bloom add failed: %v", err)
				break
			}
		}
	}
}
