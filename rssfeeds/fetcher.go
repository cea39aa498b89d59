package rssfeeds

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"

	"balitai/config"
	"balitai/types"
)

// Fetcher downloads and parses RSS feeds from configured sources. Source
// failures are isolated: one outlet timing out never aborts the scan.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with the per-feed timeout applied at the HTTP
// client level.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: config.FeedTimeout},
	}
}

// FetchFeed downloads one feed URL and parses its items. Some outlets block
// default Go user agents, so requests carry browser-like headers.
func (f *Fetcher) FetchFeed(ctx context.Context, feedURL string) ([]types.RawFeedItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building feed request: %w", err)
	}
	req.Header.Set("User-Agent", config.FeedUserAgent)
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml, */*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading feed body: %w", err)
	}

	return ParseFeed(string(body)), nil
}

// FetchSource tries the source's feeds in order and returns items from the
// first feed that yields any, stamped with the source name. The whole source
// gets one deadline across all its feeds.
func (f *Fetcher) FetchSource(ctx context.Context, source types.NewsSource) ([]types.RawFeedItem, error) {
	ctx, cancel := context.WithTimeout(ctx, config.SourceTimeout)
	defer cancel()

	var lastErr error
	for _, feedURL := range source.Feeds {
		items, err := f.FetchFeed(ctx, feedURL)
		if err != nil {
			log.Printf("Warning: %s feed %s failed: %v", source.Name, feedURL, err)
			lastErr = err
			continue
		}
		if len(items) == 0 {
			log.Printf("Warning: %s feed %s returned no items", source.Name, feedURL)
			continue
		}
		for i := range items {
			items[i].Source = source.Name
		}
		return items, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("all feeds failed for %s: %w", source.Name, lastErr)
	}
	return nil, fmt.Errorf("no items from any feed for %s", source.Name)
}

// FetchAllSources fetches every source concurrently and merges the results.
// Failed sources are logged and skipped.
func (f *Fetcher) FetchAllSources(ctx context.Context, sources []types.NewsSource) []types.RawFeedItem {
	log.Printf("Fetching %d sources", len(sources))

	results := make([][]types.RawFeedItem, len(sources))
	var wg sync.WaitGroup
	for i, source := range sources {
		wg.Add(1)
		go func(i int, source types.NewsSource) {
			defer wg.Done()
			items, err := f.FetchSource(ctx, source)
			if err != nil {
				log.Printf("Warning: source %s skipped: %v", source.Name, err)
				return
			}
			log.Printf("[%d/%d] %s: %d items", i+1, len(sources), source.Name, len(items))
			results[i] = items
		}(i, source)
	}
	wg.Wait()

	var merged []types.RawFeedItem
	for _, items := range results {
		merged = append(merged, items...)
	}
	log.Printf("Fetched %d items total", len(merged))
	return merged
}
