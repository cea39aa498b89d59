package rssfeeds

import (
	"fmt"
	"log"
	"sync"

	readability "github.com/go-shiori/go-readability"

	"balitai/config"
	"balitai/types"
)

// minInlineContentLength is the RSS description length below which the full
// article page is fetched for readable text.
const minInlineContentLength = 300

// EnrichContent replaces thin RSS descriptions with readable text extracted
// from the article pages using a worker pool. Extraction is best effort:
// failures keep the original description.
func EnrichContent(articles []*types.Article) {
	var thin []*types.Article
	for _, a := range articles {
		if len(a.Content) < minInlineContentLength {
			thin = append(thin, a)
		}
	}
	if len(thin) == 0 {
		return
	}
	log.Printf("Extracting full text for %d of %d articles", len(thin), len(articles))

	var wg sync.WaitGroup
	articleChan := make(chan *types.Article, len(thin))

	for i := 0; i < config.ExtractWorkerCount; i++ {
		go func(workerID int) {
			for article := range articleChan {
				if err := extractContent(article); err != nil {
					log.Printf("[Worker %d] Failed to extract %s: %v", workerID, article.URL, err)
				}
				wg.Done()
			}
		}(i)
	}

	for _, article := range thin {
		wg.Add(1)
		articleChan <- article
	}

	wg.Wait()
	close(articleChan)
}

// extractContent fetches and extracts readable content for a single article.
func extractContent(article *types.Article) error {
	if article.URL == "" {
		return fmt.Errorf("article URL is empty")
	}

	extracted, err := readability.FromURL(article.URL, config.ExtractTimeout)
	if err != nil {
		return fmt.Errorf("readability extraction failed: %w", err)
	}

	if len(extracted.TextContent) > len(article.Content) {
		article.Content = extracted.TextContent
	}
	if article.ImageURL == "" {
		article.ImageURL = extracted.Image
	}

	log.Printf("✓ Extracted: %s", article.Title)
	return nil
}
