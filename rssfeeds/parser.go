package rssfeeds

import (
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"balitai/config"
	"balitai/types"
)

// Regex-based extraction tolerates the malformed XML several Philippine
// outlets ship (stray ampersands, control characters, unclosed tags) that
// makes strict parsers reject whole feeds. gofeed is the fallback when the
// tolerant pass finds nothing, which covers well-formed Atom feeds.
var (
	entityRe      = regexp.MustCompile(`&(amp;|lt;|gt;|quot;|apos;|#[0-9]+;|#x[0-9a-fA-F]+;)?`)
	controlCharRe = regexp.MustCompile("[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]")

	itemRe        = regexp.MustCompile(`(?is)<item[^>]*>(.*?)</item>`)
	titleRe       = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	linkRe        = regexp.MustCompile(`(?is)<link[^>]*>(.*?)</link>`)
	descriptionRe = regexp.MustCompile(`(?is)<description[^>]*>(.*?)</description>`)
	pubDateRe     = regexp.MustCompile(`(?is)<pubdate[^>]*>(.*?)</pubdate>`)
	enclosureRe   = regexp.MustCompile(`(?is)<(?:enclosure|media:content|media:thumbnail)[^>]*?url="([^"]+)"`)

	cdataRe = regexp.MustCompile(`(?s)<!\[CDATA\[(.*?)\]\]>`)
	tagRe   = regexp.MustCompile(`(?s)<[^>]*>`)
)

var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// ParseFeed extracts items from raw feed XML. The tolerant regex pass runs
// first; when it yields nothing the XML is handed to gofeed. Items missing a
// title or a link are dropped, and at most MaxItemsPerFeed items are kept.
func ParseFeed(xml string) []types.RawFeedItem {
	cleaned := sanitizeXML(xml)

	var items []types.RawFeedItem
	for _, m := range itemRe.FindAllStringSubmatch(cleaned, config.MaxItemsPerFeed) {
		item := parseItem(m[1])
		if item.Title == "" || item.URL == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		items = parseStructured(xml)
	}
	return items
}

func parseItem(block string) types.RawFeedItem {
	item := types.RawFeedItem{
		Title:   extractField(titleRe, block),
		URL:     extractField(linkRe, block),
		Content: extractField(descriptionRe, block),
	}
	if m := pubDateRe.FindStringSubmatch(block); m != nil {
		item.PublishedAt = parsePubDate(cleanText(m[1]))
	} else {
		item.PublishedAt = time.Now()
	}
	if m := enclosureRe.FindStringSubmatch(block); m != nil {
		item.ImageURL = strings.TrimSpace(m[1])
	}
	return item
}

func extractField(re *regexp.Regexp, block string) string {
	m := re.FindStringSubmatch(block)
	if m == nil {
		return ""
	}
	return cleanText(m[1])
}

// sanitizeXML escapes bare ampersands and strips control characters so the
// item regex does not trip over invalid entities.
func sanitizeXML(xml string) string {
	escaped := entityRe.ReplaceAllStringFunc(xml, func(m string) string {
		if m == "&" {
			return "&amp;"
		}
		return m
	})
	return controlCharRe.ReplaceAllString(escaped, "")
}

// cleanText unwraps CDATA, strips leftover tags, and decodes the handful of
// entities feeds actually use.
func cleanText(s string) string {
	if m := cdataRe.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	s = tagRe.ReplaceAllString(s, "")
	s = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
		"&#39;", "'",
		"&#8217;", "'",
		"&nbsp;", " ",
	).Replace(s)
	return strings.TrimSpace(s)
}

func parsePubDate(raw string) time.Time {
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Now()
}

// parseStructured is the strict fallback for feeds the regex pass cannot
// read, typically Atom.
func parseStructured(xml string) []types.RawFeedItem {
	feed, err := gofeed.NewParser().ParseString(xml)
	if err != nil {
		log.Printf("Warning: structured feed parse failed: %v", err)
		return nil
	}

	var items []types.RawFeedItem
	for _, entry := range feed.Items {
		if len(items) == config.MaxItemsPerFeed {
			break
		}
		if entry.Title == "" || entry.Link == "" {
			continue
		}
		item := types.RawFeedItem{
			Title:       strings.TrimSpace(entry.Title),
			URL:         strings.TrimSpace(entry.Link),
			Content:     strings.TrimSpace(entry.Description),
			PublishedAt: time.Now(),
		}
		if entry.PublishedParsed != nil {
			item.PublishedAt = *entry.PublishedParsed
		}
		if entry.Image != nil {
			item.ImageURL = entry.Image.URL
		}
		items = append(items, item)
	}
	return items
}
