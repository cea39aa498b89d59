package scanner

import (
	"testing"
	"time"

	"balitai/types"
)

func rawItem(url, title, content string) types.RawFeedItem {
	return types.RawFeedItem{
		Title:       title,
		URL:         url,
		Content:     content,
		Source:      "Test",
		PublishedAt: time.Now(),
	}
}

func TestFilterItems(t *testing.T) {
	s := NewScanner(Deps{})
	items := []types.RawFeedItem{
		rawItem("https://example.com/1", "Graft charges filed against mayor", "The mayor faces graft charges."),
		rawItem("https://example.com/2", "Basketball finals tonight", "The championship game starts at eight."),
		rawItem("https://example.com/3", "Ombudsman probes overpricing", "An overpricing probe was opened."),
	}

	kept := s.filterItems(items, "")
	if len(kept) != 2 {
		t.Fatalf("got %d items; want 2 relevant", len(kept))
	}

	kept = s.filterItems(items, "overpricing")
	if len(kept) != 1 || kept[0].URL != "https://example.com/3" {
		t.Fatalf("query filter kept %+v; want only the overpricing item", kept)
	}
}

func TestDedupeItems(t *testing.T) {
	s := NewScanner(Deps{})
	items := []types.RawFeedItem{
		rawItem("https://example.com/story?utm_source=rss", "Graft probe", "c"),
		rawItem("https://example.com/story", "Graft probe", "c"),
		rawItem("https://example.com/other", "Another graft probe", "c"),
	}

	kept := s.dedupeItems(items)
	if len(kept) != 2 {
		t.Fatalf("got %d items; want 2 after URL dedupe", len(kept))
	}
}

func TestMockCorruptionNewsShape(t *testing.T) {
	now := time.Now()
	mocks := mockCorruptionNews(now)
	if len(mocks) != 5 {
		t.Fatalf("got %d mock articles; want 5", len(mocks))
	}
	for i, m := range mocks {
		if m.Title == "" || m.URL == "" || m.Content == "" {
			t.Fatalf("mock %d missing fields: %+v", i, m)
		}
		if m.PublishedAt.After(now) {
			t.Fatalf("mock %d dated in the future", i)
		}
	}
	// Newest first ordering must hold after the standard sort.
	for i := 1; i < len(mocks); i++ {
		if mocks[i].PublishedAt.After(mocks[i-1].PublishedAt) {
			t.Fatalf("mock %d newer than mock %d", i, i-1)
		}
	}
}
