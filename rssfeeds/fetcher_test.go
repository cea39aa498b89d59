package rssfeeds

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"balitai/types"
)

func feedXML(title string) string {
	return fmt.Sprintf(`<rss><channel><item>
<title>%s</title>
<link>https://example.com/story</link>
<description>A graft probe description.</description>
</item></channel></rss>`, title)
}

func TestFetchFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("expected a User-Agent header")
		}
		fmt.Fprint(w, feedXML("Graft probe opens"))
	}))
	defer srv.Close()

	items, err := NewFetcher().FetchFeed(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchFeed error: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Graft probe opens" {
		t.Fatalf("items = %+v", items)
	}
}

func TestFetchFeedNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := NewFetcher().FetchFeed(context.Background(), srv.URL); err == nil {
		t.Fatal("expected an error for a 403 response")
	}
}

func TestFetchSourceFallsBackToNextFeed(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, feedXML("Backup feed story"))
	}))
	defer good.Close()

	source := types.NewsSource{
		Name:   "Test Outlet",
		Domain: "example.com",
		Feeds:  []string{bad.URL, good.URL},
	}

	items, err := NewFetcher().FetchSource(context.Background(), source)
	if err != nil {
		t.Fatalf("FetchSource error: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Backup feed story" {
		t.Fatalf("items = %+v", items)
	}
	if items[0].Source != "Test Outlet" {
		t.Fatalf("Source = %q; want Test Outlet", items[0].Source)
	}
}

func TestFetchAllSourcesIsolatesFailures(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, feedXML("Working source story"))
	}))
	defer good.Close()
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	sources := []types.NewsSource{
		{Name: "Down Outlet", Domain: "down.example", Feeds: []string{down.URL}},
		{Name: "Good Outlet", Domain: "good.example", Feeds: []string{good.URL}},
	}

	items := NewFetcher().FetchAllSources(context.Background(), sources)
	if len(items) != 1 {
		t.Fatalf("got %d items; want 1 from the working source", len(items))
	}
	if items[0].Source != "Good Outlet" {
		t.Fatalf("Source = %q; want Good Outlet", items[0].Source)
	}
}

func TestResolveSources(t *testing.T) {
	got := ResolveSources([]string{"inquirer.net", "rappler.com", "unknown.example"})
	if len(got) != 2 {
		t.Fatalf("got %d sources; want 2", len(got))
	}
	// Configuration order wins regardless of request order.
	if got[0].Domain != "rappler.com" || got[1].Domain != "inquirer.net" {
		t.Fatalf("order = [%s, %s]; want configuration order", got[0].Domain, got[1].Domain)
	}
}
