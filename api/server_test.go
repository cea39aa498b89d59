package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"balitai/scanner"
	"balitai/types"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(scanner.NewScanner(scanner.Deps{}), nil)
}

func TestHealthEndpoint(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	testRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
}

func TestGetScanIsMethodNotAllowed(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/scan", nil)
	testRouter().ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d; want 405", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["message"] == "" {
		t.Fatal("expected an instructional message")
	}
}

func TestAggregateHotspots(t *testing.T) {
	geo := &types.GeoLocation{
		Latitude:     14.5995,
		Longitude:    120.9842,
		LocationName: "Manila",
		Province:     "Metro Manila",
		Region:       "NCR",
		Confidence:   100,
	}
	payload, _ := json.Marshal(HotspotsRequest{
		Articles: []*types.Article{
			{ID: "a1", Title: "Graft probe in city hall", Content: "graft probe", URL: "https://example.com/1", PublishedAt: time.Now(), Geo: geo},
			{ID: "a2", Title: "Plunder complaint filed", Content: "plunder complaint", URL: "https://example.com/2", PublishedAt: time.Now(), Geo: geo},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/hotspots", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	testRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (body: %s)", w.Code, w.Body.String())
	}

	var resp HotspotsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(resp.Locations) != 1 {
		t.Fatalf("got %d locations; want 1 for two Manila articles", len(resp.Locations))
	}
	if len(resp.Locations[0].Articles) != 2 {
		t.Fatalf("got %d articles at the location; want 2", len(resp.Locations[0].Articles))
	}
	if resp.Stats.TotalArticles != 2 {
		t.Fatalf("Stats.TotalArticles = %d; want 2", resp.Stats.TotalArticles)
	}
}

func TestArchiveRoutesAnswerWhenDisabled(t *testing.T) {
	for _, path := range []string{"/api/archive", "/api/archive/2026-08-30/abc123"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		testRouter().ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("GET %s status = %d; want 503 without an archiver", path, w.Code)
		}
	}
}

func TestAggregateHotspotsRejectsBadBody(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/hotspots", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	testRouter().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
}
