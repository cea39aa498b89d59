package geolocation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"balitai/config"
	"balitai/llm"
	"balitai/types"
)

// Resolver combines the keyword fast path with an LLM-assisted slow path.
// A nil generator disables the slow path entirely.
type Resolver struct {
	gen llm.Generator
}

// NewResolver creates a Resolver. gen may be nil.
func NewResolver(gen llm.Generator) *Resolver {
	return &Resolver{gen: gen}
}

const locationPromptTemplate = `You are a Philippine geography expert. Extract the PRIMARY location mentioned in this corruption news article.

Title: %s
Content: %s

STRICT INSTRUCTIONS:
1. Find the MAIN location where the corruption incident occurred
2. Focus on cities, provinces, or specific areas in the Philippines
3. Ignore generic terms like "Philippines", "country", "nation"
4. Return ONLY ONE primary location, not multiple locations
5. Use proper Philippine location names (e.g., "Quezon City" not "QC")
6. IMPORTANT: Return ONLY valid JSON, no markdown code blocks or extra text

Return a JSON response with this exact format:
{"locationName": "Primary location name (city/province)", "province": "Province name if different from locationName", "region": "Region name", "confidence": 85}

If no specific Philippine location is mentioned, return:
{"locationName": null, "province": null, "region": null, "confidence": 0}

RESPOND WITH ONLY THE JSON OBJECT, NO OTHER TEXT OR FORMATTING.`

// llmLocation is the payload we expect inside the model's reply.
type llmLocation struct {
	LocationName string `json:"locationName"`
	Province     string `json:"province"`
	Region       string `json:"region"`
	Confidence   int    `json:"confidence"`
}

var (
	codeFenceRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")
	jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)
)

// ExtractJSONBlock pulls the first {...} object out of free-form model
// output, stripping a surrounding Markdown code fence when present. Returns
// an empty string when no object is found.
func ExtractJSONBlock(text string) string {
	cleaned := strings.TrimSpace(text)
	if m := codeFenceRe.FindStringSubmatch(cleaned); m != nil {
		cleaned = strings.TrimSpace(m[1])
	}
	return jsonBlockRe.FindString(cleaned)
}

// LLMExtract asks the language model for the article's primary location and
// resolves the answer against the coordinate table. Returns nil when the
// model is unavailable, refuses, answers with low confidence, or names a
// place the table cannot resolve.
func (r *Resolver) LLMExtract(ctx context.Context, title, content string) (*types.GeoLocation, error) {
	if r.gen == nil {
		return nil, nil
	}

	prompt := fmt.Sprintf(locationPromptTemplate, title, truncate(content, 1500))
	text, err := r.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("location extraction call failed: %w", err)
	}

	block := ExtractJSONBlock(text)
	if block == "" {
		log.Printf("Warning: no JSON object in location response")
		return nil, nil
	}

	var parsed llmLocation
	if err := json.Unmarshal([]byte(block), &parsed); err != nil {
		log.Printf("Warning: unparseable location JSON: %v", err)
		return nil, nil
	}

	if parsed.LocationName == "" || parsed.Confidence < config.MinLocationConfidence {
		return nil, nil
	}

	place := FindCoordinates(parsed.LocationName)
	if place == nil {
		log.Printf("Location %q not in the Philippine coordinates table", parsed.LocationName)
		return nil, nil
	}

	loc := &types.GeoLocation{
		Latitude:     place.Lat,
		Longitude:    place.Lng,
		LocationName: parsed.LocationName,
		Province:     parsed.Province,
		Region:       parsed.Region,
		Confidence:   parsed.Confidence,
	}
	if loc.Province == "" {
		loc.Province = parsed.LocationName
	}
	if loc.Region == "" {
		loc.Region = place.Region
	}
	if !WithinPhilippines(types.Coordinates{Lat: loc.Latitude, Lng: loc.Longitude}) {
		return nil, nil
	}
	return loc, nil
}

// ResolveBatch attaches locations to articles in three phases: keyword fast
// path for everything, at most MaxLLMLocationCalls slow-path calls for the
// remainder, then the capital default for articles that mention a national
// government office. Articles past the LLM cap stay unresolved.
func (r *Resolver) ResolveBatch(ctx context.Context, articles []*types.Article) {
	log.Printf("Resolving locations for %d articles", len(articles))

	var unresolved []*types.Article
	quick := 0
	for _, a := range articles {
		if loc := QuickExtract(a.Title, a.Content); loc != nil {
			a.Geo = loc
			quick++
			continue
		}
		unresolved = append(unresolved, a)
	}
	log.Printf("Quick matches: %d/%d", quick, len(articles))

	llmCalls := min(len(unresolved), config.MaxLLMLocationCalls)
	for i := 0; i < llmCalls; i++ {
		a := unresolved[i]
		loc, err := r.LLMExtract(ctx, a.Title, a.Content)
		if err != nil {
			log.Printf("Warning: LLM extraction failed for %s: %v", a.ID, err)
		} else {
			a.Geo = loc
		}
		if i < llmCalls-1 {
			time.Sleep(config.LocationCallDelay)
		}
	}

	for _, a := range articles {
		if a.Geo == nil && MentionsGovernmentOffice(a.Title, a.Content) {
			a.Geo = ManilaDefault()
		}
	}
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
