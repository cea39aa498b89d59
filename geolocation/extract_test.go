package geolocation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"balitai/config"
	"balitai/types"
)

// fakeGenerator returns canned text or an error.
type fakeGenerator struct {
	text  string
	err   error
	calls int
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.text, f.err
}

func (f *fakeGenerator) ModelName() string { return "fake" }

func TestExtractJSONBlock(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain json", `{"locationName": "Cebu"}`, `{"locationName": "Cebu"}`},
		{"fenced", "```json\n{\"locationName\": \"Cebu\"}\n```", `{"locationName": "Cebu"}`},
		{"surrounded by prose", `Here you go: {"confidence": 80} hope that helps`, `{"confidence": 80}`},
		{"no object", "I could not find a location.", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ExtractJSONBlock(c.in); got != c.want {
				t.Fatalf("ExtractJSONBlock(%q) = %q; want %q", c.in, got, c.want)
			}
		})
	}
}

func TestLLMExtractResolvesKnownPlace(t *testing.T) {
	gen := &fakeGenerator{text: `{"locationName": "Cebu City", "province": "Cebu", "region": "Central Visayas", "confidence": 90}`}
	r := NewResolver(gen)

	loc, err := r.LLMExtract(context.Background(), "Provincial scandal", "content")
	if err != nil {
		t.Fatalf("LLMExtract error: %v", err)
	}
	if loc == nil {
		t.Fatal("expected a location, got nil")
	}
	if loc.Province != "Cebu" || loc.Region != "Central Visayas" {
		t.Fatalf("got province %q region %q", loc.Province, loc.Region)
	}
	if loc.Confidence != 90 {
		t.Fatalf("Confidence = %d; want 90", loc.Confidence)
	}
}

func TestLLMExtractLowConfidenceRejected(t *testing.T) {
	gen := &fakeGenerator{text: `{"locationName": "Manila", "confidence": 10}`}
	r := NewResolver(gen)

	loc, err := r.LLMExtract(context.Background(), "t", "c")
	if err != nil {
		t.Fatalf("LLMExtract error: %v", err)
	}
	if loc != nil {
		t.Fatalf("expected nil for low confidence, got %+v", loc)
	}
}

func TestLLMExtractUnknownPlaceRejected(t *testing.T) {
	gen := &fakeGenerator{text: `{"locationName": "Atlantis", "confidence": 95}`}
	r := NewResolver(gen)

	loc, err := r.LLMExtract(context.Background(), "t", "c")
	if err != nil {
		t.Fatalf("LLMExtract error: %v", err)
	}
	if loc != nil {
		t.Fatalf("expected nil for unknown place, got %+v", loc)
	}
}

func TestLLMExtractNilGenerator(t *testing.T) {
	r := NewResolver(nil)
	loc, err := r.LLMExtract(context.Background(), "t", "c")
	if err != nil || loc != nil {
		t.Fatalf("nil generator should be a silent no-op, got loc=%v err=%v", loc, err)
	}
}

func TestResolveBatchCapsLLMCalls(t *testing.T) {
	gen := &fakeGenerator{text: "no json here"}
	r := NewResolver(gen)

	var articles []*types.Article
	for i := 0; i < 8; i++ {
		articles = append(articles, &types.Article{
			ID:      fmt.Sprintf("a%d", i),
			Title:   "report update",
			Content: "no resolvable place in this text",
		})
	}

	r.ResolveBatch(context.Background(), articles)

	if gen.calls != config.MaxLLMLocationCalls {
		t.Fatalf("generator called %d times; want %d", gen.calls, config.MaxLLMLocationCalls)
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	s := "Malacañang" // ñ is two bytes, starting at byte 6
	got := truncate(s, 7)
	if got != "Malaca" {
		t.Fatalf("truncate(%q, 7) = %q; want %q", s, got, "Malaca")
	}
	if got := truncate(s, len(s)); got != s {
		t.Fatalf("truncate at full length changed the string: %q", got)
	}
	if got := truncate("plain ascii", 5); got != "plain" {
		t.Fatalf("truncate(plain ascii, 5) = %q", got)
	}
}

func TestLLMExtractErrorPropagates(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("rate limited")}
	r := NewResolver(gen)

	if _, err := r.LLMExtract(context.Background(), "t", "c"); err == nil {
		t.Fatal("expected an error")
	}
}
