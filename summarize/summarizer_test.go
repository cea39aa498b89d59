package summarize

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeGenerator records calls and returns canned output.
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

const longContent = "The Commission on Audit flagged anomalous transactions worth P2.3 billion " +
	"in the provincial engineering office. Investigators said the graft scheme involved " +
	"fictitious suppliers and falsified delivery receipts over several years."

func TestSummarizeShortContentSkipsModel(t *testing.T) {
	gen := &fakeGenerator{text: "should never be used"}
	s := NewSummarizer(gen)

	got := s.Summarize(context.Background(), "too short", "Graft case")
	if gen.calls != 0 {
		t.Fatalf("generator called %d times for short content; want 0", gen.calls)
	}
	if got == "" {
		t.Fatal("summary must never be empty")
	}
	if !strings.Contains(got, "Graft case") {
		t.Fatalf("limited-content message should name the title: %q", got)
	}
}

func TestSummarizeUsesModelReply(t *testing.T) {
	reply := "The audit commission flagged billions in anomalous spending. Several officials face graft charges. The case is now with the Ombudsman for preliminary investigation."
	gen := &fakeGenerator{text: reply}
	s := NewSummarizer(gen)

	got := s.Summarize(context.Background(), longContent, "COA report")
	if got != reply {
		t.Fatalf("got %q; want the model reply verbatim", got)
	}
}

func TestSummarizeNilGeneratorUsesHeuristic(t *testing.T) {
	s := NewSummarizer(nil)
	got := s.Summarize(context.Background(), longContent, "COA report")
	if got == "" {
		t.Fatal("heuristic summary must not be empty")
	}
	if got != HeuristicSummary(longContent, "COA report") {
		t.Fatal("nil generator must route through the heuristic")
	}
}

func TestSummarizeModelErrorFallsBack(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("timeout")}
	s := NewSummarizer(gen)

	got := s.Summarize(context.Background(), longContent, "COA report")
	if got == "" {
		t.Fatal("summary must never be empty on model error")
	}
	if got != HeuristicSummary(longContent, "COA report") {
		t.Fatal("model error must fall back to the heuristic")
	}
}

func TestSummarizeNonAnswerBecomesExcerpt(t *testing.T) {
	gen := &fakeGenerator{text: "Please provide the article text so I can summarize it."}
	s := NewSummarizer(gen)

	got := s.Summarize(context.Background(), longContent, "COA report")
	if strings.Contains(strings.ToLower(got), "please provide") {
		t.Fatalf("non-answer leaked through: %q", got)
	}
	if !strings.Contains(got, "COA report") {
		t.Fatalf("excerpt message should name the title: %q", got)
	}
}

func TestSummarizeShortReplyGetsPadded(t *testing.T) {
	gen := &fakeGenerator{text: "Officials face graft charges."}
	s := NewSummarizer(gen)

	got := s.Summarize(context.Background(), longContent, "COA report")
	if len(got) < minUsefulSummaryLength {
		t.Fatalf("padded summary still too short: %d chars", len(got))
	}
}

func TestHeuristicSummary(t *testing.T) {
	got := HeuristicSummary(longContent, "COA report")
	if got == "" {
		t.Fatal("heuristic summary must not be empty")
	}
	if !strings.Contains(got, "P2.3 billion") {
		t.Fatalf("detected amount missing from summary: %q", got)
	}
	if !strings.HasSuffix(got, accountabilitySentence) {
		t.Fatalf("accountability sentence missing: %q", got)
	}
}

func TestHeuristicSummaryNoKeywordSentences(t *testing.T) {
	content := "The council met on Tuesday. Attendance was complete. The session ended early."
	got := HeuristicSummary(content, "Council session")
	if got == "" {
		t.Fatal("heuristic summary must not be empty even without keyword sentences")
	}
	if !strings.Contains(got, "The council met on Tuesday") {
		t.Fatalf("lead sentence fallback missing: %q", got)
	}
}
