package summarize

import (
	"context"
	"fmt"
	"log"
	"strings"

	"balitai/llm"
)

// MinContentLength below which the external model is never called.
const MinContentLength = 30

// minUsefulSummaryLength pads shorter model replies with a fixed closing
// sentence.
const minUsefulSummaryLength = 100

const summaryPromptTemplate = `Analyze this Philippine news article and provide a concise 4-5 sentence summary focusing on:
1. The main corruption allegations or findings
2. Key people or institutions involved
3. Current status or implications

Article title: %s

Article content:
%s

Summary:`

const paddingSentence = " This case forms part of ongoing efforts to hold Philippine public officials accountable for the use of government funds."

// Phrases that mean the model asked for more input instead of answering.
var nonAnswerPhrases = []string{
	"please provide",
	"i need the text",
	"i need the article",
	"could you share",
	"no article content",
}

// Summarizer produces a short prose summary per article. A nil generator
// routes every request through the local heuristic.
type Summarizer struct {
	gen llm.Generator
}

// NewSummarizer creates a Summarizer. gen may be nil.
func NewSummarizer(gen llm.Generator) *Summarizer {
	return &Summarizer{gen: gen}
}

// Summarize returns a non-empty summary for the article and never returns an
// error to the caller. Content shorter than MinContentLength skips the model
// entirely; model failures and non-answers degrade to templates or the local
// heuristic.
func (s *Summarizer) Summarize(ctx context.Context, content, title string) string {
	if len(strings.TrimSpace(content)) < MinContentLength {
		return limitedContentMessage(title)
	}

	if s.gen == nil {
		return HeuristicSummary(content, title)
	}

	text, err := s.gen.Generate(ctx, fmt.Sprintf(summaryPromptTemplate, title, content))
	if err != nil {
		log.Printf("Warning: summarization call failed, using heuristic: %v", err)
		return HeuristicSummary(content, title)
	}

	text = strings.TrimSpace(text)
	if text == "" || isNonAnswer(text) {
		return excerptMessage(content, title)
	}

	if len(text) < minUsefulSummaryLength {
		text += paddingSentence
	}
	return text
}

func isNonAnswer(text string) bool {
	t := strings.ToLower(text)
	for _, phrase := range nonAnswerPhrases {
		if strings.Contains(t, phrase) {
			return true
		}
	}
	return false
}

func limitedContentMessage(title string) string {
	if title == "" {
		return "Limited article content available. Visit the source for the full corruption report."
	}
	return fmt.Sprintf("Limited content is available for %q. Visit the source for the full corruption report.", title)
}

func excerptMessage(content, title string) string {
	excerpt := strings.TrimSpace(content)
	if len(excerpt) > 200 {
		excerpt = excerpt[:200] + "..."
	}
	if title != "" {
		return fmt.Sprintf("From %q: %s", title, excerpt)
	}
	return excerpt
}
