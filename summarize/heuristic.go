package summarize

import (
	"regexp"
	"strings"

	"balitai/relevance"
)

const accountabilitySentence = "Authorities and watchdog agencies continue to monitor the case for accountability."

// Peso and spelled-out monetary amounts, e.g. "P2.3 billion", "₱50 million",
// "200 million pesos".
var moneyRe = regexp.MustCompile(`(?i)(?:₱|php\s?|p)\d[\d,.]*\s*(?:billion|million|thousand)?|\d[\d,.]*\s*(?:billion|million|thousand)?\s*pesos`)

var sentenceSplitRe = regexp.MustCompile(`[.!?]+\s+`)

// HeuristicSummary builds a deterministic summary with no external calls:
// up to three sentences containing corruption keywords, any detected peso
// amounts, and a fixed accountability sentence. Always non-empty.
func HeuristicSummary(content, title string) string {
	sentences := sentenceSplitRe.Split(content, -1)

	var picked []string
	for _, sentence := range sentences {
		trimmed := strings.TrimSpace(sentence)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		for _, kw := range relevance.CoreCorruptionKeywords {
			if strings.Contains(lower, kw) {
				picked = append(picked, strings.TrimRight(trimmed, ".") + ".")
				break
			}
		}
		if len(picked) == 3 {
			break
		}
	}

	if len(picked) == 0 {
		// No keyword sentence: fall back to the lead sentence or the title.
		lead := strings.TrimSpace(sentences[0])
		if lead == "" {
			lead = title
		}
		if lead != "" {
			picked = append(picked, strings.TrimRight(lead, ".") + ".")
		}
	}

	parts := []string{strings.Join(picked, " ")}
	if amounts := moneyRe.FindAllString(content, 2); len(amounts) > 0 {
		parts = append(parts, "Reported amounts involved: "+strings.Join(amounts, ", ")+".")
	}
	parts = append(parts, accountabilitySentence)

	return strings.TrimSpace(strings.Join(parts, " "))
}
