package relevance

import "strings"

// IsCorruptionRelated reports whether the given text is corruption news.
// Checks are ordered and short-circuiting:
//  1. any non-corruption keyword rejects immediately,
//  2. at least one core corruption keyword or institution is required,
//  3. generic policy language without a core keyword rejects (routine
//     government announcements).
//
// The function is pure and deterministic over the lower-cased text.
func IsCorruptionRelated(text string) bool {
	t := strings.ToLower(text)

	if containsAny(t, NonCorruptionKeywords) {
		return false
	}

	hasCore := containsAny(t, CoreCorruptionKeywords)
	if !hasCore && !containsAny(t, CorruptionInstitutions) {
		return false
	}

	if !hasCore && containsAny(t, policyLanguage) {
		return false
	}

	return true
}

// PassesStrictFilter applies the three-layer pre-summarization check used by
// the scan pipeline. All layers must pass:
//  1. the base corruption filter over title+content,
//  2. an obvious non-corruption phrase blacklist,
//  3. title or content must independently carry corruption context; content
//     alone is insufficient when the title is generic and the content only
//     mentions an institution without a core keyword or procedural term.
//
// The precedence here is deliberate and preserved as-is.
func PassesStrictFilter(title, content string) bool {
	combined := title + " " + content
	if !IsCorruptionRelated(combined) {
		return false
	}

	lc := strings.ToLower(combined)
	if containsAny(lc, obviousNonCorruptionPhrases) {
		return false
	}

	lt := strings.ToLower(title)
	if containsAny(lt, CoreCorruptionKeywords) ||
		containsAny(lt, CorruptionInstitutions) ||
		containsAny(lt, proceduralTerms) {
		return true
	}

	// Generic title: the content must carry corruption context on its own.
	// An institution mention alone does not count.
	lcContent := strings.ToLower(content)
	return containsAny(lcContent, CoreCorruptionKeywords) ||
		containsAny(lcContent, proceduralTerms)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
