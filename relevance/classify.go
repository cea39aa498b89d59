package relevance

import (
	"strings"

	"balitai/types"
)

// Severity tiers, checked highest first. The first tier with a matching
// keyword wins.
var severityTiers = []struct {
	level    types.Severity
	keywords []string
}{
	{types.SeverityCritical, []string{"plunder", "billions", "senator", "governor", "major scandal"}},
	{types.SeverityHigh, []string{"millions", "mayor", "congressman", "investigation filed", "arrested"}},
	{types.SeverityMedium, []string{"thousands", "suspended", "charges filed", "allegations"}},
	{types.SeverityLow, []string{"irregularity", "minor", "administrative"}},
}

// DetermineSeverity classifies the seriousness of a corruption report from
// its text. Total: always returns one of the four levels, defaulting to
// medium when nothing matches.
func DetermineSeverity(text string) types.Severity {
	t := strings.ToLower(text)
	for _, tier := range severityTiers {
		if containsAny(t, tier.keywords) {
			return tier.level
		}
	}
	return types.SeverityMedium
}

// Corruption type categories. A slice keeps category output order stable.
var corruptionTypes = []struct {
	name     string
	keywords []string
}{
	{"Embezzlement", []string{"embezzlement", "malversation", "misappropriation"}},
	{"Bribery", []string{"bribery", "bribe", "payoff", "kickback"}},
	{"Fraud", []string{"fraud", "fake", "falsification", "dummy"}},
	{"Graft", []string{"graft", "anomaly", "irregularity"}},
	{"Plunder", []string{"plunder", "large-scale"}},
	{"Electoral", []string{"electoral", "election", "voting", "ballot"}},
	{"Procurement", []string{"procurement", "bidding", "contract", "supply"}},
	{"Infrastructure", []string{"infrastructure", "construction", "road", "building"}},
	{"Health", []string{"health", "medical", "hospital", "medicine"}},
	{"Education", []string{"education", "school", "deped", "student"}},
}

// CategorizeCorruptionType returns every matching category for the text.
// Categories are not mutually exclusive. Returns ["General Corruption"] when
// nothing matches.
func CategorizeCorruptionType(text string) []string {
	t := strings.ToLower(text)
	var matched []string
	for _, ct := range corruptionTypes {
		if containsAny(t, ct.keywords) {
			matched = append(matched, ct.name)
		}
	}
	if len(matched) == 0 {
		return []string{"General Corruption"}
	}
	return matched
}

// Heatmap weight tiers. Higher-impact keywords dominate.
var (
	highWeightKeywords = []string{
		"plunder", "billion", "scandal", "mastermind", "syndicate",
		"millions", "graft charges", "ombudsman", "sandiganbayan",
	}
	mediumWeightKeywords = []string{
		"corruption", "bribery", "kickback", "anomaly", "irregularity",
		"investigation", "charges", "suspended", "dismissed",
	}
	lowWeightKeywords = []string{
		"complaint", "allegation", "inquiry", "review", "audit",
	}
)

// HeatWeight computes the heatmap intensity for an article's text, in the
// range 1 (base) to 4.
func HeatWeight(text string) float64 {
	t := strings.ToLower(text)
	weight := 1.0
	if containsAny(t, highWeightKeywords) {
		weight = 4.0
	} else if containsAny(t, mediumWeightKeywords) {
		weight = 2.5
	} else if containsAny(t, lowWeightKeywords) {
		weight = 1.5
	}
	return weight
}
