package types

// Severity is an ordinal label summarizing the perceived seriousness of
// corruption at a location: low < medium < high < critical.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityRank = map[Severity]int{
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Rank returns the position of s in the severity ordering. Unknown values
// rank below low.
func (s Severity) Rank() int {
	return severityRank[s]
}

// MaxSeverity returns whichever of a, b ranks higher. The result is always
// one of the two inputs.
func MaxSeverity(a, b Severity) Severity {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}
