package types

import "testing"

func TestSeverityOrdering(t *testing.T) {
	ordered := []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
	for i := 1; i < len(ordered); i++ {
		if ordered[i].Rank() <= ordered[i-1].Rank() {
			t.Fatalf("%s should rank above %s", ordered[i], ordered[i-1])
		}
	}
	if Severity("bogus").Rank() >= SeverityLow.Rank() {
		t.Fatal("unknown severity should rank below low")
	}
}

func TestMaxSeverity(t *testing.T) {
	if got := MaxSeverity(SeverityLow, SeverityCritical); got != SeverityCritical {
		t.Fatalf("MaxSeverity(low, critical) = %q", got)
	}
	if got := MaxSeverity(SeverityHigh, SeverityMedium); got != SeverityHigh {
		t.Fatalf("MaxSeverity(high, medium) = %q", got)
	}
	// Result is always one of the inputs.
	if got := MaxSeverity("", SeverityLow); got != SeverityLow {
		t.Fatalf("MaxSeverity(\"\", low) = %q", got)
	}
}

func TestGenerateID(t *testing.T) {
	a := GenerateID("https://example.com/story")
	b := GenerateID("https://example.com/story")
	if a != b {
		t.Fatal("GenerateID must be stable")
	}
	if len(a) != 16 {
		t.Fatalf("len = %d; want 16", len(a))
	}
	if a == GenerateID("https://example.com/other") {
		t.Fatal("different inputs must produce different IDs")
	}
}
