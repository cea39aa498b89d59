package relevance

import (
	"reflect"
	"testing"

	"balitai/types"
)

func TestDetermineSeverity(t *testing.T) {
	cases := []struct {
		name string
		text string
		want types.Severity
	}{
		{"plunder is critical", "Former governor accused of plunder", types.SeverityCritical},
		{"billions is critical", "Billions lost in flood control projects", types.SeverityCritical},
		{"mayor is high", "Mayor arrested over kickback scheme", types.SeverityHigh},
		{"suspended is medium", "Two clerks suspended pending audit", types.SeverityMedium},
		{"administrative is low", "Administrative lapse found in liquidation", types.SeverityLow},
		{"default is medium", "Officials questioned over missing funds", types.SeverityMedium},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := DetermineSeverity(c.text); got != c.want {
				t.Fatalf("DetermineSeverity(%q) = %q; want %q", c.text, got, c.want)
			}
		})
	}
}

func TestDetermineSeverityHighestTierWins(t *testing.T) {
	text := "Senator and mayor suspended over minor irregularity"
	if got := DetermineSeverity(text); got != types.SeverityCritical {
		t.Fatalf("got %q; want critical when tiers overlap", got)
	}
}

func TestCategorizeCorruptionType(t *testing.T) {
	got := CategorizeCorruptionType("Overpriced road construction contract flagged")
	want := []string{"Procurement", "Infrastructure"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CategorizeCorruptionType = %v; want %v", got, want)
	}

	got = CategorizeCorruptionType("Officials met with reporters yesterday")
	want = []string{"General Corruption"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unmatched text = %v; want %v", got, want)
	}
}

func TestHeatWeight(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"plunder case filed", 4.0},
		{"bribery at the permit office", 2.5},
		{"annual audit released", 1.5},
		{"nothing notable", 1.0},
	}

	for _, c := range cases {
		if got := HeatWeight(c.text); got != c.want {
			t.Fatalf("HeatWeight(%q) = %v; want %v", c.text, got, c.want)
		}
	}
}
