package geolocation

import "testing"

func TestQuickExtractCityMatch(t *testing.T) {
	loc := QuickExtract("Quezon City officials probed over ghost projects", "")
	if loc == nil {
		t.Fatal("expected a location, got nil")
	}
	if loc.LocationName != "Quezon City" {
		t.Fatalf("LocationName = %q; want Quezon City", loc.LocationName)
	}
	if loc.Latitude != 14.6760 || loc.Longitude != 121.0437 {
		t.Fatalf("coordinates = (%v, %v); want (14.6760, 121.0437)", loc.Latitude, loc.Longitude)
	}
	if loc.Confidence != 100 {
		t.Fatalf("Confidence = %d; want 100", loc.Confidence)
	}
}

func TestQuickExtractInstitutionResolvesToSeat(t *testing.T) {
	loc := QuickExtract("Ombudsman opens case against provincial engineer", "")
	if loc == nil {
		t.Fatal("expected a location, got nil")
	}
	if loc.LocationName != "Quezon City" {
		t.Fatalf("LocationName = %q; want Quezon City", loc.LocationName)
	}
	if loc.Confidence != 95 {
		t.Fatalf("Confidence = %d; want 95", loc.Confidence)
	}
}

func TestQuickExtractDeterministic(t *testing.T) {
	// Both Manila and Cebu appear; table order decides, every time.
	first := QuickExtract("Cases filed in Manila and Cebu", "")
	if first == nil {
		t.Fatal("expected a location, got nil")
	}
	for i := 0; i < 10; i++ {
		loc := QuickExtract("Cases filed in Manila and Cebu", "")
		if loc == nil || loc.LocationName != first.LocationName {
			t.Fatalf("iteration %d resolved %v; want %q each time", i, loc, first.LocationName)
		}
	}
}

func TestQuickExtractAgencyAbbreviations(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"PNP procurement anomaly flagged", "Quezon City"},
		{"BOC officials charged over smuggled goods", "Manila"},
		{"BSP flags suspicious transfers", "Manila"},
	}
	for _, c := range cases {
		loc := QuickExtract(c.title, "")
		if loc == nil {
			t.Fatalf("QuickExtract(%q) = nil; want %s", c.title, c.want)
		}
		if loc.LocationName != c.want || loc.Confidence != 95 {
			t.Fatalf("QuickExtract(%q) = %s at %d; want %s at 95", c.title, loc.LocationName, loc.Confidence, c.want)
		}
	}
}

func TestQuickExtractNoMatch(t *testing.T) {
	if loc := QuickExtract("the quick brown fox", "jumps over nothing"); loc != nil {
		t.Fatalf("expected nil, got %+v", loc)
	}
}

func TestMentionsGovernmentOffice(t *testing.T) {
	if !MentionsGovernmentOffice("DPWH project questioned", "") {
		t.Fatal("expected DPWH to count as a government office")
	}
	if MentionsGovernmentOffice("Village fiesta draws crowd", "") {
		t.Fatal("expected no government office match")
	}
}

func TestManilaDefault(t *testing.T) {
	loc := ManilaDefault()
	if loc.LocationName != "Manila" {
		t.Fatalf("LocationName = %q; want Manila", loc.LocationName)
	}
	if loc.Confidence != 30 {
		t.Fatalf("Confidence = %d; want 30", loc.Confidence)
	}
}
