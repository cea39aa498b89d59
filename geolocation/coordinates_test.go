package geolocation

import (
	"math"
	"testing"

	"balitai/types"
)

func TestFindCoordinates(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		wantName string
	}{
		{"exact", "manila", "manila"},
		{"case and spacing", "  Quezon City ", "quezon city"},
		{"substring", "Cebu City", "cebu"},
		{"alias", "QC", "quezon city"},
		{"alias cdo", "CDO", "misamis oriental"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FindCoordinates(c.in)
			if got == nil {
				t.Fatalf("FindCoordinates(%q) = nil", c.in)
			}
			if got.Name != c.wantName {
				t.Fatalf("FindCoordinates(%q).Name = %q; want %q", c.in, got.Name, c.wantName)
			}
		})
	}

	if got := FindCoordinates("Atlantis"); got != nil {
		t.Fatalf("FindCoordinates(Atlantis) = %+v; want nil", got)
	}
	if got := FindCoordinates(""); got != nil {
		t.Fatalf("FindCoordinates(\"\") = %+v; want nil", got)
	}
}

func TestDistance(t *testing.T) {
	manila := types.Coordinates{Lat: 14.5995, Lng: 120.9842}
	cebu := types.Coordinates{Lat: 10.3157, Lng: 123.8854}

	d := Distance(manila, cebu)
	// Roughly 570 km between the two cities.
	if d < 500 || d > 650 {
		t.Fatalf("Distance(Manila, Cebu) = %v km; want ~570", d)
	}

	if z := Distance(manila, manila); math.Abs(z) > 1e-9 {
		t.Fatalf("Distance(x, x) = %v; want 0", z)
	}
}

func TestWithinPhilippines(t *testing.T) {
	if !WithinPhilippines(types.Coordinates{Lat: 14.5995, Lng: 120.9842}) {
		t.Fatal("Manila should be inside the bounds")
	}
	if WithinPhilippines(types.Coordinates{Lat: 35.6762, Lng: 139.6503}) {
		t.Fatal("Tokyo should be outside the bounds")
	}
}
