package geolocation

import (
	"math"
	"strings"

	"balitai/types"
)

// placeEntry maps a Philippine province or city name to its coordinates.
type placeEntry struct {
	Name   string
	Lat    float64
	Lng    float64
	Region string
}

// Philippine provinces and major cities with approximate coordinates. Kept as
// a slice so partial-match resolution iterates in a stable order.
var philippinePlaces = []placeEntry{
	// NCR
	{"manila", 14.5995, 120.9842, "NCR"},
	{"quezon city", 14.6760, 121.0437, "NCR"},
	{"makati", 14.5547, 121.0244, "NCR"},
	{"pasig", 14.5764, 121.0851, "NCR"},
	{"taguig", 14.5176, 121.0509, "NCR"},
	{"parañaque", 14.4793, 121.0198, "NCR"},
	{"las piñas", 14.4378, 120.9942, "NCR"},
	{"muntinlupa", 14.3832, 121.0409, "NCR"},
	{"pasay", 14.5378, 120.9896, "NCR"},
	{"caloocan", 14.6488, 120.9668, "NCR"},
	{"malabon", 14.6650, 120.9564, "NCR"},
	{"navotas", 14.6691, 120.9405, "NCR"},
	{"valenzuela", 14.7000, 120.9833, "NCR"},
	{"marikina", 14.6507, 121.1029, "NCR"},
	{"san juan", 14.6019, 121.0355, "NCR"},
	{"mandaluyong", 14.5832, 121.0409, "NCR"},

	// Luzon provinces
	{"bataan", 14.6417, 120.4664, "Central Luzon"},
	{"batangas", 13.7565, 121.0583, "CALABARZON"},
	{"bulacan", 14.7942, 120.8794, "Central Luzon"},
	{"cavite", 14.2456, 120.8781, "CALABARZON"},
	{"laguna", 14.2691, 121.4786, "CALABARZON"},
	{"nueva ecija", 15.5784, 120.9842, "Central Luzon"},
	{"pampanga", 15.0794, 120.6200, "Central Luzon"},
	{"rizal", 14.6037, 121.3084, "CALABARZON"},
	{"tarlac", 15.4817, 120.5979, "Central Luzon"},
	{"zambales", 15.1373, 119.9710, "Central Luzon"},
	{"aurora", 15.7594, 121.5611, "Central Luzon"},
	{"pangasinan", 15.8983, 120.2935, "Ilocos Region"},
	{"la union", 16.6159, 120.3209, "Ilocos Region"},
	{"ilocos norte", 18.1967, 120.5929, "Ilocos Region"},
	{"ilocos sur", 17.5650, 120.3863, "Ilocos Region"},
	{"abra", 17.5947, 120.7436, "Cordillera Administrative Region"},
	{"benguet", 16.4156, 120.5964, "Cordillera Administrative Region"},
	{"ifugao", 16.9434, 121.1267, "Cordillera Administrative Region"},
	{"kalinga", 17.3500, 121.1000, "Cordillera Administrative Region"},
	{"mountain province", 17.1000, 121.0000, "Cordillera Administrative Region"},
	{"apayao", 18.0127, 121.0668, "Cordillera Administrative Region"},

	// Visayas
	{"cebu", 10.3157, 123.8854, "Central Visayas"},
	{"bohol", 9.8349, 124.1438, "Central Visayas"},
	{"negros occidental", 10.6310, 122.9549, "Western Visayas"},
	{"negros oriental", 9.3068, 123.3054, "Central Visayas"},
	{"iloilo", 10.7202, 122.5621, "Western Visayas"},
	{"capiz", 11.3889, 122.6277, "Western Visayas"},
	{"antique", 10.7117, 121.9408, "Western Visayas"},
	{"aklan", 11.5564, 122.0188, "Western Visayas"},
	{"guimaras", 10.5739, 122.5792, "Western Visayas"},
	{"leyte", 11.2456, 124.8525, "Eastern Visayas"},
	{"southern leyte", 10.3547, 125.1268, "Eastern Visayas"},
	{"eastern samar", 11.6085, 125.5136, "Eastern Visayas"},
	{"western samar", 12.0035, 124.6037, "Eastern Visayas"},
	{"northern samar", 12.5486, 124.6319, "Eastern Visayas"},
	{"biliran", 11.4654, 124.4756, "Eastern Visayas"},
	{"siquijor", 9.2068, 123.5086, "Central Visayas"},

	// Mindanao
	{"davao del sur", 6.7763, 125.2281, "Davao Region"},
	{"davao del norte", 7.6139, 125.6917, "Davao Region"},
	{"davao occidental", 6.4180, 125.7781, "Davao Region"},
	{"davao oriental", 7.0077, 126.3094, "Davao Region"},
	{"davao de oro", 7.6667, 126.0833, "Davao Region"},
	{"cotabato", 7.2231, 124.2472, "SOCCSKSARGEN"},
	{"south cotabato", 6.3619, 124.8925, "SOCCSKSARGEN"},
	{"sultan kudarat", 6.7000, 124.2500, "SOCCSKSARGEN"},
	{"sarangani", 5.9297, 125.2068, "SOCCSKSARGEN"},
	{"agusan del norte", 8.9472, 125.5361, "Caraga"},
	{"agusan del sur", 8.3500, 126.0000, "Caraga"},
	{"surigao del norte", 9.7840, 125.4811, "Caraga"},
	{"surigao del sur", 8.6167, 126.3167, "Caraga"},
	{"dinagat islands", 10.1167, 126.3500, "Caraga"},
	{"bukidnon", 8.1571, 125.1297, "Northern Mindanao"},
	{"camiguin", 9.1739, 124.7108, "Northern Mindanao"},
	{"lanao del norte", 8.2464, 123.8479, "Northern Mindanao"},
	{"misamis occidental", 8.5167, 123.7333, "Northern Mindanao"},
	{"misamis oriental", 8.9000, 124.6167, "Northern Mindanao"},
	{"zamboanga del norte", 8.5500, 123.2667, "Zamboanga Peninsula"},
	{"zamboanga del sur", 7.8403, 123.2924, "Zamboanga Peninsula"},
	{"zamboanga sibugay", 7.7667, 122.7833, "Zamboanga Peninsula"},
	{"basilan", 6.4364, 121.9739, "BARMM"},
	{"sulu", 6.0500, 121.0000, "BARMM"},
	{"tawi-tawi", 5.1333, 119.9333, "BARMM"},
	{"maguindanao", 6.9000, 124.2500, "BARMM"},
	{"lanao del sur", 7.8333, 124.3333, "BARMM"},
}

// Aliases for common variations and abbreviations, resolved against the
// place table above.
var placeAliases = map[string]string{
	"qc":             "quezon city",
	"metro manila":   "manila",
	"ncr":            "manila",
	"baguio":         "benguet",
	"tagaytay":       "cavite",
	"antipolo":       "rizal",
	"san fernando":   "pampanga",
	"angeles":        "pampanga",
	"olongapo":       "zambales",
	"bago":           "negros occidental",
	"bacolod":        "negros occidental",
	"iloilo city":    "iloilo",
	"cebu city":      "cebu",
	"davao city":     "davao del sur",
	"davao":          "davao del sur",
	"cagayan de oro": "misamis oriental",
	"cdo":            "misamis oriental",
	"butuan":         "agusan del norte",
	"zamboanga city": "zamboanga del sur",
	"zamboanga":      "zamboanga del sur",
	"general santos": "south cotabato",
	"gensan":         "south cotabato",
	"cotabato city":  "cotabato",
}

// FindCoordinates resolves a location name to its place entry. Resolution
// order: exact match, substring match in table order, alias table. Returns
// nil when nothing resolves.
func FindCoordinates(locationName string) *placeEntry {
	normalized := strings.ToLower(strings.TrimSpace(locationName))
	if normalized == "" {
		return nil
	}

	for i := range philippinePlaces {
		if philippinePlaces[i].Name == normalized {
			return &philippinePlaces[i]
		}
	}

	for i := range philippinePlaces {
		p := &philippinePlaces[i]
		if strings.Contains(normalized, p.Name) || strings.Contains(p.Name, normalized) {
			return p
		}
	}

	if canonical, ok := placeAliases[normalized]; ok {
		for i := range philippinePlaces {
			if philippinePlaces[i].Name == canonical {
				return &philippinePlaces[i]
			}
		}
	}

	return nil
}

// Distance returns the great-circle distance between two coordinates in
// kilometers (haversine).
func Distance(a, b types.Coordinates) float64 {
	const earthRadiusKm = 6371
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// WithinPhilippines reports whether coordinates fall inside the country's
// approximate bounding box.
func WithinPhilippines(c types.Coordinates) bool {
	b := types.PhilippinesBounds
	return c.Lat >= b.South && c.Lat <= b.North && c.Lng >= b.West && c.Lng <= b.East
}
