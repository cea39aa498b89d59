package geolocation

import (
	"strings"

	"balitai/types"
)

// keywordLocation pairs a corruption-news keyword with a precomputed
// location. Institutions resolve to their seat; insertion order decides ties,
// so keep institutions before place names.
type keywordLocation struct {
	Keyword string
	Loc     types.GeoLocation
}

var locationKeywords = []keywordLocation{
	// Government institutions and their seats
	{"malacañang", types.GeoLocation{Latitude: 14.5995, Longitude: 120.9842, LocationName: "Manila", Province: "Metro Manila", Region: "NCR", Confidence: 95}},
	{"palace", types.GeoLocation{Latitude: 14.5995, Longitude: 120.9842, LocationName: "Manila", Province: "Metro Manila", Region: "NCR", Confidence: 90}},
	{"senate", types.GeoLocation{Latitude: 14.5995, Longitude: 120.9842, LocationName: "Manila", Province: "Metro Manila", Region: "NCR", Confidence: 95}},
	{"congress", types.GeoLocation{Latitude: 14.6760, Longitude: 121.0437, LocationName: "Quezon City", Province: "Metro Manila", Region: "NCR", Confidence: 95}},
	{"house of representatives", types.GeoLocation{Latitude: 14.6760, Longitude: 121.0437, LocationName: "Quezon City", Province: "Metro Manila", Region: "NCR", Confidence: 95}},
	{"supreme court", types.GeoLocation{Latitude: 14.5995, Longitude: 120.9842, LocationName: "Manila", Province: "Metro Manila", Region: "NCR", Confidence: 95}},
	{"ombudsman", types.GeoLocation{Latitude: 14.6760, Longitude: 121.0437, LocationName: "Quezon City", Province: "Metro Manila", Region: "NCR", Confidence: 95}},
	{"sandiganbayan", types.GeoLocation{Latitude: 14.6760, Longitude: 121.0437, LocationName: "Quezon City", Province: "Metro Manila", Region: "NCR", Confidence: 95}},
	{"comelec", types.GeoLocation{Latitude: 14.6019, Longitude: 121.0355, LocationName: "Manila", Province: "Metro Manila", Region: "NCR", Confidence: 95}},
	{"doj", types.GeoLocation{Latitude: 14.5995, Longitude: 120.9842, LocationName: "Manila", Province: "Metro Manila", Region: "NCR", Confidence: 95}},
	{"department of justice", types.GeoLocation{Latitude: 14.5995, Longitude: 120.9842, LocationName: "Manila", Province: "Metro Manila", Region: "NCR", Confidence: 95}},
	{"bir", types.GeoLocation{Latitude: 14.6760, Longitude: 121.0437, LocationName: "Quezon City", Province: "Metro Manila", Region: "NCR", Confidence: 95}},
	{"bureau of internal revenue", types.GeoLocation{Latitude: 14.6760, Longitude: 121.0437, LocationName: "Quezon City", Province: "Metro Manila", Region: "NCR", Confidence: 95}},
	{"boc", types.GeoLocation{Latitude: 14.5995, Longitude: 120.9842, LocationName: "Manila", Province: "Metro Manila", Region: "NCR", Confidence: 95}},
	{"bureau of customs", types.GeoLocation{Latitude: 14.5995, Longitude: 120.9842, LocationName: "Manila", Province: "Metro Manila", Region: "NCR", Confidence: 95}},
	{"bsp", types.GeoLocation{Latitude: 14.5995, Longitude: 120.9842, LocationName: "Manila", Province: "Metro Manila", Region: "NCR", Confidence: 95}},
	{"bangko sentral", types.GeoLocation{Latitude: 14.5995, Longitude: 120.9842, LocationName: "Manila", Province: "Metro Manila", Region: "NCR", Confidence: 95}},
	{"dfa", types.GeoLocation{Latitude: 14.5832, Longitude: 121.0409, LocationName: "Pasay", Province: "Metro Manila", Region: "NCR", Confidence: 95}},
	{"department of foreign affairs", types.GeoLocation{Latitude: 14.5832, Longitude: 121.0409, LocationName: "Pasay", Province: "Metro Manila", Region: "NCR", Confidence: 95}},
	{"dilg", types.GeoLocation{Latitude: 14.6760, Longitude: 121.0437, LocationName: "Quezon City", Province: "Metro Manila", Region: "NCR", Confidence: 95}},
	{"pnp", types.GeoLocation{Latitude: 14.6488, Longitude: 120.9668, LocationName: "Quezon City", Province: "Metro Manila", Region: "NCR", Confidence: 95}},
	{"philippine national police", types.GeoLocation{Latitude: 14.6488, Longitude: 120.9668, LocationName: "Quezon City", Province: "Metro Manila", Region: "NCR", Confidence: 95}},

	// Major cities and provinces commonly in corruption news
	{"quezon city", types.GeoLocation{Latitude: 14.6760, Longitude: 121.0437, LocationName: "Quezon City", Province: "Metro Manila", Region: "NCR", Confidence: 100}},
	{"manila", types.GeoLocation{Latitude: 14.5995, Longitude: 120.9842, LocationName: "Manila", Province: "Metro Manila", Region: "NCR", Confidence: 100}},
	{"makati", types.GeoLocation{Latitude: 14.5547, Longitude: 121.0244, LocationName: "Makati", Province: "Metro Manila", Region: "NCR", Confidence: 100}},
	{"pasig", types.GeoLocation{Latitude: 14.5764, Longitude: 121.0851, LocationName: "Pasig", Province: "Metro Manila", Region: "NCR", Confidence: 100}},
	{"taguig", types.GeoLocation{Latitude: 14.5176, Longitude: 121.0509, LocationName: "Taguig", Province: "Metro Manila", Region: "NCR", Confidence: 100}},
	{"cebu", types.GeoLocation{Latitude: 10.3157, Longitude: 123.8854, LocationName: "Cebu City", Province: "Cebu", Region: "Central Visayas", Confidence: 100}},
	{"davao", types.GeoLocation{Latitude: 7.0731, Longitude: 125.6128, LocationName: "Davao City", Province: "Davao del Sur", Region: "Davao Region", Confidence: 100}},
	{"iloilo", types.GeoLocation{Latitude: 10.7202, Longitude: 122.5621, LocationName: "Iloilo City", Province: "Iloilo", Region: "Western Visayas", Confidence: 100}},
	{"bacolod", types.GeoLocation{Latitude: 10.6770, Longitude: 122.9501, LocationName: "Bacolod", Province: "Negros Occidental", Region: "Western Visayas", Confidence: 100}},
	{"cagayan de oro", types.GeoLocation{Latitude: 8.4542, Longitude: 124.6319, LocationName: "Cagayan de Oro", Province: "Misamis Oriental", Region: "Northern Mindanao", Confidence: 100}},
	{"zamboanga", types.GeoLocation{Latitude: 6.9214, Longitude: 122.0790, LocationName: "Zamboanga City", Province: "Zamboanga del Sur", Region: "Zamboanga Peninsula", Confidence: 100}},
	{"baguio", types.GeoLocation{Latitude: 16.4023, Longitude: 120.5960, LocationName: "Baguio", Province: "Benguet", Region: "Cordillera Administrative Region", Confidence: 100}},
	{"bataan", types.GeoLocation{Latitude: 14.6417, Longitude: 120.4664, LocationName: "Balanga", Province: "Bataan", Region: "Central Luzon", Confidence: 95}},
	{"bulacan", types.GeoLocation{Latitude: 14.7942, Longitude: 120.8794, LocationName: "Malolos", Province: "Bulacan", Region: "Central Luzon", Confidence: 95}},
	{"cavite", types.GeoLocation{Latitude: 14.2456, Longitude: 120.8781, LocationName: "Trece Martires", Province: "Cavite", Region: "CALABARZON", Confidence: 95}},
	{"laguna", types.GeoLocation{Latitude: 14.2691, Longitude: 121.4786, LocationName: "Santa Cruz", Province: "Laguna", Region: "CALABARZON", Confidence: 95}},
	{"pampanga", types.GeoLocation{Latitude: 15.0794, Longitude: 120.6200, LocationName: "San Fernando", Province: "Pampanga", Region: "Central Luzon", Confidence: 95}},
	{"nueva ecija", types.GeoLocation{Latitude: 15.5784, Longitude: 120.9842, LocationName: "Palayan", Province: "Nueva Ecija", Region: "Central Luzon", Confidence: 95}},
	{"pangasinan", types.GeoLocation{Latitude: 15.8983, Longitude: 120.2935, LocationName: "Lingayen", Province: "Pangasinan", Region: "Ilocos Region", Confidence: 95}},
	{"albay", types.GeoLocation{Latitude: 13.1391, Longitude: 123.7437, LocationName: "Legazpi", Province: "Albay", Region: "Bicol Region", Confidence: 95}},
	{"camarines sur", types.GeoLocation{Latitude: 13.6218, Longitude: 123.1945, LocationName: "Pili", Province: "Camarines Sur", Region: "Bicol Region", Confidence: 95}},
	{"leyte", types.GeoLocation{Latitude: 11.2456, Longitude: 124.8525, LocationName: "Tacloban", Province: "Leyte", Region: "Eastern Visayas", Confidence: 95}},
	{"bohol", types.GeoLocation{Latitude: 9.8349, Longitude: 124.1438, LocationName: "Tagbilaran", Province: "Bohol", Region: "Central Visayas", Confidence: 95}},
	{"negros occidental", types.GeoLocation{Latitude: 10.6310, Longitude: 122.9549, LocationName: "Bacolod", Province: "Negros Occidental", Region: "Western Visayas", Confidence: 95}},
	{"negros oriental", types.GeoLocation{Latitude: 9.3068, Longitude: 123.3054, LocationName: "Dumaguete", Province: "Negros Oriental", Region: "Central Visayas", Confidence: 95}},
	{"cotabato", types.GeoLocation{Latitude: 7.2231, Longitude: 124.2472, LocationName: "Kidapawan", Province: "Cotabato", Region: "SOCCSKSARGEN", Confidence: 95}},
	{"sultan kudarat", types.GeoLocation{Latitude: 6.7000, Longitude: 124.2500, LocationName: "Isulan", Province: "Sultan Kudarat", Region: "SOCCSKSARGEN", Confidence: 95}},
	{"lanao del sur", types.GeoLocation{Latitude: 7.8333, Longitude: 124.3333, LocationName: "Marawi", Province: "Lanao del Sur", Region: "BARMM", Confidence: 95}},
	{"sulu", types.GeoLocation{Latitude: 6.0500, Longitude: 121.0000, LocationName: "Jolo", Province: "Sulu", Region: "BARMM", Confidence: 95}},
	{"basilan", types.GeoLocation{Latitude: 6.4364, Longitude: 121.9739, LocationName: "Isabela", Province: "Basilan", Region: "BARMM", Confidence: 95}},
}

// Government offices whose mention alone justifies a capital default when no
// other location resolves.
var governmentOffices = []string{
	"doh", "deped", "dpwh", "dof", "dbm", "coa", "sandiganbayan",
	"ombudsman", "bir", "boc", "bsp", "sec", "sss", "gsis",
	"pagcor", "pcso", "lto", "ltfrb", "denr", "dot", "dti",
}

// QuickExtract resolves an article's primary location with keyword matching
// only. Substring matches against the keyword table are tried first; failing
// that, individual words of length >= 4 are matched against keyword prefixes
// at reduced confidence. Deterministic: same input, same output. Returns nil
// when nothing matches.
func QuickExtract(title, content string) *types.GeoLocation {
	text := strings.ToLower(title + " " + content)

	for _, kl := range locationKeywords {
		if strings.Contains(text, kl.Keyword) {
			loc := kl.Loc
			return &loc
		}
	}

	for _, word := range strings.Fields(text) {
		if len(word) < 4 {
			continue
		}
		for _, kl := range locationKeywords {
			if strings.Contains(kl.Keyword, word) {
				loc := kl.Loc
				loc.Confidence -= 10
				return &loc
			}
		}
	}

	return nil
}

// MentionsGovernmentOffice reports whether the text names a national
// government office. Used for the capital-default fallback.
func MentionsGovernmentOffice(title, content string) bool {
	text := strings.ToLower(title + " " + content)
	for _, office := range governmentOffices {
		if strings.Contains(text, office) {
			return true
		}
	}
	return false
}

// ManilaDefault is the low-confidence capital fallback attached to articles
// that mention a national institution but resolve to no specific place. This
// biases results toward the capital; kept deliberately to match the product's
// behavior.
func ManilaDefault() *types.GeoLocation {
	return &types.GeoLocation{
		Latitude:     14.5995,
		Longitude:    120.9842,
		LocationName: "Manila",
		Province:     "Metro Manila",
		Region:       "NCR",
		Confidence:   30,
	}
}
