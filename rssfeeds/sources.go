package rssfeeds

import "balitai/types"

// TrustedSources lists Philippine news outlets with backup feeds, focused on
// government and politics sections. Feed order matters: earlier feeds are
// preferred.
var TrustedSources = []types.NewsSource{
	{
		Name:   "Rappler",
		Domain: "rappler.com",
		Feeds: []string{
			"https://www.rappler.com/nation/rss/",
			"https://www.rappler.com/rss/",
		},
	},
	{
		Name:   "Philippine Daily Inquirer",
		Domain: "inquirer.net",
		Feeds: []string{
			"https://newsinfo.inquirer.net/category/latest-stories/feed",
			"https://newsinfo.inquirer.net/feed",
		},
	},
	{
		Name:   "Philippine Star",
		Domain: "philstar.com",
		Feeds: []string{
			"https://www.philstar.com/rss/nation",
			"https://www.philstar.com/rss/headlines",
		},
	},
	{
		Name:   "Manila Bulletin",
		Domain: "mb.com.ph",
		Feeds: []string{
			"https://mb.com.ph/feed/",
		},
	},
	{
		Name:   "GMA News Online",
		Domain: "gmanetwork.com",
		Feeds: []string{
			"https://www.gmanetwork.com/news/rss/news",
			"https://www.gmanetwork.com/news/rss/topstories",
		},
	},
	{
		Name:   "ABS-CBN News",
		Domain: "abs-cbn.com",
		Feeds: []string{
			"https://news.abs-cbn.com/rss/nation",
			"https://news.abs-cbn.com/rss/latest",
		},
	},
	{
		Name:   "The Manila Times",
		Domain: "manilatimes.net",
		Feeds: []string{
			"https://www.manilatimes.net/feed",
		},
	},
	{
		Name:   "Interaksyon",
		Domain: "interaksyon.philstar.com",
		Feeds: []string{
			"https://interaksyon.philstar.com/feed",
		},
	},
	{
		Name:   "SunStar",
		Domain: "sunstar.com.ph",
		Feeds: []string{
			"https://www.sunstar.com.ph/rss",
		},
	},
	{
		Name:   "PTV News",
		Domain: "ptvnews.ph",
		Feeds: []string{
			"https://ptvnews.ph/feed",
		},
	},
	{
		Name:   "One News / News5",
		Domain: "onenews.ph",
		Feeds: []string{
			"https://www.onenews.ph/rss",
		},
	},
}

// DefaultSourceDomains is the source list applied when a scan request names
// none.
var DefaultSourceDomains = []string{
	"rappler.com",
	"inquirer.net",
	"abs-cbn.com",
	"gmanetwork.com",
	"philstar.com",
	"manilatimes.net",
	"sunstar.com.ph",
}

// ResolveSources maps requested domains to configured sources, keeping
// configuration order. Unknown domains are ignored.
func ResolveSources(domains []string) []types.NewsSource {
	requested := make(map[string]bool, len(domains))
	for _, d := range domains {
		requested[d] = true
	}

	var matched []types.NewsSource
	for _, src := range TrustedSources {
		if requested[src.Domain] {
			matched = append(matched, src)
		}
	}
	return matched
}
