package relevance

// Core corruption-related keywords. An article must contain at least one of
// these, or name a corruption institution, to be considered relevant.
var CoreCorruptionKeywords = []string{
	"corruption", "graft", "plunder", "bribery", "kickback", "malversation",
	"embezzlement", "fraud", "scam", "anomalous", "irregularities",
	"misappropriation", "diversion of funds", "ghost employees", "ghost projects",
	"overpricing", "overpriced", "bidding irregularities", "procurement violation",
	"misuse of funds", "ill-gotten", "unexplained wealth", "undeclared assets",
	"money laundering", "tax evasion", "customs corruption", "smuggling",
	"abuse of power", "nepotism", "patronage", "electoral fraud", "vote buying",
	"projects", "probe", "investigation", "charges", "case", "allegation",
	"scandal", "complaint", "violation", "flood control", "rally",
}

// Government and judicial institutions whose presence signals high relevance.
var CorruptionInstitutions = []string{
	"sandiganbayan", "ombudsman", "coa", "commission on audit",
	"saln", "pork barrel", "dap", "pdaf", "blue ribbon committee",
	"shell companies", "dummy corporations", "fake receipts", "ghost deliveries",
	"flood control", "ghost projects",
	"dpwh", "department of public works and highways",
	"dilg", "department of the interior and local government",
	"doj", "department of justice", "nbi", "national bureau of investigation",
	"fbi", "federal bureau of investigation", "cia", "central intelligence agency",
	"senator", "congress", "house of representatives", "supreme court",
}

// Keywords that indicate non-corruption news. Matching any of these rejects
// the article immediately, regardless of co-occurring corruption keywords.
// Matching is by plain substring, so short entries like "art" and "app" also
// reject words that contain them; that reach is part of the filter's contract.
var NonCorruptionKeywords = []string{
	"weather", "typhoon", "storm", "rain", "earthquake", "tsunami", "volcanic",
	"sports", "basketball", "football", "volleyball", "olympics", "games", "tournament",
	"entertainment", "celebrity", "movie", "film", "music", "concert", "show", "artist",
	"health", "vaccine", "medicine", "doctor", "covid", "virus", "disease",
	"smartphone", "computer", "internet", "app", "software", "travel", "tourism", "hotel",
	"restaurant", "food", "recipe", "cooking", "graduation", "accident", "fire", "rescue",
	"emergency", "disaster relief", "collision", "crash", "anniversary", "celebration",
	"festival", "holiday", "birthday", "wedding", "business launch", "product launch",
	"opening ceremony", "grand opening", "traffic", "road construction",
	"infrastructure project", "bridge opening", "cultural", "heritage", "museum",
	"art", "fashion", "beauty",
}

// Generic policy language. Articles carrying only these terms without a core
// corruption keyword are routine government announcements, not corruption news.
var policyLanguage = []string{
	"policy", "program", "initiative", "launch", "announcement",
}

// Phrases that mark an article as obviously non-corruption even when it slips
// past the keyword layers; used by the strict pre-summarization pass.
var obviousNonCorruptionPhrases = []string{
	"ribbon cutting", "ribbon-cutting", "sports tournament", "beauty pageant",
	"groundbreaking ceremony", "job fair", "school opening", "christmas party",
	"trade fair", "food festival", "fun run",
}

// Procedural terms that carry corruption context in the strict title/content
// independence check.
var proceduralTerms = []string{
	"investigation", "charges", "probe", "complaint", "lawsuit",
	"indicted", "arrested", "convicted", "suspended", "dismissed",
}
