package scanner

import (
	"time"

	"balitai/types"
)

// mockCorruptionNews backfills a scan when live feeds yield too few relevant
// articles, so demos and degraded-network runs still show a populated map.
// Timestamps are relative so the items always sort as recent.
func mockCorruptionNews(now time.Time) []types.RawFeedItem {
	return []types.RawFeedItem{
		{
			Title:       "Senate Blue Ribbon Committee investigates alleged overpricing in Department of Public Works projects",
			Content:     "The Senate Blue Ribbon Committee has launched a comprehensive investigation into alleged overpricing and irregularities in infrastructure projects worth billions of pesos under the Department of Public Works and Highways. Committee Chairman Senator Richard Gordon said the investigation will look into contracts awarded without proper bidding procedures and potential kickbacks to government officials. The probe was triggered by a Commission on Audit report that flagged several anomalous transactions.",
			URL:         "https://example.com/senate-investigation-dpwh",
			Source:      "Senate News",
			PublishedAt: now,
		},
		{
			Title:       "Ombudsman files multiple graft charges against former city mayor for ghost employees scheme",
			Content:     "The Office of the Ombudsman has filed graft and corruption charges against a former city mayor and several municipal employees for allegedly maintaining ghost employees on the city payroll. The scheme, which ran for three years, resulted in the misappropriation of over 50 million pesos in public funds. Ombudsman Samuel Martires said the case involves violations of the Anti-Graft and Corrupt Practices Act and malversation of public funds.",
			URL:         "https://example.com/ombudsman-ghost-employees",
			Source:      "Ombudsman Office",
			PublishedAt: now.Add(-24 * time.Hour),
		},
		{
			Title:       "COA flags 2.3 billion pesos in irregular expenditures across multiple government agencies",
			Content:     "The Commission on Audit has flagged irregular financial transactions amounting to 2.3 billion pesos across various government agencies in its latest annual report. The audit findings include procurement violations, lack of supporting documents, and questionable disbursements. COA Chairperson Michael Aguinaldo emphasized the need for stricter compliance with procurement rules and proper documentation of government expenditures.",
			URL:         "https://example.com/coa-irregular-expenditures",
			Source:      "COA Reports",
			PublishedAt: now.Add(-48 * time.Hour),
		},
		{
			Title:       "Sandiganbayan convicts former provincial governor of plunder in fertilizer fund scam",
			Content:     "The Sandiganbayan has convicted a former provincial governor of plunder in connection with the misuse of fertilizer funds intended for farmers. The anti-graft court found the defendant guilty of diverting 200 million pesos meant for agricultural support programs to personal accounts and fictitious projects. The case is part of the larger fertilizer fund scam that implicated several local government officials nationwide.",
			URL:         "https://example.com/sandiganbayan-fertilizer-scam",
			Source:      "Sandiganbayan",
			PublishedAt: now.Add(-72 * time.Hour),
		},
		{
			Title:       "Anti-corruption drive intensifies as President orders lifestyle checks on all government officials",
			Content:     "President Ferdinand Marcos Jr. has ordered comprehensive lifestyle checks on all government officials as part of his administration's intensified anti-corruption campaign. The directive requires officials to submit updated Statements of Assets, Liabilities and Net Worth (SALN) and undergo scrutiny of their lifestyle and expenditures. The Civil Service Commission will coordinate with the Ombudsman to implement the directive across all government agencies.",
			URL:         "https://example.com/lifestyle-checks-directive",
			Source:      "Presidential Communications Office",
			PublishedAt: now.Add(-96 * time.Hour),
		},
	}
}
