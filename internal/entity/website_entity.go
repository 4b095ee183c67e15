package entity

// WebsiteData carries the SEO metrics for one tracked domain.
type WebsiteData struct {
	Domain           string    `json:"domain"`
	DomainAuthority  *float64  `json:"domain_authority"`
	OrganicTraffic   *float64  `json:"organic_traffic"`
	Backlinks        *float64  `json:"backlinks"`
	BounceRate       *float64  `json:"bounce_rate"`
	AvgVisitSeconds  *float64  `json:"avg_visit_seconds"`
	TrafficSeries    []float64 `json:"traffic_series"`
	TopKeywords      []string  `json:"top_keywords"`
	ReferringDomains *float64  `json:"referring_domains"`
}

// KeywordSuggestion is one row of the keyword-opportunity table.
type KeywordSuggestion struct {
	Keyword    string   `json:"keyword"`
	Volume     *float64 `json:"volume"`
	Difficulty *float64 `json:"difficulty"`
	CPC        *float64 `json:"cpc"`
}
