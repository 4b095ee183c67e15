package entity

import "time"

// Company is a tracked competitor as the backend reports it. Created
// server-side when a user registers a competitor; read-only here apart
// from the optimistic list insert/remove in the company store.
type Company struct {
	Id            int64      `json:"id"`
	UserId        int64      `json:"user_id"`
	Domain        string     `json:"domain"`
	BrandName     string     `json:"brand_name"`
	ColorInfo     string     `json:"color_info"`
	IsActive      bool       `json:"is_active"`
	IsFavorite    bool       `json:"is_favorite"`
	LastScrapedAt *time.Time `json:"last_scraped_at"`
	TotalScrapes  int        `json:"total_scrapes"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// CompanyOverview is the aggregate snapshot shown at the top of a
// company page.
type CompanyOverview struct {
	Company        Company  `json:"company"`
	TotalFollowers *float64 `json:"total_followers"`
	MonthlyVisits  *float64 `json:"monthly_visits"`
	SentimentScore *float64 `json:"sentiment_score"`
	RevenueAnnual  *float64 `json:"revenue_annual"`
}
