package entity

// RevenueData is the estimated-revenue slice for one company domain.
type RevenueData struct {
	Domain        string    `json:"domain"`
	AnnualRevenue *float64  `json:"annual_revenue"`
	Currency      string    `json:"currency"`
	RevenueSeries []float64 `json:"revenue_series"`
	EmployeeCount *float64  `json:"employee_count"`
	FiscalYear    int       `json:"fiscal_year"`
}

// FundingRound is one entry in a company's fundraising history.
type FundingRound struct {
	RoundType string   `json:"round_type"`
	Amount    *float64 `json:"amount"`
	Date      string   `json:"date"`
	Investors []string `json:"investors"`
}

// FundraisingData is the fundraising slice for one company.
type FundraisingData struct {
	Brand         string         `json:"brand"`
	TotalRaised   *float64       `json:"total_raised"`
	LastValuation *float64       `json:"last_valuation"`
	Rounds        []FundingRound `json:"rounds"`
}
