package dto

// AddCompanyRequest registers a new competitor to track. The backend
// creates the company and fans out one scrape job per platform.
type AddCompanyRequest struct {
	BrandName string `json:"brand_name" validate:"required,min=2"`
	Domain    string `json:"domain" validate:"required,fqdn"`
}

// RemoveCompanyRequest drops a competitor from the local list.
type RemoveCompanyRequest struct {
	Id int64 `json:"id" validate:"required"`
}

// ScrapeRequest asks the backend to start a scrape fan-out for a
// brand/domain pair.
type ScrapeRequest struct {
	Brand  string `json:"brand" validate:"required"`
	Domain string `json:"domain" validate:"required"`
}
