package entity

// ScrapeJob records the per-platform job fan-out the backend starts
// when a new competitor is registered. The gateway only keeps the
// returned identifiers; completion is observed indirectly when the
// resource data for the domain is fetched later.
type ScrapeJob struct {
	Brand            string         `json:"brand"`
	Domain           string         `json:"domain"`
	JobIdsByPlatform map[string]int `json:"job_ids_by_platform"`
}
