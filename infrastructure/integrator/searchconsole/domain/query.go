package domain

// SearchAnalyticsRequest é o corpo da chamada searchAnalytics/query da API do
// Search Console
type SearchAnalyticsRequest struct {
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Dimensions []string `json:"dimensions"`
	RowLimit   int      `json:"rowLimit,omitempty"`
}

// SearchAnalyticsResponse é a resposta da chamada searchAnalytics/query. O CTR
// chega como fração entre 0 e 1.
type SearchAnalyticsResponse struct {
	Rows []SearchAnalyticsRow `json:"rows"`
}

type SearchAnalyticsRow struct {
	Keys        []string `json:"keys"`
	Clicks      float64  `json:"clicks"`
	Impressions float64  `json:"impressions"`
	CTR         float64  `json:"ctr"`
	Position    float64  `json:"position"`
}

// SiteInfo é a resposta do endpoint de consulta de um site cadastrado
type SiteInfo struct {
	SiteURL         string `json:"siteUrl"`
	PermissionLevel string `json:"permissionLevel"`
}
