package domain

import "time"

// TableSummary resume uma tabela de dados: total de linhas e o registro mais
// recente. Apenas o identificador da respectiva fonte é preenchido.
type TableSummary struct {
	TotalRecords int64      `json:"total_records"`
	LatestDate   *time.Time `json:"latest_date,omitempty"`
	PropertyID   string     `json:"property_id,omitempty"`
	SiteURL      string     `json:"site_url,omitempty"`
	CustomerID   string     `json:"customer_id,omitempty"`
}

// BreakdownCounts traz apenas as contagens das tabelas de quebra por dimensão,
// que não possuem coluna de data
type BreakdownCounts struct {
	PageAnalytics int64 `json:"page_analytics"`
	SearchQueries int64 `json:"search_queries"`
	SearchPages   int64 `json:"search_pages"`
}

// StoreSummary é a visão agregada do armazenamento para o endpoint de resumo
type StoreSummary struct {
	AnalyticsData     *TableSummary    `json:"analytics_data"`
	SearchConsoleData *TableSummary    `json:"search_console_data"`
	GoogleAdsData     *TableSummary    `json:"google_ads_data"`
	Breakdowns        *BreakdownCounts `json:"breakdowns"`
	GeneratedAt       time.Time        `json:"generated_at"`
}

// CleanupReport é o resultado de uma varredura de retenção
type CleanupReport struct {
	Message       string           `json:"message"`
	DaysToKeep    int              `json:"days_to_keep"`
	CutoffDate    string           `json:"cutoff_date"`
	DeletedCounts map[string]int64 `json:"deleted_counts"`
	TotalDeleted  int64            `json:"total_deleted"`
}
