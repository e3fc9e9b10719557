package domain

import "time"

// Status geral de um ciclo de coleta
const (
	CollectionStatusSuccess        = "success"
	CollectionStatusPartialSuccess = "partial_success"
	CollectionStatusFailed         = "failed"
)

// Status de cada fonte dentro do ciclo
const (
	SourceStatusSkipped       = "skipped"
	SourceStatusSuccess       = "success"
	SourceStatusWarning       = "warning"
	SourceStatusNotConfigured = "not_configured"
	SourceStatusError         = "error"
)

// Nomes das fontes, na ordem fixa de execução do fan-out
const (
	SourceAnalytics     = "google_analytics"
	SourceSearchConsole = "search_console"
	SourceGoogleAds     = "google_ads"
	SourcePageAnalytics = "page_analytics"
	SourceSearchQueries = "search_queries"
	SourceSearchPages   = "search_pages"
)

// Modos de coleta
const (
	CollectionModeDaily    = "daily"
	CollectionModeEnhanced = "enhanced"
)

// SourceReport guarda o resultado da coleta de uma única fonte
type SourceReport struct {
	Status         string `json:"status"`
	RecordsFetched int64  `json:"records_fetched"`
	RecordsStored  int64  `json:"records_stored"`
	Message        string `json:"message"`
}

// CollectionReport é o resultado agregado de um ciclo de coleta
type CollectionReport struct {
	RunID                 string                   `json:"run_id"`
	Mode                  string                   `json:"mode"`
	Status                string                   `json:"status"`
	DaysBack              int                      `json:"days_back"`
	Sources               map[string]*SourceReport `json:"sources"`
	TotalRecordsProcessed int64                    `json:"total_records_processed"`
	StartedAt             time.Time                `json:"started_at"`
	CompletedAt           time.Time                `json:"completed_at"`
	DurationSeconds       float64                  `json:"duration_seconds"`
}

// SuccessCount conta quantas fontes terminaram com status success
func (r *CollectionReport) SuccessCount() int {
	count := 0
	for _, source := range r.Sources {
		if source != nil && source.Status == SourceStatusSuccess {
			count++
		}
	}
	return count
}
