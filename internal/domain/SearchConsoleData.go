package domain

import (
	"encoding/json"
	"time"
)

// SearchConsoleEntry representa as métricas diárias de busca orgânica por site
type SearchConsoleEntry struct {
	ID          int64           `json:"id"`
	SiteURL     string          `json:"site_url"`
	Date        time.Time       `json:"date"`
	Clicks      *int64          `json:"clicks"`
	Impressions *int64          `json:"impressions"`
	CTR         *float64        `json:"ctr"`
	AvgPosition *float64        `json:"avg_position"`
	RawPayload  json.RawMessage `json:"raw_payload,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
