package domain

import (
	"encoding/json"
	"time"
)

// SearchQueryEntry representa as métricas agregadas por termo de busca em uma
// janela de datas
type SearchQueryEntry struct {
	ID          int64           `json:"id"`
	SiteURL     string          `json:"site_url"`
	Query       string          `json:"query"`
	DateRange   string          `json:"date_range"`
	Clicks      *int64          `json:"clicks"`
	Impressions *int64          `json:"impressions"`
	CTR         *float64        `json:"ctr"`
	AvgPosition *float64        `json:"avg_position"`
	RawPayload  json.RawMessage `json:"raw_payload,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SearchPageEntry representa as métricas agregadas por página de destino da
// busca orgânica em uma janela de datas
type SearchPageEntry struct {
	ID          int64           `json:"id"`
	SiteURL     string          `json:"site_url"`
	Page        string          `json:"page"`
	DateRange   string          `json:"date_range"`
	Clicks      *int64          `json:"clicks"`
	Impressions *int64          `json:"impressions"`
	CTR         *float64        `json:"ctr"`
	AvgPosition *float64        `json:"avg_position"`
	RawPayload  json.RawMessage `json:"raw_payload,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
