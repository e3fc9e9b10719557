package domain

import (
	"encoding/json"
	"time"
)

// AnalyticsEntry representa as métricas diárias de tráfego do site armazenadas no banco.
// Campos de métrica são ponteiros: um campo nil não foi informado pela fonte e
// não deve ser sobrescrito no merge.
type AnalyticsEntry struct {
	ID                 int64           `json:"id"`
	PropertyID         string          `json:"property_id"`
	Date               time.Time       `json:"date"`
	Sessions           *int64          `json:"sessions"`
	TotalUsers         *int64          `json:"total_users"`
	NewUsers           *int64          `json:"new_users"`
	PageViews          *int64          `json:"page_views"`
	AvgSessionDuration *float64        `json:"avg_session_duration"`
	BounceRate         *float64        `json:"bounce_rate"`
	PagesPerSession    *float64        `json:"pages_per_session"`
	Conversions        *float64        `json:"conversions"`
	RawPayload         json.RawMessage `json:"raw_payload,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
