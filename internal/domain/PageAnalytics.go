package domain

import (
	"encoding/json"
	"time"
)

// PageAnalyticsEntry representa as métricas agregadas por página em uma janela
// de datas. DateRange é o rótulo "<início>_<fim>" no formato 2006-01-02.
type PageAnalyticsEntry struct {
	ID                 int64           `json:"id"`
	PropertyID         string          `json:"property_id"`
	PagePath           string          `json:"page_path"`
	DateRange          string          `json:"date_range"`
	PageViews          *int64          `json:"page_views"`
	Sessions           *int64          `json:"sessions"`
	TotalUsers         *int64          `json:"total_users"`
	AvgSessionDuration *float64        `json:"avg_session_duration"`
	BounceRate         *float64        `json:"bounce_rate"`
	RawPayload         json.RawMessage `json:"raw_payload,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
