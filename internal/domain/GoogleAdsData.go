package domain

import (
	"encoding/json"
	"time"
)

// AdsCampaignEntry representa as métricas diárias de uma campanha do Google Ads.
// As razões (CTR, CPC médio, taxa de conversão) são calculadas no momento da
// coleta e nunca recalculadas pelo armazenamento.
type AdsCampaignEntry struct {
	ID                int64           `json:"id"`
	CustomerID        string          `json:"customer_id"`
	CampaignID        string          `json:"campaign_id"`
	Date              time.Time       `json:"date"`
	CampaignName      *string         `json:"campaign_name"`
	Impressions       *int64          `json:"impressions"`
	Clicks            *int64          `json:"clicks"`
	Cost              *float64        `json:"cost"`
	Conversions       *float64        `json:"conversions"`
	CTR               *float64        `json:"ctr"`
	AvgCPC            *float64        `json:"avg_cpc"`
	CostPerConversion *float64        `json:"cost_per_conversion"`
	ConversionRate    *float64        `json:"conversion_rate"`
	RawPayload        json.RawMessage `json:"raw_payload,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
