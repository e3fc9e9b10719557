package domain

import "time"

// Status de uma campanha na análise de tendências
const (
	TrendStatusHealthy          = "healthy"
	TrendStatusAttention        = "attention"
	TrendStatusInsufficientData = "insufficient_data"
)

// Limiares de variação percentual que disparam alertas
const (
	TrendImpressionsDropThreshold = -20.0
	TrendCPCRiseThreshold         = 25.0
	TrendCTRDropThreshold         = -15.0
)

// MetricChange compara a média da primeira metade da janela com a da segunda
type MetricChange struct {
	FirstHalfAvg  float64 `json:"first_half_avg"`
	SecondHalfAvg float64 `json:"second_half_avg"`
	ChangePct     float64 `json:"change_pct"`
}

// TrendIssue descreve um desvio relevante detectado em uma métrica
type TrendIssue struct {
	Metric         string `json:"metric"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

// CampaignTrend é o diagnóstico de uma campanha dentro da janela analisada
type CampaignTrend struct {
	CampaignID   string                   `json:"campaign_id"`
	CampaignName string                   `json:"campaign_name"`
	Status       string                   `json:"status"`
	Records      int                      `json:"records"`
	Changes      map[string]*MetricChange `json:"changes,omitempty"`
	Issues       []*TrendIssue            `json:"issues,omitempty"`
}

// TrendTotals consolida a janela inteira, sem quebra por campanha
type TrendTotals struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Cost        float64 `json:"cost"`
	AvgCPC      float64 `json:"avg_cpc"`
	AvgCTR      float64 `json:"avg_ctr"`
}

// TrendReport agrega os diagnósticos de todas as campanhas com dados na janela
type TrendReport struct {
	DaysBack    int              `json:"days_back"`
	Totals      *TrendTotals     `json:"totals"`
	Campaigns   []*CampaignTrend `json:"campaigns"`
	GeneratedAt time.Time        `json:"generated_at"`
}
