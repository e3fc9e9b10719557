package domain

// Buckets de canal usados no resumo de origens de tráfego
const (
	ChannelOrganic  = "organic"
	ChannelDirect   = "direct"
	ChannelReferral = "referral"
	ChannelSocial   = "social"
	ChannelPaid     = "paid"
	ChannelOther    = "other"
)

// ChannelMetrics agrega sessões e usuários de um bucket de canal
type ChannelMetrics struct {
	Sessions   int64   `json:"sessions"`
	TotalUsers int64   `json:"total_users"`
	Share      float64 `json:"share"`
}

// TrafficSourceSummary é o resumo de origens de tráfego por canal em uma janela
// de datas. Não é persistido; serve apenas à superfície de consulta.
type TrafficSourceSummary struct {
	PropertyID string                     `json:"property_id"`
	StartDate  string                     `json:"start_date"`
	EndDate    string                     `json:"end_date"`
	Channels   map[string]*ChannelMetrics `json:"channels"`
}
