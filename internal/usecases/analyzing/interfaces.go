package analyzing

import "github.com/vfg2006/marketing-metrics-api/internal/domain"

// Analyzer produz diagnósticos de tendência sobre as campanhas armazenadas
type Analyzer interface {
	// AnalyzeCampaignTrends compara as médias da primeira metade da janela com
	// as da segunda, por campanha, e aponta as que merecem atenção
	AnalyzeCampaignTrends(daysBack int) (*domain.TrendReport, error)
}
