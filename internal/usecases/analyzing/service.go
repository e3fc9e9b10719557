package analyzing

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/repository"
	"github.com/vfg2006/marketing-metrics-api/internal/config"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
	"github.com/vfg2006/marketing-metrics-api/pkg/utils"
)

const (
	minDaysBack = 1
	maxDaysBack = 365

	// Abaixo disso não há como dividir a janela em duas metades comparáveis
	minRecordsPerCampaign = 4
)

// Service implementa a interface Analyzer
type Service struct {
	cfg                     *config.Config
	googleAdsDataRepository repository.GoogleAdsDataRepository
}

// NewService cria uma nova instância do serviço de análise de campanhas
func NewService(
	cfg *config.Config,
	googleAdsDataRepository repository.GoogleAdsDataRepository,
) Analyzer {
	return &Service{
		cfg:                     cfg,
		googleAdsDataRepository: googleAdsDataRepository,
	}
}

// AnalyzeCampaignTrends lê os registros armazenados da janela, agrupa por
// campanha e compara as médias da primeira metade com as da segunda. A análise
// é feita somente sobre o banco, sem nenhuma chamada externa.
func (s *Service) AnalyzeCampaignTrends(daysBack int) (*domain.TrendReport, error) {
	if daysBack < minDaysBack || daysBack > maxDaysBack {
		return nil, domain.ErrInvalidDaysBack
	}

	if s.cfg.GoogleAds.CustomerID == "" {
		return nil, domain.ErrNotConfigured
	}

	startDate, endDate := utils.LastNDaysWindow(daysBack, 0)

	entries, err := s.googleAdsDataRepository.GetByDateRange(s.cfg.GoogleAds.CustomerID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar os registros de campanhas: %w", err)
	}

	report := &domain.TrendReport{
		DaysBack:    daysBack,
		Totals:      computeTotals(entries),
		Campaigns:   make([]*domain.CampaignTrend, 0),
		GeneratedAt: time.Now(),
	}

	byCampaign := make(map[string][]*domain.AdsCampaignEntry)
	for _, entry := range entries {
		byCampaign[entry.CampaignID] = append(byCampaign[entry.CampaignID], entry)
	}

	campaignIDs := make([]string, 0, len(byCampaign))
	for campaignID := range byCampaign {
		campaignIDs = append(campaignIDs, campaignID)
	}
	sort.Strings(campaignIDs)

	for _, campaignID := range campaignIDs {
		report.Campaigns = append(report.Campaigns, analyzeCampaign(campaignID, byCampaign[campaignID]))
	}

	logrus.WithFields(logrus.Fields{
		"days_back": daysBack,
		"records":   len(entries),
		"campaigns": len(report.Campaigns),
	}).Info("analyzing: trend report generated")

	return report, nil
}

// analyzeCampaign diagnostica uma única campanha. Campanhas com poucos
// registros são devolvidas como insufficient_data, sem comparação de metades.
func analyzeCampaign(campaignID string, entries []*domain.AdsCampaignEntry) *domain.CampaignTrend {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	trend := &domain.CampaignTrend{
		CampaignID:   campaignID,
		CampaignName: latestCampaignName(entries),
		Records:      len(entries),
	}

	if len(entries) < minRecordsPerCampaign {
		trend.Status = domain.TrendStatusInsufficientData
		return trend
	}

	// Em janelas ímpares a segunda metade fica com o registro extra
	mid := len(entries) / 2
	firstHalf, secondHalf := entries[:mid], entries[mid:]

	metrics := []struct {
		name string
		// CPC e CTR zerados indicam dias sem cliques e distorceriam a média
		positiveOnly bool
		pick         func(*domain.AdsCampaignEntry) *float64
	}{
		{"impressions", false, func(e *domain.AdsCampaignEntry) *float64 { return int64AsFloat(e.Impressions) }},
		{"clicks", false, func(e *domain.AdsCampaignEntry) *float64 { return int64AsFloat(e.Clicks) }},
		{"cost", false, func(e *domain.AdsCampaignEntry) *float64 { return e.Cost }},
		{"conversions", false, func(e *domain.AdsCampaignEntry) *float64 { return e.Conversions }},
		{"ctr", true, func(e *domain.AdsCampaignEntry) *float64 { return e.CTR }},
		{"avg_cpc", true, func(e *domain.AdsCampaignEntry) *float64 { return e.AvgCPC }},
	}

	trend.Changes = make(map[string]*domain.MetricChange, len(metrics))
	for _, metric := range metrics {
		firstAvg := safeAvg(halfValues(firstHalf, metric.pick, metric.positiveOnly))
		secondAvg := safeAvg(halfValues(secondHalf, metric.pick, metric.positiveOnly))

		trend.Changes[metric.name] = &domain.MetricChange{
			FirstHalfAvg:  utils.RoundWithTwoDecimalPlace(firstAvg),
			SecondHalfAvg: utils.RoundWithTwoDecimalPlace(secondAvg),
			ChangePct:     utils.RoundWithTwoDecimalPlace(pctChange(firstAvg, secondAvg)),
		}
	}

	trend.Issues = detectIssues(trend.Changes)
	if len(trend.Issues) > 0 {
		trend.Status = domain.TrendStatusAttention
	} else {
		trend.Status = domain.TrendStatusHealthy
	}

	return trend
}

func detectIssues(changes map[string]*domain.MetricChange) []*domain.TrendIssue {
	var issues []*domain.TrendIssue

	if change := changes["impressions"]; change.ChangePct < domain.TrendImpressionsDropThreshold {
		issues = append(issues, &domain.TrendIssue{
			Metric:         "impressions",
			Description:    "Queda significativa de impressões",
			Recommendation: "Revise os lances, o orçamento e a segmentação da campanha",
		})
	}

	if change := changes["avg_cpc"]; change.ChangePct > domain.TrendCPCRiseThreshold {
		issues = append(issues, &domain.TrendIssue{
			Metric:         "avg_cpc",
			Description:    "CPC médio em alta",
			Recommendation: "Revise o índice de qualidade dos anúncios e considere palavras-chave negativas",
		})
	}

	if change := changes["ctr"]; change.ChangePct < domain.TrendCTRDropThreshold {
		issues = append(issues, &domain.TrendIssue{
			Metric:         "ctr",
			Description:    "CTR em queda",
			Recommendation: "Teste novas variações de texto e revise a relevância dos anúncios",
		})
	}

	return issues
}

// computeTotals consolida a janela inteira. As razões médias são derivadas dos
// totais, não da média das razões diárias.
func computeTotals(entries []*domain.AdsCampaignEntry) *domain.TrendTotals {
	totals := &domain.TrendTotals{}

	for _, entry := range entries {
		if entry.Impressions != nil {
			totals.Impressions += *entry.Impressions
		}
		if entry.Clicks != nil {
			totals.Clicks += *entry.Clicks
		}
		if entry.Cost != nil {
			totals.Cost += *entry.Cost
		}
	}

	if totals.Clicks > 0 {
		totals.AvgCPC = utils.RoundWithTwoDecimalPlace(totals.Cost / float64(totals.Clicks))
	}
	if totals.Impressions > 0 {
		totals.AvgCTR = utils.RoundWithTwoDecimalPlace(float64(totals.Clicks) / float64(totals.Impressions) * 100)
	}
	totals.Cost = utils.RoundWithTwoDecimalPlace(totals.Cost)

	return totals
}

func halfValues(entries []*domain.AdsCampaignEntry, pick func(*domain.AdsCampaignEntry) *float64, positiveOnly bool) []float64 {
	values := make([]float64, 0, len(entries))
	for _, entry := range entries {
		value := pick(entry)
		if value == nil {
			continue
		}
		if positiveOnly && *value <= 0 {
			continue
		}
		values = append(values, *value)
	}
	return values
}

func safeAvg(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	total := 0.0
	for _, value := range values {
		total += value
	}
	return total / float64(len(values))
}

// pctChange devolve 0 quando não há base de comparação na primeira metade
func pctChange(first, second float64) float64 {
	if first <= 0 {
		return 0
	}
	return (second - first) / first * 100
}

func latestCampaignName(entries []*domain.AdsCampaignEntry) string {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].CampaignName != nil && *entries[i].CampaignName != "" {
			return *entries[i].CampaignName
		}
	}
	return ""
}

func int64AsFloat(v *int64) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
