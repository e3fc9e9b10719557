package googleads

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	googleadsdomain "github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/googleads/googleadsclient"
	"github.com/vfg2006/marketing-metrics-api/internal/config"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
	"github.com/vfg2006/marketing-metrics-api/pkg/utils"
)

// O Google Ads fecha as métricas do dia anterior, então as janelas relativas
// terminam ontem.
const adsDataLagDays = 1

const campaignMetricsQuery = `
	SELECT
		campaign.id,
		campaign.name,
		segments.date,
		metrics.impressions,
		metrics.clicks,
		metrics.cost_micros,
		metrics.conversions
	FROM campaign
	WHERE segments.date BETWEEN '%s' AND '%s'
	ORDER BY segments.date ASC
`

const accountProbeQuery = `
	SELECT
		metrics.impressions,
		metrics.clicks
	FROM customer
	WHERE segments.date BETWEEN '%s' AND '%s'
`

type GoogleAdsIntegrator interface {
	FetchCampaignMetrics(customerID string, startDate, endDate time.Time) ([]*domain.AdsCampaignEntry, error)
	FetchCampaignMetricsForLastDays(days int) ([]*domain.AdsCampaignEntry, error)
	CheckConnection() (*domain.ConnectionInfo, error)
}

type GoogleAdsService struct {
	cfg    *config.Config
	Client googleadsclient.Client
}

func New(cfg *config.Config, client googleadsclient.Client) GoogleAdsIntegrator {
	return &GoogleAdsService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchCampaignMetrics busca as métricas diárias por campanha na janela
// informada. Quando a API falha e o fallback de demonstração está habilitado,
// devolve o conjunto sintético sinalizado campo a campo no raw_payload.
func (s *GoogleAdsService) FetchCampaignMetrics(customerID string, startDate, endDate time.Time) ([]*domain.AdsCampaignEntry, error) {
	if customerID == "" || s.cfg.GoogleAds.DeveloperToken == "" {
		return nil, domain.ErrNotConfigured
	}

	query := fmt.Sprintf(campaignMetricsQuery,
		startDate.Format(time.DateOnly),
		endDate.Format(time.DateOnly),
	)

	results, err := s.Client.Search(customerID, query)
	if err != nil {
		if s.cfg.GoogleAds.DemoFallback {
			logrus.WithFields(logrus.Fields{
				"customer_id": customerID,
				"error":       err.Error(),
			}).Warn("googleads: API unavailable, substituting demo dataset")
			return DemoCampaignDataset(customerID, startDate, endDate), nil
		}

		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"error":       err.Error(),
		}).Error("googleads: failed to search campaign metrics")
		return nil, err
	}

	entries := make([]*domain.AdsCampaignEntry, 0, len(results))
	for _, result := range results {
		entry := FactoryAdsCampaignEntry(customerID, result)
		if entry == nil {
			continue
		}
		entries = append(entries, entry)
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"rows":        len(entries),
	}).Debug("googleads: successfully fetched campaign metrics")

	return entries, nil
}

func (s *GoogleAdsService) FetchCampaignMetricsForLastDays(days int) ([]*domain.AdsCampaignEntry, error) {
	startDate, endDate := utils.LastNDaysWindow(days, adsDataLagDays)
	return s.FetchCampaignMetrics(s.cfg.GoogleAds.CustomerID, startDate, endDate)
}

// CheckConnection sonda a API com uma consulta mínima no nível da conta,
// restrita ao dia anterior. O fallback de demonstração não se aplica aqui.
func (s *GoogleAdsService) CheckConnection() (*domain.ConnectionInfo, error) {
	if s.cfg.GoogleAds.CustomerID == "" || s.cfg.GoogleAds.DeveloperToken == "" {
		return nil, domain.ErrNotConfigured
	}

	yesterday := time.Now().AddDate(0, 0, -1).Format(time.DateOnly)
	query := fmt.Sprintf(accountProbeQuery, yesterday, yesterday)

	results, err := s.Client.Search(s.cfg.GoogleAds.CustomerID, query)
	if err != nil {
		return nil, err
	}

	return &domain.ConnectionInfo{
		EntityID: s.cfg.GoogleAds.CustomerID,
		Detail:   fmt.Sprintf("%d registros em %s", len(results), yesterday),
	}, nil
}

// adsRawPayload espelha a linha crua da API no registro persistido. O campo
// demo marca registros do conjunto sintético de demonstração.
type adsRawPayload struct {
	Demo         bool          `json:"demo,omitempty"`
	CampaignID   string        `json:"campaign_id"`
	CampaignName string        `json:"campaign_name"`
	Date         string        `json:"date"`
	Metrics      adsRawMetrics `json:"metrics"`
}

type adsRawMetrics struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	CostMicros  int64   `json:"cost_micros"`
	Conversions float64 `json:"conversions"`
}

// FactoryAdsCampaignEntry converte uma linha da consulta GAQL no registro de
// domínio, com custo em unidades monetárias e razões derivadas protegidas
// contra divisão por zero. Retorna nil quando a linha não identifica campanha
// ou data.
func FactoryAdsCampaignEntry(customerID string, result googleadsdomain.SearchResult) *domain.AdsCampaignEntry {
	if result.Campaign.ID == "" {
		logrus.WithField("customer_id", customerID).
			Warn("googleads: skipping row without campaign id")
		return nil
	}

	date, err := time.Parse(time.DateOnly, result.Segments.Date)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"customer_id": customerID,
			"campaign_id": result.Campaign.ID,
			"date_value":  result.Segments.Date,
			"error":       err.Error(),
		}).Warn("googleads: skipping row with unparseable date")
		return nil
	}

	impressions := parseMetricCount("impressions", result.Metrics.Impressions)
	clicks := parseMetricCount("clicks", result.Metrics.Clicks)
	costMicros := parseMetricCount("cost_micros", result.Metrics.CostMicros)
	conversions := result.Metrics.Conversions

	return buildAdsCampaignEntry(
		customerID,
		result.Campaign.ID,
		result.Campaign.Name,
		date,
		impressions,
		clicks,
		costMicros,
		conversions,
		false,
	)
}

// IsDemoEntry informa se o registro veio do conjunto sintético de demonstração.
func IsDemoEntry(entry *domain.AdsCampaignEntry) bool {
	if entry == nil || len(entry.RawPayload) == 0 {
		return false
	}

	flag := struct {
		Demo bool `json:"demo"`
	}{}
	if err := json.Unmarshal(entry.RawPayload, &flag); err != nil {
		return false
	}

	return flag.Demo
}

// DemoCampaignDataset gera o conjunto sintético usado quando a API está
// indisponível e o fallback de demonstração está habilitado. Os números são
// determinísticos por dia para facilitar inspeção.
func DemoCampaignDataset(customerID string, startDate, endDate time.Time) []*domain.AdsCampaignEntry {
	campaigns := []struct {
		id   string
		name string
	}{
		{id: "demo-1001", name: "Campanha Institucional (demo)"},
		{id: "demo-1002", name: "Campanha Promocional (demo)"},
	}

	entries := make([]*domain.AdsCampaignEntry, 0)
	for day := 0; !startDate.AddDate(0, 0, day).After(endDate); day++ {
		date := startDate.AddDate(0, 0, day)

		for i, campaign := range campaigns {
			base := int64((i + 1) * 400)
			impressions := base*3 + int64(day*37)
			clicks := base/10 + int64(day*3)
			costMicros := (base*8 + int64(day*211)) * 10000
			conversions := float64(clicks) * 0.08

			entries = append(entries, buildAdsCampaignEntry(
				customerID,
				campaign.id,
				campaign.name,
				date,
				impressions,
				clicks,
				costMicros,
				conversions,
				true,
			))
		}
	}

	return entries
}

func buildAdsCampaignEntry(customerID, campaignID, campaignName string, date time.Time, impressions, clicks, costMicros int64, conversions float64, demo bool) *domain.AdsCampaignEntry {
	cost := utils.RoundWithTwoDecimalPlace(float64(costMicros) / 1_000_000)
	ctr := utils.RoundWithTwoDecimalPlace(utils.SafeDivide(float64(clicks), float64(impressions)) * 100)
	avgCPC := utils.RoundWithTwoDecimalPlace(utils.SafeDivide(cost, float64(clicks)))
	costPerConversion := utils.RoundWithTwoDecimalPlace(utils.SafeDivide(cost, conversions))
	conversionRate := utils.RoundWithTwoDecimalPlace(utils.SafeDivide(conversions, float64(clicks)) * 100)

	raw, err := json.Marshal(&adsRawPayload{
		Demo:         demo,
		CampaignID:   campaignID,
		CampaignName: campaignName,
		Date:         date.Format(time.DateOnly),
		Metrics: adsRawMetrics{
			Impressions: impressions,
			Clicks:      clicks,
			CostMicros:  costMicros,
			Conversions: conversions,
		},
	})
	if err != nil {
		raw = nil
	}

	return &domain.AdsCampaignEntry{
		CustomerID:        customerID,
		CampaignID:        campaignID,
		Date:              date,
		CampaignName:      &campaignName,
		Impressions:       &impressions,
		Clicks:            &clicks,
		Cost:              &cost,
		Conversions:       &conversions,
		CTR:               &ctr,
		AvgCPC:            &avgCPC,
		CostPerConversion: &costPerConversion,
		ConversionRate:    &conversionRate,
		RawPayload:        raw,
	}
}

func parseMetricCount(name, value string) int64 {
	// A API REST omite métricas zeradas.
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"metric": name,
			"value":  value,
			"error":  err.Error(),
		}).Warn("googleads: error converting metric to integer")
		return 0
	}

	return parsed
}
