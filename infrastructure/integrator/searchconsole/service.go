package searchconsole

import (
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	searchconsoledomain "github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/searchconsole/domain"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/searchconsole/searchconsoleclient"
	"github.com/vfg2006/marketing-metrics-api/internal/config"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
	"github.com/vfg2006/marketing-metrics-api/pkg/utils"
)

// O Search Console publica os dados com cerca de três dias de defasagem, então
// as janelas relativas terminam três dias antes de hoje.
const searchDataLagDays = 3

// Limites de linhas por consulta
const (
	dailyRowLimit   = 1000
	topQueriesLimit = 100
	topPagesLimit   = 50
)

type SearchConsoleIntegrator interface {
	FetchDailyMetrics(siteURL string, startDate, endDate time.Time) ([]*domain.SearchConsoleEntry, error)
	FetchDailyMetricsForLastDays(days int) ([]*domain.SearchConsoleEntry, error)
	FetchTopQueries(siteURL string, startDate, endDate time.Time) ([]*domain.SearchQueryEntry, error)
	FetchTopQueriesForLastDays(days int) ([]*domain.SearchQueryEntry, error)
	FetchTopPages(siteURL string, startDate, endDate time.Time) ([]*domain.SearchPageEntry, error)
	FetchTopPagesForLastDays(days int) ([]*domain.SearchPageEntry, error)
	CheckConnection() (*domain.ConnectionInfo, error)
}

type SearchConsoleService struct {
	cfg    *config.Config
	Client searchconsoleclient.Client
}

func New(cfg *config.Config, client searchconsoleclient.Client) SearchConsoleIntegrator {
	return &SearchConsoleService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchDailyMetrics busca as métricas de busca orgânica agregadas por dia na
// janela informada.
func (s *SearchConsoleService) FetchDailyMetrics(siteURL string, startDate, endDate time.Time) ([]*domain.SearchConsoleEntry, error) {
	if siteURL == "" {
		return nil, domain.ErrNotConfigured
	}

	request := &searchconsoledomain.SearchAnalyticsRequest{
		StartDate:  startDate.Format(time.DateOnly),
		EndDate:    endDate.Format(time.DateOnly),
		Dimensions: []string{"date"},
		RowLimit:   dailyRowLimit,
	}

	resp, err := s.Client.QuerySearchAnalytics(siteURL, request)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"site_url": siteURL,
			"error":    err.Error(),
		}).Error("searchconsole: failed to query daily metrics")
		return nil, err
	}

	entries := make([]*domain.SearchConsoleEntry, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		entry := FactorySearchConsoleEntry(siteURL, row)
		if entry == nil {
			continue
		}
		entries = append(entries, entry)
	}

	logrus.WithFields(logrus.Fields{
		"site_url": siteURL,
		"rows":     len(entries),
	}).Debug("searchconsole: successfully fetched daily metrics")

	return entries, nil
}

func (s *SearchConsoleService) FetchDailyMetricsForLastDays(days int) ([]*domain.SearchConsoleEntry, error) {
	startDate, endDate := utils.LastNDaysWindow(days, searchDataLagDays)
	return s.FetchDailyMetrics(s.cfg.SearchConsole.SiteURL, startDate, endDate)
}

// FetchTopQueries busca os termos de busca de maior volume na janela informada.
func (s *SearchConsoleService) FetchTopQueries(siteURL string, startDate, endDate time.Time) ([]*domain.SearchQueryEntry, error) {
	if siteURL == "" {
		return nil, domain.ErrNotConfigured
	}

	request := &searchconsoledomain.SearchAnalyticsRequest{
		StartDate:  startDate.Format(time.DateOnly),
		EndDate:    endDate.Format(time.DateOnly),
		Dimensions: []string{"query"},
		RowLimit:   topQueriesLimit,
	}

	resp, err := s.Client.QuerySearchAnalytics(siteURL, request)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"site_url": siteURL,
			"error":    err.Error(),
		}).Error("searchconsole: failed to query top queries")
		return nil, err
	}

	dateRange := utils.FormatDateRangeLabel(startDate, endDate)

	entries := make([]*domain.SearchQueryEntry, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		entry := FactorySearchQueryEntry(siteURL, dateRange, row)
		if entry == nil {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *SearchConsoleService) FetchTopQueriesForLastDays(days int) ([]*domain.SearchQueryEntry, error) {
	startDate, endDate := utils.LastNDaysWindow(days, searchDataLagDays)
	return s.FetchTopQueries(s.cfg.SearchConsole.SiteURL, startDate, endDate)
}

// FetchTopPages busca as páginas de destino de maior volume na busca orgânica
// na janela informada.
func (s *SearchConsoleService) FetchTopPages(siteURL string, startDate, endDate time.Time) ([]*domain.SearchPageEntry, error) {
	if siteURL == "" {
		return nil, domain.ErrNotConfigured
	}

	request := &searchconsoledomain.SearchAnalyticsRequest{
		StartDate:  startDate.Format(time.DateOnly),
		EndDate:    endDate.Format(time.DateOnly),
		Dimensions: []string{"page"},
		RowLimit:   topPagesLimit,
	}

	resp, err := s.Client.QuerySearchAnalytics(siteURL, request)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"site_url": siteURL,
			"error":    err.Error(),
		}).Error("searchconsole: failed to query top pages")
		return nil, err
	}

	dateRange := utils.FormatDateRangeLabel(startDate, endDate)

	entries := make([]*domain.SearchPageEntry, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		entry := FactorySearchPageEntry(siteURL, dateRange, row)
		if entry == nil {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *SearchConsoleService) FetchTopPagesForLastDays(days int) ([]*domain.SearchPageEntry, error) {
	startDate, endDate := utils.LastNDaysWindow(days, searchDataLagDays)
	return s.FetchTopPages(s.cfg.SearchConsole.SiteURL, startDate, endDate)
}

// CheckConnection sonda a API consultando o cadastro do site configurado.
func (s *SearchConsoleService) CheckConnection() (*domain.ConnectionInfo, error) {
	if s.cfg.SearchConsole.SiteURL == "" {
		return nil, domain.ErrNotConfigured
	}

	info, err := s.Client.GetSiteInfo(s.cfg.SearchConsole.SiteURL)
	if err != nil {
		return nil, err
	}

	return &domain.ConnectionInfo{
		EntityID: s.cfg.SearchConsole.SiteURL,
		Detail:   info.PermissionLevel,
	}, nil
}

// FactorySearchConsoleEntry converte uma linha agregada por dia no registro de
// domínio. Retorna nil quando a data da linha não pode ser interpretada.
func FactorySearchConsoleEntry(siteURL string, row searchconsoledomain.SearchAnalyticsRow) *domain.SearchConsoleEntry {
	if len(row.Keys) == 0 {
		return nil
	}

	date, err := time.Parse(time.DateOnly, row.Keys[0])
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"site_url":   siteURL,
			"date_value": row.Keys[0],
			"error":      err.Error(),
		}).Warn("searchconsole: skipping row with unparseable date")
		return nil
	}

	return &domain.SearchConsoleEntry{
		SiteURL:     siteURL,
		Date:        date,
		Clicks:      countFromFloat(row.Clicks),
		Impressions: countFromFloat(row.Impressions),
		CTR:         percentFromFraction(row.CTR),
		AvgPosition: roundedDecimal(row.Position),
		RawPayload:  factoryRawPayload(row),
	}
}

// FactorySearchQueryEntry converte uma linha agregada por termo de busca no
// registro de domínio.
func FactorySearchQueryEntry(siteURL, dateRange string, row searchconsoledomain.SearchAnalyticsRow) *domain.SearchQueryEntry {
	if len(row.Keys) == 0 || row.Keys[0] == "" {
		return nil
	}

	return &domain.SearchQueryEntry{
		SiteURL:     siteURL,
		Query:       row.Keys[0],
		DateRange:   dateRange,
		Clicks:      countFromFloat(row.Clicks),
		Impressions: countFromFloat(row.Impressions),
		CTR:         percentFromFraction(row.CTR),
		AvgPosition: roundedDecimal(row.Position),
		RawPayload:  factoryRawPayload(row),
	}
}

// FactorySearchPageEntry converte uma linha agregada por página de destino no
// registro de domínio.
func FactorySearchPageEntry(siteURL, dateRange string, row searchconsoledomain.SearchAnalyticsRow) *domain.SearchPageEntry {
	if len(row.Keys) == 0 || row.Keys[0] == "" {
		return nil
	}

	return &domain.SearchPageEntry{
		SiteURL:     siteURL,
		Page:        row.Keys[0],
		DateRange:   dateRange,
		Clicks:      countFromFloat(row.Clicks),
		Impressions: countFromFloat(row.Impressions),
		CTR:         percentFromFraction(row.CTR),
		AvgPosition: roundedDecimal(row.Position),
		RawPayload:  factoryRawPayload(row),
	}
}

func countFromFloat(value float64) *int64 {
	count := int64(value)
	return &count
}

// percentFromFraction converte o CTR fracionário da API para percentual.
func percentFromFraction(value float64) *float64 {
	percent := utils.RoundWithTwoDecimalPlace(value * 100)
	return &percent
}

func roundedDecimal(value float64) *float64 {
	rounded := utils.RoundWithTwoDecimalPlace(value)
	return &rounded
}

func factoryRawPayload(row searchconsoledomain.SearchAnalyticsRow) json.RawMessage {
	raw, err := json.Marshal(row)
	if err != nil {
		return nil
	}
	return raw
}
