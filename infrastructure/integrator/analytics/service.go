package analytics

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/analytics/analyticsclient"
	analyticsdomain "github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/analytics/domain"
	"github.com/vfg2006/marketing-metrics-api/internal/config"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
	"github.com/vfg2006/marketing-metrics-api/pkg/utils"
)

// Métricas solicitadas por consulta. A ordem define a posição dos valores na
// resposta e precisa casar com as fábricas abaixo.
var (
	dailyMetricNames = []string{
		"sessions",
		"totalUsers",
		"newUsers",
		"screenPageViews",
		"averageSessionDuration",
		"bounceRate",
		"screenPageViewsPerSession",
		"conversions",
	}

	pageMetricNames = []string{
		"screenPageViews",
		"sessions",
		"totalUsers",
		"averageSessionDuration",
		"bounceRate",
	}
)

const topPagesLimit = 50

type AnalyticsIntegrator interface {
	FetchDailyMetrics(propertyID string, startDate, endDate time.Time) ([]*domain.AnalyticsEntry, error)
	FetchDailyMetricsForLastDays(days int) ([]*domain.AnalyticsEntry, error)
	FetchPageMetrics(propertyID string, startDate, endDate time.Time) ([]*domain.PageAnalyticsEntry, error)
	FetchPageMetricsForLastDays(days int) ([]*domain.PageAnalyticsEntry, error)
	FetchTrafficSources(propertyID string, startDate, endDate time.Time) (*domain.TrafficSourceSummary, error)
	CheckConnection() (*domain.ConnectionInfo, error)
}

type AnalyticsService struct {
	cfg    *config.Config
	Client analyticsclient.Client
}

func New(cfg *config.Config, client analyticsclient.Client) AnalyticsIntegrator {
	return &AnalyticsService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchDailyMetrics busca as métricas de tráfego agregadas por dia na janela
// informada. Linhas com data inválida são descartadas com aviso no log.
func (s *AnalyticsService) FetchDailyMetrics(propertyID string, startDate, endDate time.Time) ([]*domain.AnalyticsEntry, error) {
	if propertyID == "" {
		return nil, domain.ErrNotConfigured
	}

	request := &analyticsdomain.RunReportRequest{
		DateRanges: []analyticsdomain.DateRange{{
			StartDate: startDate.Format(time.DateOnly),
			EndDate:   endDate.Format(time.DateOnly),
		}},
		Dimensions: []analyticsdomain.Dimension{{Name: "date"}},
		Metrics:    metricList(dailyMetricNames),
	}

	resp, err := s.Client.RunReport(propertyID, request)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"property_id": propertyID,
			"error":       err.Error(),
		}).Error("analytics: failed to run daily metrics report")
		return nil, err
	}

	entries := make([]*domain.AnalyticsEntry, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		entry := FactoryAnalyticsEntry(propertyID, row)
		if entry == nil {
			continue
		}
		entries = append(entries, entry)
	}

	logrus.WithFields(logrus.Fields{
		"property_id": propertyID,
		"rows":        len(entries),
	}).Debug("analytics: successfully fetched daily metrics")

	return entries, nil
}

func (s *AnalyticsService) FetchDailyMetricsForLastDays(days int) ([]*domain.AnalyticsEntry, error) {
	// Dados do GA4 ficam disponíveis no mesmo dia, sem defasagem.
	startDate, endDate := utils.LastNDaysWindow(days, 0)
	return s.FetchDailyMetrics(s.cfg.Analytics.PropertyID, startDate, endDate)
}

// FetchPageMetrics busca as métricas agregadas por página na janela informada,
// limitado às páginas de maior volume.
func (s *AnalyticsService) FetchPageMetrics(propertyID string, startDate, endDate time.Time) ([]*domain.PageAnalyticsEntry, error) {
	if propertyID == "" {
		return nil, domain.ErrNotConfigured
	}

	request := &analyticsdomain.RunReportRequest{
		DateRanges: []analyticsdomain.DateRange{{
			StartDate: startDate.Format(time.DateOnly),
			EndDate:   endDate.Format(time.DateOnly),
		}},
		Dimensions: []analyticsdomain.Dimension{{Name: "pagePath"}},
		Metrics:    metricList(pageMetricNames),
		Limit:      topPagesLimit,
	}

	resp, err := s.Client.RunReport(propertyID, request)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"property_id": propertyID,
			"error":       err.Error(),
		}).Error("analytics: failed to run page metrics report")
		return nil, err
	}

	dateRange := utils.FormatDateRangeLabel(startDate, endDate)

	entries := make([]*domain.PageAnalyticsEntry, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		entry := FactoryPageAnalyticsEntry(propertyID, dateRange, row)
		if entry == nil {
			continue
		}
		entries = append(entries, entry)
	}

	logrus.WithFields(logrus.Fields{
		"property_id": propertyID,
		"date_range":  dateRange,
		"rows":        len(entries),
	}).Debug("analytics: successfully fetched page metrics")

	return entries, nil
}

func (s *AnalyticsService) FetchPageMetricsForLastDays(days int) ([]*domain.PageAnalyticsEntry, error) {
	startDate, endDate := utils.LastNDaysWindow(days, 0)
	return s.FetchPageMetrics(s.cfg.Analytics.PropertyID, startDate, endDate)
}

// FetchTrafficSources agrega sessões e usuários por bucket de canal na janela
// informada. O resultado não é persistido.
func (s *AnalyticsService) FetchTrafficSources(propertyID string, startDate, endDate time.Time) (*domain.TrafficSourceSummary, error) {
	if propertyID == "" {
		return nil, domain.ErrNotConfigured
	}

	request := &analyticsdomain.RunReportRequest{
		DateRanges: []analyticsdomain.DateRange{{
			StartDate: startDate.Format(time.DateOnly),
			EndDate:   endDate.Format(time.DateOnly),
		}},
		Dimensions: []analyticsdomain.Dimension{{Name: "sessionDefaultChannelGroup"}},
		Metrics: []analyticsdomain.Metric{
			{Name: "sessions"},
			{Name: "totalUsers"},
		},
	}

	resp, err := s.Client.RunReport(propertyID, request)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"property_id": propertyID,
			"error":       err.Error(),
		}).Error("analytics: failed to run traffic sources report")
		return nil, err
	}

	summary := &domain.TrafficSourceSummary{
		PropertyID: propertyID,
		StartDate:  startDate.Format(time.DateOnly),
		EndDate:    endDate.Format(time.DateOnly),
		Channels:   make(map[string]*domain.ChannelMetrics),
	}

	var totalSessions int64
	for _, row := range resp.Rows {
		if len(row.DimensionValues) == 0 {
			continue
		}

		bucket := ChannelBucket(row.DimensionValues[0].Value)
		sessions := parseCount("sessions", metricAt(row, 0))
		users := parseCount("totalUsers", metricAt(row, 1))

		channel, ok := summary.Channels[bucket]
		if !ok {
			channel = &domain.ChannelMetrics{}
			summary.Channels[bucket] = channel
		}

		if sessions != nil {
			channel.Sessions += *sessions
			totalSessions += *sessions
		}
		if users != nil {
			channel.TotalUsers += *users
		}
	}

	// Participação percentual de cada canal sobre o total de sessões.
	if totalSessions > 0 {
		for _, channel := range summary.Channels {
			share := float64(channel.Sessions) / float64(totalSessions) * 100
			channel.Share = utils.RoundWithTwoDecimalPlace(share)
		}
	}

	return summary, nil
}

// CheckConnection sonda a Data API consultando os metadados da propriedade
// configurada, sem movimentar dados de relatório.
func (s *AnalyticsService) CheckConnection() (*domain.ConnectionInfo, error) {
	if s.cfg.Analytics.PropertyID == "" {
		return nil, domain.ErrNotConfigured
	}

	metadata, err := s.Client.GetPropertyMetadata(s.cfg.Analytics.PropertyID)
	if err != nil {
		return nil, err
	}

	return &domain.ConnectionInfo{
		EntityID: s.cfg.Analytics.PropertyID,
		Detail:   metadata.Name,
	}, nil
}

// FactoryAnalyticsEntry converte uma linha do relatório diário no registro de
// domínio. Retorna nil quando a data da linha não pode ser interpretada.
func FactoryAnalyticsEntry(propertyID string, row analyticsdomain.Row) *domain.AnalyticsEntry {
	if len(row.DimensionValues) == 0 {
		return nil
	}

	// O GA4 devolve a dimensão de data compactada, sem separadores.
	date, err := time.Parse("20060102", row.DimensionValues[0].Value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"property_id": propertyID,
			"date_value":  row.DimensionValues[0].Value,
			"error":       err.Error(),
		}).Warn("analytics: skipping row with unparseable date")
		return nil
	}

	return &domain.AnalyticsEntry{
		PropertyID:         propertyID,
		Date:               date,
		Sessions:           parseCount("sessions", metricAt(row, 0)),
		TotalUsers:         parseCount("totalUsers", metricAt(row, 1)),
		NewUsers:           parseCount("newUsers", metricAt(row, 2)),
		PageViews:          parseCount("screenPageViews", metricAt(row, 3)),
		AvgSessionDuration: parseDecimal("averageSessionDuration", metricAt(row, 4), false),
		BounceRate:         parseDecimal("bounceRate", metricAt(row, 5), true),
		PagesPerSession:    parseDecimal("screenPageViewsPerSession", metricAt(row, 6), false),
		Conversions:        parseDecimal("conversions", metricAt(row, 7), false),
		RawPayload:         factoryRawPayload(row),
	}
}

// FactoryPageAnalyticsEntry converte uma linha do relatório por página no
// registro de domínio. Retorna nil quando a linha não traz o caminho da página.
func FactoryPageAnalyticsEntry(propertyID, dateRange string, row analyticsdomain.Row) *domain.PageAnalyticsEntry {
	if len(row.DimensionValues) == 0 || row.DimensionValues[0].Value == "" {
		return nil
	}

	return &domain.PageAnalyticsEntry{
		PropertyID:         propertyID,
		PagePath:           row.DimensionValues[0].Value,
		DateRange:          dateRange,
		PageViews:          parseCount("screenPageViews", metricAt(row, 0)),
		Sessions:           parseCount("sessions", metricAt(row, 1)),
		TotalUsers:         parseCount("totalUsers", metricAt(row, 2)),
		AvgSessionDuration: parseDecimal("averageSessionDuration", metricAt(row, 3), false),
		BounceRate:         parseDecimal("bounceRate", metricAt(row, 4), true),
		RawPayload:         factoryRawPayload(row),
	}
}

// ChannelBucket traduz o agrupamento de canal do GA4 para os buckets usados no
// resumo de origens de tráfego.
func ChannelBucket(channelGroup string) string {
	switch strings.ToLower(channelGroup) {
	case "organic search":
		return domain.ChannelOrganic
	case "direct":
		return domain.ChannelDirect
	case "referral":
		return domain.ChannelReferral
	case "organic social", "social":
		return domain.ChannelSocial
	case "paid search", "paid social", "display":
		return domain.ChannelPaid
	default:
		return domain.ChannelOther
	}
}

func metricList(names []string) []analyticsdomain.Metric {
	metrics := make([]analyticsdomain.Metric, 0, len(names))
	for _, name := range names {
		metrics = append(metrics, analyticsdomain.Metric{Name: name})
	}
	return metrics
}

// metricAt retorna o valor da métrica na posição informada ou vazio quando a
// linha vem mais curta do que o esperado.
func metricAt(row analyticsdomain.Row, index int) string {
	if index >= len(row.MetricValues) {
		return ""
	}
	return row.MetricValues[index].Value
}

func parseCount(name, value string) *int64 {
	if value == "" {
		return nil
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"metric": name,
			"value":  value,
			"error":  err.Error(),
		}).Warn("analytics: error converting metric to integer")
		return nil
	}

	return &parsed
}

// parseDecimal converte uma métrica decimal. Quando asPercent é verdadeiro o
// valor chega como fração e é convertido para percentual.
func parseDecimal(name, value string, asPercent bool) *float64 {
	if value == "" {
		return nil
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"metric": name,
			"value":  value,
			"error":  err.Error(),
		}).Warn("analytics: error converting metric to float")
		return nil
	}

	if asPercent {
		parsed *= 100
	}

	parsed = utils.RoundWithTwoDecimalPlace(parsed)
	return &parsed
}

func factoryRawPayload(row analyticsdomain.Row) json.RawMessage {
	payload := struct {
		Dimensions []string `json:"dimensions"`
		Metrics    []string `json:"metrics"`
	}{}

	for _, v := range row.DimensionValues {
		payload.Dimensions = append(payload.Dimensions, v.Value)
	}
	for _, v := range row.MetricValues {
		payload.Metrics = append(payload.Metrics, v.Value)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil
	}

	return raw
}
