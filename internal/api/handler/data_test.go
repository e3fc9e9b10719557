package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
	analyzingmocks "github.com/vfg2006/marketing-metrics-api/internal/usecases/analyzing/mocks"
	collectingmocks "github.com/vfg2006/marketing-metrics-api/internal/usecases/collecting/mocks"
	"github.com/vfg2006/marketing-metrics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestFetchDataHandler(t *testing.T) {
	t.Run("Deve executar a coleta diária com os parâmetros padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		collector := collectingmocks.NewMockCollector(ctrl)
		collector.EXPECT().
			CollectDaily(gomock.Any(), 7).
			Return(collectionReportFixture("daily", domain.CollectionStatusSuccess), nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/data/fetch", nil)

		FetchData(collector).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var report domain.CollectionReport
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
		assert.Equal(t, "run-123", report.RunID)
		assert.Equal(t, domain.CollectionStatusSuccess, report.Status)
	})

	t.Run("Deve executar a coleta com quebras quando enhanced=true", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		collector := collectingmocks.NewMockCollector(ctrl)
		collector.EXPECT().
			CollectEnhanced(gomock.Any(), 30).
			Return(collectionReportFixture("enhanced", domain.CollectionStatusPartialSuccess), nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/data/fetch?days_back=30&enhanced=true", nil)

		FetchData(collector).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var report domain.CollectionReport
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
		assert.Equal(t, "enhanced", report.Mode)
	})

	t.Run("Deve rejeitar days_back fora do intervalo permitido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		collector := collectingmocks.NewMockCollector(ctrl)
		collector.EXPECT().
			CollectDaily(gomock.Any(), 400).
			Return(nil, domain.ErrInvalidDaysBack)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/data/fetch?days_back=400", nil)

		FetchData(collector).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrOutOfRange, decodeAPIError(t, rec).Code)
	})

	t.Run("Deve rejeitar days_back não numérico sem chamar o serviço", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		collector := collectingmocks.NewMockCollector(ctrl)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/data/fetch?days_back=abc", nil)

		FetchData(collector).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})

	t.Run("Deve rejeitar enhanced inválido sem chamar o serviço", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		collector := collectingmocks.NewMockCollector(ctrl)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/data/fetch?enhanced=talvez", nil)

		FetchData(collector).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})
}

func TestGetDataSummaryHandler(t *testing.T) {
	t.Run("Deve retornar o resumo do armazenamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		collector := collectingmocks.NewMockCollector(ctrl)
		collector.EXPECT().Summarize().Return(&domain.StoreSummary{
			AnalyticsData:     &domain.TableSummary{TotalRecords: 120, PropertyID: "123456789"},
			SearchConsoleData: &domain.TableSummary{TotalRecords: 85},
			GoogleAdsData:     &domain.TableSummary{TotalRecords: 42},
			Breakdowns:        &domain.BreakdownCounts{PageAnalytics: 300},
			GeneratedAt:       time.Now(),
		}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/data/summary", nil)

		GetDataSummary(collector).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var summary domain.StoreSummary
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&summary))
		assert.Equal(t, int64(120), summary.AnalyticsData.TotalRecords)
		assert.Equal(t, int64(300), summary.Breakdowns.PageAnalytics)
	})

	t.Run("Deve retornar erro de banco quando a consulta falha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		collector := collectingmocks.NewMockCollector(ctrl)
		collector.EXPECT().Summarize().Return(nil, assert.AnError)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/data/summary", nil)

		GetDataSummary(collector).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeAPIError(t, rec).Code)
	})
}

func TestCleanupDataHandler(t *testing.T) {
	t.Run("Deve executar a limpeza com o corte informado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		collector := collectingmocks.NewMockCollector(ctrl)
		collector.EXPECT().Cleanup(30).Return(&domain.CleanupReport{
			Message:      "Cleaned up 10 old records",
			DaysToKeep:   30,
			TotalDeleted: 10,
		}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/data/cleanup?days_to_keep=30", nil)

		CleanupData(collector).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var report domain.CleanupReport
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
		assert.Equal(t, int64(10), report.TotalDeleted)
	})

	t.Run("Deve usar o corte padrão de 90 dias quando omitido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		collector := collectingmocks.NewMockCollector(ctrl)
		collector.EXPECT().Cleanup(90).Return(&domain.CleanupReport{DaysToKeep: 90}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/data/cleanup", nil)

		CleanupData(collector).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Deve rejeitar corte abaixo do mínimo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		collector := collectingmocks.NewMockCollector(ctrl)
		collector.EXPECT().Cleanup(3).Return(nil, domain.ErrInvalidDaysToKeep)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/data/cleanup?days_to_keep=3", nil)

		CleanupData(collector).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrOutOfRange, decodeAPIError(t, rec).Code)
	})
}

func TestGetConnectionsHandler(t *testing.T) {
	t.Run("Deve retornar o resultado das sondas de conexão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		collector := collectingmocks.NewMockCollector(ctrl)
		collector.EXPECT().TestConnections().Return(&domain.ConnectionReport{
			Connections: map[string]*domain.ConnectionProbe{
				domain.SourceAnalytics: {Status: domain.ConnectionStatusConnected, EntityID: "123456789"},
				domain.SourceGoogleAds: {Status: domain.ConnectionStatusNotConfigured},
			},
			CheckedAt: time.Now(),
		}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/data/connections", nil)

		GetConnections(collector).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var report domain.ConnectionReport
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
		assert.Equal(t, domain.ConnectionStatusConnected, report.Connections[domain.SourceAnalytics].Status)
	})
}

func TestGetAdsTrendsHandler(t *testing.T) {
	t.Run("Deve analisar as campanhas com a janela padrão de 30 dias", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		analyzer := analyzingmocks.NewMockAnalyzer(ctrl)
		analyzer.EXPECT().AnalyzeCampaignTrends(30).Return(&domain.TrendReport{
			DaysBack: 30,
			Campaigns: []*domain.CampaignTrend{
				{CampaignID: "111", Status: domain.TrendStatusHealthy},
			},
			GeneratedAt: time.Now(),
		}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/data/ads-trends", nil)

		GetAdsTrends(analyzer).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var report domain.TrendReport
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
		assert.Len(t, report.Campaigns, 1)
		assert.Equal(t, domain.TrendStatusHealthy, report.Campaigns[0].Status)
	})

	t.Run("Deve retornar erro quando o Google Ads não está configurado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		analyzer := analyzingmocks.NewMockAnalyzer(ctrl)
		analyzer.EXPECT().AnalyzeCampaignTrends(30).Return(nil, domain.ErrNotConfigured)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/data/ads-trends", nil)

		GetAdsTrends(analyzer).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, apiErrors.ErrExternalService, decodeAPIError(t, rec).Code)
	})

	t.Run("Deve rejeitar janela fora do intervalo permitido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		analyzer := analyzingmocks.NewMockAnalyzer(ctrl)
		analyzer.EXPECT().AnalyzeCampaignTrends(0).Return(nil, domain.ErrInvalidDaysBack)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/data/ads-trends?days_back=0", nil)

		GetAdsTrends(analyzer).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrOutOfRange, decodeAPIError(t, rec).Code)
	})
}

func TestGetTrafficSourcesHandler(t *testing.T) {
	t.Run("Deve agregar as fontes de tráfego na janela informada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		collector := collectingmocks.NewMockCollector(ctrl)
		collector.EXPECT().TrafficSources(14).Return(&domain.TrafficSourceSummary{
			PropertyID: "123456789",
			StartDate:  "2024-01-01",
			EndDate:    "2024-01-14",
			Channels: map[string]*domain.ChannelMetrics{
				domain.ChannelOrganic: {Sessions: 900, TotalUsers: 640, Share: 60.0},
				domain.ChannelDirect:  {Sessions: 600, TotalUsers: 420, Share: 40.0},
			},
		}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/traffic-sources?days_back=14", nil)

		GetTrafficSources(collector).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var summary domain.TrafficSourceSummary
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&summary))
		assert.Equal(t, int64(900), summary.Channels[domain.ChannelOrganic].Sessions)
	})

	t.Run("Deve retornar erro quando o Analytics não está configurado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		collector := collectingmocks.NewMockCollector(ctrl)
		collector.EXPECT().TrafficSources(30).Return(nil, domain.ErrNotConfigured)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/traffic-sources", nil)

		GetTrafficSources(collector).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, apiErrors.ErrExternalService, decodeAPIError(t, rec).Code)
	})
}

func collectionReportFixture(mode, status string) *domain.CollectionReport {
	return &domain.CollectionReport{
		RunID:    "run-123",
		Mode:     mode,
		Status:   status,
		DaysBack: 7,
		Sources: map[string]*domain.SourceReport{
			domain.SourceAnalytics: {Status: domain.SourceStatusSuccess, RecordsFetched: 3, RecordsStored: 3},
		},
		TotalRecordsProcessed: 3,
		StartedAt:             time.Now(),
		CompletedAt:           time.Now(),
	}
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))

	return apiErr
}
