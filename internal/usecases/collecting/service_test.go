package collecting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	analyticsmocks "github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/analytics/mocks"
	googleadsmocks "github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/googleads/mocks"
	searchconsolemocks "github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/searchconsole/mocks"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-metrics-api/internal/config"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	analytics         *analyticsmocks.MockAnalyticsIntegrator
	searchConsole     *searchconsolemocks.MockSearchConsoleIntegrator
	googleAds         *googleadsmocks.MockGoogleAdsIntegrator
	analyticsData     *mocks.MockAnalyticsDataRepository
	searchConsoleData *mocks.MockSearchConsoleDataRepository
	googleAdsData     *mocks.MockGoogleAdsDataRepository
	pageAnalytics     *mocks.MockPageAnalyticsRepository
	searchQueries     *mocks.MockSearchQueryRepository
	searchPages       *mocks.MockSearchPageRepository
}

func newServiceWithMocks(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	m := &serviceMocks{
		analytics:         analyticsmocks.NewMockAnalyticsIntegrator(ctrl),
		searchConsole:     searchconsolemocks.NewMockSearchConsoleIntegrator(ctrl),
		googleAds:         googleadsmocks.NewMockGoogleAdsIntegrator(ctrl),
		analyticsData:     mocks.NewMockAnalyticsDataRepository(ctrl),
		searchConsoleData: mocks.NewMockSearchConsoleDataRepository(ctrl),
		googleAdsData:     mocks.NewMockGoogleAdsDataRepository(ctrl),
		pageAnalytics:     mocks.NewMockPageAnalyticsRepository(ctrl),
		searchQueries:     mocks.NewMockSearchQueryRepository(ctrl),
		searchPages:       mocks.NewMockSearchPageRepository(ctrl),
	}

	service := &Service{
		cfg: &config.Config{
			Analytics: config.Analytics{PropertyID: "123456789"},
		},
		analyticsService:            m.analytics,
		searchConsoleService:        m.searchConsole,
		googleAdsService:            m.googleAds,
		analyticsDataRepository:     m.analyticsData,
		searchConsoleDataRepository: m.searchConsoleData,
		googleAdsDataRepository:     m.googleAdsData,
		pageAnalyticsRepository:     m.pageAnalytics,
		searchQueryRepository:       m.searchQueries,
		searchPageRepository:        m.searchPages,
	}

	return service, m
}

func analyticsEntries(n int) []*domain.AnalyticsEntry {
	entries := make([]*domain.AnalyticsEntry, n)
	for i := range entries {
		entries[i] = &domain.AnalyticsEntry{
			PropertyID: "123456789",
			Date:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
		}
	}
	return entries
}

func searchConsoleEntries(n int) []*domain.SearchConsoleEntry {
	entries := make([]*domain.SearchConsoleEntry, n)
	for i := range entries {
		entries[i] = &domain.SearchConsoleEntry{
			SiteURL: "sc-domain:example.com",
			Date:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
		}
	}
	return entries
}

func adsEntries(n int, demo bool) []*domain.AdsCampaignEntry {
	entries := make([]*domain.AdsCampaignEntry, n)
	for i := range entries {
		entry := &domain.AdsCampaignEntry{
			CustomerID: "9876543210",
			CampaignID: "111222333",
			Date:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
		}
		if demo {
			entry.RawPayload = []byte(`{"demo":true}`)
		}
		entries[i] = entry
	}
	return entries
}

func TestCollectDaily(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)
	ctx := context.Background()

	tests := []struct {
		name     string
		daysBack int
		setup    func()
		validate func(t *testing.T, report *domain.CollectionReport, err error)
	}{
		{
			name:     "Todas as fontes com sucesso deve resultar em status success",
			daysBack: 7,
			setup: func() {
				gaEntries := analyticsEntries(2)
				m.analytics.EXPECT().FetchDailyMetricsForLastDays(7).Return(gaEntries, nil)
				m.analyticsData.EXPECT().Upsert(gomock.Any(), gaEntries).Return(int64(2), nil)

				gscEntries := searchConsoleEntries(1)
				m.searchConsole.EXPECT().FetchDailyMetricsForLastDays(7).Return(gscEntries, nil)
				m.searchConsoleData.EXPECT().Upsert(gomock.Any(), gscEntries).Return(int64(1), nil)

				campaignEntries := adsEntries(2, false)
				m.googleAds.EXPECT().FetchCampaignMetricsForLastDays(7).Return(campaignEntries, nil)
				m.googleAdsData.EXPECT().Upsert(gomock.Any(), campaignEntries).Return(int64(0), nil)
			},
			validate: func(t *testing.T, report *domain.CollectionReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.CollectionStatusSuccess, report.Status)
				assert.Equal(t, domain.CollectionModeDaily, report.Mode)
				assert.NotEmpty(t, report.RunID)
				assert.Equal(t, int64(5), report.TotalRecordsProcessed)

				ads := report.Sources[domain.SourceGoogleAds]
				assert.Equal(t, domain.SourceStatusSuccess, ads.Status)
				assert.Equal(t, int64(2), ads.RecordsFetched)
				assert.Equal(t, int64(0), ads.RecordsStored)
				assert.Equal(t, "Stored 0 new records out of 2 fetched", ads.Message)
			},
		},
		{
			name:     "Falha em uma fonte deve resultar em partial_success sem abortar as demais",
			daysBack: 7,
			setup: func() {
				m.analytics.EXPECT().FetchDailyMetricsForLastDays(7).
					Return(nil, errors.New("quota do Analytics excedida"))

				gscEntries := searchConsoleEntries(3)
				m.searchConsole.EXPECT().FetchDailyMetricsForLastDays(7).Return(gscEntries, nil)
				m.searchConsoleData.EXPECT().Upsert(gomock.Any(), gscEntries).Return(int64(3), nil)

				campaignEntries := adsEntries(2, false)
				m.googleAds.EXPECT().FetchCampaignMetricsForLastDays(7).Return(campaignEntries, nil)
				m.googleAdsData.EXPECT().Upsert(gomock.Any(), campaignEntries).Return(int64(2), nil)
			},
			validate: func(t *testing.T, report *domain.CollectionReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.CollectionStatusPartialSuccess, report.Status)

				ga := report.Sources[domain.SourceAnalytics]
				assert.Equal(t, domain.SourceStatusError, ga.Status)
				assert.Contains(t, ga.Message, "quota")

				assert.Equal(t, domain.SourceStatusSuccess, report.Sources[domain.SourceSearchConsole].Status)
				assert.Equal(t, domain.SourceStatusSuccess, report.Sources[domain.SourceGoogleAds].Status)
			},
		},
		{
			name:     "Fonte não configurada e fonte vazia não contam como sucesso",
			daysBack: 30,
			setup: func() {
				m.analytics.EXPECT().FetchDailyMetricsForLastDays(30).
					Return(nil, domain.ErrNotConfigured)

				m.searchConsole.EXPECT().FetchDailyMetricsForLastDays(30).
					Return([]*domain.SearchConsoleEntry{}, nil)
				m.searchConsoleData.EXPECT().Upsert(gomock.Any(), gomock.Len(0)).Return(int64(0), nil)

				demoEntries := adsEntries(3, true)
				m.googleAds.EXPECT().FetchCampaignMetricsForLastDays(30).Return(demoEntries, nil)
				m.googleAdsData.EXPECT().Upsert(gomock.Any(), demoEntries).Return(int64(3), nil)
			},
			validate: func(t *testing.T, report *domain.CollectionReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.CollectionStatusPartialSuccess, report.Status)

				ga := report.Sources[domain.SourceAnalytics]
				assert.Equal(t, domain.SourceStatusNotConfigured, ga.Status)
				assert.Equal(t, "Google Analytics not configured", ga.Message)

				gsc := report.Sources[domain.SourceSearchConsole]
				assert.Equal(t, domain.SourceStatusWarning, gsc.Status)
				assert.Equal(t, "No data fetched", gsc.Message)

				ads := report.Sources[domain.SourceGoogleAds]
				assert.Equal(t, domain.SourceStatusSuccess, ads.Status)
				assert.Contains(t, ads.Message, "(demo dataset)")
			},
		},
		{
			name:     "Nenhuma fonte com sucesso deve resultar em failed",
			daysBack: 7,
			setup: func() {
				m.analytics.EXPECT().FetchDailyMetricsForLastDays(7).
					Return(nil, errors.New("erro interno"))
				m.searchConsole.EXPECT().FetchDailyMetricsForLastDays(7).
					Return(nil, errors.New("erro interno"))
				m.googleAds.EXPECT().FetchCampaignMetricsForLastDays(7).
					Return(nil, domain.ErrNotConfigured)
			},
			validate: func(t *testing.T, report *domain.CollectionReport, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.CollectionStatusFailed, report.Status)
				assert.Equal(t, int64(0), report.TotalRecordsProcessed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			report, err := service.CollectDaily(ctx, tt.daysBack)
			tt.validate(t, report, err)
		})
	}
}

func TestCollectDailyValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma expectativa configurada: days_back inválido precisa falhar antes
	// de qualquer chamada de integrador ou repositório.
	service, _ := newServiceWithMocks(ctrl)

	for _, daysBack := range []int{0, -1, 366, 400} {
		report, err := service.CollectDaily(context.Background(), daysBack)

		assert.ErrorIs(t, err, domain.ErrInvalidDaysBack)
		assert.Nil(t, report)
	}
}

func TestCollectEnhanced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)
	ctx := context.Background()

	vendorErr := errors.New("API indisponível")

	tests := []struct {
		name     string
		setup    func()
		expected string
	}{
		{
			name: "Quatro de seis fontes com sucesso ainda é success",
			setup: func() {
				gaEntries := analyticsEntries(2)
				m.analytics.EXPECT().FetchDailyMetricsForLastDays(30).Return(gaEntries, nil)
				m.analyticsData.EXPECT().Upsert(gomock.Any(), gaEntries).Return(int64(2), nil)

				gscEntries := searchConsoleEntries(2)
				m.searchConsole.EXPECT().FetchDailyMetricsForLastDays(30).Return(gscEntries, nil)
				m.searchConsoleData.EXPECT().Upsert(gomock.Any(), gscEntries).Return(int64(2), nil)

				campaignEntries := adsEntries(1, false)
				m.googleAds.EXPECT().FetchCampaignMetricsForLastDays(30).Return(campaignEntries, nil)
				m.googleAdsData.EXPECT().Upsert(gomock.Any(), campaignEntries).Return(int64(1), nil)

				pageEntries := []*domain.PageAnalyticsEntry{{PropertyID: "123456789", PagePath: "/"}}
				m.analytics.EXPECT().FetchPageMetricsForLastDays(30).Return(pageEntries, nil)
				m.pageAnalytics.EXPECT().Upsert(gomock.Any(), pageEntries).Return(int64(1), nil)

				m.searchConsole.EXPECT().FetchTopQueriesForLastDays(30).Return(nil, vendorErr)
				m.searchConsole.EXPECT().FetchTopPagesForLastDays(30).Return(nil, vendorErr)
			},
			expected: domain.CollectionStatusSuccess,
		},
		{
			name: "Duas de seis fontes com sucesso rebaixa para partial_success",
			setup: func() {
				gaEntries := analyticsEntries(1)
				m.analytics.EXPECT().FetchDailyMetricsForLastDays(30).Return(gaEntries, nil)
				m.analyticsData.EXPECT().Upsert(gomock.Any(), gaEntries).Return(int64(1), nil)

				gscEntries := searchConsoleEntries(1)
				m.searchConsole.EXPECT().FetchDailyMetricsForLastDays(30).Return(gscEntries, nil)
				m.searchConsoleData.EXPECT().Upsert(gomock.Any(), gscEntries).Return(int64(1), nil)

				m.googleAds.EXPECT().FetchCampaignMetricsForLastDays(30).Return(nil, vendorErr)
				m.analytics.EXPECT().FetchPageMetricsForLastDays(30).Return(nil, vendorErr)
				m.searchConsole.EXPECT().FetchTopQueriesForLastDays(30).Return(nil, vendorErr)
				m.searchConsole.EXPECT().FetchTopPagesForLastDays(30).Return(nil, vendorErr)
			},
			expected: domain.CollectionStatusPartialSuccess,
		},
		{
			name: "Uma única fonte com sucesso resulta em failed",
			setup: func() {
				gaEntries := analyticsEntries(1)
				m.analytics.EXPECT().FetchDailyMetricsForLastDays(30).Return(gaEntries, nil)
				m.analyticsData.EXPECT().Upsert(gomock.Any(), gaEntries).Return(int64(1), nil)

				m.searchConsole.EXPECT().FetchDailyMetricsForLastDays(30).Return(nil, vendorErr)
				m.googleAds.EXPECT().FetchCampaignMetricsForLastDays(30).Return(nil, vendorErr)
				m.analytics.EXPECT().FetchPageMetricsForLastDays(30).Return(nil, vendorErr)
				m.searchConsole.EXPECT().FetchTopQueriesForLastDays(30).Return(nil, vendorErr)
				m.searchConsole.EXPECT().FetchTopPagesForLastDays(30).Return(nil, vendorErr)
			},
			expected: domain.CollectionStatusFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			report, err := service.CollectEnhanced(ctx, 30)

			assert.NoError(t, err)
			assert.Equal(t, domain.CollectionModeEnhanced, report.Mode)
			assert.Len(t, report.Sources, 6)
			assert.Equal(t, tt.expected, report.Status)
		})
	}
}

func TestTestConnections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.analytics.EXPECT().CheckConnection().
		Return(&domain.ConnectionInfo{EntityID: "123456789", Detail: "245 métricas disponíveis"}, nil)
	m.searchConsole.EXPECT().CheckConnection().
		Return(nil, domain.ErrNotConfigured)
	m.googleAds.EXPECT().CheckConnection().
		Return(nil, errors.New("developer token inválido"))

	report, err := service.TestConnections()

	assert.NoError(t, err)
	assert.Len(t, report.Connections, 3)

	ga := report.Connections[domain.SourceAnalytics]
	assert.Equal(t, domain.ConnectionStatusConnected, ga.Status)
	assert.Equal(t, "123456789", ga.EntityID)

	gsc := report.Connections[domain.SourceSearchConsole]
	assert.Equal(t, domain.ConnectionStatusNotConfigured, gsc.Status)
	assert.Empty(t, gsc.Error)

	ads := report.Connections[domain.SourceGoogleAds]
	assert.Equal(t, domain.ConnectionStatusError, ads.Status)
	assert.Contains(t, ads.Error, "developer token")
}

func TestSummarize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	latest := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	m.analyticsData.EXPECT().Summary().
		Return(&domain.TableSummary{TotalRecords: 30, LatestDate: &latest, PropertyID: "123456789"}, nil)
	m.searchConsoleData.EXPECT().Summary().
		Return(&domain.TableSummary{TotalRecords: 27, LatestDate: &latest, SiteURL: "sc-domain:example.com"}, nil)
	m.googleAdsData.EXPECT().Summary().
		Return(&domain.TableSummary{TotalRecords: 58, LatestDate: &latest, CustomerID: "9876543210"}, nil)
	m.pageAnalytics.EXPECT().Count().Return(int64(50), nil)
	m.searchQueries.EXPECT().Count().Return(int64(100), nil)
	m.searchPages.EXPECT().Count().Return(int64(40), nil)

	summary, err := service.Summarize()

	assert.NoError(t, err)
	assert.Equal(t, int64(30), summary.AnalyticsData.TotalRecords)
	assert.Equal(t, "sc-domain:example.com", summary.SearchConsoleData.SiteURL)
	assert.Equal(t, int64(58), summary.GoogleAdsData.TotalRecords)
	assert.Equal(t, int64(100), summary.Breakdowns.SearchQueries)
	assert.False(t, summary.GeneratedAt.IsZero())
}

func TestCleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	t.Run("Deve rejeitar days_to_keep abaixo do mínimo sem tocar no banco", func(t *testing.T) {
		for _, daysToKeep := range []int{0, 3, 6} {
			report, err := service.Cleanup(daysToKeep)

			assert.ErrorIs(t, err, domain.ErrInvalidDaysToKeep)
			assert.Nil(t, report)
		}
	})

	t.Run("Deve varrer as três tabelas datadas e somar as remoções", func(t *testing.T) {
		m.analyticsData.EXPECT().DeleteOlderThan(90).Return(int64(5), nil)
		m.searchConsoleData.EXPECT().DeleteOlderThan(90).Return(int64(3), nil)
		m.googleAdsData.EXPECT().DeleteOlderThan(90).Return(int64(2), nil)

		report, err := service.Cleanup(90)

		assert.NoError(t, err)
		assert.Equal(t, int64(10), report.TotalDeleted)
		assert.Equal(t, "Cleaned up 10 old records", report.Message)
		assert.Equal(t, int64(5), report.DeletedCounts["analytics_data"])
		assert.Equal(t, int64(3), report.DeletedCounts["search_console_data"])
		assert.Equal(t, int64(2), report.DeletedCounts["google_ads_data"])
		assert.Equal(t, 90, report.DaysToKeep)
	})

	t.Run("Erro em uma tabela deve interromper a varredura", func(t *testing.T) {
		m.analyticsData.EXPECT().DeleteOlderThan(30).Return(int64(0), errors.New("tabela bloqueada"))

		report, err := service.Cleanup(30)

		assert.Error(t, err)
		assert.Nil(t, report)
	})
}

func TestTrafficSourcesValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	t.Run("Janela inválida deve ser rejeitada", func(t *testing.T) {
		summary, err := service.TrafficSources(0)

		assert.ErrorIs(t, err, domain.ErrInvalidDaysBack)
		assert.Nil(t, summary)
	})

	t.Run("Deve delegar ao integrador com a propriedade configurada", func(t *testing.T) {
		expected := &domain.TrafficSourceSummary{PropertyID: "123456789"}
		m.analytics.EXPECT().
			FetchTrafficSources("123456789", gomock.Any(), gomock.Any()).
			Return(expected, nil)

		summary, err := service.TrafficSources(30)

		assert.NoError(t, err)
		assert.Equal(t, expected, summary)
	})
}
