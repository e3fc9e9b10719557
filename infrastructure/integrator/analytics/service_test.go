package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	clientmocks "github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/analytics/analyticsclient/mocks"
	analyticsdomain "github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/analytics/domain"
	"github.com/vfg2006/marketing-metrics-api/internal/config"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestFactoryAnalyticsEntry(t *testing.T) {
	tests := []struct {
		name     string
		row      analyticsdomain.Row
		validate func(t *testing.T, entry *domain.AnalyticsEntry)
	}{
		{
			name: "Linha completa deve converter todas as métricas",
			row: analyticsdomain.Row{
				DimensionValues: []analyticsdomain.Value{{Value: "20240115"}},
				MetricValues: []analyticsdomain.Value{
					{Value: "120"},    // sessions
					{Value: "95"},     // totalUsers
					{Value: "40"},     // newUsers
					{Value: "310"},    // screenPageViews
					{Value: "185.5"},  // averageSessionDuration
					{Value: "0.4275"}, // bounceRate (fração)
					{Value: "2.58"},   // screenPageViewsPerSession
					{Value: "7"},      // conversions
				},
			},
			validate: func(t *testing.T, entry *domain.AnalyticsEntry) {
				assert.NotNil(t, entry)
				assert.Equal(t, "properties/123", entry.PropertyID)
				assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), entry.Date)
				assert.Equal(t, int64(120), *entry.Sessions)
				assert.Equal(t, int64(95), *entry.TotalUsers)
				assert.Equal(t, int64(40), *entry.NewUsers)
				assert.Equal(t, int64(310), *entry.PageViews)
				assert.Equal(t, 185.5, *entry.AvgSessionDuration)
				// A taxa de rejeição chega como fração e é armazenada como percentual
				assert.Equal(t, 42.75, *entry.BounceRate)
				assert.Equal(t, 2.58, *entry.PagesPerSession)
				assert.Equal(t, 7.0, *entry.Conversions)
				assert.NotEmpty(t, entry.RawPayload)
			},
		},
		{
			name: "Data inválida deve descartar a linha",
			row: analyticsdomain.Row{
				DimensionValues: []analyticsdomain.Value{{Value: "ontem"}},
				MetricValues:    []analyticsdomain.Value{{Value: "10"}},
			},
			validate: func(t *testing.T, entry *domain.AnalyticsEntry) {
				assert.Nil(t, entry)
			},
		},
		{
			name: "Linha sem dimensões deve ser descartada",
			row: analyticsdomain.Row{
				MetricValues: []analyticsdomain.Value{{Value: "10"}},
			},
			validate: func(t *testing.T, entry *domain.AnalyticsEntry) {
				assert.Nil(t, entry)
			},
		},
		{
			name: "Métricas ausentes devem ficar nulas",
			row: analyticsdomain.Row{
				DimensionValues: []analyticsdomain.Value{{Value: "20240116"}},
				MetricValues: []analyticsdomain.Value{
					{Value: "80"},
					{Value: "60"},
				},
			},
			validate: func(t *testing.T, entry *domain.AnalyticsEntry) {
				assert.NotNil(t, entry)
				assert.Equal(t, int64(80), *entry.Sessions)
				assert.Equal(t, int64(60), *entry.TotalUsers)
				assert.Nil(t, entry.NewUsers)
				assert.Nil(t, entry.PageViews)
				assert.Nil(t, entry.BounceRate)
			},
		},
		{
			name: "Métrica não numérica deve ficar nula sem descartar a linha",
			row: analyticsdomain.Row{
				DimensionValues: []analyticsdomain.Value{{Value: "20240117"}},
				MetricValues: []analyticsdomain.Value{
					{Value: "abc"},
					{Value: "33"},
				},
			},
			validate: func(t *testing.T, entry *domain.AnalyticsEntry) {
				assert.NotNil(t, entry)
				assert.Nil(t, entry.Sessions)
				assert.Equal(t, int64(33), *entry.TotalUsers)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := FactoryAnalyticsEntry("properties/123", tt.row)
			tt.validate(t, entry)
		})
	}
}

func TestFactoryPageAnalyticsEntry(t *testing.T) {
	tests := []struct {
		name     string
		row      analyticsdomain.Row
		validate func(t *testing.T, entry *domain.PageAnalyticsEntry)
	}{
		{
			name: "Linha completa deve converter as métricas da página",
			row: analyticsdomain.Row{
				DimensionValues: []analyticsdomain.Value{{Value: "/produtos"}},
				MetricValues: []analyticsdomain.Value{
					{Value: "500"},  // screenPageViews
					{Value: "420"},  // sessions
					{Value: "380"},  // totalUsers
					{Value: "95.2"}, // averageSessionDuration
					{Value: "0.35"}, // bounceRate (fração)
				},
			},
			validate: func(t *testing.T, entry *domain.PageAnalyticsEntry) {
				assert.NotNil(t, entry)
				assert.Equal(t, "/produtos", entry.PagePath)
				assert.Equal(t, "2024-01-01_2024-01-31", entry.DateRange)
				assert.Equal(t, int64(500), *entry.PageViews)
				assert.Equal(t, int64(420), *entry.Sessions)
				assert.Equal(t, int64(380), *entry.TotalUsers)
				assert.Equal(t, 95.2, *entry.AvgSessionDuration)
				assert.Equal(t, 35.0, *entry.BounceRate)
			},
		},
		{
			name: "Linha sem caminho de página deve ser descartada",
			row: analyticsdomain.Row{
				DimensionValues: []analyticsdomain.Value{{Value: ""}},
				MetricValues:    []analyticsdomain.Value{{Value: "10"}},
			},
			validate: func(t *testing.T, entry *domain.PageAnalyticsEntry) {
				assert.Nil(t, entry)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := FactoryPageAnalyticsEntry("properties/123", "2024-01-01_2024-01-31", tt.row)
			tt.validate(t, entry)
		})
	}
}

func TestChannelBucket(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Busca orgânica", input: "Organic Search", expected: domain.ChannelOrganic},
		{name: "Direto", input: "Direct", expected: domain.ChannelDirect},
		{name: "Referência", input: "Referral", expected: domain.ChannelReferral},
		{name: "Social orgânico", input: "Organic Social", expected: domain.ChannelSocial},
		{name: "Busca paga", input: "Paid Search", expected: domain.ChannelPaid},
		{name: "Social pago", input: "Paid Social", expected: domain.ChannelPaid},
		{name: "Display", input: "Display", expected: domain.ChannelPaid},
		{name: "Canal desconhecido", input: "Email", expected: domain.ChannelOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ChannelBucket(tt.input))
		})
	}
}

func TestAnalyticsService_FetchTrafficSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Analytics.PropertyID = "properties/123"

	service := &AnalyticsService{cfg: cfg, Client: mockClient}

	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	mockClient.EXPECT().
		RunReport("properties/123", gomock.Any()).
		Return(&analyticsdomain.RunReportResponse{
			Rows: []analyticsdomain.Row{
				{
					DimensionValues: []analyticsdomain.Value{{Value: "Organic Search"}},
					MetricValues:    []analyticsdomain.Value{{Value: "60"}, {Value: "50"}},
				},
				{
					DimensionValues: []analyticsdomain.Value{{Value: "Direct"}},
					MetricValues:    []analyticsdomain.Value{{Value: "40"}, {Value: "30"}},
				},
			},
		}, nil)

	summary, err := service.FetchTrafficSources("properties/123", startDate, endDate)

	assert.NoError(t, err)
	assert.Equal(t, "2024-01-01", summary.StartDate)
	assert.Equal(t, "2024-01-31", summary.EndDate)
	assert.Equal(t, int64(60), summary.Channels[domain.ChannelOrganic].Sessions)
	assert.Equal(t, int64(50), summary.Channels[domain.ChannelOrganic].TotalUsers)
	assert.Equal(t, 60.0, summary.Channels[domain.ChannelOrganic].Share)
	assert.Equal(t, int64(40), summary.Channels[domain.ChannelDirect].Sessions)
	assert.Equal(t, 40.0, summary.Channels[domain.ChannelDirect].Share)
}

func TestAnalyticsService_FetchDailyMetrics_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)

	service := &AnalyticsService{cfg: &config.Config{}, Client: mockClient}

	startDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)

	// Sem property configurada a chamada não deve chegar ao cliente
	entries, err := service.FetchDailyMetrics("", startDate, endDate)

	assert.Nil(t, entries)
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestAnalyticsService_CheckConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		propertyID string
		setup      func(mockClient *clientmocks.MockClient)
		validate   func(t *testing.T, info *domain.ConnectionInfo, err error)
	}{
		{
			name:       "Propriedade configurada deve retornar os metadados",
			propertyID: "properties/123",
			setup: func(mockClient *clientmocks.MockClient) {
				mockClient.EXPECT().
					GetPropertyMetadata("properties/123").
					Return(&analyticsdomain.PropertyMetadata{Name: "properties/123/metadata"}, nil)
			},
			validate: func(t *testing.T, info *domain.ConnectionInfo, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "properties/123", info.EntityID)
				assert.Equal(t, "properties/123/metadata", info.Detail)
			},
		},
		{
			name:       "Sem propriedade deve retornar erro de configuração",
			propertyID: "",
			setup:      func(mockClient *clientmocks.MockClient) {},
			validate: func(t *testing.T, info *domain.ConnectionInfo, err error) {
				assert.Nil(t, info)
				assert.ErrorIs(t, err, domain.ErrNotConfigured)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := clientmocks.NewMockClient(ctrl)
			tt.setup(mockClient)

			cfg := &config.Config{}
			cfg.Analytics.PropertyID = tt.propertyID

			service := &AnalyticsService{cfg: cfg, Client: mockClient}

			info, err := service.CheckConnection()
			tt.validate(t, info, err)
		})
	}
}
