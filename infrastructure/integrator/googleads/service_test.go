package googleads

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	googleadsdomain "github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/googleads/domain"
	clientmocks "github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/googleads/googleadsclient/mocks"
	"github.com/vfg2006/marketing-metrics-api/internal/config"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestFactoryAdsCampaignEntry(t *testing.T) {
	tests := []struct {
		name     string
		result   googleadsdomain.SearchResult
		validate func(t *testing.T, entry *domain.AdsCampaignEntry)
	}{
		{
			name: "Linha completa deve converter custo em micros e calcular as razões",
			result: googleadsdomain.SearchResult{
				Campaign: googleadsdomain.Campaign{ID: "111", Name: "Campanha Verão"},
				Segments: googleadsdomain.Segments{Date: "2024-01-15"},
				Metrics: googleadsdomain.Metrics{
					Impressions: "100",
					Clicks:      "5",
					CostMicros:  "2500000",
					Conversions: 2,
				},
			},
			validate: func(t *testing.T, entry *domain.AdsCampaignEntry) {
				assert.NotNil(t, entry)
				assert.Equal(t, "123-456", entry.CustomerID)
				assert.Equal(t, "111", entry.CampaignID)
				assert.Equal(t, "Campanha Verão", *entry.CampaignName)
				assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), entry.Date)
				assert.Equal(t, int64(100), *entry.Impressions)
				assert.Equal(t, int64(5), *entry.Clicks)
				// 2.500.000 micros viram 2,50 em unidades monetárias
				assert.Equal(t, 2.5, *entry.Cost)
				assert.Equal(t, 2.0, *entry.Conversions)
				assert.Equal(t, 5.0, *entry.CTR)
				assert.Equal(t, 0.5, *entry.AvgCPC)
				assert.Equal(t, 1.25, *entry.CostPerConversion)
				assert.Equal(t, 40.0, *entry.ConversionRate)
				assert.False(t, IsDemoEntry(entry))
			},
		},
		{
			name: "Métricas zeradas não devem causar divisão por zero",
			result: googleadsdomain.SearchResult{
				Campaign: googleadsdomain.Campaign{ID: "222", Name: "Campanha Pausada"},
				Segments: googleadsdomain.Segments{Date: "2024-01-16"},
				Metrics:  googleadsdomain.Metrics{},
			},
			validate: func(t *testing.T, entry *domain.AdsCampaignEntry) {
				assert.NotNil(t, entry)
				assert.Equal(t, int64(0), *entry.Impressions)
				assert.Equal(t, int64(0), *entry.Clicks)
				assert.Equal(t, 0.0, *entry.Cost)
				assert.Equal(t, 0.0, *entry.CTR)
				assert.Equal(t, 0.0, *entry.AvgCPC)
				assert.Equal(t, 0.0, *entry.CostPerConversion)
				assert.Equal(t, 0.0, *entry.ConversionRate)
			},
		},
		{
			name: "Linha sem identificador de campanha deve ser descartada",
			result: googleadsdomain.SearchResult{
				Segments: googleadsdomain.Segments{Date: "2024-01-15"},
			},
			validate: func(t *testing.T, entry *domain.AdsCampaignEntry) {
				assert.Nil(t, entry)
			},
		},
		{
			name: "Data inválida deve descartar a linha",
			result: googleadsdomain.SearchResult{
				Campaign: googleadsdomain.Campaign{ID: "333"},
				Segments: googleadsdomain.Segments{Date: "15/01/2024"},
			},
			validate: func(t *testing.T, entry *domain.AdsCampaignEntry) {
				assert.Nil(t, entry)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := FactoryAdsCampaignEntry("123-456", tt.result)
			tt.validate(t, entry)
		})
	}
}

func TestGoogleAdsService_FetchCampaignMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	startDate := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		customerID   string
		demoFallback bool
		setup        func(mockClient *clientmocks.MockClient)
		validate     func(t *testing.T, entries []*domain.AdsCampaignEntry, err error)
	}{
		{
			name:       "Consulta bem-sucedida deve converter as linhas",
			customerID: "1234567890",
			setup: func(mockClient *clientmocks.MockClient) {
				mockClient.EXPECT().
					Search("1234567890", gomock.Any()).
					DoAndReturn(func(customerID, query string) ([]googleadsdomain.SearchResult, error) {
						assert.Contains(t, query, "FROM campaign")
						assert.Contains(t, query, "BETWEEN '2024-01-10' AND '2024-01-12'")

						return []googleadsdomain.SearchResult{
							{
								Campaign: googleadsdomain.Campaign{ID: "111", Name: "Campanha A"},
								Segments: googleadsdomain.Segments{Date: "2024-01-10"},
								Metrics:  googleadsdomain.Metrics{Impressions: "200", Clicks: "10", CostMicros: "5000000", Conversions: 1},
							},
						}, nil
					})
			},
			validate: func(t *testing.T, entries []*domain.AdsCampaignEntry, err error) {
				assert.NoError(t, err)
				assert.Len(t, entries, 1)
				assert.Equal(t, 5.0, *entries[0].Cost)
				assert.False(t, IsDemoEntry(entries[0]))
			},
		},
		{
			name:       "Sem conta configurada deve retornar erro de configuração",
			customerID: "",
			setup:      func(mockClient *clientmocks.MockClient) {},
			validate: func(t *testing.T, entries []*domain.AdsCampaignEntry, err error) {
				assert.Nil(t, entries)
				assert.ErrorIs(t, err, domain.ErrNotConfigured)
			},
		},
		{
			name:         "Falha da API com fallback habilitado deve devolver o conjunto de demonstração",
			customerID:   "1234567890",
			demoFallback: true,
			setup: func(mockClient *clientmocks.MockClient) {
				mockClient.EXPECT().
					Search("1234567890", gomock.Any()).
					Return(nil, errors.New("quota exceeded"))
			},
			validate: func(t *testing.T, entries []*domain.AdsCampaignEntry, err error) {
				assert.NoError(t, err)
				// Duas campanhas por dia em uma janela de três dias
				assert.Len(t, entries, 6)
				for _, entry := range entries {
					assert.True(t, IsDemoEntry(entry))
				}
			},
		},
		{
			name:       "Falha da API sem fallback deve propagar o erro",
			customerID: "1234567890",
			setup: func(mockClient *clientmocks.MockClient) {
				mockClient.EXPECT().
					Search("1234567890", gomock.Any()).
					Return(nil, errors.New("quota exceeded"))
			},
			validate: func(t *testing.T, entries []*domain.AdsCampaignEntry, err error) {
				assert.Nil(t, entries)
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := clientmocks.NewMockClient(ctrl)
			tt.setup(mockClient)

			cfg := &config.Config{}
			cfg.GoogleAds.DeveloperToken = "dev-token"
			cfg.GoogleAds.DemoFallback = tt.demoFallback

			service := &GoogleAdsService{cfg: cfg, Client: mockClient}

			entries, err := service.FetchCampaignMetrics(tt.customerID, startDate, endDate)
			tt.validate(t, entries, err)
		})
	}
}

func TestDemoCampaignDataset(t *testing.T) {
	startDate := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)

	entries := DemoCampaignDataset("1234567890", startDate, endDate)

	// Duas campanhas por dia, janela de dois dias
	assert.Len(t, entries, 4)

	for _, entry := range entries {
		assert.True(t, IsDemoEntry(entry))
		assert.Contains(t, *entry.CampaignName, "(demo)")
		assert.NotNil(t, entry.CTR)
		assert.NotNil(t, entry.AvgCPC)
	}
}
