package analyzing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-metrics-api/internal/config"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newAnalyzerWithMock(ctrl *gomock.Controller) (*Service, *mocks.MockGoogleAdsDataRepository) {
	mockRepo := mocks.NewMockGoogleAdsDataRepository(ctrl)

	service := &Service{
		cfg: &config.Config{
			GoogleAds: config.GoogleAds{CustomerID: "9876543210"},
		},
		googleAdsDataRepository: mockRepo,
	}

	return service, mockRepo
}

func trendEntry(campaignID string, day int, impressions, clicks int64, cost, ctr, avgCPC float64) *domain.AdsCampaignEntry {
	name := "Campanha " + campaignID
	return &domain.AdsCampaignEntry{
		CustomerID:   "9876543210",
		CampaignID:   campaignID,
		CampaignName: &name,
		Date:         time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC),
		Impressions:  &impressions,
		Clicks:       &clicks,
		Cost:         &cost,
		CTR:          &ctr,
		AvgCPC:       &avgCPC,
	}
}

func TestAnalyzeCampaignTrends(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockRepo := newAnalyzerWithMock(ctrl)

	t.Run("Campanha com menos de quatro registros deve ser marcada como insufficient_data", func(t *testing.T) {
		entries := []*domain.AdsCampaignEntry{
			trendEntry("111", 1, 1000, 50, 25.0, 5.0, 0.5),
			trendEntry("111", 2, 1000, 50, 25.0, 5.0, 0.5),
			trendEntry("111", 3, 1000, 50, 25.0, 5.0, 0.5),
		}
		mockRepo.EXPECT().
			GetByDateRange("9876543210", gomock.Any(), gomock.Any()).
			Return(entries, nil)

		report, err := service.AnalyzeCampaignTrends(30)

		assert.NoError(t, err)
		assert.Len(t, report.Campaigns, 1)

		campaign := report.Campaigns[0]
		assert.Equal(t, domain.TrendStatusInsufficientData, campaign.Status)
		assert.Equal(t, 3, campaign.Records)
		assert.Nil(t, campaign.Changes)
		assert.Empty(t, campaign.Issues)
	})

	t.Run("Queda de impressões acima do limiar deve gerar alerta de atenção", func(t *testing.T) {
		// Cinco registros fora de ordem: a divisão usa a ordem por data e o
		// registro extra fica na segunda metade
		entries := []*domain.AdsCampaignEntry{
			trendEntry("111", 5, 400, 20, 10.0, 5.0, 0.5),
			trendEntry("111", 1, 1000, 50, 25.0, 5.0, 0.5),
			trendEntry("111", 4, 400, 20, 10.0, 5.0, 0.5),
			trendEntry("111", 2, 1000, 50, 25.0, 5.0, 0.5),
			trendEntry("111", 3, 400, 20, 10.0, 5.0, 0.5),
		}
		mockRepo.EXPECT().
			GetByDateRange("9876543210", gomock.Any(), gomock.Any()).
			Return(entries, nil)

		report, err := service.AnalyzeCampaignTrends(30)

		assert.NoError(t, err)

		campaign := report.Campaigns[0]
		assert.Equal(t, domain.TrendStatusAttention, campaign.Status)

		change := campaign.Changes["impressions"]
		assert.Equal(t, 1000.0, change.FirstHalfAvg)
		assert.Equal(t, 400.0, change.SecondHalfAvg)
		assert.Equal(t, -60.0, change.ChangePct)

		assert.Len(t, campaign.Issues, 1)
		assert.Equal(t, "impressions", campaign.Issues[0].Metric)
		assert.Equal(t, "Queda significativa de impressões", campaign.Issues[0].Description)
		assert.NotEmpty(t, campaign.Issues[0].Recommendation)
	})

	t.Run("CPC médio em alta deve gerar alerta com recomendação", func(t *testing.T) {
		entries := []*domain.AdsCampaignEntry{
			trendEntry("111", 1, 1000, 50, 25.0, 5.0, 0.50),
			trendEntry("111", 2, 1000, 50, 25.0, 5.0, 0.50),
			trendEntry("111", 3, 1000, 50, 35.0, 5.0, 0.70),
			trendEntry("111", 4, 1000, 50, 35.0, 5.0, 0.70),
		}
		mockRepo.EXPECT().
			GetByDateRange("9876543210", gomock.Any(), gomock.Any()).
			Return(entries, nil)

		report, err := service.AnalyzeCampaignTrends(30)

		assert.NoError(t, err)

		campaign := report.Campaigns[0]
		assert.Equal(t, domain.TrendStatusAttention, campaign.Status)
		assert.Equal(t, 40.0, campaign.Changes["avg_cpc"].ChangePct)

		assert.Len(t, campaign.Issues, 1)
		assert.Equal(t, "avg_cpc", campaign.Issues[0].Metric)
		assert.Equal(t, "CPC médio em alta", campaign.Issues[0].Description)
	})

	t.Run("CPC e CTR zerados devem ficar fora das médias das metades", func(t *testing.T) {
		// Dias sem cliques produzem CPC e CTR zerados; com eles na média a
		// variação saltaria para +120% e dispararia um falso alerta
		entries := []*domain.AdsCampaignEntry{
			trendEntry("111", 1, 1000, 50, 25.0, 5.0, 2.0),
			trendEntry("111", 2, 1000, 0, 0.0, 0.0, 0.0),
			trendEntry("111", 3, 1000, 50, 25.0, 4.4, 2.2),
			trendEntry("111", 4, 1000, 50, 25.0, 4.4, 2.2),
		}
		mockRepo.EXPECT().
			GetByDateRange("9876543210", gomock.Any(), gomock.Any()).
			Return(entries, nil)

		report, err := service.AnalyzeCampaignTrends(30)

		assert.NoError(t, err)

		campaign := report.Campaigns[0]
		assert.Equal(t, domain.TrendStatusHealthy, campaign.Status)
		assert.Empty(t, campaign.Issues)

		assert.Equal(t, 2.0, campaign.Changes["avg_cpc"].FirstHalfAvg)
		assert.Equal(t, 10.0, campaign.Changes["avg_cpc"].ChangePct)
		assert.Equal(t, 5.0, campaign.Changes["ctr"].FirstHalfAvg)
		assert.Equal(t, -12.0, campaign.Changes["ctr"].ChangePct)
	})

	t.Run("Campanhas devem sair ordenadas com nome e totais da janela", func(t *testing.T) {
		entries := []*domain.AdsCampaignEntry{
			trendEntry("222", 1, 1000, 10, 5.0, 1.0, 0.5),
			trendEntry("111", 1, 1000, 50, 25.0, 5.0, 0.5),
			trendEntry("111", 2, 1000, 50, 25.0, 5.0, 0.5),
			trendEntry("222", 2, 1000, 10, 5.0, 1.0, 0.5),
			trendEntry("111", 3, 1000, 50, 25.0, 5.0, 0.5),
			trendEntry("111", 4, 1000, 50, 25.0, 5.0, 0.5),
		}
		mockRepo.EXPECT().
			GetByDateRange("9876543210", gomock.Any(), gomock.Any()).
			Return(entries, nil)

		report, err := service.AnalyzeCampaignTrends(30)

		assert.NoError(t, err)
		assert.Len(t, report.Campaigns, 2)
		assert.Equal(t, "111", report.Campaigns[0].CampaignID)
		assert.Equal(t, "Campanha 111", report.Campaigns[0].CampaignName)
		assert.Equal(t, domain.TrendStatusHealthy, report.Campaigns[0].Status)
		assert.Equal(t, "222", report.Campaigns[1].CampaignID)
		assert.Equal(t, domain.TrendStatusInsufficientData, report.Campaigns[1].Status)

		assert.Equal(t, int64(6000), report.Totals.Impressions)
		assert.Equal(t, int64(220), report.Totals.Clicks)
		assert.Equal(t, 110.0, report.Totals.Cost)
		assert.Equal(t, 0.5, report.Totals.AvgCPC)
		assert.Equal(t, 3.67, report.Totals.AvgCTR)
	})

	t.Run("Erro do repositório deve ser propagado com contexto", func(t *testing.T) {
		mockRepo.EXPECT().
			GetByDateRange("9876543210", gomock.Any(), gomock.Any()).
			Return(nil, errors.New("conexão recusada"))

		report, err := service.AnalyzeCampaignTrends(30)

		assert.Nil(t, report)
		assert.ErrorContains(t, err, "registros de campanhas")
	})
}

func TestAnalyzeCampaignTrendsValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Janela fora do intervalo deve ser rejeitada antes de ir ao banco", func(t *testing.T) {
		service, _ := newAnalyzerWithMock(ctrl)

		for _, daysBack := range []int{0, -5, 366} {
			report, err := service.AnalyzeCampaignTrends(daysBack)

			assert.ErrorIs(t, err, domain.ErrInvalidDaysBack)
			assert.Nil(t, report)
		}
	})

	t.Run("Cliente sem customer id configurado deve ser rejeitado", func(t *testing.T) {
		service := &Service{
			cfg:                     &config.Config{},
			googleAdsDataRepository: mocks.NewMockGoogleAdsDataRepository(ctrl),
		}

		report, err := service.AnalyzeCampaignTrends(30)

		assert.ErrorIs(t, err, domain.ErrNotConfigured)
		assert.Nil(t, report)
	})
}
