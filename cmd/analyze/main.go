package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/repository"
	"github.com/vfg2006/marketing-metrics-api/internal/config"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
	"github.com/vfg2006/marketing-metrics-api/internal/usecases/analyzing"
	"github.com/vfg2006/marketing-metrics-api/pkg/utils"
)

// Relatório de tendências das campanhas do Google Ads direto no terminal,
// sem passar pela API. A análise lê apenas o banco local.
func main() {
	days := flag.Int("days", 30, "janela de análise em dias")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar a configuração")
	}

	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	analyzer := analyzing.NewService(cfg, repository.NewGoogleAdsDataRepository(conn))

	report, err := analyzer.AnalyzeCampaignTrends(*days)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao analisar as campanhas")
	}

	printReport(report)

	fmt.Println("\nRelatório completo (JSON):")
	fmt.Println(utils.PrettyJson(report))
}

func printReport(report *domain.TrendReport) {
	totalRecords := 0
	for _, campaign := range report.Campaigns {
		totalRecords += campaign.Records
	}

	fmt.Println("Análise de performance - Google Ads")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Janela analisada: últimos %d dias\n", report.DaysBack)
	fmt.Printf("Registros encontrados: %d\n", totalRecords)
	fmt.Printf("Campanhas com dados: %d\n", len(report.Campaigns))

	fmt.Println("\nDesempenho geral")
	fmt.Printf("  Impressões: %d\n", report.Totals.Impressions)
	fmt.Printf("  Cliques: %d\n", report.Totals.Clicks)
	fmt.Printf("  Custo total: € %.2f\n", report.Totals.Cost)
	fmt.Printf("  CPC médio: € %.2f\n", report.Totals.AvgCPC)
	fmt.Printf("  CTR médio: %.2f%%\n", report.Totals.AvgCTR)

	if len(report.Campaigns) == 0 {
		fmt.Println("\nNenhum registro de campanha encontrado na janela")
		return
	}

	for _, campaign := range report.Campaigns {
		fmt.Printf("\n%s (campanha %s, %d registros)\n", campaign.CampaignName, campaign.CampaignID, campaign.Records)
		fmt.Println(strings.Repeat("-", 40))

		if campaign.Status == domain.TrendStatusInsufficientData {
			fmt.Println("  Registros insuficientes para comparar as metades da janela")
			continue
		}

		impressions := campaign.Changes["impressions"]
		cpc := campaign.Changes["avg_cpc"]
		ctr := campaign.Changes["ctr"]

		fmt.Println("  Tendências (primeira metade vs segunda metade):")
		fmt.Printf("    Impressões: %+.1f%%\n", impressions.ChangePct)
		fmt.Printf("    CPC: € %.2f (%+.1f%%)\n", cpc.SecondHalfAvg, cpc.ChangePct)
		fmt.Printf("    CTR: %.2f%% (%+.1f%%)\n", ctr.SecondHalfAvg, ctr.ChangePct)

		if campaign.Status == domain.TrendStatusHealthy {
			fmt.Println("  Performance estável na janela")
			continue
		}

		fmt.Println("  Problemas detectados:")
		for _, issue := range campaign.Issues {
			fmt.Printf("    - %s\n", issue.Description)
			fmt.Printf("      Recomendação: %s\n", issue.Recommendation)
		}
	}
}
