package collecting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/analytics"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/googleads"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/searchconsole"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/repository"
	"github.com/vfg2006/marketing-metrics-api/internal/config"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
	"github.com/vfg2006/marketing-metrics-api/pkg/metrics"
	"github.com/vfg2006/marketing-metrics-api/pkg/utils"
)

const (
	minDaysBack   = 1
	maxDaysBack   = 365
	minDaysToKeep = 7

	// Limiares do modo com seis fontes. O modo diário exige as três.
	enhancedSuccessThreshold = 4
	enhancedPartialThreshold = 2
)

// sourceJob é uma fonte do fan-out: busca na API, grava no banco e devolve as
// contagens. Um aviso opcional é anexado à mensagem de sucesso.
type sourceJob struct {
	name   string
	vendor string
	run    func(ctx context.Context) (fetched, stored int64, notice string, err error)
}

// Service implementa a interface Collector
type Service struct {
	cfg                         *config.Config
	analyticsService            analytics.AnalyticsIntegrator
	searchConsoleService        searchconsole.SearchConsoleIntegrator
	googleAdsService            googleads.GoogleAdsIntegrator
	analyticsDataRepository     repository.AnalyticsDataRepository
	searchConsoleDataRepository repository.SearchConsoleDataRepository
	googleAdsDataRepository     repository.GoogleAdsDataRepository
	pageAnalyticsRepository     repository.PageAnalyticsRepository
	searchQueryRepository       repository.SearchQueryRepository
	searchPageRepository        repository.SearchPageRepository
}

// NewService cria uma nova instância do serviço de coleta
func NewService(
	cfg *config.Config,
	analyticsService analytics.AnalyticsIntegrator,
	searchConsoleService searchconsole.SearchConsoleIntegrator,
	googleAdsService googleads.GoogleAdsIntegrator,
	analyticsDataRepo repository.AnalyticsDataRepository,
	searchConsoleDataRepo repository.SearchConsoleDataRepository,
	googleAdsDataRepo repository.GoogleAdsDataRepository,
	pageAnalyticsRepo repository.PageAnalyticsRepository,
	searchQueryRepo repository.SearchQueryRepository,
	searchPageRepo repository.SearchPageRepository,
) Collector {
	return &Service{
		cfg:                         cfg,
		analyticsService:            analyticsService,
		searchConsoleService:        searchConsoleService,
		googleAdsService:            googleAdsService,
		analyticsDataRepository:     analyticsDataRepo,
		searchConsoleDataRepository: searchConsoleDataRepo,
		googleAdsDataRepository:     googleAdsDataRepo,
		pageAnalyticsRepository:     pageAnalyticsRepo,
		searchQueryRepository:       searchQueryRepo,
		searchPageRepository:        searchPageRepo,
	}
}

// CollectDaily executa o ciclo diário: métricas por dia das três fontes
// principais, em ordem fixa
func (s *Service) CollectDaily(ctx context.Context, daysBack int) (*domain.CollectionReport, error) {
	return s.collect(ctx, domain.CollectionModeDaily, daysBack, s.dailyJobs(daysBack))
}

// CollectEnhanced executa o ciclo diário acrescido das quebras por página e
// por termo de busca
func (s *Service) CollectEnhanced(ctx context.Context, daysBack int) (*domain.CollectionReport, error) {
	jobs := append(s.dailyJobs(daysBack), s.breakdownJobs(daysBack)...)
	return s.collect(ctx, domain.CollectionModeEnhanced, daysBack, jobs)
}

func (s *Service) collect(ctx context.Context, mode string, daysBack int, jobs []sourceJob) (*domain.CollectionReport, error) {
	// Validação antes de qualquer chamada externa
	if daysBack < minDaysBack || daysBack > maxDaysBack {
		return nil, domain.ErrInvalidDaysBack
	}

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar o identificador do ciclo: %w", err)
	}

	report := &domain.CollectionReport{
		RunID:     runID,
		Mode:      mode,
		DaysBack:  daysBack,
		Sources:   make(map[string]*domain.SourceReport, len(jobs)),
		StartedAt: time.Now(),
	}
	for _, job := range jobs {
		report.Sources[job.name] = &domain.SourceReport{
			Status:  domain.SourceStatusSkipped,
			Message: "Not attempted",
		}
	}

	logrus.WithFields(logrus.Fields{
		"run_id":    runID,
		"mode":      mode,
		"days_back": daysBack,
	}).Info("collecting: starting collection cycle")

	for _, job := range jobs {
		s.runJob(ctx, report, job)
	}

	report.CompletedAt = time.Now()
	report.DurationSeconds = report.CompletedAt.Sub(report.StartedAt).Seconds()
	report.Status = overallStatus(mode, report.SuccessCount(), len(jobs))

	metrics.ObserveCollectionRun(mode, report.Status, report.DurationSeconds)

	logrus.WithFields(logrus.Fields{
		"run_id":           runID,
		"status":           report.Status,
		"total_records":    report.TotalRecordsProcessed,
		"duration_seconds": report.DurationSeconds,
	}).Info("collecting: collection cycle finished")

	return report, nil
}

// runJob executa uma fonte e registra o desfecho no relatório. Erros são
// convertidos em status e nunca interrompem as fontes seguintes.
func (s *Service) runJob(ctx context.Context, report *domain.CollectionReport, job sourceJob) {
	source := report.Sources[job.name]

	fetched, stored, notice, err := job.run(ctx)
	source.RecordsFetched = fetched
	source.RecordsStored = stored
	report.TotalRecordsProcessed += fetched

	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		source.Status = domain.SourceStatusNotConfigured
		source.Message = fmt.Sprintf("%s not configured", job.vendor)
	case err != nil:
		source.Status = domain.SourceStatusError
		source.Message = err.Error()
		logrus.WithFields(logrus.Fields{
			"run_id": report.RunID,
			"source": job.name,
			"error":  err.Error(),
		}).Error("collecting: source failed")
	case fetched == 0:
		source.Status = domain.SourceStatusWarning
		source.Message = "No data fetched"
	default:
		source.Status = domain.SourceStatusSuccess
		source.Message = fmt.Sprintf("Stored %d new records out of %d fetched", stored, fetched)
		if notice != "" {
			source.Message += " " + notice
		}
	}

	metrics.AddRecordsFetched(job.name, fetched)
	metrics.AddRecordsStored(job.name, stored)
}

func (s *Service) dailyJobs(daysBack int) []sourceJob {
	return []sourceJob{
		{
			name:   domain.SourceAnalytics,
			vendor: "Google Analytics",
			run: func(ctx context.Context) (int64, int64, string, error) {
				entries, err := s.analyticsService.FetchDailyMetricsForLastDays(daysBack)
				if err != nil {
					return 0, 0, "", err
				}

				stored, err := s.analyticsDataRepository.Upsert(ctx, entries)
				if err != nil {
					return int64(len(entries)), 0, "", err
				}

				return int64(len(entries)), stored, "", nil
			},
		},
		{
			name:   domain.SourceSearchConsole,
			vendor: "Search Console",
			run: func(ctx context.Context) (int64, int64, string, error) {
				entries, err := s.searchConsoleService.FetchDailyMetricsForLastDays(daysBack)
				if err != nil {
					return 0, 0, "", err
				}

				stored, err := s.searchConsoleDataRepository.Upsert(ctx, entries)
				if err != nil {
					return int64(len(entries)), 0, "", err
				}

				return int64(len(entries)), stored, "", nil
			},
		},
		{
			name:   domain.SourceGoogleAds,
			vendor: "Google Ads",
			run: func(ctx context.Context) (int64, int64, string, error) {
				entries, err := s.googleAdsService.FetchCampaignMetricsForLastDays(daysBack)
				if err != nil {
					return 0, 0, "", err
				}

				// O conjunto de demonstração precisa ficar visível no relatório
				notice := ""
				if len(entries) > 0 && googleads.IsDemoEntry(entries[0]) {
					notice = "(demo dataset)"
				}

				stored, err := s.googleAdsDataRepository.Upsert(ctx, entries)
				if err != nil {
					return int64(len(entries)), 0, "", err
				}

				return int64(len(entries)), stored, notice, nil
			},
		},
	}
}

func (s *Service) breakdownJobs(daysBack int) []sourceJob {
	return []sourceJob{
		{
			name:   domain.SourcePageAnalytics,
			vendor: "Google Analytics",
			run: func(ctx context.Context) (int64, int64, string, error) {
				entries, err := s.analyticsService.FetchPageMetricsForLastDays(daysBack)
				if err != nil {
					return 0, 0, "", err
				}

				stored, err := s.pageAnalyticsRepository.Upsert(ctx, entries)
				if err != nil {
					return int64(len(entries)), 0, "", err
				}

				return int64(len(entries)), stored, "", nil
			},
		},
		{
			name:   domain.SourceSearchQueries,
			vendor: "Search Console",
			run: func(ctx context.Context) (int64, int64, string, error) {
				entries, err := s.searchConsoleService.FetchTopQueriesForLastDays(daysBack)
				if err != nil {
					return 0, 0, "", err
				}

				stored, err := s.searchQueryRepository.Upsert(ctx, entries)
				if err != nil {
					return int64(len(entries)), 0, "", err
				}

				return int64(len(entries)), stored, "", nil
			},
		},
		{
			name:   domain.SourceSearchPages,
			vendor: "Search Console",
			run: func(ctx context.Context) (int64, int64, string, error) {
				entries, err := s.searchConsoleService.FetchTopPagesForLastDays(daysBack)
				if err != nil {
					return 0, 0, "", err
				}

				stored, err := s.searchPageRepository.Upsert(ctx, entries)
				if err != nil {
					return int64(len(entries)), 0, "", err
				}

				return int64(len(entries)), stored, "", nil
			},
		},
	}
}

// overallStatus deriva o status geral do ciclo a partir das fontes com
// sucesso. O modo diário exige todas; o modo com seis fontes tolera falhas
// parciais (>=4 sucesso, >=2 sucesso parcial).
func overallStatus(mode string, successes, total int) string {
	if mode == domain.CollectionModeEnhanced {
		switch {
		case successes >= enhancedSuccessThreshold:
			return domain.CollectionStatusSuccess
		case successes >= enhancedPartialThreshold:
			return domain.CollectionStatusPartialSuccess
		default:
			return domain.CollectionStatusFailed
		}
	}

	switch {
	case successes == total:
		return domain.CollectionStatusSuccess
	case successes >= 1:
		return domain.CollectionStatusPartialSuccess
	default:
		return domain.CollectionStatusFailed
	}
}

// TestConnections sonda cada fonte com uma busca mínima e devolve o resultado
// por fonte, sem abortar nas falhas
func (s *Service) TestConnections() (*domain.ConnectionReport, error) {
	probes := []struct {
		name  string
		check func() (*domain.ConnectionInfo, error)
	}{
		{domain.SourceAnalytics, s.analyticsService.CheckConnection},
		{domain.SourceSearchConsole, s.searchConsoleService.CheckConnection},
		{domain.SourceGoogleAds, s.googleAdsService.CheckConnection},
	}

	report := &domain.ConnectionReport{
		Connections: make(map[string]*domain.ConnectionProbe, len(probes)),
		CheckedAt:   time.Now(),
	}

	for _, probe := range probes {
		info, err := probe.check()
		switch {
		case errors.Is(err, domain.ErrNotConfigured):
			report.Connections[probe.name] = &domain.ConnectionProbe{
				Status: domain.ConnectionStatusNotConfigured,
			}
		case err != nil:
			report.Connections[probe.name] = &domain.ConnectionProbe{
				Status: domain.ConnectionStatusError,
				Error:  err.Error(),
			}
		default:
			connection := &domain.ConnectionProbe{Status: domain.ConnectionStatusConnected}
			if info != nil {
				connection.EntityID = info.EntityID
				connection.Detail = info.Detail
			}
			report.Connections[probe.name] = connection
		}
	}

	return report, nil
}

// Summarize monta a visão agregada do armazenamento: total e registro mais
// recente das tabelas datadas, contagens das tabelas de quebra
func (s *Service) Summarize() (*domain.StoreSummary, error) {
	analyticsSummary, err := s.analyticsDataRepository.Summary()
	if err != nil {
		return nil, fmt.Errorf("erro ao resumir analytics_data: %w", err)
	}

	searchConsoleSummary, err := s.searchConsoleDataRepository.Summary()
	if err != nil {
		return nil, fmt.Errorf("erro ao resumir search_console_data: %w", err)
	}

	googleAdsSummary, err := s.googleAdsDataRepository.Summary()
	if err != nil {
		return nil, fmt.Errorf("erro ao resumir google_ads_data: %w", err)
	}

	pageAnalyticsCount, err := s.pageAnalyticsRepository.Count()
	if err != nil {
		return nil, fmt.Errorf("erro ao contar page_analytics: %w", err)
	}

	searchQueriesCount, err := s.searchQueryRepository.Count()
	if err != nil {
		return nil, fmt.Errorf("erro ao contar search_queries: %w", err)
	}

	searchPagesCount, err := s.searchPageRepository.Count()
	if err != nil {
		return nil, fmt.Errorf("erro ao contar search_pages: %w", err)
	}

	return &domain.StoreSummary{
		AnalyticsData:     analyticsSummary,
		SearchConsoleData: searchConsoleSummary,
		GoogleAdsData:     googleAdsSummary,
		Breakdowns: &domain.BreakdownCounts{
			PageAnalytics: pageAnalyticsCount,
			SearchQueries: searchQueriesCount,
			SearchPages:   searchPagesCount,
		},
		GeneratedAt: time.Now(),
	}, nil
}

// Cleanup aplica a política de retenção nas três tabelas datadas. As tabelas
// de quebra não têm coluna de data e ficam fora da varredura.
func (s *Service) Cleanup(daysToKeep int) (*domain.CleanupReport, error) {
	if daysToKeep < minDaysToKeep {
		return nil, domain.ErrInvalidDaysToKeep
	}

	sweeps := []struct {
		table string
		sweep func(days int) (int64, error)
	}{
		{"analytics_data", s.analyticsDataRepository.DeleteOlderThan},
		{"search_console_data", s.searchConsoleDataRepository.DeleteOlderThan},
		{"google_ads_data", s.googleAdsDataRepository.DeleteOlderThan},
	}

	report := &domain.CleanupReport{
		DaysToKeep:    daysToKeep,
		CutoffDate:    time.Now().AddDate(0, 0, -daysToKeep).Format("2006-01-02"),
		DeletedCounts: make(map[string]int64, len(sweeps)),
	}

	for _, entry := range sweeps {
		deleted, err := entry.sweep(daysToKeep)
		if err != nil {
			return nil, fmt.Errorf("erro ao limpar a tabela %s: %w", entry.table, err)
		}

		report.DeletedCounts[entry.table] = deleted
		report.TotalDeleted += deleted
		metrics.AddRetentionDeleted(entry.table, deleted)
	}

	report.Message = fmt.Sprintf("Cleaned up %d old records", report.TotalDeleted)

	logrus.WithFields(logrus.Fields{
		"days_to_keep":  daysToKeep,
		"cutoff_date":   report.CutoffDate,
		"total_deleted": report.TotalDeleted,
	}).Info("collecting: retention sweep finished")

	return report, nil
}

// TrafficSources agrega sessões e usuários por canal de aquisição direto da
// API, sem persistir
func (s *Service) TrafficSources(daysBack int) (*domain.TrafficSourceSummary, error) {
	if daysBack < minDaysBack || daysBack > maxDaysBack {
		return nil, domain.ErrInvalidDaysBack
	}

	startDate, endDate := utils.LastNDaysWindow(daysBack, 0)

	return s.analyticsService.FetchTrafficSources(s.cfg.Analytics.PropertyID, startDate, endDate)
}
