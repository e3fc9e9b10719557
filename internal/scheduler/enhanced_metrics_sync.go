package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-metrics-api/internal/config"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
	"github.com/vfg2006/marketing-metrics-api/internal/usecases/collecting"
)

// EnhancedMetricsSyncConfig representa a configuração do agendador da coleta
// com quebras por página e por termo de busca
type EnhancedMetricsSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// EnhancedMetricsSyncService gerencia o agendamento e execução da coleta com
// seis fontes. Roda com janela maior e frequência menor que a coleta diária.
type EnhancedMetricsSyncService struct {
	scheduler           *gocron.Scheduler
	config              EnhancedMetricsSyncConfig
	collector           collecting.Collector
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.CollectionReport
}

// NewEnhancedMetricsSyncService cria uma nova instância do serviço de coleta com quebras
func NewEnhancedMetricsSyncService(
	collector collecting.Collector,
	appConfig *config.Config,
) *EnhancedMetricsSyncService {
	syncConfig := EnhancedMetricsSyncConfig{
		CronSchedule: appConfig.EnhancedMetricsSync.CronSchedule,
		LookbackDays: appConfig.EnhancedMetricsSync.LookbackDays,
		SyncEnabled:  appConfig.EnhancedMetricsSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador da coleta com quebras carregada")

	return &EnhancedMetricsSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		collector:   collector,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *EnhancedMetricsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Coleta com quebras desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da coleta com quebras")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runEnhancedSync()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar coleta com quebras: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da coleta com quebras")
		s.scheduler.Stop()
	}()

	return nil
}

// runEnhancedSync executa um ciclo de coleta com as seis fontes
func (s *EnhancedMetricsSyncService) runEnhancedSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta com quebras já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.WithField("lookback_days", s.config.LookbackDays).Info("Iniciando coleta com quebras")

	report, err := s.collector.CollectEnhanced(context.Background(), s.config.LookbackDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar coleta com quebras")
		return
	}

	s.lastReport = report
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"run_id":        report.RunID,
		"status":        report.Status,
		"total_records": report.TotalRecordsProcessed,
		"duration":      time.Since(startTime).String(),
	}).Info("Coleta com quebras concluída")
}

// TriggerManualSync inicia manualmente uma coleta com quebras
func (s *EnhancedMetricsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta com quebras já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando coleta com quebras manual")
	go s.runEnhancedSync()
}

// GetStatus retorna o status atual do agendador
func (s *EnhancedMetricsSyncService) GetStatus() map[string]any {
	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if s.lastReport != nil {
		status["last_run_id"] = s.lastReport.RunID
		status["last_status"] = s.lastReport.Status
		status["last_total_records"] = s.lastReport.TotalRecordsProcessed
	}

	return status
}
