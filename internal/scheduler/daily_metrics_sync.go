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

// DailyMetricsSyncConfig representa a configuração do agendador da coleta diária
type DailyMetricsSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// DailyMetricsSyncService gerencia o agendamento e execução da coleta diária de
// métricas das três fontes principais
type DailyMetricsSyncService struct {
	scheduler           *gocron.Scheduler
	config              DailyMetricsSyncConfig
	collector           collecting.Collector
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReport          *domain.CollectionReport
}

// NewDailyMetricsSyncService cria uma nova instância do serviço de coleta diária
func NewDailyMetricsSyncService(
	collector collecting.Collector,
	appConfig *config.Config,
) *DailyMetricsSyncService {
	// Criar a configuração com base na config global
	syncConfig := DailyMetricsSyncConfig{
		CronSchedule: appConfig.DailyMetricsSync.CronSchedule,
		LookbackDays: appConfig.DailyMetricsSync.LookbackDays,
		SyncEnabled:  appConfig.DailyMetricsSync.Enabled,
	}

	// Criar o agendador
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador da coleta diária carregada")

	return &DailyMetricsSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		collector:   collector,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *DailyMetricsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Coleta diária de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da coleta diária de métricas")

	// Agendar a coleta diária
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runDailySync()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar coleta diária de métricas: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da coleta diária de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// runDailySync executa um ciclo de coleta diária respeitando a janela
// configurada. Ciclos sobrepostos são ignorados.
func (s *DailyMetricsSyncService) runDailySync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta diária de métricas já em andamento, ignorando")
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

	logrus.WithField("lookback_days", s.config.LookbackDays).Info("Iniciando coleta diária de métricas")

	report, err := s.collector.CollectDaily(context.Background(), s.config.LookbackDays)
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar coleta diária de métricas")
		return
	}

	s.lastReport = report
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"run_id":        report.RunID,
		"status":        report.Status,
		"total_records": report.TotalRecordsProcessed,
		"duration":      time.Since(startTime).String(),
	}).Info("Coleta diária de métricas concluída")
}

// TriggerManualSync inicia manualmente uma coleta diária
func (s *DailyMetricsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Coleta diária de métricas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando coleta diária de métricas manual")
	go s.runDailySync()
}

// GetStatus retorna o status atual do agendador
func (s *DailyMetricsSyncService) GetStatus() map[string]any {
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
