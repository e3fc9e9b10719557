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

// RetentionSweepConfig representa a configuração do agendador da varredura de retenção
type RetentionSweepConfig struct {
	CronSchedule string
	DaysToKeep   int
	SweepEnabled bool
}

// RetentionSweepService gerencia o agendamento e execução da varredura que
// remove das tabelas datadas os registros mais antigos que o corte
type RetentionSweepService struct {
	scheduler            *gocron.Scheduler
	config               RetentionSweepConfig
	collector            collecting.Collector
	sweepRunning         bool
	sweepMutex           sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
	lastReport           *domain.CleanupReport
}

// NewRetentionSweepService cria uma nova instância do serviço de varredura de retenção
func NewRetentionSweepService(
	collector collecting.Collector,
	appConfig *config.Config,
) *RetentionSweepService {
	sweepConfig := RetentionSweepConfig{
		CronSchedule: appConfig.RetentionSweep.CronSchedule,
		DaysToKeep:   appConfig.RetentionSweep.DaysToKeep,
		SweepEnabled: appConfig.RetentionSweep.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
		"days_to_keep":  sweepConfig.DaysToKeep,
		"sweep_enabled": sweepConfig.SweepEnabled,
	}).Info("Configuração do agendador da varredura de retenção carregada")

	return &RetentionSweepService{
		scheduler:    scheduler,
		config:       sweepConfig,
		collector:    collector,
		sweepRunning: false,
	}
}

// Start inicia o agendador
func (s *RetentionSweepService) Start(ctx context.Context) error {
	if !s.config.SweepEnabled {
		logrus.Info("Varredura de retenção desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da varredura de retenção")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runSweep()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de retenção: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da varredura de retenção")
		s.scheduler.Stop()
	}()

	return nil
}

// runSweep executa uma varredura de retenção com o corte configurado
func (s *RetentionSweepService) runSweep() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de retenção já em andamento, ignorando")
		return
	}
	s.sweepRunning = true
	s.sweepMutex.Unlock()

	startTime := time.Now()
	s.lastSweepStartedAt = startTime

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.sweepMutex.Unlock()
	}()

	logrus.WithField("days_to_keep", s.config.DaysToKeep).Info("Iniciando varredura de retenção")

	report, err := s.collector.Cleanup(s.config.DaysToKeep)
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar varredura de retenção")
		return
	}

	s.lastReport = report
	s.lastSweepCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"total_deleted": report.TotalDeleted,
		"cutoff_date":   report.CutoffDate,
		"duration":      time.Since(startTime).String(),
	}).Info("Varredura de retenção concluída")
}

// TriggerManualSync inicia manualmente uma varredura de retenção
func (s *RetentionSweepService) TriggerManualSync() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de retenção já em andamento, ignorando solicitação manual")
		return
	}
	s.sweepMutex.Unlock()

	logrus.Info("Iniciando varredura de retenção manual")
	go s.runSweep()
}

// GetStatus retorna o status atual do agendador
func (s *RetentionSweepService) GetStatus() map[string]any {
	status := map[string]any{
		"sweep_enabled":           s.config.SweepEnabled,
		"sweep_cron":              s.config.CronSchedule,
		"sweep_days_to_keep":      s.config.DaysToKeep,
		"last_sweep_started_at":   s.lastSweepStartedAt,
		"last_sweep_completed_at": s.lastSweepCompletedAt,
	}

	if s.lastReport != nil {
		status["last_total_deleted"] = s.lastReport.TotalDeleted
		status["last_cutoff_date"] = s.lastReport.CutoffDate
	}

	return status
}
