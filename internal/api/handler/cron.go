package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
	"github.com/vfg2006/marketing-metrics-api/internal/scheduler"
	"github.com/vfg2006/marketing-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-metrics-api/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDaily     = "daily"
	CronJobTypeEnhanced  = "enhanced"
	CronJobTypeRetention = "retention"
	CronJobTypeAll       = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	DailyMetricsSyncService    *scheduler.DailyMetricsSyncService
	EnhancedMetricsSyncService *scheduler.EnhancedMetricsSyncService
	RetentionSweepService      *scheduler.RetentionSweepService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypeDaily:
			// Executar coleta diária de métricas
			if services.DailyMetricsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de coleta diária não disponível", nil)
				return
			}
			services.DailyMetricsSyncService.TriggerManualSync()

		case CronJobTypeEnhanced:
			// Executar coleta com quebras por página e termo de busca
			if services.EnhancedMetricsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de coleta com quebras não disponível", nil)
				return
			}
			services.EnhancedMetricsSyncService.TriggerManualSync()

		case CronJobTypeRetention:
			// Executar varredura de retenção
			if services.RetentionSweepService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de varredura de retenção não disponível", nil)
				return
			}
			services.RetentionSweepService.TriggerManualSync()

		case CronJobTypeAll:
			// Executar todas as rotinas agendadas
			if services.DailyMetricsSyncService != nil {
				services.DailyMetricsSyncService.TriggerManualSync()
			}
			if services.EnhancedMetricsSyncService != nil {
				services.EnhancedMetricsSyncService.TriggerManualSync()
			}
			if services.RetentionSweepService != nil {
				services.RetentionSweepService.TriggerManualSync()
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: daily, enhanced, retention, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"daily":     services.DailyMetricsSyncService.GetStatus(),
			"enhanced":  services.EnhancedMetricsSyncService.GetStatus(),
			"retention": services.RetentionSweepService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
