package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vfg2006/marketing-metrics-api/internal/domain"
	"github.com/vfg2006/marketing-metrics-api/internal/usecases/analyzing"
	"github.com/vfg2006/marketing-metrics-api/internal/usecases/collecting"
	"github.com/vfg2006/marketing-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-metrics-api/pkg/log"
)

const (
	defaultFetchDaysBack  = 7
	defaultTrendsDaysBack = 30
	defaultDaysToKeep     = 90
)

// FetchData dispara um ciclo de coleta sob demanda. O parâmetro enhanced
// inclui as quebras por página e termo de busca no ciclo.
func FetchData(service collecting.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		daysBack, err := queryIntParam(r, "days_back", defaultFetchDaysBack)
		if err != nil {
			logger.WithFields(log.Fields{
				"days_back": r.URL.Query().Get("days_back"),
				"error":     err.Error(),
			}).Warn("data: invalid days_back parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "days_back deve ser um número inteiro", nil)
			return
		}

		enhanced := false
		if raw := r.URL.Query().Get("enhanced"); raw != "" {
			enhanced, err = strconv.ParseBool(raw)
			if err != nil {
				logger.WithField("enhanced", raw).Warn("data: invalid enhanced parameter")
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "enhanced deve ser true ou false", nil)
				return
			}
		}

		logger.WithFields(log.Fields{
			"days_back": daysBack,
			"enhanced":  enhanced,
		}).Info("data: starting on-demand collection")

		var report *domain.CollectionReport
		if enhanced {
			report, err = service.CollectEnhanced(r.Context(), daysBack)
		} else {
			report, err = service.CollectDaily(r.Context(), daysBack)
		}

		if err != nil {
			if errors.Is(err, domain.ErrInvalidDaysBack) {
				apiErrors.WriteError(w, apiErrors.ErrOutOfRange, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("data: collection cycle failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar a coleta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("data: failed to encode collection report")
		}
	})
}

// GetDataSummary retorna contagens e datas mais recentes por tabela
func GetDataSummary(service collecting.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary, err := service.Summarize()
		if err != nil {
			logger.WithError(err).Error("data: failed to summarize stored data")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o resumo dos dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("data: failed to encode summary")
		}
	})
}

// CleanupData remove registros mais antigos que o corte de retenção
func CleanupData(service collecting.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		daysToKeep, err := queryIntParam(r, "days_to_keep", defaultDaysToKeep)
		if err != nil {
			logger.WithFields(log.Fields{
				"days_to_keep": r.URL.Query().Get("days_to_keep"),
				"error":        err.Error(),
			}).Warn("data: invalid days_to_keep parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "days_to_keep deve ser um número inteiro", nil)
			return
		}

		logger.WithField("days_to_keep", daysToKeep).Info("data: starting on-demand retention sweep")

		report, err := service.Cleanup(daysToKeep)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidDaysToKeep) {
				apiErrors.WriteError(w, apiErrors.ErrOutOfRange, err.Error(), nil)
				return
			}

			logger.WithError(err).Error("data: retention sweep failed")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao executar a limpeza de retenção", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("data: failed to encode cleanup report")
		}
	})
}

// GetConnections sonda a conectividade de cada fonte configurada
func GetConnections(service collecting.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := service.TestConnections()
		if err != nil {
			logger.WithError(err).Error("data: connection probe failed")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao testar as conexões", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("data: failed to encode connection report")
		}
	})
}

// GetAdsTrends analisa a tendência das campanhas armazenadas na janela
func GetAdsTrends(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		daysBack, err := queryIntParam(r, "days_back", defaultTrendsDaysBack)
		if err != nil {
			logger.WithFields(log.Fields{
				"days_back": r.URL.Query().Get("days_back"),
				"error":     err.Error(),
			}).Warn("data: invalid days_back parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "days_back deve ser um número inteiro", nil)
			return
		}

		report, err := service.AnalyzeCampaignTrends(daysBack)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidDaysBack):
				apiErrors.WriteError(w, apiErrors.ErrOutOfRange, err.Error(), nil)

			case errors.Is(err, domain.ErrNotConfigured):
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Google Ads não configurado", nil)

			default:
				logger.WithError(err).Error("data: trend analysis failed")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao analisar as campanhas", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("data: failed to encode trend report")
		}
	})
}

// GetTrafficSources agrega as sessões por canal de aquisição na janela,
// consultando a API do Google Analytics diretamente
func GetTrafficSources(service collecting.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		daysBack, err := queryIntParam(r, "days_back", defaultTrendsDaysBack)
		if err != nil {
			logger.WithFields(log.Fields{
				"days_back": r.URL.Query().Get("days_back"),
				"error":     err.Error(),
			}).Warn("data: invalid days_back parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "days_back deve ser um número inteiro", nil)
			return
		}

		summary, err := service.TrafficSources(daysBack)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidDaysBack):
				apiErrors.WriteError(w, apiErrors.ErrOutOfRange, err.Error(), nil)

			case errors.Is(err, domain.ErrNotConfigured):
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Google Analytics não configurado", nil)

			default:
				logger.WithError(err).Error("data: traffic source query failed")
				apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar as fontes de tráfego", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("data: failed to encode traffic source summary")
		}
	})
}

// queryIntParam lê um parâmetro inteiro da query string, devolvendo o valor
// padrão quando ausente
func queryIntParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	return strconv.Atoi(raw)
}
