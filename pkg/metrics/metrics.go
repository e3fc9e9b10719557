// Package metrics expõe os coletores Prometheus do serviço.
package metrics

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	collectionRunsTotal       *prometheus.CounterVec
	recordsFetchedTotal       *prometheus.CounterVec
	recordsStoredTotal        *prometheus.CounterVec
	collectionDurationSeconds *prometheus.HistogramVec
	retentionDeletedRowsTotal *prometheus.CounterVec
	httpRequestsTotal         *prometheus.CounterVec
	httpRequestDuration       *prometheus.HistogramVec

	once sync.Once
)

// Init registra os coletores no registry padrão. Pode ser chamada mais de uma vez.
func Init() {
	once.Do(func() {
		collectionRunsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "collection_runs_total",
				Help: "Total de ciclos de coleta executados, por modo e status geral.",
			},
			[]string{"mode", "status"},
		)

		recordsFetchedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "collection_records_fetched_total",
				Help: "Total de registros buscados nas APIs, por fonte.",
			},
			[]string{"source"},
		)

		recordsStoredTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "collection_records_stored_total",
				Help: "Total de registros novos inseridos no banco, por fonte.",
			},
			[]string{"source"},
		)

		collectionDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "collection_duration_seconds",
				Help:    "Duração dos ciclos de coleta, por modo.",
				Buckets: []float64{1, 5, 15, 30, 60, 120, 300},
			},
			[]string{"mode"},
		)

		retentionDeletedRowsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "retention_deleted_rows_total",
				Help: "Total de linhas removidas pela varredura de retenção, por tabela.",
			},
			[]string{"table"},
		)

		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total de requisições HTTP atendidas, por método, rota e status.",
			},
			[]string{"method", "path", "status"},
		)

		httpRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duração das requisições HTTP, por método e rota.",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		)
	})
}

// ObserveCollectionRun registra o resultado de um ciclo de coleta
func ObserveCollectionRun(mode, status string, durationSeconds float64) {
	if collectionRunsTotal == nil {
		return
	}
	collectionRunsTotal.WithLabelValues(mode, status).Inc()
	collectionDurationSeconds.WithLabelValues(mode).Observe(durationSeconds)
}

// AddRecordsFetched acumula registros buscados de uma fonte
func AddRecordsFetched(source string, count int64) {
	if recordsFetchedTotal == nil {
		return
	}
	recordsFetchedTotal.WithLabelValues(source).Add(float64(count))
}

// AddRecordsStored acumula registros inseridos de uma fonte
func AddRecordsStored(source string, count int64) {
	if recordsStoredTotal == nil {
		return
	}
	recordsStoredTotal.WithLabelValues(source).Add(float64(count))
}

// AddRetentionDeleted acumula linhas removidas de uma tabela pela retenção
func AddRetentionDeleted(table string, count int64) {
	if retentionDeletedRowsTotal == nil {
		return
	}
	retentionDeletedRowsTotal.WithLabelValues(table).Add(float64(count))
}

// ObserveHTTPRequest registra uma requisição HTTP atendida
func ObserveHTTPRequest(method, path string, status int, durationSeconds float64) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(durationSeconds)
}

// Handler expõe o registry padrão para o endpoint /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
