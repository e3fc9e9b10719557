package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/marketing-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-metrics-api/internal/usecases/analyzing"
	"github.com/vfg2006/marketing-metrics-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-metrics-api/internal/usecases/collecting"
	"github.com/vfg2006/marketing-metrics-api/pkg/metrics"
	"github.com/vfg2006/marketing-metrics-api/pkg/middleware"
)

// Serialização JSON dos handlers via json-iterator, mantendo a API do
// encoding/json
var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Metrics expõe os coletores Prometheus do serviço
func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

// Data retorna as rotas de coleta, consulta e manutenção dos dados de marketing
func Data(collector collecting.Collector, analyzer analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/data/fetch",
			Method:      http.MethodPost,
			Handler:     FetchData(collector),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/data/summary",
			Method:      http.MethodGet,
			Handler:     GetDataSummary(collector),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/data/cleanup",
			Method:      http.MethodPost,
			Handler:     CleanupData(collector),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/data/connections",
			Method:      http.MethodGet,
			Handler:     GetConnections(collector),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/data/ads-trends",
			Method:      http.MethodGet,
			Handler:     GetAdsTrends(analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/traffic-sources",
			Method:      http.MethodGet,
			Handler:     GetTrafficSources(collector),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/password",
			Method:      http.MethodPatch,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
