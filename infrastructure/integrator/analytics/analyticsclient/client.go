package analyticsclient

import (
	"net/http"
	"time"

	analyticsdomain "github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/analytics/domain"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/googleauth"
	"github.com/vfg2006/marketing-metrics-api/internal/config"
)

type Client interface {
	RunReport(propertyID string, request *analyticsdomain.RunReportRequest) (*analyticsdomain.RunReportResponse, error)
	GetPropertyMetadata(propertyID string) (*analyticsdomain.PropertyMetadata, error)
}

type AnalyticsClient struct {
	httpClient   *http.Client
	cfg          *config.Config
	tokenManager *googleauth.TokenManager
}

func NewClient(cfg *config.Config, tokenManager *googleauth.TokenManager) Client {
	return &AnalyticsClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg:          cfg,
		tokenManager: tokenManager,
	}
}
