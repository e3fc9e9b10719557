package searchconsoleclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/googleauth"
	searchconsoledomain "github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/searchconsole/domain"
	"github.com/vfg2006/marketing-metrics-api/internal/config"
)

type Client interface {
	QuerySearchAnalytics(siteURL string, request *searchconsoledomain.SearchAnalyticsRequest) (*searchconsoledomain.SearchAnalyticsResponse, error)
	GetSiteInfo(siteURL string) (*searchconsoledomain.SiteInfo, error)
}

type SearchConsoleClient struct {
	httpClient   *http.Client
	cfg          *config.Config
	tokenManager *googleauth.TokenManager
}

func NewClient(cfg *config.Config, tokenManager *googleauth.TokenManager) Client {
	return &SearchConsoleClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg:          cfg,
		tokenManager: tokenManager,
	}
}
