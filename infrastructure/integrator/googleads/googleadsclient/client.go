package googleadsclient

import (
	"net/http"
	"time"

	googleadsdomain "github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/googleauth"
	"github.com/vfg2006/marketing-metrics-api/internal/config"
)

type Client interface {
	Search(customerID, query string) ([]googleadsdomain.SearchResult, error)
}

type GoogleAdsClient struct {
	httpClient   *http.Client
	cfg          *config.Config
	tokenManager *googleauth.TokenManager
}

func NewClient(cfg *config.Config, tokenManager *googleauth.TokenManager) Client {
	return &GoogleAdsClient{
		httpClient: &http.Client{
			Timeout: 45 * time.Second,
		},
		cfg:          cfg,
		tokenManager: tokenManager,
	}
}
