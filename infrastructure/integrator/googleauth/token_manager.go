package googleauth

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-metrics-api/internal/config"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
)

// TokenManager gerencia o access token OAuth compartilhado pelos três clientes
// de API do Google. O token é renovado sob demanda a partir do refresh token.
type TokenManager struct {
	cfg               *config.Config
	TokenRefreshMutex sync.Mutex

	accessToken    string
	tokenExpiresAt time.Time
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:               cfg,
		TokenRefreshMutex: sync.Mutex{},
	}
}

// IsConfigured informa se há credenciais OAuth suficientes para chamar as APIs
func (tm *TokenManager) IsConfigured() bool {
	return tm.cfg.Google.ClientID != "" &&
		tm.cfg.Google.ClientSecret != "" &&
		tm.cfg.Google.RefreshToken != ""
}

// AccessToken retorna um access token válido, renovando quando necessário
func (tm *TokenManager) AccessToken() (string, error) {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	// Reaproveitar o token em cache enquanto houver folga até a expiração
	if tm.accessToken != "" && time.Until(tm.tokenExpiresAt) > time.Minute {
		return tm.accessToken, nil
	}

	return tm.refreshLocked()
}

// RefreshToken força a renovação do access token
func (tm *TokenManager) RefreshToken() error {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	_, err := tm.refreshLocked()
	return err
}

// refreshLocked renova o token. O chamador deve estar com o mutex adquirido.
func (tm *TokenManager) refreshLocked() (string, error) {
	if !tm.IsConfigured() {
		return "", domain.ErrNotConfigured
	}

	tokenResponse, err := ExchangeRefreshToken(
		tm.cfg.Google.TokenURL,
		tm.cfg.Google.ClientID,
		tm.cfg.Google.ClientSecret,
		tm.cfg.Google.RefreshToken,
	)
	if err != nil {
		logrus.Errorf("Erro ao renovar access token: %v", err)
		return "", fmt.Errorf("erro ao renovar access token: %w", err)
	}

	tm.accessToken = tokenResponse.AccessToken
	tm.tokenExpiresAt = CalculateTokenExpiration(tokenResponse.ExpiresIn)

	logrus.Infof("Access token renovado com sucesso. Expira em: %s",
		tm.tokenExpiresAt.Format(time.RFC3339))

	return tm.accessToken, nil
}
