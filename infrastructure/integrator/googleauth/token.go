package googleauth

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// TokenResponse representa a resposta do endpoint OAuth do Google
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope"`
}

// ExchangeRefreshToken troca o refresh token configurado por um access token
// de curta duração
func ExchangeRefreshToken(tokenURL, clientID, clientSecret, refreshToken string) (*TokenResponse, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("refresh token não pode ser vazio")
	}

	params := url.Values{}
	params.Add("grant_type", "refresh_token")
	params.Add("client_id", clientID)
	params.Add("client_secret", clientSecret)
	params.Add("refresh_token", refreshToken)

	// Usar um cliente HTTP com timeout adequado
	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.PostForm(tokenURL, params)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter access token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Erro obtendo access token. Status: %d, Resposta: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("erro ao obter access token. Status: %d, Resposta: %s", resp.StatusCode, body)
	}

	var tokenResp TokenResponse
	err = json.Unmarshal(body, &tokenResp)
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token retornado pela API é vazio")
	}

	return &tokenResp, nil
}

// CalculateTokenExpiration calcula a data de expiração do token com base no tempo de expiração em segundos
func CalculateTokenExpiration(expiresIn int64) time.Time {
	// Subtraímos 1 minuto para renovar antes da expiração real
	buffer := int64(60)
	safeExpiresIn := expiresIn - buffer

	if safeExpiresIn < 0 {
		safeExpiresIn = expiresIn / 2 // Se for muito curto, usamos metade do tempo
	}

	return time.Now().Add(time.Duration(safeExpiresIn) * time.Second)
}
