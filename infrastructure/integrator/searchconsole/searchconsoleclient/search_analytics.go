package searchconsoleclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	searchconsoledomain "github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/searchconsole/domain"
	"github.com/vfg2006/marketing-metrics-api/pkg/utils"
)

// QuerySearchAnalytics consulta as métricas de busca orgânica do site na
// janela e dimensões pedidas. O site entra no caminho da URL codificado por
// completo, inclusive barras e dois-pontos.
func (c *SearchConsoleClient) QuerySearchAnalytics(siteURL string, request *searchconsoledomain.SearchAnalyticsRequest) (*searchconsoledomain.SearchAnalyticsResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	accessToken, err := c.tokenManager.AccessToken()
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/sites/%s/searchAnalytics/query",
		strings.TrimSuffix(c.cfg.SearchConsole.BaseURL, "/"),
		url.PathEscape(siteURL),
	)

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a consulta: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("consulta ao Search Console falhou com status %s: %s", resp.Status, excerpt)
	}

	response := &searchconsoledomain.SearchAnalyticsResponse{}
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}

// GetSiteInfo consulta o cadastro do site, usado como sonda de conectividade.
func (c *SearchConsoleClient) GetSiteInfo(siteURL string) (*searchconsoledomain.SiteInfo, error) {
	accessToken, err := c.tokenManager.AccessToken()
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/sites/%s",
		strings.TrimSuffix(c.cfg.SearchConsole.BaseURL, "/"),
		url.PathEscape(siteURL),
	)

	data, err := utils.MakeAuthorizedRequest(endpoint, accessToken)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar o cadastro do site: %w", err)
	}

	info := &searchconsoledomain.SiteInfo{}
	if err := json.Unmarshal(data, info); err != nil {
		return nil, fmt.Errorf("erro ao decodificar o cadastro do site: %w", err)
	}

	return info, nil
}
