package googleadsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	googleadsdomain "github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/googleads/domain"
)

// Search executa uma consulta GAQL na conta informada e acumula todas as
// páginas de resultado.
func (c *GoogleAdsClient) Search(customerID, query string) ([]googleadsdomain.SearchResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	accessToken, err := c.tokenManager.AccessToken()
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/customers/%s/googleAds:search", c.cfg.GoogleAds.URL, customerID)

	results := make([]googleadsdomain.SearchResult, 0)
	pageToken := ""

	for {
		page, err := c.searchPage(ctx, endpoint, accessToken, query, pageToken)
		if err != nil {
			return nil, err
		}

		results = append(results, page.Results...)

		if page.NextPageToken == "" {
			return results, nil
		}
		pageToken = page.NextPageToken
	}
}

func (c *GoogleAdsClient) searchPage(ctx context.Context, endpoint, accessToken, query, pageToken string) (*googleadsdomain.SearchResponse, error) {
	body, err := json.Marshal(&googleadsdomain.SearchRequest{
		Query:     query,
		PageToken: pageToken,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a consulta: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("developer-token", c.cfg.GoogleAds.DeveloperToken)
	if c.cfg.GoogleAds.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.cfg.GoogleAds.LoginCustomerID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("consulta ao Google Ads falhou com status %s: %s", resp.Status, excerpt)
	}

	response := &googleadsdomain.SearchResponse{}
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
