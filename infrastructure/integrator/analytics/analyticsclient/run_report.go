package analyticsclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	analyticsdomain "github.com/vfg2006/marketing-metrics-api/infrastructure/integrator/analytics/domain"
	"github.com/vfg2006/marketing-metrics-api/pkg/utils"
)

// RunReport executa uma consulta na Data API do GA4 para a propriedade
// informada. A propriedade entra no caminho da URL e o corpo carrega as
// dimensões, métricas e o intervalo de datas da consulta.
func (c *AnalyticsClient) RunReport(propertyID string, request *analyticsdomain.RunReportRequest) (*analyticsdomain.RunReportResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	accessToken, err := c.tokenManager.AccessToken()
	if err != nil {
		return nil, err
	}

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.cfg.Analytics.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, fmt.Sprintf("properties/%s:runReport", propertyID))

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a consulta: %w", err)
	}

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("requisição runReport falhou com status %s: %s", resp.Status, excerpt)
	}

	// Decodificar a resposta JSON.
	response := &analyticsdomain.RunReportResponse{}
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}

// GetPropertyMetadata consulta os metadados da propriedade, usado como sonda
// de conectividade sem movimentar dados de relatório.
func (c *AnalyticsClient) GetPropertyMetadata(propertyID string) (*analyticsdomain.PropertyMetadata, error) {
	accessToken, err := c.tokenManager.AccessToken()
	if err != nil {
		return nil, err
	}

	endpoint, err := url.Parse(c.cfg.Analytics.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, fmt.Sprintf("properties/%s/metadata", propertyID))

	data, err := utils.MakeAuthorizedRequest(endpoint.String(), accessToken)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar metadados da propriedade: %w", err)
	}

	metadata := &analyticsdomain.PropertyMetadata{}
	if err := json.Unmarshal(data, metadata); err != nil {
		return nil, fmt.Errorf("erro ao decodificar os metadados: %w", err)
	}

	return metadata, nil
}
