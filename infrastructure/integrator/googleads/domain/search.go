package domain

// SearchRequest é o corpo da chamada googleAds:search da API REST
type SearchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

// SearchResponse é uma página de resultados da consulta GAQL
type SearchResponse struct {
	Results       []SearchResult `json:"results"`
	NextPageToken string         `json:"nextPageToken"`
	FieldMask     string         `json:"fieldMask"`
}

// SearchResult é uma linha da consulta. A API REST serializa os contadores
// int64 como texto, então os campos chegam como string e são convertidos nas
// fábricas.
type SearchResult struct {
	Campaign Campaign `json:"campaign"`
	Metrics  Metrics  `json:"metrics"`
	Segments Segments `json:"segments"`
}

type Campaign struct {
	ResourceName string `json:"resourceName"`
	ID           string `json:"id"`
	Name         string `json:"name"`
}

type Metrics struct {
	Impressions string  `json:"impressions"`
	Clicks      string  `json:"clicks"`
	CostMicros  string  `json:"costMicros"`
	Conversions float64 `json:"conversions"`
}

type Segments struct {
	Date string `json:"date"`
}
