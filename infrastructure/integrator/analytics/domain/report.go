package domain

// RunReportRequest é o corpo da chamada runReport da Data API
type RunReportRequest struct {
	DateRanges []DateRange `json:"dateRanges"`
	Dimensions []Dimension `json:"dimensions"`
	Metrics    []Metric    `json:"metrics"`
	Limit      int64       `json:"limit,omitempty"`
}

type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type Dimension struct {
	Name string `json:"name"`
}

type Metric struct {
	Name string `json:"name"`
}

// RunReportResponse é a resposta da chamada runReport. Todos os valores de
// métrica chegam como texto e precisam de conversão.
type RunReportResponse struct {
	DimensionHeaders []Header `json:"dimensionHeaders"`
	MetricHeaders    []Header `json:"metricHeaders"`
	Rows             []Row    `json:"rows"`
	RowCount         int      `json:"rowCount"`
}

type Header struct {
	Name string `json:"name"`
}

type Row struct {
	DimensionValues []Value `json:"dimensionValues"`
	MetricValues    []Value `json:"metricValues"`
}

type Value struct {
	Value string `json:"value"`
}

// PropertyMetadata é a resposta resumida do endpoint de metadados da propriedade
type PropertyMetadata struct {
	Name string `json:"name"`
}
