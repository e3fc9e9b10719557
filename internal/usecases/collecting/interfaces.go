package collecting

import (
	"context"

	"github.com/vfg2006/marketing-metrics-api/internal/domain"
)

// Collector orquestra o ciclo de coleta das fontes externas e as superfícies
// de consulta sobre o armazenamento
type Collector interface {
	// CollectDaily executa o fan-out diário sobre as três fontes principais
	CollectDaily(ctx context.Context, daysBack int) (*domain.CollectionReport, error)

	// CollectEnhanced executa o fan-out com as quebras por página e termo de
	// busca, totalizando seis fontes
	CollectEnhanced(ctx context.Context, daysBack int) (*domain.CollectionReport, error)

	// TestConnections sonda a conectividade de cada fonte configurada
	TestConnections() (*domain.ConnectionReport, error)

	// Summarize retorna contagens e registros mais recentes por tabela
	Summarize() (*domain.StoreSummary, error)

	// Cleanup remove das tabelas datadas os registros mais antigos que o corte
	Cleanup(daysToKeep int) (*domain.CleanupReport, error)

	// TrafficSources agrega as sessões por canal de aquisição na janela
	TrafficSources(daysBack int) (*domain.TrafficSourceSummary, error)
}
