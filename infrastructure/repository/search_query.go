package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
)

const searchQueriesTable = "search_queries"

type SearchQueryRepository interface {
	Upsert(ctx context.Context, entries []*domain.SearchQueryEntry) (int64, error)
	Count() (int64, error)
}

type searchQueryRepository struct {
	conn *postgres.Connection
}

func NewSearchQueryRepository(conn *postgres.Connection) SearchQueryRepository {
	return &searchQueryRepository{
		conn: conn,
	}
}

// Upsert grava o lote em uma única transação, atualizando os registros já
// existentes para a tripla (site, termo, janela) e inserindo os demais.
// Retorna a contagem de inserções.
func (r *searchQueryRepository) Upsert(ctx context.Context, entries []*domain.SearchQueryEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	var inserted int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, entry := range entries {
			query, args, err := squirrel.
				Select("id").
				From(searchQueriesTable).
				Where(squirrel.Eq{
					"site_url":   entry.SiteURL,
					"query":      entry.Query,
					"date_range": entry.DateRange,
				}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			var id int64
			err = tx.QueryRow(query, args...).Scan(&id)
			switch {
			case err == sql.ErrNoRows:
				if err := r.insert(tx, entry); err != nil {
					return err
				}
				inserted++
			case err != nil:
				return fmt.Errorf("erro ao consultar registro existente: %w", err)
			default:
				if err := r.update(tx, id, entry); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func (r *searchQueryRepository) insert(tx *sql.Tx, entry *domain.SearchQueryEntry) error {
	query, args, err := squirrel.
		Insert(searchQueriesTable).
		Columns(
			"site_url", "query", "date_range", "clicks", "impressions",
			"ctr", "avg_position", "raw_payload",
		).
		Values(
			entry.SiteURL,
			entry.Query,
			entry.DateRange,
			entry.Clicks,
			entry.Impressions,
			entry.CTR,
			entry.AvgPosition,
			rawPayloadArg(entry.RawPayload),
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := tx.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao inserir registro: %w", err)
	}

	return nil
}

func (r *searchQueryRepository) update(tx *sql.Tx, id int64, entry *domain.SearchQueryEntry) error {
	values := map[string]interface{}{"updated_at": squirrel.Expr("NOW()")}
	setIfPresentInt(values, "clicks", entry.Clicks)
	setIfPresentInt(values, "impressions", entry.Impressions)
	setIfPresentFloat(values, "ctr", entry.CTR)
	setIfPresentFloat(values, "avg_position", entry.AvgPosition)
	if len(entry.RawPayload) > 0 {
		values["raw_payload"] = string(entry.RawPayload)
	}

	query, args, err := squirrel.
		Update(searchQueriesTable).
		SetMap(values).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := tx.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao atualizar registro: %w", err)
	}

	return nil
}

// Count retorna o total de linhas da tabela.
func (r *searchQueryRepository) Count() (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(searchQueriesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar registros: %w", err)
	}

	return total, nil
}
