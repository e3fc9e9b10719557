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

const searchPagesTable = "search_pages"

type SearchPageRepository interface {
	Upsert(ctx context.Context, entries []*domain.SearchPageEntry) (int64, error)
	Count() (int64, error)
}

type searchPageRepository struct {
	conn *postgres.Connection
}

func NewSearchPageRepository(conn *postgres.Connection) SearchPageRepository {
	return &searchPageRepository{
		conn: conn,
	}
}

// Upsert grava o lote em uma única transação, atualizando os registros já
// existentes para a tripla (site, página, janela) e inserindo os demais.
// Retorna a contagem de inserções.
func (r *searchPageRepository) Upsert(ctx context.Context, entries []*domain.SearchPageEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	var inserted int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, entry := range entries {
			query, args, err := squirrel.
				Select("id").
				From(searchPagesTable).
				Where(squirrel.Eq{
					"site_url":   entry.SiteURL,
					"page":       entry.Page,
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

func (r *searchPageRepository) insert(tx *sql.Tx, entry *domain.SearchPageEntry) error {
	query, args, err := squirrel.
		Insert(searchPagesTable).
		Columns(
			"site_url", "page", "date_range", "clicks", "impressions",
			"ctr", "avg_position", "raw_payload",
		).
		Values(
			entry.SiteURL,
			entry.Page,
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

func (r *searchPageRepository) update(tx *sql.Tx, id int64, entry *domain.SearchPageEntry) error {
	values := map[string]interface{}{"updated_at": squirrel.Expr("NOW()")}
	setIfPresentInt(values, "clicks", entry.Clicks)
	setIfPresentInt(values, "impressions", entry.Impressions)
	setIfPresentFloat(values, "ctr", entry.CTR)
	setIfPresentFloat(values, "avg_position", entry.AvgPosition)
	if len(entry.RawPayload) > 0 {
		values["raw_payload"] = string(entry.RawPayload)
	}

	query, args, err := squirrel.
		Update(searchPagesTable).
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
func (r *searchPageRepository) Count() (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(searchPagesTable).
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
