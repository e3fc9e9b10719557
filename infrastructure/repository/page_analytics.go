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

const pageAnalyticsTable = "page_analytics"

type PageAnalyticsRepository interface {
	Upsert(ctx context.Context, entries []*domain.PageAnalyticsEntry) (int64, error)
	Count() (int64, error)
}

type pageAnalyticsRepository struct {
	conn *postgres.Connection
}

func NewPageAnalyticsRepository(conn *postgres.Connection) PageAnalyticsRepository {
	return &pageAnalyticsRepository{
		conn: conn,
	}
}

// Upsert grava o lote em uma única transação, atualizando os registros já
// existentes para a tripla (propriedade, página, janela) e inserindo os
// demais. Retorna a contagem de inserções.
func (r *pageAnalyticsRepository) Upsert(ctx context.Context, entries []*domain.PageAnalyticsEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	var inserted int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, entry := range entries {
			query, args, err := squirrel.
				Select("id").
				From(pageAnalyticsTable).
				Where(squirrel.Eq{
					"property_id": entry.PropertyID,
					"page_path":   entry.PagePath,
					"date_range":  entry.DateRange,
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

func (r *pageAnalyticsRepository) insert(tx *sql.Tx, entry *domain.PageAnalyticsEntry) error {
	query, args, err := squirrel.
		Insert(pageAnalyticsTable).
		Columns(
			"property_id", "page_path", "date_range", "page_views", "sessions",
			"total_users", "avg_session_duration", "bounce_rate", "raw_payload",
		).
		Values(
			entry.PropertyID,
			entry.PagePath,
			entry.DateRange,
			entry.PageViews,
			entry.Sessions,
			entry.TotalUsers,
			entry.AvgSessionDuration,
			entry.BounceRate,
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

func (r *pageAnalyticsRepository) update(tx *sql.Tx, id int64, entry *domain.PageAnalyticsEntry) error {
	values := map[string]interface{}{"updated_at": squirrel.Expr("NOW()")}
	setIfPresentInt(values, "page_views", entry.PageViews)
	setIfPresentInt(values, "sessions", entry.Sessions)
	setIfPresentInt(values, "total_users", entry.TotalUsers)
	setIfPresentFloat(values, "avg_session_duration", entry.AvgSessionDuration)
	setIfPresentFloat(values, "bounce_rate", entry.BounceRate)
	if len(entry.RawPayload) > 0 {
		values["raw_payload"] = string(entry.RawPayload)
	}

	query, args, err := squirrel.
		Update(pageAnalyticsTable).
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
func (r *pageAnalyticsRepository) Count() (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(pageAnalyticsTable).
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
