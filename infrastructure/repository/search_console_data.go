package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
)

const searchConsoleDataTable = "search_console_data"

type SearchConsoleDataRepository interface {
	Upsert(ctx context.Context, entries []*domain.SearchConsoleEntry) (int64, error)
	Summary() (*domain.TableSummary, error)
	DeleteOlderThan(days int) (int64, error)
}

type searchConsoleDataRepository struct {
	conn *postgres.Connection
}

func NewSearchConsoleDataRepository(conn *postgres.Connection) SearchConsoleDataRepository {
	return &searchConsoleDataRepository{
		conn: conn,
	}
}

// Upsert grava o lote em uma única transação, atualizando os registros já
// existentes para o par (site, dia) e inserindo os demais. Retorna a contagem
// de inserções.
func (r *searchConsoleDataRepository) Upsert(ctx context.Context, entries []*domain.SearchConsoleEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	var inserted int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, entry := range entries {
			query, args, err := squirrel.
				Select("id").
				From(searchConsoleDataTable).
				Where(squirrel.Eq{
					"site_url": entry.SiteURL,
					"date":     entry.Date.Format("2006-01-02"),
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

func (r *searchConsoleDataRepository) insert(tx *sql.Tx, entry *domain.SearchConsoleEntry) error {
	query, args, err := squirrel.
		Insert(searchConsoleDataTable).
		Columns("site_url", "date", "clicks", "impressions", "ctr", "avg_position", "raw_payload").
		Values(
			entry.SiteURL,
			entry.Date.Format("2006-01-02"),
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

func (r *searchConsoleDataRepository) update(tx *sql.Tx, id int64, entry *domain.SearchConsoleEntry) error {
	values := map[string]interface{}{"updated_at": squirrel.Expr("NOW()")}
	setIfPresentInt(values, "clicks", entry.Clicks)
	setIfPresentInt(values, "impressions", entry.Impressions)
	setIfPresentFloat(values, "ctr", entry.CTR)
	setIfPresentFloat(values, "avg_position", entry.AvgPosition)
	if len(entry.RawPayload) > 0 {
		values["raw_payload"] = string(entry.RawPayload)
	}

	query, args, err := squirrel.
		Update(searchConsoleDataTable).
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

// Summary retorna o total de linhas e o registro mais recente da tabela.
func (r *searchConsoleDataRepository) Summary() (*domain.TableSummary, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(searchConsoleDataTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary := &domain.TableSummary{}
	if err := r.conn.QueryRow(query, args...).Scan(&summary.TotalRecords); err != nil {
		return nil, fmt.Errorf("erro ao contar registros: %w", err)
	}

	if summary.TotalRecords == 0 {
		return summary, nil
	}

	query, args, err = squirrel.
		Select("date", "site_url").
		From(searchConsoleDataTable).
		OrderBy("date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var latestDate time.Time
	if err := r.conn.QueryRow(query, args...).Scan(&latestDate, &summary.SiteURL); err != nil {
		if err == sql.ErrNoRows {
			return summary, nil
		}
		return nil, fmt.Errorf("erro ao consultar registro mais recente: %w", err)
	}
	summary.LatestDate = &latestDate

	return summary, nil
}

// DeleteOlderThan remove os registros anteriores à data de corte e retorna a
// quantidade removida.
func (r *searchConsoleDataRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete(searchConsoleDataTable).
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
