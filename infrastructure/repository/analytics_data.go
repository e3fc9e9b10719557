package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
)

const analyticsDataTable = "analytics_data"

type AnalyticsDataRepository interface {
	Upsert(ctx context.Context, entries []*domain.AnalyticsEntry) (int64, error)
	Summary() (*domain.TableSummary, error)
	DeleteOlderThan(days int) (int64, error)
}

type analyticsDataRepository struct {
	conn *postgres.Connection
}

func NewAnalyticsDataRepository(conn *postgres.Connection) AnalyticsDataRepository {
	return &analyticsDataRepository{
		conn: conn,
	}
}

// Upsert grava o lote em uma única transação. Registros já existentes para o
// par (propriedade, dia) são atualizados campo a campo preservando created_at;
// os demais são inseridos. Retorna apenas a contagem de inserções.
func (r *analyticsDataRepository) Upsert(ctx context.Context, entries []*domain.AnalyticsEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	var inserted int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, entry := range entries {
			query, args, err := squirrel.
				Select("id").
				From(analyticsDataTable).
				Where(squirrel.Eq{
					"property_id": entry.PropertyID,
					"date":        entry.Date.Format("2006-01-02"),
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

func (r *analyticsDataRepository) insert(tx *sql.Tx, entry *domain.AnalyticsEntry) error {
	query, args, err := squirrel.
		Insert(analyticsDataTable).
		Columns(
			"property_id", "date", "sessions", "total_users", "new_users",
			"page_views", "avg_session_duration", "bounce_rate",
			"pages_per_session", "conversions", "raw_payload",
		).
		Values(
			entry.PropertyID,
			entry.Date.Format("2006-01-02"),
			entry.Sessions,
			entry.TotalUsers,
			entry.NewUsers,
			entry.PageViews,
			entry.AvgSessionDuration,
			entry.BounceRate,
			entry.PagesPerSession,
			entry.Conversions,
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

func (r *analyticsDataRepository) update(tx *sql.Tx, id int64, entry *domain.AnalyticsEntry) error {
	// Campos nulos não foram informados pela fonte e não sobrescrevem o valor
	// já armazenado.
	values := map[string]interface{}{"updated_at": squirrel.Expr("NOW()")}
	setIfPresentInt(values, "sessions", entry.Sessions)
	setIfPresentInt(values, "total_users", entry.TotalUsers)
	setIfPresentInt(values, "new_users", entry.NewUsers)
	setIfPresentInt(values, "page_views", entry.PageViews)
	setIfPresentFloat(values, "avg_session_duration", entry.AvgSessionDuration)
	setIfPresentFloat(values, "bounce_rate", entry.BounceRate)
	setIfPresentFloat(values, "pages_per_session", entry.PagesPerSession)
	setIfPresentFloat(values, "conversions", entry.Conversions)
	if len(entry.RawPayload) > 0 {
		values["raw_payload"] = string(entry.RawPayload)
	}

	query, args, err := squirrel.
		Update(analyticsDataTable).
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
func (r *analyticsDataRepository) Summary() (*domain.TableSummary, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(analyticsDataTable).
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
		Select("date", "property_id").
		From(analyticsDataTable).
		OrderBy("date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var latestDate time.Time
	if err := r.conn.QueryRow(query, args...).Scan(&latestDate, &summary.PropertyID); err != nil {
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
func (r *analyticsDataRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete(analyticsDataTable).
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

// rawPayloadArg converte o payload cru para o argumento da query. O JSONB é
// enviado como texto; payload vazio vira NULL.
func rawPayloadArg(raw json.RawMessage) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func setIfPresentInt(values map[string]interface{}, column string, value *int64) {
	if value != nil {
		values[column] = *value
	}
}

func setIfPresentFloat(values map[string]interface{}, column string, value *float64) {
	if value != nil {
		values[column] = *value
	}
}

func setIfPresentString(values map[string]interface{}, column string, value *string) {
	if value != nil {
		values[column] = *value
	}
}
