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

const googleAdsDataTable = "google_ads_data"

type GoogleAdsDataRepository interface {
	Upsert(ctx context.Context, entries []*domain.AdsCampaignEntry) (int64, error)
	GetByDateRange(customerID string, startDate, endDate time.Time) ([]*domain.AdsCampaignEntry, error)
	Summary() (*domain.TableSummary, error)
	DeleteOlderThan(days int) (int64, error)
}

type googleAdsDataRepository struct {
	conn *postgres.Connection
}

func NewGoogleAdsDataRepository(conn *postgres.Connection) GoogleAdsDataRepository {
	return &googleAdsDataRepository{
		conn: conn,
	}
}

// Upsert grava o lote em uma única transação, atualizando os registros já
// existentes para a tripla (conta, campanha, dia) e inserindo os demais.
// Retorna a contagem de inserções.
func (r *googleAdsDataRepository) Upsert(ctx context.Context, entries []*domain.AdsCampaignEntry) (int64, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	var inserted int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, entry := range entries {
			query, args, err := squirrel.
				Select("id").
				From(googleAdsDataTable).
				Where(squirrel.Eq{
					"customer_id": entry.CustomerID,
					"campaign_id": entry.CampaignID,
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

func (r *googleAdsDataRepository) insert(tx *sql.Tx, entry *domain.AdsCampaignEntry) error {
	query, args, err := squirrel.
		Insert(googleAdsDataTable).
		Columns(
			"customer_id", "campaign_id", "date", "campaign_name",
			"impressions", "clicks", "cost", "conversions", "ctr", "avg_cpc",
			"cost_per_conversion", "conversion_rate", "raw_payload",
		).
		Values(
			entry.CustomerID,
			entry.CampaignID,
			entry.Date.Format("2006-01-02"),
			entry.CampaignName,
			entry.Impressions,
			entry.Clicks,
			entry.Cost,
			entry.Conversions,
			entry.CTR,
			entry.AvgCPC,
			entry.CostPerConversion,
			entry.ConversionRate,
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

func (r *googleAdsDataRepository) update(tx *sql.Tx, id int64, entry *domain.AdsCampaignEntry) error {
	values := map[string]interface{}{"updated_at": squirrel.Expr("NOW()")}
	setIfPresentString(values, "campaign_name", entry.CampaignName)
	setIfPresentInt(values, "impressions", entry.Impressions)
	setIfPresentInt(values, "clicks", entry.Clicks)
	setIfPresentFloat(values, "cost", entry.Cost)
	setIfPresentFloat(values, "conversions", entry.Conversions)
	setIfPresentFloat(values, "ctr", entry.CTR)
	setIfPresentFloat(values, "avg_cpc", entry.AvgCPC)
	setIfPresentFloat(values, "cost_per_conversion", entry.CostPerConversion)
	setIfPresentFloat(values, "conversion_rate", entry.ConversionRate)
	if len(entry.RawPayload) > 0 {
		values["raw_payload"] = string(entry.RawPayload)
	}

	query, args, err := squirrel.
		Update(googleAdsDataTable).
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

// GetByDateRange retorna os registros da conta na janela, ordenados por data,
// para a análise de tendência por campanha.
func (r *googleAdsDataRepository) GetByDateRange(customerID string, startDate, endDate time.Time) ([]*domain.AdsCampaignEntry, error) {
	query, args, err := squirrel.
		Select(
			"id", "customer_id", "campaign_id", "date", "campaign_name",
			"impressions", "clicks", "cost", "conversions", "ctr", "avg_cpc",
			"cost_per_conversion", "conversion_rate", "created_at", "updated_at",
		).
		From(googleAdsDataTable).
		Where(squirrel.Eq{"customer_id": customerID}).
		Where(squirrel.GtOrEq{"date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"date": endDate.Format("2006-01-02")}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.AdsCampaignEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

// Summary retorna o total de linhas e o registro mais recente da tabela.
func (r *googleAdsDataRepository) Summary() (*domain.TableSummary, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(googleAdsDataTable).
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
		Select("date", "customer_id").
		From(googleAdsDataTable).
		OrderBy("date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var latestDate time.Time
	if err := r.conn.QueryRow(query, args...).Scan(&latestDate, &summary.CustomerID); err != nil {
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
func (r *googleAdsDataRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete(googleAdsDataTable).
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

func (r *googleAdsDataRepository) scanEntry(rows *sql.Rows) (*domain.AdsCampaignEntry, error) {
	entry := &domain.AdsCampaignEntry{}

	err := rows.Scan(
		&entry.ID,
		&entry.CustomerID,
		&entry.CampaignID,
		&entry.Date,
		&entry.CampaignName,
		&entry.Impressions,
		&entry.Clicks,
		&entry.Cost,
		&entry.Conversions,
		&entry.CTR,
		&entry.AvgCPC,
		&entry.CostPerConversion,
		&entry.ConversionRate,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return entry, nil
}
