package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/marketing-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/marketing-metrics-api/internal/domain"
)

const (
	analyticsSelectSQL = `SELECT id FROM analytics_data WHERE date = $1 AND property_id = $2`
	analyticsInsertSQL = `INSERT INTO analytics_data (property_id,date,sessions,total_users,new_users,page_views,avg_session_duration,bounce_rate,pages_per_session,conversions,raw_payload) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("falha ao criar o sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return &postgres.Connection{DB: db}, mock
}

func analyticsEntryFixture(date time.Time) *domain.AnalyticsEntry {
	return &domain.AnalyticsEntry{
		PropertyID:         "123456789",
		Date:               date,
		Sessions:           int64Ptr(120),
		TotalUsers:         int64Ptr(95),
		NewUsers:           int64Ptr(40),
		PageViews:          int64Ptr(310),
		AvgSessionDuration: float64Ptr(182.4),
		BounceRate:         float64Ptr(42.75),
		PagesPerSession:    float64Ptr(2.58),
		Conversions:        float64Ptr(6),
		RawPayload:         []byte(`{"dimensions":["20240115"]}`),
	}
}

func TestAnalyticsDataUpsert(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Deve inserir registro inexistente dentro de uma transação", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewAnalyticsDataRepository(conn)

		entry := analyticsEntryFixture(date)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(analyticsSelectSQL)).
			WithArgs("2024-01-15", "123456789").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectExec(regexp.QuoteMeta(analyticsInsertSQL)).
			WithArgs(
				"123456789", "2024-01-15", int64(120), int64(95), int64(40),
				int64(310), 182.4, 42.75, 2.58, 6.0, `{"dimensions":["20240115"]}`,
			).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		inserted, err := repo.Upsert(context.Background(), []*domain.AnalyticsEntry{entry})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Deve atualizar somente os campos informados sem tocar em created_at", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewAnalyticsDataRepository(conn)

		// Registro parcial: apenas sessões e taxa de rejeição vieram da fonte.
		entry := &domain.AnalyticsEntry{
			PropertyID: "123456789",
			Date:       date,
			Sessions:   int64Ptr(150),
			BounceRate: float64Ptr(38.1),
		}

		updateSQL := `UPDATE analytics_data SET bounce_rate = $1, sessions = $2, updated_at = NOW() WHERE id = $3`

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(analyticsSelectSQL)).
			WithArgs("2024-01-15", "123456789").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
		mock.ExpectExec(regexp.QuoteMeta(updateSQL)).
			WithArgs(38.1, int64(150), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		inserted, err := repo.Upsert(context.Background(), []*domain.AnalyticsEntry{entry})

		assert.NoError(t, err)
		assert.Equal(t, int64(0), inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Lote misto deve contar apenas as inserções", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewAnalyticsDataRepository(conn)

		first := analyticsEntryFixture(date)
		second := analyticsEntryFixture(date.AddDate(0, 0, 1))

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(analyticsSelectSQL)).
			WithArgs("2024-01-15", "123456789").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectExec(regexp.QuoteMeta(analyticsInsertSQL)).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectQuery(regexp.QuoteMeta(analyticsSelectSQL)).
			WithArgs("2024-01-16", "123456789").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
		mock.ExpectExec("UPDATE analytics_data SET").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		inserted, err := repo.Upsert(context.Background(), []*domain.AnalyticsEntry{first, second})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Lote vazio não deve abrir transação", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewAnalyticsDataRepository(conn)

		inserted, err := repo.Upsert(context.Background(), nil)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Falha em uma gravação deve desfazer a transação inteira", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewAnalyticsDataRepository(conn)

		entry := analyticsEntryFixture(date)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(analyticsSelectSQL)).
			WithArgs("2024-01-15", "123456789").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectExec(regexp.QuoteMeta(analyticsInsertSQL)).
			WillReturnError(errors.New("conexão perdida"))
		mock.ExpectRollback()

		inserted, err := repo.Upsert(context.Background(), []*domain.AnalyticsEntry{entry})

		assert.Error(t, err)
		assert.Equal(t, int64(0), inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAnalyticsDataSummary(t *testing.T) {
	t.Run("Tabela vazia deve retornar resumo sem data mais recente", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewAnalyticsDataRepository(conn)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM analytics_data`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

		summary, err := repo.Summary()

		assert.NoError(t, err)
		assert.Equal(t, int64(0), summary.TotalRecords)
		assert.Nil(t, summary.LatestDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Deve retornar total e registro mais recente", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewAnalyticsDataRepository(conn)

		latest := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM analytics_data`)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(35)))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT date, property_id FROM analytics_data ORDER BY date DESC LIMIT 1`)).
			WillReturnRows(sqlmock.NewRows([]string{"date", "property_id"}).AddRow(latest, "123456789"))

		summary, err := repo.Summary()

		assert.NoError(t, err)
		assert.Equal(t, int64(35), summary.TotalRecords)
		assert.Equal(t, "123456789", summary.PropertyID)
		if assert.NotNil(t, summary.LatestDate) {
			assert.Equal(t, latest, *summary.LatestDate)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAnalyticsDataDeleteOlderThan(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewAnalyticsDataRepository(conn)

	cutoff := time.Now().AddDate(0, 0, -90).Format("2006-01-02")

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM analytics_data WHERE date < $1`)).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 12))

	deleted, err := repo.DeleteOlderThan(90)

	assert.NoError(t, err)
	assert.Equal(t, int64(12), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func int64Ptr(v int64) *int64 {
	return &v
}

func float64Ptr(v float64) *float64 {
	return &v
}

func stringPtr(s string) *string {
	return &s
}
