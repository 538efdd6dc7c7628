package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"marketai/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logColumns = []string{"id", "user_id", "module", "inputs_json", "output_json", "model_used", "created_at"}

func TestRequestLogRepository_Append(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestLogRepository(mock)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := &model.RequestLog{
		UserID:     1,
		Module:     model.ModuleLead,
		InputsJSON: `{"name":"Acme"}`,
		OutputJSON: `{"result":"Score: 80"}`,
		ModelUsed:  "llama-3.3-70b-versatile",
		CreatedAt:  created,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO request_logs")).
		WithArgs(1, "lead", `{"name":"Acme"}`, `{"result":"Score: 80"}`, "llama-3.3-70b-versatile", created).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), created))

	err = repo.Append(context.Background(), l)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), l.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestLogRepository_ListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestLogRepository(mock)
	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("FROM request_logs WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2")).
		WithArgs(1, model.HistoryLimit).
		WillReturnRows(pgxmock.NewRows(logColumns).
			AddRow(int64(2), 1, "pitch", `{}`, `{"result":"b"}`, "m", now).
			AddRow(int64(1), 1, "campaign", `{}`, `{"result":"a"}`, "m", now.Add(-time.Minute)))

	logs, err := repo.ListByUser(context.Background(), 1, nil)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, int64(2), logs[0].ID)
	assert.Equal(t, model.ModulePitch, logs[0].Module)
	assert.Equal(t, model.ModuleCampaign, logs[1].Module)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestLogRepository_ListByUser_ModuleFilter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestLogRepository(mock)
	module := model.ModuleCampaign
	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND module = $2 ORDER BY created_at DESC, id DESC LIMIT $3")).
		WithArgs(5, "campaign", model.HistoryLimit).
		WillReturnRows(pgxmock.NewRows(logColumns))

	logs, err := repo.ListByUser(context.Background(), 5, &module)
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestLogRepository_GetOne_ScopedToOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestLogRepository(mock)
	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("FROM request_logs WHERE id = $1 AND user_id = $2")).
		WithArgs(int64(9), 1).
		WillReturnRows(pgxmock.NewRows(logColumns).
			AddRow(int64(9), 1, "lead", `{"name":"Acme"}`, `{"result":"x"}`, "", now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM request_logs WHERE id = $1 AND user_id = $2")).
		WithArgs(int64(9), 2).
		WillReturnError(pgx.ErrNoRows)

	l, err := repo.GetOne(context.Background(), 9, 1)
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.Equal(t, model.ModuleLead, l.Module)

	l, err = repo.GetOne(context.Background(), 9, 2)
	assert.NoError(t, err)
	assert.Nil(t, l)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequestLogRepository_Counts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewRequestLogRepository(mock)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM request_logs")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(10)))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM request_logs WHERE module = $1")).
		WithArgs("pitch").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(4)))

	total, err := repo.CountAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)

	pitch, err := repo.CountByModule(context.Background(), model.ModulePitch)
	require.NoError(t, err)
	assert.Equal(t, int64(4), pitch)
	assert.NoError(t, mock.ExpectationsWereMet())
}
