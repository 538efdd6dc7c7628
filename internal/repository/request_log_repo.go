package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketai/internal/model"

	"github.com/jackc/pgx/v5"
)

// RequestLogRepository defines operations for request log data.
// Logs are append-only; there is no update or delete.
type RequestLogRepository interface {
	Append(ctx context.Context, log *model.RequestLog) error
	ListByUser(ctx context.Context, userID int, module *model.Module) ([]model.RequestLog, error)
	// GetOne returns nil, nil when the log does not exist or belongs to another user.
	GetOne(ctx context.Context, id int64, userID int) (*model.RequestLog, error)
	CountAll(ctx context.Context) (int64, error)
	CountByModule(ctx context.Context, module model.Module) (int64, error)
}

type requestLogRepository struct {
	db DB
}

// NewRequestLogRepository creates a new RequestLogRepository
func NewRequestLogRepository(db DB) RequestLogRepository {
	return &requestLogRepository{db: db}
}

const requestLogColumns = `id, user_id, module, inputs_json, output_json, COALESCE(model_used, ''), created_at`

func scanRequestLog(row pgx.Row) (*model.RequestLog, error) {
	l := &model.RequestLog{}
	var module string
	if err := row.Scan(&l.ID, &l.UserID, &module, &l.InputsJSON, &l.OutputJSON, &l.ModelUsed, &l.CreatedAt); err != nil {
		return nil, err
	}
	l.Module = model.Module(module)
	return l, nil
}

// Append inserts a new log and fills in its ID and CreatedAt.
func (r *requestLogRepository) Append(ctx context.Context, l *model.RequestLog) error {
	sql := `INSERT INTO request_logs (user_id, module, inputs_json, output_json, model_used, created_at)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, l.UserID, string(l.Module), l.InputsJSON, l.OutputJSON, l.ModelUsed, l.CreatedAt).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append request log: %w", err)
	}
	return nil
}

// ListByUser returns the user's most recent logs, newest first, optionally
// restricted to one module.
func (r *requestLogRepository) ListByUser(ctx context.Context, userID int, module *model.Module) ([]model.RequestLog, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + requestLogColumns + ` FROM request_logs WHERE user_id = $1`)
	args := []any{userID}
	argCount := 2

	if module != nil && *module != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND module = $%d", argCount))
		args = append(args, string(*module))
		argCount++
	}
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d", argCount))
	args = append(args, model.HistoryLimit)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query request logs by user: %w", err)
	}
	defer rows.Close()

	logs := []model.RequestLog{}
	for rows.Next() {
		l, err := scanRequestLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request log row: %w", err)
		}
		logs = append(logs, *l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating request log rows: %w", err)
	}
	return logs, nil
}

// GetOne retrieves a log by ID, scoped to its owner.
func (r *requestLogRepository) GetOne(ctx context.Context, id int64, userID int) (*model.RequestLog, error) {
	sql := `SELECT ` + requestLogColumns + ` FROM request_logs WHERE id = $1 AND user_id = $2`
	l, err := scanRequestLog(r.db.QueryRow(ctx, sql, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find request log by ID: %w", err)
	}
	return l, nil
}

// CountAll returns the total number of logs.
func (r *requestLogRepository) CountAll(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM request_logs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count request logs: %w", err)
	}
	return n, nil
}

// CountByModule returns the number of logs tagged with module.
func (r *requestLogRepository) CountByModule(ctx context.Context, module model.Module) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM request_logs WHERE module = $1`, string(module)).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count request logs for module %s: %w", module, err)
	}
	return n, nil
}
