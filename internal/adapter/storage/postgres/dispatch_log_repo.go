package postgres

import (
	"context"
	"fmt"

	"bizdash-core/internal/core/domain"
)

// DispatchLogRepo implements ports.DispatchLogRepository.
type DispatchLogRepo struct {
	pool Pool
}

func NewDispatchLogRepo(pool Pool) *DispatchLogRepo {
	return &DispatchLogRepo{pool: pool}
}

// Create inserts one dispatch result.
func (r *DispatchLogRepo) Create(ctx context.Context, res *domain.DispatchResult) error {
	query := `INSERT INTO webhook_dispatch_logs
		(id, webhook_type, url, outcome, success, status_code, payload_size, response_text,
		 attempt_count, validation_passed, validation_errors, error_code, error, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	validationErrors := res.ValidationErrors
	if validationErrors == nil {
		validationErrors = []string{}
	}
	_, err := r.pool.Exec(ctx, query,
		res.ID, string(res.WebhookType), res.URL, string(res.Outcome), res.Success,
		res.StatusCode, res.PayloadSize, res.ResponseText,
		res.AttemptCount, res.ValidationPassed, validationErrors,
		res.ErrorCode, res.Error, res.StartedAt, res.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("insert dispatch log: %w", err)
	}
	return nil
}

// ListRecent returns up to limit results, most recent first, optionally
// narrowed to one kind.
func (r *DispatchLogRepo) ListRecent(ctx context.Context, kind *domain.WebhookKind, limit int) ([]domain.DispatchResult, error) {
	query := `SELECT id, webhook_type, url, outcome, success, status_code, payload_size, response_text,
		attempt_count, validation_passed, validation_errors, error_code, error, started_at, finished_at
		FROM webhook_dispatch_logs`
	args := []any{}
	if kind != nil {
		query += ` WHERE webhook_type = $1`
		args = append(args, string(*kind))
	}
	query += fmt.Sprintf(` ORDER BY finished_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list dispatch logs: %w", err)
	}
	defer rows.Close()

	results := make([]domain.DispatchResult, 0, limit)
	for rows.Next() {
		var (
			res     domain.DispatchResult
			kindStr string
			outcome string
		)
		if err := rows.Scan(
			&res.ID, &kindStr, &res.URL, &outcome, &res.Success,
			&res.StatusCode, &res.PayloadSize, &res.ResponseText,
			&res.AttemptCount, &res.ValidationPassed, &res.ValidationErrors,
			&res.ErrorCode, &res.Error, &res.StartedAt, &res.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan dispatch log: %w", err)
		}
		res.WebhookType = domain.WebhookKind(kindStr)
		res.Outcome = domain.Outcome(outcome)
		results = append(results, res)
	}
	return results, rows.Err()
}
