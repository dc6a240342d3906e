package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/logger"
	"github.com/sbilibin2017/gw-peakbet-deposit/internal/models"
)

const depositAttemptsSchema = `
	CREATE TABLE IF NOT EXISTS deposit_attempts (
		attempt_id     UUID PRIMARY KEY,
		session_id     UUID NOT NULL,
		user_id        UUID NOT NULL,
		method         VARCHAR(8) NOT NULL,
		amount         NUMERIC(14, 2) NOT NULL,
		external_id    VARCHAR(128) NOT NULL DEFAULT '',
		status         VARCHAR(16) NOT NULL,
		failure_reason TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS deposit_attempts_user_created_idx
		ON deposit_attempts (user_id, created_at DESC);
`

// DepositAttemptRepository is the journal of the charges orchestrated by deposit sessions.
type DepositAttemptRepository struct {
	db *sqlx.DB
}

func NewDepositAttemptRepository(db *sqlx.DB) *DepositAttemptRepository {
	return &DepositAttemptRepository{db: db}
}

// EnsureSchema creates the journal table when missing.
func (r *DepositAttemptRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, depositAttemptsSchema)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(depositAttemptsSchema), " "),
		"error", err,
	)

	return err
}

// Save inserts the attempt, or updates its status fields when it is already journaled.
// A settled attempt is never updated again, so a late PENDING write cannot undo its outcome.
func (r *DepositAttemptRepository) Save(ctx context.Context, a models.DepositAttempt) error {
	query := `
		INSERT INTO deposit_attempts (
			attempt_id, session_id, user_id, method, amount, external_id,
			status, failure_reason, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (attempt_id)
		DO UPDATE SET
			external_id = EXCLUDED.external_id,
			status = EXCLUDED.status,
			failure_reason = EXCLUDED.failure_reason,
			updated_at = EXCLUDED.updated_at
		WHERE deposit_attempts.status = 'PENDING'
	`

	args := []any{
		a.AttemptID, a.SessionID, a.UserID, string(a.Method), a.Amount, a.ExternalID,
		string(a.Status), a.FailureReason, a.CreatedAt, a.UpdatedAt,
	}
	res, err := r.db.ExecContext(ctx, query, args...)

	var affected int64
	if err == nil {
		affected, _ = res.RowsAffected()
	}

	// Log query, args, result, error
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", affected,
		"error", err,
	)

	return err
}

// ListByUser returns the latest attempts of a user, newest first.
func (r *DepositAttemptRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.DepositAttempt, error) {
	query := `
		SELECT attempt_id, session_id, user_id, method, amount, external_id,
			status, failure_reason, created_at, updated_at
		FROM deposit_attempts
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var attempts []models.DepositAttempt
	err := r.db.SelectContext(ctx, &attempts, query, userID, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(attempts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return attempts, nil
}
