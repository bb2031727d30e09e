package delivery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/mzhdanov/alert-router/internal/model"
)

var ErrDeliveryNotFound = errors.New("delivery not found")

// Repository provides methods to interact with the deliveries table. All
// status transitions are conditional on the current status, so a transition
// raced by the sender and retry loops degrades to a no-op for the loser.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new delivery repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateBatch inserts one delivery per recipient for a message inside a
// single transaction. Recipients without a push address are inserted
// directly as skipped and are never attempted. The unique constraint on
// (message_id, recipient_id) makes re-inserts no-ops. Returns the number of
// rows actually created and how many of them are pending: a zero pending
// count means every ledger row for the message is already terminal and no
// loop will ever touch it.
func (r *Repository) CreateBatch(ctx context.Context, messageID uuid.UUID, recipients []model.Recipient) (created, pending int, err error) {
	query := `
		INSERT INTO deliveries (message_id, recipient_id, status, last_error)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (message_id, recipient_id) DO NOTHING;
    `

	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, rec := range recipients {
		status := model.DeliveryPending
		var lastError *string

		if rec.LineUserID == "" {
			status = model.DeliverySkipped
			reason := model.SkipReasonNoAddress
			lastError = &reason
		}

		res, err := tx.ExecContext(ctx, query, messageID, rec.ID, status, lastError)
		if err != nil {
			return 0, 0, fmt.Errorf("failed to create delivery for recipient %s: %w", rec.ID, err)
		}

		rows, _ := res.RowsAffected()
		created += int(rows)

		if status == model.DeliveryPending {
			pending += int(rows)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit delivery batch: %w", err)
	}

	return created, pending, nil
}

const itemColumns = `
		SELECT d.id, d.message_id, d.recipient_id, d.attempt_count,
		       COALESCE(r.line_user_id, ''),
		       m.message_type_code, m.title, m.content,
		       COALESCE(m.source_host, ''), COALESCE(m.source_service, ''), COALESCE(m.source_ip, ''),
		       m.priority, m.created_at
		FROM deliveries d
		JOIN users r ON r.id = d.recipient_id
		JOIN messages m ON m.id = d.message_id`

// GetPending retrieves the oldest pending deliveries that still have
// attempts left and are not parked behind a retry timestamp.
func (r *Repository) GetPending(ctx context.Context, maxAttempts, limit int) ([]model.DeliveryItem, error) {
	query := itemColumns + `
		WHERE d.status = 'pending'
		  AND d.attempt_count < $1
		  AND (d.next_retry_at IS NULL OR d.next_retry_at <= now())
		ORDER BY d.created_at
		LIMIT $2;
    `

	rows, err := r.db.QueryContext(ctx, query, maxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending deliveries: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// GetRetryable retrieves pending deliveries that already failed at least
// once, still have attempts left, and were last touched at or before
// olderThan. Oldest first.
func (r *Repository) GetRetryable(ctx context.Context, maxAttempts int, olderThan time.Time, limit int) ([]model.DeliveryItem, error) {
	query := itemColumns + `
		WHERE d.status = 'pending'
		  AND d.attempt_count > 0
		  AND d.attempt_count < $1
		  AND d.updated_at <= $2
		ORDER BY d.updated_at
		LIMIT $3;
    `

	rows, err := r.db.QueryContext(ctx, query, maxAttempts, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get retryable deliveries: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func scanItems(rows *sql.Rows) ([]model.DeliveryItem, error) {
	var items []model.DeliveryItem

	for rows.Next() {
		var it model.DeliveryItem
		if err := rows.Scan(
			&it.ID, &it.MessageID, &it.RecipientID, &it.AttemptCount,
			&it.LineUserID,
			&it.Alert.MessageType, &it.Alert.Title, &it.Alert.Content,
			&it.Alert.SourceHost, &it.Alert.SourceService, &it.Alert.SourceIP,
			&it.Alert.Priority, &it.Alert.Timestamp,
		); err != nil {
			return nil, err
		}

		items = append(items, it)
	}

	return items, rows.Err()
}

// MarkSent transitions a pending delivery to sent, clearing its error and
// stamping sent_at. Reports whether this call won the transition; a false
// return on an already-terminal row is not an error.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE deliveries
		SET status = 'sent', attempt_count = attempt_count + 1,
		    last_error = NULL, sent_at = now(), updated_at = now()
		WHERE id = $1 AND status = 'pending';
    `

	return r.exec(ctx, query, id)
}

// MarkRetry records a failed attempt on a still-pending delivery: the
// attempt count is incremented and the next retry pushed forward.
func (r *Repository) MarkRetry(ctx context.Context, id uuid.UUID, cause string, nextRetryAt time.Time) (bool, error) {
	query := `
		UPDATE deliveries
		SET attempt_count = attempt_count + 1, last_error = $2,
		    next_retry_at = $3, updated_at = now()
		WHERE id = $1 AND status = 'pending';
    `

	return r.exec(ctx, query, id, cause, nextRetryAt)
}

// MarkFailed transitions a pending delivery to its terminal failed status
// once the attempt budget is exhausted.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, cause string) (bool, error) {
	query := `
		UPDATE deliveries
		SET status = 'failed', attempt_count = attempt_count + 1,
		    last_error = $2, updated_at = now()
		WHERE id = $1 AND status = 'pending';
    `

	return r.exec(ctx, query, id, cause)
}

// MarkSkipped transitions a pending delivery to skipped without consuming
// an attempt.
func (r *Repository) MarkSkipped(ctx context.Context, id uuid.UUID, reason string) (bool, error) {
	query := `
		UPDATE deliveries
		SET status = 'skipped', last_error = $2, updated_at = now()
		WHERE id = $1 AND status = 'pending';
    `

	return r.exec(ctx, query, id, reason)
}

// Requeue puts a terminally failed delivery back into the pending pool with
// a fresh attempt budget. This is an operator action, never done by the
// loops themselves.
func (r *Repository) Requeue(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE deliveries
		SET status = 'pending', attempt_count = 0,
		    last_error = NULL, next_retry_at = NULL, updated_at = now()
		WHERE id = $1 AND status = 'failed';
    `

	ok, err := r.exec(ctx, query, id)
	if err != nil {
		return err
	}

	if !ok {
		return ErrDeliveryNotFound
	}

	return nil
}

// CountUnfinished returns the number of non-terminal deliveries left for a
// message.
func (r *Repository) CountUnfinished(ctx context.Context, messageID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*) FROM deliveries
		WHERE message_id = $1 AND status = 'pending';
    `

	var count int
	err := r.db.QueryRowContext(ctx, query, messageID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unfinished deliveries: %w", err)
	}

	return count, nil
}

func (r *Repository) exec(ctx context.Context, query string, args ...interface{}) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update delivery: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows > 0, nil
}
