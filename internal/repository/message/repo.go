package message

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

var ErrMessageNotFound = errors.New("message not found")

// Repository provides methods to interact with the messages table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new message repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateMessage inserts a new message and returns its ID.
func (r *Repository) CreateMessage(ctx context.Context, m model.Message) (uuid.UUID, error) {
	query := `
		INSERT INTO messages (
		    message_type_id, message_type_code, title, content,
		    source_host, source_service, source_ip, priority, metadata
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query,
		m.TypeID, m.TypeCode, m.Title, m.Content,
		m.SourceHost, m.SourceService, m.SourceIP, m.Priority, m.Metadata,
	).Scan(&m.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create message: %w", err)
	}

	return m.ID, nil
}

// ExistsRecent reports whether a message with the exact same
// (type, host, service) triple was created at or after the given instant.
// A nil host or service only matches rows where that column is NULL.
func (r *Repository) ExistsRecent(ctx context.Context, typeCode string, host, service *string, since time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
		    SELECT 1 FROM messages
		    WHERE message_type_code = $1
		      AND source_host IS NOT DISTINCT FROM $2
		      AND source_service IS NOT DISTINCT FROM $3
		      AND created_at >= $4
		);
    `

	var exists bool
	err := r.db.QueryRowContext(ctx, query, typeCode, host, service, since).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check for recent duplicate: %w", err)
	}

	return exists, nil
}

// StampProcessed sets the message's processed_at timestamp. The guard on
// processed_at makes the stamp a one-shot: repeated calls report false
// without touching the row.
func (r *Repository) StampProcessed(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE messages
		SET processed_at = now()
		WHERE id = $1 AND processed_at IS NULL;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to stamp message processed: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows > 0, nil
}

// GetStatusByID returns "processed" once the message's completion timestamp
// is set and "queued" before that.
func (r *Repository) GetStatusByID(ctx context.Context, id uuid.UUID) (string, error) {
	query := `
		SELECT CASE WHEN processed_at IS NOT NULL THEN 'processed' ELSE 'queued' END
		FROM messages
		WHERE id = $1;
    `

	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrMessageNotFound
		}

		return "", fmt.Errorf("failed to get message status: %w", err)
	}

	return status, nil
}

// GetSummaryByID retrieves a message together with its per-status delivery
// counts.
func (r *Repository) GetSummaryByID(ctx context.Context, id uuid.UUID) (model.MessageSummary, error) {
	query := `
		SELECT m.id, m.message_type_id, m.message_type_code, m.title, m.content,
		       m.source_host, m.source_service, m.source_ip, m.priority, m.metadata,
		       m.created_at, m.processed_at,
		       COUNT(d.id),
		       COUNT(*) FILTER (WHERE d.status = 'sent'),
		       COUNT(*) FILTER (WHERE d.status = 'failed'),
		       COUNT(*) FILTER (WHERE d.status = 'skipped'),
		       COUNT(*) FILTER (WHERE d.status = 'pending')
		FROM messages m
		LEFT JOIN deliveries d ON d.message_id = m.id
		WHERE m.id = $1
		GROUP BY m.id;
    `

	var s model.MessageSummary
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.TypeID, &s.TypeCode, &s.Title, &s.Content,
		&s.SourceHost, &s.SourceService, &s.SourceIP, &s.Priority, &s.Metadata,
		&s.CreatedAt, &s.ProcessedAt,
		&s.RecipientCount, &s.SentCount, &s.FailedCount, &s.SkippedCount, &s.PendingCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.MessageSummary{}, ErrMessageNotFound
		}

		return model.MessageSummary{}, fmt.Errorf("failed to get message summary: %w", err)
	}

	return s, nil
}
