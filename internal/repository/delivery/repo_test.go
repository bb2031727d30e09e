package delivery

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/mzhdanov/alert-router/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

var insertQuery = regexp.QuoteMeta(`
		INSERT INTO deliveries (message_id, recipient_id, status, last_error)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (message_id, recipient_id) DO NOTHING;
    `)

func TestCreateBatch(t *testing.T) {
	repo, mock := setupMockDB(t)

	messageID := uuid.New()
	withAddress := model.Recipient{ID: uuid.New(), LineUserID: "U1", IsActive: true}
	withoutAddress := model.Recipient{ID: uuid.New(), IsActive: true}

	mock.ExpectBegin()
	mock.ExpectExec(insertQuery).
		WithArgs(messageID, withAddress.ID, model.DeliveryPending, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	reason := model.SkipReasonNoAddress
	mock.ExpectExec(insertQuery).
		WithArgs(messageID, withoutAddress.ID, model.DeliverySkipped, &reason).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, pending, err := repo.CreateBatch(context.Background(), messageID, []model.Recipient{withAddress, withoutAddress})
	assert.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, 1, pending)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBatch_AllSkippedReportsZeroPending(t *testing.T) {
	repo, mock := setupMockDB(t)

	messageID := uuid.New()
	rec := model.Recipient{ID: uuid.New(), IsActive: true}
	reason := model.SkipReasonNoAddress

	mock.ExpectBegin()
	mock.ExpectExec(insertQuery).
		WithArgs(messageID, rec.ID, model.DeliverySkipped, &reason).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	created, pending, err := repo.CreateBatch(context.Background(), messageID, []model.Recipient{rec})
	assert.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Zero(t, pending)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBatch_DuplicatePairIsNoOp(t *testing.T) {
	repo, mock := setupMockDB(t)

	messageID := uuid.New()
	rec := model.Recipient{ID: uuid.New(), LineUserID: "U1", IsActive: true}

	// The conflict target swallows the second insert for the same
	// (message, recipient) pair: zero rows affected, no error.
	mock.ExpectBegin()
	mock.ExpectExec(insertQuery).
		WithArgs(messageID, rec.ID, model.DeliveryPending, nil).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	created, pending, err := repo.CreateBatch(context.Background(), messageID, []model.Recipient{rec})
	assert.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Equal(t, 0, pending)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func itemRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "message_id", "recipient_id", "attempt_count",
		"line_user_id",
		"message_type_code", "title", "content",
		"source_host", "source_service", "source_ip",
		"priority", "created_at",
	})
}

func TestGetPending(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	messageID := uuid.New()
	recipientID := uuid.New()
	createdAt := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(itemColumns + `
		WHERE d.status = 'pending'
		  AND d.attempt_count < $1
		  AND (d.next_retry_at IS NULL OR d.next_retry_at <= now())
		ORDER BY d.created_at
		LIMIT $2;
    `)).
		WithArgs(3, 50).
		WillReturnRows(itemRows().AddRow(
			id, messageID, recipientID, 0,
			"U123",
			"WARNING", "disk", "90% full",
			"db-01", "", "",
			2, createdAt,
		))

	items, err := repo.GetPending(context.Background(), 3, 50)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, id, items[0].ID)
	assert.Equal(t, "U123", items[0].LineUserID)
	assert.Equal(t, "WARNING", items[0].Alert.MessageType)
	assert.Equal(t, "db-01", items[0].Alert.SourceHost)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRetryable(t *testing.T) {
	repo, mock := setupMockDB(t)

	olderThan := time.Now().Add(-5 * time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta(itemColumns + `
		WHERE d.status = 'pending'
		  AND d.attempt_count > 0
		  AND d.attempt_count < $1
		  AND d.updated_at <= $2
		ORDER BY d.updated_at
		LIMIT $3;
    `)).
		WithArgs(3, olderThan, 50).
		WillReturnRows(itemRows())

	items, err := repo.GetRetryable(context.Background(), 3, olderThan, 50)
	assert.NoError(t, err)
	assert.Empty(t, items)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkSent_IsConditionalOnPending(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	query := regexp.QuoteMeta(`
		UPDATE deliveries
		SET status = 'sent', attempt_count = attempt_count + 1,
		    last_error = NULL, sent_at = now(), updated_at = now()
		WHERE id = $1 AND status = 'pending';
    `)

	mock.ExpectExec(query).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.MarkSent(context.Background(), id)
	assert.NoError(t, err)
	assert.True(t, ok)

	// Setting the same terminal status again loses the CAS and is a no-op.
	mock.ExpectExec(query).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = repo.MarkSent(context.Background(), id)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRetry(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	next := time.Now().Add(5 * time.Minute)

	mock.ExpectExec(regexp.QuoteMeta(`
		UPDATE deliveries
		SET attempt_count = attempt_count + 1, last_error = $2,
		    next_retry_at = $3, updated_at = now()
		WHERE id = $1 AND status = 'pending';
    `)).
		WithArgs(id, "gateway timeout", next).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.MarkRetry(context.Background(), id, "gateway timeout", next)
	assert.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRequeue(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	query := regexp.QuoteMeta(`
		UPDATE deliveries
		SET status = 'pending', attempt_count = 0,
		    last_error = NULL, next_retry_at = NULL, updated_at = now()
		WHERE id = $1 AND status = 'failed';
    `)

	mock.ExpectExec(query).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Requeue(context.Background(), id))

	// Only failed deliveries can be requeued.
	mock.ExpectExec(query).WithArgs(id).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Requeue(context.Background(), id), ErrDeliveryNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountUnfinished(t *testing.T) {
	repo, mock := setupMockDB(t)

	messageID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT COUNT(*) FROM deliveries
		WHERE message_id = $1 AND status = 'pending';
    `)).
		WithArgs(messageID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := repo.CountUnfinished(context.Background(), messageID)
	assert.NoError(t, err)
	assert.Equal(t, 0, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}
