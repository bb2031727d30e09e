// Package delivery drives the per-recipient delivery state machine on top
// of the ledger repository: recording push outcomes, enforcing the attempt
// budget and stamping message completion.
package delivery

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mzhdanov/alert-router/internal/model"
)

// DefaultMaxAttempts is the delivery attempt budget. Reaching it is
// terminal; only an explicit operator requeue revives the entry.
const DefaultMaxAttempts = 3

// DefaultRetryAfter is how long a failed attempt parks an entry before the
// retry loop may pick it up again.
const DefaultRetryAfter = 5 * time.Minute

//go:generate mockgen -source=service.go -destination=../../mocks/service/delivery/mock.go -package=mocks

type deliveryRepository interface {
	GetPending(ctx context.Context, maxAttempts, limit int) ([]model.DeliveryItem, error)
	GetRetryable(ctx context.Context, maxAttempts int, olderThan time.Time, limit int) ([]model.DeliveryItem, error)
	MarkSent(ctx context.Context, id uuid.UUID) (bool, error)
	MarkRetry(ctx context.Context, id uuid.UUID, cause string, nextRetryAt time.Time) (bool, error)
	MarkFailed(ctx context.Context, id uuid.UUID, cause string) (bool, error)
	MarkSkipped(ctx context.Context, id uuid.UUID, reason string) (bool, error)
	Requeue(ctx context.Context, id uuid.UUID) error
	CountUnfinished(ctx context.Context, messageID uuid.UUID) (int, error)
}

type messageRepository interface {
	StampProcessed(ctx context.Context, id uuid.UUID) (bool, error)
}

type statusCache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
}

// Config bounds the state machine.
type Config struct {
	MaxAttempts int
	RetryAfter  time.Duration
}

type Service struct {
	deliveries deliveryRepository
	messages   messageRepository
	cache      statusCache
	cfg        Config
}

func NewService(deliveries deliveryRepository, messages messageRepository, cache statusCache, cfg Config) *Service {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.RetryAfter <= 0 {
		cfg.RetryAfter = DefaultRetryAfter
	}

	return &Service{deliveries: deliveries, messages: messages, cache: cache, cfg: cfg}
}

// MaxAttempts exposes the configured attempt budget to the loops.
func (s *Service) MaxAttempts() int {
	return s.cfg.MaxAttempts
}

// Pending returns the oldest sendable ledger entries, at most limit.
func (s *Service) Pending(ctx context.Context, limit int) ([]model.DeliveryItem, error) {
	items, err := s.deliveries.GetPending(ctx, s.cfg.MaxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("get pending deliveries: %w", err)
	}

	return items, nil
}

// Retryable returns entries that failed transiently, still have budget
// left, and have sat untouched for at least the retry interval.
func (s *Service) Retryable(ctx context.Context, limit int) ([]model.DeliveryItem, error) {
	olderThan := time.Now().Add(-s.cfg.RetryAfter)

	items, err := s.deliveries.GetRetryable(ctx, s.cfg.MaxAttempts, olderThan, limit)
	if err != nil {
		return nil, fmt.Errorf("get retryable deliveries: %w", err)
	}

	return items, nil
}

// RecordSent marks a successful push. Losing the status race to the other
// loop is a no-op, in which case completion is left to the winner.
func (s *Service) RecordSent(ctx context.Context, strategy retry.Strategy, item model.DeliveryItem) error {
	won, err := s.deliveries.MarkSent(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("mark delivery sent: %w", err)
	}

	if won {
		s.finalize(ctx, strategy, item.MessageID)
	}

	return nil
}

// RecordFailure records a failed push attempt: the entry either goes back
// to pending with its retry pushed forward, or to failed once the attempt
// budget is exhausted.
func (s *Service) RecordFailure(ctx context.Context, strategy retry.Strategy, item model.DeliveryItem, cause string) error {
	if item.AttemptCount+1 >= s.cfg.MaxAttempts {
		won, err := s.deliveries.MarkFailed(ctx, item.ID, cause)
		if err != nil {
			return fmt.Errorf("mark delivery failed: %w", err)
		}

		zlog.Logger.Warn().
			Str("delivery", item.ID.String()).
			Str("message", item.MessageID.String()).
			Str("cause", cause).
			Msg("delivery attempts exhausted")

		if won {
			s.finalize(ctx, strategy, item.MessageID)
		}

		return nil
	}

	if _, err := s.deliveries.MarkRetry(ctx, item.ID, cause, time.Now().Add(s.cfg.RetryAfter)); err != nil {
		return fmt.Errorf("mark delivery for retry: %w", err)
	}

	return nil
}

// RecordSkipped terminally skips an entry that cannot be attempted at all.
func (s *Service) RecordSkipped(ctx context.Context, strategy retry.Strategy, item model.DeliveryItem, reason string) error {
	won, err := s.deliveries.MarkSkipped(ctx, item.ID, reason)
	if err != nil {
		return fmt.Errorf("mark delivery skipped: %w", err)
	}

	if won {
		s.finalize(ctx, strategy, item.MessageID)
	}

	return nil
}

// Requeue is the operator action that puts a terminally failed entry back
// into the pending pool with a fresh attempt budget.
func (s *Service) Requeue(ctx context.Context, id uuid.UUID) error {
	if err := s.deliveries.Requeue(ctx, id); err != nil {
		return fmt.Errorf("requeue delivery: %w", err)
	}

	return nil
}

// finalize stamps the parent message once its last delivery reached a
// terminal status. StampProcessed is a guarded one-shot, so concurrent
// finalize calls stamp exactly once. Failures here are logged only: the
// delivery outcome itself is already persisted.
func (s *Service) finalize(ctx context.Context, strategy retry.Strategy, messageID uuid.UUID) {
	unfinished, err := s.deliveries.CountUnfinished(ctx, messageID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("message", messageID.String()).Msg("failed to count unfinished deliveries")
		return
	}

	if unfinished > 0 {
		return
	}

	stamped, err := s.messages.StampProcessed(ctx, messageID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("message", messageID.String()).Msg("failed to stamp message processed")
		return
	}

	if !stamped {
		return
	}

	zlog.Logger.Info().Str("message", messageID.String()).Msg("message fully processed")

	if err := s.cache.SetWithRetry(ctx, strategy, messageID.String(), model.MessageStatusProcessed); err != nil {
		zlog.Logger.Error().Err(err).Str("message", messageID.String()).Msg("failed to cache message status")
	}
}
