// Package dispatch implements the synchronous entry point for inbound
// alerts: deduplication, recipient matching and persisting the message with
// its delivery ledger entries. Actual sending happens asynchronously in the
// worker loops.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mzhdanov/alert-router/internal/matcher"
	"github.com/mzhdanov/alert-router/internal/model"
	"github.com/mzhdanov/alert-router/internal/rabbitmq/queue"
	"github.com/mzhdanov/alert-router/internal/repository/catalog"
)

// ErrInvalidMessageType is returned when the dispatched type code is
// unknown or inactive. Nothing is persisted in that case.
var ErrInvalidMessageType = errors.New("unknown or inactive message type")

// DefaultDedupWindow is how far back the deduplicator looks for an
// identical (type, host, service) triple.
const DefaultDedupWindow = 5 * time.Minute

//go:generate mockgen -source=service.go -destination=../../mocks/service/dispatch/mock.go -package=mocks

type catalogRepository interface {
	GetMessageTypeByCode(ctx context.Context, code string) (model.MessageType, error)
	GetGroupsByTypeID(ctx context.Context, typeID uuid.UUID) ([]model.Group, error)
}

type messageRepository interface {
	CreateMessage(ctx context.Context, m model.Message) (uuid.UUID, error)
	ExistsRecent(ctx context.Context, typeCode string, host, service *string, since time.Time) (bool, error)
	StampProcessed(ctx context.Context, id uuid.UUID) (bool, error)
	GetStatusByID(ctx context.Context, id uuid.UUID) (string, error)
	GetSummaryByID(ctx context.Context, id uuid.UUID) (model.MessageSummary, error)
}

type deliveryRepository interface {
	CreateBatch(ctx context.Context, messageID uuid.UUID, recipients []model.Recipient) (created, pending int, err error)
}

type dispatchPublisher interface {
	Publish(ev queue.DispatchEvent, strategy retry.Strategy) error
}

type statusCache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

type Service struct {
	catalog     catalogRepository
	messages    messageRepository
	deliveries  deliveryRepository
	queue       dispatchPublisher
	cache       statusCache
	dedupWindow time.Duration
}

func NewService(
	catalog catalogRepository,
	messages messageRepository,
	deliveries deliveryRepository,
	queue dispatchPublisher,
	cache statusCache,
	dedupWindow time.Duration,
) *Service {
	if dedupWindow <= 0 {
		dedupWindow = DefaultDedupWindow
	}

	return &Service{
		catalog:     catalog,
		messages:    messages,
		deliveries:  deliveries,
		queue:       queue,
		cache:       cache,
		dedupWindow: dedupWindow,
	}
}

// Dispatch accepts one inbound alert. Suppressed dispatches persist
// nothing; accepted ones persist the message plus one ledger entry per
// matched recipient and nudge the sender loop. Safe for concurrent use.
func (s *Service) Dispatch(ctx context.Context, strategy retry.Strategy, in model.DispatchInput) (model.DispatchResult, error) {
	mt, err := s.catalog.GetMessageTypeByCode(ctx, in.TypeCode)
	if err != nil {
		if errors.Is(err, catalog.ErrMessageTypeNotFound) {
			return model.DispatchResult{}, ErrInvalidMessageType
		}

		return model.DispatchResult{}, fmt.Errorf("resolve message type: %w", err)
	}

	host := nilIfEmpty(in.SourceHost)
	service := nilIfEmpty(in.SourceService)

	// The dedup check and the insert below are deliberately not atomic:
	// two identical alerts racing each other may both pass, which costs
	// one extra push instead of a cross-request lock.
	dup, err := s.messages.ExistsRecent(ctx, mt.Code, host, service, time.Now().Add(-s.dedupWindow))
	if err != nil {
		return model.DispatchResult{}, fmt.Errorf("check for duplicate: %w", err)
	}

	if dup {
		zlog.Logger.Info().
			Str("type", mt.Code).
			Str("host", in.SourceHost).
			Str("service", in.SourceService).
			Msg("alert suppressed as duplicate")

		return model.DispatchResult{Status: model.DispatchSuppressed}, nil
	}

	groups, err := s.catalog.GetGroupsByTypeID(ctx, mt.ID)
	if err != nil {
		return model.DispatchResult{}, fmt.Errorf("resolve groups: %w", err)
	}

	recipients := matcher.Eligible(groups, matcher.Query{
		TargetGroups:  in.TargetGroups,
		SourceHost:    in.SourceHost,
		SourceService: in.SourceService,
	})

	priority := in.Priority
	if priority == 0 {
		priority = mt.Priority
	}

	id, err := s.messages.CreateMessage(ctx, model.Message{
		TypeID:        mt.ID,
		TypeCode:      mt.Code,
		Title:         in.Title,
		Content:       in.Content,
		SourceHost:    host,
		SourceService: service,
		SourceIP:      nilIfEmpty(in.SourceIP),
		Priority:      priority,
		Metadata:      nilIfEmpty(in.Metadata),
	})
	if err != nil {
		return model.DispatchResult{}, fmt.Errorf("create message: %w", err)
	}

	if len(recipients) == 0 {
		if _, err := s.messages.StampProcessed(ctx, id); err != nil {
			return model.DispatchResult{}, fmt.Errorf("stamp message processed: %w", err)
		}

		s.cacheStatus(ctx, strategy, id, model.MessageStatusProcessed)

		zlog.Logger.Warn().Str("id", id.String()).Str("type", mt.Code).Msg("no matching recipients for alert")

		return model.DispatchResult{
			Status:    model.DispatchCompleted,
			MessageID: id,
		}, nil
	}

	_, pending, err := s.deliveries.CreateBatch(ctx, id, recipients)
	if err != nil {
		return model.DispatchResult{}, fmt.Errorf("create deliveries: %w", err)
	}

	// Every matched recipient may lack a push address, in which case all
	// ledger rows are already terminal and no loop will ever finalize the
	// message. Stamp it now, same as the no-recipients case.
	if pending == 0 {
		if _, err := s.messages.StampProcessed(ctx, id); err != nil {
			return model.DispatchResult{}, fmt.Errorf("stamp message processed: %w", err)
		}

		s.cacheStatus(ctx, strategy, id, model.MessageStatusProcessed)

		zlog.Logger.Warn().Str("id", id.String()).Str("type", mt.Code).Msg("no deliverable recipients for alert")

		return model.DispatchResult{
			Status:         model.DispatchCompleted,
			MessageID:      id,
			RecipientCount: len(recipients),
		}, nil
	}

	// Best effort: the sender loop polls storage anyway, so a failed
	// nudge only costs latency.
	ev := queue.DispatchEvent{MessageID: id, RecipientCount: len(recipients)}
	if err := s.queue.Publish(ev, strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to publish dispatch event")
	}

	s.cacheStatus(ctx, strategy, id, model.MessageStatusQueued)

	return model.DispatchResult{
		Status:         model.DispatchQueued,
		MessageID:      id,
		RecipientCount: len(recipients),
	}, nil
}

// MessageStatus returns the coarse processing status of a message,
// preferring the cache and falling back to storage.
func (s *Service) MessageStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error) {
	status, err := s.cache.GetWithRetry(ctx, strategy, id.String())
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get message status from cache")
	}

	if err != nil || status == "" {
		status, err = s.messages.GetStatusByID(ctx, id)
		if err != nil {
			return "", fmt.Errorf("get message status: %w", err)
		}

		s.cacheStatus(ctx, strategy, id, status)
	}

	return status, nil
}

// MessageSummary returns a message with its per-status delivery counts.
func (s *Service) MessageSummary(ctx context.Context, id uuid.UUID) (model.MessageSummary, error) {
	summary, err := s.messages.GetSummaryByID(ctx, id)
	if err != nil {
		return model.MessageSummary{}, fmt.Errorf("get message summary: %w", err)
	}

	return summary, nil
}

func (s *Service) cacheStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status string) {
	if err := s.cache.SetWithRetry(ctx, strategy, id.String(), status); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache message status")
	}
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
