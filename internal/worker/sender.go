// Package worker hosts the two background loops that drive the delivery
// ledger: the sender loop draining fresh pending entries and the retry loop
// re-attempting transient failures. The loops share no locks; they rely on
// the ledger's conditional status transitions to stay out of each other's
// way.
package worker

import (
	"context"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mzhdanov/alert-router/internal/model"
	"github.com/mzhdanov/alert-router/internal/rabbitmq/queue"
	"github.com/mzhdanov/alert-router/pkg/line"
)

//go:generate mockgen -source=sender.go -destination=../mocks/worker/mock.go -package=mocks

type deliveryService interface {
	Pending(ctx context.Context, limit int) ([]model.DeliveryItem, error)
	Retryable(ctx context.Context, limit int) ([]model.DeliveryItem, error)
	RecordSent(ctx context.Context, strategy retry.Strategy, item model.DeliveryItem) error
	RecordFailure(ctx context.Context, strategy retry.Strategy, item model.DeliveryItem, cause string) error
	RecordSkipped(ctx context.Context, strategy retry.Strategy, item model.DeliveryItem, reason string) error
}

type lineGateway interface {
	Push(ctx context.Context, to string, alert model.Alert) (line.Result, error)
	Multicast(ctx context.Context, to []string, alert model.Alert) (line.Result, error)
}

type dispatchConsumer interface {
	Consume(ctx context.Context, out chan<- queue.DispatchEvent, strategy retry.Strategy) error
}

// SenderConfig bounds one sender tick.
type SenderConfig struct {
	Interval  time.Duration
	BatchSize int
}

// Sender drains pending ledger entries and pushes them to the gateway. It
// wakes on a fixed interval and additionally on dispatch nudges, so the
// common case is near-immediate while crash recovery rides on polling.
type Sender struct {
	deliveries deliveryService
	gateway    lineGateway
	queue      dispatchConsumer
	cfg        SenderConfig
	strategy   retry.Strategy
}

func NewSender(d deliveryService, g lineGateway, q dispatchConsumer, cfg SenderConfig, strategy retry.Strategy) *Sender {
	return &Sender{deliveries: d, gateway: g, queue: q, cfg: cfg, strategy: strategy}
}

// Run blocks until ctx is cancelled. The loop exits between ticks, never
// mid-entry: every entry picked up in a tick reaches a recorded outcome
// before the tick ends.
func (s *Sender) Run(ctx context.Context) {
	nudges := make(chan queue.DispatchEvent)

	go func() {
		if err := s.queue.Consume(ctx, nudges, s.strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("dispatch consumer stopped, relying on polling only")
		}
	}()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	zlog.Logger.Info().Dur("interval", s.cfg.Interval).Msg("sender loop started")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("sender loop stopped")
			return
		case <-ticker.C:
		case ev := <-nudges:
			zlog.Logger.Debug().Str("message", ev.MessageID.String()).Msg("dispatch nudge received")
		}

		if err := s.drain(ctx); err != nil {
			zlog.Logger.Error().Err(err).Msg("sender tick failed")
		}
	}
}

// drain processes one bounded batch of pending entries grouped by message.
func (s *Sender) drain(ctx context.Context) error {
	items, err := s.deliveries.Pending(ctx, s.cfg.BatchSize)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		return nil
	}

	for _, group := range groupByMessage(items) {
		if ctx.Err() != nil {
			return nil
		}

		s.sendGroup(ctx, group)
	}

	return nil
}

// sendGroup pushes one message to its pending recipients: a single push
// for one recipient, a multicast for several. The batch outcome is fanned
// back out to each entry individually.
func (s *Sender) sendGroup(ctx context.Context, group []model.DeliveryItem) {
	var sendable []model.DeliveryItem

	for _, item := range group {
		if item.LineUserID == "" {
			s.record(s.deliveries.RecordSkipped(ctx, s.strategy, item, model.SkipReasonNoAddress))
			continue
		}

		sendable = append(sendable, item)
	}

	if len(sendable) == 0 {
		return
	}

	if len(sendable) == 1 {
		item := sendable[0]

		res, err := s.gateway.Push(ctx, item.LineUserID, item.Alert)
		if err != nil {
			s.record(s.deliveries.RecordFailure(ctx, s.strategy, item, err.Error()))
			return
		}
		if !res.Success {
			s.record(s.deliveries.RecordFailure(ctx, s.strategy, item, res.ErrorMessage))
			return
		}

		s.record(s.deliveries.RecordSent(ctx, s.strategy, item))
		return
	}

	targets := make([]string, 0, len(sendable))
	for _, item := range sendable {
		targets = append(targets, item.LineUserID)
	}

	res, err := s.gateway.Multicast(ctx, targets, sendable[0].Alert)
	if err != nil {
		for _, item := range sendable {
			s.record(s.deliveries.RecordFailure(ctx, s.strategy, item, err.Error()))
		}
		return
	}

	failed := make(map[string]struct{}, len(res.FailedTargets))
	for _, t := range res.FailedTargets {
		failed[t] = struct{}{}
	}

	for _, item := range sendable {
		if _, bad := failed[item.LineUserID]; bad {
			s.record(s.deliveries.RecordFailure(ctx, s.strategy, item, res.ErrorMessage))
			continue
		}

		s.record(s.deliveries.RecordSent(ctx, s.strategy, item))
	}
}

func (s *Sender) record(err error) {
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to record delivery outcome")
	}
}

// groupByMessage buckets items by parent message, preserving the fetch
// order of the first entry of each message.
func groupByMessage(items []model.DeliveryItem) [][]model.DeliveryItem {
	index := make(map[string]int, len(items))
	var groups [][]model.DeliveryItem

	for _, item := range items {
		key := item.MessageID.String()

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
		}

		groups[i] = append(groups[i], item)
	}

	return groups
}
