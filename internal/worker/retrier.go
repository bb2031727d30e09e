package worker

import (
	"context"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
	"golang.org/x/time/rate"

	"github.com/mzhdanov/alert-router/internal/model"
)

// RetrierConfig bounds one retry tick.
type RetrierConfig struct {
	Interval  time.Duration
	BatchSize int
	// RatePerSecond paces individual pushes so a retry burst does not
	// hammer the gateway.
	RatePerSecond float64
}

// Retrier re-attempts ledger entries that failed transiently. Entries are
// re-pushed one by one; exhaustion of the attempt budget is handled by the
// delivery service and is terminal.
type Retrier struct {
	deliveries deliveryService
	gateway    lineGateway
	limiter    *rate.Limiter
	cfg        RetrierConfig
	strategy   retry.Strategy
}

func NewRetrier(d deliveryService, g lineGateway, cfg RetrierConfig, strategy retry.Strategy) *Retrier {
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = 10
	}

	return &Retrier{
		deliveries: d,
		gateway:    g,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1),
		cfg:        cfg,
		strategy:   strategy,
	}
}

// Run blocks until ctx is cancelled, exiting between ticks.
func (r *Retrier) Run(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	zlog.Logger.Info().Dur("interval", r.cfg.Interval).Msg("retry loop started")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("retry loop stopped")
			return
		case <-ticker.C:
		}

		if err := r.drain(ctx); err != nil {
			zlog.Logger.Error().Err(err).Msg("retry tick failed")
		}
	}
}

func (r *Retrier) drain(ctx context.Context) error {
	items, err := r.deliveries.Retryable(ctx, r.cfg.BatchSize)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		return nil
	}

	zlog.Logger.Debug().Int("count", len(items)).Msg("retrying deliveries")

	succeeded, failed := 0, 0

	for _, item := range items {
		if err := r.limiter.Wait(ctx); err != nil {
			// ctx cancelled; remaining entries stay pending and are
			// picked up after restart.
			return nil
		}

		if r.retryOne(ctx, item) {
			succeeded++
		} else {
			failed++
		}
	}

	zlog.Logger.Info().Int("succeeded", succeeded).Int("failed", failed).Msg("retry tick finished")

	return nil
}

func (r *Retrier) retryOne(ctx context.Context, item model.DeliveryItem) bool {
	if item.LineUserID == "" {
		if err := r.deliveries.RecordSkipped(ctx, r.strategy, item, model.SkipReasonNoAddress); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to record delivery outcome")
		}
		return false
	}

	res, err := r.gateway.Push(ctx, item.LineUserID, item.Alert)

	cause := ""
	switch {
	case err != nil:
		cause = err.Error()
	case !res.Success:
		cause = res.ErrorMessage
	}

	if cause != "" {
		if err := r.deliveries.RecordFailure(ctx, r.strategy, item, cause); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to record delivery outcome")
		}
		return false
	}

	if err := r.deliveries.RecordSent(ctx, r.strategy, item); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to record delivery outcome")
	}

	return true
}
