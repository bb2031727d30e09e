package main

import (
	"context"
	"errors"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	deliveryhandler "github.com/mzhdanov/alert-router/internal/api/handlers/delivery"
	"github.com/mzhdanov/alert-router/internal/api/handlers/message"
	"github.com/mzhdanov/alert-router/internal/api/router"
	"github.com/mzhdanov/alert-router/internal/api/server"
	"github.com/mzhdanov/alert-router/internal/config"
	"github.com/mzhdanov/alert-router/internal/rabbitmq/queue"
	catalogrepo "github.com/mzhdanov/alert-router/internal/repository/catalog"
	deliveryrepo "github.com/mzhdanov/alert-router/internal/repository/delivery"
	messagerepo "github.com/mzhdanov/alert-router/internal/repository/message"
	deliverysvc "github.com/mzhdanov/alert-router/internal/service/delivery"
	dispatchsvc "github.com/mzhdanov/alert-router/internal/service/dispatch"
	"github.com/mzhdanov/alert-router/internal/worker"
	"github.com/mzhdanov/alert-router/pkg/line"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.NewDispatchQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create dispatch queue")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	catalogRepo := catalogrepo.NewRepository(db)
	messageRepo := messagerepo.NewRepository(db)
	deliveryRepo := deliveryrepo.NewRepository(db)

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)

	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	lineClient := line.NewClient(cfg.Line.Token, cfg.Line.BaseURL, cfg.Line.Timeout)

	dispatchService := dispatchsvc.NewService(
		catalogRepo,
		messageRepo,
		deliveryRepo,
		q,
		rdb,
		cfg.Dispatch.DedupWindow,
	)
	deliveryService := deliverysvc.NewService(deliveryRepo, messageRepo, rdb, deliverysvc.Config{
		MaxAttempts: cfg.Delivery.MaxAttempts,
		RetryAfter:  cfg.Retrier.RetryAfter,
	})

	messageHandler := message.NewHandler(dispatchService, val, cfg)
	deliveryHandler := deliveryhandler.NewHandler(deliveryService)

	sender := worker.NewSender(deliveryService, lineClient, q, worker.SenderConfig{
		Interval:  cfg.Sender.Interval,
		BatchSize: cfg.Sender.BatchSize,
	}, cfg.Retry)
	retrier := worker.NewRetrier(deliveryService, lineClient, worker.RetrierConfig{
		Interval:      cfg.Retrier.Interval,
		BatchSize:     cfg.Retrier.BatchSize,
		RatePerSecond: cfg.Retrier.RatePerSecond,
	}, cfg.Retry)

	go sender.Run(ctx)
	go retrier.Run(ctx)

	r := router.New(messageHandler, deliveryHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
