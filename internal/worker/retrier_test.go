package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/mzhdanov/alert-router/internal/mocks/worker"
	"github.com/mzhdanov/alert-router/internal/model"
	"github.com/mzhdanov/alert-router/pkg/line"
)

func TestRetrier_Drain_RetrySucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockdeliveryService(ctrl)
	gatewayMock := mocks.NewMocklineGateway(ctrl)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	r := NewRetrier(serviceMock, gatewayMock, RetrierConfig{
		Interval:      time.Minute,
		BatchSize:     50,
		RatePerSecond: 1000,
	}, strategy)

	item := model.DeliveryItem{
		ID:           uuid.New(),
		MessageID:    uuid.New(),
		AttemptCount: 1,
		LineUserID:   "U1",
		Alert:        testAlert(),
	}

	serviceMock.EXPECT().Retryable(gomock.Any(), 50).Return([]model.DeliveryItem{item}, nil)
	gatewayMock.EXPECT().Push(gomock.Any(), "U1", item.Alert).Return(line.Result{Success: true}, nil)
	serviceMock.EXPECT().RecordSent(gomock.Any(), strategy, item).Return(nil)

	err := r.drain(context.Background())
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
}

func TestRetrier_Drain_RetryFailsAgain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockdeliveryService(ctrl)
	gatewayMock := mocks.NewMocklineGateway(ctrl)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	r := NewRetrier(serviceMock, gatewayMock, RetrierConfig{
		Interval:      time.Minute,
		BatchSize:     50,
		RatePerSecond: 1000,
	}, strategy)

	item := model.DeliveryItem{
		ID:           uuid.New(),
		MessageID:    uuid.New(),
		AttemptCount: 2,
		LineUserID:   "U1",
		Alert:        testAlert(),
	}

	serviceMock.EXPECT().Retryable(gomock.Any(), 50).Return([]model.DeliveryItem{item}, nil)
	gatewayMock.EXPECT().Push(gomock.Any(), "U1", item.Alert).Return(line.Result{}, errors.New("connection refused"))
	serviceMock.EXPECT().RecordFailure(gomock.Any(), strategy, item, "connection refused").Return(nil)

	err := r.drain(context.Background())
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
}

func TestRetrier_Drain_APIErrorRecordedAsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockdeliveryService(ctrl)
	gatewayMock := mocks.NewMocklineGateway(ctrl)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	r := NewRetrier(serviceMock, gatewayMock, RetrierConfig{
		Interval:      time.Minute,
		BatchSize:     50,
		RatePerSecond: 1000,
	}, strategy)

	item := model.DeliveryItem{
		ID:           uuid.New(),
		MessageID:    uuid.New(),
		AttemptCount: 1,
		LineUserID:   "U1",
		Alert:        testAlert(),
	}

	serviceMock.EXPECT().Retryable(gomock.Any(), 50).Return([]model.DeliveryItem{item}, nil)
	gatewayMock.EXPECT().Push(gomock.Any(), "U1", item.Alert).
		Return(line.Result{Success: false, ErrorMessage: "invalid user id"}, nil)
	serviceMock.EXPECT().RecordFailure(gomock.Any(), strategy, item, "invalid user id").Return(nil)

	err := r.drain(context.Background())
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
}

func TestRetrier_Drain_AddresslessEntrySkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockdeliveryService(ctrl)
	gatewayMock := mocks.NewMocklineGateway(ctrl)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	r := NewRetrier(serviceMock, gatewayMock, RetrierConfig{
		Interval:      time.Minute,
		BatchSize:     50,
		RatePerSecond: 1000,
	}, strategy)

	item := model.DeliveryItem{ID: uuid.New(), MessageID: uuid.New(), AttemptCount: 1}

	serviceMock.EXPECT().Retryable(gomock.Any(), 50).Return([]model.DeliveryItem{item}, nil)
	serviceMock.EXPECT().RecordSkipped(gomock.Any(), strategy, item, model.SkipReasonNoAddress).Return(nil)

	err := r.drain(context.Background())
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
}

func TestRetrier_Run_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockdeliveryService(ctrl)
	gatewayMock := mocks.NewMocklineGateway(ctrl)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	r := NewRetrier(serviceMock, gatewayMock, RetrierConfig{
		Interval:      time.Hour,
		BatchSize:     50,
		RatePerSecond: 1000,
	}, strategy)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("retrier did not stop after cancel")
	}
}
