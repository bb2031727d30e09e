package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	svcmocks "github.com/mzhdanov/alert-router/internal/mocks/service/delivery"
	mocks "github.com/mzhdanov/alert-router/internal/mocks/worker"
	"github.com/mzhdanov/alert-router/internal/model"
	"github.com/mzhdanov/alert-router/internal/rabbitmq/queue"
	"github.com/mzhdanov/alert-router/internal/service/delivery"
	"github.com/mzhdanov/alert-router/pkg/line"
)

func testAlert() model.Alert {
	return model.Alert{
		MessageType: "CRITICAL",
		Title:       "disk full",
		Content:     "/dev/sda1 at 98%",
		Priority:    1,
		Timestamp:   time.Now(),
	}
}

func TestSender_Drain_SinglePush(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockdeliveryService(ctrl)
	gatewayMock := mocks.NewMocklineGateway(ctrl)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	s := NewSender(serviceMock, gatewayMock, nil, SenderConfig{Interval: time.Second, BatchSize: 50}, strategy)

	item := model.DeliveryItem{
		ID:         uuid.New(),
		MessageID:  uuid.New(),
		LineUserID: "U1",
		Alert:      testAlert(),
	}

	serviceMock.EXPECT().Pending(gomock.Any(), 50).Return([]model.DeliveryItem{item}, nil)
	gatewayMock.EXPECT().Push(gomock.Any(), "U1", item.Alert).Return(line.Result{Success: true}, nil)
	serviceMock.EXPECT().RecordSent(gomock.Any(), strategy, item).Return(nil)

	err := s.drain(context.Background())
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
}

func TestSender_Drain_SkipsEntriesWithoutAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockdeliveryService(ctrl)
	gatewayMock := mocks.NewMocklineGateway(ctrl)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	s := NewSender(serviceMock, gatewayMock, nil, SenderConfig{Interval: time.Second, BatchSize: 50}, strategy)

	messageID := uuid.New()
	alert := testAlert()

	withAddress := model.DeliveryItem{ID: uuid.New(), MessageID: messageID, LineUserID: "U1", Alert: alert}
	noAddress := model.DeliveryItem{ID: uuid.New(), MessageID: messageID, Alert: alert}

	serviceMock.EXPECT().Pending(gomock.Any(), 50).Return([]model.DeliveryItem{withAddress, noAddress}, nil)
	serviceMock.EXPECT().RecordSkipped(gomock.Any(), strategy, noAddress, model.SkipReasonNoAddress).Return(nil)
	gatewayMock.EXPECT().Push(gomock.Any(), "U1", alert).Return(line.Result{Success: true}, nil)
	serviceMock.EXPECT().RecordSent(gomock.Any(), strategy, withAddress).Return(nil)

	err := s.drain(context.Background())
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
}

func TestSender_Drain_MulticastPartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockdeliveryService(ctrl)
	gatewayMock := mocks.NewMocklineGateway(ctrl)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	s := NewSender(serviceMock, gatewayMock, nil, SenderConfig{Interval: time.Second, BatchSize: 50}, strategy)

	messageID := uuid.New()
	alert := testAlert()

	a := model.DeliveryItem{ID: uuid.New(), MessageID: messageID, LineUserID: "U1", Alert: alert}
	b := model.DeliveryItem{ID: uuid.New(), MessageID: messageID, LineUserID: "U2", Alert: alert}
	c := model.DeliveryItem{ID: uuid.New(), MessageID: messageID, LineUserID: "U3", Alert: alert}

	serviceMock.EXPECT().Pending(gomock.Any(), 50).Return([]model.DeliveryItem{a, b, c}, nil)
	gatewayMock.EXPECT().Multicast(gomock.Any(), []string{"U1", "U2", "U3"}, alert).
		Return(line.Result{
			Success:       false,
			ErrorCode:     "PARTIAL_FAILURE",
			ErrorMessage:  "some targets rejected",
			FailedTargets: []string{"U2"},
		}, nil)

	// The batch outcome fans out per entry: U2 fails, the rest are sent.
	serviceMock.EXPECT().RecordSent(gomock.Any(), strategy, a).Return(nil)
	serviceMock.EXPECT().RecordFailure(gomock.Any(), strategy, b, "some targets rejected").Return(nil)
	serviceMock.EXPECT().RecordSent(gomock.Any(), strategy, c).Return(nil)

	err := s.drain(context.Background())
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
}

func TestSender_Drain_MulticastTransportErrorFailsAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockdeliveryService(ctrl)
	gatewayMock := mocks.NewMocklineGateway(ctrl)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	s := NewSender(serviceMock, gatewayMock, nil, SenderConfig{Interval: time.Second, BatchSize: 50}, strategy)

	messageID := uuid.New()
	alert := testAlert()

	a := model.DeliveryItem{ID: uuid.New(), MessageID: messageID, LineUserID: "U1", Alert: alert}
	b := model.DeliveryItem{ID: uuid.New(), MessageID: messageID, LineUserID: "U2", Alert: alert}

	serviceMock.EXPECT().Pending(gomock.Any(), 50).Return([]model.DeliveryItem{a, b}, nil)
	gatewayMock.EXPECT().Multicast(gomock.Any(), []string{"U1", "U2"}, alert).
		Return(line.Result{}, errors.New("connection refused"))
	serviceMock.EXPECT().RecordFailure(gomock.Any(), strategy, a, "connection refused").Return(nil)
	serviceMock.EXPECT().RecordFailure(gomock.Any(), strategy, b, "connection refused").Return(nil)

	err := s.drain(context.Background())
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
}

func TestSender_Drain_GroupsByMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockdeliveryService(ctrl)
	gatewayMock := mocks.NewMocklineGateway(ctrl)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	s := NewSender(serviceMock, gatewayMock, nil, SenderConfig{Interval: time.Second, BatchSize: 50}, strategy)

	alertA := testAlert()
	alertB := testAlert()
	alertB.Title = "other alert"

	msgA, msgB := uuid.New(), uuid.New()
	a1 := model.DeliveryItem{ID: uuid.New(), MessageID: msgA, LineUserID: "U1", Alert: alertA}
	b1 := model.DeliveryItem{ID: uuid.New(), MessageID: msgB, LineUserID: "U2", Alert: alertB}
	a2 := model.DeliveryItem{ID: uuid.New(), MessageID: msgA, LineUserID: "U3", Alert: alertA}

	serviceMock.EXPECT().Pending(gomock.Any(), 50).Return([]model.DeliveryItem{a1, b1, a2}, nil)

	// Same-message entries are pushed together even when interleaved.
	gatewayMock.EXPECT().Multicast(gomock.Any(), []string{"U1", "U3"}, alertA).Return(line.Result{Success: true}, nil)
	serviceMock.EXPECT().RecordSent(gomock.Any(), strategy, a1).Return(nil)
	serviceMock.EXPECT().RecordSent(gomock.Any(), strategy, a2).Return(nil)

	gatewayMock.EXPECT().Push(gomock.Any(), "U2", alertB).Return(line.Result{Success: true}, nil)
	serviceMock.EXPECT().RecordSent(gomock.Any(), strategy, b1).Return(nil)

	err := s.drain(context.Background())
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
}

// The full happy path: a message dispatched to two addressed recipients
// (its addressless third was skipped at creation time and never reaches the
// pending pool), one sender tick pushes both, and the last recorded outcome
// stamps the message processed.
func TestSender_Drain_MessageCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := svcmocks.NewMockdeliveryRepository(ctrl)
	messageMock := svcmocks.NewMockmessageRepository(ctrl)
	cacheMock := svcmocks.NewMockstatusCache(ctrl)
	gatewayMock := mocks.NewMocklineGateway(ctrl)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	svc := delivery.NewService(repoMock, messageMock, cacheMock, delivery.Config{
		MaxAttempts: 3,
		RetryAfter:  5 * time.Minute,
	})
	s := NewSender(svc, gatewayMock, nil, SenderConfig{Interval: 5 * time.Second, BatchSize: 50}, strategy)

	messageID := uuid.New()
	alert := testAlert()

	a := model.DeliveryItem{ID: uuid.New(), MessageID: messageID, LineUserID: "U1", Alert: alert}
	b := model.DeliveryItem{ID: uuid.New(), MessageID: messageID, LineUserID: "U2", Alert: alert}

	repoMock.EXPECT().GetPending(gomock.Any(), 3, 50).Return([]model.DeliveryItem{a, b}, nil)
	gatewayMock.EXPECT().Multicast(gomock.Any(), []string{"U1", "U2"}, alert).Return(line.Result{Success: true}, nil)

	repoMock.EXPECT().MarkSent(gomock.Any(), a.ID).Return(true, nil)
	repoMock.EXPECT().CountUnfinished(gomock.Any(), messageID).Return(1, nil)

	repoMock.EXPECT().MarkSent(gomock.Any(), b.ID).Return(true, nil)
	repoMock.EXPECT().CountUnfinished(gomock.Any(), messageID).Return(0, nil)
	messageMock.EXPECT().StampProcessed(gomock.Any(), messageID).Return(true, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, messageID.String(), model.MessageStatusProcessed).Return(nil)

	err := s.drain(context.Background())
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
}

func TestSender_Run_NudgeTriggersDrain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockdeliveryService(ctrl)
	gatewayMock := mocks.NewMocklineGateway(ctrl)
	consumerMock := mocks.NewMockdispatchConsumer(ctrl)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	s := NewSender(serviceMock, gatewayMock, consumerMock, SenderConfig{Interval: time.Hour, BatchSize: 50}, strategy)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ev := queue.DispatchEvent{MessageID: uuid.New(), RecipientCount: 1}

	consumerMock.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(_ context.Context, out chan<- queue.DispatchEvent, _ retry.Strategy) error {
			out <- ev
			return nil
		},
	)

	// The hour-long ticker never fires; only the nudge can cause this.
	serviceMock.EXPECT().Pending(gomock.Any(), 50).Return(nil, nil)

	go s.Run(ctx)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

// Once Run returns, nothing receives from the nudge channel anymore. The
// consumer must get Run's context so a blocked hand-off can be abandoned at
// shutdown instead of leaking its goroutine.
func TestSender_Run_CancelReleasesConsumer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockdeliveryService(ctrl)
	gatewayMock := mocks.NewMocklineGateway(ctrl)
	consumerMock := mocks.NewMockdispatchConsumer(ctrl)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	s := NewSender(serviceMock, gatewayMock, consumerMock, SenderConfig{Interval: time.Hour, BatchSize: 50}, strategy)

	ctx, cancel := context.WithCancel(context.Background())

	released := make(chan struct{})
	consumerMock.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(ctx context.Context, _ chan<- queue.DispatchEvent, _ retry.Strategy) error {
			select {
			case <-ctx.Done():
				close(released)
				return ctx.Err()
			case <-time.After(time.Second):
				return errors.New("consumer context never cancelled")
			}
		},
	)

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("consumer was not released on shutdown")
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sender loop did not stop")
	}
}
