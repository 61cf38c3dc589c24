package worker_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/InsightsLog/Insights-sub001/internal/queue"
	"github.com/InsightsLog/Insights-sub001/internal/worker"
)

type mockConsumer struct {
	mu       sync.Mutex
	batches  [][]queue.Message
	readErr  error
	ackErr   error
	acked    []string
	requeued []string
	dlq      []string
	reasons  []string
}

func (m *mockConsumer) Read(ctx context.Context) ([]queue.Message, error) {
	m.mu.Lock()
	readErr := m.readErr
	var batch []queue.Message
	if len(m.batches) > 0 {
		batch = m.batches[0]
		m.batches = m.batches[1:]
	}
	m.mu.Unlock()

	if readErr != nil {
		return nil, readErr
	}
	if batch == nil {
		time.Sleep(5 * time.Millisecond)
	}
	return batch, nil
}

func (m *mockConsumer) Ack(_ context.Context, msg queue.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.acked = append(m.acked, msg.ID)
	return m.ackErr
}

func (m *mockConsumer) Requeue(_ context.Context, msg queue.Message, errMsg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requeued = append(m.requeued, msg.ID)
	m.reasons = append(m.reasons, errMsg)
	return nil
}

func (m *mockConsumer) SendDLQ(_ context.Context, msg queue.Message, errMsg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dlq = append(m.dlq, msg.ID)
	m.reasons = append(m.reasons, errMsg)
	return nil
}

func (m *mockConsumer) Acked() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.acked...)
}

type mockRecorder struct {
	mu       sync.Mutex
	recordFn func(ctx context.Context, messageID string, event queue.MemberEvent) (bool, error)
	recorded []string
}

func (m *mockRecorder) Record(ctx context.Context, messageID string, event queue.MemberEvent) (bool, error) {
	m.mu.Lock()
	m.recorded = append(m.recorded, messageID)
	m.mu.Unlock()
	if m.recordFn != nil {
		return m.recordFn(ctx, messageID, event)
	}
	return true, nil
}

func newMessage(id string, attempt int) queue.Message {
	actor := uuid.New()
	return queue.Message{
		ID: id,
		Event: queue.MemberEvent{
			Type:           queue.EventMemberRoleUpdated,
			OrganizationID: uuid.New(),
			ActorID:        &actor,
			Attempt:        attempt,
		},
	}
}

var _ = Describe("Worker", func() {
	var (
		ctx      context.Context
		consumer *mockConsumer
		recorder *mockRecorder
		w        *worker.Worker
	)

	BeforeEach(func() {
		ctx = context.Background()
		consumer = &mockConsumer{}
		recorder = &mockRecorder{}
		w = worker.New(consumer, recorder, worker.Config{MaxAttempts: 3, ErrorBackoff: 10 * time.Millisecond})
	})

	Describe("Handle", func() {
		It("records the event and acks the message", func() {
			Expect(w.Handle(ctx, newMessage("1-0", 1))).To(Succeed())

			Expect(recorder.recorded).To(Equal([]string{"1-0"}))
			Expect(consumer.acked).To(Equal([]string{"1-0"}))
			Expect(consumer.requeued).To(BeEmpty())
		})

		It("acks replays that were already recorded", func() {
			recorder.recordFn = func(context.Context, string, queue.MemberEvent) (bool, error) { return false, nil }

			Expect(w.Handle(ctx, newMessage("1-0", 2))).To(Succeed())
			Expect(consumer.acked).To(Equal([]string{"1-0"}))
		})

		It("does not fail when the ack fails", func() {
			consumer.ackErr = errors.New("connection refused")

			Expect(w.Handle(ctx, newMessage("1-0", 1))).To(Succeed())
		})

		It("requeues a failed message below the attempt limit", func() {
			recorder.recordFn = func(context.Context, string, queue.MemberEvent) (bool, error) {
				return false, errors.New("database unavailable")
			}

			err := w.Handle(ctx, newMessage("1-0", 2))

			Expect(err).To(MatchError(ContainSubstring("database unavailable")))
			Expect(consumer.requeued).To(Equal([]string{"1-0"}))
			Expect(consumer.dlq).To(BeEmpty())
			Expect(consumer.acked).To(BeEmpty())
			Expect(consumer.reasons[0]).To(ContainSubstring("recording audit event"))
		})

		It("dead-letters a message at the attempt limit", func() {
			recorder.recordFn = func(context.Context, string, queue.MemberEvent) (bool, error) {
				return false, errors.New("database unavailable")
			}

			Expect(w.Handle(ctx, newMessage("1-0", 3))).NotTo(Succeed())

			Expect(consumer.dlq).To(Equal([]string{"1-0"}))
			Expect(consumer.requeued).To(BeEmpty())
		})

		It("recovers from a panic and requeues", func() {
			recorder.recordFn = func(context.Context, string, queue.MemberEvent) (bool, error) {
				panic("nil map")
			}

			err := w.Handle(ctx, newMessage("1-0", 1))

			Expect(err).To(MatchError("panic: nil map"))
			Expect(consumer.requeued).To(Equal([]string{"1-0"}))
		})
	})

	Describe("Run", func() {
		It("processes batches until stopped", func() {
			consumer.batches = [][]queue.Message{
				{newMessage("1-0", 1), newMessage("2-0", 1)},
				{newMessage("3-0", 1)},
			}

			done := make(chan error, 1)
			go func() { done <- w.Run(ctx) }()

			Eventually(consumer.Acked).Should(Equal([]string{"1-0", "2-0", "3-0"}))

			w.Stop()
			Eventually(done).Should(Receive(BeNil()))
		})

		It("returns when the context is cancelled", func() {
			consumer.readErr = errors.New("NOGROUP")
			runCtx, cancel := context.WithCancel(ctx)

			done := make(chan error, 1)
			go func() { done <- w.Run(runCtx) }()
			cancel()

			Eventually(done).Should(Receive(MatchError(context.Canceled)))
		})
	})
})
