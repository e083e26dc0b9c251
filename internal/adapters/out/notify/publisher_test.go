package notify_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"restaurant/internal/adapters/out/notify"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSender captures delivered notifications and can fail a configured
// number of initial attempts.
type recordingSender struct {
	mu        sync.Mutex
	failures  int
	attempts  int
	delivered []ports.Notification
}

func (s *recordingSender) Send(_ context.Context, notification ports.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attempts++
	if s.attempts <= s.failures {
		return errors.New("gateway unavailable")
	}
	s.delivered = append(s.delivered, notification)
	return nil
}

func (s *recordingSender) snapshot() (int, []ports.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts, append([]ports.Notification(nil), s.delivered...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testNotification() ports.Notification {
	return ports.Notification{
		Kind:    ports.NotificationOrderReady,
		OrderID: kernel.NewUUID(),
		Payload: map[string]any{"order_number": "ORD-20260830-4F2A9C31"},
	}
}

func TestChannelPublisher_DeliversToSender(t *testing.T) {
	sender := &recordingSender{}
	publisher := notify.NewChannelPublisher(sender, discardLogger())
	publisher.Start()

	notification := testNotification()
	require.NoError(t, publisher.Publish(t.Context(), notification))

	publisher.Stop()

	attempts, delivered := sender.snapshot()
	assert.Equal(t, 1, attempts)
	require.Len(t, delivered, 1)
	assert.Equal(t, notification.Kind, delivered[0].Kind)
	assert.Equal(t, notification.OrderID, delivered[0].OrderID)
}

func TestChannelPublisher_RetriesTransientFailures(t *testing.T) {
	sender := &recordingSender{failures: 2}
	publisher := notify.NewChannelPublisher(sender, discardLogger())
	publisher.Start()

	require.NoError(t, publisher.Publish(t.Context(), testNotification()))

	publisher.Stop()

	attempts, delivered := sender.snapshot()
	assert.Equal(t, 3, attempts)
	assert.Len(t, delivered, 1)
}

func TestChannelPublisher_GivesUpAfterMaxAttempts(t *testing.T) {
	sender := &recordingSender{failures: 10}
	publisher := notify.NewChannelPublisher(sender, discardLogger())
	publisher.Start()

	require.NoError(t, publisher.Publish(t.Context(), testNotification()))

	publisher.Stop()

	attempts, delivered := sender.snapshot()
	assert.Equal(t, 3, attempts)
	assert.Empty(t, delivered)
}

func TestChannelPublisher_StopDrainsQueue(t *testing.T) {
	sender := &recordingSender{}
	publisher := notify.NewChannelPublisher(sender, discardLogger())

	// Worker not started yet, so these sit in the buffer.
	for i := 0; i < 5; i++ {
		require.NoError(t, publisher.Publish(t.Context(), testNotification()))
	}

	publisher.Start()
	publisher.Stop()

	_, delivered := sender.snapshot()
	assert.Len(t, delivered, 5)
}
