// Package notify provides the in-process notification pipeline. Commands
// enqueue notifications after their transaction commits; a background worker
// delivers them to the configured sender with bounded retries. Delivery is
// best effort and never affects business state.
package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"restaurant/internal/core/ports"
)

const (
	defaultBuffer = 256
	maxAttempts   = 3
	retryBackoff  = 100 * time.Millisecond
)

// ErrQueueFull is returned when the publisher's buffer is saturated and a
// notification had to be dropped.
var ErrQueueFull = errors.New("notification queue is full")

// Sender delivers one notification to its consumers.
type Sender interface {
	Send(ctx context.Context, notification ports.Notification) error
}

// LogSender writes notifications to the structured log. It stands in for a
// push gateway in development and test environments.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a sender that logs every notification.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger.With("component", "notification_sender")}
}

// Send logs the notification.
func (s *LogSender) Send(ctx context.Context, notification ports.Notification) error {
	s.logger.InfoContext(ctx, "notification delivered",
		"kind", string(notification.Kind),
		"order_id", notification.OrderID.String(),
		"payload", notification.Payload,
	)
	return nil
}

// ChannelPublisher implements ports.NotificationPublisher with a buffered
// channel drained by a single worker goroutine.
type ChannelPublisher struct {
	sender Sender
	logger *slog.Logger

	queue chan ports.Notification
	done  chan struct{}
	wg    sync.WaitGroup
}

// NewChannelPublisher creates a publisher delivering through the given sender.
func NewChannelPublisher(sender Sender, logger *slog.Logger) *ChannelPublisher {
	return &ChannelPublisher{
		sender: sender,
		logger: logger.With("component", "notification_publisher"),
		queue:  make(chan ports.Notification, defaultBuffer),
		done:   make(chan struct{}),
	}
}

// Start launches the delivery worker.
func (p *ChannelPublisher) Start() {
	p.wg.Add(1)
	go p.run()
}

// Stop drains the queue and waits for the worker to finish.
func (p *ChannelPublisher) Stop() {
	close(p.done)
	p.wg.Wait()
}

// Publish enqueues a notification without blocking the caller. A saturated
// queue drops the notification and reports ErrQueueFull; callers treat this
// as a delivery failure, not a command failure.
func (p *ChannelPublisher) Publish(_ context.Context, notification ports.Notification) error {
	select {
	case p.queue <- notification:
		return nil
	default:
		p.logger.Warn("notification dropped",
			"kind", string(notification.Kind),
			"order_id", notification.OrderID.String(),
		)
		return ErrQueueFull
	}
}

func (p *ChannelPublisher) run() {
	defer p.wg.Done()

	for {
		select {
		case notification := <-p.queue:
			p.deliver(notification)
		case <-p.done:
			// Drain whatever is already queued before exiting.
			for {
				select {
				case notification := <-p.queue:
					p.deliver(notification)
				default:
					return
				}
			}
		}
	}
}

// deliver attempts the send up to maxAttempts times with linear backoff.
// A notification that still fails is logged and dropped.
func (p *ChannelPublisher) deliver(notification ports.Notification) {
	ctx := context.Background()

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = p.sender.Send(ctx, notification); err == nil {
			return
		}
		if attempt < maxAttempts {
			time.Sleep(time.Duration(attempt) * retryBackoff)
		}
	}

	p.logger.Error("notification delivery failed",
		"kind", string(notification.Kind),
		"order_id", notification.OrderID.String(),
		"attempts", maxAttempts,
		"error", err,
	)
}
