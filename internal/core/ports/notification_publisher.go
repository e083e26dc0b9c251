package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
)

// NotificationKind identifies the event a notification announces.
type NotificationKind string

const (
	NotificationOrderDistributed NotificationKind = "order.distributed"
	NotificationOrderReady       NotificationKind = "order.ready"
	NotificationOrderCancelled   NotificationKind = "order.cancelled"
	NotificationPaymentCompleted NotificationKind = "payment.completed"
	NotificationLowStock         NotificationKind = "inventory.low_stock"
)

// Notification is an event announcement delivered to interested displays
// and staff devices after a command commits.
type Notification struct {
	Kind    NotificationKind
	OrderID kernel.UUID
	Payload map[string]any
}

// NotificationPublisher delivers notifications to out-of-process consumers.
// Publication is best effort and happens after the owning transaction has
// committed; a failed delivery never rolls back business state.
type NotificationPublisher interface {
	// Publish enqueues a notification for delivery.
	Publish(ctx context.Context, notification Notification) error
}
