package service

import (
	"context"

	"portal/internal/domain/entity"
)

// ReceiptPublisher hands receipt events to whatever delivers the email:
// an in-process worker pool, a local push endpoint or Google Pub/Sub.
type ReceiptPublisher interface {
	// Publish enqueues the event. It must not block on mail delivery.
	Publish(ctx context.Context, event *entity.ReceiptEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
