package usecase

import (
	"context"

	"portal/internal/domain/entity"
)

// ReceiptFile is a rendered receipt ready for download.
type ReceiptFile struct {
	Filename string
	Data     []byte
}

// ReceiptUsecase renders receipts for the caller's own records.
type ReceiptUsecase interface {
	MaintenanceReceipt(ctx context.Context, ownerID, id uint) (*ReceiptFile, error)
	PaymentReceipt(ctx context.Context, ownerID, id uint) (*ReceiptFile, error)
	DeliveryReceipt(ctx context.Context, ownerID, id uint) (*ReceiptFile, error)
}

// ReceiptSender renders a receipt and emails it as an attachment.
type ReceiptSender interface {
	// SendReceiptEmail returns the transport error; callers decide whether to retry.
	SendReceiptEmail(ctx context.Context, to, title string, fields []entity.ReceiptField, attachmentName string) error

	// HandleReceiptEvent sends the email described by a queued event.
	HandleReceiptEvent(ctx context.Context, event *entity.ReceiptEvent) error
}

// ReceiptNotifier is called after a record has been committed.
type ReceiptNotifier interface {
	// Notify hands the event to the dispatcher. Failures are logged, never returned.
	Notify(ctx context.Context, event entity.ReceiptEvent)
}
