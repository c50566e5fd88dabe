package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"portal/internal/domain/entity"
	"portal/internal/domain/service"
	"portal/internal/usecase"
)

type receiptNotifier struct {
	publisher service.ReceiptPublisher
	logger    *slog.Logger
}

// ReceiptNotifierParams holds dependencies for ReceiptNotifier, injected by Fx.
type ReceiptNotifierParams struct {
	fx.In

	Publisher service.ReceiptPublisher
	Logger    *slog.Logger
}

// NewReceiptNotifier creates the post-commit receipt hook.
func NewReceiptNotifier(params ReceiptNotifierParams) usecase.ReceiptNotifier {
	return &receiptNotifier{
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// Notify must only be called once the record is committed. Errors stop here.
func (srv *receiptNotifier) Notify(ctx context.Context, event entity.ReceiptEvent) {
	logger := requestLogger(ctx, srv.logger).With(
		slog.String("to", event.To),
		slog.String("title", event.Title),
		slog.String("attachment", event.AttachmentName),
	)

	if event.To == "" {
		logger.Warn("Receipt notification skipped, no recipient")

		return
	}

	if err := srv.publisher.Publish(ctx, &event); err != nil {
		logger.Error("Failed to publish receipt notification", slog.Any("error", err))

		return
	}

	logger.Debug("Receipt notification queued")
}
