package mail

import (
	"context"
	"log/slog"

	"portal/internal/domain/service"
)

type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer creates a Mailer that only logs what it would send. Used in development.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(ctx context.Context, msg *service.OutgoingMail) error {
	names := make([]string, 0, len(msg.Attachments))
	for _, attachment := range msg.Attachments {
		names = append(names, attachment.Name)
	}

	m.logger.InfoContext(ctx, "Mail not sent, log provider active",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.Any("attachments", names),
	)

	return nil
}
