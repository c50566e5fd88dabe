package impl

import (
	"context"
	"html"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	"portal/internal/usecase"
)

const pdfContentType = "application/pdf"

type receiptSender struct {
	renderer service.ReceiptRenderer
	mailer   service.Mailer
	logger   *slog.Logger
}

// ReceiptSenderParams holds dependencies for ReceiptSender, injected by Fx.
type ReceiptSenderParams struct {
	fx.In

	Renderer service.ReceiptRenderer
	Mailer   service.Mailer
	Logger   *slog.Logger
}

// NewReceiptSender creates the component that renders receipts and mails them.
func NewReceiptSender(params ReceiptSenderParams) usecase.ReceiptSender {
	return &receiptSender{
		renderer: params.Renderer,
		mailer:   params.Mailer,
		logger:   params.Logger,
	}
}

func (srv *receiptSender) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// SendReceiptEmail renders the receipt and mails it with a plain dump of the fields as body.
func (srv *receiptSender) SendReceiptEmail(ctx context.Context, to, title string, fields []entity.ReceiptField, attachmentName string) error {
	if strings.TrimSpace(to) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("receipt recipient is empty")
	}

	pdf, err := srv.renderer.Render(title, fields)
	if err != nil {
		return errors.Wrapf(err, "failed to render receipt %s", attachmentName)
	}

	msg := &service.OutgoingMail{
		To:       to,
		Subject:  title,
		HTMLBody: receiptBody(title, fields),
		Attachments: []service.MailAttachment{
			{Name: attachmentName, ContentType: pdfContentType, Data: pdf},
		},
	}

	if err := srv.mailer.Send(ctx, msg); err != nil {
		return errors.Wrapf(err, "failed to send receipt %s", attachmentName)
	}

	srv.log(ctx).Info("Receipt email sent", slog.String("to", to), slog.String("title", title), slog.String("attachment", attachmentName))

	return nil
}

func (srv *receiptSender) HandleReceiptEvent(ctx context.Context, event *entity.ReceiptEvent) error {
	if event == nil {
		return domainerrors.ErrBadRequest.WithDetails("empty receipt event")
	}

	return srv.SendReceiptEmail(ctx, event.To, event.Title, event.Fields, event.AttachmentName)
}

func receiptBody(title string, fields []entity.ReceiptField) string {
	var b strings.Builder

	b.WriteString("<p>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</p><pre>")
	for i, field := range fields {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(html.EscapeString(field.Label))
		b.WriteString(": ")
		b.WriteString(html.EscapeString(field.Value))
	}
	b.WriteString("</pre>")

	return b.String()
}
