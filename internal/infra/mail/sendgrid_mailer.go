package mail

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"portal/config"
	"portal/internal/domain/service"
)

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

type sendgridMailer struct {
	apiKey  string
	host    string
	from    *sgmail.Email
	sandbox bool
	logger  *slog.Logger
}

// NewSendGridMailer creates a Mailer backed by the SendGrid v3 API.
func NewSendGridMailer(cfg config.MailConfig, logger *slog.Logger) (service.Mailer, error) {
	return newSendGridMailer(cfg, sendgridHost, logger)
}

func newSendGridMailer(cfg config.MailConfig, host string, logger *slog.Logger) (*sendgridMailer, error) {
	if cfg.SendGrid.APIKey == "" {
		return nil, errors.New("mail.sendgrid.apiKey is required for the sendgrid provider")
	}
	if cfg.From == "" {
		return nil, errors.New("mail.from is required for the sendgrid provider")
	}

	return &sendgridMailer{
		apiKey:  cfg.SendGrid.APIKey,
		host:    host,
		from:    sgmail.NewEmail(cfg.FromName, cfg.From),
		sandbox: cfg.SendGrid.Sandbox,
		logger:  logger,
	}, nil
}

func (m *sendgridMailer) Send(ctx context.Context, msg *service.OutgoingMail) error {
	message := sgmail.NewV3Mail()
	message.SetFrom(m.from)
	message.Subject = msg.Subject

	personalization := sgmail.NewPersonalization()
	personalization.AddTos(sgmail.NewEmail("", msg.To))
	message.AddPersonalizations(personalization)
	message.AddContent(sgmail.NewContent("text/html", msg.HTMLBody))

	for _, attachment := range msg.Attachments {
		a := sgmail.NewAttachment()
		a.SetContent(base64.StdEncoding.EncodeToString(attachment.Data))
		a.SetType(attachment.ContentType)
		a.SetFilename(attachment.Name)
		a.SetDisposition("attachment")
		message.AddAttachment(a)
	}

	if m.sandbox {
		settings := sgmail.NewMailSettings()
		settings.SetSandboxMode(sgmail.NewSetting(true))
		message.SetMailSettings(settings)
	}

	request := sendgrid.GetRequest(m.apiKey, sendgridEndpoint, m.host)
	request.Method = http.MethodPost
	request.Body = sgmail.GetRequestBody(message)

	response, err := sendgrid.MakeRequestWithContext(ctx, request)
	if err != nil {
		return errors.Wrapf(err, "sendgrid request for %s failed", msg.To)
	}
	if response.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("sendgrid rejected mail to %s: status %d: %s", msg.To, response.StatusCode, response.Body)
	}

	m.logger.Debug("Mail sent via sendgrid", slog.String("to", msg.To), slog.Int("status", response.StatusCode), slog.Bool("sandbox", m.sandbox))

	return nil
}
