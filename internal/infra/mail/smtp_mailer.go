// Package mail contains the outgoing mail transports.
package mail

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"

	"portal/config"
	"portal/internal/domain/service"
)

const smtpTimeout = 15 * time.Second

type smtpMailer struct {
	from     string
	fromName string
	options  []gomail.Option
	host     string
	logger   *slog.Logger
}

// NewSMTPMailer creates a Mailer that dials the configured SMTP server for every message.
func NewSMTPMailer(cfg config.MailConfig, logger *slog.Logger) (service.Mailer, error) {
	if cfg.SMTP.Host == "" {
		return nil, errors.New("mail.smtp.host is required for the smtp provider")
	}
	if cfg.From == "" {
		return nil, errors.New("mail.from is required for the smtp provider")
	}

	options := []gomail.Option{
		gomail.WithPort(cfg.SMTP.Port),
		gomail.WithTimeout(smtpTimeout),
	}

	switch {
	case cfg.SMTP.SSL:
		options = append(options, gomail.WithSSL())
	case cfg.SMTP.StartTLS:
		options = append(options, gomail.WithTLSPolicy(gomail.TLSMandatory))
	default:
		options = append(options, gomail.WithTLSPolicy(gomail.NoTLS))
	}

	if cfg.SMTP.Username != "" {
		options = append(options,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.SMTP.Username),
			gomail.WithPassword(cfg.SMTP.Password),
		)
	}

	return &smtpMailer{
		from:     cfg.From,
		fromName: cfg.FromName,
		options:  options,
		host:     cfg.SMTP.Host,
		logger:   logger,
	}, nil
}

func (m *smtpMailer) Send(ctx context.Context, msg *service.OutgoingMail) error {
	message, err := buildMessage(m.fromName, m.from, msg)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(m.host, m.options...)
	if err != nil {
		return errors.Wrap(err, "failed to create smtp client")
	}

	if err := client.DialAndSendWithContext(ctx, message); err != nil {
		return errors.Wrapf(err, "failed to send mail to %s", msg.To)
	}

	m.logger.Debug("Mail sent via smtp", slog.String("to", msg.To), slog.String("subject", msg.Subject))

	return nil
}

func buildMessage(fromName, from string, msg *service.OutgoingMail) (*gomail.Msg, error) {
	message := gomail.NewMsg()

	if err := message.FromFormat(fromName, from); err != nil {
		return nil, errors.Wrap(err, "invalid sender address")
	}
	if err := message.To(msg.To); err != nil {
		return nil, errors.Wrapf(err, "invalid recipient address %q", msg.To)
	}

	message.Subject(msg.Subject)
	message.SetBodyString(gomail.TypeTextHTML, msg.HTMLBody)

	for _, attachment := range msg.Attachments {
		err := message.AttachReader(attachment.Name, bytes.NewReader(attachment.Data),
			gomail.WithFileContentType(gomail.ContentType(attachment.ContentType)))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to attach %s", attachment.Name)
		}
	}

	return message, nil
}
