package mail

import (
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"portal/config"
	"portal/internal/domain/service"
)

const (
	ProviderSMTP     = "smtp"
	ProviderSendGrid = "sendgrid"
	ProviderLog      = "log"
)

// MailerParams holds dependencies for creating the Mailer
type MailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailer creates the Mailer selected by mail.provider
func NewMailer(params MailerParams) (service.Mailer, error) {
	cfg := params.Config.Mail
	logger := params.Logger.With(slog.String("component", "mailer"))

	switch strings.ToLower(cfg.Provider) {
	case ProviderSMTP:
		logger.Info("Using SMTP mail transport", slog.String("host", cfg.SMTP.Host), slog.Int("port", cfg.SMTP.Port))

		return NewSMTPMailer(cfg, logger)
	case ProviderSendGrid:
		logger.Info("Using SendGrid mail transport", slog.Bool("sandbox", cfg.SendGrid.Sandbox))

		return NewSendGridMailer(cfg, logger)
	case ProviderLog, "":
		logger.Info("Using log-only mail transport")

		return NewLogMailer(logger), nil
	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}
}
