package bootstrap

import (
	"log/slog"

	"courtdesk/internal/infra/mailer"
	"courtdesk/internal/pkg/config"
	"courtdesk/internal/usecase"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewMailer,
	),
)

// NewMailer wires SES when credentials are configured, and the log-only
// mailer otherwise.
func NewMailer(cfg config.Config) (usecase.Mailer, error) {
	if cfg.Mail.AccessKeyID == "" || cfg.Mail.SecretAccessKey == "" {
		slog.Warn("mail credentials not configured, using log-only mailer")
		return mailer.NewLogMailer(), nil
	}

	return mailer.NewSESMailer(cfg.Mail)
}
