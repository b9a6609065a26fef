package mailer

import (
	"context"
	"log/slog"

	"courtdesk/internal/usecase"
	"courtdesk/internal/usecase/readmodel"
)

// LogMailer stands in for SES when no credentials are configured. It logs the
// would-be mail and reports success, which keeps local runs and CI green.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendGuestWelcome(_ context.Context, email, name, _ string) error {
	slog.Info("mail (log only): guest welcome", "to", email, "name", name)
	return nil
}

func (m *LogMailer) SendReservationConfirmation(_ context.Context, email string, rm *readmodel.ReservationRM) error {
	slog.Info("mail (log only): reservation confirmation", "to", email, "code", rm.Code)
	return nil
}

var _ usecase.Mailer = (*LogMailer)(nil)
