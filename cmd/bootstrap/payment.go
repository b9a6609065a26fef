package bootstrap

import (
	"log/slog"

	"courtdesk/internal/infra/payment"
	"courtdesk/internal/pkg/config"
	"courtdesk/internal/usecase"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewChargeProvider,
	),
)

func NewChargeProvider(cfg config.Config) (usecase.ChargeProvider, error) {
	if cfg.Payment.SecretKey == "" {
		slog.Warn("payment provider keys not configured, payments disabled")
		return payment.NewDisabledProvider(), nil
	}

	return payment.NewOmiseProvider(cfg.Payment)
}
