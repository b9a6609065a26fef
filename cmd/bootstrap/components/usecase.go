package components

import (
	"courtdesk/internal/pkg/clock"
	"courtdesk/internal/pkg/config"
	"courtdesk/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewFacilityUseCase,
		usecase.NewReservationUseCase,
		usecase.NewSweeperUseCase,
		NewAccountProvisioner,
		NewPaymentUseCase,
	),
)

func NewAccountProvisioner(accountRepo usecase.AccountRepository, cfg config.Config) usecase.AccountProvisioner {
	return usecase.NewAccountProvisioner(accountRepo, cfg.Phone.DefaultRegion)
}

func NewPaymentUseCase(
	paymentRepo usecase.PaymentRepository,
	reservationRepo usecase.ReservationRepository,
	facilityRepo usecase.FacilityRepository,
	accountRepo usecase.AccountRepository,
	provider usecase.ChargeProvider,
	tx usecase.TxManager,
	mailer usecase.Mailer,
	clk clock.Clock,
	cfg config.Config,
) usecase.PaymentUseCase {
	return usecase.NewPaymentUseCase(
		paymentRepo,
		reservationRepo,
		facilityRepo,
		accountRepo,
		provider,
		tx,
		mailer,
		clk,
		cfg.Payment.Currency,
	)
}
