package components

import (
	"courtdesk/internal/infra/repository"
	"courtdesk/internal/infra/uow"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresTxManager,
		repository.NewReservationRepository,
		repository.NewFacilityRepository,
		repository.NewAccountRepository,
		repository.NewPaymentRepository,
	),
)
