package usecase

import (
	"context"
	"log/slog"

	"courtdesk/internal/domain/reservation"
	"courtdesk/internal/pkg/clock"
	"courtdesk/internal/pkg/errs"
)

// SweeperUseCase deletes expired pending reservations in the background.
// Reads already filter them out, so the sweep only reclaims rows; nothing on
// the request path waits for it.
type SweeperUseCase interface {
	Sweep(ctx context.Context) (int64, error)
}

type sweeperUseCaseImpl struct {
	reservationRepo ReservationRepository
	clock           clock.Clock
}

func NewSweeperUseCase(reservationRepo ReservationRepository, clock clock.Clock) SweeperUseCase {
	return &sweeperUseCaseImpl{
		reservationRepo: reservationRepo,
		clock:           clock,
	}
}

func (u *sweeperUseCaseImpl) Sweep(ctx context.Context) (int64, error) {
	deleted, err := u.reservationRepo.DeleteExpiredPending(ctx, u.clock.Now().UTC(), reservation.PendingTTL)
	if err != nil {
		return 0, errs.Wrap(err, "failed to sweep expired pending reservations")
	}

	if deleted > 0 {
		slog.Info("swept expired pending reservations", "deleted", deleted)
	}

	return deleted, nil
}
