//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"courtdesk/internal/domain/reservation"
	"courtdesk/internal/pkg/clock"
	"courtdesk/internal/pkg/errs"
	"courtdesk/internal/usecase"
	usecasemock "courtdesk/internal/usecase/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSweep(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("deletes expired pending holds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := usecasemock.NewMockReservationRepository(ctrl)
		repo.EXPECT().DeleteExpiredPending(gomock.Any(), now, reservation.PendingTTL).
			Return(int64(3), nil)

		uc := usecase.NewSweeperUseCase(repo, clock.NewMockClock(now))
		deleted, err := uc.Sweep(context.Background())
		require.NoError(t, err)
		require.Equal(t, int64(3), deleted)
	})

	t.Run("nothing to delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := usecasemock.NewMockReservationRepository(ctrl)
		repo.EXPECT().DeleteExpiredPending(gomock.Any(), now, reservation.PendingTTL).
			Return(int64(0), nil)

		uc := usecase.NewSweeperUseCase(repo, clock.NewMockClock(now))
		deleted, err := uc.Sweep(context.Background())
		require.NoError(t, err)
		require.Zero(t, deleted)
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := usecasemock.NewMockReservationRepository(ctrl)
		repo.EXPECT().DeleteExpiredPending(gomock.Any(), now, reservation.PendingTTL).
			Return(int64(0), errs.New("connection lost"))

		uc := usecase.NewSweeperUseCase(repo, clock.NewMockClock(now))
		_, err := uc.Sweep(context.Background())
		require.Error(t, err)
	})
}
