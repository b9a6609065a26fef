//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"courtdesk/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func futureSlot(t *testing.T) reservation.Slot {
	t.Helper()
	slot, err := reservation.NewSlot("2025-06-02", "10:00:00")
	require.NoError(t, err)
	return slot
}

func pastSlot(t *testing.T) reservation.Slot {
	t.Helper()
	slot, err := reservation.NewSlot("2025-05-30", "10:00:00")
	require.NoError(t, err)
	return slot
}

func TestNewReservation(t *testing.T) {
	accountID := uuid.New()

	t.Run("client channel starts pending", func(t *testing.T) {
		r, err := reservation.NewReservation(
			"RES-20250602-ABCDE", uuid.New(), &accountID, "",
			futureSlot(t), reservation.ChannelClient, testNow,
		)
		require.NoError(t, err)
		require.NotNil(t, r)

		assert.Equal(t, reservation.StatusPending, r.Status())
		assert.NotEqual(t, uuid.Nil, r.ID())
	})

	t.Run("admin channel is confirmed immediately", func(t *testing.T) {
		r, err := reservation.NewReservation(
			"RES-20250602-ABCDE", uuid.New(), &accountID, "",
			futureSlot(t), reservation.ChannelAdmin, testNow,
		)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
	})

	t.Run("guest name stands in for an account", func(t *testing.T) {
		r, err := reservation.NewReservation(
			"RES-20250602-ABCDE", uuid.New(), nil, "  Jean Dupont  ",
			futureSlot(t), reservation.ChannelClient, testNow,
		)
		require.NoError(t, err)
		assert.Nil(t, r.AccountID())
		assert.Equal(t, "Jean Dupont", r.GuestName())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name      string
			code      string
			accountID *uuid.UUID
			guestName string
			slot      func(*testing.T) reservation.Slot
			channel   reservation.Channel
			errIs     error
		}{
			{
				name:      "invalid channel",
				code:      "RES-20250602-ABCDE",
				accountID: &accountID,
				slot:      futureSlot,
				channel:   reservation.Channel("phone"),
				errIs:     reservation.ErrInvalidChannel,
			},
			{
				name:      "empty code",
				code:      "",
				accountID: &accountID,
				slot:      futureSlot,
				channel:   reservation.ChannelClient,
				errIs:     reservation.ErrInvalidCode,
			},
			{
				name:      "slot in the past",
				code:      "RES-20250530-ABCDE",
				accountID: &accountID,
				slot:      pastSlot,
				channel:   reservation.ChannelClient,
				errIs:     reservation.ErrSlotInPast,
			},
			{
				name:    "no account and no guest name",
				code:    "RES-20250602-ABCDE",
				slot:    futureSlot,
				channel: reservation.ChannelClient,
				errIs:   reservation.ErrMissingRequester,
			},
			{
				name:      "whitespace-only guest name",
				code:      "RES-20250602-ABCDE",
				guestName: "   ",
				slot:      futureSlot,
				channel:   reservation.ChannelClient,
				errIs:     reservation.ErrMissingRequester,
			},
			{
				name:      "guest name too long",
				code:      "RES-20250602-ABCDE",
				guestName: string(make([]byte, 121)),
				slot:      futureSlot,
				channel:   reservation.ChannelClient,
				errIs:     reservation.ErrGuestNameTooLong,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				r, err := reservation.NewReservation(
					c.code, uuid.New(), c.accountID, c.guestName,
					c.slot(t), c.channel, testNow,
				)
				require.Nil(t, r)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}

func TestReservationCancel(t *testing.T) {
	accountID := uuid.New()

	build := func(t *testing.T, slot reservation.Slot, status reservation.Status) *reservation.Reservation {
		t.Helper()
		return reservation.Reconstruct(
			uuid.New(), "RES-20250602-ABCDE", uuid.New(), &accountID, "",
			slot, status, reservation.ChannelClient, testNow, testNow,
		)
	}

	t.Run("pending can be cancelled", func(t *testing.T) {
		r := build(t, futureSlot(t), reservation.StatusPending)
		require.NoError(t, r.Cancel(testNow))
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})

	t.Run("confirmed can be cancelled", func(t *testing.T) {
		r := build(t, futureSlot(t), reservation.StatusConfirmed)
		require.NoError(t, r.Cancel(testNow))
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})

	t.Run("cancelling twice fails", func(t *testing.T) {
		r := build(t, futureSlot(t), reservation.StatusCancelled)
		require.ErrorIs(t, r.Cancel(testNow), reservation.ErrAlreadyCancelled)
	})

	t.Run("past slots cannot be cancelled", func(t *testing.T) {
		r := build(t, pastSlot(t), reservation.StatusConfirmed)
		require.ErrorIs(t, r.Cancel(testNow), reservation.ErrPastReservation)
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
	})
}

func TestReservationConfirm(t *testing.T) {
	accountID := uuid.New()

	build := func(t *testing.T, status reservation.Status) *reservation.Reservation {
		t.Helper()
		return reservation.Reconstruct(
			uuid.New(), "RES-20250602-ABCDE", uuid.New(), &accountID, "",
			futureSlot(t), status, reservation.ChannelClient, testNow, testNow,
		)
	}

	t.Run("pending becomes confirmed", func(t *testing.T) {
		r := build(t, reservation.StatusPending)
		require.NoError(t, r.Confirm())
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
	})

	t.Run("confirming twice is a no-op", func(t *testing.T) {
		r := build(t, reservation.StatusConfirmed)
		require.NoError(t, r.Confirm())
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
	})

	t.Run("cancelled cannot be confirmed", func(t *testing.T) {
		r := build(t, reservation.StatusCancelled)
		require.ErrorIs(t, r.Confirm(), reservation.ErrNotConfirmable)
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})
}

func TestReservationCancellableBy(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	t.Run("owner may cancel", func(t *testing.T) {
		r := reservation.Reconstruct(
			uuid.New(), "RES-20250602-ABCDE", uuid.New(), &owner, "",
			futureSlot(t), reservation.StatusPending, reservation.ChannelClient, testNow, testNow,
		)
		assert.True(t, r.CancellableBy(owner))
		assert.False(t, r.CancellableBy(stranger))
	})

	t.Run("unowned rows are cancellable by anyone", func(t *testing.T) {
		r := reservation.Reconstruct(
			uuid.New(), "RES-20250602-ABCDE", uuid.New(), nil, "Jean Dupont",
			futureSlot(t), reservation.StatusPending, reservation.ChannelClient, testNow, testNow,
		)
		assert.True(t, r.CancellableBy(stranger))
	})
}

func TestReservationIsExpired(t *testing.T) {
	accountID := uuid.New()

	build := func(t *testing.T, slot reservation.Slot, status reservation.Status, createdAt time.Time) *reservation.Reservation {
		t.Helper()
		return reservation.Reconstruct(
			uuid.New(), "RES-20250602-ABCDE", uuid.New(), &accountID, "",
			slot, status, reservation.ChannelClient, createdAt, createdAt,
		)
	}

	t.Run("fresh pending hold is live", func(t *testing.T) {
		r := build(t, futureSlot(t), reservation.StatusPending, testNow.Add(-30*time.Minute))
		assert.False(t, r.IsExpired(testNow))
	})

	t.Run("pending hold older than the TTL is expired", func(t *testing.T) {
		r := build(t, futureSlot(t), reservation.StatusPending, testNow.Add(-reservation.PendingTTL-time.Minute))
		assert.True(t, r.IsExpired(testNow))
	})

	t.Run("pending hold on a past slot is expired", func(t *testing.T) {
		r := build(t, pastSlot(t), reservation.StatusPending, testNow.Add(-time.Minute))
		assert.True(t, r.IsExpired(testNow))
	})

	t.Run("confirmed rows never expire", func(t *testing.T) {
		r := build(t, futureSlot(t), reservation.StatusConfirmed, testNow.Add(-48*time.Hour))
		assert.False(t, r.IsExpired(testNow))
	})
}
