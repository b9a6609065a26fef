package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidChannel      = errors.New("invalid booking channel")
	ErrSlotInPast          = errors.New("slot is in the past")
	ErrAlreadyCancelled    = errors.New("reservation is already cancelled")
	ErrPastReservation     = errors.New("cannot cancel past reservations")
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrNotConfirmable      = errors.New("only pending reservations can be confirmed")
	ErrMissingRequester    = errors.New("reservation needs an account or a guest name")
	ErrGuestNameTooLong    = errors.New("guest name too long")
	ErrInvalidCode         = errors.New("invalid reservation code")
)

const (
	// MaxPerDayPerAccount caps self-service bookings per account and day.
	// Staff-entered reservations are exempt.
	MaxPerDayPerAccount = 2

	// PendingTTL is how long an unconfirmed reservation holds its slot.
	PendingTTL = time.Hour

	maxGuestNameLength = 120
)

type Reservation struct {
	id         uuid.UUID
	code       string
	facilityID uuid.UUID
	accountID  *uuid.UUID
	guestName  string
	slot       Slot
	status     Status
	channel    Channel
	createdAt  time.Time
	updatedAt  time.Time
}

// NewReservation creates a reservation for a free slot. Admin-channel rows are
// confirmed immediately, client-channel rows start pending.
func NewReservation(
	code string,
	facilityID uuid.UUID,
	accountID *uuid.UUID,
	guestName string,
	slot Slot,
	channel Channel,
	now time.Time,
) (*Reservation, error) {
	if !channel.IsValid() {
		return nil, ErrInvalidChannel
	}
	if code == "" {
		return nil, ErrInvalidCode
	}
	if slot.IsPast(now) {
		return nil, ErrSlotInPast
	}

	guestName = strings.TrimSpace(guestName)
	if len(guestName) > maxGuestNameLength {
		return nil, ErrGuestNameTooLong
	}
	if accountID == nil && guestName == "" {
		return nil, ErrMissingRequester
	}

	status := StatusPending
	if channel == ChannelAdmin {
		status = StatusConfirmed
	}

	return &Reservation{
		id:         uuid.New(),
		code:       code,
		facilityID: facilityID,
		accountID:  accountID,
		guestName:  guestName,
		slot:       slot,
		status:     status,
		channel:    channel,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	code string,
	facilityID uuid.UUID,
	accountID *uuid.UUID,
	guestName string,
	slot Slot,
	status Status,
	channel Channel,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		code:       code,
		facilityID: facilityID,
		accountID:  accountID,
		guestName:  guestName,
		slot:       slot,
		status:     status,
		channel:    channel,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Cancel rejects rows that are already cancelled or whose slot has passed.
func (r *Reservation) Cancel(now time.Time) error {
	if r.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if r.slot.IsPast(now) {
		return ErrPastReservation
	}
	r.status = StatusCancelled
	return nil
}

// Confirm moves a pending reservation to confirmed. Confirming twice is a
// no-op so payment webhooks can be retried.
func (r *Reservation) Confirm() error {
	switch r.status {
	case StatusConfirmed:
		return nil
	case StatusPending:
		r.status = StatusConfirmed
		return nil
	default:
		return ErrNotConfirmable
	}
}

// CancellableBy reports whether the given account may cancel this row.
// Unowned (anonymous guest) reservations are cancellable by any
// authenticated account; see the product note in DESIGN.md.
func (r *Reservation) CancellableBy(accountID uuid.UUID) bool {
	if r.accountID == nil {
		return true
	}
	return *r.accountID == accountID
}

// IsExpired reports whether a pending row no longer holds its slot: either
// the slot itself has passed or the hold is older than PendingTTL.
func (r *Reservation) IsExpired(now time.Time) bool {
	if r.status != StatusPending {
		return false
	}
	if r.slot.IsPast(now) {
		return true
	}
	return r.createdAt.Before(now.Add(-PendingTTL))
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) Code() string          { return r.code }
func (r *Reservation) FacilityID() uuid.UUID { return r.facilityID }
func (r *Reservation) AccountID() *uuid.UUID { return r.accountID }
func (r *Reservation) GuestName() string     { return r.guestName }
func (r *Reservation) Slot() Slot            { return r.slot }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) Channel() Channel      { return r.channel }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }
