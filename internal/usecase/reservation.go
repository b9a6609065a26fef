package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"courtdesk/internal/domain/reservation"
	"courtdesk/internal/infra"
	"courtdesk/internal/infra/db"
	"courtdesk/internal/pkg/clock"
	"courtdesk/internal/pkg/errs"
	"courtdesk/internal/pkg/rescode"
	"courtdesk/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrFacilityNotFound     = errors.New("facility not found")
	ErrSlotTaken            = errors.New("slot is already booked")
	ErrDuplicateReservation = errors.New("slot already requested by this account")
	ErrDailyLimitReached    = errors.New("daily reservation limit reached")
	ErrCancelForbidden      = errors.New("reservation belongs to another account")
	ErrInvalidSlot          = errors.New("invalid slot")
	ErrGuestResolveFailed   = errors.New("failed to resolve guest contact")

	// Error markers for categorization
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

const codeRetryAttempts = 3

// CreateReservationInput carries a booking request. AccountID is the
// authenticated requester; Guest carries contact details for guest bookings.
// Both may be set when an authenticated user books with extra contact info;
// the account wins.
type CreateReservationInput struct {
	FacilityID uuid.UUID
	Day        string
	Time       string
	Channel    string
	AccountID  *uuid.UUID
	Guest      Contact
}

type CreateReservationResult struct {
	Reservation *readmodel.ReservationRM
	// AccountCreated is true when a guest account was provisioned as a side
	// effect of this booking.
	AccountCreated bool
}

type ReservationUseCase interface {
	Create(ctx context.Context, in CreateReservationInput) (*CreateReservationResult, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	Cancel(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) (*readmodel.ReservationRM, error)
	ListUpcoming(ctx context.Context, accountID uuid.UUID) ([]*readmodel.ReservationListRM, error)
	ListHistory(ctx context.Context, accountID uuid.UUID, limit, offset int32) ([]*readmodel.ReservationListRM, error)
	ListByFacilityDay(ctx context.Context, facilityID uuid.UUID, day string) ([]*readmodel.ReservationListRM, error)
}

type reservationUseCaseImpl struct {
	reservationRepo ReservationRepository
	facilityRepo    FacilityRepository
	provisioner     AccountProvisioner
	tx              TxManager
	mailer          Mailer
	clock           clock.Clock
}

func NewReservationUseCase(
	reservationRepo ReservationRepository,
	facilityRepo FacilityRepository,
	provisioner AccountProvisioner,
	tx TxManager,
	mailer Mailer,
	clock clock.Clock,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		reservationRepo: reservationRepo,
		facilityRepo:    facilityRepo,
		provisioner:     provisioner,
		tx:              tx,
		mailer:          mailer,
		clock:           clock,
	}
}

func (u *reservationUseCaseImpl) Create(ctx context.Context, in CreateReservationInput) (*CreateReservationResult, error) {
	now := u.clock.Now().UTC()

	slot, err := reservation.NewSlot(in.Day, in.Time)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSlot)
	}

	channel := reservation.Channel(in.Channel)
	if in.Channel == "" {
		channel = reservation.ChannelClient
	}
	if !channel.IsValid() {
		return nil, errs.Mark(reservation.ErrInvalidChannel, ErrDomainValidationFailed)
	}

	if err := u.checkFacility(ctx, in.FacilityID); err != nil {
		return nil, err
	}

	var (
		reservationID  uuid.UUID
		provisioned    *ProvisionedAccount
		accountCreated bool
	)

	err = u.tx.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		// The cap applies to the authenticated requester. Guest contacts are
		// resolved only after the cap and conflict checks pass, so a
		// provisioned account is never capped on the booking that creates it.
		if channel == reservation.ChannelClient && in.AccountID != nil {
			count, err := u.reservationRepo.CountLiveOnDay(ctx, tx, *in.AccountID, slot.Day(), now)
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			if count >= reservation.MaxPerDayPerAccount {
				return ErrDailyLimitReached
			}
		}

		if err := u.checkSlotFree(ctx, tx, in.FacilityID, slot, in.AccountID, now); err != nil {
			return err
		}

		accountID := in.AccountID
		if accountID == nil {
			provisioned, err = u.provisioner.Resolve(ctx, tx, in.Guest)
			if err != nil {
				if errors.Is(err, ErrInvalidGuestEmail) || errors.Is(err, ErrInvalidGuestPhone) {
					return err
				}
				return errs.Mark(err, ErrGuestResolveFailed)
			}
			if provisioned != nil {
				accountID = &provisioned.Account.ID
				accountCreated = provisioned.Created
			}
		}

		reservationID, err = u.insertWithFreshCode(ctx, tx, in.FacilityID, accountID, in.Guest.Name, slot, channel, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	rm, err := u.reservationRepo.FindByID(ctx, nil, reservationID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.sendCreateMails(ctx, rm, provisioned)

	return &CreateReservationResult{Reservation: rm, AccountCreated: accountCreated}, nil
}

func (u *reservationUseCaseImpl) checkFacility(ctx context.Context, facilityID uuid.UUID) error {
	facility, err := u.facilityRepo.FindByID(ctx, nil, facilityID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrFacilityNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	// Inactive facilities are not bookable and not distinguished from
	// missing ones.
	if !facility.IsActive {
		return ErrFacilityNotFound
	}
	return nil
}

// checkSlotFree locks the slot's rows and rejects when a confirmed row or a
// live pending hold exists. A live hold by the requester maps to a duplicate
// error instead of a plain conflict.
func (u *reservationUseCaseImpl) checkSlotFree(
	ctx context.Context,
	tx db.DBTX,
	facilityID uuid.UUID,
	slot reservation.Slot,
	accountID *uuid.UUID,
	now time.Time,
) error {
	rows, err := u.reservationRepo.FindForSlot(ctx, tx, facilityID, slot)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	cutoff := now.Add(-reservation.PendingTTL)
	for _, row := range rows {
		switch reservation.Status(row.Status) {
		case reservation.StatusConfirmed:
			return ErrSlotTaken
		case reservation.StatusPending:
			if slot.IsPast(now) || row.CreatedAt.Before(cutoff) {
				continue // expired hold, sweeper will remove it
			}
			if accountID != nil && row.AccountID != nil && *row.AccountID == *accountID {
				return ErrDuplicateReservation
			}
			return ErrSlotTaken
		}
	}

	return nil
}

// insertWithFreshCode inserts the reservation, regenerating the code on the
// rare collision with an existing one. A violation of the confirmed-slot
// index means another transaction won the slot.
func (u *reservationUseCaseImpl) insertWithFreshCode(
	ctx context.Context,
	tx db.DBTX,
	facilityID uuid.UUID,
	accountID *uuid.UUID,
	guestName string,
	slot reservation.Slot,
	channel reservation.Channel,
	now time.Time,
) (uuid.UUID, error) {
	for attempt := 0; attempt < codeRetryAttempts; attempt++ {
		code, err := rescode.New(slot.Day())
		if err != nil {
			return uuid.Nil, errs.Wrap(err, "failed to generate reservation code")
		}

		entity, err := reservation.NewReservation(code, facilityID, accountID, guestName, slot, channel, now)
		if err != nil {
			return uuid.Nil, errs.Mark(err, ErrDomainValidationFailed)
		}

		id, err := u.reservationRepo.Create(ctx, tx, entity)
		if err == nil {
			return id, nil
		}
		if infra.IsConstraint(err, "reservations_code_key") {
			slog.Warn("reservation code collision, regenerating", "code", code)
			continue
		}
		if infra.IsConstraint(err, "reservations_slot_confirmed_key") {
			return uuid.Nil, ErrSlotTaken
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return uuid.Nil, errs.New("failed to generate a unique reservation code")
}

// Mail failures are logged and swallowed: the reservation exists regardless.
func (u *reservationUseCaseImpl) sendCreateMails(ctx context.Context, rm *readmodel.ReservationRM, provisioned *ProvisionedAccount) {
	if provisioned == nil || provisioned.Account == nil || provisioned.Account.Email == "" {
		return
	}
	email := provisioned.Account.Email

	if provisioned.Created {
		if err := u.mailer.SendGuestWelcome(ctx, email, provisioned.Account.Name, provisioned.RawPassword); err != nil {
			slog.Error("failed to send guest welcome mail", "account_id", provisioned.Account.ID, "error", err)
		}
	}

	if err := u.mailer.SendReservationConfirmation(ctx, email, rm); err != nil {
		slog.Error("failed to send reservation confirmation mail", "reservation_id", rm.ID, "error", err)
	}
}

func (u *reservationUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	rm, err := u.reservationRepo.FindByID(ctx, nil, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}

	return rm, nil
}

func (u *reservationUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID, requesterID uuid.UUID) (*readmodel.ReservationRM, error) {
	now := u.clock.Now().UTC()

	err := u.tx.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		rm, err := u.reservationRepo.FindByID(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity, err := reconstructFromRM(rm)
		if err != nil {
			return errs.Mark(err, ErrDomainValidationFailed)
		}

		if !entity.CancellableBy(requesterID) {
			return ErrCancelForbidden
		}
		if err := entity.Cancel(now); err != nil {
			return errs.Mark(err, ErrDomainValidationFailed)
		}

		if err := u.reservationRepo.UpdateStatus(ctx, tx, id, entity.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rm, err := u.reservationRepo.FindByID(ctx, nil, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *reservationUseCaseImpl) ListUpcoming(ctx context.Context, accountID uuid.UUID) ([]*readmodel.ReservationListRM, error) {
	rms, err := u.reservationRepo.FindUpcoming(ctx, accountID, u.clock.Now().UTC())
	if err != nil {
		return nil, errs.Wrap(err, "failed to list upcoming reservations")
	}
	return rms, nil
}

func (u *reservationUseCaseImpl) ListHistory(ctx context.Context, accountID uuid.UUID, limit, offset int32) ([]*readmodel.ReservationListRM, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rms, err := u.reservationRepo.FindHistory(ctx, accountID, u.clock.Now().UTC(), limit, offset)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservation history")
	}
	return rms, nil
}

func (u *reservationUseCaseImpl) ListByFacilityDay(ctx context.Context, facilityID uuid.UUID, day string) ([]*readmodel.ReservationListRM, error) {
	d, err := time.ParseInLocation(time.DateOnly, day, time.UTC)
	if err != nil {
		return nil, errs.Mark(reservation.ErrInvalidDay, ErrInvalidSlot)
	}

	if err := u.checkFacility(ctx, facilityID); err != nil {
		return nil, err
	}

	rms, err := u.reservationRepo.FindByFacilityDay(ctx, facilityID, d, u.clock.Now().UTC())
	if err != nil {
		return nil, errs.Wrap(err, "failed to list facility reservations")
	}
	return rms, nil
}

func reconstructFromRM(rm *readmodel.ReservationRM) (*reservation.Reservation, error) {
	slot, err := reservation.NewSlot(rm.Day, rm.Time)
	if err != nil {
		return nil, err
	}

	guestName := ""
	if rm.GuestName != nil {
		guestName = *rm.GuestName
	}

	return reservation.Reconstruct(
		rm.ID,
		rm.Code,
		rm.FacilityID,
		rm.AccountID,
		guestName,
		slot,
		reservation.Status(rm.Status),
		reservation.Channel(rm.Channel),
		rm.CreatedAt,
		rm.UpdatedAt,
	), nil
}
