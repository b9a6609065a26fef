package usecase

import (
	"context"
	"errors"
	"log/slog"

	"courtdesk/internal/domain/payment"
	"courtdesk/internal/domain/reservation"
	"courtdesk/internal/infra"
	"courtdesk/internal/infra/db"
	"courtdesk/internal/pkg/clock"
	"courtdesk/internal/pkg/errs"
	"courtdesk/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrDuplicateCharge       = errors.New("charge already recorded")
	ErrChargeFailed          = errors.New("charge creation failed")
	ErrEventVerifyFailed     = errors.New("event verification failed")
	ErrReservationNotPayable = errors.New("reservation is not awaiting payment")
)

// ChargeRequest is what the provider needs to create a charge. CardToken is
// the tokenized card from the client; raw card data never reaches this
// service.
type ChargeRequest struct {
	AmountCents   int64
	Currency      string
	CardToken     string
	Description   string
	ReservationID uuid.UUID
}

type ChargeResult struct {
	ChargeID      string
	Paid          bool
	FailureReason string
}

// ChargeEvent is a provider callback re-fetched from the provider API. Only
// events fetched this way are trusted; the webhook body itself is just a
// pointer.
type ChargeEvent struct {
	ChargeID       string
	Paid           bool
	FailureMessage string
}

type ChargeProvider interface {
	CreateCharge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
	VerifyEvent(ctx context.Context, eventID string) (*ChargeEvent, error)
}

type CreatePaymentInput struct {
	ReservationID uuid.UUID
	CardToken     string
}

type PaymentUseCase interface {
	Create(ctx context.Context, in CreatePaymentInput) (*readmodel.PaymentRM, error)
	// HandleProviderEvent processes a webhook delivery. Idempotent: repeated
	// deliveries of the same event are no-ops.
	HandleProviderEvent(ctx context.Context, eventID string) error
}

type paymentUseCaseImpl struct {
	paymentRepo     PaymentRepository
	reservationRepo ReservationRepository
	facilityRepo    FacilityRepository
	accountRepo     AccountRepository
	provider        ChargeProvider
	tx              TxManager
	mailer          Mailer
	clock           clock.Clock
	currency        string
}

func NewPaymentUseCase(
	paymentRepo PaymentRepository,
	reservationRepo ReservationRepository,
	facilityRepo FacilityRepository,
	accountRepo AccountRepository,
	provider ChargeProvider,
	tx TxManager,
	mailer Mailer,
	clock clock.Clock,
	currency string,
) PaymentUseCase {
	return &paymentUseCaseImpl{
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
		facilityRepo:    facilityRepo,
		accountRepo:     accountRepo,
		provider:        provider,
		tx:              tx,
		mailer:          mailer,
		clock:           clock,
		currency:        currency,
	}
}

func (u *paymentUseCaseImpl) Create(ctx context.Context, in CreatePaymentInput) (*readmodel.PaymentRM, error) {
	rm, err := u.reservationRepo.FindByID(ctx, nil, in.ReservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if reservation.Status(rm.Status) != reservation.StatusPending {
		return nil, ErrReservationNotPayable
	}

	facility, err := u.facilityRepo.FindByID(ctx, nil, rm.FacilityID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	result, err := u.provider.CreateCharge(ctx, ChargeRequest{
		AmountCents:   facility.PriceCents,
		Currency:      u.currency,
		CardToken:     in.CardToken,
		Description:   "Reservation " + rm.Code,
		ReservationID: rm.ID,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrChargeFailed)
	}

	entity, err := payment.NewPayment(&rm.ID, result.ChargeID, facility.PriceCents, u.currency)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	var (
		paymentRM *readmodel.PaymentRM
		confirmed bool
	)
	err = u.tx.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		paymentRM, err = u.paymentRepo.Create(ctx, tx, entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateCharge
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// Some charges settle synchronously; don't wait for the webhook then.
		if result.Paid {
			if err := u.settle(ctx, tx, result.ChargeID, &ChargeEvent{ChargeID: result.ChargeID, Paid: true}); err != nil {
				return err
			}
			confirmed, err = u.confirmReservation(ctx, tx, rm.ID, result.ChargeID)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Paid {
		paymentRM, err = u.paymentRepo.FindByChargeID(ctx, nil, result.ChargeID)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if confirmed {
			u.sendConfirmationMail(ctx, rm.ID)
		}
	}

	return paymentRM, nil
}

func (u *paymentUseCaseImpl) HandleProviderEvent(ctx context.Context, eventID string) error {
	event, err := u.provider.VerifyEvent(ctx, eventID)
	if err != nil {
		return errs.Mark(err, ErrEventVerifyFailed)
	}

	var confirmedReservation *uuid.UUID
	err = u.tx.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		id, err := u.settleLocked(ctx, tx, event)
		confirmedReservation = id
		return err
	})
	if err != nil {
		return err
	}

	if confirmedReservation != nil {
		u.sendConfirmationMail(ctx, *confirmedReservation)
	}

	return nil
}

// settleLocked flips the payment row for the event and, on success, confirms
// the linked reservation. Returns the confirmed reservation ID, if any.
func (u *paymentUseCaseImpl) settleLocked(ctx context.Context, tx db.DBTX, event *ChargeEvent) (*uuid.UUID, error) {
	rm, err := u.paymentRepo.FindByChargeID(ctx, tx, event.ChargeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if payment.Status(rm.Status).IsTerminal() {
		return nil, nil // already settled, repeated delivery
	}

	if err := u.settle(ctx, tx, event.ChargeID, event); err != nil {
		return nil, err
	}

	if event.Paid && rm.ReservationID != nil {
		confirmed, err := u.confirmReservation(ctx, tx, *rm.ReservationID, event.ChargeID)
		if err != nil {
			return nil, err
		}
		if confirmed {
			return rm.ReservationID, nil
		}
	}

	return nil, nil
}

func (u *paymentUseCaseImpl) settle(ctx context.Context, tx db.DBTX, chargeID string, event *ChargeEvent) error {
	status := payment.StatusFailed
	if event.Paid {
		status = payment.StatusCompleted
	}

	if err := u.paymentRepo.UpdateStatusByChargeID(ctx, tx, chargeID, status, event.FailureMessage); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// confirmReservation flips the linked reservation to confirmed after a
// successful charge. Losing the confirmed-slot index race or hitting a
// non-confirmable status keeps the charge recorded and flags the payment for
// the refund path instead of failing the settlement.
func (u *paymentUseCaseImpl) confirmReservation(ctx context.Context, tx db.DBTX, reservationID uuid.UUID, chargeID string) (bool, error) {
	rm, err := u.reservationRepo.FindByID(ctx, tx, reservationID)
	if err != nil {
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := reconstructFromRM(rm)
	if err != nil {
		return false, errs.Mark(err, ErrDomainValidationFailed)
	}
	if err := entity.Confirm(); err != nil {
		// A cancelled reservation stays cancelled; the payment outcome is
		// recorded either way and refunds are handled out of band.
		slog.Warn("payment completed for non-confirmable reservation",
			"reservation_id", reservationID, "status", rm.Status)
		return false, nil
	}

	if err := u.reservationRepo.UpdateStatus(ctx, tx, reservationID, entity.Status()); err != nil {
		if infra.IsConstraint(err, "reservations_slot_confirmed_key") {
			return false, u.flagForRefund(ctx, tx, chargeID, reservationID)
		}
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return true, nil
}

// flagForRefund records that the charge stands but the slot was confirmed for
// someone else. Settlement still succeeds so the provider stops redelivering.
func (u *paymentUseCaseImpl) flagForRefund(ctx context.Context, tx db.DBTX, chargeID string, reservationID uuid.UUID) error {
	slog.Warn("slot confirmed elsewhere after successful charge, flagging payment for refund",
		"reservation_id", reservationID, "charge_id", chargeID)
	err := u.paymentRepo.UpdateStatusByChargeID(ctx, tx, chargeID, payment.StatusCompleted,
		"slot no longer available, refund required")
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *paymentUseCaseImpl) sendConfirmationMail(ctx context.Context, reservationID uuid.UUID) {
	rm, err := u.reservationRepo.FindByID(ctx, nil, reservationID)
	if err != nil {
		slog.Error("failed to load reservation for confirmation mail", "reservation_id", reservationID, "error", err)
		return
	}
	if rm.AccountID == nil {
		return
	}

	acc, err := u.accountRepo.FindByID(ctx, nil, *rm.AccountID)
	if err != nil || acc.Email == "" {
		return
	}

	if err := u.mailer.SendReservationConfirmation(ctx, acc.Email, rm); err != nil {
		slog.Error("failed to send reservation confirmation mail", "reservation_id", rm.ID, "error", err)
	}
}
