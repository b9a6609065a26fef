package usecase

import (
	"context"
	"time"

	"courtdesk/internal/domain/account"
	"courtdesk/internal/domain/payment"
	"courtdesk/internal/domain/reservation"
	"courtdesk/internal/infra/db"
	"courtdesk/internal/usecase/readmodel"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=mock/ports.go -package=usecasemock

// TxManager runs a function inside a ReadCommitted transaction, retrying on
// serialization failures and deadlocks.
type TxManager interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *reservation.Reservation) (uuid.UUID, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*readmodel.ReservationRM, error)
	// FindForSlot locks and returns the non-cancelled rows at a slot.
	FindForSlot(ctx context.Context, tx db.DBTX, facilityID uuid.UUID, slot reservation.Slot) ([]*readmodel.SlotReservationRM, error)
	// CountLiveOnDay counts an account's confirmed plus still-live pending
	// reservations on a day, for the daily cap.
	CountLiveOnDay(ctx context.Context, tx db.DBTX, accountID uuid.UUID, day time.Time, now time.Time) (int64, error)
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status reservation.Status) error
	FindUpcoming(ctx context.Context, accountID uuid.UUID, now time.Time) ([]*readmodel.ReservationListRM, error)
	FindHistory(ctx context.Context, accountID uuid.UUID, now time.Time, limit, offset int32) ([]*readmodel.ReservationListRM, error)
	FindByFacilityDay(ctx context.Context, facilityID uuid.UUID, day time.Time, now time.Time) ([]*readmodel.ReservationListRM, error)
	// DeleteExpiredPending removes pending rows whose slot has passed or that
	// are older than the TTL. Called by the background sweeper only.
	DeleteExpiredPending(ctx context.Context, now time.Time, ttl time.Duration) (int64, error)
}

type FacilityRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*readmodel.FacilityRM, error)
	List(ctx context.Context) ([]*readmodel.FacilityRM, error)
}

type AccountRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*readmodel.AccountRM, error)
	// FindAuthByEmail also returns the stored password hash.
	FindAuthByEmail(ctx context.Context, email string) (*readmodel.AccountRM, string, error)
	FindByEmailOrPhone(ctx context.Context, tx db.DBTX, email, phone string) (*readmodel.AccountRM, error)
	Create(ctx context.Context, tx db.DBTX, acc *account.Account) (*readmodel.AccountRM, error)
	UpdateContact(ctx context.Context, tx db.DBTX, id uuid.UUID, name, phone string) error
	UpdateLastLogin(ctx context.Context, accountID uuid.UUID) error
}

type PaymentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p *payment.Payment) (*readmodel.PaymentRM, error)
	FindByChargeID(ctx context.Context, tx db.DBTX, chargeID string) (*readmodel.PaymentRM, error)
	UpdateStatusByChargeID(ctx context.Context, tx db.DBTX, chargeID string, status payment.Status, failureReason string) error
}

// Mailer is the notification dispatcher boundary: at-most-once, best-effort.
// Callers log failures and move on; delivery is never guaranteed.
type Mailer interface {
	SendGuestWelcome(ctx context.Context, email, name, rawPassword string) error
	SendReservationConfirmation(ctx context.Context, email string, rm *readmodel.ReservationRM) error
}
