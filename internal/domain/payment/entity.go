package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrMissingChargeID = errors.New("provider charge id is required")
)

// Payment is the local record of a provider charge. The provider owns the
// charge lifecycle; this row only mirrors its outcome.
type Payment struct {
	id               uuid.UUID
	reservationID    *uuid.UUID
	providerChargeID string
	amountCents      int64
	currency         string
	status           Status
	failureReason    string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewPayment(reservationID *uuid.UUID, providerChargeID string, amountCents int64, currency string) (*Payment, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if providerChargeID == "" {
		return nil, ErrMissingChargeID
	}

	return &Payment{
		id:               uuid.New(),
		reservationID:    reservationID,
		providerChargeID: providerChargeID,
		amountCents:      amountCents,
		currency:         currency,
		status:           StatusPending,
	}, nil
}

func (p *Payment) ID() uuid.UUID             { return p.id }
func (p *Payment) ReservationID() *uuid.UUID { return p.reservationID }
func (p *Payment) ProviderChargeID() string  { return p.providerChargeID }
func (p *Payment) AmountCents() int64        { return p.amountCents }
func (p *Payment) Currency() string          { return p.currency }
func (p *Payment) Status() Status            { return p.status }
func (p *Payment) FailureReason() string     { return p.failureReason }
func (p *Payment) CreatedAt() time.Time      { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time      { return p.updatedAt }
