package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type PaymentRM struct {
	ID               uuid.UUID
	ReservationID    *uuid.UUID
	ProviderChargeID string
	AmountCents      int64
	Currency         string
	Status           string
	FailureReason    *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
