package response

import (
	"time"

	"courtdesk/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PaymentResponse struct {
	ID               uuid.UUID  `json:"id"`
	ReservationID    *uuid.UUID `json:"reservation_id,omitempty"`
	ProviderChargeID string     `json:"provider_charge_id"`
	AmountCents      int64      `json:"amount_cents"`
	Currency         string     `json:"currency"`
	Status           string     `json:"status"`
	FailureReason    *string    `json:"failure_reason,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func FromPaymentRM(rm *readmodel.PaymentRM) *PaymentResponse {
	var resp PaymentResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
