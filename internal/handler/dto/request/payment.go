package request

import (
	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
	CardToken     string    `json:"card_token" binding:"required"`
}

// WebhookRequest carries only the event ID; the event body is re-fetched from
// the provider before anything is trusted.
type WebhookRequest struct {
	ID string `json:"id" binding:"required"`
}
