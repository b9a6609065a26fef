package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// ReservationRM is the read model returned by reservation lookups; Day and
// Time carry the ISO forms ("2006-01-02", "15:04:05") used on the wire.
type ReservationRM struct {
	ID           uuid.UUID
	Code         string
	FacilityID   uuid.UUID
	FacilityName string
	AccountID    *uuid.UUID
	GuestName    *string
	Day          string
	Time         string
	Status       string
	Channel      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ReservationListRM struct {
	ID           uuid.UUID
	Code         string
	FacilityID   uuid.UUID
	FacilityName string
	Day          string
	Time         string
	Status       string
	CreatedAt    time.Time
}

// SlotReservationRM is the minimal row set the conflict checker locks and
// inspects inside the create transaction.
type SlotReservationRM struct {
	ID        uuid.UUID
	AccountID *uuid.UUID
	Status    string
	CreatedAt time.Time
}
