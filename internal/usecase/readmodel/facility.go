package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type FacilityRM struct {
	ID         uuid.UUID
	Name       string
	Class      string
	Kind       string
	PriceCents int64
	ImageURL   *string
	IsActive   bool
	CreatedAt  time.Time
}
