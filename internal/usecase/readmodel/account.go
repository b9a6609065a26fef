package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type AccountRM struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     *string
	Role      string
	AvatarURL string
	IsActive  bool
	LastLogin *time.Time
	CreatedAt time.Time
}
