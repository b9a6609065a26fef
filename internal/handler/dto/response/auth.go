package response

import (
	"time"

	"courtdesk/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AccountResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Role      string     `json:"role"`
	AvatarURL string     `json:"avatar_url"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string           `json:"access_token"`
	Account     *AccountResponse `json:"account"`
}

func FromAccountRM(rm *readmodel.AccountRM) *AccountResponse {
	var resp AccountResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
