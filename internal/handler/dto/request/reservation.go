package request

import (
	"strings"

	"courtdesk/internal/usecase"

	"github.com/google/uuid"
)

// CreateReservationRequest is the booking payload. Day and Time name one
// discrete slot; Name/Email/Phone are guest contact details and ignored for
// authenticated requests.
type CreateReservationRequest struct {
	FacilityID uuid.UUID `json:"facility_id" binding:"required"`
	Day        string    `json:"date" binding:"required"`
	Time       string    `json:"time" binding:"required"`
	Channel    string    `json:"channel,omitempty" binding:"omitempty,oneof=client admin"`
	Name       string    `json:"name,omitempty"`
	Email      string    `json:"email,omitempty" binding:"omitempty,email"`
	Phone      string    `json:"phone,omitempty"`
}

func (r CreateReservationRequest) ToInput(accountID *uuid.UUID) usecase.CreateReservationInput {
	return usecase.CreateReservationInput{
		FacilityID: r.FacilityID,
		Day:        strings.TrimSpace(r.Day),
		Time:       strings.TrimSpace(r.Time),
		Channel:    r.Channel,
		AccountID:  accountID,
		Guest: usecase.Contact{
			Name:  strings.TrimSpace(r.Name),
			Email: strings.TrimSpace(r.Email),
			Phone: strings.TrimSpace(r.Phone),
		},
	}
}

type ListHistoryRequest struct {
	Limit  int32 `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int32 `form:"offset,default=0" binding:"omitempty,min=0"`
}

type ListByFacilityDayRequest struct {
	FacilityID uuid.UUID `form:"facility_id" binding:"required"`
	Day        string    `form:"day" binding:"required"`
}
