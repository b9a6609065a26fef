package response

import (
	"time"

	"courtdesk/internal/usecase"
	"courtdesk/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID             uuid.UUID  `json:"id"`
	Code           string     `json:"code"`
	FacilityID     uuid.UUID  `json:"facility_id"`
	FacilityName   string     `json:"facility_name"`
	AccountID      *uuid.UUID `json:"account_id,omitempty"`
	GuestName      *string    `json:"guest_name,omitempty"`
	Day            string     `json:"date"`
	Time           string     `json:"time"`
	Status         string     `json:"status"`
	Channel        string     `json:"channel"`
	AccountCreated bool       `json:"account_created"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type ReservationListResponse struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	FacilityID   uuid.UUID `json:"facility_id"`
	FacilityName string    `json:"facility_name"`
	Day          string    `json:"date"`
	Time         string    `json:"time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromReservationRM(rm *readmodel.ReservationRM) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromCreateReservationResult(result *usecase.CreateReservationResult) *ReservationResponse {
	resp := FromReservationRM(result.Reservation)
	resp.AccountCreated = result.AccountCreated
	return resp
}

func FromReservationListRM(rms []*readmodel.ReservationListRM) []*ReservationListResponse {
	resp := make([]*ReservationListResponse, len(rms))
	for i, rm := range rms {
		var item ReservationListResponse
		_ = copier.Copy(&item, rm)
		resp[i] = &item
	}
	return resp
}
