package response

import (
	"time"

	"courtdesk/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type FacilityResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Class      string    `json:"class"`
	Kind       string    `json:"kind"`
	PriceCents int64     `json:"price_cents"`
	ImageURL   *string   `json:"image_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromFacilityRM(rm *readmodel.FacilityRM) *FacilityResponse {
	var resp FacilityResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromFacilityRMs(rms []*readmodel.FacilityRM) []*FacilityResponse {
	resp := make([]*FacilityResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromFacilityRM(rm)
	}
	return resp
}
