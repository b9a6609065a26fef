package usecase

import (
	"context"

	"courtdesk/internal/infra"
	"courtdesk/internal/pkg/errs"
	"courtdesk/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type FacilityUseCase interface {
	Get(ctx context.Context, id uuid.UUID) (*readmodel.FacilityRM, error)
	List(ctx context.Context) ([]*readmodel.FacilityRM, error)
}

type facilityUseCaseImpl struct {
	facilityRepo FacilityRepository
}

func NewFacilityUseCase(facilityRepo FacilityRepository) FacilityUseCase {
	return &facilityUseCaseImpl{facilityRepo: facilityRepo}
}

func (u *facilityUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.FacilityRM, error) {
	rm, err := u.facilityRepo.FindByID(ctx, nil, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFacilityNotFound
		}
		return nil, errs.Wrap(err, "failed to find facility")
	}
	if !rm.IsActive {
		return nil, ErrFacilityNotFound
	}

	return rm, nil
}

func (u *facilityUseCaseImpl) List(ctx context.Context) ([]*readmodel.FacilityRM, error) {
	rms, err := u.facilityRepo.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list facilities")
	}
	return rms, nil
}
