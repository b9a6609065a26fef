package payment

import (
	"context"

	"courtdesk/internal/pkg/errs"
	"courtdesk/internal/usecase"
)

// DisabledProvider is wired when no provider keys are configured. Every call
// fails, so payment endpoints return errors instead of the app refusing to
// start.
type DisabledProvider struct{}

func NewDisabledProvider() *DisabledProvider {
	return &DisabledProvider{}
}

func (p *DisabledProvider) CreateCharge(_ context.Context, _ usecase.ChargeRequest) (*usecase.ChargeResult, error) {
	return nil, errs.New("payment provider is not configured")
}

func (p *DisabledProvider) VerifyEvent(_ context.Context, _ string) (*usecase.ChargeEvent, error) {
	return nil, errs.New("payment provider is not configured")
}

var _ usecase.ChargeProvider = (*DisabledProvider)(nil)
