// Package payment adapts the Omise SDK to the ChargeProvider boundary.
package payment

import (
	"context"
	"encoding/json"

	"courtdesk/internal/pkg/config"
	"courtdesk/internal/pkg/errs"
	"courtdesk/internal/usecase"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"
)

const eventKeyChargeComplete = "charge.complete"

type OmiseProvider struct {
	client *omise.Client
}

func NewOmiseProvider(cfg config.PaymentConfig) (*OmiseProvider, error) {
	client, err := omise.NewClient(cfg.PublicKey, cfg.SecretKey)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create omise client")
	}

	return &OmiseProvider{client: client}, nil
}

func (p *OmiseProvider) CreateCharge(_ context.Context, req usecase.ChargeRequest) (*usecase.ChargeResult, error) {
	charge := &omise.Charge{}
	op := &operations.CreateCharge{
		Amount:   req.AmountCents,
		Currency: req.Currency,
		Card:     req.CardToken,
		Metadata: map[string]any{"reservation_id": req.ReservationID.String()},
	}
	if req.Description != "" {
		op.Description = req.Description
	}

	if err := p.client.Do(charge, op); err != nil {
		return nil, errs.Wrap(err, "failed to create charge")
	}

	return &usecase.ChargeResult{
		ChargeID:      charge.ID,
		Paid:          string(charge.Status) == "successful",
		FailureReason: failureMessage(charge),
	}, nil
}

// VerifyEvent re-fetches the event from the provider API. Webhook payloads
// themselves are unauthenticated; only what the API returns for the event ID
// is trusted.
func (p *OmiseProvider) VerifyEvent(_ context.Context, eventID string) (*usecase.ChargeEvent, error) {
	event := &omise.Event{}
	if err := p.client.Do(event, &operations.RetrieveEvent{EventID: eventID}); err != nil {
		return nil, errs.Wrap(err, "failed to retrieve event")
	}

	if event.Key != eventKeyChargeComplete {
		return nil, errs.New("unsupported event key: " + event.Key)
	}

	// event.Data arrives untyped; round-trip through JSON to get a Charge.
	raw, err := json.Marshal(event.Data)
	if err != nil {
		return nil, errs.Wrap(err, "failed to marshal event data")
	}
	var charge omise.Charge
	if err := json.Unmarshal(raw, &charge); err != nil {
		return nil, errs.Wrap(err, "failed to unmarshal charge")
	}

	return &usecase.ChargeEvent{
		ChargeID:       charge.ID,
		Paid:           string(charge.Status) == "successful",
		FailureMessage: failureMessage(&charge),
	}, nil
}

func failureMessage(charge *omise.Charge) string {
	if charge.FailureMessage != nil && *charge.FailureMessage != "" {
		return *charge.FailureMessage
	}
	if charge.FailureCode != nil {
		return *charge.FailureCode
	}
	return ""
}

var _ usecase.ChargeProvider = (*OmiseProvider)(nil)
