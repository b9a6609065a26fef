package repository

import (
	"context"

	"courtdesk/internal/domain/payment"
	"courtdesk/internal/infra"
	"courtdesk/internal/infra/db"
	"courtdesk/internal/pkg/pgconv"
	"courtdesk/internal/usecase"
	"courtdesk/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) usecase.PaymentRepository {
	return &PaymentRepository{pool: pool}
}

const paymentColumns = `id, reservation_id, provider_charge_id, amount_cents, currency, status, failure_reason, created_at, updated_at`

func (r *PaymentRepository) Create(ctx context.Context, dbtx db.DBTX, p *payment.Payment) (*readmodel.PaymentRM, error) {
	if dbtx == nil {
		dbtx = r.pool
	}

	query := `
		INSERT INTO payments (id, reservation_id, provider_charge_id, amount_cents, currency, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + paymentColumns

	rm, err := scanPaymentRM(dbtx.QueryRow(ctx, query,
		p.ID(),
		pgconv.UUIDPtrToPgtype(p.ReservationID()),
		p.ProviderChargeID(),
		p.AmountCents(),
		p.Currency(),
		p.Status().String(),
	))
	if err != nil {
		return nil, infra.MapPgError("failed to insert payment", err)
	}

	return rm, nil
}

func (r *PaymentRepository) FindByChargeID(ctx context.Context, tx db.DBTX, chargeID string) (*readmodel.PaymentRM, error) {
	if tx == nil {
		tx = r.pool
	}

	// Locked so concurrent webhook deliveries for the same charge serialize.
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE provider_charge_id = $1 FOR UPDATE`

	rm, err := scanPaymentRM(tx.QueryRow(ctx, query, chargeID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by charge ID", err, infra.KindDBFailure)
	}

	return rm, nil
}

func (r *PaymentRepository) UpdateStatusByChargeID(ctx context.Context, tx db.DBTX, chargeID string, status payment.Status, failureReason string) error {
	if tx == nil {
		tx = r.pool
	}

	const query = `
		UPDATE payments
		SET status = $2, failure_reason = $3, updated_at = now()
		WHERE provider_charge_id = $1`

	tag, err := tx.Exec(ctx, query, chargeID, status.String(), pgconv.NonEmptyStringToPgtype(failureReason))
	if err != nil {
		return infra.MapPgError("failed to update payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}

	return nil
}

func scanPaymentRM(row rowScanner) (*readmodel.PaymentRM, error) {
	var (
		rm            readmodel.PaymentRM
		reservationID pgtype.UUID
		failureReason pgtype.Text
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)

	err := row.Scan(&rm.ID, &reservationID, &rm.ProviderChargeID, &rm.AmountCents, &rm.Currency,
		&rm.Status, &failureReason, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	rm.ReservationID = pgconv.UUIDPtrFromPgtype(reservationID)
	rm.FailureReason = pgconv.StringPtrFromPgtype(failureReason)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &rm, nil
}
