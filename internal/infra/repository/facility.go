package repository

import (
	"context"

	"courtdesk/internal/infra"
	"courtdesk/internal/infra/db"
	"courtdesk/internal/pkg/pgconv"
	"courtdesk/internal/usecase"
	"courtdesk/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FacilityRepository struct {
	pool *pgxpool.Pool
}

func NewFacilityRepository(pool *pgxpool.Pool) usecase.FacilityRepository {
	return &FacilityRepository{pool: pool}
}

func (r *FacilityRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*readmodel.FacilityRM, error) {
	if dbtx == nil {
		dbtx = r.pool
	}

	const query = `
		SELECT id, name, class, kind, price_cents, image_url, is_active, created_at
		FROM facilities
		WHERE id = $1`

	rm, err := scanFacilityRM(dbtx.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("facility not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find facility by ID", err, infra.KindDBFailure)
	}

	return rm, nil
}

func (r *FacilityRepository) List(ctx context.Context) ([]*readmodel.FacilityRM, error) {
	const query = `
		SELECT id, name, class, kind, price_cents, image_url, is_active, created_at
		FROM facilities
		WHERE is_active
		ORDER BY class ASC, name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list facilities", err, infra.KindDBFailure)
	}
	defer rows.Close()

	var result []*readmodel.FacilityRM
	for rows.Next() {
		rm, err := scanFacilityRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan facility row", err, infra.KindDBFailure)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate facility rows", err, infra.KindDBFailure)
	}

	return result, nil
}

func scanFacilityRM(row rowScanner) (*readmodel.FacilityRM, error) {
	var (
		rm        readmodel.FacilityRM
		imageURL  pgtype.Text
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(&rm.ID, &rm.Name, &rm.Class, &rm.Kind, &rm.PriceCents, &imageURL, &rm.IsActive, &createdAt)
	if err != nil {
		return nil, err
	}

	rm.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &rm, nil
}
