package repository

import (
	"context"

	"courtdesk/internal/domain/account"
	"courtdesk/internal/infra"
	"courtdesk/internal/infra/db"
	"courtdesk/internal/pkg/pgconv"
	"courtdesk/internal/usecase"
	"courtdesk/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) usecase.AccountRepository {
	return &AccountRepository{pool: pool}
}

const accountColumns = `id, name, email, phone, role, avatar_url, is_active, last_login, created_at`

func (r *AccountRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*readmodel.AccountRM, error) {
	if dbtx == nil {
		dbtx = r.pool
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	rm, err := scanAccountRM(dbtx.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find account by ID", err, infra.KindDBFailure)
	}

	return rm, nil
}

func (r *AccountRepository) FindAuthByEmail(ctx context.Context, email string) (*readmodel.AccountRM, string, error) {
	const query = `
		SELECT id, name, email, phone, role, avatar_url, is_active, last_login, created_at, password_hash
		FROM accounts
		WHERE email = $1`

	var (
		rm           readmodel.AccountRM
		emailCol     pgtype.Text
		phone        pgtype.Text
		lastLogin    pgtype.Timestamptz
		createdAt    pgtype.Timestamptz
		passwordHash string
	)
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&rm.ID, &rm.Name, &emailCol, &phone, &rm.Role, &rm.AvatarURL, &rm.IsActive,
		&lastLogin, &createdAt, &passwordHash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find account by email", err, infra.KindDBFailure)
	}

	if emailCol.Valid {
		rm.Email = emailCol.String
	}
	rm.Phone = pgconv.StringPtrFromPgtype(phone)
	rm.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &rm, passwordHash, nil
}

// FindByEmailOrPhone resolves a guest contact: email match wins over phone
// match, and empty values never match anything.
func (r *AccountRepository) FindByEmailOrPhone(ctx context.Context, tx db.DBTX, email, phone string) (*readmodel.AccountRM, error) {
	if tx == nil {
		tx = r.pool
	}

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE (($1 <> '' AND email = $1) OR ($2 <> '' AND phone = $2))
		ORDER BY (email = $1) DESC NULLS LAST, created_at ASC
		LIMIT 1`

	rm, err := scanAccountRM(tx.QueryRow(ctx, query, email, phone))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find account by contact", err, infra.KindDBFailure)
	}

	return rm, nil
}

func (r *AccountRepository) Create(ctx context.Context, tx db.DBTX, acc *account.Account) (*readmodel.AccountRM, error) {
	if tx == nil {
		tx = r.pool
	}

	query := `
		INSERT INTO accounts (id, name, email, phone, password_hash, role, avatar_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + accountColumns

	rm, err := scanAccountRM(tx.QueryRow(ctx, query,
		acc.ID(),
		acc.Name(),
		pgconv.NonEmptyStringToPgtype(acc.Email().Value()),
		pgconv.NonEmptyStringToPgtype(acc.Phone()),
		acc.PasswordHash(),
		acc.Role().String(),
		acc.AvatarURL(),
		acc.IsActive(),
	))
	if err != nil {
		return nil, infra.MapPgError("failed to insert account", err)
	}

	return rm, nil
}

// UpdateContact refreshes the mutable contact fields on an existing account.
// Email is identity and is never overwritten here.
func (r *AccountRepository) UpdateContact(ctx context.Context, tx db.DBTX, id uuid.UUID, name, phone string) error {
	if tx == nil {
		tx = r.pool
	}

	const query = `
		UPDATE accounts
		SET name = CASE WHEN $2 <> '' THEN $2 ELSE name END,
		    phone = CASE WHEN $3 <> '' THEN $3 ELSE phone END,
		    updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, name, phone)
	if err != nil {
		return infra.MapPgError("failed to update account contact", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("account not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *AccountRepository) UpdateLastLogin(ctx context.Context, accountID uuid.UUID) error {
	const query = `UPDATE accounts SET last_login = now(), updated_at = now() WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, accountID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err, infra.KindDBFailure)
	}

	return nil
}

func scanAccountRM(row rowScanner) (*readmodel.AccountRM, error) {
	var (
		rm        readmodel.AccountRM
		email     pgtype.Text
		phone     pgtype.Text
		lastLogin pgtype.Timestamptz
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(&rm.ID, &rm.Name, &email, &phone, &rm.Role, &rm.AvatarURL, &rm.IsActive, &lastLogin, &createdAt)
	if err != nil {
		return nil, err
	}

	if email.Valid {
		rm.Email = email.String
	}
	rm.Phone = pgconv.StringPtrFromPgtype(phone)
	rm.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	return &rm, nil
}
