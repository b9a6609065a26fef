package repository

import (
	"context"
	"time"

	"courtdesk/internal/domain/reservation"
	"courtdesk/internal/infra"
	"courtdesk/internal/infra/db"
	"courtdesk/internal/pkg/pgconv"
	"courtdesk/internal/usecase"
	"courtdesk/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) usecase.ReservationRepository {
	return &ReservationRepository{pool: pool}
}

// Reads filter out stale pending holds (slot passed, or older than the TTL)
// instead of waiting for the sweeper to delete them. `day + slot_time` is a
// naive timestamp; all slot instants are UTC, so comparisons use naive UTC
// parameters.

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	const query = `
		INSERT INTO reservations (id, code, facility_id, account_id, guest_name, day, slot_time, status, channel)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		res.ID(),
		res.Code(),
		res.FacilityID(),
		pgconv.UUIDPtrToPgtype(res.AccountID()),
		pgconv.NonEmptyStringToPgtype(res.GuestName()),
		pgconv.DayToPgtype(res.Slot().Day()),
		pgconv.TimeOfDayToPgtype(res.Slot().TimeOfDay()),
		res.Status().String(),
		res.Channel().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.MapPgError("failed to insert reservation", err)
	}

	return id, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*readmodel.ReservationRM, error) {
	if dbtx == nil {
		dbtx = r.pool
	}

	const query = `
		SELECT r.id, r.code, r.facility_id, f.name, r.account_id, r.guest_name,
		       r.day, r.slot_time, r.status, r.channel, r.created_at, r.updated_at
		FROM reservations r
		JOIN facilities f ON f.id = r.facility_id
		WHERE r.id = $1`

	row := dbtx.QueryRow(ctx, query, id)
	rm, err := scanReservationRM(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err, infra.KindDBFailure)
	}

	return rm, nil
}

func (r *ReservationRepository) FindForSlot(ctx context.Context, tx db.DBTX, facilityID uuid.UUID, slot reservation.Slot) ([]*readmodel.SlotReservationRM, error) {
	// FOR UPDATE serializes concurrent bookings of the same slot within the
	// create transaction; the partial unique index is the backstop.
	const query = `
		SELECT id, account_id, status, created_at
		FROM reservations
		WHERE facility_id = $1 AND day = $2 AND slot_time = $3 AND status <> 'cancelled'
		FOR UPDATE`

	rows, err := tx.Query(ctx, query,
		facilityID,
		pgconv.DayToPgtype(slot.Day()),
		pgconv.TimeOfDayToPgtype(slot.TimeOfDay()),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations for slot", err, infra.KindDBFailure)
	}
	defer rows.Close()

	var result []*readmodel.SlotReservationRM
	for rows.Next() {
		var (
			rm        readmodel.SlotReservationRM
			accountID pgtype.UUID
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&rm.ID, &accountID, &rm.Status, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot reservation", err, infra.KindDBFailure)
		}
		rm.AccountID = pgconv.UUIDPtrFromPgtype(accountID)
		rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot reservations", err, infra.KindDBFailure)
	}

	return result, nil
}

const countLiveOnDayQuery = `
	SELECT count(*)
	FROM reservations
	WHERE account_id = $1 AND day = $2
	  AND status <> 'cancelled'
	  AND NOT (status = 'pending' AND ((day + slot_time) <= $3 OR created_at <= $4))`

func (r *ReservationRepository) CountLiveOnDay(ctx context.Context, tx db.DBTX, accountID uuid.UUID, day time.Time, now time.Time) (int64, error) {
	var count int64
	err := tx.QueryRow(ctx, countLiveOnDayQuery,
		accountID,
		pgconv.DayToPgtype(day),
		pgconv.NaiveTimeToPgtype(now),
		pgconv.TimeToPgtype(now.Add(-reservation.PendingTTL)),
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count reservations for day", err, infra.KindDBFailure)
	}

	return count, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status reservation.Status) error {
	if dbtx == nil {
		dbtx = r.pool
	}

	const query = `
		UPDATE reservations
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.MapPgError("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

const findUpcomingQuery = `
	SELECT r.id, r.code, r.facility_id, f.name, r.day, r.slot_time, r.status, r.created_at
	FROM reservations r
	JOIN facilities f ON f.id = r.facility_id
	WHERE (r.account_id = $1 OR r.account_id IS NULL)
	  AND (r.day + r.slot_time) > $2
	  AND r.status <> 'cancelled'
	  AND NOT (r.status = 'pending' AND r.created_at <= $3)
	ORDER BY r.day ASC, r.slot_time ASC`

func (r *ReservationRepository) FindUpcoming(ctx context.Context, accountID uuid.UUID, now time.Time) ([]*readmodel.ReservationListRM, error) {
	rows, err := r.pool.Query(ctx, findUpcomingQuery,
		accountID,
		pgconv.NaiveTimeToPgtype(now),
		pgconv.TimeToPgtype(now.Add(-reservation.PendingTTL)),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find upcoming reservations", err, infra.KindDBFailure)
	}
	defer rows.Close()

	return scanReservationList(rows)
}

// A pending row can only reach the past by expiring, so history never shows
// pendings.
const findHistoryQuery = `
	SELECT r.id, r.code, r.facility_id, f.name, r.day, r.slot_time, r.status, r.created_at
	FROM reservations r
	JOIN facilities f ON f.id = r.facility_id
	WHERE r.account_id = $1
	  AND ((r.day + r.slot_time) <= $2 OR r.status = 'cancelled')
	  AND r.status <> 'pending'
	ORDER BY r.day DESC, r.slot_time DESC
	LIMIT $3 OFFSET $4`

func (r *ReservationRepository) FindHistory(ctx context.Context, accountID uuid.UUID, now time.Time, limit, offset int32) ([]*readmodel.ReservationListRM, error) {
	rows, err := r.pool.Query(ctx, findHistoryQuery, accountID, pgconv.NaiveTimeToPgtype(now), limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation history", err, infra.KindDBFailure)
	}
	defer rows.Close()

	return scanReservationList(rows)
}

const findByFacilityDayQuery = `
	SELECT r.id, r.code, r.facility_id, f.name, r.day, r.slot_time, r.status, r.created_at
	FROM reservations r
	JOIN facilities f ON f.id = r.facility_id
	WHERE r.facility_id = $1 AND r.day = $2
	  AND r.status <> 'cancelled'
	  AND NOT (r.status = 'pending' AND ((r.day + r.slot_time) <= $3 OR r.created_at <= $4))
	ORDER BY r.slot_time ASC`

func (r *ReservationRepository) FindByFacilityDay(ctx context.Context, facilityID uuid.UUID, day time.Time, now time.Time) ([]*readmodel.ReservationListRM, error) {
	rows, err := r.pool.Query(ctx, findByFacilityDayQuery,
		facilityID,
		pgconv.DayToPgtype(day),
		pgconv.NaiveTimeToPgtype(now),
		pgconv.TimeToPgtype(now.Add(-reservation.PendingTTL)),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations for facility", err, infra.KindDBFailure)
	}
	defer rows.Close()

	return scanReservationList(rows)
}

func (r *ReservationRepository) DeleteExpiredPending(ctx context.Context, now time.Time, ttl time.Duration) (int64, error) {
	const query = `
		DELETE FROM reservations
		WHERE status = 'pending'
		  AND ((day + slot_time) < $1 OR created_at < $2)`

	tag, err := r.pool.Exec(ctx, query,
		pgconv.NaiveTimeToPgtype(now),
		pgconv.TimeToPgtype(now.Add(-ttl)),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired pending reservations", err, infra.KindDBFailure)
	}

	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationRM(row rowScanner) (*readmodel.ReservationRM, error) {
	var (
		rm        readmodel.ReservationRM
		accountID pgtype.UUID
		guestName pgtype.Text
		day       pgtype.Date
		slotTime  pgtype.Time
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&rm.ID, &rm.Code, &rm.FacilityID, &rm.FacilityName, &accountID, &guestName,
		&day, &slotTime, &rm.Status, &rm.Channel, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	rm.AccountID = pgconv.UUIDPtrFromPgtype(accountID)
	rm.GuestName = pgconv.StringPtrFromPgtype(guestName)
	rm.Day = pgconv.DayFromPgtype(day)
	rm.Time = pgconv.TimeOfDayFromPgtype(slotTime)
	rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rm.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	return &rm, nil
}

type rowsIter interface {
	Next() bool
	Err() error
	Scan(dest ...any) error
}

func scanReservationList(rows rowsIter) ([]*readmodel.ReservationListRM, error) {
	var result []*readmodel.ReservationListRM
	for rows.Next() {
		var (
			rm        readmodel.ReservationListRM
			day       pgtype.Date
			slotTime  pgtype.Time
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&rm.ID, &rm.Code, &rm.FacilityID, &rm.FacilityName, &day, &slotTime, &rm.Status, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err, infra.KindDBFailure)
		}
		rm.Day = pgconv.DayFromPgtype(day)
		rm.Time = pgconv.TimeOfDayFromPgtype(slotTime)
		rm.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err, infra.KindDBFailure)
	}

	return result, nil
}
