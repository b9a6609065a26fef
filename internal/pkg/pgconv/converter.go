package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	return &pt.Time
}

// DayFromPgtype renders a DATE column as ISO "2006-01-02".
func DayFromPgtype(pd pgtype.Date) string {
	if !pd.Valid {
		return ""
	}
	return pd.Time.Format(time.DateOnly)
}

// TimeOfDayFromPgtype renders a TIME column as "15:04:05".
func TimeOfDayFromPgtype(pt pgtype.Time) string {
	if !pt.Valid {
		return ""
	}
	t := time.Unix(0, 0).UTC().Add(time.Duration(pt.Microseconds) * time.Microsecond)
	return t.Format(time.TimeOnly)
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// NaiveTimeToPgtype produces a timestamp-without-timezone parameter, used
// when comparing against `day + slot_time` expressions. Always UTC.
func NaiveTimeToPgtype(t time.Time) pgtype.Timestamp {
	return pgtype.Timestamp{Time: t.UTC(), Valid: true}
}

func DayToPgtype(day time.Time) pgtype.Date {
	return pgtype.Date{Time: day, Valid: true}
}

func TimeOfDayToPgtype(tod time.Duration) pgtype.Time {
	return pgtype.Time{Microseconds: tod.Microseconds(), Valid: true}
}

// NonEmptyStringToPgtype maps "" to NULL, used for optional text columns.
func NonEmptyStringToPgtype(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
