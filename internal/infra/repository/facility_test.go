//go:build unit

package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFacilityRow struct {
	id        uuid.UUID
	imageURL  pgtype.Text
	createdAt time.Time
}

func (r stubFacilityRow) Scan(dest ...any) error {
	*(dest[0].(*uuid.UUID)) = r.id
	*(dest[1].(*string)) = "Court 1"
	*(dest[2].(*string)) = "indoor"
	*(dest[3].(*string)) = "tennis"
	*(dest[4].(*int64)) = 2500
	*(dest[5].(*pgtype.Text)) = r.imageURL
	*(dest[6].(*bool)) = true
	*(dest[7].(*pgtype.Timestamptz)) = pgtype.Timestamptz{Time: r.createdAt, Valid: true}
	return nil
}

func TestScanFacilityRM(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("maps all columns", func(t *testing.T) {
		rm, err := scanFacilityRM(stubFacilityRow{
			id:        id,
			imageURL:  pgtype.Text{String: "/img/court-1.png", Valid: true},
			createdAt: createdAt,
		})
		require.NoError(t, err)
		require.NotNil(t, rm)

		assert.Equal(t, id, rm.ID)
		assert.Equal(t, "Court 1", rm.Name)
		assert.Equal(t, "indoor", rm.Class)
		assert.Equal(t, "tennis", rm.Kind)
		assert.Equal(t, int64(2500), rm.PriceCents)
		require.NotNil(t, rm.ImageURL)
		assert.Equal(t, "/img/court-1.png", *rm.ImageURL)
		assert.True(t, rm.IsActive)
		assert.Equal(t, createdAt, rm.CreatedAt)
	})

	t.Run("null image maps to nil", func(t *testing.T) {
		rm, err := scanFacilityRM(stubFacilityRow{id: id, createdAt: createdAt})
		require.NoError(t, err)
		require.NotNil(t, rm)
		assert.Nil(t, rm.ImageURL)
	})
}
