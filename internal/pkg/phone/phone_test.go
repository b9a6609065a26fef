//go:build unit

package phone_test

import (
	"testing"

	"courtdesk/internal/pkg/phone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("national form resolves via the default region", func(t *testing.T) {
		got, err := phone.Normalize("06 12 34 56 78", "FR")
		require.NoError(t, err)
		assert.Equal(t, "+33612345678", got)
	})

	t.Run("international form ignores the default region", func(t *testing.T) {
		got, err := phone.Normalize("+33612345678", "US")
		require.NoError(t, err)
		assert.Equal(t, "+33612345678", got)
	})

	t.Run("both forms resolve to the same value", func(t *testing.T) {
		national, err := phone.Normalize("0612345678", "FR")
		require.NoError(t, err)
		international, err := phone.Normalize("+33 6 12 34 56 78", "FR")
		require.NoError(t, err)
		assert.Equal(t, national, international)
	})

	t.Run("empty input normalizes to empty", func(t *testing.T) {
		got, err := phone.Normalize("   ", "FR")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid numbers are rejected", func(t *testing.T) {
		for _, raw := range []string{"not a number", "123", "+33 1"} {
			_, err := phone.Normalize(raw, "FR")
			require.ErrorIs(t, err, phone.ErrInvalidNumber, "input %q", raw)
		}
	})
}
