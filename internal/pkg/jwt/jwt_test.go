//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"courtdesk/internal/domain/account"
	"courtdesk/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := jwt.NewService("test-secret-key", time.Hour)
	accountID := uuid.New()

	token, err := svc.GenerateToken(accountID, account.RoleStaff)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, account.RoleStaff.String(), claims.Role)
}

func TestValidateToken(t *testing.T) {
	svc := jwt.NewService("test-secret-key", time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("token signed with a different key", func(t *testing.T) {
		other := jwt.NewService("other-secret-key", time.Hour)
		token, err := other.GenerateToken(uuid.New(), account.RoleUser)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewService("test-secret-key", -time.Minute)
		token, err := expired.GenerateToken(uuid.New(), account.RoleUser)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}

func TestTokenDuration(t *testing.T) {
	svc := jwt.NewService("test-secret-key", 30*time.Minute)
	assert.Equal(t, 30*time.Minute, svc.TokenDuration())
}
