package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"courtdesk/internal/domain/account"
	"courtdesk/internal/pkg/cookie"
	"courtdesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	authUseCase usecase.AuthUseCase
}

const (
	ctxAccountIDKey   = "account_id"
	ctxAccountRoleKey = "account_role"
)

var roleHierarchy = map[account.Role]int{
	account.RoleUser:  1,
	account.RoleStaff: 2,
	account.RoleAdmin: 3,
}

func NewAuthMiddleware(authUseCase usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		authUseCase: authUseCase,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		accountID, role, err := m.authUseCase.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		setAccountContext(c, accountID, role)
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not
// abort on failure. Guest bookings come through here.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		accountID, role, err := m.authUseCase.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		setAccountContext(c, accountID, role)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole account.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetAccountRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	token := cookie.GetAccessToken(c)
	if token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}

	return ""
}

func setAccountContext(c *gin.Context, accountID uuid.UUID, role account.Role) {
	c.Set(ctxAccountIDKey, accountID)
	c.Set(ctxAccountRoleKey, role)
	c.Set("jwt_claims", map[string]any{
		"account_id": accountID.String(),
		"role":       string(role),
	})
}

func hasMinimumRole(accountRole, minRole account.Role) bool {
	accountLevel, accountExists := roleHierarchy[accountRole]
	minLevel, minExists := roleHierarchy[minRole]
	return accountExists && minExists && accountLevel >= minLevel
}

func GetAccountID(c *gin.Context) (uuid.UUID, bool) {
	accountID, exists := c.Get(ctxAccountIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := accountID.(uuid.UUID)
	return id, ok
}

func GetAccountRole(c *gin.Context) (account.Role, bool) {
	accountRole, exists := c.Get(ctxAccountRoleKey)
	if !exists {
		return "", false
	}

	role, ok := accountRole.(account.Role)
	return role, ok
}
