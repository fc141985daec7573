package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/greenflow-inc/greenflow/internal/infrastructure/auth"
	"github.com/greenflow-inc/greenflow/internal/shared/logger"
	"github.com/greenflow-inc/greenflow/internal/shared/utils"
)

// Context keys set by the auth middleware.
const (
	ContextAccountID  = "account_id"
	ContextAccountSID = "account_sid"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, log logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     log,
	}
}

// RequireAuth rejects requests without a valid bearer token and publishes
// the account identity into the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextAccountID, claims.AccountID)
		c.Set(ContextAccountSID, claims.SID)

		c.Next()
	}
}

// OptionalAuth publishes the account identity when a valid token is present
// and lets anonymous requests through untouched.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token != "" {
			if claims, err := m.jwtService.Verify(token); err == nil {
				c.Set(ContextAccountID, claims.AccountID)
				c.Set(ContextAccountSID, claims.SID)
			}
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// AccountID returns the authenticated account id from the request context.
func AccountID(c *gin.Context) string {
	return c.GetString(ContextAccountID)
}
