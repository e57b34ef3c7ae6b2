package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, userRepo user.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// RequireAuth resolves the request identity from the bearer token. The
// account is re-loaded on every request so a deactivated account is locked
// out immediately, even while its token is still within its lifetime.
// Handlers read the resolved identity from the context and never trust any
// caller-supplied ID.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		account, err := m.userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			m.logger.Errorw("failed to load account for token", "error", err, "user_id", userID)
			utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
			c.Abort()
			return
		}
		if account == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "account no longer exists")
			c.Abort()
			return
		}
		if !account.IsActive() {
			utils.ErrorResponse(c, http.StatusForbidden, "account is inactive")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, account.ID())
		c.Set(constants.ContextKeyUserRole, string(account.Role()))

		c.Next()
	}
}
