package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/septer/septer/internal/auth/domain"
	authUseCase "github.com/septer/septer/internal/auth/usecase"
	"github.com/septer/septer/internal/httputil"
)

// AuthenticationMiddleware authenticates requests with a session token in the
// Authorization header ("Bearer <token>", scheme matched case-insensitively).
//
// On success the identity is stored in the request context and can be read
// with GetIdentity. Every authentication failure produces the same 401 response
// with a WWW-Authenticate: Bearer header. Storage errors produce a 500.
func AuthenticationMiddleware(
	tokenUseCase authUseCase.TokenUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			logger.Debug("authentication failed: missing or malformed authorization header")
			httputil.HandleErrorGin(c, authDomain.ErrAuthenticationFailed, logger)
			c.Abort()
			return
		}

		identity, err := tokenUseCase.Authenticate(c.Request.Context(), token)
		if err != nil {
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), identity))

		logger.Debug("authentication successful",
			slog.String("user_id", identity.UserID.String()),
			slog.String("role", identity.Role.String()))

		c.Next()
	}
}

// RequireRoleMiddleware rejects authenticated callers whose role differs from role.
//
// It MUST run after AuthenticationMiddleware. A missing identity yields 401 and
// a role mismatch yields 403.
func RequireRoleMiddleware(role authDomain.Role, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, _ := GetIdentity(c.Request.Context())

		if _, err := authDomain.RequireRole(identity, role); err != nil {
			if identity != nil {
				logger.Debug("authorization failed: role mismatch",
					slog.String("user_id", identity.UserID.String()),
					slog.String("role", identity.Role.String()),
					slog.String("required_role", role.String()))
			}
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value.
func bearerToken(header string) (string, bool) {
	const bearerPrefix = "bearer "
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
