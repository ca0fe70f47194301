package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hrmslite/hrms-lite-api/internal/auth"
	"github.com/hrmslite/hrms-lite-api/internal/constants"
	apierrors "github.com/hrmslite/hrms-lite-api/internal/errors"
)

// RequireAuth verifies the Bearer token and attaches the verified claims to
// the request context. Each rejection reason gets its own message so clients
// can tell an expired session from a broken one.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "Access denied. Please login to continue.")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			apierrors.Unauthorized(c, "Invalid authorization format. Use 'Bearer <token>'")
			c.Abort()
			return
		}

		// Clients that stringify a missing token send the literal words.
		token := strings.TrimSpace(parts[1])
		if token == "" || token == "null" || token == "undefined" {
			apierrors.Unauthorized(c, "Access denied. Please login to continue.")
			c.Abort()
			return
		}

		claims, err := auth.Verify(secret, token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrNoSigningKey):
				apierrors.ServerConfiguration(c)
			case errors.Is(err, auth.ErrTokenExpired):
				apierrors.Unauthorized(c, "Your session has expired. Please login again.")
			case errors.Is(err, auth.ErrTokenMalformed):
				apierrors.Unauthorized(c, "Invalid token. Please login again.")
			case errors.Is(err, auth.ErrTokenNotYetValid):
				apierrors.Unauthorized(c, "Token not yet active. Please try again later.")
			default:
				apierrors.Unauthorized(c, "Authentication failed. Please login again.")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyClaims, claims)
		c.Next()
	}
}

// GetClaims retrieves the verified token claims from context
func GetClaims(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(constants.ContextKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}
