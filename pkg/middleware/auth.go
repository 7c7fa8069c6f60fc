package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/auth"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authenticator resolves an opaque bearer token to its principal.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Auth attaches the principal to the request context when a bearer token is
// presented. Requests without a token pass through unauthenticated; the
// resolvers decide which operations demand a principal. A token that fails
// to resolve is rejected outright.
func Auth(authenticator Authenticator, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		user, err := authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Warn("Rejected invalid session token",
				zap.String("request_id", c.GetString("request_id")))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid session token",
			})
			return
		}

		c.Request = c.Request.WithContext(auth.WithUser(c.Request.Context(), user))
		c.Next()
	}
}
