package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobhub/internal/auth"
)

const identityKey = "identity"

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
}

// AuthMiddleware validates the bearer token against the external identity
// provider and injects the resulting identity into the context.
func AuthMiddleware(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c)
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c)
			return
		}

		rawToken := parts[1]
		if strings.TrimSpace(rawToken) == "" {
			abortUnauthorized(c)
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), rawToken)
		if err != nil || identity.ID == "" {
			abortUnauthorized(c)
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFromContext returns the identity set by AuthMiddleware.
func IdentityFromContext(c *gin.Context) (*auth.Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := value.(*auth.Identity)
	return identity, ok
}
