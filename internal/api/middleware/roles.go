package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobhub/internal/database"
	"jobhub/internal/store"
)

const userKey = "currentUser"

// RequireRole loads the caller's user row and aborts with 403 unless its
// role is one of the allowed set. The loaded user is cached in the context
// for the handler.
func RequireRole(st *store.Store, roles ...database.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFromContext(c)
		if !ok {
			abortUnauthorized(c)
			return
		}

		user, err := st.GetUser(c.Request.Context(), identity.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Set(userKey, user)
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
	}
}

// UserFromContext returns the user row loaded by RequireRole.
func UserFromContext(c *gin.Context) (*database.User, bool) {
	value, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*database.User)
	return user, ok
}
