package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"jobhub/internal/api/middleware"
	"jobhub/internal/auth"
)

// requireIdentity returns the authenticated identity or answers 401. The
// auth middleware has already run on every route that calls this; the guard
// only covers misconfigured route wiring.
func requireIdentity(c *gin.Context) (*auth.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return nil, false
	}
	return identity, true
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
