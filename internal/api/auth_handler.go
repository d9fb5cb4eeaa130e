package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobhub/internal/api/middleware"
	"jobhub/internal/database"
	"jobhub/internal/store"
)

// AuthHandler exposes the current-user endpoint. Authentication itself lives
// with the external identity provider; this handler only mirrors verified
// claims into the users table.
type AuthHandler struct {
	store *store.Store
}

func NewAuthHandler(st *store.Store) *AuthHandler {
	return &AuthHandler{store: st}
}

// GetCurrentUser upserts the caller from its verified claims and returns the
// stored row. This is the upsert-on-login point: profile fields refresh on
// every call, the role column never does.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	user := database.User{
		ID:              identity.ID,
		FirstName:       identity.FirstName,
		LastName:        identity.LastName,
		ProfileImageURL: identity.ProfileImageURL,
	}
	if identity.Email != "" {
		email := identity.Email
		user.Email = &email
	}

	stored, err := h.store.UpsertUser(c.Request.Context(), user)
	if err != nil {
		middleware.LoggerFromContext(c).Error("upsert user", slog.Any("error", err))
		Internal(c, "failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, stored)
}
