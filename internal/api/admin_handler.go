package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobhub/internal/api/middleware"
	"jobhub/internal/store"
)

// AdminHandler serves the admin dashboard aggregates.
type AdminHandler struct {
	store *store.Store
}

func NewAdminHandler(st *store.Store) *AdminHandler {
	return &AdminHandler{store: st}
}

// GetStats returns the four platform row counts. Admin only; the role gate
// runs as middleware.
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.store.GetStats(c.Request.Context())
	if err != nil {
		middleware.LoggerFromContext(c).Error("fetch stats", slog.Any("error", err))
		Internal(c, "failed to fetch admin stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}
