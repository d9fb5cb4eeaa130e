package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobhub/internal/api/middleware"
	"jobhub/internal/database"
	"jobhub/internal/store"
)

// TemplateHandler serves the CV template catalog.
type TemplateHandler struct {
	store *store.Store
}

func NewTemplateHandler(st *store.Store) *TemplateHandler {
	return &TemplateHandler{store: st}
}

// ListTemplates returns the active templates. Public.
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	templates, err := h.store.GetCvTemplates(c.Request.Context())
	if err != nil {
		middleware.LoggerFromContext(c).Error("list cv templates", slog.Any("error", err))
		Internal(c, "failed to fetch CV templates")
		return
	}
	c.JSON(http.StatusOK, templates)
}

type createTemplateRequest struct {
	Name        string                    `json:"name" binding:"required"`
	Description string                    `json:"description"`
	Category    database.TemplateCategory `json:"category"`
	ImageURL    string                    `json:"imageUrl"`
	IsActive    *bool                     `json:"isActive"`
}

// CreateTemplate adds a template to the catalog. Admin only; the role gate
// runs as middleware.
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req createTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if req.Category != "" && !req.Category.Valid() {
		BadRequest(c, "invalid template category")
		return
	}

	template := database.CvTemplate{
		Name:        req.Name,
		Description: sanitizeText(req.Description),
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}

	if err := h.store.CreateCvTemplate(c.Request.Context(), &template); err != nil {
		middleware.LoggerFromContext(c).Error("create cv template", slog.Any("error", err))
		Internal(c, "failed to create CV template")
		return
	}

	c.JSON(http.StatusCreated, template)
}
