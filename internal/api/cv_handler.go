package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"jobhub/internal/api/middleware"
	"jobhub/internal/database"
	"jobhub/internal/store"
)

// CvHandler covers the CV builder's persistence surface. Every route is
// owner-scoped: the owning user id always comes from the verified identity,
// and mutations go through the store's conditional owner-matching statements.
type CvHandler struct {
	store *store.Store
}

func NewCvHandler(st *store.Store) *CvHandler {
	return &CvHandler{store: st}
}

// ListCvs returns the caller's CVs, most recently updated first.
func (h *CvHandler) ListCvs(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	cvs, err := h.store.GetUserCvs(c.Request.Context(), identity.ID)
	if err != nil {
		middleware.LoggerFromContext(c).Error("list cvs", slog.Any("error", err))
		Internal(c, "failed to fetch CVs")
		return
	}
	c.JSON(http.StatusOK, cvs)
}

// GetCv returns one CV. 404 when absent, 403 when owned by someone else; the
// two stay distinct so the builder can tell "gone" from "not yours".
func (h *CvHandler) GetCv(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	cv, err := h.store.GetCv(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "CV not found")
			return
		}
		middleware.LoggerFromContext(c).Error("fetch cv", slog.Any("error", err))
		Internal(c, "failed to fetch CV")
		return
	}
	if cv.UserID != identity.ID {
		Forbidden(c, "access denied")
		return
	}

	c.JSON(http.StatusOK, cv)
}

type createCvRequest struct {
	Title      string         `json:"title" binding:"required"`
	TemplateID *uint          `json:"templateId"`
	Data       datatypes.JSON `json:"data"`
	IsPublic   bool           `json:"isPublic"`
}

// CreateCv saves a new CV. Any userId in the body is ignored; ownership is
// bound to the authenticated identity.
func (h *CvHandler) CreateCv(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req createCvRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	cv := database.Cv{
		UserID:     identity.ID,
		TemplateID: req.TemplateID,
		Title:      req.Title,
		Data:       req.Data,
		IsPublic:   req.IsPublic,
	}
	if err := h.store.CreateCv(c.Request.Context(), &cv); err != nil {
		middleware.LoggerFromContext(c).Error("create cv", slog.Any("error", err))
		Internal(c, "failed to create CV")
		return
	}

	c.JSON(http.StatusOK, cv)
}

type updateCvRequest struct {
	Title      *string         `json:"title"`
	TemplateID *uint           `json:"templateId"`
	Data       *datatypes.JSON `json:"data"`
	IsPublic   *bool           `json:"isPublic"`
}

// UpdateCv partially updates a CV through a single owner-conditional UPDATE.
func (h *CvHandler) UpdateCv(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateCvRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	changes := map[string]any{"updated_at": time.Now()}
	if req.Title != nil {
		changes["title"] = *req.Title
	}
	if req.TemplateID != nil {
		changes["template_id"] = *req.TemplateID
	}
	if req.Data != nil {
		changes["data"] = *req.Data
	}
	if req.IsPublic != nil {
		changes["is_public"] = *req.IsPublic
	}

	cv, err := h.store.UpdateCv(c.Request.Context(), id, identity.ID, changes)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			NotFound(c, "CV not found")
		case errors.Is(err, store.ErrAccessDenied):
			Forbidden(c, "access denied")
		default:
			middleware.LoggerFromContext(c).Error("update cv", slog.Any("error", err))
			Internal(c, "failed to update CV")
		}
		return
	}

	c.JSON(http.StatusOK, cv)
}

// DeleteCv removes a CV through a single owner-conditional DELETE.
func (h *CvHandler) DeleteCv(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteCv(c.Request.Context(), id, identity.ID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			NotFound(c, "CV not found")
		case errors.Is(err, store.ErrAccessDenied):
			Forbidden(c, "access denied")
		default:
			middleware.LoggerFromContext(c).Error("delete cv", slog.Any("error", err))
			Internal(c, "failed to delete CV")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "CV deleted successfully"})
}
