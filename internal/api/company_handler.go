package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobhub/internal/api/middleware"
	"jobhub/internal/database"
	"jobhub/internal/store"
)

// CompanyHandler covers employer profiles.
type CompanyHandler struct {
	store *store.Store
}

func NewCompanyHandler(st *store.Store) *CompanyHandler {
	return &CompanyHandler{store: st}
}

// ListCompanies returns all companies, newest first. Public.
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.store.GetCompanies(c.Request.Context())
	if err != nil {
		middleware.LoggerFromContext(c).Error("list companies", slog.Any("error", err))
		Internal(c, "failed to fetch companies")
		return
	}
	c.JSON(http.StatusOK, companies)
}

// GetCompany returns one company. Public.
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	company, err := h.store.GetCompany(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "Company not found")
			return
		}
		middleware.LoggerFromContext(c).Error("fetch company", slog.Any("error", err))
		Internal(c, "failed to fetch company")
		return
	}
	c.JSON(http.StatusOK, company)
}

type createCompanyRequest struct {
	Name        string               `json:"name" binding:"required"`
	Description string               `json:"description"`
	Logo        string               `json:"logo"`
	Website     string               `json:"website"`
	Industry    string               `json:"industry"`
	Size        database.CompanySize `json:"size"`
	Location    string               `json:"location"`
}

// CreateCompany registers a company with the creator bound to the
// authenticated identity.
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req createCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if req.Size != "" && !req.Size.Valid() {
		BadRequest(c, "invalid company size")
		return
	}

	creator := identity.ID
	company := database.Company{
		Name:        req.Name,
		Description: sanitizeText(req.Description),
		Logo:        req.Logo,
		Website:     req.Website,
		Industry:    req.Industry,
		Size:        req.Size,
		Location:    req.Location,
		CreatedByID: &creator,
	}

	if err := h.store.CreateCompany(c.Request.Context(), &company); err != nil {
		middleware.LoggerFromContext(c).Error("create company", slog.Any("error", err))
		Internal(c, "failed to create company")
		return
	}

	c.JSON(http.StatusOK, company)
}

type updateCompanyRequest struct {
	Name        *string               `json:"name"`
	Description *string               `json:"description"`
	Logo        *string               `json:"logo"`
	Website     *string               `json:"website"`
	Industry    *string               `json:"industry"`
	Size        *database.CompanySize `json:"size"`
	Location    *string               `json:"location"`
}

// UpdateCompany partially updates a company. The creator may edit it, admins
// may edit any; enforced by the conditional statement in the store.
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if req.Size != nil && !req.Size.Valid() {
		BadRequest(c, "invalid company size")
		return
	}

	changes := map[string]any{"updated_at": time.Now()}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Description != nil {
		changes["description"] = sanitizeText(*req.Description)
	}
	if req.Logo != nil {
		changes["logo"] = *req.Logo
	}
	if req.Website != nil {
		changes["website"] = *req.Website
	}
	if req.Industry != nil {
		changes["industry"] = *req.Industry
	}
	if req.Size != nil {
		changes["size"] = *req.Size
	}
	if req.Location != nil {
		changes["location"] = *req.Location
	}

	isAdmin := false
	if user, err := h.store.GetUser(c.Request.Context(), identity.ID); err == nil {
		isAdmin = user.Role == database.RoleAdmin
	}

	company, err := h.store.UpdateCompany(c.Request.Context(), id, identity.ID, isAdmin, changes)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			NotFound(c, "Company not found")
		case errors.Is(err, store.ErrAccessDenied):
			Forbidden(c, "access denied")
		default:
			middleware.LoggerFromContext(c).Error("update company", slog.Any("error", err))
			Internal(c, "failed to update company")
		}
		return
	}

	c.JSON(http.StatusOK, company)
}
