package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobhub/internal/api/middleware"
	"jobhub/internal/database"
	"jobhub/internal/store"
)

// ApplicationHandler covers the applicant side of applications; the employer
// view lives on JobHandler.ListJobApplications.
type ApplicationHandler struct {
	store *store.Store
}

func NewApplicationHandler(st *store.Store) *ApplicationHandler {
	return &ApplicationHandler{store: st}
}

// ListMyApplications returns the caller's applications, newest first, with
// the job and company embedded.
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	apps, err := h.store.GetUserApplications(c.Request.Context(), identity.ID)
	if err != nil {
		middleware.LoggerFromContext(c).Error("list applications", slog.Any("error", err))
		Internal(c, "failed to fetch applications")
		return
	}
	c.JSON(http.StatusOK, apps)
}

type createApplicationRequest struct {
	JobID       uint   `json:"jobId" binding:"required"`
	CvID        *uint  `json:"cvId"`
	CoverLetter string `json:"coverLetter"`
}

// CreateApplication submits an application. The applicant id is always the
// authenticated identity, never client input.
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req createApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	app := database.Application{
		JobID:       req.JobID,
		UserID:      identity.ID,
		CvID:        req.CvID,
		CoverLetter: sanitizeText(req.CoverLetter),
	}
	if err := h.store.CreateApplication(c.Request.Context(), &app); err != nil {
		middleware.LoggerFromContext(c).Error("create application", slog.Any("error", err))
		Internal(c, "failed to create application")
		return
	}

	c.JSON(http.StatusOK, app)
}

type updateApplicationRequest struct {
	Status database.ApplicationStatus `json:"status" binding:"required"`
}

// UpdateApplication moves an application to a new review status. The
// employer/admin gate runs as middleware. No transition graph is enforced;
// only membership in the closed status set.
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if !req.Status.Valid() {
		BadRequest(c, "invalid application status")
		return
	}

	app, err := h.store.UpdateApplicationStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "Application not found")
			return
		}
		middleware.LoggerFromContext(c).Error("update application", slog.Any("error", err))
		Internal(c, "failed to update application")
		return
	}

	c.JSON(http.StatusOK, app)
}
