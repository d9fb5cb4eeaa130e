package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jobhub/internal/api/middleware"
	"jobhub/internal/database"
	"jobhub/internal/store"
)

// JobHandler covers the posting surface: the public filtered listing plus
// the employer-scoped mutations.
type JobHandler struct {
	store *store.Store
}

func NewJobHandler(st *store.Store) *JobHandler {
	return &JobHandler{store: st}
}

// ListJobs is the public filtered listing. Absent query params contribute
// nothing to the predicate.
func (h *JobHandler) ListJobs(c *gin.Context) {
	filters := store.JobFilters{
		Location:        c.Query("location"),
		Industry:        c.Query("industry"),
		ExperienceLevel: c.Query("experienceLevel"),
		Search:          c.Query("search"),
	}
	if raw := c.Query("salaryMin"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			BadRequest(c, "invalid salaryMin")
			return
		}
		filters.SalaryMin = &value
	}

	jobs, err := h.store.ListJobs(c.Request.Context(), filters)
	if err != nil {
		middleware.LoggerFromContext(c).Error("list jobs", slog.Any("error", err))
		Internal(c, "failed to fetch jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob returns one job with its company embedded. Public.
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	job, err := h.store.GetJob(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			NotFound(c, "Job not found")
			return
		}
		middleware.LoggerFromContext(c).Error("fetch job", slog.Any("error", err))
		Internal(c, "failed to fetch job")
		return
	}
	c.JSON(http.StatusOK, job)
}

type createJobRequest struct {
	Title               string                   `json:"title" binding:"required"`
	Description         string                   `json:"description" binding:"required"`
	Requirements        string                   `json:"requirements"`
	Benefits            string                   `json:"benefits"`
	SalaryMin           float64                  `json:"salaryMin"`
	SalaryMax           float64                  `json:"salaryMax"`
	Location            string                   `json:"location" binding:"required"`
	JobType             database.JobType         `json:"jobType"`
	ExperienceLevel     database.ExperienceLevel `json:"experienceLevel"`
	Industry            string                   `json:"industry"`
	CompanyID           uint                     `json:"companyId" binding:"required"`
	IsActive            *bool                    `json:"isActive"`
	ApplicationDeadline *time.Time               `json:"applicationDeadline"`
}

// CreateJob posts a job. The employer/admin gate runs as middleware; the
// posting user is always the authenticated identity.
func (h *JobHandler) CreateJob(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req createJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if req.JobType != "" && !req.JobType.Valid() {
		BadRequest(c, "invalid job type")
		return
	}
	if req.ExperienceLevel != "" && !req.ExperienceLevel.Valid() {
		BadRequest(c, "invalid experience level")
		return
	}

	job := database.Job{
		Title:               req.Title,
		Description:         sanitizeText(req.Description),
		Requirements:        sanitizeText(req.Requirements),
		Benefits:            sanitizeText(req.Benefits),
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		Location:            req.Location,
		JobType:             req.JobType,
		ExperienceLevel:     req.ExperienceLevel,
		Industry:            req.Industry,
		CompanyID:           req.CompanyID,
		PostedByID:          identity.ID,
		IsActive:            true,
		ApplicationDeadline: req.ApplicationDeadline,
	}
	if req.IsActive != nil {
		job.IsActive = *req.IsActive
	}

	if err := h.store.CreateJob(c.Request.Context(), &job); err != nil {
		middleware.LoggerFromContext(c).Error("create job", slog.Any("error", err))
		Internal(c, "failed to create job")
		return
	}

	c.JSON(http.StatusOK, job)
}

type updateJobRequest struct {
	Title               *string                   `json:"title"`
	Description         *string                   `json:"description"`
	Requirements        *string                   `json:"requirements"`
	Benefits            *string                   `json:"benefits"`
	SalaryMin           *float64                  `json:"salaryMin"`
	SalaryMax           *float64                  `json:"salaryMax"`
	Location            *string                   `json:"location"`
	JobType             *database.JobType         `json:"jobType"`
	ExperienceLevel     *database.ExperienceLevel `json:"experienceLevel"`
	Industry            *string                   `json:"industry"`
	IsActive            *bool                     `json:"isActive"`
	ApplicationDeadline *time.Time                `json:"applicationDeadline"`
}

// UpdateJob partially updates a posting. Admins may edit any job; employers
// only their own, enforced by the conditional statement in the store.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, ok := middleware.UserFromContext(c)
	if !ok {
		Forbidden(c, "access denied")
		return
	}

	var req updateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	if req.JobType != nil && !req.JobType.Valid() {
		BadRequest(c, "invalid job type")
		return
	}
	if req.ExperienceLevel != nil && !req.ExperienceLevel.Valid() {
		BadRequest(c, "invalid experience level")
		return
	}

	changes := map[string]any{"updated_at": time.Now()}
	if req.Title != nil {
		changes["title"] = *req.Title
	}
	if req.Description != nil {
		changes["description"] = sanitizeText(*req.Description)
	}
	if req.Requirements != nil {
		changes["requirements"] = sanitizeText(*req.Requirements)
	}
	if req.Benefits != nil {
		changes["benefits"] = sanitizeText(*req.Benefits)
	}
	if req.SalaryMin != nil {
		changes["salary_min"] = *req.SalaryMin
	}
	if req.SalaryMax != nil {
		changes["salary_max"] = *req.SalaryMax
	}
	if req.Location != nil {
		changes["location"] = *req.Location
	}
	if req.JobType != nil {
		changes["job_type"] = *req.JobType
	}
	if req.ExperienceLevel != nil {
		changes["experience_level"] = *req.ExperienceLevel
	}
	if req.Industry != nil {
		changes["industry"] = *req.Industry
	}
	if req.IsActive != nil {
		changes["is_active"] = *req.IsActive
	}
	if req.ApplicationDeadline != nil {
		changes["application_deadline"] = *req.ApplicationDeadline
	}

	job, err := h.store.UpdateJob(c.Request.Context(), id, identity.ID, user.Role == database.RoleAdmin, changes)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			NotFound(c, "Job not found")
		case errors.Is(err, store.ErrAccessDenied):
			Forbidden(c, "access denied")
		default:
			middleware.LoggerFromContext(c).Error("update job", slog.Any("error", err))
			Internal(c, "failed to update job")
		}
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob hard-deletes a posting under the same ownership rules as
// UpdateJob.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, ok := middleware.UserFromContext(c)
	if !ok {
		Forbidden(c, "access denied")
		return
	}

	err := h.store.DeleteJob(c.Request.Context(), id, identity.ID, user.Role == database.RoleAdmin)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			NotFound(c, "Job not found")
		case errors.Is(err, store.ErrAccessDenied):
			Forbidden(c, "access denied")
		default:
			middleware.LoggerFromContext(c).Error("delete job", slog.Any("error", err))
			Internal(c, "failed to delete job")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// ListJobApplications is the employer view of a job's applicants. Any
// employer or admin may call it for any job; ownership of the posting is not
// checked here, mirroring the platform's current authorization model.
func (h *JobHandler) ListJobApplications(c *gin.Context) {
	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}

	apps, err := h.store.GetJobApplications(c.Request.Context(), jobID)
	if err != nil {
		middleware.LoggerFromContext(c).Error("list job applications", slog.Any("error", err))
		Internal(c, "failed to fetch job applications")
		return
	}
	c.JSON(http.StatusOK, apps)
}
