package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"jobhub/internal/database"
)

// ApplicationWithJob is the applicant-facing read model: the application plus
// the full job and its company.
type ApplicationWithJob struct {
	database.Application
	Job JobWithCompany `json:"job"`
}

// ApplicationWithApplicant is the employer-facing read model: the application
// plus the applicant and the attached CV. Cv is a zero-valued placeholder
// when the applicant attached none; the row is never excluded for it.
type ApplicationWithApplicant struct {
	database.Application
	User database.User `json:"user"`
	Cv   database.Cv   `json:"cv"`
}

// CreateApplication inserts an application with UserID already bound to the
// authenticated identity by the route layer. Status defaults to pending.
func (s *Store) CreateApplication(ctx context.Context, app *database.Application) error {
	if app.Status == "" {
		app.Status = database.StatusPending
	}
	if err := s.db.WithContext(ctx).Create(app).Error; err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}

// GetUserApplications lists the caller's applications, most recent first,
// with job and company joined inner.
func (s *Store) GetUserApplications(ctx context.Context, userID string) ([]ApplicationWithJob, error) {
	var apps []database.Application
	err := s.db.WithContext(ctx).
		Model(&database.Application{}).
		InnerJoins("Job").
		InnerJoins("Job.Company").
		Where("applications.user_id = ?", userID).
		Order("applications.applied_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("list user applications: %w", err)
	}

	results := make([]ApplicationWithJob, 0, len(apps))
	for _, app := range apps {
		results = append(results, ApplicationWithJob{
			Application: app,
			Job:         JobWithCompany{Job: app.Job, Company: app.Job.Company},
		})
	}
	return results, nil
}

// GetJobApplications lists a job's applications, most recent first, with the
// applicant joined inner and the CV joined outer (the attachment is
// optional).
func (s *Store) GetJobApplications(ctx context.Context, jobID uint) ([]ApplicationWithApplicant, error) {
	var apps []database.Application
	err := s.db.WithContext(ctx).
		Model(&database.Application{}).
		InnerJoins("User").
		Joins("Cv").
		Where("applications.job_id = ?", jobID).
		Order("applications.applied_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}

	results := make([]ApplicationWithApplicant, 0, len(apps))
	for _, app := range apps {
		results = append(results, ApplicationWithApplicant{
			Application: app,
			User:        app.User,
			Cv:          app.Cv,
		})
	}
	return results, nil
}

// UpdateApplicationStatus moves the application to the given status. There is
// no enforced transition graph; the status value itself must be one of the
// closed set, validated at the route boundary.
func (s *Store) UpdateApplicationStatus(ctx context.Context, id uint, status database.ApplicationStatus) (*database.Application, error) {
	var app database.Application
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&database.Application{}).
			Where("id = ?", id).
			Update("status", status)
		if res.Error != nil {
			return fmt.Errorf("update application: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.First(&app, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}
