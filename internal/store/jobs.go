package store

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"jobhub/internal/database"
)

// JobFilters narrows ListJobs. Empty strings and a nil SalaryMin mean "not
// set" and contribute nothing to the predicate; there is no implicit
// match-empty behavior.
type JobFilters struct {
	// Location is matched as a case-insensitive substring.
	Location string
	// Industry is matched exactly.
	Industry string
	// ExperienceLevel is matched exactly.
	ExperienceLevel string
	// SalaryMin is a floor compared against the job's salary_max column.
	SalaryMin *float64
	// Search is a case-insensitive substring matched against job title, job
	// description, or company name.
	Search string
}

// JobWithCompany is the joined read model returned by the listing queries.
type JobWithCompany struct {
	database.Job
	Company database.Company `json:"company"`
}

func substringPattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

// applyJobFilters composes the listing predicate: jobs must be active, and
// every supplied filter is ANDed on top. The three search substrings are ORed
// together before joining the conjunction.
func applyJobFilters(tx *gorm.DB, f JobFilters) *gorm.DB {
	tx = tx.Where("jobs.is_active = ?", true)

	if f.Location != "" {
		tx = tx.Where("LOWER(jobs.location) LIKE ?", substringPattern(f.Location))
	}
	if f.Industry != "" {
		tx = tx.Where("jobs.industry = ?", f.Industry)
	}
	if f.ExperienceLevel != "" {
		tx = tx.Where("jobs.experience_level = ?", f.ExperienceLevel)
	}
	if f.SalaryMin != nil {
		tx = tx.Where("jobs.salary_max >= ?", *f.SalaryMin)
	}
	if f.Search != "" {
		pattern := substringPattern(f.Search)
		tx = tx.Where(
			`LOWER(jobs.title) LIKE ? OR LOWER(jobs.description) LIKE ? OR LOWER("Company".name) LIKE ?`,
			pattern, pattern, pattern,
		)
	}

	return tx
}

// ListJobs returns active jobs matching the filters, newest first, each with
// its company embedded. The company join is inner: a job whose company cannot
// be resolved is excluded.
func (s *Store) ListJobs(ctx context.Context, filters JobFilters) ([]JobWithCompany, error) {
	tx := s.db.WithContext(ctx).
		Model(&database.Job{}).
		InnerJoins("Company")
	tx = applyJobFilters(tx, filters)

	var jobs []database.Job
	if err := tx.Order("jobs.created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	results := make([]JobWithCompany, 0, len(jobs))
	for _, job := range jobs {
		results = append(results, JobWithCompany{Job: job, Company: job.Company})
	}
	return results, nil
}

// GetJob fetches one job with its company. A job without a resolvable
// company reports not-found, same as an absent row.
func (s *Store) GetJob(ctx context.Context, id uint) (*JobWithCompany, error) {
	var job database.Job
	err := s.db.WithContext(ctx).
		Model(&database.Job{}).
		InnerJoins("Company").
		Where("jobs.id = ?", id).
		First(&job).Error
	if err != nil {
		return nil, translate(err)
	}
	return &JobWithCompany{Job: job, Company: job.Company}, nil
}

// CreateJob inserts a posting with PostedByID already bound to the
// authenticated identity by the route layer.
func (s *Store) CreateJob(ctx context.Context, job *database.Job) error {
	if err := s.db.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("create job: %w", err)
	}
	return nil
}

// UpdateJob applies changes when posterID matches the posting user, or
// unconditionally for admins.
func (s *Store) UpdateJob(ctx context.Context, id uint, posterID string, isAdmin bool, changes map[string]any) (*database.Job, error) {
	var job database.Job
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&database.Job{})
		if isAdmin {
			q = q.Where("id = ?", id)
		} else {
			q = q.Where("id = ? AND posted_by_id = ?", id, posterID)
		}
		res := q.Updates(changes)
		if res.Error != nil {
			return fmt.Errorf("update job: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return s.missingOrDenied(tx, &database.Job{}, id)
		}
		return tx.First(&job, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// DeleteJob hard-deletes the posting under the same ownership rules as
// UpdateJob.
func (s *Store) DeleteJob(ctx context.Context, id uint, posterID string, isAdmin bool) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&database.Job{})
		if isAdmin {
			q = q.Where("id = ?", id)
		} else {
			q = q.Where("id = ? AND posted_by_id = ?", id, posterID)
		}
		res := q.Delete(&database.Job{})
		if res.Error != nil {
			return fmt.Errorf("delete job: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return s.missingOrDenied(tx, &database.Job{}, id)
		}
		return nil
	})
}
