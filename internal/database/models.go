package database

import (
	"time"

	"gorm.io/datatypes"
)

// Role governs which privileged operations an identity may perform.
type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleJobSeeker, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

// TemplateCategory classifies CV templates.
type TemplateCategory string

const (
	CategoryProfessional TemplateCategory = "professional"
	CategoryCreative     TemplateCategory = "creative"
	CategorySimple       TemplateCategory = "simple"
	CategoryTechnical    TemplateCategory = "technical"
	CategoryExecutive    TemplateCategory = "executive"
	CategoryStudent      TemplateCategory = "student"
)

func (c TemplateCategory) Valid() bool {
	switch c {
	case CategoryProfessional, CategoryCreative, CategorySimple,
		CategoryTechnical, CategoryExecutive, CategoryStudent:
		return true
	}
	return false
}

// CompanySize buckets a company by headcount.
type CompanySize string

const (
	SizeSmall      CompanySize = "small"
	SizeMedium     CompanySize = "medium"
	SizeLarge      CompanySize = "large"
	SizeEnterprise CompanySize = "enterprise"
)

func (s CompanySize) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeEnterprise:
		return true
	}
	return false
}

// JobType is the employment arrangement of a posting.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

// ExperienceLevel is the seniority a posting targets.
type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelJunior    ExperienceLevel = "junior"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelExecutive ExperienceLevel = "executive"
)

func (l ExperienceLevel) Valid() bool {
	switch l {
	case LevelEntry, LevelJunior, LevelMid, LevelSenior, LevelExecutive:
		return true
	}
	return false
}

// ApplicationStatus tracks an application through review.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusReviewing ApplicationStatus = "reviewing"
	StatusInterview ApplicationStatus = "interview"
	StatusRejected  ApplicationStatus = "rejected"
	StatusAccepted  ApplicationStatus = "accepted"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewing, StatusInterview, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

// User is an account mirrored from the external identity provider.
// Rows are created or refreshed by upsert-on-login and never deleted.
type User struct {
	ID              string    `gorm:"primaryKey;size:64" json:"id"`
	Email           *string   `gorm:"uniqueIndex;size:255" json:"email"`
	FirstName       string    `gorm:"size:128" json:"firstName"`
	LastName        string    `gorm:"size:128" json:"lastName"`
	ProfileImageURL string    `gorm:"size:512" json:"profileImageUrl"`
	Role            Role      `gorm:"size:32" json:"role"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CvTemplate is a seeded, read-only CV layout.
type CvTemplate struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Name        string           `gorm:"size:255;not null" json:"name"`
	Description string           `gorm:"type:text" json:"description"`
	Category    TemplateCategory `gorm:"size:32" json:"category"`
	ImageURL    string           `gorm:"size:512" json:"imageUrl"`
	IsActive    bool             `json:"isActive"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// Cv is a job seeker's structured résumé. The document itself (personal info,
// experience, education, skills, certifications) lives in Data as JSONB; the
// builder owns its shape.
type Cv struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     string         `gorm:"size:64;not null;index" json:"userId"`
	TemplateID *uint          `json:"templateId"`
	Title      string         `gorm:"size:255;not null" json:"title"`
	Data       datatypes.JSON `gorm:"type:jsonb" json:"data"`
	IsPublic   bool           `json:"isPublic"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// Company is an employer profile. CreatedByID is optional because seeded
// companies have no creator.
type Company struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"size:255;not null" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	Logo        string      `gorm:"size:512" json:"logo"`
	Website     string      `gorm:"size:512" json:"website"`
	Industry    string      `gorm:"size:128" json:"industry"`
	Size        CompanySize `gorm:"size:32" json:"size"`
	Location    string      `gorm:"size:255" json:"location"`
	CreatedByID *string     `gorm:"size:64" json:"createdById"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Job is a posting. Every job belongs to exactly one company and one posting
// user; IsActive soft-deactivates it without losing applications.
type Job struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	Title               string          `gorm:"size:255;not null" json:"title"`
	Description         string          `gorm:"type:text;not null" json:"description"`
	Requirements        string          `gorm:"type:text" json:"requirements"`
	Benefits            string          `gorm:"type:text" json:"benefits"`
	SalaryMin           float64         `gorm:"type:decimal(12,2)" json:"salaryMin"`
	SalaryMax           float64         `gorm:"type:decimal(12,2)" json:"salaryMax"`
	Location            string          `gorm:"size:255;not null" json:"location"`
	JobType             JobType         `gorm:"size:32" json:"jobType"`
	ExperienceLevel     ExperienceLevel `gorm:"size:32" json:"experienceLevel"`
	Industry            string          `gorm:"size:128" json:"industry"`
	CompanyID           uint            `gorm:"index" json:"companyId"`
	Company             Company         `json:"-"`
	PostedByID          string          `gorm:"size:64;not null;index" json:"postedById"`
	IsActive            bool            `json:"isActive"`
	ApplicationDeadline *time.Time      `json:"applicationDeadline"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// Application is a job seeker's submission against a job, optionally carrying
// one of their CVs.
type Application struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	JobID       uint              `gorm:"not null;index" json:"jobId"`
	Job         Job               `json:"-"`
	UserID      string            `gorm:"size:64;not null;index" json:"userId"`
	User        User              `json:"-"`
	CvID        *uint             `json:"cvId"`
	Cv          Cv                `json:"-"`
	CoverLetter string            `gorm:"type:text" json:"coverLetter"`
	Status      ApplicationStatus `gorm:"size:32" json:"status"`
	AppliedAt   time.Time         `gorm:"autoCreateTime" json:"appliedAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}
