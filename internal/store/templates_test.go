package store

import (
	"context"
	"testing"

	"jobhub/internal/database"
)

func TestGetCvTemplatesActiveOnly(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, tmpl := range []database.CvTemplate{
		{Name: "Professional Modern", Category: database.CategoryProfessional, IsActive: true},
		{Name: "Retired Layout", Category: database.CategorySimple, IsActive: false},
		{Name: "Creative Designer", Category: database.CategoryCreative, IsActive: true},
	} {
		tmpl := tmpl
		if err := s.CreateCvTemplate(ctx, &tmpl); err != nil {
			t.Fatalf("CreateCvTemplate: %v", err)
		}
	}

	templates, err := s.GetCvTemplates(ctx)
	if err != nil {
		t.Fatalf("GetCvTemplates: %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("expected 2 active templates, got %d", len(templates))
	}
	if templates[0].Name != "Professional Modern" || templates[1].Name != "Creative Designer" {
		t.Errorf("expected insertion order by id, got [%q %q]", templates[0].Name, templates[1].Name)
	}

	count, err := s.CountCvTemplates(ctx)
	if err != nil {
		t.Fatalf("CountCvTemplates: %v", err)
	}
	if count != 3 {
		t.Errorf("count includes inactive rows, expected 3, got %d", count)
	}
}

func TestGetStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedUser(t, s, "employer-1", database.RoleEmployer)
	seedUser(t, s, "alice", database.RoleJobSeeker)
	company := seedCompany(t, s, "Acme")
	job := seedJob(t, s, database.Job{
		Title: "Backend Engineer", Description: "d", Location: "Remote",
		CompanyID: company.ID, PostedByID: "employer-1", IsActive: true,
	})
	seedApplication(t, s, database.Application{JobID: job.ID, UserID: "alice"})

	stats, err := s.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.TotalUsers != 2 || stats.TotalJobs != 1 || stats.TotalApplications != 1 || stats.TotalCompanies != 1 {
		t.Errorf("unexpected stats %+v", stats)
	}
}
