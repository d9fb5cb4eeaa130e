package api

import (
	"net/http"
	"testing"

	"jobhub/internal/database"
)

func TestListTemplatesPublicAndActiveOnly(t *testing.T) {
	env := newTestEnv(t)

	for _, tmpl := range []database.CvTemplate{
		{Name: "Professional Modern", Category: database.CategoryProfessional, IsActive: true},
		{Name: "Retired Layout", Category: database.CategorySimple, IsActive: false},
	} {
		tmpl := tmpl
		if err := env.db.Create(&tmpl).Error; err != nil {
			t.Fatalf("seed template: %v", err)
		}
	}

	rec := env.request(t, http.MethodGet, "/api/cv-templates", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list templates: expected 200, got %d", rec.Code)
	}
	var templates []database.CvTemplate
	decodeJSON(t, rec, &templates)
	if len(templates) != 1 || templates[0].Name != "Professional Modern" {
		t.Errorf("expected only the active template, got %+v", templates)
	}
}

func TestCreateTemplateAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	employerToken := env.login(t, "erin", database.RoleEmployer)
	adminToken := env.login(t, "root", database.RoleAdmin)

	body := map[string]any{
		"name":        "Startup Enthusiast",
		"description": "Dynamic design for startup environments.",
		"category":    "creative",
	}

	if rec := env.request(t, http.MethodPost, "/api/cv-templates", employerToken, body); rec.Code != http.StatusForbidden {
		t.Errorf("employer create: expected 403, got %d", rec.Code)
	}
	if rec := env.request(t, http.MethodPost, "/api/cv-templates", "", body); rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous create: expected 401, got %d", rec.Code)
	}

	rec := env.request(t, http.MethodPost, "/api/cv-templates", adminToken, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("admin create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var template database.CvTemplate
	decodeJSON(t, rec, &template)
	if !template.IsActive {
		t.Errorf("templates default to active")
	}

	if rec := env.request(t, http.MethodPost, "/api/cv-templates", adminToken, map[string]any{"name": "Bad", "category": "futuristic"}); rec.Code != http.StatusBadRequest {
		t.Errorf("category outside the closed set: expected 400, got %d", rec.Code)
	}
}

func TestAdminStats(t *testing.T) {
	env := newTestEnv(t)
	seekerToken := env.login(t, "alice", database.RoleJobSeeker)
	adminToken := env.login(t, "root", database.RoleAdmin)
	company := env.seedCompany(t, "Acme", nil)
	env.seedJob(t, company.ID, "root")

	if rec := env.request(t, http.MethodGet, "/api/admin/stats", seekerToken, nil); rec.Code != http.StatusForbidden {
		t.Errorf("job seeker stats: expected 403, got %d", rec.Code)
	}

	rec := env.request(t, http.MethodGet, "/api/admin/stats", adminToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin stats: expected 200, got %d", rec.Code)
	}
	var stats map[string]int64
	decodeJSON(t, rec, &stats)
	if stats["totalUsers"] != 2 || stats["totalJobs"] != 1 || stats["totalCompanies"] != 1 {
		t.Errorf("unexpected stats %v", stats)
	}
}
