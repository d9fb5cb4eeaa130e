package api

import (
	"net/http"
	"testing"

	"jobhub/internal/database"
)

func TestCreateCompanyBindsCreator(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "erin", database.RoleEmployer)

	rec := env.request(t, http.MethodPost, "/api/companies", token, map[string]any{
		"name":        "Acme",
		"size":        "medium",
		"createdById": "mallory", // must be ignored
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("create company: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var company database.Company
	decodeJSON(t, rec, &company)
	if company.CreatedByID == nil || *company.CreatedByID != "erin" {
		t.Errorf("creator must come from the token, got %v", company.CreatedByID)
	}

	if rec := env.request(t, http.MethodPost, "/api/companies", token, map[string]any{"name": "Bad Size Co", "size": "gigantic"}); rec.Code != http.StatusBadRequest {
		t.Errorf("size outside the closed set: expected 400, got %d", rec.Code)
	}
	if rec := env.request(t, http.MethodPost, "/api/companies", "", map[string]any{"name": "Anon Co"}); rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous create: expected 401, got %d", rec.Code)
	}
}

func TestCompanyReadsArePublic(t *testing.T) {
	env := newTestEnv(t)
	company := env.seedCompany(t, "Acme", nil)

	rec := env.request(t, http.MethodGet, "/api/companies", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list companies: expected 200, got %d", rec.Code)
	}
	var companies []database.Company
	decodeJSON(t, rec, &companies)
	if len(companies) != 1 || companies[0].Name != "Acme" {
		t.Errorf("unexpected companies %+v", companies)
	}

	rec = env.request(t, http.MethodGet, "/api/companies/"+itoa(company.ID), "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get company: expected 200, got %d", rec.Code)
	}

	if rec := env.request(t, http.MethodGet, "/api/companies/4242", "", nil); rec.Code != http.StatusNotFound {
		t.Errorf("absent company: expected 404, got %d", rec.Code)
	}
}

func TestUpdateCompanyCreatorAdminAndStranger(t *testing.T) {
	env := newTestEnv(t)
	creatorToken := env.login(t, "erin", database.RoleEmployer)
	strangerToken := env.login(t, "frank", database.RoleEmployer)
	adminToken := env.login(t, "root", database.RoleAdmin)

	creatorID := "erin"
	company := env.seedCompany(t, "Acme", &creatorID)

	if rec := env.request(t, http.MethodPut, "/api/companies/"+itoa(company.ID), strangerToken, map[string]any{"name": "Hijacked"}); rec.Code != http.StatusForbidden {
		t.Errorf("stranger update: expected 403, got %d", rec.Code)
	}
	if rec := env.request(t, http.MethodPut, "/api/companies/4242", creatorToken, map[string]any{"name": "X"}); rec.Code != http.StatusNotFound {
		t.Errorf("absent company: expected 404, got %d", rec.Code)
	}

	rec := env.request(t, http.MethodPut, "/api/companies/"+itoa(company.ID), creatorToken, map[string]any{"description": "We build things"})
	if rec.Code != http.StatusOK {
		t.Fatalf("creator update: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated database.Company
	decodeJSON(t, rec, &updated)
	if updated.Description != "We build things" {
		t.Errorf("expected updated description, got %q", updated.Description)
	}

	rec = env.request(t, http.MethodPut, "/api/companies/"+itoa(company.ID), adminToken, map[string]any{"name": "Acme Corp"})
	if rec.Code != http.StatusOK {
		t.Fatalf("admin update: expected 200, got %d", rec.Code)
	}
	decodeJSON(t, rec, &updated)
	if updated.Name != "Acme Corp" {
		t.Errorf("expected admin rename, got %q", updated.Name)
	}
}
