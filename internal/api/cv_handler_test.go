package api

import (
	"net/http"
	"testing"

	"jobhub/internal/database"
)

func TestCreateCvBindsOwnerFromIdentity(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "alice", database.RoleJobSeeker)

	rec := env.request(t, http.MethodPost, "/api/cvs", token, map[string]any{
		"title":  "Backend CV",
		"userId": "mallory", // must be ignored
		"data":   map[string]any{"personalInfo": map[string]any{"fullName": "Alice"}},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("create cv: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var created database.Cv
	decodeJSON(t, rec, &created)
	if created.UserID != "alice" {
		t.Errorf("owner must come from the token, got %q", created.UserID)
	}
	if created.Title != "Backend CV" {
		t.Errorf("expected title persisted, got %q", created.Title)
	}

	// Round trip: the same row comes back through GET.
	rec = env.request(t, http.MethodGet, "/api/cvs/"+itoa(created.ID), token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get cv: expected 200, got %d", rec.Code)
	}
	var fetched database.Cv
	decodeJSON(t, rec, &fetched)
	if fetched.ID != created.ID || fetched.Title != created.Title {
		t.Errorf("round trip mismatch: created %+v, fetched %+v", created, fetched)
	}
}

func TestCreateCvRequiresTitle(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "alice", database.RoleJobSeeker)

	rec := env.request(t, http.MethodPost, "/api/cvs", token, map[string]any{"isPublic": true})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing title, got %d", rec.Code)
	}
}

func TestGetCvMissingVersusForeign(t *testing.T) {
	env := newTestEnv(t)
	aliceToken := env.login(t, "alice", database.RoleJobSeeker)
	bobToken := env.login(t, "bob", database.RoleJobSeeker)

	rec := env.request(t, http.MethodPost, "/api/cvs", aliceToken, map[string]any{"title": "Alice CV"})
	if rec.Code != http.StatusOK {
		t.Fatalf("create cv: %d", rec.Code)
	}
	var cv database.Cv
	decodeJSON(t, rec, &cv)

	if rec := env.request(t, http.MethodGet, "/api/cvs/4242", aliceToken, nil); rec.Code != http.StatusNotFound {
		t.Errorf("absent cv: expected 404, got %d", rec.Code)
	}
	if rec := env.request(t, http.MethodGet, "/api/cvs/"+itoa(cv.ID), bobToken, nil); rec.Code != http.StatusForbidden {
		t.Errorf("foreign cv: expected 403, got %d", rec.Code)
	}
	if rec := env.request(t, http.MethodGet, "/api/cvs/abc", aliceToken, nil); rec.Code != http.StatusBadRequest {
		t.Errorf("malformed id: expected 400, got %d", rec.Code)
	}
}

func TestUpdateCvIsPartial(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "alice", database.RoleJobSeeker)

	rec := env.request(t, http.MethodPost, "/api/cvs", token, map[string]any{
		"title":    "Draft",
		"isPublic": true,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("create cv: %d", rec.Code)
	}
	var cv database.Cv
	decodeJSON(t, rec, &cv)

	rec = env.request(t, http.MethodPut, "/api/cvs/"+itoa(cv.ID), token, map[string]any{
		"title": "Final",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update cv: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated database.Cv
	decodeJSON(t, rec, &updated)
	if updated.Title != "Final" {
		t.Errorf("expected updated title, got %q", updated.Title)
	}
	if !updated.IsPublic {
		t.Errorf("untouched field must keep its value")
	}
}

func TestUpdateCvOwnership(t *testing.T) {
	env := newTestEnv(t)
	aliceToken := env.login(t, "alice", database.RoleJobSeeker)
	bobToken := env.login(t, "bob", database.RoleJobSeeker)

	rec := env.request(t, http.MethodPost, "/api/cvs", aliceToken, map[string]any{"title": "Alice CV"})
	var cv database.Cv
	decodeJSON(t, rec, &cv)

	if rec := env.request(t, http.MethodPut, "/api/cvs/"+itoa(cv.ID), bobToken, map[string]any{"title": "Hijacked"}); rec.Code != http.StatusForbidden {
		t.Errorf("foreign update: expected 403, got %d", rec.Code)
	}
	if rec := env.request(t, http.MethodPut, "/api/cvs/4242", aliceToken, map[string]any{"title": "X"}); rec.Code != http.StatusNotFound {
		t.Errorf("absent update: expected 404, got %d", rec.Code)
	}
}

func TestDeleteCv(t *testing.T) {
	env := newTestEnv(t)
	aliceToken := env.login(t, "alice", database.RoleJobSeeker)
	bobToken := env.login(t, "bob", database.RoleJobSeeker)

	rec := env.request(t, http.MethodPost, "/api/cvs", aliceToken, map[string]any{"title": "Alice CV"})
	var cv database.Cv
	decodeJSON(t, rec, &cv)

	if rec := env.request(t, http.MethodDelete, "/api/cvs/"+itoa(cv.ID), bobToken, nil); rec.Code != http.StatusForbidden {
		t.Errorf("foreign delete: expected 403, got %d", rec.Code)
	}

	rec = env.request(t, http.MethodDelete, "/api/cvs/"+itoa(cv.ID), aliceToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("owner delete: expected 200, got %d", rec.Code)
	}
	var resp map[string]string
	decodeJSON(t, rec, &resp)
	if resp["message"] != "CV deleted successfully" {
		t.Errorf("unexpected message %q", resp["message"])
	}

	if rec := env.request(t, http.MethodGet, "/api/cvs/"+itoa(cv.ID), aliceToken, nil); rec.Code != http.StatusNotFound {
		t.Errorf("deleted cv: expected 404, got %d", rec.Code)
	}
}

func TestListCvsScopedToCaller(t *testing.T) {
	env := newTestEnv(t)
	aliceToken := env.login(t, "alice", database.RoleJobSeeker)
	bobToken := env.login(t, "bob", database.RoleJobSeeker)

	env.request(t, http.MethodPost, "/api/cvs", aliceToken, map[string]any{"title": "Alice CV"})
	env.request(t, http.MethodPost, "/api/cvs", bobToken, map[string]any{"title": "Bob CV"})

	rec := env.request(t, http.MethodGet, "/api/cvs", aliceToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list cvs: %d", rec.Code)
	}
	var cvs []database.Cv
	decodeJSON(t, rec, &cvs)
	if len(cvs) != 1 || cvs[0].Title != "Alice CV" {
		t.Errorf("expected only alice's cv, got %+v", cvs)
	}
}
