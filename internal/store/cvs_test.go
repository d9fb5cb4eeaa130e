package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/datatypes"

	"jobhub/internal/database"
)

func seedCv(t *testing.T, s *Store, cv database.Cv) database.Cv {
	t.Helper()
	if err := s.db.Create(&cv).Error; err != nil {
		t.Fatalf("seed cv %s: %v", cv.Title, err)
	}
	return cv
}

func TestGetUserCvsScopedAndOrdered(t *testing.T) {
	s := newTestStore(t)
	seedUser(t, s, "alice", database.RoleJobSeeker)
	seedUser(t, s, "bob", database.RoleJobSeeker)

	base := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	stale := seedCv(t, s, database.Cv{UserID: "alice", Title: "Stale", UpdatedAt: base})
	fresh := seedCv(t, s, database.Cv{UserID: "alice", Title: "Fresh", UpdatedAt: base.Add(time.Hour)})
	seedCv(t, s, database.Cv{UserID: "bob", Title: "Not Alice's"})

	cvs, err := s.GetUserCvs(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetUserCvs: %v", err)
	}
	if len(cvs) != 2 {
		t.Fatalf("expected alice's 2 cvs, got %d", len(cvs))
	}
	if cvs[0].ID != fresh.ID || cvs[1].ID != stale.ID {
		t.Errorf("expected most recently updated first, got [%d %d]", cvs[0].ID, cvs[1].ID)
	}
}

func TestCreateAndGetCv(t *testing.T) {
	s := newTestStore(t)
	seedUser(t, s, "alice", database.RoleJobSeeker)

	cv := database.Cv{
		UserID: "alice",
		Title:  "Backend CV",
		Data:   datatypes.JSON(`{"personalInfo":{"fullName":"Alice"}}`),
	}
	if err := s.CreateCv(context.Background(), &cv); err != nil {
		t.Fatalf("CreateCv: %v", err)
	}
	if cv.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := s.GetCv(context.Background(), cv.ID)
	if err != nil {
		t.Fatalf("GetCv: %v", err)
	}
	if got.Title != "Backend CV" || got.UserID != "alice" {
		t.Errorf("unexpected cv %+v", got)
	}

	if _, err := s.GetCv(context.Background(), 4242); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateCvConditionalOwnership(t *testing.T) {
	s := newTestStore(t)
	seedUser(t, s, "alice", database.RoleJobSeeker)
	cv := seedCv(t, s, database.Cv{UserID: "alice", Title: "Draft"})

	changes := map[string]any{"title": "Final", "updated_at": time.Now()}

	if _, err := s.UpdateCv(context.Background(), cv.ID, "mallory", changes); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("non-owner update: expected ErrAccessDenied, got %v", err)
	}
	if _, err := s.UpdateCv(context.Background(), 4242, "alice", changes); !errors.Is(err, ErrNotFound) {
		t.Fatalf("absent cv update: expected ErrNotFound, got %v", err)
	}

	updated, err := s.UpdateCv(context.Background(), cv.ID, "alice", changes)
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Title != "Final" {
		t.Errorf("expected title Final, got %q", updated.Title)
	}
}

func TestDeleteCvConditionalOwnership(t *testing.T) {
	s := newTestStore(t)
	seedUser(t, s, "alice", database.RoleJobSeeker)
	cv := seedCv(t, s, database.Cv{UserID: "alice", Title: "Draft"})

	if err := s.DeleteCv(context.Background(), cv.ID, "mallory"); !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("non-owner delete: expected ErrAccessDenied, got %v", err)
	}
	if err := s.DeleteCv(context.Background(), 4242, "alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("absent cv delete: expected ErrNotFound, got %v", err)
	}
	if err := s.DeleteCv(context.Background(), cv.ID, "alice"); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := s.GetCv(context.Background(), cv.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("cv should be gone after delete, got %v", err)
	}
}
