package store

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"jobhub/internal/database"
)

var testDBSeq atomic.Int64

// newTestStore opens a fresh in-memory database per test. The name has to be
// unique so parallel tests never share schema state.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db)
}

func seedUser(t *testing.T, s *Store, id string, role database.Role) database.User {
	t.Helper()
	email := id + "@example.com"
	user := database.User{ID: id, Email: &email, Role: role}
	if err := s.db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", id, err)
	}
	return user
}

func seedCompany(t *testing.T, s *Store, name string) database.Company {
	t.Helper()
	company := database.Company{Name: name, Size: database.SizeMedium}
	if err := s.db.Create(&company).Error; err != nil {
		t.Fatalf("seed company %s: %v", name, err)
	}
	return company
}

func seedJob(t *testing.T, s *Store, job database.Job) database.Job {
	t.Helper()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	if err := s.db.Create(&job).Error; err != nil {
		t.Fatalf("seed job %s: %v", job.Title, err)
	}
	return job
}
