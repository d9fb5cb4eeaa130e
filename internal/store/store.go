package store

import (
	"errors"

	"gorm.io/gorm"
)

// Store owns the database handle and exposes the typed data-access
// operations. It is constructed once at startup and injected into the route
// layer; nothing module-level is shared.
type Store struct {
	db *gorm.DB
}

// New wraps a GORM handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

var (
	// ErrNotFound signals that the resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrAccessDenied signals that the resource exists but the caller does
	// not own it. Kept distinct from ErrNotFound so the route layer can
	// answer 403 instead of 404.
	ErrAccessDenied = errors.New("access denied")
)

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
