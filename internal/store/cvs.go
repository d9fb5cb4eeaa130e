package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"jobhub/internal/database"
)

// GetUserCvs lists the caller's CVs, most recently updated first.
func (s *Store) GetUserCvs(ctx context.Context, userID string) ([]database.Cv, error) {
	var cvs []database.Cv
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&cvs).Error
	if err != nil {
		return nil, fmt.Errorf("list cvs: %w", err)
	}
	return cvs, nil
}

// GetCv fetches a single CV without any ownership filtering; the caller is
// responsible for the owner check so that 403 and 404 stay distinguishable.
func (s *Store) GetCv(ctx context.Context, id uint) (*database.Cv, error) {
	var cv database.Cv
	if err := s.db.WithContext(ctx).First(&cv, id).Error; err != nil {
		return nil, translate(err)
	}
	return &cv, nil
}

// CreateCv inserts a CV owned by its UserID.
func (s *Store) CreateCv(ctx context.Context, cv *database.Cv) error {
	if err := s.db.WithContext(ctx).Create(cv).Error; err != nil {
		return fmt.Errorf("create cv: %w", err)
	}
	return nil
}

// UpdateCv applies changes to the CV only when ownerID matches the owning
// user. The ownership predicate is part of the UPDATE itself, so there is no
// window for a concurrent delete between check and write. A zero-row result
// is disambiguated into ErrNotFound vs ErrAccessDenied.
func (s *Store) UpdateCv(ctx context.Context, id uint, ownerID string, changes map[string]any) (*database.Cv, error) {
	var cv database.Cv
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&database.Cv{}).
			Where("id = ? AND user_id = ?", id, ownerID).
			Updates(changes)
		if res.Error != nil {
			return fmt.Errorf("update cv: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return s.missingOrDenied(tx, &database.Cv{}, id)
		}
		return tx.First(&cv, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &cv, nil
}

// DeleteCv removes the CV only when ownerID matches, with the same
// conditional-statement semantics as UpdateCv.
func (s *Store) DeleteCv(ctx context.Context, id uint, ownerID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, ownerID).Delete(&database.Cv{})
		if res.Error != nil {
			return fmt.Errorf("delete cv: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return s.missingOrDenied(tx, &database.Cv{}, id)
		}
		return nil
	})
}

// missingOrDenied resolves a zero-row conditional mutation: the row either
// never existed (ErrNotFound) or belongs to someone else (ErrAccessDenied).
func (s *Store) missingOrDenied(tx *gorm.DB, model any, id uint) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return ErrAccessDenied
}
