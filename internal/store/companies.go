package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"jobhub/internal/database"
)

// GetCompanies lists companies, newest first.
func (s *Store) GetCompanies(ctx context.Context) ([]database.Company, error) {
	var companies []database.Company
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

// GetCompany fetches a single company.
func (s *Store) GetCompany(ctx context.Context, id uint) (*database.Company, error) {
	var company database.Company
	if err := s.db.WithContext(ctx).First(&company, id).Error; err != nil {
		return nil, translate(err)
	}
	return &company, nil
}

// CreateCompany inserts a company with CreatedByID already bound to the
// authenticated identity by the route layer.
func (s *Store) CreateCompany(ctx context.Context, company *database.Company) error {
	if err := s.db.WithContext(ctx).Create(company).Error; err != nil {
		return fmt.Errorf("create company: %w", err)
	}
	return nil
}

// UpdateCompany applies changes when userID is the creator, or
// unconditionally for admins. Conditional single statement, same race-free
// shape as the CV mutations.
func (s *Store) UpdateCompany(ctx context.Context, id uint, userID string, isAdmin bool, changes map[string]any) (*database.Company, error) {
	var company database.Company
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&database.Company{})
		if isAdmin {
			q = q.Where("id = ?", id)
		} else {
			q = q.Where("id = ? AND created_by_id = ?", id, userID)
		}
		res := q.Updates(changes)
		if res.Error != nil {
			return fmt.Errorf("update company: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return s.missingOrDenied(tx, &database.Company{}, id)
		}
		return tx.First(&company, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &company, nil
}
