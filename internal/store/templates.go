package store

import (
	"context"
	"fmt"

	"jobhub/internal/database"
)

// GetCvTemplates lists the active templates.
func (s *Store) GetCvTemplates(ctx context.Context) ([]database.CvTemplate, error) {
	var templates []database.CvTemplate
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Find(&templates).Error
	if err != nil {
		return nil, fmt.Errorf("list cv templates: %w", err)
	}
	return templates, nil
}

// CreateCvTemplate inserts a template row.
func (s *Store) CreateCvTemplate(ctx context.Context, template *database.CvTemplate) error {
	if err := s.db.WithContext(ctx).Create(template).Error; err != nil {
		return fmt.Errorf("create cv template: %w", err)
	}
	return nil
}

// CountCvTemplates reports how many template rows exist, active or not.
func (s *Store) CountCvTemplates(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&database.CvTemplate{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count cv templates: %w", err)
	}
	return count, nil
}
