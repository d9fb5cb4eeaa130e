package store

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"jobhub/internal/database"
)

// GetUser fetches a user by its externally issued id.
func (s *Store) GetUser(ctx context.Context, id string) (*database.User, error) {
	var user database.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// UpsertUser inserts the user or refreshes its profile fields when the id
// already exists. The role column is deliberately left untouched on conflict
// so that an admin promotion survives subsequent logins.
func (s *Store) UpsertUser(ctx context.Context, user database.User) (*database.User, error) {
	if user.Role == "" {
		user.Role = database.RoleJobSeeker
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email",
			"first_name",
			"last_name",
			"profile_image_url",
			"updated_at",
		}),
	}).Create(&user).Error
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	var fresh database.User
	if err := s.db.WithContext(ctx).First(&fresh, "id = ?", user.ID).Error; err != nil {
		return nil, translate(err)
	}
	return &fresh, nil
}
