package store

import (
	"context"
	"fmt"

	"jobhub/internal/database"
)

// Stats holds the four platform-wide row counts shown on the admin
// dashboard. No time windowing and no per-status breakdown.
type Stats struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalJobs         int64 `json:"totalJobs"`
	TotalApplications int64 `json:"totalApplications"`
	TotalCompanies    int64 `json:"totalCompanies"`
}

// GetStats issues four independent count queries.
func (s *Store) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats

	counts := []struct {
		model any
		dest  *int64
	}{
		{&database.User{}, &stats.TotalUsers},
		{&database.Job{}, &stats.TotalJobs},
		{&database.Application{}, &stats.TotalApplications},
		{&database.Company{}, &stats.TotalCompanies},
	}
	for _, c := range counts {
		if err := s.db.WithContext(ctx).Model(c.model).Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("count rows: %w", err)
		}
	}

	return &stats, nil
}
