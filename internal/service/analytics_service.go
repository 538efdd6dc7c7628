package service

import (
	"context"
	"fmt"

	"marketai/internal/authz"
	"marketai/internal/model"
	"marketai/internal/repository"
)

// AnalyticsService computes admin-only aggregate counts
type AnalyticsService interface {
	Summary(ctx context.Context, user *model.User) (*model.AnalyticsSummary, error)
}

type analyticsService struct {
	userRepo repository.UserRepository
	logRepo  repository.RequestLogRepository
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(userRepo repository.UserRepository, logRepo repository.RequestLogRepository) AnalyticsService {
	return &analyticsService{userRepo: userRepo, logRepo: logRepo}
}

// Summary recomputes every count on each call.
func (s *analyticsService) Summary(ctx context.Context, user *model.User) (*model.AnalyticsSummary, error) {
	if !authz.CanUse(user, authz.ResourceAnalytics) {
		return nil, ErrForbidden
	}

	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	totalRequests, err := s.logRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count requests: %w", err)
	}

	byModule := make(map[model.Module]int64, len(model.Modules))
	for _, m := range model.Modules {
		n, err := s.logRepo.CountByModule(ctx, m)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s requests: %w", m, err)
		}
		byModule[m] = n
	}

	return &model.AnalyticsSummary{
		TotalUsers:    totalUsers,
		TotalRequests: totalRequests,
		ByModule:      byModule,
	}, nil
}
