package usecases

import (
	"context"
	"fmt"
	"time"

	"chefviral/internal/application/dashboard/dto"
	"chefviral/internal/domain/analytics"
	"chefviral/internal/domain/catalog"
	"chefviral/internal/domain/content"
	"chefviral/internal/domain/plan"
	"chefviral/internal/domain/profile"
	"chefviral/internal/shared/biztime"
	"chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
)

// StatsCache shortcuts repeated dashboard loads. A false Get is a miss;
// Set failures are the cache's problem, not the caller's.
type StatsCache interface {
	Get(ctx context.Context, userID uint, out interface{}) bool
	Set(ctx context.Context, userID uint, stats interface{}) error
}

// GetDashboardStatsUseCase aggregates the tenant's home screen counters,
// behind a short-lived cache.
type GetDashboardStatsUseCase struct {
	profileRepo   profile.Repository
	productRepo   catalog.Repository
	contentRepo   content.Repository
	analyticsRepo analytics.Repository
	cache         StatsCache // optional
	logger        logger.Interface
}

// NewGetDashboardStatsUseCase creates the use case. cache may be nil.
func NewGetDashboardStatsUseCase(
	profileRepo profile.Repository,
	productRepo catalog.Repository,
	contentRepo content.Repository,
	analyticsRepo analytics.Repository,
	cache StatsCache,
	logger logger.Interface,
) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		profileRepo:   profileRepo,
		productRepo:   productRepo,
		contentRepo:   contentRepo,
		analyticsRepo: analyticsRepo,
		cache:         cache,
		logger:        logger,
	}
}

// Execute returns the dashboard counters, from cache when fresh.
func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context, userID uint) (*dto.DashboardStatsResponse, error) {
	if uc.cache != nil {
		var cached dto.DashboardStatsResponse
		if uc.cache.Get(ctx, userID, &cached) {
			return &cached, nil
		}
	}

	businessProfile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if businessProfile == nil {
		return nil, errors.NewNotFoundError("complete o cadastro para ver o painel")
	}

	stats, err := uc.analyticsRepo.StatsSince(ctx, businessProfile.DBID(), biztime.DaysAgo(7))
	if err != nil {
		uc.logger.Errorw("failed to load analytics stats", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to load analytics stats: %w", err)
	}

	generationsUsed, err := uc.contentRepo.CountItemsSince(ctx, userID, biztime.StartOfMonth(biztime.NowUTC()))
	if err != nil {
		uc.logger.Errorw("failed to count generations", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to count generations: %w", err)
	}

	productCount, err := uc.productRepo.CountByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to count products", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	subscription := businessProfile.Subscription()
	limits := subscription.Limits()

	response := &dto.DashboardStatsResponse{
		Visits7d:             stats.Visits,
		Clicks7d:             stats.Clicks,
		GenerationsUsed:      generationsUsed,
		MaxGenerations:       limits.MaxGenerations,
		ProductCount:         productCount,
		MaxProducts:          limits.MaxProducts,
		Tier:                 string(subscription.Tier),
		TierDisplayName:      plan.ConfigFor(subscription.Tier).DisplayName,
		SubscriptionStatus:   string(subscription.Status),
		SubscriptionDeadline: subscription.PeriodEnd.Format(time.RFC3339),
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, userID, response); err != nil {
			uc.logger.Warnw("failed to cache dashboard stats", "user_id", userID, "error", err)
		}
	}

	return response, nil
}
