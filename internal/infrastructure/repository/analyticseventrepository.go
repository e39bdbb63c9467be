package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"chefviral/internal/domain/analytics"
	"chefviral/internal/infrastructure/persistence/models"
	"chefviral/internal/shared/logger"
)

// AnalyticsEventRepositoryImpl persists public page events.
type AnalyticsEventRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewAnalyticsEventRepository creates an analytics repository.
func NewAnalyticsEventRepository(db *gorm.DB, log logger.Interface) analytics.Repository {
	return &AnalyticsEventRepositoryImpl{db: db, logger: log}
}

func (r *AnalyticsEventRepositoryImpl) Record(ctx context.Context, e *analytics.Event) error {
	model := &models.AnalyticsEventModel{
		ProfileID: e.ProfileID(),
		Kind:      string(e.Kind()),
		CreatedAt: e.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		// Callers treat analytics as best-effort; they log and move on.
		return fmt.Errorf("failed to record analytics event: %w", err)
	}
	return nil
}

func (r *AnalyticsEventRepositoryImpl) StatsSince(ctx context.Context, profileID uint, since time.Time) (analytics.Stats, error) {
	type kindCount struct {
		Kind  string
		Count int64
	}

	var rows []kindCount
	if err := r.db.WithContext(ctx).Model(&models.AnalyticsEventModel{}).
		Select("kind, COUNT(*) as count").
		Where("profile_id = ? AND created_at >= ?", profileID, since).
		Group("kind").
		Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to aggregate analytics events", "error", err, "profile_id", profileID)
		return analytics.Stats{}, fmt.Errorf("failed to aggregate analytics events: %w", err)
	}

	var stats analytics.Stats
	for _, row := range rows {
		switch analytics.EventKind(row.Kind) {
		case analytics.EventView:
			stats.Visits = int(row.Count)
		case analytics.EventClickWhatsApp:
			stats.Clicks = int(row.Count)
		}
	}
	return stats, nil
}
